package ttml

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

func buildSampleDoc(t *testing.T) *model.Document {
	t.Helper()
	d := model.NewDocument()
	if err := d.SetLang("en"); err != nil {
		t.Fatal(err)
	}
	r1, err := d.NewRegion("r1")
	if err != nil {
		t.Fatal(err)
	}
	if err := r1.SetStyle(style.TextAlign, style.EnumValue("center")); err != nil {
		t.Fatal(err)
	}

	body := model.NewElement(model.KindBody)
	div := model.NewElement(model.KindDiv)
	div.SetRegionRef("r1")
	p := model.NewElement(model.KindP)
	if err := p.SetTiming(model.Timing{Begin: ratime.FromSeconds(22, 30), HasBegin: true, End: ratime.FromInt(5), HasEnd: true}); err != nil {
		t.Fatal(err)
	}
	if err := p.SetStyle(style.Color, style.ColorValue(ratime.ColorWhite)); err != nil {
		t.Fatal(err)
	}
	if err := p.AppendChild(model.NewText("Lorem")); err != nil {
		t.Fatal(err)
	}
	if err := div.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	if err := body.AppendChild(div); err != nil {
		t.Fatal(err)
	}
	if err := d.SetBody(body); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestWriteContainsExpectedMarkup(t *testing.T) {
	d := buildSampleDoc(t)
	var buf bytes.Buffer
	if err := Write(d, &buf, WriteOptions{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`xml:lang="en"`, `xml:id="r1"`, `tts:textAlign="center"`,
		`region="r1"`, `begin="00:00:00.733"`, `end="00:00:05.000"`,
		`tts:color="#ffffff"`, ">Lorem<",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Write() output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	d := buildSampleDoc(t)
	var buf bytes.Buffer
	if err := Write(d, &buf, WriteOptions{}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.Lang().String() != d.Lang().String() {
		t.Errorf("lang = %q, want %q", got.Lang().String(), d.Lang().String())
	}
	if len(got.Regions()) != 1 || got.Regions()[0].ID != "r1" {
		t.Fatalf("regions = %v, want [r1]", got.Regions())
	}
	if v, ok := got.Regions()[0].InlineStyle(style.TextAlign); !ok || v.Enum != "center" {
		t.Errorf("r1 textAlign = %v, want center", v)
	}

	gotP := findFirst(got.Body(), model.KindP)
	wantP := findFirst(d.Body(), model.KindP)
	if gotP == nil || wantP == nil {
		t.Fatal("round-tripped document missing its p element")
	}
	// Clock-time output carries whole milliseconds, so the 22/30 s begin
	// is written as 00:00:00.733 and read back as 733/1000 s.
	wantBegin := ratime.FromSeconds(733, 1000)
	if !gotP.Timing().Begin.Equal(wantBegin) {
		t.Errorf("p begin = %v, want %v", gotP.Timing().Begin, wantBegin)
	}
	if gotText := findText(gotP); gotText != "Lorem" {
		t.Errorf("p text = %q, want Lorem", gotText)
	}
}

func findFirst(e *model.Element, k model.Kind) *model.Element {
	if e == nil {
		return nil
	}
	var found *model.Element
	e.Walk(func(cur *model.Element) bool {
		if found != nil {
			return false
		}
		if cur.Kind() == k {
			found = cur
			return false
		}
		return true
	})
	return found
}

func findText(e *model.Element) string {
	var out string
	e.Walk(func(cur *model.Element) bool {
		if cur.Kind() == model.KindText {
			out += cur.Text()
		}
		return true
	})
	return out
}
