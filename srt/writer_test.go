package srt

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
)

func buildTwoCueDoc(t *testing.T) *model.Document {
	t.Helper()
	d := model.NewDocument()
	if _, err := d.NewRegion("r1"); err != nil {
		t.Fatal(err)
	}
	body := model.NewElement(model.KindBody)
	div := model.NewElement(model.KindDiv)
	div.SetRegionRef("r1")

	p1 := model.NewElement(model.KindP)
	if err := p1.SetTiming(model.Timing{Begin: ratime.FromInt(0), HasBegin: true, End: ratime.FromInt(2), HasEnd: true}); err != nil {
		t.Fatal(err)
	}
	if err := p1.AppendChild(model.NewText("Hello")); err != nil {
		t.Fatal(err)
	}

	p2 := model.NewElement(model.KindP)
	if err := p2.SetTiming(model.Timing{Begin: ratime.FromInt(2), HasBegin: true, End: ratime.FromInt(4), HasEnd: true}); err != nil {
		t.Fatal(err)
	}
	if err := p2.AppendChild(model.NewText("World")); err != nil {
		t.Fatal(err)
	}

	if err := div.AppendChild(p1); err != nil {
		t.Fatal(err)
	}
	if err := div.AppendChild(p2); err != nil {
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

func TestWriteGolden(t *testing.T) {
	d := buildTwoCueDoc(t)
	var buf bytes.Buffer
	if err := Write(d, &buf, Options{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	g := goldie.New(t)
	g.Assert(t, "srt_write_sample", buf.Bytes())
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		t    ratime.Time
		want string
	}{
		{ratime.Zero, "00:00:00,000"},
		{ratime.FromInt(5), "00:00:05,000"},
		{ratime.FromSeconds(3661500, 1000), "01:01:01,500"},
	}
	for _, c := range cases {
		if got := formatTimestamp(c.t); got != c.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", c.t, got, c.want)
		}
	}
}
