package ttml

import (
	"strings"
	"testing"

	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/style"
)

func TestReadReferentialStyleFlattensSingleLevel(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<tt xml:lang="en" xmlns="http://www.w3.org/ns/ttml" xmlns:tts="http://www.w3.org/ns/ttml#styling">
  <head>
    <styling>
      <style xml:id="s1" tts:color="#ff0000" tts:fontSize="80%"/>
    </styling>
  </head>
  <body>
    <div>
      <p style="s1" tts:color="#00ff00"><span>Lorem</span></p>
    </div>
  </body>
</tt>`

	got, err := Read(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	p := findFirst(got.Body(), model.KindP)
	if p == nil {
		t.Fatal("missing p element")
	}

	// p's own tts:color overrides the referenced style's tts:color.
	if v, ok := p.InlineStyle(style.Color); !ok || v.Color.String() != "#00ff00" {
		t.Errorf("p color = %v, want #00ff00 (element's own attribute should win)", v)
	}
	// fontSize only comes from the referenced style, so it must still flatten in.
	if _, ok := p.InlineStyle(style.FontSize); !ok {
		t.Error("p fontSize not flattened in from referenced style s1")
	}
}

func TestReadReferentialStyleChainBeyondOneLevelFlattensFirstLevelOnly(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<tt xml:lang="en" xmlns="http://www.w3.org/ns/ttml" xmlns:tts="http://www.w3.org/ns/ttml#styling">
  <head>
    <styling>
      <style xml:id="s1" style="s2" tts:color="#ff0000"/>
      <style xml:id="s2" tts:fontSize="50%"/>
    </styling>
  </head>
  <body>
    <div>
      <p style="s1"><span>Lorem</span></p>
    </div>
  </body>
</tt>`

	got, err := Read(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	p := findFirst(got.Body(), model.KindP)
	if p == nil {
		t.Fatal("missing p element")
	}
	if v, ok := p.InlineStyle(style.Color); !ok || v.Color.String() != "#ff0000" {
		t.Errorf("p color = %v, want #ff0000 from s1's own attributes", v)
	}
	if _, ok := p.InlineStyle(style.FontSize); ok {
		t.Error("p fontSize should not be flattened from s2, which is beyond the one level this reader supports")
	}
}

func TestReadReferentialStyleUnresolvedIsSkipped(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<tt xml:lang="en" xmlns="http://www.w3.org/ns/ttml" xmlns:tts="http://www.w3.org/ns/ttml#styling">
  <body>
    <div>
      <p style="missing" tts:color="#00ff00"><span>Lorem</span></p>
    </div>
  </body>
</tt>`

	got, err := Read(strings.NewReader(doc), nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	p := findFirst(got.Body(), model.KindP)
	if p == nil {
		t.Fatal("missing p element")
	}
	if v, ok := p.InlineStyle(style.Color); !ok || v.Color.String() != "#00ff00" {
		t.Errorf("p color = %v, want #00ff00 (own attribute still applied despite unresolved reference)", v)
	}
}
