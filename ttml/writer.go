package ttml

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/sandflow/ttconv/model"
)

// WriteOptions mirrors the imsc_writer.* configuration keys.
type WriteOptions struct {
	// TimeFormat selects how begin/end render: "clock_time" (default) is
	// the only form implemented; "frames"/"clock_time_with_frames" fall
	// back to clock_time.
	TimeFormat string
	// ProfileSignaling, if "content_profiles", emits ttp:contentProfiles
	// from d.Profiles().
	ProfileSignaling string
}

// Write serializes d as an IMSC 1.1 Text Profile document.
func Write(d *model.Document, w io.Writer, opts WriteOptions) error {
	xdoc := etree.NewDocument()
	xdoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := xdoc.CreateElement("tt")
	root.CreateAttr("xmlns", "http://www.w3.org/ns/ttml")
	root.CreateAttr("xmlns:tts", "http://www.w3.org/ns/ttml#styling")
	root.CreateAttr("xmlns:ttp", "http://www.w3.org/ns/ttml#parameter")
	root.CreateAttr("xmlns:xml", "http://www.w3.org/XML/1998/namespace")
	if lang := d.Lang(); lang.String() != "" && lang.String() != "und" {
		root.CreateAttr("xml:lang", lang.String())
	}
	if profiles := d.Profiles(); opts.ProfileSignaling == "content_profiles" && len(profiles) > 0 {
		root.CreateAttr("ttp:contentProfiles", strings.Join(profiles, " "))
	}

	if len(d.Regions()) > 0 {
		head := root.CreateElement("head")
		layout := head.CreateElement("layout")
		for _, r := range d.Regions() {
			rEl := layout.CreateElement("region")
			rEl.CreateAttr("xml:id", r.ID)
			for p, v := range r.InlineStyles() {
				rEl.CreateAttr("tts:"+p.String(), ValueToAttr(p, v))
			}
		}
	}

	if body := d.Body(); body != nil {
		writeElement(root.CreateElement("body"), body)
	}

	xdoc.Indent(2)
	_, err := xdoc.WriteTo(w)
	return err
}

var kindTag = map[model.Kind]string{
	model.KindDiv:  "div",
	model.KindP:    "p",
	model.KindSpan: "span",
	model.KindRuby: "ruby",
	model.KindRb:   "rb",
	model.KindRt:   "rt",
	model.KindRbc:  "rbc",
	model.KindRtc:  "rtc",
	model.KindRp:   "rp",
	model.KindBr:   "br",
}

func writeElement(xel *etree.Element, e *model.Element) {
	if e.Lang() != "" {
		xel.CreateAttr("xml:lang", e.Lang())
	}
	if rid, ok := e.RegionRef(); ok {
		xel.CreateAttr("region", rid)
	}
	t := e.Timing()
	if t.HasBegin {
		xel.CreateAttr("begin", FormatClockTime(t.Begin))
	}
	if t.HasEnd {
		xel.CreateAttr("end", FormatClockTime(t.End))
	}
	for p, v := range e.InlineStyles() {
		xel.CreateAttr("tts:"+p.String(), ValueToAttr(p, v))
	}
	for _, c := range e.Children() {
		if c.Kind() == model.KindText {
			xel.CreateText(c.Text())
			continue
		}
		tag, ok := kindTag[c.Kind()]
		if !ok {
			continue
		}
		child := xel.CreateElement(tag)
		writeElement(child, c)
	}
}
