// Package ttml reads and writes the IMSC 1.1 Text Profile subset of TTML
// onto/from a model.Document. Referential styling (style="id" pointing at a
// <style> element) is resolved one level deep; a referenced style that
// itself references another style is outside the supported subset and
// falls back to its own single level, logged at WARN.
package ttml

import (
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/style"
)

// styleSetter is satisfied by both *model.Element and *model.Region, which
// share the same inline-style setter shape.
type styleSetter interface {
	SetStyle(style.Property, style.Value) error
}

// namedStyle is a <head><styling><style> definition, indexed by its xml:id.
// chainsTo is the id the style itself references via its own style
// attribute, if any - resolved only far enough to know whether the chain
// goes beyond the one level this reader supports.
type namedStyle struct {
	el       *etree.Element
	chainsTo string
}

// parseNamedStyles indexes head>styling>style by id.
func parseNamedStyles(head *etree.Element) map[string]namedStyle {
	named := map[string]namedStyle{}
	styling := head.SelectElement("styling")
	if styling == nil {
		return named
	}
	for _, sEl := range styling.SelectElements("style") {
		id := sEl.SelectAttrValue("id", "")
		if id == "" {
			continue
		}
		named[id] = namedStyle{el: sEl, chainsTo: sEl.SelectAttrValue("style", "")}
	}
	return named
}

// Read parses an IMSC 1.1 Text Profile document into a model.Document.
func Read(r io.Reader, log *zap.Logger) (*model.Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("ttml-reader")

	xdoc := etree.NewDocument()
	if _, err := xdoc.ReadFrom(r); err != nil {
		return nil, errs.New(errs.KindParse, "ttml.Read", "malformed XML", err)
	}
	root := xdoc.Root()
	if root == nil || root.Tag != "tt" {
		return nil, errs.New(errs.KindParse, "ttml.Read", "missing tt root element", nil)
	}

	cdm := model.NewDocument()

	fpsNum, fpsDen := int64(30), int64(1)
	if fr := root.SelectAttrValue("frameRate", ""); fr != "" {
		if n, err := strconv.Atoi(fr); err == nil {
			fpsNum, fpsDen = int64(n), 1
		}
	}
	if lang := root.SelectAttrValue("lang", ""); lang != "" {
		if err := cdm.SetLang(lang); err != nil {
			log.Warn("invalid xml:lang, ignoring", zap.Error(err))
		}
	}
	if cr := root.SelectAttrValue("cellResolution", ""); cr != "" {
		parts := strings.Fields(cr)
		if len(parts) == 2 {
			w, err1 := strconv.Atoi(parts[0])
			h, err2 := strconv.Atoi(parts[1])
			if err1 == nil && err2 == nil {
				if err := cdm.SetCellResolution(w, h); err != nil {
					log.Warn("invalid cellResolution, ignoring", zap.Error(err))
				}
			}
		}
	}

	named := map[string]namedStyle{}
	if head := root.SelectElement("head"); head != nil {
		named = parseNamedStyles(head)
		if layout := head.SelectElement("layout"); layout != nil {
			for _, rEl := range layout.SelectElements("region") {
				id := sanitizeRegionID(rEl.SelectAttrValue("id", ""))
				region, err := cdm.NewRegion(id)
				if err != nil {
					log.Warn("duplicate region id, skipping", zap.String("id", id))
					continue
				}
				applyStyleAttrs(region, rEl, named, log)
			}
		}
	}

	bodyEl := root.SelectElement("body")
	if bodyEl == nil {
		return cdm, nil
	}
	body := parseElement(bodyEl, model.KindBody, fpsNum, fpsDen, named, log)
	if err := cdm.SetBody(body); err != nil {
		return nil, err
	}
	return cdm, nil
}

// sanitizeRegionID repairs a missing or whitespace-containing xml:id into
// a usable identifier: a fresh UUID when absent, a slugified form when
// malformed, or the id unchanged when it is already well-formed.
func sanitizeRegionID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	if strings.ContainsAny(id, " \t\n") {
		return slug.Make(id)
	}
	return id
}

func kindForTag(tag string) (model.Kind, bool) {
	switch tag {
	case "div":
		return model.KindDiv, true
	case "p":
		return model.KindP, true
	case "span":
		return model.KindSpan, true
	case "ruby":
		return model.KindRuby, true
	case "rb":
		return model.KindRb, true
	case "rt":
		return model.KindRt, true
	case "rbc":
		return model.KindRbc, true
	case "rtc":
		return model.KindRtc, true
	case "rp":
		return model.KindRp, true
	case "br":
		return model.KindBr, true
	}
	return 0, false
}

func parseElement(el *etree.Element, kind model.Kind, fpsNum, fpsDen int64, named map[string]namedStyle, log *zap.Logger) *model.Element {
	e := model.NewElement(kind)
	if kind != model.KindBr {
		applyTimingAttrs(e, el, fpsNum, fpsDen, log)
		applyStyleAttrs(e, el, named, log)
		if rid := el.SelectAttrValue("region", ""); rid != "" {
			e.SetRegionRef(rid)
		}
	}
	if lang := el.SelectAttrValue("lang", ""); lang != "" {
		_ = e.SetLang(lang)
	}
	parseChildren(e, el, fpsNum, fpsDen, named, log)
	return e
}

func parseChildren(parent *model.Element, el *etree.Element, fpsNum, fpsDen int64, named map[string]namedStyle, log *zap.Logger) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" {
				continue
			}
			if err := parent.AppendChild(model.NewText(t.Data)); err != nil {
				log.Warn("dropping text node", zap.Error(err))
			}
		case *etree.Element:
			kind, ok := kindForTag(t.Tag)
			if !ok {
				log.Warn("unsupported element, skipping", zap.String("tag", t.Tag))
				continue
			}
			child := parseElement(t, kind, fpsNum, fpsDen, named, log)
			if err := parent.AppendChild(child); err != nil {
				log.Warn("dropping child element", zap.Error(err))
			}
		}
	}
}

func applyTimingAttrs(e *model.Element, el *etree.Element, fpsNum, fpsDen int64, log *zap.Logger) {
	var timing model.Timing
	if b := el.SelectAttrValue("begin", ""); b != "" {
		if t, err := ParseTimeExpr(b, fpsNum, fpsDen); err == nil {
			timing.Begin, timing.HasBegin = t, true
		} else {
			log.Warn("malformed begin, ignoring", zap.Error(err))
		}
	}
	if en := el.SelectAttrValue("end", ""); en != "" {
		if t, err := ParseTimeExpr(en, fpsNum, fpsDen); err == nil {
			timing.End, timing.HasEnd = t, true
		} else {
			log.Warn("malformed end, ignoring", zap.Error(err))
		}
	}
	if el.SelectAttrValue("dur", "") != "" {
		log.Warn("dur is not supported, ignoring", zap.String("element", el.Tag))
	}
	if timing.HasBegin || timing.HasEnd {
		if err := e.SetTiming(timing); err != nil {
			log.Warn("timing rejected", zap.Error(err))
		}
	}
}

// applyStyleAttrs applies el's style attributes to target: first any
// referenced named style (lower precedence), then el's own inline tts:*
// attributes (higher precedence, so they override a referenced style's
// values for the same property).
func applyStyleAttrs(target styleSetter, el *etree.Element, named map[string]namedStyle, log *zap.Logger) {
	if ref := el.SelectAttrValue("style", ""); ref != "" {
		applyNamedStyleRefs(target, ref, named, log)
	}
	applyInlineStyleAttrs(target, el, log)
}

// applyNamedStyleRefs resolves a style="id [id...]" reference, applying
// each referenced style's own direct attributes in order. A style that
// itself references another style (chaining beyond the one level this
// reader supports) is flattened to its own direct attributes only, logged
// at WARN.
func applyNamedStyleRefs(target styleSetter, ref string, named map[string]namedStyle, log *zap.Logger) {
	for _, id := range strings.Fields(ref) {
		ns, ok := named[id]
		if !ok {
			log.Warn("style reference does not resolve, skipping", zap.String("id", id))
			continue
		}
		if ns.chainsTo != "" {
			log.Warn("referential styling beyond one level is not supported, flattening to the single referenced style", zap.String("id", id))
		}
		applyInlineStyleAttrs(target, ns.el, log)
	}
}

func applyInlineStyleAttrs(target styleSetter, el *etree.Element, log *zap.Logger) {
	for _, attr := range el.Attr {
		if attr.Space != "tts" {
			continue
		}
		p, ok := style.ByName(attr.Key)
		if !ok {
			log.Warn("unknown style attribute, skipping", zap.String("name", attr.Key))
			continue
		}
		v, err := AttrToValue(p, attr.Value)
		if err != nil {
			log.Warn("malformed style value, skipping", zap.String("name", attr.Key), zap.Error(err))
			continue
		}
		if err := target.SetStyle(p, v); err != nil {
			log.Warn("style rejected", zap.String("name", attr.Key), zap.Error(err))
		}
	}
}
