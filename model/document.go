package model

import (
	"golang.org/x/text/language"

	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

// Region is a named display rectangle with its own styles. Content elements reference a Region by id, never by pointer.
type Region struct {
	ID     string
	styles map[style.Property]style.Value
	lang   string
}

func newRegion(id string) *Region {
	return &Region{ID: id, styles: make(map[style.Property]style.Value)}
}

func (r *Region) Lang() string { return r.lang }

func (r *Region) SetLang(lang string) { r.lang = lang }

// SetStyle sets an inline style on the region, validated against the
// property's declared domain.
func (r *Region) SetStyle(p style.Property, v style.Value) error {
	if err := style.Validate(p, v); err != nil {
		return err
	}
	r.styles[p] = v
	return nil
}

func (r *Region) UnsetStyle(p style.Property) { delete(r.styles, p) }

func (r *Region) InlineStyle(p style.Property) (style.Value, bool) {
	v, ok := r.styles[p]
	return v, ok
}

func (r *Region) InlineStyles() map[style.Property]style.Value {
	out := make(map[style.Property]style.Value, len(r.styles))
	for k, v := range r.styles {
		out[k] = v
	}
	return out
}

// Document is the root of the Canonical Document Model. It
// exclusively owns its root Body, its Regions, and its initial-values
// table; a non-text Element exclusively owns its own children list; styles,
// timings, and animation steps are value-typed.
type Document struct {
	body          *Element
	regions       map[string]*Region
	regionOrder   []string // declaration order, preserved in ISD region lists
	initialValues map[style.Property]style.Value

	cellResolution ratime.Resolution // CellWidth/CellHeight meaningful
	pxResolution   ratime.Resolution // PxWidth/PxHeight meaningful

	lang     language.Tag
	profiles []string
}

// NewDocument creates an empty document with the default cell/pixel
// resolution (32x15 cells, 1920x1080 pixels).
func NewDocument() *Document {
	return &Document{
		regions:       make(map[string]*Region),
		initialValues: make(map[style.Property]style.Value),
		cellResolution: ratime.Resolution{CellWidth: ratime.DefaultResolution.CellWidth, CellHeight: ratime.DefaultResolution.CellHeight},
		pxResolution:   ratime.Resolution{PxWidth: ratime.DefaultResolution.PxWidth, PxHeight: ratime.DefaultResolution.PxHeight},
	}
}

func (d *Document) Body() *Element { return d.body }

// SetBody installs root as the document's root Body element. root must be
// detached and of KindBody.
func (d *Document) SetBody(root *Element) error {
	if root.kind != KindBody {
		return errs.New(errs.KindStructure, "model.SetBody", "root must be a body element", nil)
	}
	if root.doc != nil {
		return errs.New(errs.KindStructure, "model.SetBody", "element already belongs to a document", nil)
	}
	d.body = root
	attachSubtree(root, d)
	return nil
}

// Resolution returns the combined cell/pixel resolution.
func (d *Document) Resolution() ratime.Resolution {
	return ratime.Resolution{
		CellWidth: d.cellResolution.CellWidth, CellHeight: d.cellResolution.CellHeight,
		PxWidth: d.pxResolution.PxWidth, PxHeight: d.pxResolution.PxHeight,
	}
}

// SetCellResolution overrides the default 32x15 cell grid.
func (d *Document) SetCellResolution(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return errs.New(errs.KindDomain, "model.SetCellResolution", "cell resolution must be positive", nil)
	}
	d.cellResolution.CellWidth, d.cellResolution.CellHeight = cols, rows
	return nil
}

// SetPxResolution overrides the default 1920x1080 pixel root container.
func (d *Document) SetPxResolution(w, h int) error {
	if w <= 0 || h <= 0 {
		return errs.New(errs.KindDomain, "model.SetPxResolution", "pixel resolution must be positive", nil)
	}
	d.pxResolution.PxWidth, d.pxResolution.PxHeight = w, h
	return nil
}

func (d *Document) Lang() language.Tag { return d.lang }

// SetLang parses and sets the document's BCP-47 language tag.
func (d *Document) SetLang(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return errs.New(errs.KindDomain, "model.SetLang", "invalid BCP-47 tag "+tag, err)
	}
	d.lang = t
	return nil
}

func (d *Document) Profiles() []string { return append([]string{}, d.profiles...) }

func (d *Document) AddProfile(uri string) { d.profiles = append(d.profiles, uri) }

// NewRegion creates and registers a region with the given id. Region ids
// must be unique; a collision is a *duplicate-id*
// error.
func (d *Document) NewRegion(id string) (*Region, error) {
	if _, exists := d.regions[id]; exists {
		return nil, errs.New(errs.KindDuplicateID, "model.NewRegion", "region id "+id+" already registered", nil)
	}
	r := newRegion(id)
	d.regions[id] = r
	d.regionOrder = append(d.regionOrder, id)
	return r, nil
}

// Region looks up a region by id.
func (d *Document) Region(id string) (*Region, bool) {
	r, ok := d.regions[id]
	return r, ok
}

// Regions returns every region in declaration order.
func (d *Document) Regions() []*Region {
	out := make([]*Region, 0, len(d.regionOrder))
	for _, id := range d.regionOrder {
		out = append(out, d.regions[id])
	}
	return out
}

// RemoveRegion unregisters a region. Any content element still referencing
// it is not cleared automatically; callers that skip clearing the reference
// will simply see a *missing-region* error at ISD generation time.
func (d *Document) RemoveRegion(id string) {
	delete(d.regions, id)
	for i, rid := range d.regionOrder {
		if rid == id {
			d.regionOrder = append(d.regionOrder[:i], d.regionOrder[i+1:]...)
			break
		}
	}
}

// InitialValue returns the document-level initial value for p, if set.
func (d *Document) InitialValue(p style.Property) (style.Value, bool) {
	v, ok := d.initialValues[p]
	return v, ok
}

// SetInitialValue overrides the default initial value for p at the
// document level.
func (d *Document) SetInitialValue(p style.Property, v style.Value) error {
	if err := style.Validate(p, v); err != nil {
		return err
	}
	d.initialValues[p] = v
	return nil
}
