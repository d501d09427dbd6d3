// Package filter implements the pluggable CDM/ISD transform contract:
// named transformers registered in a table, looked up and composed by
// the CLI's repeatable --filter flag.
package filter

import (
	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/isd"
	"github.com/sandflow/ttconv/model"
)

// Filter transforms a CDM, an ISD, or both. Either function may be nil if
// the filter only operates on one representation; a nil function is a
// no-op for that representation. A filter MUST preserve its input's
// invariants or return a *filter-error.
type Filter struct {
	Name   string
	CDM    func(*model.Document, map[string]any) (*model.Document, error)
	ISD    func(*isd.Document, map[string]any) (*isd.Document, error)
}

var registry = map[string]Filter{}

// Register adds f to the named filter table. Intended to be called from
// package init() functions of filter implementations.
func Register(f Filter) {
	registry[f.Name] = f
}

// Lookup resolves a filter by name.
func Lookup(name string) (Filter, bool) {
	f, ok := registry[name]
	return f, ok
}

// Chain composes named filters left to right, applying each to the CDM in
// turn.
func Chain(names []string, cfg map[string]map[string]any, d *model.Document) (*model.Document, error) {
	for _, name := range names {
		f, ok := Lookup(name)
		if !ok {
			return nil, errs.Newf(errs.KindFilterError, "filter.Chain", "unknown filter %q", name)
		}
		if f.CDM == nil {
			continue
		}
		next, err := f.CDM(d, cfg[name])
		if err != nil {
			return nil, errs.New(errs.KindFilterError, "filter.Chain", "filter "+name+" failed", err)
		}
		d = next
	}
	return d, nil
}
