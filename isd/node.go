// Package isd generates the Intermediate Synchronic Document: a flat,
// style-resolved, timing-free snapshot of a model.Document at an instant.
// An ISD is independent of its source document once built - it holds no
// pointers back into the CDM.
package isd

import (
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/style"
)

// Node is one element of a materialized region's subtree. Styles holds a
// fully resolved value for every property of the style vocabulary; Text elements
// carry Text and nothing else.
type Node struct {
	Kind     model.Kind
	Lang     string
	Text     string
	Styles   map[style.Property]style.Value
	Children []*Node
}

// Region is one materialized region of the ISD, with its own resolved
// styles and the content subtree assigned to it.
type Region struct {
	ID       string
	Styles   map[style.Property]style.Value
	Children []*Node
}

// Document is the ISD itself: the regions materialized at the instant it
// was generated for, in the source document's declaration order.
type Document struct {
	Regions []*Region
}
