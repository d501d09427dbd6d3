package model

import "github.com/sandflow/ttconv/errs"

// attachSubtree walks e and its descendants, binding each to doc. Used when
// a detached subtree is inserted under an attached parent, or installed as
// a document's root body.
func attachSubtree(e *Element, doc *Document) {
	e.doc = doc
	for _, c := range e.children {
		attachSubtree(c, doc)
	}
}

func detachSubtree(e *Element) {
	e.doc = nil
	for _, c := range e.children {
		detachSubtree(c)
	}
}

// AppendChild appends child as the last child of e. child must be detached
// (no parent, no document) and of a kind e.Kind() is allowed to contain
//; violating either is a *structure* error.
func (e *Element) AppendChild(child *Element) error {
	return e.InsertChild(len(e.children), child)
}

// InsertChild inserts child at position i among e's children (0 <= i <=
// len(e.Children())). child must be detached.
func (e *Element) InsertChild(i int, child *Element) error {
	if child.parent != nil {
		return errs.New(errs.KindStructure, "model.InsertChild", "child already has a parent", nil)
	}
	if !CanContain(e.kind, child.kind) {
		return errs.New(errs.KindStructure, "model.InsertChild", e.kind.String()+" cannot contain "+child.kind.String(), nil)
	}
	if i < 0 || i > len(e.children) {
		return errs.New(errs.KindStructure, "model.InsertChild", "index out of range", nil)
	}
	e.children = append(e.children, nil)
	copy(e.children[i+1:], e.children[i:])
	e.children[i] = child
	child.parent = e
	if e.doc != nil {
		attachSubtree(child, e.doc)
	}
	return nil
}

// RemoveChild detaches the child at index i, returning it. The returned
// element and its subtree are no longer attached to any document.
func (e *Element) RemoveChild(i int) *Element {
	child := e.children[i]
	e.children = append(e.children[:i], e.children[i+1:]...)
	child.parent = nil
	detachSubtree(child)
	return child
}

// ChildAt returns the child at index i.
func (e *Element) ChildAt(i int) *Element { return e.children[i] }

// Root returns the root ancestor of e (the element for which Parent() is
// nil), which for an attached element is always the document's Body.
func (e *Element) Root() *Element {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Walk visits e and every descendant in document order, depth-first,
// stopping early if visit returns false.
func (e *Element) Walk(visit func(*Element) bool) {
	if !visit(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(visit)
	}
}

// Reparent moves e (with its subtree) to become a child of newParent at
// index i. Both must belong to the same document, or both be detached.
func (e *Element) Reparent(newParent *Element, i int) error {
	if e.doc != newParent.doc {
		return errs.New(errs.KindStructure, "model.Reparent", "cannot move an element across documents", nil)
	}
	if e.parent != nil {
		for idx, c := range e.parent.children {
			if c == e {
				e.parent.children = append(e.parent.children[:idx], e.parent.children[idx+1:]...)
				break
			}
		}
		e.parent = nil
	}
	return newParent.InsertChild(i, e)
}
