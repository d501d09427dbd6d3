package model

// Kind is the closed variant tag for every content-element type. A tagged
// struct with a Kind field is used instead of an interface-per-kind
// hierarchy, matching the grain of a small, closed element set.
type Kind int

const (
	KindBody Kind = iota
	KindDiv
	KindP
	KindSpan
	KindRuby
	KindRb
	KindRt
	KindRbc
	KindRtc
	KindRp
	KindBr
	KindText

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindBody:
		return "body"
	case KindDiv:
		return "div"
	case KindP:
		return "p"
	case KindSpan:
		return "span"
	case KindRuby:
		return "ruby"
	case KindRb:
		return "rb"
	case KindRt:
		return "rt"
	case KindRbc:
		return "rbc"
	case KindRtc:
		return "rtc"
	case KindRp:
		return "rp"
	case KindBr:
		return "br"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// allowedChildren enumerates which child kinds a parent of a given kind may
// hold. Enforced on every mutation; any violation is a *structure* error.
var allowedChildren = map[Kind]map[Kind]bool{
	KindBody: {KindDiv: true},
	KindDiv:  {KindDiv: true, KindP: true},
	KindP:    {KindSpan: true, KindBr: true, KindRuby: true, KindText: true},
	KindSpan: {KindSpan: true, KindBr: true, KindRuby: true, KindText: true},
	KindRuby: {KindRb: true, KindRt: true, KindRbc: true, KindRtc: true, KindRp: true},
	KindRb:   {KindSpan: true, KindText: true},
	KindRt:   {KindSpan: true, KindText: true},
	KindRbc:  {KindRb: true},
	KindRtc:  {KindRt: true, KindRp: true},
	KindRp:   {KindText: true},
	// KindBr, KindText: no children allowed (absent from the map).
}

// CanContain reports whether a parent of kind p may hold a direct child of
// kind c.
func CanContain(p, c Kind) bool {
	return allowedChildren[p][c]
}

// CanHaveChildren reports whether kind k may have any children at all.
func CanHaveChildren(k Kind) bool {
	return len(allowedChildren[k]) > 0
}
