// Package style declares the IMSC 1.1 Text Profile style vocabulary: every
// property's domain, default, inheritance, and animatability is data in one
// table (properties in vocabulary.go) rather than code duplicated per
// property.
package style

import "github.com/sandflow/ttconv/ratime"

// Property identifies a style property. The set is closed; Metadata below
// is the single source of truth for every property's behavior.
type Property int

const (
	Color Property = iota
	BackgroundColor
	FontFamily
	FontSize
	FontStyle
	FontWeight
	LineHeight
	Opacity
	TextAlign
	TextDecoration
	Direction
	WritingMode
	Display
	DisplayAlign
	Extent
	Origin
	Padding
	ShowBackground
	Overflow
	WrapOption
	UnicodeBidi
	Visibility
	Ruby
	RubyPosition
	RubyAlign

	numProperties
)

func (p Property) String() string {
	if m, ok := properties[p]; ok {
		return m.Name
	}
	return "unknown"
}

// Domain classifies the shape of a property's value space.
type Domain int

const (
	DomainEnum Domain = iota
	DomainLength
	DomainLengthPair
	DomainLengthQuad
	DomainColor
	DomainFraction
	DomainFontFamilyList
)

// Metadata is everything the cascade/validation engine needs to know about
// one property, looked up once from the properties table.
type Metadata struct {
	Name              string
	Domain            Domain
	Default           Value
	Inheritable       bool
	Animatable        bool
	InheritsFromRegion bool // region participates as a cascade root for this property
	AllowedUnits      map[ratime.Unit]bool
	AllowedEnum       []string
}

// Value is a tagged union covering every Domain. Exactly the fields
// matching m.Domain for the owning property are meaningful; the rest are
// zero, favoring one closed variant struct over an interface per domain.
type Value struct {
	Enum    string
	Length  ratime.Length
	Lengths []ratime.Length // pair (extent/origin) or quad (padding), in declaration order
	Color   ratime.Color
	Frac    float64 // fraction (opacity) or bool-as-1/0 for simple flags
	Fonts   []string
}

func EnumValue(s string) Value             { return Value{Enum: s} }
func LengthValue(l ratime.Length) Value     { return Value{Length: l} }
func ColorValue(c ratime.Color) Value       { return Value{Color: c} }
func FractionValue(f float64) Value         { return Value{Frac: f} }
func FontListValue(fs []string) Value       { return Value{Fonts: append([]string{}, fs...)} }
func LengthPairValue(a, b ratime.Length) Value {
	return Value{Lengths: []ratime.Length{a, b}}
}
func LengthQuadValue(a, b, c, d ratime.Length) Value {
	return Value{Lengths: []ratime.Length{a, b, c, d}}
}

// Get looks up a property's metadata. Panics on an out-of-range Property,
// which can only happen from programmer error (the set is closed).
func Get(p Property) Metadata {
	m, ok := properties[p]
	if !ok {
		panic("style: unknown property")
	}
	return m
}

// All returns every declared property, in declaration order.
func All() []Property {
	out := make([]Property, 0, numProperties)
	for p := Property(0); p < numProperties; p++ {
		if _, ok := properties[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ByName resolves a TTML/IMSC attribute local-name (e.g. "backgroundColor")
// to its Property, used by the TTML reader.
func ByName(name string) (Property, bool) {
	for p, m := range properties {
		if m.Name == name {
			return p, true
		}
	}
	return 0, false
}
