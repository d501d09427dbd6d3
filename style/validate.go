package style

import (
	"fmt"

	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/ratime"
)

// Validate checks that v is within the declared domain of p, returning a
// *errs.Error (KindDomain) if not. This is the single gate every style
// setter (inline, animation step, initial-values table) must pass through.
func Validate(p Property, v Value) error {
	m := Get(p)
	switch m.Domain {
	case DomainEnum:
		if len(m.AllowedEnum) == 0 {
			return nil
		}
		for _, e := range m.AllowedEnum {
			if e == v.Enum {
				return nil
			}
		}
		return errs.New(errs.KindDomain, "style.Validate", fmt.Sprintf("%s: value %q not in %v", p, v.Enum, m.AllowedEnum), nil)
	case DomainLength:
		return validateUnit(p, m, v.Length)
	case DomainLengthPair:
		if len(v.Lengths) != 2 {
			return errs.New(errs.KindDomain, "style.Validate", fmt.Sprintf("%s: expected a length pair", p), nil)
		}
		for _, l := range v.Lengths {
			if err := validateUnit(p, m, l); err != nil {
				return err
			}
		}
		return nil
	case DomainLengthQuad:
		if len(v.Lengths) != 4 {
			return errs.New(errs.KindDomain, "style.Validate", fmt.Sprintf("%s: expected four lengths", p), nil)
		}
		for _, l := range v.Lengths {
			if err := validateUnit(p, m, l); err != nil {
				return err
			}
		}
		return nil
	case DomainColor:
		return nil // Color's Go type cannot represent an out-of-range component.
	case DomainFraction:
		if v.Frac < 0 || v.Frac > 1 {
			return errs.New(errs.KindDomain, "style.Validate", fmt.Sprintf("%s: %v outside [0,1]", p, v.Frac), nil)
		}
		return nil
	case DomainFontFamilyList:
		if len(v.Fonts) == 0 {
			return errs.New(errs.KindDomain, "style.Validate", fmt.Sprintf("%s: empty font family list", p), nil)
		}
		return nil
	default:
		return nil
	}
}

func validateUnit(p Property, m Metadata, l ratime.Length) error {
	if !ratime.ValidUnits[l.Unit] {
		return errs.New(errs.KindDomain, "style.Validate", fmt.Sprintf("%s: unknown unit %q", p, l.Unit), nil)
	}
	if m.AllowedUnits != nil && !m.AllowedUnits[l.Unit] {
		return errs.New(errs.KindDomain, "style.Validate", fmt.Sprintf("%s: unit %q not allowed", p, l.Unit), nil)
	}
	return nil
}
