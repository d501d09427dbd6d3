package ttml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

var namedColors = map[string]ratime.Color{
	"white": ratime.ColorWhite, "black": ratime.ColorBlack,
	"red": ratime.ColorRed, "green": ratime.ColorGreen, "blue": ratime.ColorBlue,
	"yellow": ratime.ColorYellow, "cyan": ratime.ColorCyan, "magenta": ratime.ColorMagenta,
	"transparent": ratime.Transparent,
}

// ParseColor parses a TTML <tt:color> value: a named color, "#rrggbb",
// "#rrggbbaa", or "rgb(r,g,b)"/"rgba(r,g,b,a)".
func ParseColor(s string) (ratime.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return ratime.Color{}, errs.Newf(errs.KindParse, "ttml.ParseColor", "malformed color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return ratime.Color{}, errs.Newf(errs.KindParse, "ttml.ParseColor", "malformed color %q", s)
		}
		if len(hex) == 6 {
			return ratime.Opaque(byte(v>>16), byte(v>>8), byte(v)), nil
		}
		return ratime.Color{R: byte(v >> 24), G: byte(v >> 16), B: byte(v >> 8), A: byte(v)}, nil
	}
	if strings.HasPrefix(s, "rgb") {
		inner := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(s, "rgba"), "rgb"), ")")
		inner = strings.TrimPrefix(inner, "(")
		parts := strings.Split(inner, ",")
		nums := make([]int, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return ratime.Color{}, errs.Newf(errs.KindParse, "ttml.ParseColor", "malformed color %q", s)
			}
			nums[i] = n
		}
		if len(nums) == 3 {
			return ratime.Opaque(byte(nums[0]), byte(nums[1]), byte(nums[2])), nil
		}
		if len(nums) == 4 {
			return ratime.Color{R: byte(nums[0]), G: byte(nums[1]), B: byte(nums[2]), A: byte(nums[3])}, nil
		}
	}
	return ratime.Color{}, errs.Newf(errs.KindParse, "ttml.ParseColor", "unrecognized color %q", s)
}

func FormatColor(c ratime.Color) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseLength parses a single TTML <tt:length> value, e.g. "10%", "1.5c",
// "80px".
func ParseLength(s string) (ratime.Length, error) {
	s = strings.TrimSpace(s)
	for _, u := range []ratime.Unit{ratime.UnitPercent, ratime.UnitPixel, ratime.UnitCell, ratime.UnitEm, ratime.UnitRH, ratime.UnitRW} {
		if strings.HasSuffix(s, string(u)) {
			numPart := strings.TrimSuffix(s, string(u))
			f, err := strconv.ParseFloat(numPart, 64)
			if err != nil {
				return ratime.Length{}, errs.Newf(errs.KindParse, "ttml.ParseLength", "malformed length %q", s)
			}
			num, den := ratFromFloat(f)
			return ratime.NewLength(num, den, u)
		}
	}
	return ratime.Length{}, errs.Newf(errs.KindParse, "ttml.ParseLength", "unrecognized length %q", s)
}

func ratFromFloat(f float64) (int64, int64) {
	const den = int64(1000000)
	return int64(f * float64(den)), den
}

func FormatLength(l ratime.Length) string {
	f, _ := l.Value.Float64()
	return fmt.Sprintf("%g%s", f, l.Unit)
}

// ParseLengths parses a whitespace-separated list of lengths (extent,
// origin: two; padding: up to four).
func ParseLengths(s string) ([]ratime.Length, error) {
	fields := strings.Fields(s)
	out := make([]ratime.Length, 0, len(fields))
	for _, f := range fields {
		l, err := ParseLength(f)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// AttrToValue converts a TTML attribute string value to a style.Value for
// the given property, per the property's declared domain.
func AttrToValue(p style.Property, s string) (style.Value, error) {
	m := style.Get(p)
	switch m.Domain {
	case style.DomainEnum:
		return style.EnumValue(s), nil
	case style.DomainLength:
		l, err := ParseLength(s)
		if err != nil {
			return style.Value{}, err
		}
		return style.LengthValue(l), nil
	case style.DomainLengthPair:
		ls, err := ParseLengths(s)
		if err != nil {
			return style.Value{}, err
		}
		if len(ls) != 2 {
			return style.Value{}, errs.Newf(errs.KindParse, "ttml.AttrToValue", "%s: expected two lengths, got %q", p, s)
		}
		return style.LengthPairValue(ls[0], ls[1]), nil
	case style.DomainLengthQuad:
		ls, err := ParseLengths(s)
		if err != nil {
			return style.Value{}, err
		}
		if len(ls) != 4 {
			return style.Value{}, errs.Newf(errs.KindParse, "ttml.AttrToValue", "%s: expected four lengths, got %q", p, s)
		}
		return style.LengthQuadValue(ls[0], ls[1], ls[2], ls[3]), nil
	case style.DomainColor:
		c, err := ParseColor(s)
		if err != nil {
			return style.Value{}, err
		}
		return style.ColorValue(c), nil
	case style.DomainFraction:
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return style.Value{}, errs.Newf(errs.KindParse, "ttml.AttrToValue", "%s: malformed fraction %q", p, s)
		}
		if strings.HasSuffix(s, "%") {
			f /= 100
		}
		return style.FractionValue(f), nil
	case style.DomainFontFamilyList:
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(strings.Trim(parts[i], `"'`))
		}
		return style.FontListValue(parts), nil
	default:
		return style.Value{}, errs.Newf(errs.KindParse, "ttml.AttrToValue", "%s: unsupported domain", p)
	}
}

// ValueToAttr renders a style.Value back to its TTML attribute string form.
func ValueToAttr(p style.Property, v style.Value) string {
	m := style.Get(p)
	switch m.Domain {
	case style.DomainEnum:
		return v.Enum
	case style.DomainLength:
		return FormatLength(v.Length)
	case style.DomainLengthPair, style.DomainLengthQuad:
		parts := make([]string, len(v.Lengths))
		for i, l := range v.Lengths {
			parts[i] = FormatLength(l)
		}
		return strings.Join(parts, " ")
	case style.DomainColor:
		return FormatColor(v.Color)
	case style.DomainFraction:
		return strconv.FormatFloat(v.Frac, 'g', -1, 64)
	case style.DomainFontFamilyList:
		return strings.Join(v.Fonts, ", ")
	default:
		return ""
	}
}
