package style

import "github.com/sandflow/ttconv/ratime"

func allUnits(units ...ratime.Unit) map[ratime.Unit]bool {
	m := make(map[ratime.Unit]bool, len(units))
	for _, u := range units {
		m[u] = true
	}
	return m
}

var lengthUnits = allUnits(ratime.UnitCell, ratime.UnitPercent, ratime.UnitPixel, ratime.UnitEm, ratime.UnitRH, ratime.UnitRW)

// properties is the single table driving every property's cascade,
// validation, and domain behavior.
var properties = map[Property]Metadata{
	Color: {
		Name: "color", Domain: DomainColor, Default: ColorValue(ratime.ColorWhite),
		Inheritable: true, Animatable: true,
	},
	BackgroundColor: {
		Name: "backgroundColor", Domain: DomainColor, Default: ColorValue(ratime.Transparent),
		Inheritable: false, Animatable: true, InheritsFromRegion: true,
	},
	FontFamily: {
		Name: "fontFamily", Domain: DomainFontFamilyList, Default: FontListValue([]string{"default"}),
		Inheritable: true, Animatable: false,
	},
	FontSize: {
		Name: "fontSize", Domain: DomainLength, Default: LengthValue(mustLen(1, 1, ratime.UnitCell)),
		Inheritable: true, Animatable: true, AllowedUnits: lengthUnits,
	},
	FontStyle: {
		Name: "fontStyle", Domain: DomainEnum, Default: EnumValue("normal"),
		Inheritable: true, Animatable: true, AllowedEnum: []string{"normal", "italic"},
	},
	FontWeight: {
		Name: "fontWeight", Domain: DomainEnum, Default: EnumValue("normal"),
		Inheritable: true, Animatable: true, AllowedEnum: []string{"normal", "bold"},
	},
	LineHeight: {
		Name: "lineHeight", Domain: DomainEnum, Default: EnumValue("normal"),
		Inheritable: true, Animatable: true, AllowedEnum: []string{"normal"}, AllowedUnits: lengthUnits,
	},
	Opacity: {
		Name: "opacity", Domain: DomainFraction, Default: FractionValue(1.0),
		Inheritable: false, Animatable: true, InheritsFromRegion: true,
	},
	TextAlign: {
		Name: "textAlign", Domain: DomainEnum, Default: EnumValue("start"),
		Inheritable: true, Animatable: false,
		AllowedEnum: []string{"start", "end", "left", "center", "right"},
	},
	TextDecoration: {
		Name: "textDecoration", Domain: DomainEnum, Default: EnumValue("none"),
		Inheritable: true, Animatable: true,
		AllowedEnum: []string{"none", "underline", "lineThrough", "overline"},
	},
	Direction: {
		Name: "direction", Domain: DomainEnum, Default: EnumValue("ltr"),
		Inheritable: true, Animatable: false, AllowedEnum: []string{"ltr", "rtl"},
	},
	WritingMode: {
		Name: "writingMode", Domain: DomainEnum, Default: EnumValue("lrtb"),
		Inheritable: false, Animatable: false, InheritsFromRegion: true,
		AllowedEnum: []string{"lrtb", "rltb", "tbrl", "tblr"},
	},
	Display: {
		Name: "display", Domain: DomainEnum, Default: EnumValue("auto"),
		Inheritable: false, Animatable: false, AllowedEnum: []string{"auto", "none"},
	},
	DisplayAlign: {
		Name: "displayAlign", Domain: DomainEnum, Default: EnumValue("before"),
		Inheritable: false, Animatable: false, InheritsFromRegion: true,
		AllowedEnum: []string{"before", "center", "after"},
	},
	Extent: {
		Name: "extent", Domain: DomainLengthPair,
		Default:     LengthPairValue(mustLen(100, 1, ratime.UnitPercent), mustLen(100, 1, ratime.UnitPercent)),
		Inheritable: false, Animatable: true, InheritsFromRegion: true, AllowedUnits: lengthUnits,
	},
	Origin: {
		Name: "origin", Domain: DomainLengthPair,
		Default:     LengthPairValue(mustLen(0, 1, ratime.UnitPercent), mustLen(0, 1, ratime.UnitPercent)),
		Inheritable: false, Animatable: true, InheritsFromRegion: true, AllowedUnits: lengthUnits,
	},
	Padding: {
		Name: "padding", Domain: DomainLengthQuad,
		Default: LengthQuadValue(zeroLen(), zeroLen(), zeroLen(), zeroLen()),
		Inheritable: false, Animatable: false, InheritsFromRegion: true, AllowedUnits: lengthUnits,
	},
	ShowBackground: {
		Name: "showBackground", Domain: DomainEnum, Default: EnumValue("always"),
		Inheritable: false, Animatable: false, InheritsFromRegion: true,
		AllowedEnum: []string{"always", "whenActive"},
	},
	Overflow: {
		Name: "overflow", Domain: DomainEnum, Default: EnumValue("hidden"),
		Inheritable: false, Animatable: false, InheritsFromRegion: true,
		AllowedEnum: []string{"visible", "hidden"},
	},
	WrapOption: {
		Name: "wrapOption", Domain: DomainEnum, Default: EnumValue("wrap"),
		Inheritable: true, Animatable: false, AllowedEnum: []string{"wrap", "noWrap"},
	},
	UnicodeBidi: {
		Name: "unicodeBidi", Domain: DomainEnum, Default: EnumValue("normal"),
		Inheritable: false, Animatable: false,
		AllowedEnum: []string{"normal", "embed", "bidiOverride"},
	},
	Visibility: {
		Name: "visibility", Domain: DomainEnum, Default: EnumValue("visible"),
		Inheritable: true, Animatable: true, AllowedEnum: []string{"visible", "hidden"},
	},
	Ruby: {
		Name: "ruby", Domain: DomainEnum, Default: EnumValue("none"),
		Inheritable: false, Animatable: false,
		AllowedEnum: []string{"none", "container", "base", "baseContainer", "text", "textContainer", "delimiter"},
	},
	RubyPosition: {
		Name: "rubyPosition", Domain: DomainEnum, Default: EnumValue("outside"),
		Inheritable: true, Animatable: false, AllowedEnum: []string{"before", "after", "outside"},
	},
	RubyAlign: {
		Name: "rubyAlign", Domain: DomainEnum, Default: EnumValue("center"),
		Inheritable: true, Animatable: false,
		AllowedEnum: []string{"start", "center", "end", "spaceAround", "spaceBetween", "withBase"},
	},
}

func mustLen(num, den int64, u ratime.Unit) ratime.Length {
	l, err := ratime.NewLength(num, den, u)
	if err != nil {
		panic(err)
	}
	return l
}

func zeroLen() ratime.Length { return mustLen(0, 1, ratime.UnitPixel) }
