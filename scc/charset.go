package scc

// specialChars overrides the small set of CEA-608 standard character codes
// that don't map onto plain ASCII at the same code point (CEA-608-B
// Table 11 "Special Characters").
var specialChars = map[byte]rune{
	0x27: '’', // right single quote
	0x2a: 'á', // á
	0x5c: 'é', // é
	0x5e: 'í', // í
	0x5f: 'ó', // ó
	0x60: 'ú', // ú
	0x7b: 'ç', // ç
	0x7c: '÷', // ÷
	0x7d: 'Ñ', // Ñ
	0x7e: 'ñ', // ñ
	0x7f: '█', // solid block
}

// standardChar decodes one standard (non-extended) CEA-608 character byte
// in the 0x20-0x7f range.
func standardChar(b byte) rune {
	if r, ok := specialChars[b]; ok {
		return r
	}
	return rune(b)
}

// extendedChars covers the extended Western European character set
// (CEA-608-B Table 12); b2 is in 0x20-0x3f. For codes outside this table
// extendedChar reports false and the decoder writes no character.
var extendedChars = map[byte]rune{
	0x20: 'Á', 0x21: 'É', 0x22: 'Ó', 0x23: 'Ú',
	0x24: 'Ü', 0x25: 'ü', 0x26: '‘', 0x27: '¡',
	0x28: '*', 0x29: '’', 0x2a: '─', 0x2b: '©',
	0x2c: '℠', 0x2d: '•', 0x2e: '“', 0x2f: '”',
	0x30: 'À', 0x31: 'Â', 0x32: 'Ç', 0x33: 'È',
	0x34: 'Ê', 0x35: 'Ë', 0x36: 'ë', 0x37: 'Î',
	0x38: 'Ï', 0x39: 'ï', 0x3a: 'Ô', 0x3b: 'Ù',
	0x3c: 'ù', 0x3d: 'Û', 0x3e: '«', 0x3f: '»',
}

func extendedChar(b2 byte) (rune, bool) {
	r, ok := extendedChars[b2]
	return r, ok
}
