package rdf

// PN_CHARS_BASE range tables covering the Turtle name-start character
// class: ASCII letters plus the Unicode ranges used for internationalized
// names. Checked by linear scan over a small table of [lo,hi] pairs,
// since these tables are small and this is not a hot-path optimization
// target.
var pnCharsBaseRanges = [][2]rune{
	{'A', 'Z'},
	{'a', 'z'},
	{0x00C0, 0x00D6},
	{0x00D8, 0x00F6},
	{0x00F8, 0x02FF},
	{0x0370, 0x037D},
	{0x037F, 0x1FFF},
	{0x200C, 0x200D},
	{0x2070, 0x218F},
	{0x2C00, 0x2FEF},
	{0x3001, 0xD7FF},
	{0xF900, 0xFDCF},
	{0xFDF0, 0xFFFD},
	{0x10000, 0xEFFFF},
}

func inRanges(r rune, ranges [][2]rune) bool {
	for _, rg := range ranges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// isPNCharsBase reports whether r may start a prefixed-name component.
func isPNCharsBase(r rune) bool {
	return inRanges(r, pnCharsBaseRanges)
}

// isPNCharsU is PN_CHARS_BASE plus the underscore, used for blank-node
// label and prefix first characters.
func isPNCharsU(r rune) bool {
	return r == '_' || isPNCharsBase(r)
}

// isPNChars is the character set allowed after the first character of a
// local name: PN_CHARS_BASE plus '_', '-', digits, U+00B7, and the
// combining marks U+0300-U+036F.
func isPNChars(r rune) bool {
	if isPNCharsU(r) || r == '-' || r == 0x00B7 {
		return true
	}
	if r >= '0' && r <= '9' {
		return true
	}
	if r >= 0x0300 && r <= 0x036F {
		return true
	}
	return false
}
