package rdf

import "strings"

// readPNChars reads zero or more characters of a prefixed-name component
// (PN_CHARS_BASE/PN_CHARS plus interior '.'), stopping before ':',
// whitespace, or any other delimiter. A '.' is only consumed when a
// further name character follows, so a trailing '.' is left for the
// caller to treat as a statement terminator.
func readPNChars(src CharSource) string {
	var sb strings.Builder
	for {
		r, ok := src.peek()
		if !ok {
			break
		}
		if r == '.' {
			nr, ok2 := peekAfterDot(src)
			if !ok2 || !isPNChars(nr) {
				break
			}
			sb.WriteRune(r)
			src.advance()
			continue
		}
		if isPNChars(r) {
			sb.WriteRune(r)
			src.advance()
			continue
		}
		break
	}
	return sb.String()
}

// readPNPrefixOrKeyword reads a full prefix-name/keyword token starting
// with first (already consumed by the driver's dispatch on character
// class). It is used both for the PN_PREFIX of a prefixed name and for
// the bare BASE/PREFIX keyword forms, which share the same lexical shape
// up to the point a ':' or whitespace disambiguates them.
func readPNPrefixOrKeyword(src CharSource, first rune) string {
	return string(first) + readPNChars(src)
}

// isBareDirectiveKeyword reports whether word (already read, not
// followed by ':') is BASE or PREFIX case-insensitively and is
// immediately followed by whitespace. A prefixed name using "base" or
// "prefix" as its actual namespace prefix is still a valid prefixed name
// whenever a ':' follows instead.
func isBareDirectiveKeyword(word string, next rune, nextOK bool) (name string, ok bool) {
	if !nextOK || !isWhitespace(next) {
		return "", false
	}
	lower := strings.ToLower(word)
	if lower == "base" || lower == "prefix" {
		return lower, true
	}
	return "", false
}

// readBlankNodeLabel reads a blank-node label after the leading '_' and
// ':' have already been consumed.
func readBlankNodeLabel(src CharSource) (string, error) {
	r, ok := src.advance()
	if !ok || !(isPNCharsU(r) || isAsciiDigit(r)) {
		return "", &ParseError{Kind: ErrUnexpectedCharacter, Char: r, State: "blank node label"}
	}
	var sb strings.Builder
	sb.WriteRune(r)
	sb.WriteString(readPNChars(src))
	return sb.String(), nil
}
