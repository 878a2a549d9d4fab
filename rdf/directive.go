package rdf

import "strings"

// readDirectiveKeyword reads the ASCII-letter keyword following '@', used
// to recognize "base" and "prefix" case-insensitively.
func readDirectiveKeyword(src CharSource) string {
	var sb strings.Builder
	for {
		r, ok := src.peek()
		if !ok || !isAsciiLetter(r) {
			break
		}
		sb.WriteRune(r)
		src.advance()
	}
	return sb.String()
}

// parseAtDirective parses a "@base" or "@prefix" directive, with the
// leading '@' already consumed.
func parseAtDirective(src CharSource, ctx *Context) error {
	kw := readDirectiveKeyword(src)
	return runDirective(src, ctx, strings.ToLower(kw))
}

// parseBareDirective parses a SPARQL-style BASE/PREFIX directive (no
// leading '@'); name is already known to be "base" or "prefix".
func parseBareDirective(src CharSource, ctx *Context, name string) error {
	return runDirective(src, ctx, name)
}

func runDirective(src CharSource, ctx *Context, name string) error {
	switch name {
	case "base":
		return parseBaseDirectiveBody(src, ctx)
	case "prefix":
		return parsePrefixDirectiveBody(src, ctx)
	default:
		return &ParseError{Kind: ErrBadDirective, Directive: name}
	}
}

func parseBaseDirectiveBody(src CharSource, ctx *Context) error {
	skipWhitespaceAndComments(src)
	r, ok := src.advance()
	if !ok || r != '<' {
		return &ParseError{Kind: ErrBadDirective, Directive: "base"}
	}
	iri, err := readIRIRef(src)
	if err != nil {
		return err
	}
	ctx.SetBase(ctx.ResolveIRI(iri))
	return expectTerminator(src)
}

func parsePrefixDirectiveBody(src CharSource, ctx *Context) error {
	skipWhitespaceAndComments(src)
	prefix := readPNChars(src)
	r, ok := src.advance()
	if !ok || r != ':' {
		return &ParseError{Kind: ErrBadDirective, Directive: "prefix"}
	}
	skipWhitespaceAndComments(src)
	r2, ok2 := src.advance()
	if !ok2 || r2 != '<' {
		return &ParseError{Kind: ErrBadDirective, Directive: "prefix"}
	}
	iri, err := readIRIRef(src)
	if err != nil {
		return err
	}
	ctx.Bind(prefix, ctx.ResolveIRI(iri))
	return expectTerminator(src)
}

// expectTerminator skips whitespace/comments and consumes the '.' that
// must end every directive and statement.
func expectTerminator(src CharSource) error {
	skipWhitespaceAndComments(src)
	r, ok := src.advance()
	if !ok || r != '.' {
		return &ParseError{Kind: ErrMissingTerminator}
	}
	return nil
}
