package rdf

// Context is the mutable prefix/@base namespace mapping a parse accumulates
// and returns to the caller. The zero value is not usable; construct one
// with NewContext.
type Context struct {
	prefixes map[string]string
	base     string
	hasBase  bool
}

// NewContext returns an empty Context: no bound prefixes, no base IRI.
func NewContext() *Context {
	return &Context{prefixes: make(map[string]string)}
}

// Bind records prefix (the empty string for the default prefix) as
// resolving to iri.
func (c *Context) Bind(prefix, iri string) {
	c.prefixes[prefix] = iri
}

// Prefix returns the IRI bound to prefix, and whether it is bound.
func (c *Context) Prefix(prefix string) (string, bool) {
	iri, ok := c.prefixes[prefix]
	return iri, ok
}

// Prefixes returns a snapshot of all bound prefixes.
func (c *Context) Prefixes() map[string]string {
	out := make(map[string]string, len(c.prefixes))
	for k, v := range c.prefixes {
		out[k] = v
	}
	return out
}

// SetBase sets the current @base IRI.
func (c *Context) SetBase(iri string) {
	c.base = iri
	c.hasBase = true
}

// Base returns the current @base IRI and whether one has been set.
func (c *Context) Base() (string, bool) {
	return c.base, c.hasBase
}

// Resolve expands a prefixed name (prefix, local) to an absolute IRI by
// concatenation. It returns an UnknownPrefix ParseError if prefix is not
// bound.
func (c *Context) Resolve(prefix, local string) (string, error) {
	ns, ok := c.prefixes[prefix]
	if !ok {
		return "", &ParseError{Kind: ErrUnknownPrefix, Prefix: prefix}
	}
	return ns + local, nil
}

// ResolveIRI resolves a possibly-relative IRI reference against the
// current @base, per RFC 3986.
func (c *Context) ResolveIRI(iri string) string {
	if c.hasBase {
		return resolveIRI(c.base, iri)
	}
	return iri
}
