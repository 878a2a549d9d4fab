package rdf

// DefaultMaxStatementBytes bounds how much input a single statement (from
// the start of a subject through its terminating '.') may consume before
// the parser aborts, guarding against a runaway unbalanced [ or ( in
// untrusted input. The budget counts runes. Leaving it unset uses this
// default; WithMaxStatementBytes with a value <=0 disables the limit.
const DefaultMaxStatementBytes = 4 << 20

// DefaultMaxDepth bounds how many nested [ ... ] / ( ... ) structures may
// stack up inside a single statement before the parser aborts, guarding
// against unbounded recursion from input like [ [ [ [ ... ] ] ] ]. Leaving
// it unset uses this default; WithMaxDepth with a value <=0 disables the
// limit.
const DefaultMaxDepth = 256

// Options configures a Parse/ParseString call. A call with no Option
// arguments uses the defaults above; a zero Options value, by contrast,
// has both limits disabled.
type Options struct {
	maxStatementBytes int
	maxDepth          int
	seedContext       *Context
}

// Option configures an Options value, following the functional-options
// convention.
type Option func(*Options)

// WithMaxStatementBytes overrides the input budget for a single
// statement, counted in runes. A value <=0 disables the limit.
func WithMaxStatementBytes(n int) Option {
	return func(o *Options) { o.maxStatementBytes = n }
}

// WithMaxDepth overrides the nesting-depth limit for [ ... ] / ( ... )
// structures. A value <=0 disables the limit.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.maxDepth = n }
}

// WithSeedContext pre-populates the parse with bindings the caller has
// already established (e.g. xsd/rdf/rdfs). The same *Context is mutated
// in place and returned to the caller at EOF.
func WithSeedContext(c *Context) Option {
	return func(o *Options) { o.seedContext = c }
}

func newOptions(opts []Option) Options {
	o := Options{maxStatementBytes: DefaultMaxStatementBytes, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
