package rdf

import "strconv"

// blankNodeGen is the monotonic blank-node label generator. Labels are
// scoped to a single parse; two parsers never share a counter.
type blankNodeGen struct {
	n int
}

// fresh returns the next generated label, without the "_:" sigil, e.g.
// "b0", "b1", ....
func (g *blankNodeGen) fresh() string {
	id := "b" + strconv.Itoa(g.n)
	g.n++
	return id
}
