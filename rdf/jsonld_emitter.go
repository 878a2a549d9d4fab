package rdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// JSONLDEmitter buffers triples as N-Quads text and, on Close, converts
// them to a single JSON-LD document via json-gold. It is this module's
// only consumer of json-gold directly, and of cachecontrol transitively
// through json-gold's default HTTP document loader. No remote context is
// ever fetched here, so cachecontrol stays wired but unexercised.
type JSONLDEmitter struct {
	w    io.Writer
	buf  bytes.Buffer
	base string
}

// NewJSONLDEmitter returns a JSONLDEmitter that writes one JSON-LD
// document, in expanded form (a top-level array of node objects), to w
// when Close is called. base is passed to json-gold as the base IRI
// option.
func NewJSONLDEmitter(w io.Writer, base string) *JSONLDEmitter {
	return &JSONLDEmitter{w: w, base: base}
}

// Emit appends one N-Quads line to the internal buffer; nothing is
// written to w until Close.
func (j *JSONLDEmitter) Emit(s, p, o Term) error {
	_, err := fmt.Fprintf(&j.buf, "%s %s %s .\n", renderTerm(s), renderTerm(p), renderTerm(o))
	return err
}

// Close converts the buffered N-Quads into a JSON-LD document and writes
// it to the underlying writer as indented JSON.
func (j *JSONLDEmitter) Close() error {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions(j.base)
	opts.Format = "application/n-quads"

	doc, err := proc.FromRDF(j.buf.String(), opts)
	if err != nil {
		return fmt.Errorf("jsonld emitter: converting from rdf: %w", err)
	}
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
