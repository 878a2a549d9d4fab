// Package rdf implements a streaming parser for the RDF Turtle (TTL)
// textual serialization.
//
// The parser is a pushdown state machine driven one character at a time
// over a CharSource, with an explicit frame stack standing in for
// recursion through nested predicate-object lists, blank-node property
// lists ([ ... ]), and RDF collections ( ... ). Parse and ParseString
// return every emitted Triple together with the Context of @prefix/@base
// bindings accumulated along the way; ParseWithEmitter writes the triples
// to a caller-supplied Emitter instead and returns only the Context.
//
//	triples, ctx, err := rdf.ParseString(context.Background(), `
//	    @prefix ex: <http://example.org/> .
//	    ex:s a ex:T .
//	`)
//
// Custom sinks implement the single-method Emitter interface; this
// package provides four: CollectingEmitter (the one Parse/ParseString use
// internally), StreamingEmitter (one line per triple), NTriplesEmitter
// (canonical ASCII-escaped N-Triples), and JSONLDEmitter (a JSON-LD
// document via github.com/piprate/json-gold).
//
// Supported grammar: base/prefix directives (both "@base"/"@prefix" and
// the bare SPARQL-style "BASE"/"PREFIX"), IRI references, prefixed
// names, blank-node labels, anonymous blank-node property lists,
// collections, string/numeric/boolean literals, language-tagged and
// explicitly-datatyped literals, and triple-quoted long strings.
// RDF/XML, TriG, N-Quads, and JSON-LD decoding are out of scope; callers
// needing those formats should reach for a different library.
package rdf
