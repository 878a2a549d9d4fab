package rdf

// Well-known RDF and XSD vocabulary IRIs the Turtle grammar shorthands
// expand to.
const (
	rdfNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdNS = "http://www.w3.org/2001/XMLSchema#"

	rdfTypeIRI  = rdfNS + "type"
	rdfFirstIRI = rdfNS + "first"
	rdfRestIRI  = rdfNS + "rest"
	rdfNilIRI   = rdfNS + "nil"

	xsdIntegerIRI = xsdNS + "integer"
	xsdDecimalIRI = xsdNS + "decimal"
	xsdDoubleIRI  = xsdNS + "double"
	xsdBooleanIRI = xsdNS + "boolean"
	xsdStringIRI  = xsdNS + "string"
)

// RDFType is the IRI the "a" predicate shorthand expands to.
var RDFType = IRI{Value: rdfTypeIRI}

// RDFFirst, RDFRest, RDFNil are the IRIs used to encode RDF collections.
var (
	RDFFirst = IRI{Value: rdfFirstIRI}
	RDFRest  = IRI{Value: rdfRestIRI}
	RDFNil   = IRI{Value: rdfNilIRI}
)

// XSD datatype IRIs for the literal shortcuts the grammar recognizes
// without an explicit ^^ datatype.
var (
	XSDInteger = IRI{Value: xsdIntegerIRI}
	XSDDecimal = IRI{Value: xsdDecimalIRI}
	XSDDouble  = IRI{Value: xsdDoubleIRI}
	XSDBoolean = IRI{Value: xsdBooleanIRI}
	XSDString  = IRI{Value: xsdStringIRI}
)
