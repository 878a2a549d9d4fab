package rdf

import (
	"errors"
	"testing"
)

func TestParseErrorIsMatchesByKind(t *testing.T) {
	err := &ParseError{Kind: ErrUnknownPrefix, Prefix: "ex"}
	if !errors.Is(err, &ParseError{Kind: ErrUnknownPrefix}) {
		t.Fatal("errors.Is should match on Kind alone")
	}
	if errors.Is(err, &ParseError{Kind: ErrBadDirective}) {
		t.Fatal("errors.Is should not match a different Kind")
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &ParseError{Kind: ErrInvalidIRI, Cause: cause}
	if errors.Unwrap(err) != cause {
		t.Fatal("Unwrap should return Cause")
	}
}

func TestParseErrorMessagesMentionKindContext(t *testing.T) {
	if got := (&ParseError{Kind: ErrUnknownPrefix, Prefix: "ex"}).Error(); got == "" {
		t.Fatal("Error() should not be empty")
	}
	if got := (&ParseError{Kind: ErrMissingTerminator, State: "PredicateList"}).Error(); got == "" {
		t.Fatal("Error() should not be empty")
	}
}

func TestTruncateSnippet(t *testing.T) {
	short := "abc"
	if got := truncateSnippet(short); got != short {
		t.Fatalf("truncateSnippet(%q) = %q, want unchanged", short, got)
	}
	long := make([]byte, snippetLimit+10)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateSnippet(string(long))
	if len(got) != snippetLimit {
		t.Fatalf("truncateSnippet length = %d, want %d", len(got), snippetLimit)
	}
}

func TestErrorKindString(t *testing.T) {
	if ErrUnknownPrefix.String() != "UnknownPrefix" {
		t.Fatalf("String() = %q, want UnknownPrefix", ErrUnknownPrefix.String())
	}
	var unknown ErrorKind = 255
	if unknown.String() != "Unknown" {
		t.Fatalf("String() on an out-of-range kind = %q, want Unknown", unknown.String())
	}
}
