package rdf

import "testing"

func TestNewOptionsDefaults(t *testing.T) {
	o := newOptions(nil)
	if o.maxStatementBytes != DefaultMaxStatementBytes {
		t.Fatalf("maxStatementBytes = %d, want %d", o.maxStatementBytes, DefaultMaxStatementBytes)
	}
	if o.maxDepth != DefaultMaxDepth {
		t.Fatalf("maxDepth = %d, want %d", o.maxDepth, DefaultMaxDepth)
	}
	if o.seedContext != nil {
		t.Fatal("seedContext should be nil by default")
	}
}

func TestWithMaxStatementBytes(t *testing.T) {
	o := newOptions([]Option{WithMaxStatementBytes(1024)})
	if o.maxStatementBytes != 1024 {
		t.Fatalf("maxStatementBytes = %d, want 1024", o.maxStatementBytes)
	}
}

func TestWithMaxDepth(t *testing.T) {
	o := newOptions([]Option{WithMaxDepth(3)})
	if o.maxDepth != 3 {
		t.Fatalf("maxDepth = %d, want 3", o.maxDepth)
	}
}

func TestWithSeedContext(t *testing.T) {
	seed := NewContext()
	seed.Bind("ex", "http://e/")
	o := newOptions([]Option{WithSeedContext(seed)})
	if o.seedContext != seed {
		t.Fatal("seedContext should be the same pointer passed in")
	}
}
