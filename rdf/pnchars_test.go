package rdf

import "testing"

func TestIsPNCharsBase(t *testing.T) {
	for _, r := range []rune{'a', 'Z', 0x00C0, 0x3001, 0x10000} {
		if !isPNCharsBase(r) {
			t.Fatalf("isPNCharsBase(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'_', '-', '.', '0', ' ', ':'} {
		if isPNCharsBase(r) {
			t.Fatalf("isPNCharsBase(%U) = true, want false", r)
		}
	}
}

func TestIsPNCharsU(t *testing.T) {
	if !isPNCharsU('_') {
		t.Fatal("isPNCharsU('_') should be true")
	}
	if !isPNCharsU('a') {
		t.Fatal("isPNCharsU('a') should be true")
	}
	if isPNCharsU('-') {
		t.Fatal("isPNCharsU('-') should be false")
	}
}

func TestIsPNChars(t *testing.T) {
	for _, r := range []rune{'a', '_', '-', '5', 0x00B7, 0x0300} {
		if !isPNChars(r) {
			t.Fatalf("isPNChars(%U) = false, want true", r)
		}
	}
	if isPNChars('.') {
		t.Fatal("isPNChars('.') should be false: '.' is only permitted mid-name via the dot-lookahead rule")
	}
	if isPNChars(' ') {
		t.Fatal("isPNChars(' ') should be false")
	}
}
