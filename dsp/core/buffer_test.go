package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestEnsureLenGrowAndEmpty(t *testing.T) {
	out := EnsureLen(make([]float64, 2), 16)
	if len(out) != 16 {
		t.Fatalf("len = %d, want 16", len(out))
	}

	if got := EnsureLen(out, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
