package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	t.Parallel()

	gen := NewUUIDGenerator()
	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected uuid, got %q: %v", first, err)
	}
}

func TestShort(t *testing.T) {
	t.Parallel()

	if got := Short("3f2b9c1a-77de-4c1b-9d0e-1a2b3c4d5e6f"); got != "3f2b9c1a77" {
		t.Fatalf("unexpected short id: %s", got)
	}
	if got := Short("abc"); got != "abc" {
		t.Fatalf("unexpected short id for short input: %s", got)
	}
}
