package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSessionGenerator_PrefixesUUID(t *testing.T) {
	gen := NewSessionGenerator("bs")

	got, err := gen.NewID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, ok := strings.CutPrefix(got, "bs_")
	if !ok {
		t.Fatalf("unexpected id prefix: got=%q", got)
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		t.Fatalf("unexpected uuid parse error: %v", err)
	}
	if parsed.Version() != 7 {
		t.Fatalf("unexpected uuid version: got=%d want=7", parsed.Version())
	}
}

func TestSessionGenerator_IDsAreUnique(t *testing.T) {
	gen := NewSessionGenerator("")

	seen := make(map[string]struct{}, 64)
	for i := 0; i < 64; i++ {
		got, err := gen.NewID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[got]; dup {
			t.Fatalf("duplicate id: %s", got)
		}
		seen[got] = struct{}{}
	}
}
