package data

import (
	"testing"

	"github.com/samdwyer/tilewalker/internal/board"
	"github.com/samdwyer/tilewalker/internal/mapdef"
)

func TestNames(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("Expected at least one embedded map")
	}

	found := false
	for _, n := range names {
		if n == DefaultMap {
			found = true
		}
	}
	if !found {
		t.Errorf("Default map %q not among embedded maps %v", DefaultMap, names)
	}
}

func TestEmbeddedMapsBuild(t *testing.T) {
	// Every shipped map must parse, validate, and build.
	names, err := Names()
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range names {
		raw, err := ReadMap(name)
		if err != nil {
			t.Errorf("%s: ReadMap failed: %v", name, err)
			continue
		}
		def, err := mapdef.Parse(raw)
		if err != nil {
			t.Errorf("%s: Parse failed: %v", name, err)
			continue
		}
		if _, err := board.Build(def); err != nil {
			t.Errorf("%s: Build failed: %v", name, err)
		}
	}
}

func TestReadMapUnknown(t *testing.T) {
	if _, err := ReadMap("no-such-map"); err == nil {
		t.Error("ReadMap should fail for unknown names")
	}
}
