package storage

import (
	"strings"
	"testing"
)

func TestMapStoreRoundTrip(t *testing.T) {
	store, err := NewMapStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewMapStore failed: %v", err)
	}

	doc := `<svg viewBox="0 0 960 540"></svg>`
	if err := store.Write("ground.svg", doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !store.Exists("ground.svg") {
		t.Error("Exists returned false for written document")
	}

	got, err := store.Read("ground.svg")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != doc {
		t.Errorf("round trip mismatch: %q", got)
	}
}

func TestMapStoreReadMissing(t *testing.T) {
	store, err := NewMapStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := store.Read("nope.svg"); err == nil {
		t.Error("expected error for missing document")
	}
	if store.Exists("nope.svg") {
		t.Error("Exists returned true for missing document")
	}
}

func TestMapStoreList(t *testing.T) {
	store, err := NewMapStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"basement.svg", "ground.svg"} {
		if err := store.Write(name, "<svg/>"); err != nil {
			t.Fatal(err)
		}
	}
	// Non-SVG leftovers are ignored.
	if err := store.Write("notes.txt", "x"); err != nil {
		t.Fatal(err)
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(infos))
	}
	names := []string{infos[0].Name, infos[1].Name}
	joined := strings.Join(names, ",")
	if !strings.Contains(joined, "basement") || !strings.Contains(joined, "ground") {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestMapStoreOverwrite(t *testing.T) {
	store, err := NewMapStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Write("first.svg", "old"); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("first.svg", "new"); err != nil {
		t.Fatal(err)
	}

	got, err := store.Read("first.svg")
	if err != nil {
		t.Fatal(err)
	}
	if got != "new" {
		t.Errorf("overwrite failed: %q", got)
	}
}
