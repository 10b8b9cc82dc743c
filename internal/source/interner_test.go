package source

import (
	"fmt"
	"sync"
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("NoStringID should map to the empty string, got %q, ok=%v", s, ok)
	}

	id1 := interner.Intern("Inner")
	if id1 == NoStringID {
		t.Error("Intern must not return NoStringID for a non-empty string")
	}

	id2 := interner.Intern("Inner")
	if id1 != id2 {
		t.Errorf("repeated Intern must return the same ID: %d != %d", id1, id2)
	}

	if s, ok := interner.Lookup(id1); !ok || s != "Inner" {
		t.Errorf("Lookup returned %q, ok=%v", s, ok)
	}

	id3 := interner.Intern("Outer")
	if id3 == id1 {
		t.Error("distinct strings must get distinct IDs")
	}

	if interner.Len() != 3 { // "", "Inner", "Outer"
		t.Errorf("Len = %d, want 3", interner.Len())
	}
}

func TestInternerNormalization(t *testing.T) {
	interner := NewInterner()

	// U+00E9 vs e + U+0301: same identifier after NFC.
	composed := interner.Intern("café")
	decomposed := interner.Intern("café")
	if composed != decomposed {
		t.Errorf("NFC-equivalent spellings must intern to one ID: %d != %d", composed, decomposed)
	}
}

func TestInternerConcurrent(t *testing.T) {
	interner := NewInterner()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	ids := make([][]StringID, workers)
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			ids[w] = make([]StringID, perWorker)
			for i := range perWorker {
				ids[w][i] = interner.Intern(fmt.Sprintf("name%03d", i))
			}
		}(w)
	}
	wg.Wait()

	for w := 1; w < workers; w++ {
		for i := range perWorker {
			if ids[w][i] != ids[0][i] {
				t.Fatalf("worker %d saw ID %d for name%03d, worker 0 saw %d", w, ids[w][i], i, ids[0][i])
			}
		}
	}
}
