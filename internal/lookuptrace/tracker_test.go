package lookuptrace

import (
	"sync"
	"testing"
)

func TestNopTracker(t *testing.T) {
	tr := Nop()
	if tr.Enabled() {
		t.Fatal("nop tracker must report disabled")
	}
	tr.RecordLookup("A", []string{"demo.Outer"}) // must not panic
}

func TestRecordingTracker(t *testing.T) {
	tr := NewRecording()
	if !tr.Enabled() {
		t.Fatal("recording tracker must report enabled")
	}

	owners := []string{"demo.Outer"}
	tr.RecordLookup("A", owners)
	owners[0] = "mutated" // recorded events must not alias caller slices

	events := tr.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Name != "A" || events[0].Owners[0] != "demo.Outer" {
		t.Fatalf("event = %+v", events[0])
	}
}

func TestRecordingTrackerConcurrent(t *testing.T) {
	tr := NewRecording()
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				tr.RecordLookup("X", nil)
			}
		}()
	}
	wg.Wait()
	if got := len(tr.Events()); got != 500 {
		t.Fatalf("recorded %d events, want 500", got)
	}
}
