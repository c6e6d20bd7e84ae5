package errata

import "testing"

// swapSinks installs reg as the process sink list for one test.
func swapSinks(t *testing.T, reg []Sink) {
	t.Helper()
	old := sinks
	sinks = reg
	t.Cleanup(func() { sinks = old })
}

func TestSinkFiresOnAbandonedNotes(t *testing.T) {
	var order []string
	var texts []string
	swapSinks(t, nil)
	RegisterSink(func(e *Errata) {
		order = append(order, "first")
		for _, a := range e.Annotations() {
			texts = append(texts, string(a.Text()))
		}
		if e.Severity() != SevError {
			t.Errorf("sink sees severity %v, want ERROR", e.Severity())
		}
	})
	RegisterSink(func(e *Errata) {
		order = append(order, "second")
		if e.Count() != 2 {
			t.Errorf("second sink sees Count = %d, want 2", e.Count())
		}
	})

	e := New()
	e.Note(SevError, "disk full")
	e.Note(SevWarning, "retry scheduled")
	e.Release()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("sinks ran %v, want registration order", order)
	}
	if len(texts) != 2 || texts[0] != "retry scheduled" || texts[1] != "disk full" {
		t.Errorf("sink saw notes %v, want newest-first originals", texts)
	}
	if e.Count() != 0 {
		t.Error("handle must be detached after release")
	}
}

func TestSinkNotFiredWhenCleared(t *testing.T) {
	fired := 0
	swapSinks(t, []Sink{func(*Errata) { fired++ }})

	e := New().Note(SevEmergency, "unplugged")
	e.Clear()
	if fired != 0 {
		t.Errorf("clear must suppress sink notification, fired %d times", fired)
	}
}

func TestSinkNotFiredWhenEmpty(t *testing.T) {
	fired := 0
	swapSinks(t, []Sink{func(*Errata) { fired++ }})

	e := New()
	e.Alloc(16) // payload exists but carries no notes
	e.Release()
	if fired != 0 {
		t.Errorf("empty payload must not notify, fired %d times", fired)
	}
}

func TestSinkFiresBelowFailureToo(t *testing.T) {
	// Abandonment is gated on remaining notes, not on severity.
	fired := 0
	swapSinks(t, []Sink{func(*Errata) { fired++ }})

	e := New().Note(SevInfo, "left behind")
	e.Release()
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
}

func TestSinkFiresOnceForSharedPayload(t *testing.T) {
	fired := 0
	swapSinks(t, []Sink{func(*Errata) { fired++ }})

	e := New().Note(SevError, "shared failure")
	a := e.Clone()
	b := e.Clone()

	a.Release()
	b.Release()
	if fired != 0 {
		t.Fatalf("sink fired before the last handle released (%d times)", fired)
	}
	e.Release()
	if fired != 1 {
		t.Errorf("fired %d times, want exactly 1", fired)
	}
}
