package errata

import (
	"errors"
	"fmt"
)

// ErrSharedWrite is the panic value raised when a mutating call reaches an
// Errata whose payload is shared with other live handles. Shared write
// access is a programming error: release or clone-merge instead.
var ErrSharedWrite = errors.New("errata: write to shared errata")

// Errata is a handle to a leveled, ordered collection of diagnostic
// annotations. The zero value is empty and ok; the payload is created
// lazily by the first mutating call.
//
// Handles created by Clone share one payload. Only a sole owner may mutate;
// the last handle to release a payload that still carries annotations
// triggers the registered sinks. Errata is not safe for concurrent use.
type Errata struct {
	data *payload
}

// New returns an empty Errata. Equivalent to new(Errata).
func New() *Errata {
	return &Errata{}
}

// ensure returns the payload, creating it on first use.
func (e *Errata) ensure() *payload {
	if e.data == nil {
		e.data = newPayload()
	}
	return e.data
}

// writable returns the payload for mutation. There is no copy-on-write:
// mutating state visible to other handles panics with ErrSharedWrite.
func (e *Errata) writable() *payload {
	if e.data == nil {
		return e.ensure()
	}
	if e.data.refs > 1 {
		panic(ErrSharedWrite)
	}
	return e.data
}

// Note appends an annotation. The text is copied into the payload's arena.
// Returns e for chaining.
func (e *Errata) Note(level Severity, text string) *Errata {
	p := e.writable()
	return e.noteSpan(p, level, p.arena.LocalizeString(text))
}

// Notef formats with fmt and appends the result as an annotation.
func (e *Errata) Notef(level Severity, format string, args ...any) *Errata {
	return e.Note(level, fmt.Sprintf(format, args...))
}

// NoteLocalized appends an annotation whose text is already arena-owned
// (obtained from Alloc or Localize on this same Errata), skipping the copy.
func (e *Errata) NoteLocalized(level Severity, span []byte) *Errata {
	return e.noteSpan(e.writable(), level, span)
}

func (e *Errata) noteSpan(p *payload, level Severity, span []byte) *Errata {
	p.notes.prepend(&Annotation{level: level, text: span})
	p.level = max(p.level, level)
	return e
}

// Alloc returns a raw writable span of n bytes from the payload's arena,
// for callers that intern annotation text themselves.
func (e *Errata) Alloc(n int) []byte {
	return e.writable().arena.Alloc(n)
}

// Localize copies text into the payload's arena and returns the owned span,
// suitable for a later NoteLocalized.
func (e *Errata) Localize(text string) []byte {
	return e.writable().arena.LocalizeString(text)
}

// NoteAll copies every annotation of other into e, preserving other's
// relative order: other's newest note is still the newest of the copied run.
// other is left untouched.
func (e *Errata) NoteAll(other *Errata) *Errata {
	if other == nil || other.data == nil || other.data.notes.count() == 0 {
		return e
	}
	p := e.writable()
	// Walk oldest-first so that prepending reproduces other's order.
	anns := other.Annotations()
	for i := len(anns) - 1; i >= 0; i-- {
		e.noteSpan(p, anns[i].level, p.arena.Localize(anns[i].text))
	}
	return e
}

// Annotations returns the annotations newest-first. The returned slice is a
// snapshot; the annotations themselves still belong to the payload.
func (e *Errata) Annotations() []*Annotation {
	if e.data == nil {
		return nil
	}
	out := make([]*Annotation, 0, e.data.notes.count())
	for a := e.data.notes.head; a != nil; a = a.next {
		out = append(out, a)
	}
	return out
}

// Count returns the number of annotations.
func (e *Errata) Count() int {
	if e.data == nil {
		return 0
	}
	return e.data.notes.count()
}

// Empty reports whether e carries no annotations.
func (e *Errata) Empty() bool {
	return e.Count() == 0
}

// Severity returns the aggregate severity: the maximum over all annotation
// levels, or DefaultSeverity when there are none.
func (e *Errata) Severity() Severity {
	if e.data == nil {
		return DefaultSeverity
	}
	return e.data.level
}

// IsOK reports success: no payload, no annotations, or an aggregate
// severity below FailureSeverity.
func (e *Errata) IsOK() bool {
	return e.data == nil || e.data.notes.count() == 0 || e.data.level < FailureSeverity
}

// Clone returns a new handle sharing e's payload. Sharing is cheap; it
// exists to make returns efficient, not to grant shared write access: any
// mutating call while more than one handle is live panics with
// ErrSharedWrite. Cloning an empty Errata yields an independent empty one.
func (e *Errata) Clone() *Errata {
	if e.data != nil {
		e.data.refs++
	}
	return &Errata{data: e.data}
}

// Release gives up e's reference to the payload. When the last reference
// goes, a payload still carrying annotations is reported to every
// registered sink, in registration order, with e still intact; only after
// all sinks return is the arena torn down. Release on an empty Errata is a
// no-op, and e is detached afterwards either way.
func (e *Errata) Release() {
	p := e.data
	if p == nil {
		return
	}
	p.refs--
	if p.refs == 0 {
		if p.notes.count() > 0 {
			for _, s := range sinks {
				s(e)
			}
		}
		p.destroy()
	}
	e.data = nil
}

// Clear empties the annotation list and releases e's reference. This is the
// caller's way of marking the notes handled: a cleared Errata never
// triggers sink notification, whatever its severity was.
func (e *Errata) Clear() *Errata {
	if e.data != nil {
		e.data.notes.clear()
		e.data.level = DefaultSeverity
		e.Release()
	}
	return e
}
