package errata

import "errata/arena"

// arenaHint sizes a fresh payload's first arena block. Most errata carry a
// handful of short notes, so one block usually suffices.
const arenaHint = 512

// payload is the shared unit behind one or more Errata handles: the arena
// that owns every annotation text, the note list, the aggregate severity and
// the reference count. It is mutated only through a sole-owner handle.
type payload struct {
	arena *arena.Arena
	notes annotationList
	level Severity
	refs  int
}

func newPayload() *payload {
	return &payload{
		arena: arena.New(arenaHint),
		level: DefaultSeverity,
		refs:  1,
	}
}

// destroy releases the arena and with it every annotation text. Called
// exactly once, when the reference count reaches zero.
func (p *payload) destroy() {
	p.notes.clear()
	p.arena.Release()
}
