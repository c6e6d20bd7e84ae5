// Package arena implements a bump allocator: many small allocations served
// from large blocks, released all at once. An errata payload uses one Arena
// to hold every annotation text it owns, so the whole set of notes is torn
// down with a single Release.
//
// Not safe for concurrent use.
package arena

import (
	"fmt"

	"fortio.org/safecast"
)

// MinBlock is the smallest block an Arena will allocate.
const MinBlock = 64

// Arena hands out contiguous byte spans from internally managed blocks.
// Spans stay valid until Release.
type Arena struct {
	blocks   [][]byte // retired blocks, kept alive until Release
	cur      []byte   // active block; len = bytes used, cap = block size
	next     int      // size of the next block to allocate
	handed   uint64   // total bytes handed out over the arena's lifetime
	released bool
}

// New creates an Arena whose first block holds at least blockHint bytes.
// Hints below MinBlock are rounded up.
func New(blockHint int) *Arena {
	if blockHint < MinBlock {
		blockHint = MinBlock
	}
	return &Arena{
		cur:  make([]byte, 0, blockHint),
		next: blockHint * 2,
	}
}

// Alloc returns a writable span of n bytes. The span is zeroed and remains
// valid until Release. n must be non-negative.
func (a *Arena) Alloc(n int) []byte {
	a.check()
	if n < 0 {
		panic(fmt.Sprintf("arena: negative allocation size %d", n))
	}
	if cap(a.cur)-len(a.cur) < n {
		a.grow(n)
	}
	used := len(a.cur)
	a.cur = a.cur[: used+n : cap(a.cur)]
	a.handed += uint64(n)
	// Full slice expression: appending to the span must not clobber later
	// allocations from the same block.
	return a.cur[used : used+n : used+n]
}

// grow retires the active block and installs a fresh one with room for n.
func (a *Arena) grow(n int) {
	if len(a.cur) > 0 {
		a.blocks = append(a.blocks, a.cur)
	}
	size := a.next
	if size < n {
		size = n
	} else {
		a.next *= 2
	}
	a.cur = make([]byte, 0, size)
}

// Localize copies src into the arena and returns the arena-owned copy.
// The caller's buffer can be reused afterwards.
func (a *Arena) Localize(src []byte) []byte {
	span := a.Alloc(len(src))
	copy(span, src)
	return span
}

// LocalizeString copies s into the arena.
func (a *Arena) LocalizeString(s string) []byte {
	span := a.Alloc(len(s))
	copy(span, s)
	return span
}

// Allocated returns the total number of bytes handed out so far.
func (a *Arena) Allocated() int {
	n, err := safecast.Conv[int](a.handed)
	if err != nil {
		panic(fmt.Errorf("arena: allocated byte count overflow: %w", err))
	}
	return n
}

// Blocks returns how many blocks the arena currently holds.
func (a *Arena) Blocks() int {
	n := len(a.blocks)
	if cap(a.cur) > 0 {
		n++
	}
	return n
}

// Release drops every block at once. Every span the arena ever returned is
// invalid afterwards, and so is the arena itself.
func (a *Arena) Release() {
	a.check()
	a.blocks = nil
	a.cur = nil
	a.released = true
}

func (a *Arena) check() {
	if a.released {
		panic("arena: use after release")
	}
}
