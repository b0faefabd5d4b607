// Package arena implements a growable slot allocator whose references
// carry a generation so that a reference to a freed slot can be told
// apart from a reference to whatever later reuses that slot.
package arena

// Ref refers to a slot of an [Arena]. The zero Ref never refers to a
// live slot.
type Ref struct {
	idx int
	gen uint64
}

// Index returns the slot index that r refers to.
func (r Ref) Index() int {
	return r.idx
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.gen == 0
}

type slot[T any] struct {
	val T
	gen uint64
}

// Arena stores values of type T in reusable slots. A zero value Arena
// is ready to use.
//
// Every allocation stamps its slot with a generation taken from a
// counter that only ever increases, so a Ref held across a Free,
// Reset, or reuse of its slot is reliably reported as stale instead
// of silently aliasing the new occupant.
type Arena[T any] struct {
	slots []slot[T]
	free  []int
	gen   uint64
	live  int
}

// Alloc stores v in a free slot, growing the arena if necessary, and
// returns a reference to it. Pointers previously returned by Get may
// be invalidated.
func (a *Arena[T]) Alloc(v T) Ref {
	a.gen++

	var i int
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		i = len(a.slots)
		a.slots = append(a.slots, slot[T]{})
	}

	a.slots[i] = slot[T]{val: v, gen: a.gen}
	a.live++
	return Ref{idx: i, gen: a.gen}
}

// Free releases the slot referred to by r. It returns false without
// doing anything if r is stale.
func (a *Arena[T]) Free(r Ref) bool {
	s := a.lookup(r)
	if s == nil {
		return false
	}

	*s = slot[T]{}
	a.free = append(a.free, r.idx)
	a.live--
	return true
}

// Get returns a pointer to the value referred to by r or nil if r is
// stale. The pointer is only good until the next call to Alloc or
// Reset.
func (a *Arena[T]) Get(r Ref) *T {
	s := a.lookup(r)
	if s == nil {
		return nil
	}
	return &s.val
}

// Contains reports whether r refers to a live slot.
func (a *Arena[T]) Contains(r Ref) bool {
	return a.lookup(r) != nil
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.live
}

// Reset frees every slot with an index of n or greater and releases
// the memory that they were holding on to. Slots below n are left
// alone.
func (a *Arena[T]) Reset(n int) {
	if n >= len(a.slots) {
		return
	}
	n = max(n, 0)

	clear(a.slots[n:])
	a.slots = a.slots[:n]

	free := a.free[:0]
	for _, i := range a.free {
		if i < n {
			free = append(free, i)
		}
	}
	a.free = free

	a.live = 0
	for _, s := range a.slots {
		if s.gen != 0 {
			a.live++
		}
	}
}

func (a *Arena[T]) lookup(r Ref) *slot[T] {
	if r.gen == 0 || r.idx < 0 || r.idx >= len(a.slots) {
		return nil
	}

	s := &a.slots[r.idx]
	if s.gen != r.gen {
		return nil
	}
	return s
}
