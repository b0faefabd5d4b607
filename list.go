package xlist

import (
	"fmt"

	"deedles.dev/xlist/internal/arena"
)

// List is a doubly-linked list. A zero value List is ready to use.
//
// The list is circular. A sentinel node that never holds an element
// sits between the last element and the first, and an iterator that
// refers to the sentinel is the end position returned by [List.End].
//
// A List must not be copied after first use. Use [List.Clone] to get
// an independent copy. A List is not safe for concurrent use.
type List[T any] struct {
	_ noCopy

	nodes    arena.Arena[node[T]]
	sentinel arena.Ref
	size     int
}

type node[T any] struct {
	val        T
	prev, next arena.Ref
}

// New returns a new, empty list.
func New[T any]() *List[T] {
	var l List[T]
	l.init()
	return &l
}

func (l *List[T]) init() {
	if !l.sentinel.IsZero() {
		return
	}

	l.sentinel = l.nodes.Alloc(node[T]{})
	s := l.node(l.sentinel)
	s.prev, s.next = l.sentinel, l.sentinel
}

func (l *List[T]) node(r arena.Ref) *node[T] {
	return l.nodes.Get(r)
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// ConstBegin returns a read-only iterator to the first element, or
// the end iterator if the list is empty.
func (l *List[T]) ConstBegin() ConstIterator[T] {
	l.init()
	return ConstIterator[T]{c: cursor[T]{list: l, ref: l.node(l.sentinel).next}}
}

// Begin returns an iterator to the first element, or the end iterator
// if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l.ConstBegin()}
}

// ConstEnd returns a read-only iterator to the end position.
func (l *List[T]) ConstEnd() ConstIterator[T] {
	l.init()
	return ConstIterator[T]{c: cursor[T]{list: l, ref: l.sentinel}}
}

// End returns an iterator to the end position. Stepping forward from
// the last element or backward from the first element yields the end
// position.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l.ConstEnd()}
}

// Insert adds v to the list immediately before pos and returns an
// iterator to it. Inserting before the end iterator appends v and
// inserting before [List.Begin] prepends it. pos may be either a
// [ConstIterator] or an [Iterator] but it must belong to l and refer
// to an element still in the list or to the end position.
//
// Iterators to other elements are unaffected.
func (l *List[T]) Insert(pos Position[T], v T) (Iterator[T], error) {
	c := pos.cursor()
	if err := l.checkReference(c); err != nil {
		return Iterator[T]{}, fmt.Errorf("insert: %w", err)
	}

	ref := l.insertBefore(c.ref, v)
	return Iterator[T]{ConstIterator[T]{c: cursor[T]{list: l, ref: ref}}}, nil
}

// Delete removes the element that pos refers to. pos must belong to l
// and must refer to an element, not to the end position. After a
// successful Delete, pos and all of its copies are stale.
//
// Iterators to other elements are unaffected.
func (l *List[T]) Delete(pos Position[T]) error {
	c := pos.cursor()
	if err := l.checkElement(c); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	l.remove(c.ref)
	return nil
}

// Clear removes every element from the list. Every iterator to an
// element becomes stale. End iterators remain valid.
func (l *List[T]) Clear() {
	if l.sentinel.IsZero() {
		return
	}

	// The sentinel is always the first allocation.
	l.nodes.Reset(l.sentinel.Index() + 1)
	s := l.node(l.sentinel)
	s.prev, s.next = l.sentinel, l.sentinel
	l.size = 0

	l.verify()
}

// PushBack adds v to the end of the list and returns an iterator to
// it.
func (l *List[T]) PushBack(v T) Iterator[T] {
	l.init()
	ref := l.insertBefore(l.sentinel, v)
	return Iterator[T]{ConstIterator[T]{c: cursor[T]{list: l, ref: ref}}}
}

// PushFront adds v to the beginning of the list and returns an
// iterator to it.
func (l *List[T]) PushFront(v T) Iterator[T] {
	l.init()
	ref := l.insertBefore(l.node(l.sentinel).next, v)
	return Iterator[T]{ConstIterator[T]{c: cursor[T]{list: l, ref: ref}}}
}

// Front returns the first element of the list. If the list is empty,
// it returns the zero value and false.
func (l *List[T]) Front() (v T, ok bool) {
	if l.size == 0 {
		return v, false
	}
	return l.node(l.node(l.sentinel).next).val, true
}

// Back returns the last element of the list. If the list is empty,
// it returns the zero value and false.
func (l *List[T]) Back() (v T, ok bool) {
	if l.size == 0 {
		return v, false
	}
	return l.node(l.node(l.sentinel).prev).val, true
}

// Clone returns a new list containing a copy of each element of l in
// the same order. Values are copied by assignment.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	if l.sentinel.IsZero() {
		return c
	}

	for ref := l.node(l.sentinel).next; ref != l.sentinel; {
		n := l.node(ref)
		c.insertBefore(c.sentinel, n.val)
		ref = n.next
	}
	return c
}

func (l *List[T]) insertBefore(at arena.Ref, v T) arena.Ref {
	// Alloc can move nodes, so look them up after it.
	ref := l.nodes.Alloc(node[T]{val: v})
	n := l.node(ref)
	next := l.node(at)

	n.prev, n.next = next.prev, at
	l.node(next.prev).next = ref
	next.prev = ref
	l.size++

	l.verify()
	return ref
}

func (l *List[T]) remove(ref arena.Ref) {
	n := l.node(ref)
	l.node(n.prev).next = n.next
	l.node(n.next).prev = n.prev
	l.nodes.Free(ref)
	l.size--

	l.verify()
}

func (l *List[T]) checkReference(c cursor[T]) error {
	switch {
	case c.list == nil:
		return ErrInvalidIterator
	case c.list != l:
		return ErrForeignIterator
	case !l.nodes.Contains(c.ref):
		return ErrStaleIterator
	}
	return nil
}

func (l *List[T]) checkElement(c cursor[T]) error {
	if err := l.checkReference(c); err != nil {
		return err
	}
	if c.ref == l.sentinel {
		return ErrEndIterator
	}
	return nil
}

// check walks the chain in both directions and makes sure that it
// agrees with the element count.
func (l *List[T]) check() error {
	if l.sentinel.IsZero() {
		if l.size != 0 {
			return fmt.Errorf("uninitialized list has size %v", l.size)
		}
		return nil
	}

	var count int
	prev := l.sentinel
	for ref := l.node(l.sentinel).next; ref != l.sentinel; {
		n := l.node(ref)
		if n == nil {
			return fmt.Errorf("element %v links to a freed node", count)
		}
		if n.prev != prev {
			return fmt.Errorf("element %v has a broken back link", count)
		}

		count++
		if count > l.size {
			return fmt.Errorf("chain is longer than size %v", l.size)
		}
		prev, ref = ref, n.next
	}

	if l.node(l.sentinel).prev != prev {
		return fmt.Errorf("sentinel does not link back to the last element")
	}
	if count != l.size {
		return fmt.Errorf("chain has %v elements but size is %v", count, l.size)
	}
	if live := l.nodes.Len() - 1; live != l.size {
		return fmt.Errorf("%v nodes allocated for %v elements", live, l.size)
	}
	return nil
}

func (l *List[T]) verify() {
	if !debug {
		return
	}
	if err := l.check(); err != nil {
		panic(err)
	}
}
