package xlist

import (
	"fmt"

	"deedles.dev/xlist/internal/arena"
)

// Position is implemented by [ConstIterator] and [Iterator]. It is
// used to pass either kind of iterator to methods that only need to
// know which element is being referred to.
type Position[T any] interface {
	cursor() cursor[T]
}

type cursor[T any] struct {
	list *List[T]
	ref  arena.Ref
}

func (c *cursor[T]) step(forward bool) {
	if c.list == nil {
		panic(fmt.Errorf("advance: %w", ErrInvalidIterator))
	}

	n := c.list.node(c.ref)
	if n == nil {
		panic(fmt.Errorf("advance: %w", ErrStaleIterator))
	}

	if forward {
		c.ref = n.next
		return
	}
	c.ref = n.prev
}

func (c cursor[T]) element() (*node[T], error) {
	if c.list == nil {
		return nil, ErrInvalidIterator
	}

	n := c.list.node(c.ref)
	if n == nil {
		return nil, ErrStaleIterator
	}
	if c.ref == c.list.sentinel {
		return nil, ErrEndIterator
	}
	return n, nil
}

// ConstIterator is a read-only position in a [List]. The zero value
// refers to nothing and is not valid.
//
// Two iterators are equal if they refer to the same element of the
// same list, so iterators can be compared with == as well as with
// [ConstIterator.Equal].
type ConstIterator[T any] struct {
	c cursor[T]
}

func (it ConstIterator[T]) cursor() cursor[T] {
	return it.c
}

// Next moves it one element toward the end of the list and returns
// it. Moving forward from the last element yields the end position
// and moving forward from the end position yields the first element.
//
// Next panics if it is not a valid reference.
func (it *ConstIterator[T]) Next() *ConstIterator[T] {
	it.c.step(true)
	return it
}

// Prev moves it one element toward the beginning of the list and
// returns it. Moving backward from the first element yields the end
// position and moving backward from the end position yields the last
// element.
//
// Prev panics if it is not a valid reference.
func (it *ConstIterator[T]) Prev() *ConstIterator[T] {
	it.c.step(false)
	return it
}

// PostNext is like [ConstIterator.Next] but it returns a copy of it
// from before it was moved.
func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	prev := *it
	it.c.step(true)
	return prev
}

// PostPrev is like [ConstIterator.Prev] but it returns a copy of it
// from before it was moved.
func (it *ConstIterator[T]) PostPrev() ConstIterator[T] {
	prev := *it
	it.c.step(false)
	return prev
}

// Get returns the element that it refers to. It returns an error if
// it is not valid.
func (it ConstIterator[T]) Get() (v T, err error) {
	n, err := it.c.element()
	if err != nil {
		return v, err
	}
	return n.val, nil
}

// Value is like [ConstIterator.Get] but panics if it is not valid.
func (it ConstIterator[T]) Value() T {
	v, err := it.Get()
	if err != nil {
		panic(fmt.Errorf("dereference: %w", err))
	}
	return v
}

// Equal reports whether it and other refer to the same position in
// the same list.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.c == other.cursor()
}

// IsValid reports whether it refers to an element that is still in
// its list. The end position is not valid.
func (it ConstIterator[T]) IsValid() bool {
	_, err := it.c.element()
	return err == nil
}

// IsValidReference reports whether it refers either to an element
// that is still in its list or to the end position. Only valid
// references may be moved or passed to [List.Insert].
func (it ConstIterator[T]) IsValidReference() bool {
	return it.c.list != nil && it.c.list.nodes.Contains(it.c.ref)
}

func (it ConstIterator[T]) isDummy() bool {
	return it.c.list != nil && it.c.ref == it.c.list.sentinel
}

// Iterator is a position in a [List] that can also be used to modify
// the element at that position. It supports everything that
// [ConstIterator] does.
type Iterator[T any] struct {
	ConstIterator[T]
}

// Const returns a read-only copy of it.
func (it Iterator[T]) Const() ConstIterator[T] {
	return it.ConstIterator
}

// Next is like [ConstIterator.Next].
func (it *Iterator[T]) Next() *Iterator[T] {
	it.c.step(true)
	return it
}

// Prev is like [ConstIterator.Prev].
func (it *Iterator[T]) Prev() *Iterator[T] {
	it.c.step(false)
	return it
}

// PostNext is like [ConstIterator.PostNext].
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.c.step(true)
	return prev
}

// PostPrev is like [ConstIterator.PostPrev].
func (it *Iterator[T]) PostPrev() Iterator[T] {
	prev := *it
	it.c.step(false)
	return prev
}

// Set replaces the element that it refers to with v. It returns an
// error if it is not valid.
func (it Iterator[T]) Set(v T) error {
	n, err := it.c.element()
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}
	n.val = v
	return nil
}
