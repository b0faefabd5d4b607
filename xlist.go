// Package xlist provides a generic doubly-linked list with stable,
// bidirectional iterators that detect when the element they refer to
// has been removed.
package xlist

import "errors"

var (
	// ErrInvalidIterator is returned when an iterator does not refer
	// to anything, such as a zero value iterator.
	ErrInvalidIterator = errors.New("invalid iterator")

	// ErrForeignIterator is returned when an iterator that belongs to
	// one list is passed to another.
	ErrForeignIterator = errors.New("iterator belongs to a different list")

	// ErrStaleIterator is returned when the element that an iterator
	// referred to has been removed from its list.
	ErrStaleIterator = errors.New("stale iterator")

	// ErrEndIterator is returned when an operation that requires an
	// element is given the end iterator.
	ErrEndIterator = errors.New("end iterator")
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
