//go:build go1.23

package xlist

import (
	"iter"
	"slices"
)

// All returns an iterator over the elements of the list from front to
// back. The list must not be modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.ConstBegin(); !it.isDummy(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of the list from
// back to front. The list must not be modified during iteration.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.ConstEnd()
		for !it.Prev().isDummy() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Iterators returns an iterator over iterators to each element of the
// list from front to back. It is safe to delete the currently-yielded
// element from the list during iteration, but the list must not be
// modified in any other way.
func (l *List[T]) Iterators() iter.Seq[Iterator[T]] {
	return func(yield func(Iterator[T]) bool) {
		it := l.Begin()
		for !it.isDummy() {
			if !yield(it.PostNext()) {
				return
			}
		}
	}
}

// Collect returns the elements of the list as a slice.
func (l *List[T]) Collect() []T {
	return slices.AppendSeq(make([]T, 0, l.Len()), l.All())
}
