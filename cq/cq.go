// Package cq implements simple concurrent queues.
package cq

import (
	"sync"

	"deedles.dev/xlist"
)

// A Queue concurrently collects values and returns them in FIFO
// order. A zero value Queue is ready to use.
//
// The queue's contents are held in an [xlist.List] that is only ever
// touched by the queue's own goroutine.
type Queue[T any] struct {
	start sync.Once

	done  chan struct{}
	close sync.Once

	add chan T
	get chan T
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.done = make(chan struct{})
		q.add = make(chan T)
		q.get = make(chan T)

		go q.run()
	})
}

// Stop stops the queue. Values that have not been received are
// discarded. It is safe to call more than once.
func (q *Queue[T]) Stop() {
	q.init()
	q.close.Do(func() {
		close(q.done)
	})
}

// Add returns a channel that enqueues values sent to it. Closing this
// channel will cause the channel returned by Get to be closed once
// the Queue's contents are emptied, similar to how a regular channel
// works. The Queue never closes this channel itself, so a send after
// the Queue has stopped blocks forever.
func (q *Queue[T]) Add() chan<- T {
	q.init()
	return q.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.init()
	return q.get
}

func (q *Queue[T]) run() {
	add := q.add
	var get chan T

	defer close(q.get)

	var s xlist.List[T]
	for {
		select {
		case <-q.done:
			return

		case v, ok := <-add:
			if !ok {
				add = nil
				if s.Len() == 0 {
					return
				}
				continue
			}

			s.PushBack(v)
			get = q.get

		case get <- peek(&s):
			if err := s.Delete(s.Begin()); err != nil {
				panic(err)
			}
			if s.Len() == 0 {
				if add == nil {
					return
				}
				get = nil
			}
		}
	}
}

func peek[T any](s *xlist.List[T]) T {
	v, _ := s.Front()
	return v
}
