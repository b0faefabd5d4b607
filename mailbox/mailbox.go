// Package mailbox implements an untyped message queue with selective
// receive.
package mailbox

import (
	"log/slog"
	"sync"

	"deedles.dev/xlist"
)

// Mailbox works similarly to a channel but is not tied to a specific
// type and features a dynamic buffer. Sends to a mailbox are always
// asynchronous. A zero-value Mailbox is ready to use.
type Mailbox struct {
	once sync.Once

	m sync.Mutex
	c sync.Cond

	queue xlist.List[any]
}

func (mb *Mailbox) init() {
	mb.once.Do(func() {
		mb.c.L = &mb.m
	})
}

// Send delivers a message to the Mailbox. If there are any blocked
// receives, they will check the new message to see if it is what
// they're waiting for after this function returns.
func (mb *Mailbox) Send(msg any) {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	mb.queue.PushBack(msg)
	mb.c.Broadcast()
}

// Len returns the number of messages waiting in the Mailbox.
func (mb *Mailbox) Len() int {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	return mb.queue.Len()
}

func find[T any](mb *Mailbox, match func(T) bool) (v T, ok bool) {
	var skipped int
	for it := range mb.queue.Iterators() {
		v, ok := it.Value().(T)
		if ok && (match == nil || match(v)) {
			if err := mb.queue.Delete(it); err != nil {
				panic(err)
			}
			if skipped > 0 {
				slog.Debug("selective receive skipped messages", "skipped", skipped, "remaining", mb.queue.Len())
			}
			return v, true
		}
		skipped++
	}

	return v, false
}

// Recv checks mb to see if any messages that have been sent to it are
// matched by the given function. A message is considered to be a
// match if it both can be type asserted to T and the match function
// returns true. A nil match function matches every message of type T.
// If there is such a message, the oldest one is removed from the
// Mailbox and returned. If there is no such message, Recv blocks
// until such a message arrives.
//
// For a non-blocking variant that returns immediately whether or not
// a matching message is present, see [TryRecv].
func Recv[T any](mb *Mailbox, match func(T) bool) T {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	for {
		msg, ok := find(mb, match)
		if ok {
			return msg
		}

		mb.c.Wait()
	}
}

// TryRecv is like [Recv] but doesn't block, returning immediately
// whether not a matching message is present in the Mailbox. If no
// message matches, it returns false as the second return.
func TryRecv[T any](mb *Mailbox, match func(T) bool) (msg T, ok bool) {
	mb.init()

	mb.m.Lock()
	defer mb.m.Unlock()

	return find(mb, match)
}
