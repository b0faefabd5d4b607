package cq_test

import (
	"context"
	"testing"

	"deedles.dev/xlist/cq"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	var q cq.Queue[int]
	defer q.Stop()

	for i := range 5 {
		q.Add() <- i
	}
	for i := range 5 {
		require.Equal(t, i, <-q.Get())
	}

	q.Add() <- 5
	require.Equal(t, 5, <-q.Get())
}

func TestQueueCloseAdd(t *testing.T) {
	var q cq.Queue[string]
	q.Add() <- "a"
	q.Add() <- "b"
	close(q.Add())

	var got []string
	for v := range q.Get() {
		got = append(got, v)
	}
	require.Equal(t, []string{"a", "b"}, got)
}

func TestQueueStop(t *testing.T) {
	var q cq.Queue[int]
	q.Add() <- 1
	q.Stop()
	q.Stop()

	for range q.Get() {
	}
	_, ok := <-q.Get()
	require.False(t, ok)
}

func TestQueueCloseAddThenStop(t *testing.T) {
	for range 10000 {
		var q cq.Queue[int]
		close(q.Add())
		q.Stop()
		for range q.Get() {
		}
	}
}

func TestQueueSendAfterStop(t *testing.T) {
	var q cq.Queue[int]
	q.Stop()
	for range q.Get() {
	}

	select {
	case q.Add() <- 1:
		t.Fatal("send after stop succeeded")
	default:
	}
}

func TestQueueValues(t *testing.T) {
	var q cq.Queue[int]
	defer q.Stop()

	for i := range 3 {
		q.Add() <- i
	}

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var got []int
	for v := range q.Values(ctx) {
		got = append(got, v)
		if len(got) == 3 {
			cancel()
		}
	}
	require.Equal(t, []int{0, 1, 2}, got)
}

func BenchmarkQueue(b *testing.B) {
	var q cq.Queue[int]
	defer q.Stop()

	for i := range b.N {
		q.Add() <- i
		<-q.Get()
	}
}
