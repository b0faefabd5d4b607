package xlist_test

import (
	"testing"

	"deedles.dev/xlist"
	"github.com/stretchr/testify/require"
)

func TestIteratorWrap(t *testing.T) {
	l := xlist.New[int]()
	l.PushBack(1)
	l.PushBack(2)

	it := l.Begin()
	it.Next().Next()
	require.Equal(t, l.End(), it)
	it.Next()
	require.Equal(t, l.Begin(), it)

	it.Prev()
	require.Equal(t, l.End(), it)
	it.Prev()
	require.Equal(t, 2, it.Value())

	end := l.ConstEnd()
	end.Next()
	require.Equal(t, 1, end.Value())
}

func TestIteratorPostfix(t *testing.T) {
	l := xlist.New[string]()
	l.PushBack("a")
	l.PushBack("b")

	it := l.Begin()
	prev := it.PostNext()
	require.Equal(t, "a", prev.Value())
	require.Equal(t, "b", it.Value())

	prev = it.PostPrev()
	require.Equal(t, "b", prev.Value())
	require.Equal(t, "a", it.Value())

	cit := l.ConstBegin()
	cprev := cit.PostNext()
	require.Equal(t, "a", cprev.Value())
	require.Equal(t, "b", cit.Value())
	cprev = cit.PostPrev()
	require.Equal(t, "b", cprev.Value())
	require.Equal(t, "a", cit.Value())
}

func TestIteratorGet(t *testing.T) {
	l := xlist.New[int]()

	_, err := l.End().Get()
	require.ErrorIs(t, err, xlist.ErrEndIterator)

	var zero xlist.ConstIterator[int]
	_, err = zero.Get()
	require.ErrorIs(t, err, xlist.ErrInvalidIterator)

	it := l.PushBack(3)
	v, err := it.Get()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	require.Panics(t, func() { l.End().Value() })
}

func TestIteratorSet(t *testing.T) {
	l := xlist.New[int]()
	it := l.PushBack(1)
	require.NoError(t, it.Set(2))
	require.Equal(t, 2, l.Begin().Value())

	require.ErrorIs(t, l.End().Set(3), xlist.ErrEndIterator)

	require.NoError(t, l.Delete(it))
	require.ErrorIs(t, it.Set(4), xlist.ErrStaleIterator)
}

func TestIteratorConst(t *testing.T) {
	l := xlist.New[int]()
	it := l.PushBack(1)

	cit := it.Const()
	require.True(t, cit.Equal(it))
	require.True(t, it.Equal(cit))
	require.Equal(t, l.ConstBegin(), cit)

	// Deleting through a const position is allowed.
	require.NoError(t, l.Delete(cit))
	require.False(t, it.IsValid())
}

func TestStaleIterator(t *testing.T) {
	l := xlist.New[int]()
	it := l.PushBack(1)
	cp := it
	require.NoError(t, l.Delete(it))

	// The slot is reused by the next insert.
	fresh := l.PushBack(2)
	require.False(t, fresh.Equal(cp))

	require.False(t, cp.IsValid())
	require.False(t, cp.IsValidReference())
	_, err := cp.Get()
	require.ErrorIs(t, err, xlist.ErrStaleIterator)

	require.ErrorIs(t, l.Delete(cp), xlist.ErrStaleIterator)
	_, err = l.Insert(cp, 3)
	require.ErrorIs(t, err, xlist.ErrStaleIterator)
	require.Equal(t, []int{2}, forward(l))

	require.Panics(t, func() { cp.Next() })
	require.Panics(t, func() { cp.Prev() })
}

func TestForeignIterator(t *testing.T) {
	l1 := xlist.New[int]()
	l2 := xlist.New[int]()
	l1.PushBack(1)
	l2.PushBack(1)

	require.False(t, l1.End().Equal(l2.End()))
	require.False(t, l1.Begin().Equal(l2.Begin()))

	_, err := l1.Insert(l2.End(), 2)
	require.ErrorIs(t, err, xlist.ErrForeignIterator)
	require.ErrorIs(t, l1.Delete(l2.Begin()), xlist.ErrForeignIterator)
	require.Equal(t, 1, l1.Len())
	require.Equal(t, 1, l2.Len())
}

func TestZeroIterator(t *testing.T) {
	l := xlist.New[int]()
	var it xlist.Iterator[int]

	_, err := l.Insert(it, 1)
	require.ErrorIs(t, err, xlist.ErrInvalidIterator)
	require.ErrorIs(t, l.Delete(it), xlist.ErrInvalidIterator)
	require.Equal(t, 0, l.Len())

	require.Panics(t, func() { it.Next() })
	require.Panics(t, func() { it.Value() })
}

func TestSeq(t *testing.T) {
	l := xlist.New[int]()
	for i := range 5 {
		l.PushBack(i)
	}

	var fwd, bwd []int
	for v := range l.All() {
		fwd = append(fwd, v)
	}
	for v := range l.Backward() {
		bwd = append(bwd, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, fwd)
	require.Equal(t, []int{4, 3, 2, 1, 0}, bwd)
	require.Equal(t, fwd, l.Collect())

	for v := range l.All() {
		if v == 2 {
			break
		}
	}

	var empty xlist.List[int]
	require.Empty(t, empty.Collect())
}

func TestIteratorsDelete(t *testing.T) {
	l := xlist.New[int]()
	for i := range 10 {
		l.PushBack(i)
	}

	for it := range l.Iterators() {
		if it.Value()%2 == 0 {
			require.NoError(t, l.Delete(it))
		}
	}
	require.Equal(t, []int{1, 3, 5, 7, 9}, l.Collect())

	for it := range l.Iterators() {
		require.NoError(t, it.Set(it.Value()*10))
	}
	require.Equal(t, []int{10, 30, 50, 70, 90}, l.Collect())
}
