package Queues

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	require.True(t, q.Empty())
	_, has := q.Peek()
	require.False(t, has)
	_, err := q.Pop()
	var empty *EmptyQueueError
	require.True(t, errors.As(err, &empty))
}

func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := range 3 {
		q.Push(i)
	}
	for i := range 2 {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	//head is now 2, pushing wraps around the end and then forces a resize.
	for i := 3; i < 10; i++ {
		q.Push(i)
	}
	require.Equal(t, uint(8), q.Size())
	for i := 2; i < 10; i++ {
		v, has := q.Peek()
		require.True(t, has)
		require.Equal(t, i, v)
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.True(t, q.Empty())
}

func TestArrayQueue_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	q := MakeArrayQueue[int](1)
	var want []int
	for range 10000 {
		if rg.Intn(3) == 0 && len(want) > 0 {
			v, err := q.Pop()
			if err != nil || v != want[0] {
				t.Fatalf("popped %d, want %d", v, want[0])
			}
			want = want[1:]
		} else {
			a := rg.Int()
			q.Push(a)
			want = append(want, a)
		}
		if rg.Intn(100) == 0 {
			q.Shrink()
		}
		if q.Size() != uint(len(want)) {
			t.Fatalf("queue size is %d, want %d", q.Size(), len(want))
		}
	}
	q.Clear()
	require.True(t, q.Empty())
	q.Push(7)
	v, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, 7, v)
}
