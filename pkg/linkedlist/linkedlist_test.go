package linkedlist

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/classicds/datastructs/internal/telemetry"
	"github.com/classicds/datastructs/pkg/containers"
	"github.com/classicds/datastructs/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestScriptedSequence(t *testing.T) {
	l := New[int]()
	l.InsertAtEnd(1)
	l.InsertAtEnd(2)
	l.InsertAtEnd(3)
	require.Equal(t, "1 -> 2 -> 3 -> nil", l.String())

	l.InsertAtBeginning(0)
	require.Equal(t, []int{0, 1, 2, 3}, l.Traverse())

	deleted, err := l.DeleteAtPosition(2)
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, []int{0, 1, 3}, l.Traverse())

	pos, found := l.Search(1)
	require.True(t, found)
	require.Equal(t, 1, pos)

	pos, found = l.Search(5)
	require.False(t, found)
	require.Equal(t, -1, pos)

	l.Reverse()
	require.Equal(t, "3 -> 1 -> 0 -> nil", l.String())
}

func TestInsertAtPosition(t *testing.T) {
	tests := []struct {
		name     string
		initial  []int
		position int
		expected []int
		err      bool
	}{
		{name: "head_of_empty", initial: nil, position: 0, expected: []int{9}},
		{name: "head", initial: []int{1, 2}, position: 0, expected: []int{9, 1, 2}},
		{name: "middle", initial: []int{1, 2, 3}, position: 2, expected: []int{1, 2, 9, 3}},
		{name: "after_tail", initial: []int{1, 2, 3}, position: 3, expected: []int{1, 2, 3, 9}},
		{name: "past_tail", initial: []int{1, 2, 3}, position: 4, expected: []int{1, 2, 3}, err: true},
		{name: "past_empty", initial: nil, position: 1, expected: []int{}, err: true},
		{name: "negative", initial: []int{1}, position: -1, expected: []int{1}, err: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := FromValues(test.initial)
			err := l.InsertAtPosition(9, test.position)
			if test.err {
				require.ErrorIs(t, err, ErrOutOfBounds)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, test.expected, l.Traverse())
		})
	}
}

func TestDeleteAtPosition(t *testing.T) {
	tests := []struct {
		name     string
		initial  []int
		position int
		expected []int
		deleted  bool
		err      bool
	}{
		{name: "empty_is_noop", initial: nil, position: 3, expected: []int{}},
		{name: "head", initial: []int{1, 2, 3}, position: 0, expected: []int{2, 3}, deleted: true},
		{name: "middle", initial: []int{1, 2, 3}, position: 1, expected: []int{1, 3}, deleted: true},
		{name: "tail", initial: []int{1, 2, 3}, position: 2, expected: []int{1, 2}, deleted: true},
		{name: "at_length", initial: []int{1, 2, 3}, position: 3, expected: []int{1, 2, 3}, err: true},
		{name: "far_past_tail", initial: []int{1, 2, 3}, position: 10, expected: []int{1, 2, 3}, err: true},
		{name: "negative", initial: []int{1}, position: -2, expected: []int{1}, err: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := FromValues(test.initial)
			deleted, err := l.DeleteAtPosition(test.position)
			if test.err {
				require.ErrorIs(t, err, ErrOutOfBounds)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, test.deleted, deleted)
			require.Equal(t, test.expected, l.Traverse())
		})
	}
}

func TestDeleteAtEnds(t *testing.T) {
	t.Run("delete_at_end", func(t *testing.T) {
		l := FromValues([]string{"a", "b", "c"})
		require.True(t, l.DeleteAtEnd())
		require.Equal(t, []string{"a", "b"}, l.Traverse())
	})

	t.Run("delete_at_end_single", func(t *testing.T) {
		l := FromValues([]string{"a"})
		require.True(t, l.DeleteAtEnd())
		require.True(t, l.IsEmpty())
	})

	t.Run("delete_at_beginning", func(t *testing.T) {
		l := FromValues([]string{"a", "b"})
		require.True(t, l.DeleteAtBeginning())
		require.Equal(t, []string{"b"}, l.Traverse())
		require.Equal(t, 1, l.Len())
	})
}

func TestEmptyListIsSoftFailure(t *testing.T) {
	log, logs := logger.NewObserverLogger("debug")
	l := New[int](containers.WithLogger(log))

	before := testutil.ToFloat64(telemetry.SoftFailureCounter.WithLabelValues(containerName, "delete_at_end"))

	require.False(t, l.DeleteAtBeginning())
	require.False(t, l.DeleteAtEnd())
	deleted, err := l.DeleteAtPosition(0)
	require.NoError(t, err)
	require.False(t, deleted)

	require.Equal(t, 3, logs.FilterMessage("the list is empty, no deletion performed").Len())
	require.InDelta(t, before+1, testutil.ToFloat64(telemetry.SoftFailureCounter.WithLabelValues(containerName, "delete_at_end")), 0)

	_, found := l.Search(42)
	require.False(t, found)
	require.Equal(t, 1, logs.FilterMessage("element not found in the list").Len())
}

func TestEmptyList(t *testing.T) {
	l := New[int]()
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
	require.Equal(t, "nil", l.String())
	require.Empty(t, l.Traverse())

	l.Reverse()
	require.True(t, l.IsEmpty())
}

func TestAllStopsEarly(t *testing.T) {
	l := FromValues([]int{1, 2, 3, 4})

	var seen []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	require.Equal(t, []int{1, 2}, seen)
}

func randomValues(r *rand.Rand) []int {
	values := make([]int, r.IntN(20))
	for i := range values {
		values[i] = r.IntN(100)
	}
	return values
}

func TestReverseIsSelfInverse(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		values := randomValues(r)
		l := FromValues(values)
		l.Reverse()
		l.Reverse()

		if diff := cmp.Diff(values, l.Traverse()); diff != "" {
			t.Fatalf("reverse twice mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestInsertThenDeleteRestores(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		values := randomValues(r)
		l := FromValues(values)
		k := r.IntN(len(values) + 1)

		require.NoError(t, l.InsertAtPosition(-1, k))
		deleted, err := l.DeleteAtPosition(k)
		require.NoError(t, err)
		require.True(t, deleted)

		require.Equal(t, values, l.Traverse())
	}
}
