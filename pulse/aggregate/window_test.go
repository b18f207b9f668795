package aggregate_test

import (
	"testing"

	"github.com/lguimbarda/min-pulse/pulse/aggregate"
	"github.com/lguimbarda/min-pulse/pulse/core"
)

func TestWindow(t *testing.T) {
	t.Run("slides once full", func(t *testing.T) {
		src := core.New[int]()
		dst := aggregate.Window(src, 3)

		var got [][]int
		dst.OnValue(func(v []int) { got = append(got, v) })

		for _, n := range []int{1, 2, 3, 4, 5} {
			src.Emit(n)
		}

		want := [][]int{{1}, {1, 2}, {1, 2, 3}, {2, 3, 4}, {3, 4, 5}}
		if len(got) != len(want) {
			t.Fatalf("got %d snapshots, want %d: %v", len(got), len(want), got)
		}
		for i := range want {
			if len(got[i]) != len(want[i]) {
				t.Fatalf("snapshot %d = %v, want %v", i, got[i], want[i])
			}
			for j := range want[i] {
				if got[i][j] != want[i][j] {
					t.Errorf("snapshot %d = %v, want %v", i, got[i], want[i])
				}
			}
		}
	})

	t.Run("snapshots are independent copies", func(t *testing.T) {
		src := core.New[int]()
		dst := aggregate.Window(src, 2)

		var got [][]int
		dst.OnValue(func(v []int) { got = append(got, v) })

		src.Emit(1)
		got[0][0] = 99
		src.Emit(2)

		if got[1][0] != 1 {
			t.Errorf("snapshot mutated by caller write: %v", got[1])
		}
	})

	t.Run("limit below one is clamped", func(t *testing.T) {
		src := core.New[int]()
		dst := aggregate.Window(src, 0)

		var got [][]int
		dst.OnValue(func(v []int) { got = append(got, v) })

		src.Emit(1)
		src.Emit(2)

		if len(got) != 2 || len(got[1]) != 1 || got[1][0] != 2 {
			t.Errorf("got %v, want [[1] [2]]", got)
		}
	})
}

func TestReduce(t *testing.T) {
	src := core.New[int]()
	dst := aggregate.Reduce(src, 0, func(acc, n int) int { return acc + n })

	var got []int
	dst.OnValue(func(v int) { got = append(got, v) })

	for _, n := range []int{1, 2, 3, 4} {
		src.Emit(n)
	}

	want := []int{1, 3, 6, 10}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
