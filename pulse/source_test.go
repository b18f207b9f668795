package pulse_test

import (
	"testing"

	"github.com/lguimbarda/min-pulse/pulse"
	"github.com/lguimbarda/min-pulse/pulse/pulsetest"
)

func TestFromSlice(t *testing.T) {
	s := pulse.FromSlice([]int{1, 2, 3})
	rec := pulsetest.Attach(s)

	got := rec.Values()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFromChannel(t *testing.T) {
	ch := make(chan int)
	s := pulse.FromChannel(ch)
	rec := pulsetest.Attach(s)

	done := make(chan struct{})
	s.OnFinish(func() { close(done) })

	ch <- 1
	ch <- 2
	close(ch)
	<-done

	got := rec.Values()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("got %v, want [1 2]", got)
	}
	if !rec.Finished() {
		t.Error("stream did not finish when the channel closed")
	}
}
