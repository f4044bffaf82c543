package concurrent

import (
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// collect runs items and returns the outcomes in completion order.
func collect[T, R any](r *Runner[T, R], items []T, worker WorkerFunc[T, R]) []Outcome[T, R] {
	var out []Outcome[T, R]
	r.RunWithCallback(items, worker, func(o Outcome[T, R]) {
		out = append(out, o)
	})
	return out
}

func TestRunCollectsEveryOutcome(t *testing.T) {
	r := NewRunner[int, int](RunnerConfig{})
	out := collect(r, []int{1, 2, 3, 4}, func(i int) int { return i * i })
	got := make([]int, 0, len(out))
	for _, o := range out {
		assert.Equal(t, o.Item*o.Item, o.Result)
		got = append(got, o.Result)
	}
	sort.Ints(got)
	assert.Equal(t, []int{1, 4, 9, 16}, got)
}

func TestRunEmpty(t *testing.T) {
	r := NewRunner[int, int](RunnerConfig{})
	assert.Empty(t, collect(r, nil, func(i int) int { return i }))
}

func TestMaxConcurrency(t *testing.T) {
	var running, peak int32
	r := NewRunner[int, struct{}](RunnerConfig{MaxConcurrency: 2})
	collect(r, make([]int, 8), func(int) struct{} {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return struct{}{}
	})
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestCallbacksAreSequential(t *testing.T) {
	var inCallback int32
	var overlapped bool
	r := NewRunner[int, int](RunnerConfig{})
	r.RunWithCallback(make([]int, 16), func(i int) int { return i }, func(Outcome[int, int]) {
		if atomic.AddInt32(&inCallback, 1) > 1 {
			overlapped = true
		}
		time.Sleep(time.Millisecond)
		atomic.AddInt32(&inCallback, -1)
	})
	assert.False(t, overlapped)
}
