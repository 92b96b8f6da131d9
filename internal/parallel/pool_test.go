package parallel

import (
	"sync/atomic"
	"testing"
)

func TestPool_ForEachRunsAllTasks(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 100
	var hits [n]atomic.Int32
	p.ForEach(n, func(i int) {
		hits[i].Add(1)
	})

	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Errorf("task %d ran %d times, want 1", i, got)
		}
	}
}

func TestPool_ForEachIsBarrier(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	// Every write from the first phase must be visible after ForEach
	// returns, before the second phase starts.
	buf := make([]int, 64)
	p.ForEach(len(buf), func(i int) { buf[i] = i })
	p.ForEach(len(buf), func(i int) { buf[i] *= 2 })

	for i, v := range buf {
		if v != i*2 {
			t.Fatalf("buf[%d] = %d, want %d", i, v, i*2)
		}
	}
}

func TestPool_ForEachZeroTasks(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.ForEach(0, func(int) { t.Error("task ran for n=0") })
}

func TestPool_DefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
}

func TestBands(t *testing.T) {
	tests := []struct {
		name   string
		height int
		count  int
		want   []Band
	}{
		{
			name:   "even split",
			height: 8,
			count:  4,
			want:   []Band{{0, 2}, {2, 4}, {4, 6}, {6, 8}},
		},
		{
			name:   "remainder spread from top",
			height: 10,
			count:  3,
			want:   []Band{{0, 4}, {4, 7}, {7, 10}},
		},
		{
			name:   "more bands than rows",
			height: 2,
			count:  8,
			want:   []Band{{0, 1}, {1, 2}},
		},
		{
			name:   "single band",
			height: 5,
			count:  1,
			want:   []Band{{0, 5}},
		},
		{
			name:   "zero height",
			height: 0,
			count:  4,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.height, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands(%d, %d) = %v, want %v", tt.height, tt.count, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBands_CoverWithoutOverlap(t *testing.T) {
	for _, height := range []int{1, 7, 64, 720, 1081} {
		for _, count := range []int{1, 2, 3, 8, 16} {
			bands := Bands(height, count)
			prev := 0
			for _, b := range bands {
				if b.Start != prev {
					t.Fatalf("height=%d count=%d: band starts at %d, want %d", height, count, b.Start, prev)
				}
				if b.Rows() < 1 {
					t.Fatalf("height=%d count=%d: empty band %v", height, count, b)
				}
				prev = b.End
			}
			if prev != height {
				t.Fatalf("height=%d count=%d: bands end at %d, want %d", height, count, prev, height)
			}
		}
	}
}
