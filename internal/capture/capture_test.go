package capture

import (
	"fmt"
	"reflect"
	"testing"
)

func TestNewBuffer_DefaultCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{"explicit capacity", 5, 5},
		{"zero falls back to default", 0, DefaultCapacity},
		{"negative falls back to default", -3, DefaultCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.capacity)
			if b.Capacity() != tt.want {
				t.Errorf("Capacity() = %d, want %d", b.Capacity(), tt.want)
			}
		})
	}
}

func TestBuffer_LenNeverExceedsCapacity(t *testing.T) {
	const capacity = 7
	for n := 0; n <= 3*capacity; n++ {
		b := NewBuffer(capacity)
		for i := 0; i < n; i++ {
			b.Append(fmt.Sprintf("line-%d", i))
		}
		want := n
		if want > capacity {
			want = capacity
		}
		if b.Len() != want {
			t.Errorf("after %d appends: Len() = %d, want %d", n, b.Len(), want)
		}
	}
}

func TestBuffer_PreservesArrivalOrder(t *testing.T) {
	b := NewBuffer(10)
	b.Append("first")
	b.Append("second")
	b.Append("third")

	want := []string{"first", "second", "third"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestBuffer_EvictsOldestOnOverflow(t *testing.T) {
	// Capacity 5, 10 lines produced: only lines 6-10 survive.
	b := NewBuffer(5)
	for i := 1; i <= 10; i++ {
		b.Append(fmt.Sprintf("line-%d", i))
	}

	want := []string{"line-6", "line-7", "line-8", "line-9", "line-10"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
}

func TestBuffer_OrderStableAcrossRepeatedWraps(t *testing.T) {
	b := NewBuffer(3)
	for i := 1; i <= 100; i++ {
		b.Append(fmt.Sprintf("%d", i))
	}

	want := []string{"98", "99", "100"}
	if got := b.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestBuffer_Join(t *testing.T) {
	b := NewBuffer(10)

	if got := b.Join("\n"); got != "" {
		t.Errorf("Join() on empty buffer = %q, want empty", got)
	}

	b.Append("alpha")
	b.Append("beta")
	if got := b.Join("\n"); got != "alpha\nbeta" {
		t.Errorf("Join() = %q, want %q", got, "alpha\nbeta")
	}
}

func TestBuffer_LinesReturnsCopy(t *testing.T) {
	b := NewBuffer(3)
	b.Append("original")

	lines := b.Lines()
	lines[0] = "mutated"

	if got := b.Lines()[0]; got != "original" {
		t.Errorf("buffer content changed to %q after mutating returned slice", got)
	}
}
