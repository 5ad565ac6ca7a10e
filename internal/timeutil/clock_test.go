package timeutil

import (
	"testing"
	"time"
)

func TestRealClock(t *testing.T) {
	var clock Clock = RealClock{}

	before := time.Now()
	now := clock.Now()
	if now.Before(before) {
		t.Errorf("Now() = %v, want >= %v", now, before)
	}

	if d := clock.Since(before); d < 0 {
		t.Errorf("Since() = %v, want >= 0", d)
	}
}

func TestMockClockAdvance(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	if got := clock.Now(); !got.Equal(start) {
		t.Fatalf("Now() = %v, want %v", got, start)
	}

	clock.Advance(250 * time.Millisecond)
	if got := clock.Since(start); got != 250*time.Millisecond {
		t.Errorf("Since(start) = %v, want 250ms", got)
	}

	// Time must not move on its own.
	if got := clock.Since(start); got != 250*time.Millisecond {
		t.Errorf("Since(start) = %v on re-read, want 250ms", got)
	}
}

func TestMockClockSet(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	target := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	clock.Set(target)
	if got := clock.Now(); !got.Equal(target) {
		t.Errorf("Now() = %v after Set, want %v", got, target)
	}
}
