package clock_test

import (
	"testing"
	"time"

	"github.com/harnessline/corral/internal/clock"
)

func TestNow(t *testing.T) {
	before := uint64(time.Now().UnixMilli())
	got := clock.Now()
	after := uint64(time.Now().UnixMilli())

	if got < before || got > after {
		t.Errorf("expected Now in [%d, %d], got %d", before, after, got)
	}
}

func TestNow_NonDecreasing(t *testing.T) {
	a := clock.Now()
	b := clock.Now()
	if b < a {
		t.Errorf("expected non-decreasing timestamps, got %d then %d", a, b)
	}
}

func TestSince_Past(t *testing.T) {
	past := clock.Now() - 5000
	elapsed := clock.Since(past)
	if elapsed < 5000 {
		t.Errorf("expected at least 5000ms elapsed, got %d", elapsed)
	}
}

func TestSince_Future(t *testing.T) {
	future := clock.Now() + 60_000
	if elapsed := clock.Since(future); elapsed != 0 {
		t.Errorf("expected 0 for future timestamp, got %d", elapsed)
	}
}

func TestSince_Now(t *testing.T) {
	// A timestamp taken after the comparison point must still clamp to zero.
	if elapsed := clock.Since(clock.Now() + 1); elapsed != 0 {
		t.Errorf("expected 0, got %d", elapsed)
	}
}
