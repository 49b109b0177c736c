package domain

import (
	"testing"
	"time"
)

// fixedClock はテスト用の固定時計
type fixedClock struct {
	now time.Time
}

func newFixedClock(year int, month int, day int) *fixedClock {
	return &fixedClock{now: time.Date(year, time.Month(month), day, 12, 0, 0, 0, JST)}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *fixedClock) Set(year int, month int, day int) {
	c.now = time.Date(year, time.Month(month), day, 12, 0, 0, 0, JST)
}

func TestSystemClock(t *testing.T) {
	now := SystemClock{}.Now()

	if now.Location() != JST {
		t.Fatalf("expected JST location, got %v", now.Location())
	}

	_, offset := now.Zone()
	if offset != 9*60*60 {
		t.Fatalf("expected +09:00 offset, got %d", offset)
	}
}
