package infrastructure

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"adsniper/internal/domain"
	"adsniper/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New("panic")
}

func TestFileSlotEmptyIsNotFound(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir(), "campaigns", testLogger())
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}

	_, found, err := slot.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected empty slot to report not found")
	}
}

func TestFileSlotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir, "campaigns", testLogger())
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}

	if err := slot.Set(`[{"id":"1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, found, err := slot.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || value != `[{"id":"1"}]` {
		t.Fatalf("expected stored value back, got found=%v value=%q", found, value)
	}

	// A second instance on the same directory reads the same value.
	reopened, err := NewFileSlot(dir, "campaigns", testLogger())
	if err != nil {
		t.Fatalf("reopen slot: %v", err)
	}
	value, found, err = reopened.Get()
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if !found || value != `[{"id":"1"}]` {
		t.Fatalf("expected value to survive reopen, got found=%v value=%q", found, value)
	}
}

func TestFileSlotOverwrite(t *testing.T) {
	slot, err := NewFileSlot(t.TempDir(), "campaigns", testLogger())
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}

	if err := slot.Set("first"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := slot.Set("second"); err != nil {
		t.Fatalf("set: %v", err)
	}

	value, _, err := slot.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "second" {
		t.Fatalf("expected last write to win, got %q", value)
	}
}

func TestFileSlotLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	slot, err := NewFileSlot(dir, "campaigns", testLogger())
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	if err := slot.Set("value"); err != nil {
		t.Fatalf("set: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "campaigns.json.tmp")); !os.IsNotExist(err) {
		t.Fatal("expected temp file renamed away after write")
	}
}

func TestMemorySlot(t *testing.T) {
	slot := NewMemorySlot()

	_, found, err := slot.Get()
	if err != nil || found {
		t.Fatalf("expected fresh slot empty, got found=%v err=%v", found, err)
	}

	if err := slot.Set("value"); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, found, err := slot.Get()
	if err != nil || !found || value != "value" {
		t.Fatalf("expected stored value, got found=%v value=%q err=%v", found, value, err)
	}

	pre := NewMemorySlotWith("seeded")
	value, found, _ = pre.Get()
	if !found || value != "seeded" {
		t.Fatalf("expected pre-populated value, got found=%v value=%q", found, value)
	}
}

type steppingClock struct {
	now time.Time
}

func (c *steppingClock) Now() time.Time {
	return c.now
}

func TestTimestampIDSourceDistinctWithinMillisecond(t *testing.T) {
	clock := &steppingClock{now: time.UnixMilli(1700000000000)}
	ids := NewTimestampIDSource(clock)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id := ids.NextID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}

	if first := ids.NextID(); first <= "1700000000000" {
		t.Fatalf("expected ids to advance past the clock value, got %q", first)
	}
}

func TestTimestampIDSourceFollowsClock(t *testing.T) {
	clock := &steppingClock{now: time.UnixMilli(1700000000000)}
	ids := NewTimestampIDSource(clock)

	if got := ids.NextID(); got != "1700000000000" {
		t.Fatalf("expected clock-derived id, got %q", got)
	}

	clock.now = time.UnixMilli(1700000005000)
	if got := ids.NextID(); got != "1700000005000" {
		t.Fatalf("expected id to follow the clock, got %q", got)
	}
}

func TestRecordingMapHost(t *testing.T) {
	host := NewRecordingMapHost(testLogger())

	if _, _, issued := host.Viewport(); issued {
		t.Fatal("expected no viewport before any bounds fit")
	}

	want := domain.Bounds{
		SouthWest: domain.Point{Lat: 37.77, Lng: -122.42},
		NorthEast: domain.Point{Lat: 37.79, Lng: -122.40},
	}
	host.FlyToBounds(want, 50)

	bounds, padding, issued := host.Viewport()
	if !issued || bounds != want || padding != 50 {
		t.Fatalf("expected recorded command %v/50, got %v/%d issued=%v", want, bounds, padding, issued)
	}
}
