package usecase

import (
	"errors"
	"strconv"
	"time"

	"adsniper/internal/domain"
	"adsniper/pkg/logger"
	"adsniper/pkg/metrics"
)

// Shared across the package's tests: prometheus collectors register against
// the default registry and may only be created once per test binary.
var testMetrics = metrics.New()

func testLogger() *logger.Logger {
	return logger.New("panic")
}

// fakeIDSource issues sequential time-derived ids from a fixed base.
type fakeIDSource struct {
	next int64
}

func newFakeIDSource() *fakeIDSource {
	return &fakeIDSource{next: 1700000000000}
}

func (s *fakeIDSource) NextID() string {
	id := strconv.FormatInt(s.next, 10)
	s.next++
	return id
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// fakeSlot is an in-memory slot with injectable failures.
type fakeSlot struct {
	value   string
	set     bool
	getErr  error
	setErr  error
	setCall int
}

func (s *fakeSlot) Get() (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.value, s.set, nil
}

func (s *fakeSlot) Set(value string) error {
	s.setCall++
	if s.setErr != nil {
		return s.setErr
	}
	s.value = value
	s.set = true
	return nil
}

var errSlotFull = errors.New("slot storage full")

// recordingHost captures fly-to-bounds commands.
type recordingHost struct {
	calls   int
	bounds  domain.Bounds
	padding int
}

func (h *recordingHost) FlyToBounds(b domain.Bounds, padding int) {
	h.calls++
	h.bounds = b
	h.padding = padding
}
