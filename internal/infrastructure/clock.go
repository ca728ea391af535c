package infrastructure

import (
	"strconv"
	"sync"
	"time"

	"adsniper/internal/domain"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

var _ domain.Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimestampIDSource issues millisecond-timestamp identifiers. Two calls in
// the same millisecond bump past the last issued value so ids stay distinct.
type TimestampIDSource struct {
	mutex sync.Mutex
	last  int64
	clock domain.Clock
}

var _ domain.IDSource = (*TimestampIDSource)(nil)

func NewTimestampIDSource(clock domain.Clock) *TimestampIDSource {
	return &TimestampIDSource{clock: clock}
}

func (s *TimestampIDSource) NextID() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.clock.Now().UnixMilli()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return strconv.FormatInt(now, 10)
}
