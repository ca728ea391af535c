package infrastructure

import (
	"sync"

	"adsniper/internal/domain"
	"adsniper/pkg/logger"
)

// RecordingMapHost retains the most recent fly-to-bounds command and logs
// it. It stands in for the browser map surface on the server side, letting
// a client poll for the viewport it should animate to.
type RecordingMapHost struct {
	mutex   sync.RWMutex
	bounds  domain.Bounds
	padding int
	issued  bool
	logger  *logger.Logger
}

var _ domain.MapHost = (*RecordingMapHost)(nil)

func NewRecordingMapHost(logger *logger.Logger) *RecordingMapHost {
	return &RecordingMapHost{logger: logger}
}

func (h *RecordingMapHost) FlyToBounds(b domain.Bounds, padding int) {
	h.mutex.Lock()
	h.bounds = b
	h.padding = padding
	h.issued = true
	h.mutex.Unlock()

	h.logger.WithFields(map[string]any{
		"south_west_lat": b.SouthWest.Lat,
		"south_west_lng": b.SouthWest.Lng,
		"north_east_lat": b.NorthEast.Lat,
		"north_east_lng": b.NorthEast.Lng,
		"padding":        padding,
	}).Debug("Viewport fly-to-bounds")
}

// Viewport returns the last issued viewport command; issued is false when
// no bounds fit has happened yet.
func (h *RecordingMapHost) Viewport() (bounds domain.Bounds, padding int, issued bool) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.bounds, h.padding, h.issued
}
