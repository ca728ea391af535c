package domain

import "time"

// interface for the durable key/value slot the campaign list persists to.
// Get reports found=false when the slot is empty; Set replaces the whole
// value. Implementations own namespacing of the underlying key.
type SlotStore interface {
	Get() (value string, found bool, err error)
	Set(value string) error
}

// interface for the hosting map surface. FlyToBounds asks the viewport to
// animate to a bounding region with a fixed padding margin, in pixels.
type MapHost interface {
	FlyToBounds(b Bounds, padding int)
}

// Clock supplies the current time for created-date stamping.
type Clock interface {
	Now() time.Time
}

// IDSource issues monotonically distinct, time-derived identifiers for
// campaigns and committed polygons.
type IDSource interface {
	NextID() string
}
