package driver

import (
	"time"

	"github.com/google/uuid"
)

// Status is a driver's last self-reported presence snapshot. Each upsert
// overwrites the previous one; there is no history.
type Status struct {
	DriverID        uuid.UUID
	Online          bool
	Lat             *float64
	Lng             *float64
	ServiceRadiusKm float64
	UpdatedAt       time.Time
}

const DefaultServiceRadiusKm = 10.0

// FreshAt reports whether the snapshot is recent enough to count for
// matching. A driver whose last update is older than the window is treated
// as offline even if online is still set.
func (s Status) FreshAt(now time.Time, window time.Duration) bool {
	return now.Sub(s.UpdatedAt) <= window
}

func (s Status) HasLocation() bool {
	return s.Lat != nil && s.Lng != nil
}

// Matchable reports whether the driver can be considered for dispatch at all.
func (s Status) Matchable(now time.Time, window time.Duration) bool {
	return s.Online && s.HasLocation() && s.FreshAt(now, window)
}
