package entity

import "time"

// Shift is a scheduled work interval of one employee at one kiosk.
type Shift struct {
	ID        string
	KioskID   string
	UserID    string
	StartsAt  time.Time
	EndsAt    time.Time
	Note      string
	CreatedAt time.Time
}

// Overlaps reports whether two half-open intervals [StartsAt, EndsAt)
// intersect.
func (s *Shift) Overlaps(startsAt, endsAt time.Time) bool {
	return s.StartsAt.Before(endsAt) && startsAt.Before(s.EndsAt)
}
