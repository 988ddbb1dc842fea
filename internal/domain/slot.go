package domain

import "time"

// AvailabilitySlot represents a user-declared interval of personal availability
// ActivityID ограничивает слот одной игрой; nil = любая игра
type AvailabilitySlot struct {
	ID         string
	UserID     string
	StartTime  time.Time
	EndTime    time.Time
	ActivityID *string
}

// OverlapsRange returns true if the slot overlaps the half-open range [start, end)
func (s *AvailabilitySlot) OverlapsRange(start, end time.Time) bool {
	return Overlaps(s.StartTime, s.EndTime, start, end)
}

// OverlapsSession returns true if the slot overlaps the session's time range
func (s *AvailabilitySlot) OverlapsSession(session *Session) bool {
	return s.OverlapsRange(session.StartTime, session.EndTime)
}

// IsWholeDay returns true if the range is exactly midnight-to-midnight
// over a single day (UTC)
func IsWholeDay(start, end time.Time) bool {
	startUTC := start.UTC()
	h, m, sec := startUTC.Clock()
	if h != 0 || m != 0 || sec != 0 || startUTC.Nanosecond() != 0 {
		return false
	}
	return end.Sub(start) == 24*time.Hour
}
