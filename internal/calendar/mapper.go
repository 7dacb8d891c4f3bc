package calendar

import "time"

const (
	// Total is the size of the virtual index domain.
	Total = 100000
	// Center is the index of the session's anchor day.
	Center = Total / 2
)

// Mapper converts between virtual indices and calendar days, anchored so
// that Center is the day the session started. A Mapper is immutable and safe
// for concurrent use.
type Mapper struct {
	today time.Time
}

// NewMapper returns a Mapper anchored at the day of today.
func NewMapper(today time.Time) Mapper {
	return Mapper{today: Normalize(today)}
}

// Today returns the anchor day.
func (m Mapper) Today() time.Time {
	return m.today
}

// Contains reports whether i lies inside the index domain [0, Total).
func (m Mapper) Contains(i int) bool {
	return i >= 0 && i < Total
}

// DateOf returns the day at index i. It depends only on i and the anchor,
// so repeated calls for the same index always agree.
func (m Mapper) DateOf(i int) time.Time {
	y, mo, d := m.today.Date()
	return civil(y, mo, d+(i-Center))
}

// IndexOf returns the index of the day d falls on.
func (m Mapper) IndexOf(d time.Time) int {
	return Center + DaysBetween(m.today, d)
}

// IsToday reports whether index i is the anchor day.
func (m Mapper) IsToday(i int) bool {
	return i == Center
}
