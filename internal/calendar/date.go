// Package calendar maps an unbounded strip of virtual indices onto calendar
// days and manages the growable window of indices backing the strip.
package calendar

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical day layout used for keys and logs.
const KeyLayout = "2006-01-02"

// civil returns the day value for y-m-d: noon UTC. Local zones can skip a
// midnight or a whole day, so day values never carry one. Out-of-range days
// roll over the way time.Date does.
func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// Normalize returns the day value of the calendar day t falls on in t's own
// location.
//
// Example:
//
//	input:  2024-01-15 14:30:45.123456789 +0900
//	output: 2024-01-15 12:00:00.0 UTC
func Normalize(t time.Time) time.Time {
	year, month, day := t.Date()
	return civil(year, month, day)
}

// SameDay reports whether a and b denote the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween returns the number of calendar days from a to b.
// Both arguments are reduced to their civil date, so DST shifts and
// wall-clock components never skew the count.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// ParseDay parses a "2006-01-02" string as a day value.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return civil(t.Date()), nil
}

// Locale selects the language of derived labels.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleKorean  Locale = "ko"
)

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// ResolveLocale maps a configured value to a supported Locale, defaulting to English.
func ResolveLocale(s string) Locale {
	if Locale(s) == LocaleKorean {
		return LocaleKorean
	}
	return LocaleEnglish
}

// Weekday returns the short weekday name of t.
func (l Locale) Weekday(t time.Time) string {
	if l == LocaleKorean {
		return koreanWeekdays[t.Weekday()]
	}
	return t.Weekday().String()[:3]
}

// MonthYear returns the month/year heading shown above the strip.
func (l Locale) MonthYear(t time.Time) string {
	if l == LocaleKorean {
		return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
	}
	return t.Format("January 2006")
}

// Heading returns the compact date used in the screen header,
// e.g. "3. 10. (Sun)".
func (l Locale) Heading(t time.Time) string {
	return fmt.Sprintf("%d. %d. (%s)", int(t.Month()), t.Day(), l.Weekday(t))
}

// TodayLabel is the caption of the jump-to-today control.
func (l Locale) TodayLabel() string {
	if l == LocaleKorean {
		return "오늘"
	}
	return "Today"
}
