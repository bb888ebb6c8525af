package view

import (
	"time"
)

// Timeframe narrows the event timeline to a recent window.
type Timeframe int

const (
	TimeframeAll Timeframe = iota
	TimeframeToday
	TimeframeThisWeek
	TimeframeThisMonth
)

var timeframes = []Timeframe{TimeframeAll, TimeframeToday, TimeframeThisWeek, TimeframeThisMonth}

func (t Timeframe) String() string {
	switch t {
	case TimeframeAll:
		return "All Time"
	case TimeframeToday:
		return "Today"
	case TimeframeThisWeek:
		return "This Week"
	case TimeframeThisMonth:
		return "This Month"
	}

	return "Unknown"
}

// Next cycles to the following timeframe.
func (t Timeframe) Next() Timeframe {
	return timeframes[(int(t)+1)%len(timeframes)]
}

// Start returns the beginning of the window relative to now. The zero time
// means unbounded.
func (t Timeframe) Start(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch t {
	case TimeframeToday:
		return today
	case TimeframeThisWeek:
		// ISO week starts Monday.
		offset := int(now.Weekday())
		if offset == 0 {
			offset = 7
		}

		return today.AddDate(0, 0, -offset+1)
	case TimeframeThisMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}

	return time.Time{}
}

// Contains reports whether at falls inside the window. Undated entries only
// show under All Time.
func (t Timeframe) Contains(at time.Time, valid bool, now time.Time) bool {
	if t == TimeframeAll {
		return true
	}

	return valid && !at.Before(t.Start(now))
}
