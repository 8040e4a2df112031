package entity

import "time"

// FetchUnit is one (symbol, calendar month, interval) tuple to be retrieved
// from the data provider. Month is normalized to the first day of the month
// in UTC. A unit is immutable; it is either fetched once per run or skipped
// when the store already holds data for its month.
type FetchUnit struct {
	Symbol   string
	Month    time.Time
	Interval string // Sampling interval (e.g., "1min", "60min")
}

// MonthKey returns the month in the provider's "YYYY-MM" parameter format.
func (u FetchUnit) MonthKey() string {
	return u.Month.Format("2006-01")
}

// MonthRange returns the half-open interval [start, end) covered by the
// unit's calendar month.
func (u FetchUnit) MonthRange() (time.Time, time.Time) {
	start := time.Date(u.Month.Year(), u.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
