package services

import (
	"fmt"
	"time"

	"github.com/finovabank/direct_debit_engine/internal/core/domain"
)

// NextExecution returns the earliest instant at which a mandate becomes due
// again after lastExecuted. Daily and weekly periods are fixed spans; monthly
// and yearly follow calendar arithmetic with the day-of-month clamped to the
// last valid day of the target month (Jan 31 + 1 month lands on Feb 28/29).
//
// An unrecognized periodicity is a schema or deployment mismatch, not a
// runtime condition, and panics.
func NextExecution(p domain.Periodicity, lastExecuted time.Time) time.Time {
	switch p {
	case domain.Daily:
		return lastExecuted.AddDate(0, 0, 1)
	case domain.Weekly:
		return lastExecuted.AddDate(0, 0, 7)
	case domain.Monthly:
		return addMonthsClamped(lastExecuted, 1)
	case domain.Yearly:
		return addMonthsClamped(lastExecuted, 12)
	default:
		panic(fmt.Sprintf("unknown periodicity %q", p))
	}
}

// IsDue reports whether a mandate with the given periodicity and
// last-execution instant is due at now. Assumes now >= lastExecuted.
func IsDue(p domain.Periodicity, lastExecuted, now time.Time) bool {
	return !NextExecution(p, lastExecuted).After(now)
}

// addMonthsClamped adds whole months preserving the clock time, clamping the
// day-of-month instead of letting it normalize into the following month the
// way time.AddDate does.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	totalMonths := int(month) - 1 + months
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)

	if last := daysInMonth(targetYear, targetMonth); day > last {
		day = last
	}

	hour, minute, sec := t.Clock()
	return time.Date(targetYear, targetMonth, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
