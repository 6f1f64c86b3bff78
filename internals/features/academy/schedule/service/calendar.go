// file: internals/features/academy/schedule/service/calendar.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Month grid (proyección pura para el calendario mensual)
   ========================================================= */

type OccurrenceStatus string

const (
	OccurrenceNone      OccurrenceStatus = "none"
	OccurrenceScheduled OccurrenceStatus = "scheduled"
	OccurrencePartial   OccurrenceStatus = "partial"
	OccurrenceComplete  OccurrenceStatus = "complete"
)

// AttendanceDegree is what the attendance collaborator knows about a day that
// already has records: some students marked, or all of them.
type AttendanceDegree string

const (
	AttendancePartial  AttendanceDegree = "partial"
	AttendanceComplete AttendanceDegree = "complete"
)

// AttendanceLookup answers "is there attendance recorded for this date, and
// how far along is it". The caller gathers the data up front (it may come
// from an async fetch); this package only consults the result.
type AttendanceLookup func(date time.Time) (AttendanceDegree, bool)

type CalendarDay struct {
	Date           time.Time        `json:"date"`
	IsCurrentMonth bool             `json:"is_current_month"`
	IsToday        bool             `json:"is_today"`
	IsSelected     bool             `json:"is_selected"`
	Status         OccurrenceStatus `json:"status"`
}

type MonthGridInput struct {
	Year     int
	Month    time.Month
	Selected *time.Time
	// Today is the reference instant for IsToday; callers pass time.Now().
	// Explicit so the projection stays a pure function of its inputs.
	Today            time.Time
	Classes          []Class
	TeacherID        uuid.UUID
	AttendanceLookup AttendanceLookup
}

var ErrInvalidMonth = errors.New("invalid year/month for calendar grid")

// BuildMonthGrid produces the full visible rectangle for a month view:
// Monday-start weeks from the week containing the 1st through the week
// containing the last day, always a multiple of 7 cells (adjacent-month days
// included with IsCurrentMonth=false).
//
// Bad day tokens found while matching are collected (deduplicated) so the
// caller can surface "this class has an unrecognized day value" instead of
// silently hiding the class. A malformed year/month is rejected outright;
// guessing "today" here is exactly the bug this code exists to kill.
func BuildMonthGrid(in MonthGridInput) ([]CalendarDay, []*DayTokenError, error) {
	if in.Year < 1 || in.Month < time.January || in.Month > time.December {
		return nil, nil, ErrInvalidMonth
	}

	loc := time.Local
	if !in.Today.IsZero() {
		loc = in.Today.Location()
	}
	first := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first)
	end := startOfWeek(last).AddDate(0, 0, 6)

	filter := &RosterFilter{TeacherID: in.TeacherID}
	grid := make([]CalendarDay, 0, 42)
	seenTokens := make(map[string]struct{})
	var warns []*DayTokenError

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		occurring, slotErrs := ClassesOccurringOn(in.Classes, d, filter)
		for _, e := range slotErrs {
			if _, dup := seenTokens[e.Token]; dup {
				continue
			}
			seenTokens[e.Token] = struct{}{}
			warns = append(warns, e)
		}

		status := OccurrenceNone
		if len(occurring) > 0 {
			status = OccurrenceScheduled
			if in.AttendanceLookup != nil {
				if degree, found := in.AttendanceLookup(d); found {
					if degree == AttendanceComplete {
						status = OccurrenceComplete
					} else {
						status = OccurrencePartial
					}
				}
			}
		}

		grid = append(grid, CalendarDay{
			Date:           d,
			IsCurrentMonth: d.Month() == in.Month && d.Year() == in.Year,
			IsToday:        !in.Today.IsZero() && SameDay(d, in.Today),
			IsSelected:     in.Selected != nil && SameDay(d, *in.Selected),
			Status:         status,
		})
	}
	return grid, warns, nil
}

// startOfWeek snaps a date back to the Monday of its week, via the one
// authorized native→canonical conversion.
func startOfWeek(t time.Time) time.Time {
	shift := int(CanonicalWeekdayOf(t))
	return time.Date(t.Year(), t.Month(), t.Day()-shift, 0, 0, 0, 0, t.Location())
}

// SameDay compares two instants by calendar day, ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
