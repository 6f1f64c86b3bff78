// file: internals/features/academy/schedule/service/matcher.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Value types (in-memory view of the roster, no gorm here)
   ========================================================= */

// ScheduleSlot is one recurring weekly occurrence of a class. Start/End are
// "HH:mm" time-of-day strings; matching ignores them on purpose (two slots on
// the same day still mean "the class occurs that day").
type ScheduleSlot struct {
	Day   DayToken
	Start string
	End   string
}

type Schedule []ScheduleSlot

type Collaborator struct {
	TeacherID uuid.UUID
	Role      string
}

type Class struct {
	ID            uuid.UUID
	Name          string
	TeacherID     uuid.UUID
	Collaborators []Collaborator
	Schedule      Schedule
}

// RosterFilter narrows ClassesOccurringOn to one teacher's classes.
type RosterFilter struct {
	TeacherID uuid.UUID
}

/* =========================================================
   Matching
   ========================================================= */

// OccursOn reports whether the schedule has any slot on the date's weekday.
// A slot whose day token cannot be normalized is skipped and reported; it
// never counts as a match and never fails the whole evaluation. An empty
// schedule matches nothing.
//
// Pure function of (schedule, date): no clock, no cache, no globals.
func OccursOn(schedule Schedule, date time.Time) (bool, []*DayTokenError) {
	target := CanonicalWeekdayOf(date)

	matched := false
	var tokenErrs []*DayTokenError
	for _, slot := range schedule {
		day, err := NormalizeDayToken(slot.Day)
		if err != nil {
			var te *DayTokenError
			if errors.As(err, &te) {
				tokenErrs = append(tokenErrs, te)
			}
			continue
		}
		if day == target {
			matched = true
			// keep scanning: remaining slots may still carry bad tokens worth reporting
		}
	}
	return matched, tokenErrs
}

// ClassesOccurringOn filters a roster down to the classes that occur on the
// given date. With a filter, a class is kept only when the teacher is its
// primary teacher OR appears among its collaborators (any role); each class
// is evaluated once, so a teacher who is both never shows up twice.
//
// Stable: the returned subset preserves the roster's order.
func ClassesOccurringOn(classes []Class, date time.Time, filter *RosterFilter) ([]Class, []*DayTokenError) {
	out := make([]Class, 0, len(classes))
	var tokenErrs []*DayTokenError
	for _, cl := range classes {
		if filter != nil && !classBelongsToTeacher(cl, filter.TeacherID) {
			continue
		}
		ok, slotErrs := OccursOn(cl.Schedule, date)
		tokenErrs = append(tokenErrs, slotErrs...)
		if ok {
			out = append(out, cl)
		}
	}
	return out, tokenErrs
}

func classBelongsToTeacher(cl Class, teacherID uuid.UUID) bool {
	if cl.TeacherID == teacherID {
		return true
	}
	for _, co := range cl.Collaborators {
		if co.TeacherID == teacherID {
			return true
		}
	}
	return false
}
