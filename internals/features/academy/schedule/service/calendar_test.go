// file: internals/features/academy/schedule/service/calendar_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func gridInput(year int, month time.Month, classes []Class, teacherID uuid.UUID) MonthGridInput {
	return MonthGridInput{
		Year:      year,
		Month:     month,
		Today:     date(2025, time.June, 3),
		Classes:   classes,
		TeacherID: teacherID,
	}
}

func TestBuildMonthGrid_Shape(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		wantFirst time.Time
		wantLen   int
	}{
		// June 2025 starts on a Sunday: grid runs Mon May 26 .. Sun Jul 6
		{"first on sunday", 2025, time.June, date(2025, time.May, 26), 42},
		// September 2025 starts on a Monday: no leading spill
		{"first on monday", 2025, time.September, date(2025, time.September, 1), 35},
		// October 2025 starts on a Wednesday: leading Monday is Sep 29
		{"first on wednesday", 2025, time.October, date(2025, time.September, 29), 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, _, err := BuildMonthGrid(gridInput(tt.year, tt.month, nil, uuid.Nil))
			if err != nil {
				t.Fatalf("BuildMonthGrid err = %v", err)
			}
			if len(grid)%7 != 0 {
				t.Errorf("grid length %d is not a multiple of 7", len(grid))
			}
			if len(grid) != tt.wantLen {
				t.Errorf("grid length = %d, want %d", len(grid), tt.wantLen)
			}
			if !SameDay(grid[0].Date, tt.wantFirst) {
				t.Errorf("first cell = %s, want %s", grid[0].Date.Format("2006-01-02"), tt.wantFirst.Format("2006-01-02"))
			}
			if CanonicalWeekdayOf(grid[0].Date) != Monday {
				t.Errorf("grid does not start on Monday: %s", grid[0].Date.Weekday())
			}
			if CanonicalWeekdayOf(grid[len(grid)-1].Date) != Sunday {
				t.Errorf("grid does not end on Sunday: %s", grid[len(grid)-1].Date.Weekday())
			}
		})
	}
}

func TestBuildMonthGrid_AdjacentMonthFlag(t *testing.T) {
	grid, _, err := BuildMonthGrid(gridInput(2025, time.October, nil, uuid.Nil))
	if err != nil {
		t.Fatalf("BuildMonthGrid err = %v", err)
	}
	// Oct 1 2025 is a Wednesday, so the first two cells belong to September.
	if grid[0].IsCurrentMonth {
		t.Error("leading spill day marked as current month")
	}
	if !SameDay(grid[0].Date, date(2025, time.September, 29)) {
		t.Errorf("leading cell = %s, want the preceding Monday Sep 29", grid[0].Date.Format("2006-01-02"))
	}
	if !grid[2].IsCurrentMonth {
		t.Error("Oct 1 not marked as current month")
	}
}

func TestBuildMonthGrid_TodayAndSelected(t *testing.T) {
	selected := date(2025, time.June, 10)
	in := gridInput(2025, time.June, nil, uuid.Nil)
	in.Selected = &selected
	// different time-of-day must not break structural day equality
	in.Today = time.Date(2025, time.June, 3, 15, 42, 7, 0, time.UTC)

	grid, _, err := BuildMonthGrid(in)
	if err != nil {
		t.Fatalf("BuildMonthGrid err = %v", err)
	}
	var todays, selecteds int
	for _, cell := range grid {
		if cell.IsToday {
			todays++
			if !SameDay(cell.Date, in.Today) {
				t.Errorf("IsToday on wrong cell %s", cell.Date.Format("2006-01-02"))
			}
		}
		if cell.IsSelected {
			selecteds++
			if !SameDay(cell.Date, selected) {
				t.Errorf("IsSelected on wrong cell %s", cell.Date.Format("2006-01-02"))
			}
		}
	}
	if todays != 1 {
		t.Errorf("IsToday set on %d cells, want 1", todays)
	}
	if selecteds != 1 {
		t.Errorf("IsSelected set on %d cells, want 1", selecteds)
	}
}

func TestBuildMonthGrid_OccurrenceStatus(t *testing.T) {
	teacherID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	roster := []Class{{
		ID:        uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		Name:      "Ensayo General",
		TeacherID: teacherID,
		Schedule:  Schedule{{Day: StringDayToken("martes"), Start: "17:00", End: "18:30"}},
	}}

	completeDay := date(2025, time.June, 3)  // Tuesday
	partialDay := date(2025, time.June, 10)  // Tuesday
	lookup := func(d time.Time) (AttendanceDegree, bool) {
		switch {
		case SameDay(d, completeDay):
			return AttendanceComplete, true
		case SameDay(d, partialDay):
			return AttendancePartial, true
		}
		return "", false
	}

	in := gridInput(2025, time.June, roster, teacherID)
	in.AttendanceLookup = lookup
	grid, warns, err := BuildMonthGrid(in)
	if err != nil {
		t.Fatalf("BuildMonthGrid err = %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}

	for _, cell := range grid {
		want := OccurrenceNone
		if CanonicalWeekdayOf(cell.Date) == Tuesday {
			switch {
			case SameDay(cell.Date, completeDay):
				want = OccurrenceComplete
			case SameDay(cell.Date, partialDay):
				want = OccurrencePartial
			default:
				want = OccurrenceScheduled
			}
		}
		if cell.Status != want {
			t.Errorf("status for %s = %s, want %s", cell.Date.Format("2006-01-02 Mon"), cell.Status, want)
		}
	}
}

func TestBuildMonthGrid_WarningsDeduplicated(t *testing.T) {
	teacherID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	roster := []Class{{
		ID:        uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		TeacherID: teacherID,
		Schedule:  Schedule{{Day: StringDayToken("Funday"), Start: "09:00", End: "10:00"}},
	}}

	grid, warns, err := BuildMonthGrid(gridInput(2025, time.June, roster, teacherID))
	if err != nil {
		t.Fatalf("BuildMonthGrid err = %v", err)
	}
	if len(warns) != 1 || warns[0].Token != "Funday" {
		t.Fatalf("warnings = %v, want a single one for %q", warns, "Funday")
	}
	// a malformed slot must hide the class on every day, not surface it on all of them
	for _, cell := range grid {
		if cell.Status != OccurrenceNone {
			t.Errorf("malformed slot produced status %s on %s", cell.Status, cell.Date.Format("2006-01-02"))
		}
	}
}

func TestBuildMonthGrid_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"zero year", 0, time.June},
		{"zero month", 2025, 0},
		{"month 13", 2025, time.Month(13)},
		{"negative month", 2025, time.Month(-2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BuildMonthGrid(gridInput(tt.year, tt.month, nil, uuid.Nil))
			if !errors.Is(err, ErrInvalidMonth) {
				t.Errorf("err = %v, want ErrInvalidMonth", err)
			}
		})
	}
}
