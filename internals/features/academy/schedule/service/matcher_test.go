// file: internals/features/academy/schedule/service/matcher_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// 2025-06-01 is a Sunday, so 2025-06-02..08 covers Monday..Sunday.
var (
	aMonday    = date(2025, time.June, 2)
	aTuesday   = date(2025, time.June, 3)
	aThursday  = date(2025, time.June, 5)
	aSaturday  = date(2025, time.June, 7)
	aSunday    = date(2025, time.June, 1)
	fullWeek   = []time.Time{aMonday, aTuesday, date(2025, time.June, 4), aThursday, date(2025, time.June, 6), aSaturday, date(2025, time.June, 8)}
)

func ensayoGeneral() Schedule {
	return Schedule{
		{Day: StringDayToken("Martes"), Start: "17:00", End: "18:30"},
		{Day: StringDayToken("jueves"), Start: "17:00", End: "18:30"},
		{Day: StringDayToken("SÁBADO"), Start: "10:00", End: "12:00"},
	}
}

func TestOccursOn(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
		day      time.Time
		want     bool
	}{
		{"tuesday matches", ensayoGeneral(), aTuesday, true},
		{"thursday matches", ensayoGeneral(), aThursday, true},
		{"saturday matches", ensayoGeneral(), aSaturday, true},
		{"sunday does not", ensayoGeneral(), aSunday, false},
		{"monday does not", ensayoGeneral(), aMonday, false},
		{"numeric slot day", Schedule{{Day: NumericDayToken(0), Start: "08:00", End: "09:00"}}, aMonday, true},
		{"two slots same day", Schedule{
			{Day: StringDayToken("martes"), Start: "08:00", End: "09:00"},
			{Day: StringDayToken("mar"), Start: "16:00", End: "17:00"},
		}, aTuesday, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tokenErrs := OccursOn(tt.schedule, tt.day)
			if len(tokenErrs) != 0 {
				t.Fatalf("unexpected token errors: %v", tokenErrs)
			}
			if got != tt.want {
				t.Errorf("OccursOn(%s) = %v, want %v", tt.day.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestOccursOn_EmptySchedule(t *testing.T) {
	for _, d := range fullWeek {
		if got, _ := OccursOn(Schedule{}, d); got {
			t.Errorf("empty schedule matched %s", d.Format("2006-01-02 Mon"))
		}
		if got, _ := OccursOn(nil, d); got {
			t.Errorf("nil schedule matched %s", d.Format("2006-01-02 Mon"))
		}
	}
}

func TestOccursOn_SlotOrderIrrelevant(t *testing.T) {
	base := ensayoGeneral()
	permuted := Schedule{base[2], base[0], base[1]}
	for _, d := range fullWeek {
		a, _ := OccursOn(base, d)
		b, _ := OccursOn(permuted, d)
		if a != b {
			t.Errorf("slot order changed result for %s: %v vs %v", d.Format("2006-01-02"), a, b)
		}
	}
}

func TestOccursOn_BadSlotReportedNotMatched(t *testing.T) {
	schedule := Schedule{
		{Day: StringDayToken("Funday"), Start: "09:00", End: "10:00"},
		{Day: StringDayToken("martes"), Start: "17:00", End: "18:00"},
	}

	// the good slot still matches
	got, tokenErrs := OccursOn(schedule, aTuesday)
	if !got {
		t.Error("good slot failed to match alongside a bad one")
	}
	if len(tokenErrs) != 1 || tokenErrs[0].Token != "Funday" {
		t.Errorf("token errors = %v, want one for %q", tokenErrs, "Funday")
	}

	// the bad slot contributes a match on no day at all
	for _, d := range fullWeek {
		matched, _ := OccursOn(Schedule{schedule[0]}, d)
		if matched {
			t.Errorf("malformed slot matched %s", d.Format("2006-01-02 Mon"))
		}
	}
}

func TestOccursOn_Idempotent(t *testing.T) {
	schedule := ensayoGeneral()
	first, _ := OccursOn(schedule, aTuesday)
	second, _ := OccursOn(schedule, aTuesday)
	if first != second {
		t.Errorf("OccursOn drifted between identical calls: %v then %v", first, second)
	}
}

func TestClassesOccurringOn(t *testing.T) {
	t1 := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	t2 := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	classA := Class{
		ID:        uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
		Name:      "Ensayo General",
		TeacherID: t1,
		Schedule:  ensayoGeneral(),
	}
	classB := Class{
		ID:            uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"),
		Name:          "Coro Juvenil",
		TeacherID:     t2,
		Collaborators: []Collaborator{{TeacherID: t1, Role: "apoyo"}},
		Schedule:      Schedule{{Day: StringDayToken("martes"), Start: "19:00", End: "20:00"}},
	}
	classC := Class{
		ID:        uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc"),
		Name:      "Piano Inicial",
		TeacherID: t2,
		Schedule:  Schedule{{Day: StringDayToken("martes"), Start: "08:00", End: "09:00"}},
	}
	roster := []Class{classA, classB, classC}

	t.Run("primary plus collaborator, no duplicates", func(t *testing.T) {
		got, tokenErrs := ClassesOccurringOn(roster, aTuesday, &RosterFilter{TeacherID: t1})
		if len(tokenErrs) != 0 {
			t.Fatalf("unexpected token errors: %v", tokenErrs)
		}
		if len(got) != 2 || got[0].ID != classA.ID || got[1].ID != classB.ID {
			t.Fatalf("got %d classes %v, want [classA classB] in roster order", len(got), ids(got))
		}
	})

	t.Run("teacher who is primary and collaborator appears once", func(t *testing.T) {
		both := classB
		both.TeacherID = t1
		got, _ := ClassesOccurringOn([]Class{both}, aTuesday, &RosterFilter{TeacherID: t1})
		if len(got) != 1 {
			t.Errorf("got %d entries, want exactly 1", len(got))
		}
	})

	t.Run("no filter returns every occurring class", func(t *testing.T) {
		got, _ := ClassesOccurringOn(roster, aTuesday, nil)
		if len(got) != 3 {
			t.Errorf("got %d classes, want 3", len(got))
		}
	})

	t.Run("day without occurrences", func(t *testing.T) {
		got, _ := ClassesOccurringOn(roster, aSunday, &RosterFilter{TeacherID: t1})
		if len(got) != 0 {
			t.Errorf("got %v on a Sunday, want none", ids(got))
		}
	})
}

func ids(classes []Class) []uuid.UUID {
	out := make([]uuid.UUID, len(classes))
	for i, c := range classes {
		out[i] = c.ID
	}
	return out
}
