// file: internals/features/academy/schedule/service/weekday.go
package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/* =========================================================
   Canonical weekday (0=lunes .. 6=domingo)
   ========================================================= */

// WeekDay is the single weekday numbering used everywhere in the backend:
// Monday=0 .. Sunday=6. Raw platform weekdays (time.Weekday, Sunday=0) must
// pass through NativeWeekdayToCanonical before being compared to one.
type WeekDay int

const (
	Monday WeekDay = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const invalidWeekDay WeekDay = -1

var weekDayNames = [7]string{"lunes", "martes", "miércoles", "jueves", "viernes", "sábado", "domingo"}

func (d WeekDay) Valid() bool { return d >= Monday && d <= Sunday }

func (d WeekDay) String() string {
	if !d.Valid() {
		return fmt.Sprintf("WeekDay(%d)", int(d))
	}
	return weekDayNames[d]
}

// NativeWeekdayToCanonical converts Go's native numbering (Sunday=0) into the
// canonical Monday=0 one. This is the only place that conversion is allowed;
// no other code may do weekday arithmetic.
func NativeWeekdayToCanonical(wd time.Weekday) WeekDay {
	return WeekDay((int(wd) + 6) % 7)
}

// CanonicalWeekdayOf returns the canonical weekday of a concrete date.
func CanonicalWeekdayOf(t time.Time) WeekDay {
	return NativeWeekdayToCanonical(t.Weekday())
}

/* =========================================================
   DayToken (raw persisted day value, string o numérico)
   ========================================================= */

// DayToken is the raw day value as persisted on a schedule slot. Legacy rows
// carry anything from "Martes" to "mié" to "2"; nothing was validated at
// write time, so interpretation lives here and nowhere else.
//
// Numeric tokens are taken as already-canonical (Monday=0..Sunday=6). A
// native Sunday=0 value is NOT a valid DayToken; it has to come in through
// NativeWeekdayToCanonical instead.
type DayToken struct {
	raw     string
	num     int
	numeric bool
}

func StringDayToken(s string) DayToken { return DayToken{raw: s} }

func NumericDayToken(n int) DayToken { return DayToken{num: n, numeric: true} }

func (t DayToken) String() string {
	if t.numeric {
		return strconv.Itoa(t.num)
	}
	return t.raw
}

// DayTokenError marks a persisted day value that maps to no weekday. It is a
// distinct type (not a -1 sentinel) so callers can tell "malformed data"
// apart from "valid but not scheduled that day".
type DayTokenError struct {
	Token string
}

func (e *DayTokenError) Error() string {
	return fmt.Sprintf("unrecognized day token %q", e.Token)
}

/* =========================================================
   Normalization table
   ========================================================= */

// Keys are lower-cased and diacritic-folded. Every variant of one weekday
// (full Spanish name, abbreviation, English name, digit) maps to the same
// canonical value.
var dayTokenTable = map[string]WeekDay{
	// Spanish full names
	"lunes": Monday, "martes": Tuesday, "miercoles": Wednesday,
	"jueves": Thursday, "viernes": Friday, "sabado": Saturday, "domingo": Sunday,

	// Spanish abbreviations (3 y 4 letras, como las guarda el frontend)
	"lun": Monday, "mar": Tuesday, "mie": Wednesday, "mier": Wednesday,
	"jue": Thursday, "juev": Thursday, "vie": Friday, "vier": Friday,
	"sab": Saturday, "dom": Sunday,

	// English names (interop with imported records)
	"monday": Monday, "tuesday": Tuesday, "wednesday": Wednesday,
	"thursday": Thursday, "friday": Friday, "saturday": Saturday, "sunday": Sunday,
	"mon": Monday, "tue": Tuesday, "wed": Wednesday,
	"thu": Thursday, "fri": Friday, "sat": Saturday, "sun": Sunday,

	// stringified canonical digits
	"0": Monday, "1": Tuesday, "2": Wednesday, "3": Thursday,
	"4": Friday, "5": Saturday, "6": Sunday,
}

func foldDiacritics(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'á':
			return 'a'
		case 'é':
			return 'e'
		case 'í':
			return 'i'
		case 'ó':
			return 'o'
		case 'ú', 'ü':
			return 'u'
		case 'ñ':
			return 'n'
		}
		return r
	}, s)
}

// NormalizeDayToken resolves a raw token to its canonical WeekDay. Case,
// surrounding whitespace and diacritics are insignificant. An unknown token
// returns a *DayTokenError carrying the original value; it never returns a
// valid WeekDay alongside an error.
func NormalizeDayToken(tok DayToken) (WeekDay, error) {
	if tok.numeric {
		if tok.num < 0 || tok.num > 6 {
			return invalidWeekDay, &DayTokenError{Token: tok.String()}
		}
		return WeekDay(tok.num), nil
	}
	key := foldDiacritics(strings.ToLower(strings.TrimSpace(tok.raw)))
	if key == "" {
		return invalidWeekDay, &DayTokenError{Token: tok.raw}
	}
	if d, ok := dayTokenTable[key]; ok {
		return d, nil
	}
	return invalidWeekDay, &DayTokenError{Token: tok.raw}
}
