// file: internals/features/academy/schedule/service/weekday_test.go
package service

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeDayToken_Variants(t *testing.T) {
	tests := []struct {
		name string
		tok  DayToken
		want WeekDay
	}{
		{"full lower", StringDayToken("martes"), Tuesday},
		{"full title", StringDayToken("Martes"), Tuesday},
		{"full upper", StringDayToken("MARTES"), Tuesday},
		{"abbrev", StringDayToken("mar"), Tuesday},
		{"english", StringDayToken("Tuesday"), Tuesday},
		{"padded", StringDayToken("  martes  "), Tuesday},
		{"digit string", StringDayToken("1"), Tuesday},
		{"numeric canonical", NumericDayToken(1), Tuesday},

		{"diacritics kept", StringDayToken("miércoles"), Wednesday},
		{"diacritics dropped", StringDayToken("Miercoles"), Wednesday},
		{"abbrev accented", StringDayToken("MIÉ"), Wednesday},
		{"abbrev 4 letters", StringDayToken("mier"), Wednesday},

		{"lunes", StringDayToken("lunes"), Monday},
		{"jueves", StringDayToken("jueves"), Thursday},
		{"viernes", StringDayToken("viernes"), Friday},
		{"sabado accent", StringDayToken("SÁBADO"), Saturday},
		{"sabado plain", StringDayToken("sabado"), Saturday},
		{"domingo", StringDayToken("Domingo"), Sunday},
		{"dom", StringDayToken("dom"), Sunday},
		{"sunday english", StringDayToken("sunday"), Sunday},
		{"sun english abbrev", StringDayToken("Sun"), Sunday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDayToken(tt.tok)
			if err != nil {
				t.Fatalf("NormalizeDayToken(%q) err = %v, want nil", tt.tok, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDayToken(%q) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestNormalizeDayToken_Unrecognized(t *testing.T) {
	tests := []struct {
		name      string
		tok       DayToken
		wantToken string
	}{
		{"made-up day", StringDayToken("Funday"), "Funday"},
		{"empty", StringDayToken(""), ""},
		{"blank", StringDayToken("   "), "   "},
		{"numeric out of range high", NumericDayToken(7), "7"},
		{"numeric out of range low", NumericDayToken(-1), "-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDayToken(tt.tok)
			if err == nil {
				t.Fatalf("NormalizeDayToken(%q) = %v, want error", tt.tok, got)
			}
			var te *DayTokenError
			if !errors.As(err, &te) {
				t.Fatalf("error type = %T, want *DayTokenError", err)
			}
			if te.Token != tt.wantToken {
				t.Errorf("DayTokenError.Token = %q, want original %q", te.Token, tt.wantToken)
			}
			if got.Valid() {
				t.Errorf("errored normalization returned valid WeekDay %v", got)
			}
		})
	}
}

func TestNormalizeDayToken_Idempotent(t *testing.T) {
	tok := StringDayToken("miércoles")
	first, err1 := NormalizeDayToken(tok)
	second, err2 := NormalizeDayToken(tok)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Errorf("normalization drifted between calls: %v then %v", first, second)
	}
}

// canonicalToNative is the test-only inverse of NativeWeekdayToCanonical.
func canonicalToNative(d WeekDay) time.Weekday {
	return time.Weekday((int(d) + 1) % 7)
}

func TestNativeWeekdayToCanonical(t *testing.T) {
	tests := []struct {
		native time.Weekday
		want   WeekDay
	}{
		{time.Sunday, Sunday},
		{time.Monday, Monday},
		{time.Tuesday, Tuesday},
		{time.Wednesday, Wednesday},
		{time.Thursday, Thursday},
		{time.Friday, Friday},
		{time.Saturday, Saturday},
	}
	for _, tt := range tests {
		if got := NativeWeekdayToCanonical(tt.native); got != tt.want {
			t.Errorf("NativeWeekdayToCanonical(%v) = %v, want %v", tt.native, got, tt.want)
		}
	}
}

func TestNativeWeekdayRoundTrip(t *testing.T) {
	for d := Monday; d <= Sunday; d++ {
		if got := NativeWeekdayToCanonical(canonicalToNative(d)); got != d {
			t.Errorf("round trip broke for %v: got %v", d, got)
		}
	}
}
