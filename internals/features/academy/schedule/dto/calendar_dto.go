// file: internals/features/academy/schedule/dto/calendar_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	service "academia_backend/internals/features/academy/schedule/service"
)

/* =========================================================
   Month grid
   ========================================================= */

type CalendarDayResponse struct {
	Date           string                   `json:"date"` // "2006-01-02"
	IsCurrentMonth bool                     `json:"is_current_month"`
	IsToday        bool                     `json:"is_today"`
	IsSelected     bool                     `json:"is_selected"`
	Status         service.OccurrenceStatus `json:"status"`
}

func FromCalendarDays(days []service.CalendarDay) []CalendarDayResponse {
	out := make([]CalendarDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, CalendarDayResponse{
			Date:           d.Date.Format("2006-01-02"),
			IsCurrentMonth: d.IsCurrentMonth,
			IsToday:        d.IsToday,
			IsSelected:     d.IsSelected,
			Status:         d.Status,
		})
	}
	return out
}

type MonthGridResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`

	// Tokens de día no reconocidos encontrados al proyectar el mes
	// (deduplicados). Aviso administrativo, no un "sin clases".
	ScheduleWarnings []string `json:"schedule_warnings,omitempty"`
}

func WarningTokens(warns []*service.DayTokenError) []string {
	if len(warns) == 0 {
		return nil
	}
	out := make([]string, 0, len(warns))
	for _, w := range warns {
		out = append(out, w.Token)
	}
	return out
}

/* =========================================================
   Agenda del día
   ========================================================= */

type AgendaSlotResponse struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type AgendaClassResponse struct {
	ClassID   uuid.UUID            `json:"class_id"`
	ClassName string               `json:"class_name"`
	IsPrimary bool                 `json:"is_primary"`
	Slots     []AgendaSlotResponse `json:"slots,omitempty"`
}

type AgendaResponse struct {
	Date             string                `json:"date"`
	WeekDayCanonical int                   `json:"weekday_canonical"` // 0=lunes..6=domingo
	Classes          []AgendaClassResponse `json:"classes"`
	ScheduleWarnings []string              `json:"schedule_warnings,omitempty"`
}

func NewAgendaResponse(date time.Time) AgendaResponse {
	return AgendaResponse{
		Date:             date.Format("2006-01-02"),
		WeekDayCanonical: int(service.CanonicalWeekdayOf(date)),
		Classes:          []AgendaClassResponse{},
	}
}
