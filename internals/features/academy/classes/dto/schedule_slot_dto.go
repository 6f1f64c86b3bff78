// file: internals/features/academy/classes/dto/schedule_slot_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "academia_backend/internals/features/academy/classes/model"
	schedsvc "academia_backend/internals/features/academy/schedule/service"
)

/* =========================================================
   Helpers
   ========================================================= */

var (
	ErrInvalidStartTime = errors.New("hora de inicio inválida (se espera HH:mm)")
	ErrInvalidEndTime   = errors.New("hora de fin inválida (se espera HH:mm)")
	ErrInvalidDayToken  = errors.New("día de la semana no reconocido")
)

func parseTimeOfDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func formatTOD(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateScheduleSlotRequest struct {
	ClassScheduleSlotDay       string `json:"class_schedule_slot_day"        validate:"required"`
	ClassScheduleSlotStartTime string `json:"class_schedule_slot_start_time" validate:"required"` // "HH:mm" / "HH:mm:ss"
	ClassScheduleSlotEndTime   string `json:"class_schedule_slot_end_time"   validate:"required"` // "HH:mm" / "HH:mm:ss"
}

// ToModel valida el token de día ANTES de escribir. Los datos heredados no
// pasaron por aquí (por eso el normalizador tolera de todo al leer), pero
// las altas nuevas no deben seguir sembrando tokens rotos.
func (r CreateScheduleSlotRequest) ToModel(classID uuid.UUID) (model.ClassScheduleSlotModel, error) {
	if _, err := schedsvc.NormalizeDayToken(schedsvc.StringDayToken(r.ClassScheduleSlotDay)); err != nil {
		return model.ClassScheduleSlotModel{}, errors.Join(ErrInvalidDayToken, err)
	}
	st, ok := parseTimeOfDay(r.ClassScheduleSlotStartTime)
	if !ok {
		return model.ClassScheduleSlotModel{}, ErrInvalidStartTime
	}
	et, ok := parseTimeOfDay(r.ClassScheduleSlotEndTime)
	if !ok {
		return model.ClassScheduleSlotModel{}, ErrInvalidEndTime
	}
	return model.ClassScheduleSlotModel{
		ClassScheduleSlotClassID:   classID,
		ClassScheduleSlotDay:       strings.TrimSpace(r.ClassScheduleSlotDay),
		ClassScheduleSlotStartTime: st,
		ClassScheduleSlotEndTime:   et,
	}, nil
}

type PatchScheduleSlotRequest struct {
	ClassScheduleSlotDay       *string `json:"class_schedule_slot_day"        validate:"omitempty"`
	ClassScheduleSlotStartTime *string `json:"class_schedule_slot_start_time" validate:"omitempty"`
	ClassScheduleSlotEndTime   *string `json:"class_schedule_slot_end_time"   validate:"omitempty"`
}

func (r PatchScheduleSlotRequest) Apply(m *model.ClassScheduleSlotModel) error {
	if r.ClassScheduleSlotDay != nil {
		if _, err := schedsvc.NormalizeDayToken(schedsvc.StringDayToken(*r.ClassScheduleSlotDay)); err != nil {
			return errors.Join(ErrInvalidDayToken, err)
		}
		m.ClassScheduleSlotDay = strings.TrimSpace(*r.ClassScheduleSlotDay)
	}
	if r.ClassScheduleSlotStartTime != nil {
		st, ok := parseTimeOfDay(*r.ClassScheduleSlotStartTime)
		if !ok {
			return ErrInvalidStartTime
		}
		m.ClassScheduleSlotStartTime = st
	}
	if r.ClassScheduleSlotEndTime != nil {
		et, ok := parseTimeOfDay(*r.ClassScheduleSlotEndTime)
		if !ok {
			return ErrInvalidEndTime
		}
		m.ClassScheduleSlotEndTime = et
	}
	return nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScheduleSlotResponse struct {
	ClassScheduleSlotID      uuid.UUID `json:"class_schedule_slot_id"`
	ClassScheduleSlotClassID uuid.UUID `json:"class_schedule_slot_class_id"`

	// Día tal cual está persistido + su forma canónica (0=lunes..6=domingo).
	// DayCanonical viaja en null cuando el token guardado no se reconoce;
	// el front lo usa para pintar la alerta de "día inválido".
	ClassScheduleSlotDay          string `json:"class_schedule_slot_day"`
	ClassScheduleSlotDayCanonical *int   `json:"class_schedule_slot_day_canonical"`

	ClassScheduleSlotStartTime string `json:"class_schedule_slot_start_time"`
	ClassScheduleSlotEndTime   string `json:"class_schedule_slot_end_time"`
}

func FromScheduleSlotModel(m model.ClassScheduleSlotModel) ScheduleSlotResponse {
	resp := ScheduleSlotResponse{
		ClassScheduleSlotID:        m.ClassScheduleSlotID,
		ClassScheduleSlotClassID:   m.ClassScheduleSlotClassID,
		ClassScheduleSlotDay:       m.ClassScheduleSlotDay,
		ClassScheduleSlotStartTime: formatTOD(m.ClassScheduleSlotStartTime),
		ClassScheduleSlotEndTime:   formatTOD(m.ClassScheduleSlotEndTime),
	}
	if day, err := schedsvc.NormalizeDayToken(schedsvc.StringDayToken(m.ClassScheduleSlotDay)); err == nil {
		v := int(day)
		resp.ClassScheduleSlotDayCanonical = &v
	}
	return resp
}

func FromScheduleSlotModels(ms []model.ClassScheduleSlotModel) []ScheduleSlotResponse {
	out := make([]ScheduleSlotResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromScheduleSlotModel(m))
	}
	return out
}
