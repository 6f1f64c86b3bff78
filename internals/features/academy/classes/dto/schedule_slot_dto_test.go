// file: internals/features/academy/classes/dto/schedule_slot_dto_test.go
package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	model "academia_backend/internals/features/academy/classes/model"
)

func TestCreateScheduleSlotRequestToModel(t *testing.T) {
	classID := uuid.New()

	tests := []struct {
		name    string
		req     CreateScheduleSlotRequest
		wantErr error // nil = alta válida
	}{
		{
			name: "día y horas válidos",
			req:  CreateScheduleSlotRequest{ClassScheduleSlotDay: "Martes", ClassScheduleSlotStartTime: "17:00", ClassScheduleSlotEndTime: "18:30"},
		},
		{
			name: "abreviatura con acento y hora con segundos",
			req:  CreateScheduleSlotRequest{ClassScheduleSlotDay: "MIÉ", ClassScheduleSlotStartTime: "09:00:00", ClassScheduleSlotEndTime: "10:15:00"},
		},
		{
			name:    "token de día no reconocido",
			req:     CreateScheduleSlotRequest{ClassScheduleSlotDay: "Funday", ClassScheduleSlotStartTime: "17:00", ClassScheduleSlotEndTime: "18:30"},
			wantErr: ErrInvalidDayToken,
		},
		{
			name:    "hora de inicio imposible",
			req:     CreateScheduleSlotRequest{ClassScheduleSlotDay: "Martes", ClassScheduleSlotStartTime: "25:00", ClassScheduleSlotEndTime: "18:30"},
			wantErr: ErrInvalidStartTime,
		},
		{
			name:    "hora de fin vacía",
			req:     CreateScheduleSlotRequest{ClassScheduleSlotDay: "Martes", ClassScheduleSlotStartTime: "17:00", ClassScheduleSlotEndTime: ""},
			wantErr: ErrInvalidEndTime,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			row, err := tc.req.ToModel(classID)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ToModel() error = %v, esperaba %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToModel() error inesperado: %v", err)
			}
			if row.ClassScheduleSlotClassID != classID {
				t.Errorf("class id = %s, esperaba %s", row.ClassScheduleSlotClassID, classID)
			}
			if row.ClassScheduleSlotDay != tc.req.ClassScheduleSlotDay {
				t.Errorf("día persistido = %q, esperaba el token original %q", row.ClassScheduleSlotDay, tc.req.ClassScheduleSlotDay)
			}
			if row.ClassScheduleSlotStartTime.IsZero() || row.ClassScheduleSlotEndTime.IsZero() {
				t.Error("horas sin parsear en una alta válida")
			}
		})
	}
}

func TestPatchScheduleSlotRequestApply(t *testing.T) {
	strp := func(s string) *string { return &s }

	base := func(t *testing.T) model.ClassScheduleSlotModel {
		t.Helper()
		row, err := CreateScheduleSlotRequest{
			ClassScheduleSlotDay:       "Martes",
			ClassScheduleSlotStartTime: "17:00",
			ClassScheduleSlotEndTime:   "18:30",
		}.ToModel(uuid.New())
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		return row
	}

	t.Run("patch vacío no toca nada", func(t *testing.T) {
		row := base(t)
		before := row
		if err := (PatchScheduleSlotRequest{}).Apply(&row); err != nil {
			t.Fatalf("Apply() error inesperado: %v", err)
		}
		if row != before {
			t.Error("el modelo cambió con un patch vacío")
		}
	})

	t.Run("cambio de día válido", func(t *testing.T) {
		row := base(t)
		if err := (PatchScheduleSlotRequest{ClassScheduleSlotDay: strp(" jueves ")}).Apply(&row); err != nil {
			t.Fatalf("Apply() error inesperado: %v", err)
		}
		if row.ClassScheduleSlotDay != "jueves" {
			t.Errorf("día = %q, esperaba %q (recortado)", row.ClassScheduleSlotDay, "jueves")
		}
	})

	t.Run("día no reconocido deja el modelo intacto", func(t *testing.T) {
		row := base(t)
		before := row
		err := PatchScheduleSlotRequest{ClassScheduleSlotDay: strp("Funday")}.Apply(&row)
		if !errors.Is(err, ErrInvalidDayToken) {
			t.Fatalf("Apply() error = %v, esperaba %v", err, ErrInvalidDayToken)
		}
		if row != before {
			t.Error("el modelo cambió pese al token inválido")
		}
	})

	t.Run("hora de inicio inválida", func(t *testing.T) {
		row := base(t)
		err := PatchScheduleSlotRequest{ClassScheduleSlotStartTime: strp("mediodía")}.Apply(&row)
		if !errors.Is(err, ErrInvalidStartTime) {
			t.Fatalf("Apply() error = %v, esperaba %v", err, ErrInvalidStartTime)
		}
	})
}

func TestFromScheduleSlotModelCanonicalDay(t *testing.T) {
	good, err := CreateScheduleSlotRequest{
		ClassScheduleSlotDay:       "miércoles",
		ClassScheduleSlotStartTime: "10:00",
		ClassScheduleSlotEndTime:   "11:00",
	}.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp := FromScheduleSlotModel(good)
	if resp.ClassScheduleSlotDayCanonical == nil || *resp.ClassScheduleSlotDayCanonical != 2 {
		t.Errorf("canonical = %v, esperaba 2 (miércoles)", resp.ClassScheduleSlotDayCanonical)
	}
	if resp.ClassScheduleSlotStartTime != "10:00" || resp.ClassScheduleSlotEndTime != "11:00" {
		t.Errorf("horas = %q-%q, esperaba 10:00-11:00", resp.ClassScheduleSlotStartTime, resp.ClassScheduleSlotEndTime)
	}

	// token heredado roto: el día viaja tal cual y el canónico en null
	legacy := good
	legacy.ClassScheduleSlotDay = "Marte"
	resp = FromScheduleSlotModel(legacy)
	if resp.ClassScheduleSlotDayCanonical != nil {
		t.Errorf("canonical = %d, esperaba null para un token roto", *resp.ClassScheduleSlotDayCanonical)
	}
	if resp.ClassScheduleSlotDay != "Marte" {
		t.Errorf("día = %q, esperaba el valor persistido sin tocar", resp.ClassScheduleSlotDay)
	}
}
