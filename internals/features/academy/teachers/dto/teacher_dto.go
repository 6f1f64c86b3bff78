// file: internals/features/academy/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "academia_backend/internals/features/academy/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherName       string     `json:"teacher_name"       validate:"required,min=2,max=120"`
	TeacherEmail      *string    `json:"teacher_email"      validate:"omitempty,email"`
	TeacherInstrument *string    `json:"teacher_instrument" validate:"omitempty,max=60"`
	TeacherUserID     *uuid.UUID `json:"teacher_user_id"    validate:"omitempty"`
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		TeacherName:       strings.TrimSpace(r.TeacherName),
		TeacherEmail:      r.TeacherEmail,
		TeacherInstrument: r.TeacherInstrument,
		TeacherUserID:     r.TeacherUserID,
		TeacherIsActive:   true,
	}
}

type UpdateTeacherRequest struct {
	TeacherName       *string `json:"teacher_name"       validate:"omitempty,min=2,max=120"`
	TeacherEmail      *string `json:"teacher_email"      validate:"omitempty,email"`
	TeacherInstrument *string `json:"teacher_instrument" validate:"omitempty,max=60"`
	TeacherIsActive   *bool   `json:"teacher_is_active"  validate:"omitempty"`
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.TeacherName != nil {
		m.TeacherName = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = r.TeacherEmail
	}
	if r.TeacherInstrument != nil {
		m.TeacherInstrument = r.TeacherInstrument
	}
	if r.TeacherIsActive != nil {
		m.TeacherIsActive = *r.TeacherIsActive
	}
}

type TeacherResponse struct {
	TeacherID         uuid.UUID `json:"teacher_id"`
	TeacherName       string    `json:"teacher_name"`
	TeacherEmail      *string   `json:"teacher_email,omitempty"`
	TeacherInstrument *string   `json:"teacher_instrument,omitempty"`
	TeacherIsActive   bool      `json:"teacher_is_active"`
}

func FromTeacherModel(m model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:         m.TeacherID,
		TeacherName:       m.TeacherName,
		TeacherEmail:      m.TeacherEmail,
		TeacherInstrument: m.TeacherInstrument,
		TeacherIsActive:   m.TeacherIsActive,
	}
}

func FromTeacherModels(ms []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromTeacherModel(m))
	}
	return out
}
