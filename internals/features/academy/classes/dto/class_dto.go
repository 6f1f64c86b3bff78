// file: internals/features/academy/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "academia_backend/internals/features/academy/classes/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateClassRequest struct {
	ClassName      string    `json:"class_name"       validate:"required,min=2,max=120"`
	ClassTeacherID uuid.UUID `json:"class_teacher_id" validate:"required"`
	ClassTags      []string  `json:"class_tags"       validate:"omitempty,dive,min=1,max=40"`
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	return model.ClassModel{
		ClassName:      strings.TrimSpace(r.ClassName),
		ClassTeacherID: r.ClassTeacherID,
		ClassTags:      pq.StringArray(r.ClassTags),
		ClassIsActive:  true,
	}
}

type UpdateClassRequest struct {
	ClassName      *string    `json:"class_name"       validate:"omitempty,min=2,max=120"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id" validate:"omitempty"`
	ClassTags      []string   `json:"class_tags"       validate:"omitempty,dive,min=1,max=40"`
	ClassIsActive  *bool      `json:"class_is_active"  validate:"omitempty"`
}

func (r UpdateClassRequest) Apply(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.ClassTeacherID != nil {
		m.ClassTeacherID = *r.ClassTeacherID
	}
	if r.ClassTags != nil {
		m.ClassTags = pq.StringArray(r.ClassTags)
	}
	if r.ClassIsActive != nil {
		m.ClassIsActive = *r.ClassIsActive
	}
}

type AddCollaboratorRequest struct {
	ClassCollaboratorTeacherID uuid.UUID `json:"class_collaborator_teacher_id" validate:"required"`
	ClassCollaboratorRole      string    `json:"class_collaborator_role"       validate:"omitempty,min=2,max=40"`
}

func (r AddCollaboratorRequest) ToModel(classID uuid.UUID) model.ClassCollaboratorModel {
	role := strings.TrimSpace(r.ClassCollaboratorRole)
	if role == "" {
		role = "apoyo"
	}
	return model.ClassCollaboratorModel{
		ClassCollaboratorClassID:   classID,
		ClassCollaboratorTeacherID: r.ClassCollaboratorTeacherID,
		ClassCollaboratorRole:      role,
	}
}

type EnrollStudentRequest struct {
	ClassEnrollmentStudentID uuid.UUID `json:"class_enrollment_student_id" validate:"required"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ClassResponse struct {
	ClassID        uuid.UUID `json:"class_id"`
	ClassName      string    `json:"class_name"`
	ClassTeacherID uuid.UUID `json:"class_teacher_id"`
	ClassTags      []string  `json:"class_tags,omitempty"`
	ClassIsActive  bool      `json:"class_is_active"`

	ClassCollaborators []model.ClassCollaboratorModel `json:"class_collaborators,omitempty"`
	ClassScheduleSlots []ScheduleSlotResponse         `json:"class_schedule_slots,omitempty"`

	// Tokens de día que no se reconocen (datos heredados rotos); el front
	// muestra el aviso administrativo en vez de ocultar la clase.
	ScheduleWarnings []string `json:"schedule_warnings,omitempty"`
}

func FromClassModel(m model.ClassModel) ClassResponse {
	resp := ClassResponse{
		ClassID:            m.ClassID,
		ClassName:          m.ClassName,
		ClassTeacherID:     m.ClassTeacherID,
		ClassTags:          []string(m.ClassTags),
		ClassIsActive:      m.ClassIsActive,
		ClassCollaborators: m.ClassCollaborators,
		ClassScheduleSlots: FromScheduleSlotModels(m.ClassScheduleSlots),
	}
	for _, slot := range resp.ClassScheduleSlots {
		if slot.ClassScheduleSlotDayCanonical == nil {
			resp.ScheduleWarnings = append(resp.ScheduleWarnings, slot.ClassScheduleSlotDay)
		}
	}
	return resp
}

func FromClassModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromClassModel(m))
	}
	return out
}
