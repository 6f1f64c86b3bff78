// file: internals/features/academy/students/dto/student_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "academia_backend/internals/features/academy/students/model"
)

type CreateStudentRequest struct {
	StudentName          string  `json:"student_name"           validate:"required,min=2,max=120"`
	StudentGuardianName  *string `json:"student_guardian_name"  validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentName:          strings.TrimSpace(r.StudentName),
		StudentGuardianName:  r.StudentGuardianName,
		StudentGuardianPhone: r.StudentGuardianPhone,
		StudentIsActive:      true,
	}
}

type UpdateStudentRequest struct {
	StudentName          *string `json:"student_name"           validate:"omitempty,min=2,max=120"`
	StudentGuardianName  *string `json:"student_guardian_name"  validate:"omitempty,max=120"`
	StudentGuardianPhone *string `json:"student_guardian_phone" validate:"omitempty,max=30"`
	StudentIsActive      *bool   `json:"student_is_active"      validate:"omitempty"`
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = r.StudentGuardianName
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = r.StudentGuardianPhone
	}
	if r.StudentIsActive != nil {
		m.StudentIsActive = *r.StudentIsActive
	}
}

type StudentResponse struct {
	StudentID            uuid.UUID `json:"student_id"`
	StudentName          string    `json:"student_name"`
	StudentGuardianName  *string   `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string   `json:"student_guardian_phone,omitempty"`
	StudentIsActive      bool      `json:"student_is_active"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentName:          m.StudentName,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentIsActive:      m.StudentIsActive,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}
