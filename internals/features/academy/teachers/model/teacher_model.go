// file: internals/features/academy/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	// Cuenta vinculada (login vive en el sistema de auth externo)
	TeacherUserID *uuid.UUID `gorm:"column:teacher_user_id;type:uuid" json:"teacher_user_id,omitempty"`

	TeacherName       string  `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherEmail      *string `gorm:"column:teacher_email;type:varchar(120)" json:"teacher_email,omitempty"`
	TeacherInstrument *string `gorm:"column:teacher_instrument;type:varchar(60)" json:"teacher_instrument,omitempty"`

	TeacherIsActive bool `gorm:"column:teacher_is_active;not null;default:true" json:"teacher_is_active"`

	// Audit
	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
