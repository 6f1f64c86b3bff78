// file: internals/features/academy/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ClassModel struct {
	// PK
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName string `gorm:"column:class_name;type:varchar(120);not null" json:"class_name"`

	// Profesor titular (FK → teachers)
	ClassTeacherID uuid.UUID `gorm:"column:class_teacher_id;type:uuid;not null" json:"class_teacher_id"`

	// Etiquetas libres ("coro", "inicial", "orquesta", ...)
	ClassTags pq.StringArray `gorm:"column:class_tags;type:text[]" json:"class_tags,omitempty"`

	ClassIsActive bool `gorm:"column:class_is_active;not null;default:true" json:"class_is_active"`

	// Audit
	ClassCreatedAt time.Time      `gorm:"column:class_created_at;type:timestamptz;not null;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"column:class_updated_at;type:timestamptz;not null;autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`

	// Relaciones (read-only desde este feature)
	ClassCollaborators []ClassCollaboratorModel `gorm:"foreignKey:ClassCollaboratorClassID;references:ClassID" json:"class_collaborators,omitempty"`
	ClassScheduleSlots []ClassScheduleSlotModel `gorm:"foreignKey:ClassScheduleSlotClassID;references:ClassID" json:"class_schedule_slots,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }

// ClassCollaboratorModel: profesor adicional de una clase, con rol libre
// ("apoyo", "suplente", "acompañante", ...).
type ClassCollaboratorModel struct {
	// PK
	ClassCollaboratorID uuid.UUID `gorm:"column:class_collaborator_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_collaborator_id"`

	ClassCollaboratorClassID   uuid.UUID `gorm:"column:class_collaborator_class_id;type:uuid;not null;index" json:"class_collaborator_class_id"`
	ClassCollaboratorTeacherID uuid.UUID `gorm:"column:class_collaborator_teacher_id;type:uuid;not null;index" json:"class_collaborator_teacher_id"`
	ClassCollaboratorRole      string    `gorm:"column:class_collaborator_role;type:varchar(40);not null;default:'apoyo'" json:"class_collaborator_role"`

	// Audit
	ClassCollaboratorCreatedAt time.Time      `gorm:"column:class_collaborator_created_at;type:timestamptz;not null;autoCreateTime" json:"class_collaborator_created_at"`
	ClassCollaboratorDeletedAt gorm.DeletedAt `gorm:"column:class_collaborator_deleted_at;index" json:"class_collaborator_deleted_at,omitempty"`
}

func (ClassCollaboratorModel) TableName() string { return "class_collaborators" }

type ClassEnrollmentModel struct {
	// PK
	ClassEnrollmentID uuid.UUID `gorm:"column:class_enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_enrollment_id"`

	ClassEnrollmentClassID   uuid.UUID `gorm:"column:class_enrollment_class_id;type:uuid;not null;index" json:"class_enrollment_class_id"`
	ClassEnrollmentStudentID uuid.UUID `gorm:"column:class_enrollment_student_id;type:uuid;not null;index" json:"class_enrollment_student_id"`

	// Audit
	ClassEnrollmentCreatedAt time.Time      `gorm:"column:class_enrollment_created_at;type:timestamptz;not null;autoCreateTime" json:"class_enrollment_created_at"`
	ClassEnrollmentDeletedAt gorm.DeletedAt `gorm:"column:class_enrollment_deleted_at;index" json:"class_enrollment_deleted_at,omitempty"`
}

func (ClassEnrollmentModel) TableName() string { return "class_enrollments" }
