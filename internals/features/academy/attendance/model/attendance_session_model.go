// file: internals/features/academy/attendance/model/attendance_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttendanceSessionModel: el pase de lista de una clase en una fecha
// concreta. Una fila existe desde que el profesor abre la sesión; el grado
// (parcial/completa) se deriva de los contadores.
type AttendanceSessionModel struct {
	// PK
	AttendanceSessionID uuid.UUID `gorm:"column:attendance_session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_session_id"`

	AttendanceSessionClassID   uuid.UUID `gorm:"column:attendance_session_class_id;type:uuid;not null;index" json:"attendance_session_class_id"`
	AttendanceSessionTeacherID uuid.UUID `gorm:"column:attendance_session_teacher_id;type:uuid;not null;index" json:"attendance_session_teacher_id"`

	// Fecha de la sesión (solo día; la hora vive en el slot)
	AttendanceSessionDate time.Time `gorm:"column:attendance_session_date;type:date;not null;index" json:"attendance_session_date"`

	AttendanceSessionStudentsTotal  int `gorm:"column:attendance_session_students_total;not null;default:0" json:"attendance_session_students_total"`
	AttendanceSessionStudentsMarked int `gorm:"column:attendance_session_students_marked;not null;default:0" json:"attendance_session_students_marked"`

	// Snapshot del roster al abrir la sesión (student_id → estado)
	AttendanceSessionRosterSnapshot datatypes.JSONMap `gorm:"column:attendance_session_roster_snapshot;type:jsonb;not null" json:"attendance_session_roster_snapshot"`

	// Audit
	AttendanceSessionCreatedAt time.Time      `gorm:"column:attendance_session_created_at;type:timestamptz;not null;autoCreateTime" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time      `gorm:"column:attendance_session_updated_at;type:timestamptz;not null;autoUpdateTime" json:"attendance_session_updated_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

// Guard: snapshot nunca NULL (la columna es jsonb NOT NULL).
func (m *AttendanceSessionModel) BeforeSave(tx *gorm.DB) error {
	if m.AttendanceSessionRosterSnapshot == nil {
		m.AttendanceSessionRosterSnapshot = datatypes.JSONMap{}
	}
	return nil
}

// IsComplete: todos los alumnos del snapshot ya están marcados.
func (m *AttendanceSessionModel) IsComplete() bool {
	return m.AttendanceSessionStudentsTotal > 0 &&
		m.AttendanceSessionStudentsMarked >= m.AttendanceSessionStudentsTotal
}
