// file: internals/features/academy/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "academia_backend/internals/features/academy/attendance/model"
)

// Estados de marcado por alumno dentro del snapshot
const (
	MarkPresente    = "presente"
	MarkAusente     = "ausente"
	MarkTarde       = "tarde"
	MarkJustificado = "justificado"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

type OpenAttendanceSessionRequest struct {
	AttendanceSessionClassID uuid.UUID `json:"attendance_session_class_id" validate:"required"`
	AttendanceSessionDate    string    `json:"attendance_session_date"     validate:"required"` // "2006-01-02"
}

func (r OpenAttendanceSessionRequest) ParseDate() (time.Time, bool) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(r.AttendanceSessionDate))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

type MarkAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status"     validate:"required,oneof=presente ausente tarde justificado"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type AttendanceSessionResponse struct {
	AttendanceSessionID        uuid.UUID `json:"attendance_session_id"`
	AttendanceSessionClassID   uuid.UUID `json:"attendance_session_class_id"`
	AttendanceSessionTeacherID uuid.UUID `json:"attendance_session_teacher_id"`
	AttendanceSessionDate      string    `json:"attendance_session_date"`

	AttendanceSessionStudentsTotal  int  `json:"attendance_session_students_total"`
	AttendanceSessionStudentsMarked int  `json:"attendance_session_students_marked"`
	AttendanceSessionIsComplete     bool `json:"attendance_session_is_complete"`

	AttendanceSessionRosterSnapshot map[string]interface{} `json:"attendance_session_roster_snapshot"`
}

func FromAttendanceSessionModel(m model.AttendanceSessionModel) AttendanceSessionResponse {
	return AttendanceSessionResponse{
		AttendanceSessionID:             m.AttendanceSessionID,
		AttendanceSessionClassID:        m.AttendanceSessionClassID,
		AttendanceSessionTeacherID:      m.AttendanceSessionTeacherID,
		AttendanceSessionDate:           m.AttendanceSessionDate.Format("2006-01-02"),
		AttendanceSessionStudentsTotal:  m.AttendanceSessionStudentsTotal,
		AttendanceSessionStudentsMarked: m.AttendanceSessionStudentsMarked,
		AttendanceSessionIsComplete:     m.IsComplete(),
		AttendanceSessionRosterSnapshot: m.AttendanceSessionRosterSnapshot,
	}
}
