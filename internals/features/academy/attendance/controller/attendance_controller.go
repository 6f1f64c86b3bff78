// file: internals/features/academy/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	d "academia_backend/internals/features/academy/attendance/dto"
	m "academia_backend/internals/features/academy/attendance/model"
	classModel "academia_backend/internals/features/academy/classes/model"
	schedsvc "academia_backend/internals/features/academy/schedule/service"
	helper "academia_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	if v == nil {
		v = validator.New()
	}
	return &AttendanceController{DB: db, Validate: v}
}

/* =========================
   Handlers
   ========================= */

// POST /api/u/attendance-sessions
//
// Abre el pase de lista de una clase en una fecha. Se rechaza si la clase no
// ocurre ese día según su horario: pasar lista un día sin clase era
// exactamente el síntoma del desfase de días que el matcher corrige.
func (ctl *AttendanceController) OpenSession(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	var req d.OpenAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, ok := req.ParseDate()
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha inválida (se espera YYYY-MM-DD)")
	}

	var cls classModel.ClassModel
	if err := ctl.DB.
		Preload("ClassCollaborators").
		Preload("ClassScheduleSlots").
		First(&cls, "class_id = ?", req.AttendanceSessionClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Clase no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !teacherOwnsClass(cls, teacherID) {
		return helper.JsonError(c, fiber.StatusForbidden, "No eres profesor de esta clase")
	}

	schedule := toServiceSchedule(cls.ClassScheduleSlots)
	occurs, warns := schedsvc.OccursOn(schedule, date)
	for _, w := range warns {
		log.Printf("[WARN] token de día no reconocido en horario persistido: %q (class=%s)", w.Token, cls.ClassID)
	}
	if !occurs {
		return helper.JsonError(c, fiber.StatusConflict, "La clase no tiene horario ese día")
	}

	// snapshot del roster matriculado: todos arrancan en "pendiente"
	var enrollments []classModel.ClassEnrollmentModel
	if err := ctl.DB.
		Where("class_enrollment_class_id = ?", cls.ClassID).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	snapshot := datatypes.JSONMap{}
	for _, e := range enrollments {
		snapshot[e.ClassEnrollmentStudentID.String()] = "pendiente"
	}

	// una sesión por clase+fecha
	var existing m.AttendanceSessionModel
	err = ctl.DB.
		Where("attendance_session_class_id = ? AND attendance_session_date = ?", cls.ClassID, date).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Ya existe un pase de lista para esa fecha")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	row := m.AttendanceSessionModel{
		AttendanceSessionClassID:        cls.ClassID,
		AttendanceSessionTeacherID:      teacherID,
		AttendanceSessionDate:           date,
		AttendanceSessionStudentsTotal:  len(enrollments),
		AttendanceSessionRosterSnapshot: snapshot,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Pase de lista abierto", d.FromAttendanceSessionModel(row))
}

// PATCH /api/u/attendance-sessions/:id/mark
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	id, err := uuid.Parse(idStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de sesión inválido")
	}

	var req d.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row m.AttendanceSessionModel
	if err := ctl.DB.First(&row, "attendance_session_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesión no encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if row.AttendanceSessionTeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusForbidden, "La sesión pertenece a otro profesor")
	}

	key := req.StudentID.String()
	if _, ok := row.AttendanceSessionRosterSnapshot[key]; !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "El alumno no está en el roster de la sesión")
	}
	row.AttendanceSessionRosterSnapshot[key] = req.Status

	marked := 0
	for _, v := range row.AttendanceSessionRosterSnapshot {
		if s, ok := v.(string); ok && s != "pendiente" {
			marked++
		}
	}
	row.AttendanceSessionStudentsMarked = marked

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Asistencia registrada", d.FromAttendanceSessionModel(row))
}

// GET /api/u/attendance-sessions?class_id=&date=YYYY-MM-DD
func (ctl *AttendanceController) GetByClassAndDate(c *fiber.Ctx) error {
	classIDStr := strings.TrimSpace(c.Query("class_id"))
	dateStr := strings.TrimSpace(c.Query("date"))
	classID, err := uuid.Parse(classIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id inválido")
	}
	date, ok := d.OpenAttendanceSessionRequest{AttendanceSessionDate: dateStr}.ParseDate()
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fecha inválida (se espera YYYY-MM-DD)")
	}

	var row m.AttendanceSessionModel
	if err := ctl.DB.
		Where("attendance_session_class_id = ? AND attendance_session_date = ?", classID, date).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sin pase de lista para esa fecha")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", d.FromAttendanceSessionModel(row))
}

/* =========================
   Helpers
   ========================= */

func teacherOwnsClass(cls classModel.ClassModel, teacherID uuid.UUID) bool {
	if cls.ClassTeacherID == teacherID {
		return true
	}
	for _, co := range cls.ClassCollaborators {
		if co.ClassCollaboratorTeacherID == teacherID {
			return true
		}
	}
	return false
}

func toServiceSchedule(slots []classModel.ClassScheduleSlotModel) schedsvc.Schedule {
	out := make(schedsvc.Schedule, 0, len(slots))
	for _, s := range slots {
		out = append(out, schedsvc.ScheduleSlot{
			Day:   schedsvc.StringDayToken(s.ClassScheduleSlotDay),
			Start: s.ClassScheduleSlotStartTime.Format("15:04"),
			End:   s.ClassScheduleSlotEndTime.Format("15:04"),
		})
	}
	return out
}
