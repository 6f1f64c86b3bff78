// file: internals/features/academy/schedule/controller/calendar_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attModel "academia_backend/internals/features/academy/attendance/model"
	classModel "academia_backend/internals/features/academy/classes/model"
	d "academia_backend/internals/features/academy/schedule/dto"
	service "academia_backend/internals/features/academy/schedule/service"
	helper "academia_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type CalendarController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *CalendarController {
	return &CalendarController{DB: db}
}

/* =========================
   Roster loading (modelo → tipos puros del matcher)
   ========================= */

// loadRoster trae las clases activas donde el profesor es titular o
// colaborador, con horario y colaboradores precargados, y las convierte a los
// tipos en memoria del matcher. Todo el I/O pasa aquí; el matcher y la
// proyección del calendario reciben los datos ya resueltos.
func (ctl *CalendarController) loadRoster(teacherID uuid.UUID) ([]service.Class, error) {
	var rows []classModel.ClassModel
	err := ctl.DB.
		Preload("ClassCollaborators").
		Preload("ClassScheduleSlots").
		Where("class_is_active = ?", true).
		Where(
			"class_teacher_id = ? OR class_id IN (?)",
			teacherID,
			ctl.DB.Model(&classModel.ClassCollaboratorModel{}).
				Select("class_collaborator_class_id").
				Where("class_collaborator_teacher_id = ?", teacherID),
		).
		Order("class_created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toServiceClasses(rows), nil
}

func toServiceClasses(rows []classModel.ClassModel) []service.Class {
	out := make([]service.Class, 0, len(rows))
	for _, row := range rows {
		cl := service.Class{
			ID:        row.ClassID,
			Name:      row.ClassName,
			TeacherID: row.ClassTeacherID,
		}
		for _, co := range row.ClassCollaborators {
			cl.Collaborators = append(cl.Collaborators, service.Collaborator{
				TeacherID: co.ClassCollaboratorTeacherID,
				Role:      co.ClassCollaboratorRole,
			})
		}
		for _, slot := range row.ClassScheduleSlots {
			cl.Schedule = append(cl.Schedule, service.ScheduleSlot{
				Day:   service.StringDayToken(slot.ClassScheduleSlotDay),
				Start: slot.ClassScheduleSlotStartTime.Format("15:04"),
				End:   slot.ClassScheduleSlotEndTime.Format("15:04"),
			})
		}
		out = append(out, cl)
	}
	return out
}

// loadAttendanceLookup precarga las sesiones de asistencia del rango visible
// y devuelve el lookup que consume BuildMonthGrid. El grid nunca consulta la
// DB por su cuenta.
func (ctl *CalendarController) loadAttendanceLookup(teacherID uuid.UUID, from, to time.Time) (service.AttendanceLookup, error) {
	var sessions []attModel.AttendanceSessionModel
	err := ctl.DB.
		Where("attendance_session_teacher_id = ?", teacherID).
		Where("attendance_session_date BETWEEN ? AND ?", from, to).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]service.AttendanceDegree, len(sessions))
	for _, s := range sessions {
		key := s.AttendanceSessionDate.Format("2006-01-02")
		if s.IsComplete() {
			byDay[key] = service.AttendanceComplete
		} else if _, seen := byDay[key]; !seen {
			byDay[key] = service.AttendancePartial
		}
	}
	return func(date time.Time) (service.AttendanceDegree, bool) {
		deg, ok := byDay[date.Format("2006-01-02")]
		return deg, ok
	}, nil
}

/* =========================
   Handlers
   ========================= */

// GET /api/u/calendar/:year/:month?selected=2006-01-02
func (ctl *CalendarController) MonthGrid(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	year, errY := strconv.Atoi(strings.TrimSpace(c.Params("year")))
	month, errM := strconv.Atoi(strings.TrimSpace(c.Params("month")))
	if errY != nil || errM != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Año o mes inválido")
	}

	var selected *time.Time
	if sel := strings.TrimSpace(c.Query("selected")); sel != "" {
		t, err := time.Parse("2006-01-02", sel)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Fecha seleccionada inválida (se espera YYYY-MM-DD)")
		}
		selected = &t
	}

	classes, err := ctl.loadRoster(teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar el roster")
	}

	// margen de una semana a cada lado: el grid incluye días de meses vecinos
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	lookup, err := ctl.loadAttendanceLookup(teacherID, monthStart.AddDate(0, 0, -7), monthStart.AddDate(0, 1, 7))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar la asistencia")
	}

	grid, warns, err := service.BuildMonthGrid(service.MonthGridInput{
		Year:             year,
		Month:            time.Month(month),
		Selected:         selected,
		Today:            time.Now(),
		Classes:          classes,
		TeacherID:        teacherID,
		AttendanceLookup: lookup,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Año o mes inválido")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo construir el calendario")
	}

	for _, w := range warns {
		log.Printf("[WARN] token de día no reconocido en horario persistido: %q (teacher=%s)", w.Token, teacherID)
	}

	return helper.JsonOK(c, "", d.MonthGridResponse{
		Year:             year,
		Month:            month,
		Days:             d.FromCalendarDays(grid),
		ScheduleWarnings: d.WarningTokens(warns),
	})
}

// GET /api/u/agenda/today
func (ctl *CalendarController) TodayAgenda(c *fiber.Ctx) error {
	teacherID, err := helper.GetTeacherIDFromToken(c)
	if err != nil {
		return err
	}

	today := time.Now()
	classes, err := ctl.loadRoster(teacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo cargar el roster")
	}

	occurring, warns := service.ClassesOccurringOn(classes, today, &service.RosterFilter{TeacherID: teacherID})
	for _, w := range warns {
		log.Printf("[WARN] token de día no reconocido en horario persistido: %q (teacher=%s)", w.Token, teacherID)
	}

	resp := d.NewAgendaResponse(today)
	resp.ScheduleWarnings = d.WarningTokens(warns)
	targetDay := service.CanonicalWeekdayOf(today)
	for _, cl := range occurring {
		entry := d.AgendaClassResponse{
			ClassID:   cl.ID,
			ClassName: cl.Name,
			IsPrimary: cl.TeacherID == teacherID,
		}
		for _, slot := range cl.Schedule {
			day, err := service.NormalizeDayToken(slot.Day)
			if err != nil || day != targetDay {
				continue
			}
			entry.Slots = append(entry.Slots, d.AgendaSlotResponse{
				Day:   slot.Day.String(),
				Start: slot.Start,
				End:   slot.End,
			})
		}
		resp.Classes = append(resp.Classes, entry)
	}
	return helper.JsonOK(c, "", resp)
}
