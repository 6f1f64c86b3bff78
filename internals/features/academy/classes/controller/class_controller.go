// file: internals/features/academy/classes/controller/class_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "academia_backend/internals/features/academy/classes/dto"
	m "academia_backend/internals/features/academy/classes/model"
	helper "academia_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassController {
	if v == nil {
		v = validator.New()
	}
	return &ClassController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// --- PG error mapping (pgx/libpq) ---
func mapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23503":
			return http.StatusBadRequest, "Referencia no encontrada (FK violation)."
		case "23505":
			return http.StatusConflict, "Dato duplicado (unique violation)."
		default:
			return http.StatusInternalServerError, pgxErr.Message
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23503":
			return http.StatusBadRequest, "Referencia no encontrada (FK violation)."
		case "23505":
			return http.StatusConflict, "Dato duplicado (unique violation)."
		default:
			return http.StatusInternalServerError, pqErr.Error()
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

/* =========================
   CRUD
   ========================= */

// POST /api/a/classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req d.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctl.DB.Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Clase creada", d.FromClassModel(row))
}

// GET /api/u/classes?teacher_id=&page=&per_page=
func (ctl *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.ClassModel{})
	if tidStr := strings.TrimSpace(c.Query("teacher_id")); tidStr != "" {
		tid, err := uuid.Parse(tidStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id inválido")
		}
		q = q.Where("class_teacher_id = ?", tid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ClassModel
	if err := q.
		Preload("ClassCollaborators").
		Preload("ClassScheduleSlots").
		Order("class_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromClassModels(rows), &pagination)
}

// GET /api/u/classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var row m.ClassModel
	if err := ctl.DB.
		Preload("ClassCollaborators").
		Preload("ClassScheduleSlots").
		First(&row, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Clase no encontrada")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromClassModel(row))
}

// PATCH /api/a/classes/:id
func (ctl *ClassController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var req d.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row m.ClassModel
	if err := ctl.DB.First(&row, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Clase no encontrada")
		}
		return writePGError(c, err)
	}

	req.Apply(&row)
	if err := ctl.DB.Save(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Clase actualizada", d.FromClassModel(row))
}

// DELETE /api/a/classes/:id (soft)
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de clase inválido")
	}
	res := ctl.DB.Delete(&m.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Clase no encontrada")
	}
	return helper.JsonDeleted(c, "Clase eliminada", fiber.Map{"class_id": id})
}

/* =========================
   Colaboradores & matrícula
   ========================= */

// POST /api/a/classes/:id/collaborators
func (ctl *ClassController) AddCollaborator(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var req d.AddCollaboratorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// evita duplicar el mismo profesor en la misma clase
	var existing m.ClassCollaboratorModel
	err = ctl.DB.
		Where("class_collaborator_class_id = ? AND class_collaborator_teacher_id = ?", classID, req.ClassCollaboratorTeacherID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "El profesor ya colabora en esta clase")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return writePGError(c, err)
	}

	row := req.ToModel(classID)
	if err := ctl.DB.Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	log.Printf("[INFO] colaborador %s añadido a clase %s (rol=%s)", row.ClassCollaboratorTeacherID, classID, row.ClassCollaboratorRole)
	return helper.JsonCreated(c, "Colaborador añadido", row)
}

// DELETE /api/a/classes/:id/collaborators/:teacher_id
func (ctl *ClassController) RemoveCollaborator(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de clase inválido")
	}
	teacherID, err := parseUUIDParam(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de profesor inválido")
	}
	res := ctl.DB.Delete(&m.ClassCollaboratorModel{},
		"class_collaborator_class_id = ? AND class_collaborator_teacher_id = ?", classID, teacherID)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Colaborador no encontrado")
	}
	return helper.JsonDeleted(c, "Colaborador eliminado", fiber.Map{
		"class_id":                      classID,
		"class_collaborator_teacher_id": teacherID,
	})
}

// POST /api/a/classes/:id/enrollments
func (ctl *ClassController) EnrollStudent(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var req d.EnrollStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing m.ClassEnrollmentModel
	err = ctl.DB.
		Where("class_enrollment_class_id = ? AND class_enrollment_student_id = ?", classID, req.ClassEnrollmentStudentID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "El alumno ya está matriculado en esta clase")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return writePGError(c, err)
	}

	row := m.ClassEnrollmentModel{
		ClassEnrollmentClassID:   classID,
		ClassEnrollmentStudentID: req.ClassEnrollmentStudentID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Alumno matriculado", row)
}
