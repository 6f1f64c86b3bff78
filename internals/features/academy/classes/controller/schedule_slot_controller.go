// file: internals/features/academy/classes/controller/schedule_slot_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	d "academia_backend/internals/features/academy/classes/dto"
	m "academia_backend/internals/features/academy/classes/model"
	helper "academia_backend/internals/helpers"
)

/* =========================
   Horario semanal (slots)
   ========================= */

// POST /api/a/classes/:id/schedule-slots
func (ctl *ClassController) CreateSlot(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de clase inválido")
	}

	var req d.CreateScheduleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// la clase tiene que existir
	var cls m.ClassModel
	if err := ctl.DB.Select("class_id").First(&cls, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Clase no encontrada")
		}
		return writePGError(c, err)
	}

	row, err := req.ToModel(classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Horario añadido", d.FromScheduleSlotModel(row))
}

// PATCH /api/a/classes/schedule-slots/:id
func (ctl *ClassController) PatchSlot(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de horario inválido")
	}

	var req d.PatchScheduleSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row m.ClassScheduleSlotModel
	if err := ctl.DB.First(&row, "class_schedule_slot_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
		}
		return writePGError(c, err)
	}

	if err := req.Apply(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.Save(&row).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Horario actualizado", d.FromScheduleSlotModel(row))
}

// DELETE /api/a/classes/schedule-slots/:id
func (ctl *ClassController) DeleteSlot(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de horario inválido")
	}
	res := ctl.DB.Delete(&m.ClassScheduleSlotModel{}, "class_schedule_slot_id = ?", id)
	if res.Error != nil {
		return writePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Horario no encontrado")
	}
	return helper.JsonDeleted(c, "Horario eliminado", fiber.Map{"class_schedule_slot_id": id})
}
