// file: internals/features/academy/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clsCtl "academia_backend/internals/features/academy/classes/controller"
)

// ClassesAdminRoutes — CRUD completo de clases, colaboradores, matrículas y
// horario semanal. Montar bajo el grupo ADMIN:
//
//	admin := app.Group("/api/a", ...)
//	route.ClassesAdminRoutes(admin, db)
func ClassesAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := clsCtl.New(db, nil) // validator nil

	g := admin.Group("/classes")

	// Clases
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)

	// Colaboradores
	g.Post("/:id/collaborators", ctl.AddCollaborator)
	g.Delete("/:id/collaborators/:teacher_id", ctl.RemoveCollaborator)

	// Matrículas
	g.Post("/:id/enrollments", ctl.EnrollStudent)

	// Horario semanal
	g.Post("/:id/schedule-slots", ctl.CreateSlot)
	g.Patch("/schedule-slots/:id", ctl.PatchSlot)
	g.Delete("/schedule-slots/:id", ctl.DeleteSlot)
}
