// file: internals/features/academy/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stuCtl "academia_backend/internals/features/academy/students/controller"
)

// StudentsAdminRoutes — CRUD de alumnos (solo administración).
func StudentsAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := stuCtl.New(db, nil)

	g := admin.Group("/students")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
