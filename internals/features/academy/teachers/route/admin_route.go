// file: internals/features/academy/teachers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tchCtl "academia_backend/internals/features/academy/teachers/controller"
)

// TeachersAdminRoutes — altas, bajas y modificaciones de profesores.
func TeachersAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := tchCtl.New(db, nil)

	g := admin.Group("/teachers")
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
