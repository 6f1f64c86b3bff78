// file: internals/features/academy/teachers/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tchCtl "academia_backend/internals/features/academy/teachers/controller"
)

// TeachersUserRoutes — listado y detalle de profesores.
func TeachersUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := tchCtl.New(db, nil)

	g := user.Group("/teachers")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
