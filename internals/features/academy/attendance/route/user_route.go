// file: internals/features/academy/attendance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtl "academia_backend/internals/features/academy/attendance/controller"
)

// AttendanceUserRoutes — pase de lista del profesor autenticado.
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := attCtl.New(db, nil)

	g := user.Group("/attendance-sessions")
	g.Post("/", ctl.OpenSession)
	g.Get("/", ctl.GetByClassAndDate)
	g.Patch("/:id/mark", ctl.Mark)
}
