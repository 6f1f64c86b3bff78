// file: internals/features/academy/classes/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clsCtl "academia_backend/internals/features/academy/classes/controller"
)

// ClassesUserRoutes — lectura de clases para profesores autenticados.
func ClassesUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := clsCtl.New(db, nil)

	g := user.Group("/classes")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}
