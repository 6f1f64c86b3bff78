// file: internals/features/academy/schedule/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calCtl "academia_backend/internals/features/academy/schedule/controller"
	middlewares "academia_backend/internals/middlewares"
)

// CalendarUserRoutes — vista mensual y agenda del día para el profesor
// autenticado. El grid mensual lleva su propio rate limit: es la pantalla que
// la app móvil refresca con más frecuencia.
func CalendarUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := calCtl.New(db)

	g := user.Group("/calendar", middlewares.CalendarRateLimiter())
	g.Get("/:year/:month", ctl.MonthGrid)

	user.Get("/agenda/today", ctl.TodayAgenda)
}
