// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	constants "academia_backend/internals/constants"
	attRoute "academia_backend/internals/features/academy/attendance/route"
	clsRoute "academia_backend/internals/features/academy/classes/route"
	calRoute "academia_backend/internals/features/academy/schedule/route"
	stuRoute "academia_backend/internals/features/academy/students/route"
	tchRoute "academia_backend/internals/features/academy/teachers/route"
	authMw "academia_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PRIVATE (USER) → cualquier usuario autenticado
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMw.AuthMiddleware())

	// ADMIN → autenticado + rol admin u owner
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(),
		authMw.RequireRoles("administración", constants.AdminAndAbove),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Teachers routes...")
	tchRoute.TeachersUserRoutes(private, db)
	tchRoute.TeachersAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Students routes...")
	stuRoute.StudentsAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Classes routes...")
	clsRoute.ClassesUserRoutes(private, db)
	clsRoute.ClassesAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Calendar routes...")
	calRoute.CalendarUserRoutes(private, db)

	log.Println("[INFO] Mounting Attendance routes...")
	attRoute.AttendanceUserRoutes(private, db)
}
