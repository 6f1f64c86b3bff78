// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Claves en c.Locals, rellenadas por el middleware de auth.
const (
	LocUserID    = "user_id"
	LocTeacherID = "teacher_id"
	LocRole      = "role"
	LocRawToken  = "raw_token"
)

// GetUserIDFromToken lee el user_id que dejó el middleware en Locals.
// 401 si no hay sesión, 400 si el formato es inválido.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocUserID, "Sesión no iniciada", "ID de usuario inválido en el token")
}

// GetTeacherIDFromToken lee el teacher_id activo del token. Solo los tokens
// de profesor lo traen; 401 para cuentas sin perfil de profesor.
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localsUUID(c, LocTeacherID, "El token no tiene perfil de profesor", "ID de profesor inválido en el token")
}

func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRole).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func localsUUID(c *fiber.Ctx, key, missingMsg, invalidMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
	}
	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, missingMsg)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, invalidMsg)
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, invalidMsg)
	}
}

// GetRawAccessToken devuelve el access token desde:
// 1) cookie "access_token"
// 2) Locals(LocRawToken) que dejó el middleware
// 3) Authorization: "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}
