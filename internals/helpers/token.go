package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	authMw "hostelku_backend/internals/middlewares/auth"
)

// Ambil user_id dari c.Locals("user_id")
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidFromLocals(c, authMw.LocUserID, "User belum login", "User ID pada token tidak valid")
}

// Ambil tenant_id dari token penghuni.
// Admin tidak punya tenant_id → 403 supaya jelas bedanya dengan belum login.
func GetTenantIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(authMw.LocTenantID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akun ini bukan akun penghuni")
	}
	return uuidFromLocals(c, authMw.LocTenantID, "Akun ini bukan akun penghuni", "Tenant ID pada token tidak valid")
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(authMw.LocRole).(string)
	return role
}

func uuidFromLocals(c *fiber.Ctx, key, emptyMsg, invalidMsg string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, emptyMsg)
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
