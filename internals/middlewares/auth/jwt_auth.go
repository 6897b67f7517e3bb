package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"hostelku_backend/internals/constants"
)

// Keys yang dihydrate ke c.Locals oleh AuthJWT
const (
	LocUserID   = "user_id"
	LocRole     = "role"
	LocTenantID = "tenant_id"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(LocUserID, strClaim(claims, "user_id"))
		}

		if role := strClaim(claims, "role"); role != "" {
			c.Locals(LocRole, role)
		}

		// tenant_id hanya ada di token penghuni
		if tid := strClaim(claims, "tenant_id"); tid != "" {
			c.Locals(LocTenantID, tid)
		}

		return c.Next()
	}
}

// IsAdmin menolak request yang bukan dari admin
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("ini"))
		}
		return c.Next()
	}
}

// IsTenant menolak request yang tidak punya tenant_id di token
func IsTenant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if role != constants.RoleTenant {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTenant("ini"))
		}
		if tid, _ := c.Locals(LocTenantID).(string); strings.TrimSpace(tid) == "" {
			return fiber.NewError(fiber.StatusForbidden, "Akun belum terhubung ke data penghuni")
		}
		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
