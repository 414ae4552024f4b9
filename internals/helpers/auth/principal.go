// file: internals/helpers/auth/principal.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campusiq_backend/internals/tenancy"
)

// Kunci Locals yang diisi AuthMiddleware — HARUS seragam di semua tempat.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocUserRole = "user_role"
	LocSchoolID = "school_id"
	LocRawToken = "raw_token"
)

// PrincipalFromLocals merakit Principal dari klaim yang sudah diverifikasi
// AuthMiddleware. Tanpa locals → principal tidak terotentikasi.
func PrincipalFromLocals(c *fiber.Ctx) tenancy.Principal {
	var p tenancy.Principal

	idStr, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(idStr) == "" {
		return p
	}
	uid, err := uuid.Parse(idStr)
	if err != nil {
		return p
	}

	p.UserID = uid
	p.Authenticated = true
	if v, ok := c.Locals(LocUserRole).(string); ok {
		p.Role = v
	}
	if v, ok := c.Locals(LocUserName).(string); ok {
		p.UserName = v
	}
	if v, ok := c.Locals(LocSchoolID).(string); ok && strings.TrimSpace(v) != "" {
		if sid, err := uuid.Parse(v); err == nil {
			p.SchoolID = sid
		}
	}
	return p
}

// GetUserID shortcut untuk controller.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	idStr, ok := c.Locals(LocUserID).(string)
	if !ok || idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user tidak dikenali")
	}
	uid, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id invalid")
	}
	return uid, nil
}

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Locals("raw_token") yang diset middleware
// 3) Authorization header "Bearer <token>"
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
