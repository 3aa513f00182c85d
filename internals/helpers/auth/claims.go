// file: internals/helpers/auth/claims.go
package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys Locals yang dihydrate oleh middleware AuthJWT.
const (
	LocUserID    = "user_id"
	LocBranchID  = "branch_id"
	LocTeacherID = "teacher_id"
	LocStudentID = "student_id"
	LocRoles     = "roles"
)

func uuidLocal(c *fiber.Ctx, key string) (uuid.UUID, error) {
	loc := c.Locals(key)
	if loc == nil {
		return uuid.Nil, fmt.Errorf("%s tidak ada di token", key)
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", loc))
	if s == "" {
		return uuid.Nil, fmt.Errorf("%s tidak ada di token", key)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s di token bukan UUID valid", key)
	}
	return id, nil
}

// GetBranchIDFromToken mengambil scope cabang aktif dari Locals.
func GetBranchIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocBranchID)
}

// GetTeacherIDFromToken mengambil teacher_id dari Locals (untuk view guru).
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocTeacherID)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return uuidLocal(c, LocUserID)
}

// HasRole cek role dari claims (roles bisa []string atau []any hasil decode JSON).
func HasRole(c *fiber.Ctx, role string) bool {
	loc := c.Locals(LocRoles)
	switch v := loc.(type) {
	case []string:
		for _, r := range v {
			if strings.EqualFold(r, role) {
				return true
			}
		}
	case []any:
		for _, r := range v {
			if s, ok := r.(string); ok && strings.EqualFold(s, role) {
				return true
			}
		}
	case string:
		return strings.EqualFold(v, role)
	}
	return false
}

func IsAdmin(c *fiber.Ctx) bool   { return HasRole(c, "admin") || HasRole(c, "owner") }
func IsTeacher(c *fiber.Ctx) bool { return HasRole(c, "teacher") }
