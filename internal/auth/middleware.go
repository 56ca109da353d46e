package auth

import (
	"fmt"
	"strings"

	"gym-backend/internal/config"
	"gym-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUsernameKey = "username"
	CtxUserRoleKey = "user_role"

	TokenCookieName = "token"
)

// Token önce Authorization header'dan, yoksa cookie'den okunur.
// SPA cookie ile çalışır, API istemcileri Bearer kullanabilir.
func tokenFromRequest(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
		return ""
	}
	return c.Cookies(TokenCookieName)
}

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Oturum bulunamadı")
		}

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("geçersiz imzalama yöntemi")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token çözümlenemedi")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUsernameKey, claims.Username)
		c.Locals(CtxUserRoleKey, claims.Role)

		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxUserRoleKey)
		role, ok := roleVal.(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
	}
}

// CurrentUserID context'ten oturum açan kullanıcının id'sini döndürür.
func CurrentUserID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(CtxUserIDKey).(string)
	if !ok || id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Oturum bilgisi alınamadı")
	}
	return id, nil
}

// CurrentUserRole context'ten oturum açan kullanıcının rolünü döndürür.
func CurrentUserRole(c *fiber.Ctx) (models.UserRole, error) {
	role, ok := c.Locals(CtxUserRoleKey).(models.UserRole)
	if !ok {
		return "", fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
	}
	return role, nil
}
