package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"utsav_backend/internals/configs"
	helper "utsav_backend/internals/helpers"
)

// AdminJWT guards the Bearer-token variants of the admin read API.
func AdminJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := configs.AdminJWTSecret
		if secret == "" {
			return helper.Error(c, fiber.StatusInternalServerError, "Admin sessions not configured")
		}

		auth := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(auth, "Bearer ") {
			return helper.Error(c, fiber.StatusUnauthorized, "Missing token")
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["role"] != "admin" {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid token")
		}
		return c.Next()
	}
}
