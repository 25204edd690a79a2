package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Campus-auth-api/internal/application/dto"
	"github.com/jhoicas/Campus-auth-api/internal/domain"
	"github.com/jhoicas/Campus-auth-api/pkg/jwt"
)

// Local key para el AccountID en Fiber.
const LocalAccountID = "account_id"

// AuthMiddleware valida el Bearer Token JWT y deja el AccountID en c.Locals.
// Un token expirado y uno inválido reportan categorías distintas (ambas 401).
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		accountID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			// Traducir a los sentinels de dominio: expirado e inválido son
			// categorías distintas para el cliente.
			code, derr := "INVALID_TOKEN", domain.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				code, derr = "TOKEN_EXPIRED", domain.ErrExpiredToken
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: derr.Error()})
		}
		c.Locals(LocalAccountID, accountID)
		return c.Next()
	}
}

// GetAccountID devuelve el AccountID del contexto (después del middleware de auth).
func GetAccountID(c *fiber.Ctx) string {
	v := c.Locals(LocalAccountID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
