package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Campus-auth-api/internal/application/auth"
	"github.com/jhoicas/Campus-auth-api/internal/application/recovery"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	RecoveryUC *recovery.RecoveryUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)

	// Recuperación de contraseña (público)
	recoveryHandler := NewRecoveryHandler(deps.RecoveryUC)
	authGroup.Post("/forgot-password", recoveryHandler.ForgotPassword)
	authGroup.Post("/reset-password", recoveryHandler.ResetPassword)

	// Cuenta actual (requiere Bearer Token)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
}
