package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Campus-auth-api/internal/application/dto"
	"github.com/jhoicas/Campus-auth-api/internal/application/recovery"
	"github.com/jhoicas/Campus-auth-api/internal/domain"
)

// RecoveryHandler maneja el flujo de OTP para reset de contraseña.
type RecoveryHandler struct {
	uc *recovery.RecoveryUseCase
}

// NewRecoveryHandler construye el handler de recuperación.
func NewRecoveryHandler(uc *recovery.RecoveryUseCase) *RecoveryHandler {
	return &RecoveryHandler{uc: uc}
}

// ForgotPassword godoc
// @Summary      Solicitar OTP de reset
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func (h *RecoveryHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Email = normalizeEmail(in.Email)
	if !validEmail(in.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email inválido"})
	}
	if err := h.uc.RequestReset(in.Email); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: "cuenta no encontrada"})
		}
		if errors.Is(err, domain.ErrMailDispatch) {
			// El OTP quedó almacenado; el usuario puede reintentar el request
			// y el nuevo código reemplaza al varado.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MAIL_DISPATCH", Message: "falló el envío del correo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.MessageResponse{Message: "OTP enviado a tu correo"})
}

// ResetPassword godoc
// @Summary      Resetear contraseña con OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "email, otp, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *RecoveryHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.Email = normalizeEmail(in.Email)
	if in.Email == "" || in.OTP == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y otp son requeridos"})
	}
	if len(in.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "new_password debe tener al menos 6 caracteres"})
	}
	if err := h.uc.ResetPassword(in.Email, in.OTP, in.NewPassword); err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ACCOUNT_NOT_FOUND", Message: "cuenta no encontrada"})
		case errors.Is(err, domain.ErrNoPendingReset):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_PENDING_RESET", Message: "no hay un reset pendiente"})
		case errors.Is(err, domain.ErrInvalidOTP):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_OTP", Message: "OTP inválido"})
		case errors.Is(err, domain.ErrExpiredOTP):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OTP_EXPIRED", Message: "el OTP expiró"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}
