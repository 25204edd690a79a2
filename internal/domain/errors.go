package domain

import "errors"

// Errores de dominio (sin dependencias externas). Cada use case retorna uno de
// estos sentinels; la capa HTTP los traduce a códigos de estado estables.
var (
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")
	ErrNoPendingReset     = errors.New("no hay un reset de contraseña pendiente")
	ErrInvalidOTP         = errors.New("OTP inválido")
	ErrExpiredOTP         = errors.New("OTP expirado")
	ErrMailDispatch       = errors.New("falló el envío del correo")
)
