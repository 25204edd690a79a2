package entity

import "time"

// Account representa una cuenta registrada en el campus.
// Email es único en todo el sistema y se almacena siempre en minúsculas
// (la capa HTTP normaliza antes de llegar a los use cases; la comparación
// en-store es por lo tanto case-insensitive de facto).
// PasswordHash nunca contiene la contraseña en texto plano y nunca se
// serializa hacia el cliente.
type Account struct {
	ID           string
	Email        string
	Name         string
	Role         string // student, staff, admin — opaco para este servicio
	Branch       string // carrera/departamento, opaco para este servicio
	PasswordHash string
	IsAdmin      bool // siempre false al registrarse; no es asignable vía signup
	OTP          *PendingOTP
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PendingOTP es el código de recuperación en vuelo de una cuenta.
// Presente solo mientras hay un reset pendiente; un nuevo request lo
// sobreescribe (last-write-wins por cuenta) y un reset exitoso lo limpia.
type PendingOTP struct {
	Code     string
	IssuedAt time.Time
}
