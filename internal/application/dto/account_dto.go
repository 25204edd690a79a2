package dto

import "time"

// SignupRequest entrada para registro (password en texto, se hashea en el use case).
// IsAdmin no es parte del input: toda cuenta nueva nace sin privilegios.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
	Branch   string `json:"branch" validate:"required"`
}

// SigninRequest entrada para login.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse salida de una cuenta (sin hash ni OTP).
type AccountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Branch    string    `json:"branch"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SignupResponse salida del registro: token sin expiración + cuenta creada.
type SignupResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// SigninResponse salida del login: token con expiración de sesión.
type SigninResponse struct {
	Token string `json:"token"`
}

// ForgotPasswordRequest entrada para solicitar un OTP de reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest entrada para consumir el OTP y reemplazar la contraseña.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}
