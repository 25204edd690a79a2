package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Campus-auth-api/internal/application/dto"
	"github.com/jhoicas/Campus-auth-api/internal/domain"
	"github.com/jhoicas/Campus-auth-api/internal/domain/entity"
	"github.com/jhoicas/Campus-auth-api/internal/domain/repository"
	"github.com/jhoicas/Campus-auth-api/pkg/jwt"
	"github.com/jhoicas/Campus-auth-api/pkg/password"
)

// SessionTTL vigencia del token emitido en signin. El token de signup se
// emite sin expiración.
const SessionTTL = 5 * 24 * time.Hour

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro, login y cuenta actual.
type AuthUseCase struct {
	accountRepo repository.AccountRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accountRepo repository.AccountRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{accountRepo: accountRepo, jwtCfg: jwtCfg}
}

// Signup crea una cuenta: hashea el password con bcrypt, persiste y emite un
// token sin expiración. Devuelve ErrEmailAlreadyExists si el email ya existe;
// la cuenta preexistente no se modifica.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.SignupResponse, error) {
	existing, err := uc.accountRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Email:        in.Email,
		Name:         in.Name,
		Role:         in.Role,
		Branch:       in.Branch,
		PasswordHash: hash,
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, uc.jwtCfg.Issuer, 0)
	if err != nil {
		return nil, err
	}
	return &dto.SignupResponse{
		Token:   token,
		Account: *toAccountResponse(account),
	}, nil
}

// Signin verifica email/password y emite un token de sesión de 5 días.
// No muta el store. Devuelve ErrAccountNotFound si el email no existe y
// ErrInvalidCredentials si el password no coincide.
func (uc *AuthUseCase) Signin(in dto.SigninRequest) (*dto.SigninResponse, error) {
	account, err := uc.accountRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !password.Verify(in.Password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, uc.jwtCfg.Issuer, SessionTTL)
	if err != nil {
		return nil, err
	}
	return &dto.SigninResponse{Token: token}, nil
}

// CurrentAccount devuelve la cuenta identificada por el token ya validado
// (el middleware resuelve el ID). Nunca expone el hash.
func (uc *AuthUseCase) CurrentAccount(accountID string) (*dto.AccountResponse, error) {
	account, err := uc.accountRepo.FindByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		Branch:    a.Branch,
		IsAdmin:   a.IsAdmin,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
