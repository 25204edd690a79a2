package recovery

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/jhoicas/Campus-auth-api/internal/domain"
	"github.com/jhoicas/Campus-auth-api/internal/domain/entity"
	"github.com/jhoicas/Campus-auth-api/internal/domain/repository"
	"github.com/jhoicas/Campus-auth-api/pkg/password"
)

// OTPValidity ventana de vigencia del OTP desde su emisión.
const OTPValidity = 10 * time.Minute

// MailDispatcher puerto de envío de correo. El cuerpo contiene el OTP en
// texto plano; los errores se propagan sin reintento.
type MailDispatcher interface {
	Send(to, subject, body string) error
}

// RecoveryUseCase máquina de estados del reset de contraseña por OTP.
// Estados por cuenta: sin reset pendiente → (request) → OTP pendiente →
// (reset exitoso | expiración | superseded por un nuevo request) → sin reset.
type RecoveryUseCase struct {
	accountRepo repository.AccountRepository
	mailer      MailDispatcher
	now         func() time.Time
}

// NewRecoveryUseCase construye el caso de uso de recuperación. El reloj se
// inyecta para que los tests de expiración sean deterministas; en producción
// se pasa time.Now.
func NewRecoveryUseCase(accountRepo repository.AccountRepository, mailer MailDispatcher, now func() time.Time) *RecoveryUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecoveryUseCase{accountRepo: accountRepo, mailer: mailer, now: now}
}

// RequestReset genera un OTP de 6 dígitos, lo persiste sobre la cuenta
// (sobreescribiendo cualquier OTP anterior, que queda inválido de inmediato)
// y lo envía por correo. Si el envío falla, el OTP queda almacenado igual y
// se retorna ErrMailDispatch: el código varado expira solo o lo reemplaza un
// request posterior (tradeoff aceptado, sin rollback).
func (uc *RecoveryUseCase) RequestReset(email string) error {
	account, err := uc.accountRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	account.OTP = &entity.PendingOTP{Code: code, IssuedAt: uc.now()}
	account.UpdatedAt = uc.now()
	if err := uc.accountRepo.Update(account); err != nil {
		return err
	}

	body := fmt.Sprintf("Tu código OTP es: %s", code)
	if err := uc.mailer.Send(account.Email, "OTP para reset de contraseña", body); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDispatch, err)
	}
	return nil
}

// ResetPassword consume el OTP pendiente y reemplaza la contraseña.
// Ambas verificaciones (código y expiración) se evalúan contra el OTP
// almacenado en la cuenta: un código correcto pero vencido reporta
// ErrExpiredOTP, distinto de un código equivocado.
func (uc *RecoveryUseCase) ResetPassword(email, code, newPassword string) error {
	account, err := uc.accountRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrAccountNotFound
	}
	if account.OTP == nil {
		return domain.ErrNoPendingReset
	}
	if account.OTP.Code != code {
		return domain.ErrInvalidOTP
	}
	if uc.now().Sub(account.OTP.IssuedAt) > OTPValidity {
		return domain.ErrExpiredOTP
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	account.PasswordHash = hash
	account.OTP = nil
	account.UpdatedAt = uc.now()
	return uc.accountRepo.Update(account)
}

// generateOTP devuelve un código uniforme de 6 dígitos (100000–999999)
// usando crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
