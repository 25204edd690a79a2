package recovery_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Campus-auth-api/internal/application/recovery"
	"github.com/jhoicas/Campus-auth-api/internal/domain"
	"github.com/jhoicas/Campus-auth-api/internal/domain/entity"
	"github.com/jhoicas/Campus-auth-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: store por valor, mailer que graba (o falla) y reloj controlable
// ──────────────────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	byID map[string]entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byID: make(map[string]entity.Account)}
}

func (f *fakeAccountRepo) Create(account *entity.Account) error {
	for _, a := range f.byID {
		if a.Email == account.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.byID[account.ID] = *account
	return nil
}

func (f *fakeAccountRepo) FindByEmail(email string) (*entity.Account, error) {
	for _, a := range f.byID {
		if a.Email == email {
			copia := a
			return &copia, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByID(id string) (*entity.Account, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copia := a
	return &copia, nil
}

func (f *fakeAccountRepo) Update(account *entity.Account) error {
	f.byID[account.ID] = *account
	return nil
}

type fakeMailer struct {
	sent []sentMail
	err  error // si no es nil, Send falla
}

type sentMail struct {
	to, subject, body string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// fakeClock reloj controlable para los tests de expiración.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

// fixture crea el use case con una cuenta ya registrada.
func fixture(t *testing.T) (*recovery.RecoveryUseCase, *fakeAccountRepo, *fakeMailer, *fakeClock) {
	t.Helper()
	repo := newFakeAccountRepo()
	hash, err := password.Hash("secret1")
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.Account{
		ID:           "acc-1",
		Email:        "a@x.com",
		Name:         "A",
		Role:         "student",
		Branch:       "CS",
		PasswordHash: hash,
	}))
	mailer := &fakeMailer{}
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	uc := recovery.NewRecoveryUseCase(repo, mailer, clock.now)
	return uc, repo, mailer, clock
}

// storedOTP lee el OTP pendiente directamente del store.
func storedOTP(t *testing.T, repo *fakeAccountRepo) *entity.PendingOTP {
	t.Helper()
	a, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	require.NotNil(t, a)
	return a.OTP
}

var sixDigits = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ──────────────────────────────────────────────────────────────────────────────
// RequestReset
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestReset_GeneraYEnviaOTP(t *testing.T) {
	uc, repo, mailer, clock := fixture(t)

	require.NoError(t, uc.RequestReset("a@x.com"))

	otp := storedOTP(t, repo)
	require.NotNil(t, otp, "el OTP debe quedar persistido en la cuenta")
	assert.Regexp(t, sixDigits, otp.Code, "código de 6 dígitos en 100000–999999")
	assert.Equal(t, clock.now(), otp.IssuedAt)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "a@x.com", mailer.sent[0].to)
	assert.Contains(t, mailer.sent[0].body, otp.Code, "el cuerpo del correo lleva el código")
}

func TestRequestReset_EmailInexistente(t *testing.T) {
	uc, _, mailer, _ := fixture(t)

	err := uc.RequestReset("nadie@x.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Empty(t, mailer.sent, "no debe enviarse correo alguno")
}

// Un segundo request reemplaza el OTP anterior: el primer código queda inválido.
func TestRequestReset_SupersedeOTPAnterior(t *testing.T) {
	uc, repo, _, _ := fixture(t)

	require.NoError(t, uc.RequestReset("a@x.com"))
	primero := storedOTP(t, repo).Code

	require.NoError(t, uc.RequestReset("a@x.com"))
	segundo := storedOTP(t, repo).Code

	if primero != segundo { // colisión aleatoria posible pero despreciable
		err := uc.ResetPassword("a@x.com", primero, "nuevopass")
		assert.ErrorIs(t, err, domain.ErrInvalidOTP, "el código reemplazado no debe servir")
	}
	require.NoError(t, uc.ResetPassword("a@x.com", segundo, "nuevopass"))
}

// Si el envío falla, el OTP queda almacenado igual (sin rollback) y el caller
// recibe ErrMailDispatch; un request posterior lo reemplaza.
func TestRequestReset_FalloDeEnvioDejaOTPAlmacenado(t *testing.T) {
	uc, repo, mailer, _ := fixture(t)
	mailer.err = errors.New("smtp: connection refused")

	err := uc.RequestReset("a@x.com")
	assert.ErrorIs(t, err, domain.ErrMailDispatch)
	assert.NotNil(t, storedOTP(t, repo), "el OTP varado permanece hasta expirar o ser reemplazado")
}

// ──────────────────────────────────────────────────────────────────────────────
// ResetPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_FlujoCompleto(t *testing.T) {
	uc, repo, _, clock := fixture(t)

	require.NoError(t, uc.RequestReset("a@x.com"))
	code := storedOTP(t, repo).Code

	clock.advance(9 * time.Minute) // dentro de la ventana de 10 minutos
	require.NoError(t, uc.ResetPassword("a@x.com", code, "nuevopass"))

	a, err := repo.FindByEmail("a@x.com")
	require.NoError(t, err)
	assert.Nil(t, a.OTP, "el OTP pendiente debe limpiarse tras el reset")
	assert.True(t, password.Verify("nuevopass", a.PasswordHash))
	assert.False(t, password.Verify("secret1", a.PasswordHash), "la contraseña vieja deja de servir")
}

func TestResetPassword_OTPExpirado(t *testing.T) {
	uc, repo, _, clock := fixture(t)

	require.NoError(t, uc.RequestReset("a@x.com"))
	code := storedOTP(t, repo).Code

	clock.advance(11 * time.Minute)
	err := uc.ResetPassword("a@x.com", code, "nuevopass")
	assert.ErrorIs(t, err, domain.ErrExpiredOTP,
		"código correcto pero vencido reporta expiración, no invalidez")

	a, _ := repo.FindByEmail("a@x.com")
	assert.True(t, password.Verify("secret1", a.PasswordHash), "la contraseña no debe cambiar")
}

func TestResetPassword_CodigoIncorrecto(t *testing.T) {
	uc, repo, _, _ := fixture(t)

	require.NoError(t, uc.RequestReset("a@x.com"))
	code := storedOTP(t, repo).Code
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	err := uc.ResetPassword("a@x.com", wrong, "nuevopass")
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
	assert.NotNil(t, storedOTP(t, repo), "un intento fallido no consume el OTP")
}

func TestResetPassword_SinResetPendiente(t *testing.T) {
	uc, _, _, _ := fixture(t)

	err := uc.ResetPassword("a@x.com", "123456", "nuevopass")
	assert.ErrorIs(t, err, domain.ErrNoPendingReset)
}

// El OTP es de un solo uso: tras un reset exitoso el mismo código ya no existe.
func TestResetPassword_CodigoYaConsumido(t *testing.T) {
	uc, repo, _, _ := fixture(t)

	require.NoError(t, uc.RequestReset("a@x.com"))
	code := storedOTP(t, repo).Code
	require.NoError(t, uc.ResetPassword("a@x.com", code, "nuevopass"))

	err := uc.ResetPassword("a@x.com", code, "otropass")
	assert.ErrorIs(t, err, domain.ErrNoPendingReset)
}

func TestResetPassword_EmailInexistente(t *testing.T) {
	uc, _, _, _ := fixture(t)

	err := uc.ResetPassword("nadie@x.com", "123456", "nuevopass")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
