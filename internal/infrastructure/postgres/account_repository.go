package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Campus-auth-api/internal/domain"
	"github.com/jhoicas/Campus-auth-api/internal/domain/entity"
	"github.com/jhoicas/Campus-auth-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL.
// El OTP pendiente vive en dos columnas nullable (otp_code, otp_issued_at):
// ambas NULL significa "sin reset pendiente".
type AccountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepository construye el adaptador de persistencia para cuentas.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, email, name, role, branch, password_hash, is_admin, otp_code, otp_issued_at, created_at, updated_at`

// Create persiste una cuenta nueva. El constraint único de email se traduce
// a domain.ErrEmailAlreadyExists.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (id, email, name, role, branch, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		account.ID, account.Email, account.Name, account.Role, account.Branch,
		account.PasswordHash, account.IsAdmin, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByEmail obtiene una cuenta por email; (nil, nil) si no existe.
func (r *AccountRepo) FindByEmail(email string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, email), "by email")
}

// FindByID obtiene una cuenta por ID; (nil, nil) si no existe.
func (r *AccountRepo) FindByID(id string) (*entity.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "by id")
}

// Update reemplaza el registro por ID, incluidas las columnas de OTP
// (NULL cuando el reset pendiente se limpió). Última escritura gana.
func (r *AccountRepo) Update(account *entity.Account) error {
	var otpCode *string
	var otpIssuedAt *time.Time
	if account.OTP != nil {
		otpCode = &account.OTP.Code
		otpIssuedAt = &account.OTP.IssuedAt
	}
	query := `
		UPDATE accounts
		SET email = $2, name = $3, role = $4, branch = $5, password_hash = $6,
		    is_admin = $7, otp_code = $8, otp_issued_at = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		account.ID, account.Email, account.Name, account.Role, account.Branch,
		account.PasswordHash, account.IsAdmin, otpCode, otpIssuedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

func (r *AccountRepo) scanOne(row pgx.Row, ctxLabel string) (*entity.Account, error) {
	var a entity.Account
	var otpCode *string
	var otpIssuedAt *time.Time
	err := row.Scan(
		&a.ID, &a.Email, &a.Name, &a.Role, &a.Branch, &a.PasswordHash, &a.IsAdmin,
		&otpCode, &otpIssuedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account %s: %w", ctxLabel, err)
	}
	if otpCode != nil && otpIssuedAt != nil {
		a.OTP = &entity.PendingOTP{Code: *otpCode, IssuedAt: *otpIssuedAt}
	}
	return &a, nil
}
