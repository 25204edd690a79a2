package repository

import "github.com/jhoicas/Campus-auth-api/internal/domain/entity"

// AccountRepository define la persistencia de cuentas.
// Los lookups devuelven (nil, nil) cuando no hay coincidencia; error solo
// ante fallos del store. Create retorna domain.ErrEmailAlreadyExists si el
// email ya existe (constraint único en el adaptador).
type AccountRepository interface {
	Create(account *entity.Account) error
	FindByEmail(email string) (*entity.Account, error)
	FindByID(id string) (*entity.Account, error)
	// Update reemplaza el registro completo por ID (read-modify-write por
	// cuenta; la última escritura de OTP gana, comportamiento documentado
	// de requestReset).
	Update(account *entity.Account) error
}
