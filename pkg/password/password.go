package password

import "golang.org/x/crypto/bcrypt"

// Cost fijo del hash bcrypt (equivalente a genSalt(12)).
const Cost = 12

// Hash aplica bcrypt con salt aleatorio. Dos llamadas con el mismo input
// producen hashes distintos; ambos verifican contra el input original.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara la contraseña en texto plano contra el hash almacenado.
// Retorna false ante cualquier mismatch; no expone el motivo.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
