package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de validación de token. Parse distingue expiración de cualquier
// otro defecto (firma, formato, claims) para que la capa HTTP pueda
// responder categorías estables.
var (
	ErrTokenInvalid = errors.New("jwt: token inválido")
	ErrTokenExpired = errors.New("jwt: token expirado")
)

// Claims incluye los claims estándar JWT más el ID de la cuenta.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
}

// Generate genera un token HS256 firmado que identifica a la cuenta.
// Con ttl == 0 el token se emite sin claim de expiración (variante de
// signup); cualquier otro ttl fija ExpiresAt relativo a ahora (signin usa
// 5 días).
func Generate(secret, accountID, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  accountID,
			IssuedAt: jwt.NewNumericDate(now),
		},
		AccountID: accountID,
	}
	if ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve el ID de la cuenta.
// La verificación de firma ocurre antes de interpretar cualquier claim;
// un payload manipulado retorna ErrTokenInvalid de forma determinista.
func Parse(secret, tokenString string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == "" {
		return "", ErrTokenInvalid
	}
	return claims.AccountID, nil
}
