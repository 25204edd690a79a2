package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Campus-auth-api/pkg/password"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	hash, err := password.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "secret1", hash, "el hash nunca debe igualar el texto plano")
	assert.True(t, password.Verify("secret1", hash), "la contraseña original debe verificar")
}

func TestVerify_PasswordIncorrecto(t *testing.T) {
	hash, err := password.Hash("secret1")
	require.NoError(t, err)

	assert.False(t, password.Verify("otra-cosa", hash), "un password distinto no debe verificar")
	assert.False(t, password.Verify("", hash), "password vacío no debe verificar")
}

// Dos hashes del mismo input deben diferir (salt aleatorio) y ambos verificar.
func TestHash_EsSalteado(t *testing.T) {
	h1, err := password.Hash("secret1")
	require.NoError(t, err)
	h2, err := password.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "dos llamadas con el mismo input deben producir hashes distintos")
	assert.True(t, password.Verify("secret1", h1))
	assert.True(t, password.Verify("secret1", h2))
}

func TestVerify_HashMalformado(t *testing.T) {
	assert.False(t, password.Verify("secret1", "no-es-un-hash-bcrypt"))
}
