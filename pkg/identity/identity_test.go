package identity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	emails := []string{
		"reporter1@fitlink-qa.test",
		"reporter2@fitlink-qa.test",
		"reporter3@fitlink-qa.test",
	}

	identities := Defaults(emails, "Reportero123!")
	require.Len(t, identities, 3)

	for i, id := range identities {
		assert.Equal(t, emails[i], id.Email, "declaration order must be preserved")
		assert.Equal(t, "Reportero123!", id.Password)
		assert.NotEmpty(t, id.Carnet)
		assert.NotEmpty(t, id.Nombre)
		assert.Equal(t, PlaceholderBiografia, id.Biografia)
		assert.Equal(t, PlaceholderFechaNacimiento, id.FechaNacimiento)
		assert.Equal(t, PlaceholderCiudad, id.Ciudad)
	}

	assert.NotEqual(t, identities[0].Carnet, identities[1].Carnet)
}

func TestDefaultsEmpty(t *testing.T) {
	assert.Empty(t, Defaults(nil, "pw"))
}

func TestGenerate(t *testing.T) {
	identities := Generate(5, "fitlink-qa.test", "Reportero123!")
	require.Len(t, identities, 5)

	seen := make(map[string]bool)
	for _, id := range identities {
		assert.True(t, strings.HasSuffix(id.Email, "@fitlink-qa.test"))
		assert.False(t, seen[id.Email], "generated emails must be unique: %s", id.Email)
		seen[id.Email] = true

		assert.Equal(t, "Reportero123!", id.Password)
		assert.Equal(t, PlaceholderBiografia, id.Biografia)
	}
}

func TestGenerateIsFreshAcrossCalls(t *testing.T) {
	a := Generate(1, "fitlink-qa.test", "pw")
	b := Generate(1, "fitlink-qa.test", "pw")
	assert.NotEqual(t, a[0].Email, b[0].Email)
}
