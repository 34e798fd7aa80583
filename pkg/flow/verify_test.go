package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink-qa/reportflow/pkg/backend"
)

// verifyBackend returns a scripted login response for the verify probe.
type verifyBackend struct {
	fakeBackend
	status int
	body   string
	token  string
}

func (v *verifyBackend) Login(_ context.Context, email, _ string) (*backend.LoginResult, error) {
	res := &backend.LoginResult{StatusCode: v.status, Body: []byte(v.body)}
	if v.token != "" {
		res.Response.Session = &backend.Session{AccessToken: v.token}
	}
	return res, nil
}

func TestVerifyTargetBlocked(t *testing.T) {
	b := &verifyBackend{
		status: 403,
		body:   `{"detail":"Cuenta deshabilitada por exceder el límite de reportes. Contacta soporte."}`,
	}

	result, err := VerifyTarget(context.Background(), b, "victim@fitlink-qa.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, TargetBlocked, result.State)
	assert.Contains(t, result.Detail, "Cuenta deshabilitada")
}

func TestVerifyTargetActive(t *testing.T) {
	b := &verifyBackend{
		status: 200,
		body:   `{"message":"Login exitoso","session":{"access_token":"tok"}}`,
		token:  "tok",
	}

	result, err := VerifyTarget(context.Background(), b, "victim@fitlink-qa.test", "secret")
	require.NoError(t, err)
	assert.Equal(t, TargetActive, result.State)
}

func TestVerifyTargetUnknown(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"wrong credentials", 401, `{"detail":"Credenciales inválidas"}`},
		{"server error", 500, `{"detail":"Error inesperado"}`},
		{"ok without token", 200, `{"message":"Login exitoso"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &verifyBackend{status: tt.status, body: tt.body}
			result, err := VerifyTarget(context.Background(), b, "victim@fitlink-qa.test", "secret")
			require.NoError(t, err)
			assert.Equal(t, TargetUnknown, result.State)
		})
	}
}

func TestTargetStateString(t *testing.T) {
	assert.Equal(t, "active", TargetActive.String())
	assert.Equal(t, "blocked", TargetBlocked.String())
	assert.Equal(t, "unknown", TargetUnknown.String())
}
