package entities

import (
	"testing"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

func mustEmail(t *testing.T, value string) valueobjects.Email {
	t.Helper()
	email, err := valueobjects.NewEmail(value)
	if err != nil {
		t.Fatalf("email inválido %q: %v", value, err)
	}
	return email
}
