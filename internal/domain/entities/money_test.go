package entities

import (
	"errors"
	"testing"
	"time"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr string
	}{
		{"duas casas", "999.99", ""},
		{"inteiro", "1000", ""},
		{"zeros à direita além da segunda casa", "10.500", ""},
		{"teto exato", "9999999999.99", ""},
		{"fração de centavo", "0.005", "amount must have at most 2 decimal places"},
		{"acima do teto", "10000000000.00", "amount must be at most 9999999999.99"},
		{"notação científica grande", "1e11", "amount must be at most 9999999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount("amount", dec(t, tt.amount))
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("esperava nil, obteve %v", err)
				}
				return
			}
			if !errors.Is(err, domainerrors.ErrValidation) {
				t.Fatalf("esperava erro de validação, obteve %v", err)
			}
			if got := domainerrors.Detail(err); got != tt.wantErr {
				t.Errorf("detalhe = %q, esperava %q", got, tt.wantErr)
			}
		})
	}
}

func TestTransaction_ValidateAmount(t *testing.T) {
	tx := &Transaction{
		UserID:      1,
		Description: "Mercado",
		Amount:      dec(t, "10.005"),
		Type:        TransactionTypeDespesa,
		Category:    "alimentacao",
		Date:        time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		Status:      TransactionStatusPendente,
	}

	if err := tx.Validate(); !errors.Is(err, domainerrors.ErrValidation) {
		t.Errorf("esperava erro de validação, obteve %v", err)
	}

	tx.Amount = dec(t, "10.00")
	if err := tx.Validate(); err != nil {
		t.Errorf("esperava transação válida, obteve %v", err)
	}
}
