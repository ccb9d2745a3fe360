package entities

import (
	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

// MaxAmount é o maior valor que cabe em numeric(12,2)
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ValidateAmount exige no máximo duas casas decimais e no máximo MaxAmount.
// O sinal é conferido por quem chama.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if !amount.Equal(amount.Truncate(2)) {
		return domainerrors.NewValidationError(field + " must have at most 2 decimal places")
	}
	if amount.GreaterThan(MaxAmount) {
		return domainerrors.NewValidationError(field + " must be at most " + MaxAmount.StringFixed(2))
	}
	return nil
}
