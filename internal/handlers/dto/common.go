package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse é o corpo de todas as respostas de erro.
// Message só aparece em erros 500 fora de produção.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Date aceita "2006-01-02" ou RFC 3339 e guarda o instante em UTC
type Date struct {
	time.Time
	// DateOnly indica que o valor veio sem horário
	DateOnly bool
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	t, dateOnly, err := ParseDate(raw)
	if err != nil {
		return err
	}

	d.Time = t
	d.DateOnly = dateOnly
	return nil
}

// ParseDate interpreta uma data sem horário ou um instante RFC 3339
func ParseDate(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.UTC(), true, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC 3339", value)
	}
	return t.UTC(), false, nil
}

// Money formata um valor monetário com duas casas decimais
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Number converte um valor monetário para número JSON, arredondado em centavos
func Number(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
