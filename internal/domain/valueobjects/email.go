package valueobjects

import (
	"regexp"
	"strings"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos
type Email struct {
	value string
}

// NewEmail cria um novo Email validado e normalizado (minúsculo, sem espaços)
func NewEmail(email string) (Email, error) {
	email = NormalizeEmail(email)

	if len(email) < 3 || len(email) > 254 || !emailPattern.MatchString(email) {
		return Email{}, domainerrors.ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// NormalizeEmail aplica a mesma normalização usada no cadastro, sem validar
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}
