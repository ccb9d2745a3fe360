package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound            = errors.New("error.user_not_found")
	ErrTransactionNotFound     = errors.New("error.transaction_not_found")
	ErrSavingNotFound          = errors.New("error.saving_not_found")
	ErrEmailAlreadyExists      = errors.New("error.email_already_exists")
	ErrInvalidCredentials      = errors.New("error.invalid_credentials")
	ErrCurrentPasswordRequired = errors.New("error.current_password_required")
	ErrInvalidCurrentPassword  = errors.New("error.invalid_current_password")
	ErrNameAndRoleRequired     = errors.New("error.name_and_role_required")
	ErrForbidden               = errors.New("error.forbidden")
)

// Authentication errors
var (
	ErrMissingToken = errors.New("error.missing_token")
	ErrInvalidToken = errors.New("error.invalid_token")
)

// Domain errors
var (
	ErrValidation   = errors.New("error.validation")
	ErrInvalidEmail = errors.New("error.invalid_email")
	ErrInvalidRole  = errors.New("error.invalid_role")
	ErrInvalidFile  = errors.New("error.invalid_file")
	ErrInternal     = errors.New("error.internal")
)

// DomainError associa um erro sentinela a um detalhe legível
type DomainError struct {
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Err.Error() + ": " + e.Message
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um erro de validação com o detalhe informado
func NewValidationError(message string) error {
	return &DomainError{Message: message, Err: ErrValidation}
}

// Detail extrai o detalhe de um DomainError, se houver
func Detail(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
