package entities

import (
	"strings"
	"time"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// MaxPasswordBytes é o limite do bcrypt; senhas maiores não podem ser hasheadas
const MaxPasswordBytes = 72

// DefaultLanguage é o idioma atribuído a novos usuários
const DefaultLanguage = "pt-BR"

// Settings são as preferências do usuário
type Settings struct {
	EmailNotifications bool
	MonthlyReport      bool
	DarkMode           bool
	Language           string
}

// DefaultSettings retorna as preferências aplicadas no cadastro
func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		MonthlyReport:      true,
		DarkMode:           false,
		Language:           DefaultLanguage,
	}
}

// SettingsPatch é uma atualização parcial de Settings; campos nil não mudam
type SettingsPatch struct {
	EmailNotifications *bool
	MonthlyReport      *bool
	DarkMode           *bool
	Language           *string
}

// Merge aplica o patch campo a campo e retorna o resultado
func (s Settings) Merge(patch SettingsPatch) Settings {
	if patch.EmailNotifications != nil {
		s.EmailNotifications = *patch.EmailNotifications
	}
	if patch.MonthlyReport != nil {
		s.MonthlyReport = *patch.MonthlyReport
	}
	if patch.DarkMode != nil {
		s.DarkMode = *patch.DarkMode
	}
	if patch.Language != nil {
		s.Language = *patch.Language
	}
	return s
}

// User representa um usuário do sistema
type User struct {
	ID           uint
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Role         Role
	Settings     Settings
	Photo        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser cria um usuário visitante com as preferências padrão
func NewUser(name string, email valueobjects.Email, passwordHash string) *User {
	return &User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleVisitante,
		Settings:     DefaultSettings(),
	}
}

// ValidatePassword confere o tamanho da senha em bytes, não em caracteres
func ValidatePassword(password string) error {
	if len(password) > MaxPasswordBytes {
		return domainerrors.NewValidationError("password must have at most 72 bytes")
	}
	return nil
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Can verifica se o role do usuário concede a capacidade
func (u *User) Can(capability Capability) bool {
	return u.Role.Can(capability)
}
