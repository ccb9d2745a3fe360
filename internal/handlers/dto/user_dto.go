package dto

import (
	"time"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
)

// RegisterRequest representa a requisição de cadastro
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary é o resumo de usuário devolvido junto com o token
type UserSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// AuthResponse é a resposta de cadastro e login
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// NewAuthResponse monta a resposta; withRole inclui o role (login)
func NewAuthResponse(token string, user *entities.User, withRole bool) AuthResponse {
	summary := UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email.String(),
	}
	if withRole {
		summary.Role = string(user.Role)
	}
	return AuthResponse{Token: token, User: summary}
}

// SettingsResponse representa as preferências do usuário
type SettingsResponse struct {
	EmailNotifications bool   `json:"emailNotifications"`
	MonthlyReport      bool   `json:"monthlyReport"`
	DarkMode           bool   `json:"darkMode"`
	Language           string `json:"language"`
}

// ToSettingsResponse converte Settings para SettingsResponse
func ToSettingsResponse(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		EmailNotifications: s.EmailNotifications,
		MonthlyReport:      s.MonthlyReport,
		DarkMode:           s.DarkMode,
		Language:           s.Language,
	}
}

// UserResponse representa um usuário sem a senha
type UserResponse struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Settings  SettingsResponse `json:"settings"`
	Photo     *string          `json:"photo"`
	Role      string           `json:"role"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email.String(),
		Settings:  ToSettingsResponse(user.Settings),
		Photo:     user.Photo,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// UpdateProfileRequest contém os campos opcionais do perfil
type UpdateProfileRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=255"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword" binding:"omitempty,min=6,max=72"`
	Photo           *string `json:"photo" binding:"omitempty,max=500"`
}

// ProfileResponse é o subconjunto devolvido após atualizar o perfil
type ProfileResponse struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Photo *string `json:"photo"`
}

// ToProfileResponse converte uma entidade User para ProfileResponse
func ToProfileResponse(user *entities.User) ProfileResponse {
	return ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email.String(),
		Photo: user.Photo,
	}
}

// UpdateSettingsRequest é um patch das preferências; campos ausentes não mudam
type UpdateSettingsRequest struct {
	EmailNotifications *bool   `json:"emailNotifications"`
	MonthlyReport      *bool   `json:"monthlyReport"`
	DarkMode           *bool   `json:"darkMode"`
	Language           *string `json:"language" binding:"omitempty,min=2,max=10"`
}

// ToPatch converte a requisição em SettingsPatch
func (r UpdateSettingsRequest) ToPatch() entities.SettingsPatch {
	return entities.SettingsPatch{
		EmailNotifications: r.EmailNotifications,
		MonthlyReport:      r.MonthlyReport,
		DarkMode:           r.DarkMode,
		Language:           r.Language,
	}
}

// PhotoResponse é a resposta do upload de foto
type PhotoResponse struct {
	Photo string `json:"photo"`
}

// UpdateUserRequest é a edição de nome e role feita por um admin.
// A obrigatoriedade é checada no serviço, depois da permissão.
type UpdateUserRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
