package entities

import (
	"strings"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleVisitante Role = "visitante"
)

// Capability representa uma operação privilegiada
type Capability string

const (
	CapabilityListUsers   Capability = "users.list"
	CapabilityManageUsers Capability = "users.manage"
)

// RoleCapabilities mapeia roles para suas capacidades
var RoleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapabilityListUsers,
		CapabilityManageUsers,
	},
	RoleVisitante: {},
}

// ParseRole converte uma string em Role, rejeitando valores desconhecidos
func ParseRole(value string) (Role, error) {
	role := Role(strings.TrimSpace(value))
	if !role.IsValid() {
		return "", domainerrors.ErrInvalidRole
	}
	return role, nil
}

// IsValid verifica se o role é um dos roles conhecidos
func (r Role) IsValid() bool {
	_, ok := RoleCapabilities[r]
	return ok
}

// Can verifica se o role concede a capacidade
func (r Role) Can(capability Capability) bool {
	for _, c := range RoleCapabilities[r] {
		if c == capability {
			return true
		}
	}
	return false
}
