package ports

import "github.com/rafabene/controle-financeiro-backend/internal/domain/entities"

// PasswordHasher gera e confere hashes de senha irreversíveis
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenManager emite e valida tokens assinados com a identidade do usuário
type TokenManager interface {
	Issue(identity entities.Identity) (string, error)
	Parse(token string) (entities.Identity, error)
}
