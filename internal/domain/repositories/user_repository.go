package repositories

import (
	"context"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Find* retornam (nil, nil) quando o registro não existe.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários (mais recentes primeiro)
type UserFilters struct {
	Role *entities.Role
}
