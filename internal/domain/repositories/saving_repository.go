package repositories

import (
	"context"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// SavingRepository define a persistência de metas de economia, sempre
// filtrada pelo dono.
type SavingRepository interface {
	Create(ctx context.Context, saving *entities.Saving) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*entities.Saving, error)
	Update(ctx context.Context, saving *entities.Saving) error
	Delete(ctx context.Context, id, userID uint) error
	List(ctx context.Context, userID uint, filters SavingFilters) (valueobjects.Page[*entities.Saving], error)
	ListAll(ctx context.Context, userID uint) ([]*entities.Saving, error)
}

// SavingFilters contém filtros para listagem de metas
type SavingFilters struct {
	Category   string
	Status     *entities.SavingStatus
	Pagination valueobjects.Pagination
}
