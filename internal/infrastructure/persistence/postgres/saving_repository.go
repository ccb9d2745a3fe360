package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// SavingRepository implementa repositories.SavingRepository
type SavingRepository struct {
	db *gorm.DB
}

// NewSavingRepository cria um novo SavingRepository
func NewSavingRepository(db *gorm.DB) repositories.SavingRepository {
	return &SavingRepository{db: db}
}

func (r *SavingRepository) Create(ctx context.Context, saving *entities.Saving) error {
	model := toSavingModel(saving)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	saving.ID = model.ID
	saving.CreatedAt = model.CreatedAt
	saving.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *SavingRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*entities.Saving, error) {
	var model SavingModel

	err := dbFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toSavingEntity(&model), nil
}

func (r *SavingRepository) Update(ctx context.Context, saving *entities.Saving) error {
	model := toSavingModel(saving)

	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return err
	}

	saving.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *SavingRepository) Delete(ctx context.Context, id, userID uint) error {
	return dbFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&SavingModel{}).Error
}

func (r *SavingRepository) List(ctx context.Context, userID uint, filters repositories.SavingFilters) (valueobjects.Page[*entities.Saving], error) {
	page := valueobjects.Page[*entities.Saving]{Pagination: filters.Pagination}

	base := func() *gorm.DB {
		query := dbFromContext(ctx, r.db).Model(&SavingModel{}).Where("user_id = ?", userID)
		if filters.Category != "" {
			query = query.Where("category = ?", filters.Category)
		}
		if filters.Status != nil {
			query = query.Where("status = ?", string(*filters.Status))
		}
		return query
	}

	if err := base().Count(&page.Total).Error; err != nil {
		return page, err
	}

	var models []*SavingModel
	err := base().
		Order("deadline ASC").
		Order("id ASC").
		Limit(filters.Pagination.Limit).
		Offset(filters.Pagination.Offset()).
		Find(&models).Error
	if err != nil {
		return page, err
	}

	page.Items = toSavingEntities(models)
	return page, nil
}

func (r *SavingRepository) ListAll(ctx context.Context, userID uint) ([]*entities.Saving, error) {
	var models []*SavingModel

	err := dbFromContext(ctx, r.db).
		Where("user_id = ?", userID).
		Order("deadline ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toSavingEntities(models), nil
}

func toSavingModel(s *entities.Saving) *SavingModel {
	return &SavingModel{
		ID:            s.ID,
		UserID:        s.UserID,
		Name:          s.Name,
		TargetAmount:  s.TargetAmount,
		CurrentAmount: s.CurrentAmount,
		Deadline:      s.Deadline.UTC(),
		Category:      s.Category,
		Status:        string(s.Status),
		Description:   s.Description,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toSavingEntity(m *SavingModel) *entities.Saving {
	return &entities.Saving{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Deadline:      m.Deadline.UTC(),
		Category:      m.Category,
		Status:        entities.SavingStatus(m.Status),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toSavingEntities(models []*SavingModel) []*entities.Saving {
	savings := make([]*entities.Saving, 0, len(models))
	for _, m := range models {
		savings = append(savings, toSavingEntity(m))
	}
	return savings
}
