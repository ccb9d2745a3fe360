package postgres

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// TransactionRepository implementa repositories.TransactionRepository
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository cria um novo TransactionRepository
func NewTransactionRepository(db *gorm.DB) repositories.TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *entities.Transaction) error {
	model := toTransactionModel(transaction)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	transaction.ID = model.ID
	transaction.CreatedAt = model.CreatedAt
	transaction.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *TransactionRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*entities.Transaction, error) {
	var model TransactionModel

	err := dbFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toTransactionEntity(&model), nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction *entities.Transaction) error {
	model := toTransactionModel(transaction)

	if err := dbFromContext(ctx, r.db).Save(model).Error; err != nil {
		return err
	}

	transaction.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id, userID uint) error {
	return dbFromContext(ctx, r.db).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&TransactionModel{}).Error
}

func (r *TransactionRepository) List(ctx context.Context, userID uint, filters repositories.TransactionFilters) (valueobjects.Page[*entities.Transaction], error) {
	page := valueobjects.Page[*entities.Transaction]{Pagination: filters.Pagination}

	base := func() *gorm.DB {
		return r.applyFilters(dbFromContext(ctx, r.db).Model(&TransactionModel{}), userID, filters)
	}

	if err := base().Count(&page.Total).Error; err != nil {
		return page, err
	}

	var models []*TransactionModel
	err := base().
		Order("date DESC").
		Order("id DESC").
		Limit(filters.Pagination.Limit).
		Offset(filters.Pagination.Offset()).
		Find(&models).Error
	if err != nil {
		return page, err
	}

	page.Items = make([]*entities.Transaction, 0, len(models))
	for _, m := range models {
		page.Items = append(page.Items, toTransactionEntity(m))
	}

	return page, nil
}

type transactionTotalsRow struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

func (r *TransactionRepository) SumByType(ctx context.Context, userID uint, period *repositories.Period) (repositories.TransactionTotals, error) {
	var row transactionTotalsRow

	query := dbFromContext(ctx, r.db).
		Model(&TransactionModel{}).
		Select(
			`COALESCE(SUM(CASE WHEN "type" = ? THEN amount ELSE 0 END), 0) AS income, `+
				`COALESCE(SUM(CASE WHEN "type" = ? THEN amount ELSE 0 END), 0) AS expense`,
			string(entities.TransactionTypeReceita),
			string(entities.TransactionTypeDespesa),
		).
		Where("user_id = ?", userID)

	if period != nil {
		query = query.Where("date >= ? AND date < ?", period.From.UTC(), period.To.UTC())
	}

	if err := query.Scan(&row).Error; err != nil {
		return repositories.TransactionTotals{}, err
	}

	return repositories.TransactionTotals{
		Income:  row.Income.Round(2),
		Expense: row.Expense.Round(2),
	}, nil
}

func (r *TransactionRepository) applyFilters(query *gorm.DB, userID uint, filters repositories.TransactionFilters) *gorm.DB {
	query = query.Where("user_id = ?", userID)

	if filters.Search != "" {
		query = query.Where("description LIKE ?", "%"+filters.Search+"%")
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Type != nil {
		query = query.Where(`"type" = ?`, string(*filters.Type))
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", filters.StartDate.UTC())
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", filters.EndDate.UTC())
	}

	return query
}

func toTransactionModel(t *entities.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           t.ID,
		UserID:       t.UserID,
		Description:  t.Description,
		Amount:       t.Amount,
		Type:         string(t.Type),
		Category:     t.Category,
		Date:         t.Date.UTC(),
		Status:       string(t.Status),
		Observations: t.Observations,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toTransactionEntity(m *TransactionModel) *entities.Transaction {
	return &entities.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Description:  m.Description,
		Amount:       m.Amount,
		Type:         entities.TransactionType(m.Type),
		Category:     m.Category,
		Date:         m.Date.UTC(),
		Status:       entities.TransactionStatus(m.Status),
		Observations: m.Observations,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
