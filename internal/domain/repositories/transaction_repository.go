package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// TransactionRepository define a persistência de transações. Toda leitura,
// alteração e remoção é filtrada pelo dono.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entities.Transaction) error
	FindByIDForUser(ctx context.Context, id, userID uint) (*entities.Transaction, error)
	Update(ctx context.Context, transaction *entities.Transaction) error
	Delete(ctx context.Context, id, userID uint) error
	List(ctx context.Context, userID uint, filters TransactionFilters) (valueobjects.Page[*entities.Transaction], error)
	SumByType(ctx context.Context, userID uint, period *Period) (TransactionTotals, error)
}

// TransactionFilters são combinados com AND; campos vazios/nil são ignorados
type TransactionFilters struct {
	Search     string
	Category   string
	Type       *entities.TransactionType
	Status     *entities.TransactionStatus
	StartDate  *time.Time // inclusivo
	EndDate    *time.Time // inclusivo
	Pagination valueobjects.Pagination
}

// Period é um intervalo semiaberto [From, To)
type Period struct {
	From time.Time
	To   time.Time
}

// TransactionTotals são as somas de receitas e despesas
type TransactionTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}
