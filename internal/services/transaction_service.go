package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// TransactionService contém a lógica de negócio para receitas e despesas
type TransactionService struct {
	repo   repositories.TransactionRepository
	logger ports.Logger
	now    func() time.Time
}

// NewTransactionService cria um novo TransactionService
func NewTransactionService(repo repositories.TransactionRepository, logger ports.Logger) *TransactionService {
	return &TransactionService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock troca o relógio usado para definir o mês corrente nas estatísticas
func (s *TransactionService) WithClock(now func() time.Time) *TransactionService {
	s.now = now
	return s
}

// TransactionInput contém os campos de criação e atualização
type TransactionInput struct {
	Description  string
	Amount       decimal.Decimal
	Type         entities.TransactionType
	Category     string
	Date         time.Time
	Status       *entities.TransactionStatus
	Observations *string
}

// TransactionStats são os totais gerais e do mês corrente
type TransactionStats struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	MonthlyBalance decimal.Decimal
}

// List retorna uma página das transações do usuário
func (s *TransactionService) List(ctx context.Context, userID uint, filters repositories.TransactionFilters) (valueobjects.Page[*entities.Transaction], error) {
	return s.repo.List(ctx, userID, filters)
}

// Stats soma receitas e despesas de todo o histórico e do mês corrente
func (s *TransactionService) Stats(ctx context.Context, userID uint) (TransactionStats, error) {
	total, err := s.repo.SumByType(ctx, userID, nil)
	if err != nil {
		return TransactionStats{}, err
	}

	month := CurrentMonth(s.now())
	monthly, err := s.repo.SumByType(ctx, userID, &month)
	if err != nil {
		return TransactionStats{}, err
	}

	return TransactionStats{
		TotalIncome:    total.Income,
		TotalExpense:   total.Expense,
		Balance:        total.Income.Sub(total.Expense),
		MonthlyIncome:  monthly.Income,
		MonthlyExpense: monthly.Expense,
		MonthlyBalance: monthly.Income.Sub(monthly.Expense),
	}, nil
}

// CurrentMonth retorna [primeiro dia do mês, primeiro dia do mês seguinte)
// no fuso de now
func CurrentMonth(now time.Time) repositories.Period {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return repositories.Period{From: from, To: from.AddDate(0, 1, 0)}
}

// Create cria uma transação; sem status informado ela nasce pendente
func (s *TransactionService) Create(ctx context.Context, userID uint, input TransactionInput) (*entities.Transaction, error) {
	status := entities.TransactionStatusPendente
	if input.Status != nil {
		status = *input.Status
	}

	transaction := &entities.Transaction{
		UserID:       userID,
		Description:  strings.TrimSpace(input.Description),
		Amount:       input.Amount,
		Type:         input.Type,
		Category:     strings.TrimSpace(input.Category),
		Date:         input.Date.UTC(),
		Status:       status,
		Observations: input.Observations,
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	s.logger.Info("transaction created", "user_id", userID, "transaction_id", transaction.ID, "type", transaction.Type)

	return transaction, nil
}

// Update substitui todos os campos; sem status informado mantém o atual
func (s *TransactionService) Update(ctx context.Context, userID, id uint, input TransactionInput) (*entities.Transaction, error) {
	transaction, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	transaction.Description = strings.TrimSpace(input.Description)
	transaction.Amount = input.Amount
	transaction.Type = input.Type
	transaction.Category = strings.TrimSpace(input.Category)
	transaction.Date = input.Date.UTC()
	transaction.Observations = input.Observations
	if input.Status != nil {
		transaction.Status = *input.Status
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// Delete apaga definitivamente a transação do usuário
func (s *TransactionService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.find(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("transaction deleted", "user_id", userID, "transaction_id", id)
	return nil
}

func (s *TransactionService) find(ctx context.Context, userID, id uint) (*entities.Transaction, error) {
	transaction, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, errors.ErrTransactionNotFound
	}
	return transaction, nil
}
