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

// SavingService contém a lógica de negócio para metas de economia
type SavingService struct {
	repo   repositories.SavingRepository
	uow    ports.UnitOfWork
	logger ports.Logger
}

// NewSavingService cria um novo SavingService
func NewSavingService(repo repositories.SavingRepository, uow ports.UnitOfWork, logger ports.Logger) *SavingService {
	return &SavingService{
		repo:   repo,
		uow:    uow,
		logger: logger,
	}
}

// CreateSavingInput contém os dados de uma nova meta
type CreateSavingInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     time.Time
	Category     string
	Description  *string
}

// UpdateSavingInput contém os campos opcionais de atualização; nil mantém o valor atual
type UpdateSavingInput struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
	Category      *string
	Status        *entities.SavingStatus
	Description   *string
}

// List retorna uma página das metas do usuário
func (s *SavingService) List(ctx context.Context, userID uint, filters repositories.SavingFilters) (valueobjects.Page[*entities.Saving], error) {
	return s.repo.List(ctx, userID, filters)
}

// Stats consolida todas as metas do usuário
func (s *SavingService) Stats(ctx context.Context, userID uint) (entities.SavingSummary, error) {
	savings, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return entities.SavingSummary{}, err
	}
	return entities.SummarizeSavings(savings), nil
}

// Create cria uma meta com valor atual zero, em andamento
func (s *SavingService) Create(ctx context.Context, userID uint, input CreateSavingInput) (*entities.Saving, error) {
	saving := entities.NewSaving(userID, input.Name, input.TargetAmount, input.Deadline.UTC(), input.Category, input.Description)

	if err := saving.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, saving); err != nil {
		return nil, err
	}

	s.logger.Info("saving created", "user_id", userID, "saving_id", saving.ID)

	return saving, nil
}

// Update aplica os campos informados e recalcula o status: valor atual que
// alcança o alvo conclui a meta independentemente do status pedido
func (s *SavingService) Update(ctx context.Context, userID, id uint, input UpdateSavingInput) (*entities.Saving, error) {
	saving, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		saving.Name = strings.TrimSpace(*input.Name)
	}
	if input.TargetAmount != nil {
		saving.TargetAmount = *input.TargetAmount
	}
	if input.CurrentAmount != nil {
		saving.CurrentAmount = *input.CurrentAmount
	}
	if input.Deadline != nil {
		saving.Deadline = input.Deadline.UTC()
	}
	if input.Category != nil {
		saving.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		saving.Description = input.Description
	}

	requested := saving.Status
	if input.Status != nil {
		requested = *input.Status
	}
	saving.Status = entities.DeriveStatus(saving.CurrentAmount, saving.TargetAmount, requested)

	if err := saving.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, saving); err != nil {
		return nil, err
	}

	return saving, nil
}

// Delete apaga definitivamente a meta do usuário
func (s *SavingService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.find(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("saving deleted", "user_id", userID, "saving_id", id)
	return nil
}

// AddContribution soma amount ao valor atual da meta. Leitura e escrita
// acontecem na mesma transação do banco.
func (s *SavingService) AddContribution(ctx context.Context, userID, id uint, amount decimal.Decimal) (*entities.Saving, error) {
	if !amount.IsPositive() {
		return nil, errors.NewValidationError("amount must be greater than zero")
	}
	if err := entities.ValidateAmount("amount", amount); err != nil {
		return nil, err
	}

	var saving *entities.Saving

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		found, err := s.find(ctx, userID, id)
		if err != nil {
			return err
		}

		found.Contribute(amount)
		if err := found.Validate(); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, found); err != nil {
			return err
		}

		saving = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contribution added", "user_id", userID, "saving_id", id, "status", saving.Status)

	return saving, nil
}

func (s *SavingService) find(ctx context.Context, userID, id uint) (*entities.Saving, error) {
	saving, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if saving == nil {
		return nil, errors.ErrSavingNotFound
	}
	return saving, nil
}
