package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

// SavingStatus é a situação de uma meta de economia
type SavingStatus string

const (
	SavingStatusEmAndamento SavingStatus = "em_andamento"
	SavingStatusConcluida   SavingStatus = "concluida"
	SavingStatusCancelada   SavingStatus = "cancelada"
)

// IsValid verifica se o status é conhecido
func (s SavingStatus) IsValid() bool {
	switch s {
	case SavingStatusEmAndamento, SavingStatusConcluida, SavingStatusCancelada:
		return true
	}
	return false
}

// DeriveStatus aplica a regra de conclusão automática: uma meta cujo valor
// atual alcança o alvo está concluída; caso contrário vale o status pedido.
func DeriveStatus(current, target decimal.Decimal, requested SavingStatus) SavingStatus {
	if current.GreaterThanOrEqual(target) {
		return SavingStatusConcluida
	}
	return requested
}

// Saving é uma meta de economia pertencente a um único usuário
type Saving struct {
	ID            uint
	UserID        uint
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Category      string
	Status        SavingStatus
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSaving cria uma meta zerada e em andamento
func NewSaving(userID uint, name string, target decimal.Decimal, deadline time.Time, category string, description *string) *Saving {
	s := &Saving{
		UserID:        userID,
		Name:          strings.TrimSpace(name),
		TargetAmount:  target,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Category:      strings.TrimSpace(category),
		Description:   description,
	}
	s.Status = DeriveStatus(s.CurrentAmount, s.TargetAmount, SavingStatusEmAndamento)
	return s
}

// Contribute soma amount ao valor atual e reavalia o status
func (s *Saving) Contribute(amount decimal.Decimal) {
	s.CurrentAmount = s.CurrentAmount.Add(amount)
	s.Status = DeriveStatus(s.CurrentAmount, s.TargetAmount, s.Status)
}

// Validate valida regras de negócio da meta
func (s *Saving) Validate() error {
	if s.UserID == 0 {
		return domainerrors.NewValidationError("userId is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return domainerrors.NewValidationError("name is required")
	}
	if !s.TargetAmount.IsPositive() {
		return domainerrors.NewValidationError("targetAmount must be greater than zero")
	}
	if err := ValidateAmount("targetAmount", s.TargetAmount); err != nil {
		return err
	}
	if s.CurrentAmount.IsNegative() {
		return domainerrors.NewValidationError("currentAmount must not be negative")
	}
	if err := ValidateAmount("currentAmount", s.CurrentAmount); err != nil {
		return err
	}
	if s.Deadline.IsZero() {
		return domainerrors.NewValidationError("deadline is required")
	}
	if strings.TrimSpace(s.Category) == "" {
		return domainerrors.NewValidationError("category is required")
	}
	if !s.Status.IsValid() {
		return domainerrors.NewValidationError("status must be one of: em_andamento, concluida, cancelada")
	}
	return nil
}

// CategoryTotals acumula os valores de uma categoria
type CategoryTotals struct {
	Saved  decimal.Decimal
	Target decimal.Decimal
}

// SavingSummary consolida as metas de um usuário
type SavingSummary struct {
	TotalSaved  decimal.Decimal
	TotalTarget decimal.Decimal
	Categories  map[string]CategoryTotals
	StatusCount map[SavingStatus]int
}

// SummarizeSavings soma valores atuais e alvos, agrupa por categoria e conta
// metas em andamento e concluídas. Metas canceladas entram nas somas mas não
// na contagem por status.
func SummarizeSavings(savings []*Saving) SavingSummary {
	summary := SavingSummary{
		TotalSaved:  decimal.Zero,
		TotalTarget: decimal.Zero,
		Categories:  make(map[string]CategoryTotals),
		StatusCount: map[SavingStatus]int{
			SavingStatusEmAndamento: 0,
			SavingStatusConcluida:   0,
		},
	}

	for _, s := range savings {
		summary.TotalSaved = summary.TotalSaved.Add(s.CurrentAmount)
		summary.TotalTarget = summary.TotalTarget.Add(s.TargetAmount)

		if _, counted := summary.StatusCount[s.Status]; counted {
			summary.StatusCount[s.Status]++
		}

		totals, ok := summary.Categories[s.Category]
		if !ok {
			totals = CategoryTotals{Saved: decimal.Zero, Target: decimal.Zero}
		}
		totals.Saved = totals.Saved.Add(s.CurrentAmount)
		totals.Target = totals.Target.Add(s.TargetAmount)
		summary.Categories[s.Category] = totals
	}

	return summary
}
