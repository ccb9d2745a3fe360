package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
)

// TransactionType indica se a transação é uma receita ou uma despesa
type TransactionType string

const (
	TransactionTypeReceita TransactionType = "receita"
	TransactionTypeDespesa TransactionType = "despesa"
)

// IsValid verifica se o tipo é conhecido
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeReceita || t == TransactionTypeDespesa
}

// TransactionStatus é a situação de uma transação
type TransactionStatus string

const (
	TransactionStatusPendente  TransactionStatus = "pendente"
	TransactionStatusConcluida TransactionStatus = "concluida"
	TransactionStatusCancelada TransactionStatus = "cancelada"
)

// IsValid verifica se o status é conhecido
func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPendente, TransactionStatusConcluida, TransactionStatusCancelada:
		return true
	}
	return false
}

// Transaction é uma receita ou despesa pertencente a um único usuário
type Transaction struct {
	ID           uint
	UserID       uint
	Description  string
	Amount       decimal.Decimal
	Type         TransactionType
	Category     string
	Date         time.Time
	Status       TransactionStatus
	Observations *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate valida regras de negócio da transação
func (t *Transaction) Validate() error {
	if t.UserID == 0 {
		return domainerrors.NewValidationError("userId is required")
	}
	if strings.TrimSpace(t.Description) == "" {
		return domainerrors.NewValidationError("description is required")
	}
	if !t.Amount.IsPositive() {
		return domainerrors.NewValidationError("amount must be greater than zero")
	}
	if err := ValidateAmount("amount", t.Amount); err != nil {
		return err
	}
	if !t.Type.IsValid() {
		return domainerrors.NewValidationError("type must be one of: receita, despesa")
	}
	if strings.TrimSpace(t.Category) == "" {
		return domainerrors.NewValidationError("category is required")
	}
	if t.Date.IsZero() {
		return domainerrors.NewValidationError("date is required")
	}
	if !t.Status.IsValid() {
		return domainerrors.NewValidationError("status must be one of: pendente, concluida, cancelada")
	}
	return nil
}
