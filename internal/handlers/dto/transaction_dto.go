package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

// TransactionRequest é o corpo de criação e atualização de transações
type TransactionRequest struct {
	Description  string           `json:"description" binding:"required,max=255"`
	Amount       *decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Type         string           `json:"type" binding:"required,oneof=receita despesa"`
	Category     string           `json:"category" binding:"required,max=100"`
	Date         *Date            `json:"date" binding:"required"`
	Status       *string          `json:"status" binding:"omitempty,oneof=pendente concluida cancelada"`
	Observations *string          `json:"observations"`
}

// ToInput converte a requisição para o input do serviço
func (r TransactionRequest) ToInput() services.TransactionInput {
	input := services.TransactionInput{
		Description:  r.Description,
		Amount:       *r.Amount,
		Type:         entities.TransactionType(r.Type),
		Category:     r.Category,
		Date:         r.Date.Time,
		Observations: r.Observations,
	}
	if r.Status != nil {
		status := entities.TransactionStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// TransactionResponse representa uma transação
type TransactionResponse struct {
	ID           uint      `json:"id"`
	Description  string    `json:"description"`
	Amount       string    `json:"amount"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
	Observations *string   `json:"observations"`
	UserID       uint      `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToTransactionResponse converte uma entidade Transaction para TransactionResponse
func ToTransactionResponse(t *entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Description:  t.Description,
		Amount:       Money(t.Amount),
		Type:         string(t.Type),
		Category:     t.Category,
		Date:         t.Date,
		Status:       string(t.Status),
		Observations: t.Observations,
		UserID:       t.UserID,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// TransactionListResponse é o envelope paginado de transações
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	TotalPages   int                   `json:"totalPages"`
	CurrentPage  int                   `json:"currentPage"`
}

// ToTransactionListResponse converte uma página de transações
func ToTransactionListResponse(page valueobjects.Page[*entities.Transaction]) TransactionListResponse {
	items := make([]TransactionResponse, len(page.Items))
	for i, t := range page.Items {
		items[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: items,
		Total:        page.Total,
		TotalPages:   page.TotalPages(),
		CurrentPage:  page.Pagination.Page,
	}
}

// TransactionStatsResponse são os totais em números JSON
type TransactionStatsResponse struct {
	TotalIncome    float64 `json:"totalIncome"`
	TotalExpense   float64 `json:"totalExpense"`
	Balance        float64 `json:"balance"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	MonthlyExpense float64 `json:"monthlyExpense"`
	MonthlyBalance float64 `json:"monthlyBalance"`
}

// ToTransactionStatsResponse converte as estatísticas do serviço
func ToTransactionStatsResponse(s services.TransactionStats) TransactionStatsResponse {
	return TransactionStatsResponse{
		TotalIncome:    Number(s.TotalIncome),
		TotalExpense:   Number(s.TotalExpense),
		Balance:        Number(s.Balance),
		MonthlyIncome:  Number(s.MonthlyIncome),
		MonthlyExpense: Number(s.MonthlyExpense),
		MonthlyBalance: Number(s.MonthlyBalance),
	}
}
