package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

// CreateSavingRequest é o corpo de criação de meta. Valor atual e status
// não são aceitos: toda meta nasce zerada e em andamento.
type CreateSavingRequest struct {
	Name         string           `json:"name" binding:"required,max=255"`
	TargetAmount *decimal.Decimal `json:"targetAmount" binding:"required,gt=0"`
	Deadline     *Date            `json:"deadline" binding:"required"`
	Category     string           `json:"category" binding:"required,max=100"`
	Description  *string          `json:"description"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateSavingRequest) ToInput() services.CreateSavingInput {
	return services.CreateSavingInput{
		Name:         r.Name,
		TargetAmount: *r.TargetAmount,
		Deadline:     r.Deadline.Time,
		Category:     r.Category,
		Description:  r.Description,
	}
}

// UpdateSavingRequest é o corpo de atualização; campos ausentes não mudam
type UpdateSavingRequest struct {
	Name          *string          `json:"name" binding:"omitempty,max=255"`
	TargetAmount  *decimal.Decimal `json:"targetAmount" binding:"omitempty,gt=0"`
	CurrentAmount *decimal.Decimal `json:"currentAmount" binding:"omitempty,gte=0"`
	Deadline      *Date            `json:"deadline"`
	Category      *string          `json:"category" binding:"omitempty,max=100"`
	Status        *string          `json:"status" binding:"omitempty,oneof=em_andamento concluida cancelada"`
	Description   *string          `json:"description"`
}

// ToInput converte a requisição para o input do serviço
func (r UpdateSavingRequest) ToInput() services.UpdateSavingInput {
	input := services.UpdateSavingInput{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Category:      r.Category,
		Description:   r.Description,
	}
	if r.Deadline != nil {
		deadline := r.Deadline.Time
		input.Deadline = &deadline
	}
	if r.Status != nil {
		status := entities.SavingStatus(*r.Status)
		input.Status = &status
	}
	return input
}

// ContributionRequest é o corpo de uma contribuição
type ContributionRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// SavingResponse representa uma meta de economia
type SavingResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"targetAmount"`
	CurrentAmount string    `json:"currentAmount"`
	Deadline      time.Time `json:"deadline"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	Description   *string   `json:"description"`
	UserID        uint      `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToSavingResponse converte uma entidade Saving para SavingResponse
func ToSavingResponse(s *entities.Saving) SavingResponse {
	return SavingResponse{
		ID:            s.ID,
		Name:          s.Name,
		TargetAmount:  Money(s.TargetAmount),
		CurrentAmount: Money(s.CurrentAmount),
		Deadline:      s.Deadline,
		Category:      s.Category,
		Status:        string(s.Status),
		Description:   s.Description,
		UserID:        s.UserID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// SavingListResponse é o envelope paginado de metas
type SavingListResponse struct {
	Savings     []SavingResponse `json:"savings"`
	Total       int64            `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// ToSavingListResponse converte uma página de metas
func ToSavingListResponse(page valueobjects.Page[*entities.Saving]) SavingListResponse {
	items := make([]SavingResponse, len(page.Items))
	for i, s := range page.Items {
		items[i] = ToSavingResponse(s)
	}
	return SavingListResponse{
		Savings:     items,
		Total:       page.Total,
		TotalPages:  page.TotalPages(),
		CurrentPage: page.Pagination.Page,
	}
}

// CategoryStatsResponse são os totais de uma categoria
type CategoryStatsResponse struct {
	Saved  float64 `json:"saved"`
	Target float64 `json:"target"`
}

// SavingStatsResponse consolida as metas do usuário
type SavingStatsResponse struct {
	TotalSaved  float64                          `json:"totalSaved"`
	TotalTarget float64                          `json:"totalTarget"`
	Categorias  map[string]CategoryStatsResponse `json:"categorias"`
	Status      map[string]int                   `json:"status"`
}

// ToSavingStatsResponse converte o resumo do domínio
func ToSavingStatsResponse(summary entities.SavingSummary) SavingStatsResponse {
	categories := make(map[string]CategoryStatsResponse, len(summary.Categories))
	for name, totals := range summary.Categories {
		categories[name] = CategoryStatsResponse{
			Saved:  Number(totals.Saved),
			Target: Number(totals.Target),
		}
	}

	status := make(map[string]int, len(summary.StatusCount))
	for s, count := range summary.StatusCount {
		status[string(s)] = count
	}

	return SavingStatsResponse{
		TotalSaved:  Number(summary.TotalSaved),
		TotalTarget: Number(summary.TotalTarget),
		Categorias:  categories,
		Status:      status,
	}
}
