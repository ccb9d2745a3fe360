package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/dto"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

// TransactionHandler lida com as transações do usuário autenticado
type TransactionHandler struct {
	service *services.TransactionService
	errors  *ErrorResponder
}

// NewTransactionHandler cria um novo TransactionHandler
func NewTransactionHandler(service *services.TransactionService, errors *ErrorResponder) *TransactionHandler {
	return &TransactionHandler{service: service, errors: errors}
}

// List lista transações com filtros e paginação
//
//	@Summary	Lista transações
//	@Tags		transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Param		search		query		string	false	"Trecho da descrição"
//	@Param		category	query		string	false	"Categoria"
//	@Param		type		query		string	false	"receita ou despesa"
//	@Param		status		query		string	false	"pendente, concluida ou cancelada"
//	@Param		startDate	query		string	false	"Data inicial (YYYY-MM-DD)"
//	@Param		endDate		query		string	false	"Data final inclusiva (YYYY-MM-DD)"
//	@Param		page		query		int		false	"Página"	default(1)
//	@Param		limit		query		int		false	"Itens por página"	default(10)
//	@Success	200			{object}	dto.TransactionListResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	filters, err := transactionFilters(c)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), userID, filters)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionListResponse(page))
}

// Stats devolve os totais gerais e do mês corrente
//
//	@Summary	Estatísticas de transações
//	@Tags		transactions
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.TransactionStatsResponse
//	@Router		/transactions/stats [get]
func (h *TransactionHandler) Stats(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionStatsResponse(stats))
}

// Create cria uma transação
//
//	@Summary	Cria uma transação
//	@Tags		transactions
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.TransactionRequest	true	"Transação"
//	@Success	201		{object}	dto.TransactionResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	transaction, err := h.service.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// Update substitui os campos de uma transação
//
//	@Summary	Atualiza uma transação
//	@Tags		transactions
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"ID da transação"
//	@Param		body	body		dto.TransactionRequest	true	"Transação"
//	@Success	200		{object}	dto.TransactionResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	id, ok := h.errors.parseID(c, domainerrors.ErrTransactionNotFound)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	transaction, err := h.service.Update(c.Request.Context(), userID, id, req.ToInput())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// Delete remove uma transação
//
//	@Summary	Remove uma transação
//	@Tags		transactions
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID da transação"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	id, ok := h.errors.parseID(c, domainerrors.ErrTransactionNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func transactionFilters(c *gin.Context) (repositories.TransactionFilters, error) {
	filters := repositories.TransactionFilters{
		Search:     strings.TrimSpace(c.Query("search")),
		Category:   strings.TrimSpace(c.Query("category")),
		Pagination: valueobjects.ParsePagination(c.Query("page"), c.Query("limit")),
	}

	if value := c.Query("type"); value != "" {
		t := entities.TransactionType(value)
		if !t.IsValid() {
			return filters, domainerrors.NewValidationError("type must be one of: receita, despesa")
		}
		filters.Type = &t
	}

	if value := c.Query("status"); value != "" {
		s := entities.TransactionStatus(value)
		if !s.IsValid() {
			return filters, domainerrors.NewValidationError("status must be one of: pendente, concluida, cancelada")
		}
		filters.Status = &s
	}

	if value := c.Query("startDate"); value != "" {
		start, _, err := dto.ParseDate(value)
		if err != nil {
			return filters, domainerrors.NewValidationError(fmt.Sprintf("startDate: %v", err))
		}
		filters.StartDate = &start
	}

	if value := c.Query("endDate"); value != "" {
		end, dateOnly, err := dto.ParseDate(value)
		if err != nil {
			return filters, domainerrors.NewValidationError(fmt.Sprintf("endDate: %v", err))
		}
		// data sem horário inclui o dia inteiro
		if dateOnly {
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filters.EndDate = &end
	}

	return filters, nil
}
