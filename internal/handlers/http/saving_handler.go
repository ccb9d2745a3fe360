package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/dto"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

// SavingHandler lida com as metas de economia do usuário autenticado
type SavingHandler struct {
	service *services.SavingService
	errors  *ErrorResponder
}

// NewSavingHandler cria um novo SavingHandler
func NewSavingHandler(service *services.SavingService, errors *ErrorResponder) *SavingHandler {
	return &SavingHandler{service: service, errors: errors}
}

// List lista metas com filtros e paginação
//
//	@Summary	Lista metas
//	@Tags		savings
//	@Produce	json
//	@Security	BearerAuth
//	@Param		category	query		string	false	"Categoria"
//	@Param		status		query		string	false	"em_andamento, concluida ou cancelada"
//	@Param		page		query		int		false	"Página"	default(1)
//	@Param		limit		query		int		false	"Itens por página"	default(10)
//	@Success	200			{object}	dto.SavingListResponse
//	@Router		/savings [get]
func (h *SavingHandler) List(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	filters := repositories.SavingFilters{
		Category:   strings.TrimSpace(c.Query("category")),
		Pagination: valueobjects.ParsePagination(c.Query("page"), c.Query("limit")),
	}
	if value := c.Query("status"); value != "" {
		status := entities.SavingStatus(value)
		if !status.IsValid() {
			h.errors.Respond(c, domainerrors.NewValidationError("status must be one of: em_andamento, concluida, cancelada"))
			return
		}
		filters.Status = &status
	}

	page, err := h.service.List(c.Request.Context(), userID, filters)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingListResponse(page))
}

// Stats consolida as metas por categoria e status
//
//	@Summary	Estatísticas de metas
//	@Tags		savings
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.SavingStatsResponse
//	@Router		/savings/stats [get]
func (h *SavingHandler) Stats(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	summary, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingStatsResponse(summary))
}

// Create cria uma meta zerada e em andamento
//
//	@Summary	Cria uma meta
//	@Tags		savings
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.CreateSavingRequest	true	"Meta"
//	@Success	201		{object}	dto.SavingResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/savings [post]
func (h *SavingHandler) Create(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	var req dto.CreateSavingRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	saving, err := h.service.Create(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSavingResponse(saving))
}

// Update altera os campos informados de uma meta
//
//	@Summary	Atualiza uma meta
//	@Tags		savings
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"ID da meta"
//	@Param		body	body		dto.UpdateSavingRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.SavingResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/savings/{id} [put]
func (h *SavingHandler) Update(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	id, ok := h.errors.parseID(c, domainerrors.ErrSavingNotFound)
	if !ok {
		return
	}

	var req dto.UpdateSavingRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	saving, err := h.service.Update(c.Request.Context(), userID, id, req.ToInput())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingResponse(saving))
}

// Delete remove uma meta
//
//	@Summary	Remove uma meta
//	@Tags		savings
//	@Security	BearerAuth
//	@Param		id	path	int	true	"ID da meta"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/savings/{id} [delete]
func (h *SavingHandler) Delete(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	id, ok := h.errors.parseID(c, domainerrors.ErrSavingNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddContribution soma um aporte à meta
//
//	@Summary	Adiciona um aporte
//	@Tags		savings
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"ID da meta"
//	@Param		body	body		dto.ContributionRequest	true	"Valor do aporte"
//	@Success	200		{object}	dto.SavingResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/savings/{id}/add [post]
func (h *SavingHandler) AddContribution(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	id, ok := h.errors.parseID(c, domainerrors.ErrSavingNotFound)
	if !ok {
		return
	}

	var req dto.ContributionRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	saving, err := h.service.AddContribution(c.Request.Context(), userID, id, *req.Amount)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSavingResponse(saving))
}
