package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/dto"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/middleware"
)

// statusBySentinel mapeia erros de domínio para status HTTP; o resto vira 500
var statusBySentinel = []struct {
	err    error
	status int
}{
	{domainerrors.ErrValidation, http.StatusBadRequest},
	{domainerrors.ErrInvalidEmail, http.StatusBadRequest},
	{domainerrors.ErrInvalidRole, http.StatusBadRequest},
	{domainerrors.ErrInvalidFile, http.StatusBadRequest},
	{domainerrors.ErrEmailAlreadyExists, http.StatusBadRequest},
	{domainerrors.ErrCurrentPasswordRequired, http.StatusBadRequest},
	{domainerrors.ErrNameAndRoleRequired, http.StatusBadRequest},
	{domainerrors.ErrInvalidCredentials, http.StatusUnauthorized},
	{domainerrors.ErrInvalidCurrentPassword, http.StatusUnauthorized},
	{domainerrors.ErrMissingToken, http.StatusUnauthorized},
	{domainerrors.ErrInvalidToken, http.StatusUnauthorized},
	{domainerrors.ErrForbidden, http.StatusForbidden},
	{domainerrors.ErrUserNotFound, http.StatusNotFound},
	{domainerrors.ErrTransactionNotFound, http.StatusNotFound},
	{domainerrors.ErrSavingNotFound, http.StatusNotFound},
}

// ErrorResponder converte erros em respostas JSON localizadas
type ErrorResponder struct {
	logger        ports.Logger
	exposeDetails bool
}

// NewErrorResponder cria um ErrorResponder. Com exposeDetails o texto do
// erro interno vai no campo message das respostas 500.
func NewErrorResponder(logger ports.Logger, exposeDetails bool) *ErrorResponder {
	return &ErrorResponder{logger: logger, exposeDetails: exposeDetails}
}

// Respond escreve a resposta de erro correspondente a err
func (r *ErrorResponder) Respond(c *gin.Context, err error) {
	r.RespondWith(c, err, nil)
}

// RespondWith é Respond com parâmetros para a mensagem traduzida
func (r *ErrorResponder) RespondWith(c *gin.Context, err error, params map[string]any) {
	for _, m := range statusBySentinel {
		if !errors.Is(err, m.err) {
			continue
		}

		body := dto.ErrorResponse{Error: translate(c, m.err.Error(), params)}
		if m.status == http.StatusBadRequest {
			if detail := domainerrors.Detail(err); detail != "" {
				body.Details = []string{detail}
			}
		}
		c.AbortWithStatusJSON(m.status, body)
		return
	}

	r.internal(c, err)
}

// Validation responde 400 com os detalhes de validação do corpo
func (r *ErrorResponder) Validation(c *gin.Context, details []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   middleware.Translate(c, domainerrors.ErrValidation.Error()),
		Details: details,
	})
}

// NotFoundRoute responde 404 para rotas inexistentes
func (r *ErrorResponder) NotFoundRoute(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, dto.ErrorResponse{
		Error: middleware.Translate(c, "error.route_not_found"),
	})
}

// Recover trata panics capturados pelo middleware de recovery
func (r *ErrorResponder) Recover(c *gin.Context, recovered any) {
	r.internal(c, fmt.Errorf("panic: %v", recovered))
}

func (r *ErrorResponder) internal(c *gin.Context, err error) {
	r.logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)

	body := dto.ErrorResponse{Error: middleware.Translate(c, domainerrors.ErrInternal.Error())}
	if r.exposeDetails {
		body.Message = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

func translate(c *gin.Context, key string, params map[string]any) string {
	if params == nil {
		return middleware.Translate(c, key)
	}
	return middleware.Translate(c, key, params)
}

// bindJSON faz o bind do corpo e responde 400 em caso de erro
func (r *ErrorResponder) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		r.Validation(c, dto.ValidationDetails(err))
		return false
	}
	return true
}

// parseID lê o parâmetro :id; valores não numéricos respondem notFound
func (r *ErrorResponder) parseID(c *gin.Context, notFound error) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		r.Respond(c, notFound)
		return 0, false
	}
	return uint(id), true
}

// identity devolve o id do usuário autenticado
func (r *ErrorResponder) identity(c *gin.Context) (uint, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		r.Respond(c, domainerrors.ErrMissingToken)
		return 0, false
	}
	return identity.UserID, true
}
