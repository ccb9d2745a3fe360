package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/controle-financeiro-backend/internal/handlers/dto"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

// AuthHandler lida com cadastro e login
type AuthHandler struct {
	authService *services.AuthService
	errors      *ErrorResponder
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, errors *ErrorResponder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		errors:      errors,
	}
}

// Register cadastra um novo usuário
//
//	@Summary	Cadastra um usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.RegisterRequest	true	"Dados de cadastro"
//	@Success	201		{object}	dto.AuthResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuthResponse(result.Token, result.User, false))
}

// Login autentica por email e senha
//
//	@Summary	Autentica um usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.AuthResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(result.Token, result.User, true))
}
