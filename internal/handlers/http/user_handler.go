package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/dto"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	errors      *ErrorResponder
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, errors *ErrorResponder) *UserHandler {
	return &UserHandler{
		userService: userService,
		errors:      errors,
	}
}

// Me devolve o usuário autenticado. Também atende GET /auth/profile.
//
//	@Summary	Usuário autenticado
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.UserResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfile altera nome, foto e senha
//
//	@Summary	Atualiza o perfil
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.UpdateProfileRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.ProfileResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/auth/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, services.UpdateProfileInput{
		Name:            req.Name,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		Photo:           req.Photo,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}

// UpdateSettings mescla as preferências informadas
//
//	@Summary	Atualiza preferências
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.UpdateSettingsRequest	true	"Preferências a alterar"
//	@Success	200		{object}	dto.SettingsResponse
//	@Router		/auth/settings [put]
func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if !h.errors.bindJSON(c, &req) {
		return
	}

	settings, err := h.userService.UpdateSettings(c.Request.Context(), userID, req.ToPatch())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// UploadPhoto recebe a foto de perfil no campo multipart "photo"
//
//	@Summary	Envia foto de perfil
//	@Tags		auth
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		photo	formData	file	true	"Imagem jpg, jpeg, png, gif ou webp"
//	@Success	200		{object}	dto.PhotoResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/auth/photo [post]
func (h *UserHandler) UploadPhoto(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	params := map[string]any{"MaxMB": h.userService.MaxPhotoBytes() >> 20}

	// o corpo inteiro é limitado antes do parse; a folga cobre os cabeçalhos multipart
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.userService.MaxPhotoBytes()+multipartOverhead)

	header, err := c.FormFile("photo")
	if err != nil {
		h.errors.RespondWith(c, &domainerrors.DomainError{Err: domainerrors.ErrInvalidFile, Message: "photo file is required"}, params)
		return
	}

	file, err := header.Open()
	if err != nil {
		h.errors.Respond(c, err)
		return
	}
	defer file.Close()

	photo, err := h.userService.UploadPhoto(c.Request.Context(), userID, services.PhotoUpload{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		h.errors.RespondWith(c, err, params)
		return
	}

	c.JSON(http.StatusOK, dto.PhotoResponse{Photo: photo})
}

const multipartOverhead = 64 << 10

// ListUsers lista todos os usuários (somente admin)
//
//	@Summary	Lista usuários
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.UserResponse
//	@Failure	403	{object}	dto.ErrorResponse
//	@Router		/auth/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	userID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), userID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateUser altera nome e role de um usuário (somente admin)
//
//	@Summary	Altera nome e role
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int						true	"ID do usuário"
//	@Param		body	body		dto.UpdateUserRequest	true	"Nome e role"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/auth/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	callerID, ok := h.errors.identity(c)
	if !ok {
		return
	}

	targetID, ok := h.errors.parseID(c, domainerrors.ErrUserNotFound)
	if !ok {
		return
	}

	// corpo vazio segue para o serviço, que checa a permissão antes dos campos
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.errors.Validation(c, dto.ValidationDetails(err))
		return
	}

	user, err := h.userService.UpdateUserRoleAndName(c.Request.Context(), callerID, targetID, req.Name, req.Role)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
