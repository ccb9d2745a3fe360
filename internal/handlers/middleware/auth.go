package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/handlers/dto"
)

// IdentityContextKey é a chave da identidade autenticada no contexto do Gin
const IdentityContextKey = "identity"

// Authenticator valida um token e devolve a identidade do dono
type Authenticator interface {
	Authenticate(token string) (entities.Identity, error)
}

// RequireAuth exige um header "Authorization: Bearer <token>" válido
func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.Authenticate(bearerToken(c.GetHeader("Authorization")))
		if err != nil {
			key := domainerrors.ErrInvalidToken
			if errors.Is(err, domainerrors.ErrMissingToken) {
				key = domainerrors.ErrMissingToken
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: Translate(c, key.Error()),
			})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

// GetIdentity devolve a identidade gravada por RequireAuth
func GetIdentity(c *gin.Context) (entities.Identity, bool) {
	value, ok := c.Get(IdentityContextKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := value.(entities.Identity)
	return identity, ok
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
