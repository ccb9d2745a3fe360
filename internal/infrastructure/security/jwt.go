package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
)

// DefaultTokenExpiry é a validade dos tokens quando nada é configurado
const DefaultTokenExpiry = 7 * 24 * time.Hour

// Claims são as claims emitidas nos tokens de acesso
type Claims struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager implementa ports.TokenManager com HS256
type JWTManager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewJWTManager cria um JWTManager; expiry <= 0 usa DefaultTokenExpiry
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	if expiry <= 0 {
		expiry = DefaultTokenExpiry
	}
	return &JWTManager{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// WithClock troca o relógio usado para emitir e validar tokens
func (m *JWTManager) WithClock(now func() time.Time) *JWTManager {
	m.now = now
	return m
}

var _ ports.TokenManager = (*JWTManager)(nil)

func (m *JWTManager) Issue(identity entities.Identity) (string, error) {
	issuedAt := m.now()

	claims := Claims{
		ID:    identity.UserID,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(identity.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTManager) Parse(tokenString string) (entities.Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return entities.Identity{}, errors.Join(domainerrors.ErrInvalidToken, err)
	}

	if claims.ID == 0 {
		return entities.Identity{}, domainerrors.ErrInvalidToken
	}

	return entities.Identity{UserID: claims.ID, Email: claims.Email}, nil
}
