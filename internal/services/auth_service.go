package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// AuthService cuida de cadastro, login e validação de tokens
type AuthService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	hasher   ports.PasswordHasher
	tokens   ports.TokenManager
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	tokens ports.TokenManager,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		uow:      uow,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterInput representa os dados de cadastro
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthResult é o token emitido junto com o usuário autenticado
type AuthResult struct {
	Token string
	User  *entities.User
}

// Register cadastra um usuário visitante e já emite seu token
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.NewValidationError("name is required")
	}
	if input.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}
	if err := entities.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entities.NewUser(input.Name, email, hash)

	err = s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)

	return s.issue(user)
}

// Login confere email e senha. Usuário inexistente e senha errada produzem o
// mesmo erro.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Debug("login rejected", "email", valueobjects.NormalizeEmail(email))
		return nil, errors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Authenticate valida o token e devolve a identidade embutida nele.
// Não consulta o banco: o token vale até expirar.
func (s *AuthService) Authenticate(token string) (entities.Identity, error) {
	if token == "" {
		return entities.Identity{}, errors.ErrMissingToken
	}
	return s.tokens.Parse(token)
}

func (s *AuthService) issue(user *entities.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(entities.Identity{UserID: user.ID, Email: user.Email.String()})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
