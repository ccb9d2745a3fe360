package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/ports"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
)

// DefaultMaxPhotoBytes limita o tamanho das fotos de perfil
const DefaultMaxPhotoBytes int64 = 5 << 20

// AllowedPhotoExtensions são as extensões aceitas no upload de foto
var AllowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo      repositories.UserRepository
	uow           ports.UnitOfWork
	hasher        ports.PasswordHasher
	files         ports.FileStorage
	maxPhotoBytes int64
	logger        ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	files ports.FileStorage,
	maxPhotoBytes int64,
	logger ports.Logger,
) *UserService {
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = DefaultMaxPhotoBytes
	}
	return &UserService{
		userRepo:      userRepo,
		uow:           uow,
		hasher:        hasher,
		files:         files,
		maxPhotoBytes: maxPhotoBytes,
		logger:        logger,
	}
}

// MaxPhotoBytes retorna o limite configurado para fotos
func (s *UserService) MaxPhotoBytes() int64 {
	return s.maxPhotoBytes
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfileInput contém os campos opcionais de atualização de perfil
type UpdateProfileInput struct {
	Name            *string
	CurrentPassword *string
	NewPassword     *string
	Photo           *string
}

// UpdateProfile aplica nome e foto quando informados e troca a senha se
// newPassword vier acompanhada da senha atual correta
func (s *UserService) UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			user.Name = name
		}
	}

	if input.Photo != nil && *input.Photo != "" {
		photo := *input.Photo
		user.Photo = &photo
	}

	if input.NewPassword != nil && *input.NewPassword != "" {
		if input.CurrentPassword == nil || *input.CurrentPassword == "" {
			return nil, errors.ErrCurrentPasswordRequired
		}
		if !s.hasher.Compare(user.PasswordHash, *input.CurrentPassword) {
			return nil, errors.ErrInvalidCurrentPassword
		}
		if err := entities.ValidatePassword(*input.NewPassword); err != nil {
			return nil, err
		}

		hash, err := s.hasher.Hash(*input.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateSettings mescla o patch nas preferências atuais e devolve o resultado
func (s *UserService) UpdateSettings(ctx context.Context, id uint, patch entities.SettingsPatch) (entities.Settings, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return entities.Settings{}, err
	}

	user.Settings = user.Settings.Merge(patch)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return entities.Settings{}, err
	}

	return user.Settings, nil
}

// PhotoUpload descreve um arquivo recebido no upload de foto
type PhotoUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadPhoto grava a foto no namespace do usuário, atualiza o perfil e
// remove a foto anterior
func (s *UserService) UploadPhoto(ctx context.Context, id uint, upload PhotoUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !AllowedPhotoExtensions[ext] {
		return "", &errors.DomainError{Err: errors.ErrInvalidFile, Message: "unsupported extension " + ext}
	}
	if upload.Size <= 0 || upload.Size > s.maxPhotoBytes {
		return "", &errors.DomainError{Err: errors.ErrInvalidFile, Message: "file size out of range"}
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return "", err
	}

	namespace := strconv.FormatUint(uint64(user.ID), 10)
	publicPath, err := s.files.Save(ctx, namespace, ext, io.LimitReader(upload.Content, s.maxPhotoBytes))
	if err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}

	previous := user.Photo
	user.Photo = &publicPath

	if err := s.userRepo.Update(ctx, user); err != nil {
		_ = s.files.Remove(ctx, namespace, publicPath)
		return "", err
	}

	if previous != nil && *previous != "" && *previous != publicPath {
		if err := s.files.Remove(ctx, namespace, *previous); err != nil {
			s.logger.Warn("failed to remove previous photo", "user_id", user.ID, "path", *previous, "error", err)
		}
	}

	s.logger.Info("photo updated", "user_id", user.ID)

	return publicPath, nil
}

// ListUsers lista todos os usuários, do mais novo para o mais antigo.
// O role do chamador é lido do banco, não do token.
func (s *UserService) ListUsers(ctx context.Context, callerID uint) ([]*entities.User, error) {
	if err := s.authorize(ctx, callerID, entities.CapabilityListUsers); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx, repositories.UserFilters{})
}

// UpdateUserRoleAndName altera nome e role de outro usuário (somente admin)
func (s *UserService) UpdateUserRoleAndName(ctx context.Context, callerID, targetID uint, name, role string) (*entities.User, error) {
	if err := s.authorize(ctx, callerID, entities.CapabilityManageUsers); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(role) == "" {
		return nil, errors.ErrNameAndRoleRequired
	}

	parsed, err := entities.ParseRole(role)
	if err != nil {
		return nil, err
	}

	target, err := s.GetUser(ctx, targetID)
	if err != nil {
		return nil, err
	}

	target.Name = name
	target.Role = parsed

	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	s.logger.Info("user updated by admin", "admin_id", callerID, "user_id", target.ID, "role", parsed)

	return target, nil
}

// EnsureAdmin cria um administrador ou promove o usuário existente com o
// mesmo email. Retorna true quando o usuário foi criado.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (*entities.User, bool, error) {
	addr, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, false, err
	}

	var (
		user    *entities.User
		created bool
	)

	err = s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByEmail(ctx, addr.String())
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Role = entities.RoleAdmin
			if n := strings.TrimSpace(name); n != "" {
				existing.Name = n
			}
			user = existing
			return s.userRepo.Update(ctx, existing)
		}

		if strings.TrimSpace(name) == "" || password == "" {
			return errors.NewValidationError("name and password are required for a new admin")
		}
		if err := entities.ValidatePassword(password); err != nil {
			return err
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user = entities.NewUser(name, addr, hash)
		user.Role = entities.RoleAdmin
		created = true
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, false, err
	}

	return user, created, nil
}

func (s *UserService) authorize(ctx context.Context, callerID uint, capability entities.Capability) error {
	caller, err := s.userRepo.FindByID(ctx, callerID)
	if err != nil {
		return err
	}
	if caller == nil || !caller.Can(capability) {
		return errors.ErrForbidden
	}
	return nil
}
