package services_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/infrastructure/storage"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("UserService", func() {
	var (
		e       *env
		auth    *services.AuthService
		service *services.UserService
		root    string
		ctx     context.Context
		user    *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		root = GinkgoT().TempDir()

		files, err := storage.NewLocalFileStorage(root)
		Expect(err).NotTo(HaveOccurred())

		auth = services.NewAuthService(e.users, e.uow, e.hasher, e.tokens, e.logger)
		service = services.NewUserService(e.users, e.uow, e.hasher, files, 1024, e.logger)

		result, err := auth.Register(ctx, services.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "segredo123"})
		Expect(err).NotTo(HaveOccurred())
		user = result.User
	})

	makeAdmin := func() *entities.User {
		admin, created, err := service.EnsureAdmin(ctx, "Admin", "admin@example.com", "admin123")
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())
		return admin
	}

	Describe("GetUser", func() {
		It("retorna NotFound para id inexistente", func() {
			_, err := service.GetUser(ctx, 9999)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})

	Describe("UpdateProfile", func() {
		It("altera nome e foto", func() {
			updated, err := service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{
				Name:  ptr("Ana Maria"),
				Photo: ptr("/uploads/1/foto.png"),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Ana Maria"))
			Expect(*updated.Photo).To(Equal("/uploads/1/foto.png"))
		})

		It("exige a senha atual para trocar a senha", func() {
			_, err := service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{NewPassword: ptr("nova")})
			Expect(err).To(MatchError(domainerrors.ErrCurrentPasswordRequired))
		})

		It("rejeita senha atual incorreta", func() {
			_, err := service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{
				CurrentPassword: ptr("errada"),
				NewPassword:     ptr("nova"),
			})
			Expect(err).To(MatchError(domainerrors.ErrInvalidCurrentPassword))
		})

		It("rejeita nova senha acima de 72 bytes", func() {
			_, err := service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{
				CurrentPassword: ptr("segredo123"),
				NewPassword:     ptr(strings.Repeat("ç", 37)),
			})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})

		It("troca a senha com a senha atual correta", func() {
			_, err := service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{
				CurrentPassword: ptr("segredo123"),
				NewPassword:     ptr("nova-senha"),
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = auth.Login(ctx, "ana@example.com", "nova-senha")
			Expect(err).NotTo(HaveOccurred())
			_, err = auth.Login(ctx, "ana@example.com", "segredo123")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("UpdateSettings", func() {
		It("mescla apenas os campos informados", func() {
			settings, err := service.UpdateSettings(ctx, user.ID, entities.SettingsPatch{DarkMode: ptr(true), Language: ptr("en")})
			Expect(err).NotTo(HaveOccurred())
			Expect(settings).To(Equal(entities.Settings{
				EmailNotifications: true,
				MonthlyReport:      true,
				DarkMode:           true,
				Language:           "en",
			}))

			stored, err := service.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Settings).To(Equal(settings))
		})
	})

	Describe("UploadPhoto", func() {
		upload := func(name, content string) (string, error) {
			return service.UploadPhoto(ctx, user.ID, services.PhotoUpload{
				Filename: name,
				Size:     int64(len(content)),
				Content:  strings.NewReader(content),
			})
		}

		It("grava a foto no namespace do usuário", func() {
			path, err := upload("perfil.PNG", "png-bytes")
			Expect(err).NotTo(HaveOccurred())
			Expect(path).To(HavePrefix("/uploads/"))
			Expect(path).To(HaveSuffix(".png"))

			stored, err := service.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*stored.Photo).To(Equal(path))
		})

		It("remove a foto anterior", func() {
			first, err := upload("a.jpg", "um")
			Expect(err).NotTo(HaveOccurred())
			_, err = upload("b.jpg", "dois")
			Expect(err).NotTo(HaveOccurred())

			_, statErr := os.Stat(filepath.Join(root, strings.TrimPrefix(first, "/uploads/")))
			Expect(os.IsNotExist(statErr)).To(BeTrue())
		})

		It("não remove arquivo de outro usuário apontado como foto anterior", func() {
			other, err := auth.Register(ctx, services.RegisterInput{Name: "Bia", Email: "bia@example.com", Password: "segredo123"})
			Expect(err).NotTo(HaveOccurred())
			otherPhoto, err := service.UploadPhoto(ctx, other.User.ID, services.PhotoUpload{
				Filename: "bia.png",
				Size:     3,
				Content:  strings.NewReader("bia"),
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateProfile(ctx, user.ID, services.UpdateProfileInput{Photo: ptr(otherPhoto)})
			Expect(err).NotTo(HaveOccurred())
			_, err = upload("ana.png", "ana")
			Expect(err).NotTo(HaveOccurred())

			_, statErr := os.Stat(filepath.Join(root, strings.TrimPrefix(otherPhoto, "/uploads/")))
			Expect(statErr).NotTo(HaveOccurred())
		})

		It("rejeita extensão que não é imagem", func() {
			_, err := upload("script.sh", "echo")
			Expect(err).To(MatchError(domainerrors.ErrInvalidFile))
		})

		It("rejeita arquivo acima do limite", func() {
			_, err := upload("grande.png", strings.Repeat("x", 2048))
			Expect(err).To(MatchError(domainerrors.ErrInvalidFile))
		})
	})

	Describe("administração", func() {
		It("nega listagem a visitantes", func() {
			_, err := service.ListUsers(ctx, user.ID)
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("lista todos os usuários para admin, do mais novo ao mais antigo", func() {
			admin := makeAdmin()

			users, err := service.ListUsers(ctx, admin.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
			Expect(users[0].ID).To(Equal(admin.ID))
		})

		It("nega edição a visitantes mesmo com dados inválidos", func() {
			_, err := service.UpdateUserRoleAndName(ctx, user.ID, user.ID, "", "")
			Expect(err).To(MatchError(domainerrors.ErrForbidden))
		})

		It("exige nome e role", func() {
			admin := makeAdmin()
			_, err := service.UpdateUserRoleAndName(ctx, admin.ID, user.ID, "", "admin")
			Expect(err).To(MatchError(domainerrors.ErrNameAndRoleRequired))
		})

		It("rejeita role desconhecido", func() {
			admin := makeAdmin()
			_, err := service.UpdateUserRoleAndName(ctx, admin.ID, user.ID, "Ana", "superuser")
			Expect(err).To(MatchError(domainerrors.ErrInvalidRole))
		})

		It("retorna NotFound para alvo inexistente", func() {
			admin := makeAdmin()
			_, err := service.UpdateUserRoleAndName(ctx, admin.ID, 9999, "Ana", "admin")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("promove o usuário", func() {
			admin := makeAdmin()
			updated, err := service.UpdateUserRoleAndName(ctx, admin.ID, user.ID, "Ana Admin", "admin")
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Role).To(Equal(entities.RoleAdmin))
			Expect(updated.Name).To(Equal("Ana Admin"))
		})
	})

	Describe("EnsureAdmin", func() {
		It("promove usuário existente sem trocar a senha", func() {
			promoted, created, err := service.EnsureAdmin(ctx, "", "ana@example.com", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(promoted.Role).To(Equal(entities.RoleAdmin))
			Expect(promoted.Name).To(Equal("Ana"))

			_, err = auth.Login(ctx, "ana@example.com", "segredo123")
			Expect(err).NotTo(HaveOccurred())
		})

		It("exige senha para um novo admin", func() {
			_, _, err := service.EnsureAdmin(ctx, "Novo", "novo@example.com", "")
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})
})
