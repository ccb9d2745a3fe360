package services_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		e       *env
		service *services.AuthService
		ctx     context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		service = services.NewAuthService(e.users, e.uow, e.hasher, e.tokens, e.logger)
		ctx = context.Background()
	})

	register := func(email string) *services.AuthResult {
		result, err := service.Register(ctx, services.RegisterInput{Name: "Ana", Email: email, Password: "segredo123"})
		Expect(err).NotTo(HaveOccurred())
		return result
	}

	Describe("Register", func() {
		It("cria um visitante com preferências padrão e emite token", func() {
			result := register("Ana@Example.com")

			Expect(result.Token).NotTo(BeEmpty())
			Expect(result.User.ID).NotTo(BeZero())
			Expect(result.User.Email.String()).To(Equal("ana@example.com"))
			Expect(result.User.Role).To(Equal(entities.RoleVisitante))
			Expect(result.User.Settings).To(Equal(entities.DefaultSettings()))
			Expect(result.User.PasswordHash).NotTo(Equal("segredo123"))
		})

		It("o token carrega id e email do usuário", func() {
			result := register("ana@example.com")

			identity, err := service.Authenticate(result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(identity).To(Equal(entities.Identity{UserID: result.User.ID, Email: "ana@example.com"}))
		})

		It("rejeita email duplicado", func() {
			register("ana@example.com")

			_, err := service.Register(ctx, services.RegisterInput{Name: "Outra", Email: "ANA@example.com", Password: "x"})
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("rejeita email inválido", func() {
			_, err := service.Register(ctx, services.RegisterInput{Name: "Ana", Email: "invalido", Password: "x"})
			Expect(err).To(MatchError(domainerrors.ErrInvalidEmail))
		})

		It("rejeita nome vazio", func() {
			_, err := service.Register(ctx, services.RegisterInput{Name: "  ", Email: "a@example.com", Password: "x"})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})

		It("rejeita senha acima de 72 bytes mesmo com poucos caracteres", func() {
			password := strings.Repeat("é", 40)

			_, err := service.Register(ctx, services.RegisterInput{Name: "Ana", Email: "a@example.com", Password: password})
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			register("ana@example.com")
		})

		It("emite token com credenciais corretas", func() {
			result, err := service.Login(ctx, "ana@example.com", "segredo123")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Token).NotTo(BeEmpty())
			Expect(result.User.Role).To(Equal(entities.RoleVisitante))
		})

		It("falha sem token com senha errada", func() {
			result, err := service.Login(ctx, "ana@example.com", "errada")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
			Expect(result).To(BeNil())
		})

		It("falha com o mesmo erro para email desconhecido", func() {
			_, err := service.Login(ctx, "ninguem@example.com", "segredo123")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("Authenticate", func() {
		It("exige token", func() {
			_, err := service.Authenticate("")
			Expect(err).To(MatchError(domainerrors.ErrMissingToken))
		})

		It("rejeita token inválido", func() {
			_, err := service.Authenticate("abc.def.ghi")
			Expect(err).To(MatchError(domainerrors.ErrInvalidToken))
		})
	})
})
