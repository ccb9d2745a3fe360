package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/controle-financeiro-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/controle-financeiro-backend/internal/domain/errors"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/repositories"
	"github.com/rafabene/controle-financeiro-backend/internal/domain/valueobjects"
	"github.com/rafabene/controle-financeiro-backend/internal/services"
)

var _ = Describe("SavingService", func() {
	var (
		e        *env
		service  *services.SavingService
		ctx      context.Context
		owner    uint
		other    uint
		deadline time.Time
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		deadline = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		service = services.NewSavingService(e.savings, e.uow, e.logger)

		auth := services.NewAuthService(e.users, e.uow, e.hasher, e.tokens, e.logger)
		a, err := auth.Register(ctx, services.RegisterInput{Name: "Dono", Email: "dono@example.com", Password: "x"})
		Expect(err).NotTo(HaveOccurred())
		b, err := auth.Register(ctx, services.RegisterInput{Name: "Outro", Email: "outro@example.com", Password: "x"})
		Expect(err).NotTo(HaveOccurred())
		owner, other = a.User.ID, b.User.ID
	})

	create := func(name, target, category string) *entities.Saving {
		saving, err := service.Create(ctx, owner, services.CreateSavingInput{
			Name:         name,
			TargetAmount: decimal.RequireFromString(target),
			Deadline:     deadline,
			Category:     category,
		})
		Expect(err).NotTo(HaveOccurred())
		return saving
	}

	dec := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	It("cenário Trip: contribuições concluem a meta ao atingir o alvo", func() {
		trip := create("Trip", "1000.00", "travel")
		Expect(trip.Status).To(Equal(entities.SavingStatusEmAndamento))
		Expect(trip.CurrentAmount.IsZero()).To(BeTrue())

		trip, err := service.AddContribution(ctx, owner, trip.ID, dec("400.00"))
		Expect(err).NotTo(HaveOccurred())
		Expect(trip.CurrentAmount.StringFixed(2)).To(Equal("400.00"))
		Expect(trip.Status).To(Equal(entities.SavingStatusEmAndamento))

		trip, err = service.AddContribution(ctx, owner, trip.ID, dec("700.00"))
		Expect(err).NotTo(HaveOccurred())
		Expect(trip.CurrentAmount.StringFixed(2)).To(Equal("1100.00"))
		Expect(trip.Status).To(Equal(entities.SavingStatusConcluida))
	})

	It("contribuições com centavos não perdem precisão", func() {
		saving := create("Reserva", "1.00", "reserva")
		for _, amount := range []string{"0.10", "0.20"} {
			_, err := service.AddContribution(ctx, owner, saving.ID, dec(amount))
			Expect(err).NotTo(HaveOccurred())
		}

		page, err := service.List(ctx, owner, repositories.SavingFilters{Pagination: valueobjects.NewPagination(1, 10)})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Items[0].CurrentAmount.StringFixed(2)).To(Equal("0.30"))
	})

	It("rejeita contribuição não positiva", func() {
		saving := create("Reserva", "100", "reserva")
		_, err := service.AddContribution(ctx, owner, saving.ID, dec("-5"))
		Expect(err).To(MatchError(domainerrors.ErrValidation))
	})

	It("rejeita fração de centavo e mantém a meta em andamento", func() {
		trip := create("Trip", "1000.00", "travel")
		_, err := service.AddContribution(ctx, owner, trip.ID, dec("999.99"))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.AddContribution(ctx, owner, trip.ID, dec("0.005"))
		Expect(err).To(MatchError(domainerrors.ErrValidation))

		page, err := service.List(ctx, owner, repositories.SavingFilters{Pagination: valueobjects.NewPagination(1, 10)})
		Expect(err).NotTo(HaveOccurred())
		Expect(page.Items[0].CurrentAmount.StringFixed(2)).To(Equal("999.99"))
		Expect(page.Items[0].Status).To(Equal(entities.SavingStatusEmAndamento))
	})

	It("rejeita contribuição que ultrapassa o maior valor armazenável", func() {
		saving := create("Grande", entities.MaxAmount.StringFixed(2), "reserva")
		_, err := service.AddContribution(ctx, owner, saving.ID, entities.MaxAmount)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.AddContribution(ctx, owner, saving.ID, dec("0.01"))
		Expect(err).To(MatchError(domainerrors.ErrValidation))
		Expect(domainerrors.Detail(err)).To(Equal("currentAmount must be at most 9999999999.99"))
	})

	It("rejeita valor alvo não positivo", func() {
		_, err := service.Create(ctx, owner, services.CreateSavingInput{
			Name: "Zero", TargetAmount: decimal.Zero, Deadline: deadline, Category: "x",
		})
		Expect(err).To(MatchError(domainerrors.ErrValidation))
	})

	Describe("Update", func() {
		It("força concluida quando o valor atual alcança o alvo", func() {
			saving := create("Carro", "5000", "veiculo")
			cancelada := entities.SavingStatusCancelada

			updated, err := service.Update(ctx, owner, saving.ID, services.UpdateSavingInput{
				CurrentAmount: ptr(dec("5000")),
				Status:        &cancelada,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.SavingStatusConcluida))
		})

		It("usa o status pedido abaixo do alvo", func() {
			saving := create("Carro", "5000", "veiculo")
			cancelada := entities.SavingStatusCancelada

			updated, err := service.Update(ctx, owner, saving.ID, services.UpdateSavingInput{
				CurrentAmount: ptr(dec("100")),
				Status:        &cancelada,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.SavingStatusCancelada))
			Expect(updated.Name).To(Equal("Carro"))
		})

		It("reduzir o alvo abaixo do valor atual conclui a meta", func() {
			saving := create("Casa", "1000", "moradia")
			_, err := service.AddContribution(ctx, owner, saving.ID, dec("600"))
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.Update(ctx, owner, saving.ID, services.UpdateSavingInput{TargetAmount: ptr(dec("500"))})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.SavingStatusConcluida))
		})

		It("trata meta de outro usuário como inexistente", func() {
			saving := create("Carro", "5000", "veiculo")
			_, err := service.Update(ctx, other, saving.ID, services.UpdateSavingInput{Name: ptr("x")})
			Expect(err).To(MatchError(domainerrors.ErrSavingNotFound))

			_, err = service.AddContribution(ctx, other, saving.ID, dec("1"))
			Expect(err).To(MatchError(domainerrors.ErrSavingNotFound))

			Expect(service.Delete(ctx, other, saving.ID)).To(MatchError(domainerrors.ErrSavingNotFound))
		})
	})

	Describe("Delete", func() {
		It("apaga a meta", func() {
			saving := create("Carro", "5000", "veiculo")
			Expect(service.Delete(ctx, owner, saving.ID)).To(Succeed())
			Expect(service.Delete(ctx, owner, saving.ID)).To(MatchError(domainerrors.ErrSavingNotFound))
		})
	})

	Describe("Stats", func() {
		It("soma por categoria e conta apenas em andamento e concluídas", func() {
			create("Viagem", "1000", "lazer")
			show := create("Show", "200", "lazer")
			carro := create("Carro", "5000", "veiculo")

			_, err := service.AddContribution(ctx, owner, show.ID, dec("200"))
			Expect(err).NotTo(HaveOccurred())
			cancelada := entities.SavingStatusCancelada
			_, err = service.Update(ctx, owner, carro.ID, services.UpdateSavingInput{
				CurrentAmount: ptr(dec("50")),
				Status:        &cancelada,
			})
			Expect(err).NotTo(HaveOccurred())

			summary, err := service.Stats(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalSaved.StringFixed(2)).To(Equal("250.00"))
			Expect(summary.TotalTarget.StringFixed(2)).To(Equal("6200.00"))
			Expect(summary.Categories).To(HaveLen(2))
			Expect(summary.Categories["lazer"].Target.StringFixed(2)).To(Equal("1200.00"))
			Expect(summary.StatusCount).To(Equal(map[entities.SavingStatus]int{
				entities.SavingStatusEmAndamento: 1,
				entities.SavingStatusConcluida:   1,
			}))
		})
	})
})
