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

var _ = Describe("TransactionService", func() {
	var (
		e       *env
		service *services.TransactionService
		ctx     context.Context
		owner   uint
		other   uint
		now     time.Time
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
		now = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)
		service = services.NewTransactionService(e.transactions, e.logger).WithClock(func() time.Time { return now })

		auth := services.NewAuthService(e.users, e.uow, e.hasher, e.tokens, e.logger)
		a, err := auth.Register(ctx, services.RegisterInput{Name: "Dono", Email: "dono@example.com", Password: "x"})
		Expect(err).NotTo(HaveOccurred())
		b, err := auth.Register(ctx, services.RegisterInput{Name: "Outro", Email: "outro@example.com", Password: "x"})
		Expect(err).NotTo(HaveOccurred())
		owner, other = a.User.ID, b.User.ID
	})

	input := func(typ entities.TransactionType, amount string, date time.Time) services.TransactionInput {
		return services.TransactionInput{
			Description: "Lançamento " + string(typ),
			Amount:      decimal.RequireFromString(amount),
			Type:        typ,
			Category:    "geral",
			Date:        date,
		}
	}

	Describe("Create", func() {
		It("usa pendente quando o status não é informado", func() {
			tx, err := service.Create(ctx, owner, input(entities.TransactionTypeReceita, "100.00", now))
			Expect(err).NotTo(HaveOccurred())
			Expect(tx.ID).NotTo(BeZero())
			Expect(tx.Status).To(Equal(entities.TransactionStatusPendente))
		})

		It("rejeita valor não positivo", func() {
			_, err := service.Create(ctx, owner, input(entities.TransactionTypeReceita, "0", now))
			Expect(err).To(MatchError(domainerrors.ErrValidation))
			Expect(domainerrors.Detail(err)).To(Equal("amount must be greater than zero"))
		})

		It("rejeita mais de duas casas decimais e valores acima do teto", func() {
			for _, amount := range []string{"10.005", "10000000000"} {
				_, err := service.Create(ctx, owner, input(entities.TransactionTypeDespesa, amount, now))
				Expect(err).To(MatchError(domainerrors.ErrValidation), amount)
			}
		})

		It("rejeita tipo inválido", func() {
			_, err := service.Create(ctx, owner, input("investimento", "10", now))
			Expect(err).To(MatchError(domainerrors.ErrValidation))
		})
	})

	Describe("Stats", func() {
		It("calcula totais e mês corrente", func() {
			_, err := service.Create(ctx, owner, input(entities.TransactionTypeReceita, "500.00", now))
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(ctx, owner, input(entities.TransactionTypeDespesa, "200.00", now.AddDate(0, 0, -5)))
			Expect(err).NotTo(HaveOccurred())

			stats, err := service.Stats(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalIncome.StringFixed(2)).To(Equal("500.00"))
			Expect(stats.TotalExpense.StringFixed(2)).To(Equal("200.00"))
			Expect(stats.Balance.StringFixed(2)).To(Equal("300.00"))
			Expect(stats.MonthlyIncome.StringFixed(2)).To(Equal("500.00"))
			Expect(stats.MonthlyExpense.StringFixed(2)).To(Equal("200.00"))
			Expect(stats.MonthlyBalance.StringFixed(2)).To(Equal("300.00"))
		})

		It("exclui do mês transações de outros meses", func() {
			_, err := service.Create(ctx, owner, input(entities.TransactionTypeDespesa, "80.00", time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC)))
			Expect(err).NotTo(HaveOccurred())
			_, err = service.Create(ctx, owner, input(entities.TransactionTypeDespesa, "20.00", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
			Expect(err).NotTo(HaveOccurred())

			stats, err := service.Stats(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalExpense.StringFixed(2)).To(Equal("100.00"))
			Expect(stats.MonthlyExpense.IsZero()).To(BeTrue())
			Expect(stats.Balance.StringFixed(2)).To(Equal("-100.00"))
		})

		It("retorna zero sem transações", func() {
			stats, err := service.Stats(ctx, owner)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalIncome.IsZero()).To(BeTrue())
			Expect(stats.MonthlyBalance.IsZero()).To(BeTrue())
		})
	})

	Describe("CurrentMonth", func() {
		It("vai do primeiro dia do mês ao primeiro dia do mês seguinte", func() {
			period := services.CurrentMonth(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC))
			Expect(period.From).To(Equal(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
			Expect(period.To).To(Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
		})
	})

	Describe("Update", func() {
		It("substitui os campos e mantém o status quando omitido", func() {
			concluida := entities.TransactionStatusConcluida
			in := input(entities.TransactionTypeDespesa, "50.00", now)
			in.Status = &concluida
			in.Observations = ptr("nota")
			tx, err := service.Create(ctx, owner, in)
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.Update(ctx, owner, tx.ID, input(entities.TransactionTypeReceita, "75.50", now))
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Type).To(Equal(entities.TransactionTypeReceita))
			Expect(updated.Amount.StringFixed(2)).To(Equal("75.50"))
			Expect(updated.Status).To(Equal(entities.TransactionStatusConcluida))
			Expect(updated.Observations).To(BeNil())
		})

		It("não deixa outro usuário alterar", func() {
			tx, err := service.Create(ctx, owner, input(entities.TransactionTypeDespesa, "50.00", now))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Update(ctx, other, tx.ID, input(entities.TransactionTypeDespesa, "1.00", now))
			Expect(err).To(MatchError(domainerrors.ErrTransactionNotFound))
		})
	})

	Describe("Delete", func() {
		It("apaga a transação do dono", func() {
			tx, err := service.Create(ctx, owner, input(entities.TransactionTypeDespesa, "50.00", now))
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, other, tx.ID)).To(MatchError(domainerrors.ErrTransactionNotFound))
			Expect(service.Delete(ctx, owner, tx.ID)).To(Succeed())
			Expect(service.Delete(ctx, owner, tx.ID)).To(MatchError(domainerrors.ErrTransactionNotFound))
		})
	})

	Describe("List", func() {
		It("pagina 25 registros em páginas de 10", func() {
			for i := 0; i < 25; i++ {
				_, err := service.Create(ctx, owner, input(entities.TransactionTypeDespesa, "1.00", now.AddDate(0, 0, -i)))
				Expect(err).NotTo(HaveOccurred())
			}

			page, err := service.List(ctx, owner, repositories.TransactionFilters{Pagination: valueobjects.NewPagination(2, 10)})
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Items).To(HaveLen(10))
			Expect(page.Total).To(Equal(int64(25)))
			Expect(page.TotalPages()).To(Equal(3))
			Expect(page.Items[0].Date).To(Equal(now.AddDate(0, 0, -10)))

			others, err := service.List(ctx, other, repositories.TransactionFilters{Pagination: valueobjects.NewPagination(1, 10)})
			Expect(err).NotTo(HaveOccurred())
			Expect(others.Total).To(BeZero())
		})
	})
})
