package postgres_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/agendasaude-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/domain/repositories"
	"github.com/rafabene/agendasaude-backend/internal/domain/valueobjects"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/agendasaude-backend/internal/testutil"
)

var _ = Describe("Repositórios GORM", func() {
	var (
		ctx              context.Context
		db               *gorm.DB
		professionalRepo repositories.ProfessionalRepository
		consultationRepo repositories.ConsultationRepository
		userRepo         repositories.UserRepository
		uow              ports.UnitOfWork
		professional     *entities.Professional
		slot             time.Time
	)

	BeforeEach(func() {
		var err error
		ctx = context.Background()
		db, err = testutil.NewInMemoryDatabase()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() { _ = postgres.Close(db) })

		professionalRepo = postgres.NewProfessionalRepository(db)
		consultationRepo = postgres.NewConsultationRepository(db)
		userRepo = postgres.NewUserRepository(db)
		uow = postgres.NewUnitOfWork(db)

		professional = &entities.Professional{NameSocial: "Alex", Profession: "Psicólogo", Address: "Rua A, 123", Contact: "alex@exemplo.com"}
		Expect(professionalRepo.Create(ctx, professional)).To(Succeed())

		slot = time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	})

	Describe("ProfessionalRepository", func() {
		It("gera ID e recupera todos os campos", func() {
			Expect(professional.ID).NotTo(BeEmpty())

			found, err := professionalRepo.FindByID(ctx, professional.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
			Expect(found.NameSocial).To(Equal("Alex"))
			Expect(found.Profession).To(Equal("Psicólogo"))
			Expect(found.Address).To(Equal("Rua A, 123"))
			Expect(found.Contact).To(Equal("alex@exemplo.com"))
		})

		It("retorna nil para ID inexistente ou malformado", func() {
			found, err := professionalRepo.FindByID(ctx, uuid.NewString())
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())

			found, err = professionalRepo.FindByID(ctx, "9999")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("filtra por busca e pagina", func() {
			Expect(professionalRepo.Create(ctx, &entities.Professional{NameSocial: "Bruna", Profession: "Médica"})).To(Succeed())
			Expect(professionalRepo.Create(ctx, &entities.Professional{NameSocial: "Carla", Profession: "Enfermeira"})).To(Succeed())

			found, total, err := professionalRepo.List(ctx, repositories.ProfessionalFilters{Search: "MÉD"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(found[0].NameSocial).To(Equal("Bruna"))

			page, total, err := professionalRepo.List(ctx, repositories.ProfessionalFilters{
				Pagination: repositories.Pagination{Page: 2, PageSize: 2},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(3))
			Expect(page).To(HaveLen(1))
		})

		It("trata % e _ da busca como caracteres literais", func() {
			Expect(professionalRepo.Create(ctx, &entities.Professional{NameSocial: "Dani", Profession: "Nutricionista", Contact: "dani_100%@exemplo.com"})).To(Succeed())

			found, total, err := professionalRepo.List(ctx, repositories.ProfessionalFilters{Search: "%"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(found[0].NameSocial).To(Equal("Dani"))

			_, total, err = professionalRepo.List(ctx, repositories.ProfessionalFilters{Search: "_"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))

			// "a_e" sem escape casaria com "Alex"
			_, total, err = professionalRepo.List(ctx, repositories.ProfessionalFilters{Search: "a_e"})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})

		It("retorna ErrProfessionalNotFound ao atualizar ou remover ID inexistente", func() {
			missing := &entities.Professional{ID: uuid.NewString(), NameSocial: "X", Profession: "Y"}
			Expect(professionalRepo.Update(ctx, missing)).To(MatchError(domainerrors.ErrProfessionalNotFound))
			Expect(professionalRepo.Delete(ctx, missing.ID)).To(MatchError(domainerrors.ErrProfessionalNotFound))
		})

		It("remove as consultas em cascata pela foreign key", func() {
			Expect(consultationRepo.Create(ctx, &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot})).To(Succeed())

			Expect(professionalRepo.Delete(ctx, professional.ID)).To(Succeed())

			remaining, total, err := consultationRepo.List(ctx, repositories.ConsultationFilters{ProfessionalID: professional.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
			Expect(remaining).To(BeEmpty())
		})
	})

	Describe("ConsultationRepository", func() {
		It("usa status agendado por padrão", func() {
			c := &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot, Notes: "Primeira consulta"}
			Expect(consultationRepo.Create(ctx, c)).To(Succeed())

			found, err := consultationRepo.FindByID(ctx, c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Status).To(Equal(valueobjects.StatusScheduled))
			Expect(found.ScheduledAt.Equal(slot)).To(BeTrue())
			Expect(found.Notes).To(Equal("Primeira consulta"))
		})

		It("o índice único rejeita o mesmo horário para o mesmo profissional", func() {
			Expect(consultationRepo.Create(ctx, &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot})).To(Succeed())

			err := consultationRepo.Create(ctx, &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot})
			ve, ok := domainerrors.AsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(ve.Fields).To(HaveKey(domainerrors.NonFieldErrorsKey))
		})

		It("a foreign key rejeita profissional inexistente", func() {
			err := consultationRepo.Create(ctx, &entities.Consultation{ProfessionalID: uuid.NewString(), ScheduledAt: slot})
			ve, ok := domainerrors.AsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(ve.Fields).To(HaveKey("professional"))
		})

		It("FindBySlot ignora a própria consulta", func() {
			c := &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot}
			Expect(consultationRepo.Create(ctx, c)).To(Succeed())

			found, err := consultationRepo.FindBySlot(ctx, professional.ID, slot, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())

			found, err = consultationRepo.FindBySlot(ctx, professional.ID, slot, c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("filtra por profissional e status", func() {
			other := &entities.Professional{NameSocial: "Bruna", Profession: "Médica"}
			Expect(professionalRepo.Create(ctx, other)).To(Succeed())

			Expect(consultationRepo.Create(ctx, &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot})).To(Succeed())
			Expect(consultationRepo.Create(ctx, &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot.Add(time.Hour), Status: valueobjects.StatusCancelled})).To(Succeed())
			Expect(consultationRepo.Create(ctx, &entities.Consultation{ProfessionalID: other.ID, ScheduledAt: slot})).To(Succeed())

			all, total, err := consultationRepo.List(ctx, repositories.ConsultationFilters{ProfessionalID: professional.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(2))
			Expect(all[0].ScheduledAt.Before(all[1].ScheduledAt)).To(BeTrue())

			cancelled := valueobjects.StatusCancelled
			filtered, total, err := consultationRepo.List(ctx, repositories.ConsultationFilters{ProfessionalID: professional.ID, Status: &cancelled})
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeEquivalentTo(1))
			Expect(filtered[0].IsCancelled()).To(BeTrue())
		})

		It("atualiza e remove", func() {
			c := &entities.Consultation{ProfessionalID: professional.ID, ScheduledAt: slot, Notes: "Antiga"}
			Expect(consultationRepo.Create(ctx, c)).To(Succeed())

			c.Notes = "Atualizada"
			c.Status = valueobjects.StatusCompleted
			Expect(consultationRepo.Update(ctx, c)).To(Succeed())

			found, err := consultationRepo.FindByID(ctx, c.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Notes).To(Equal("Atualizada"))
			Expect(found.Status).To(Equal(valueobjects.StatusCompleted))

			Expect(consultationRepo.Delete(ctx, c.ID)).To(Succeed())
			Expect(consultationRepo.Delete(ctx, c.ID)).To(MatchError(domainerrors.ErrConsultationNotFound))
		})
	})

	Describe("UnitOfWork", func() {
		It("desfaz as escritas quando a função retorna erro", func() {
			err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
				if _, err := consultationRepo.DeleteByProfessional(txCtx, professional.ID); err != nil {
					return err
				}
				if err := professionalRepo.Delete(txCtx, professional.ID); err != nil {
					return err
				}
				return domainerrors.ErrUnauthorized
			})
			Expect(err).To(MatchError(domainerrors.ErrUnauthorized))

			found, err := professionalRepo.FindByID(ctx, professional.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).NotTo(BeNil())
		})
	})

	Describe("UserRepository", func() {
		It("ignora usuários com soft delete", func() {
			user := &entities.User{Username: "tester", PasswordHash: "hash"}
			Expect(userRepo.Create(ctx, user)).To(Succeed())

			found, err := userRepo.FindByUsername(ctx, "tester")
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(user.ID))

			Expect(userRepo.Delete(ctx, user.ID)).To(Succeed())

			found, err = userRepo.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})
})
