package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/rafabene/agendasaude-backend/internal/domain/errors"
	"github.com/rafabene/agendasaude-backend/internal/domain/ports"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/cache"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/config"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/logging"
	"github.com/rafabene/agendasaude-backend/internal/infrastructure/security"
	"github.com/rafabene/agendasaude-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		ctx      context.Context
		userRepo *fakeUserRepo
		tokens   *security.JWTService
		service  *services.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()
		userRepo = newFakeUserRepo()
		tokens = security.NewJWTService(config.JWTConfig{
			Secret:        "segredo-de-teste",
			AccessExpiry:  5 * time.Minute,
			RefreshExpiry: time.Hour,
		})
		service = services.NewAuthService(
			userRepo,
			tokens,
			security.NewBcryptHasher(bcrypt.MinCost),
			cache.NewMemoryTokenDenylist(),
			logging.NewNopLogger(),
		)

		created, err := service.EnsureUser(ctx, "admin", "senha-forte")
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())
	})

	Describe("EnsureUser", func() {
		It("é idempotente", func() {
			created, err := service.EnsureUser(ctx, "admin", "outra-senha")

			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())
			Expect(userRepo.items).To(HaveLen(1))
		})
	})

	Describe("ObtainToken", func() {
		It("emite access e refresh para credenciais válidas", func() {
			pair, err := service.ObtainToken(ctx, "admin", "senha-forte")

			Expect(err).NotTo(HaveOccurred())
			Expect(pair.Access).NotTo(BeEmpty())
			Expect(pair.Refresh).NotTo(BeEmpty())
			Expect(pair.Access).NotTo(Equal(pair.Refresh))
		})

		It("rejeita senha errada", func() {
			_, err := service.ObtainToken(ctx, "admin", "errada")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})

		It("rejeita usuário desconhecido", func() {
			_, err := service.ObtainToken(ctx, "ninguem", "senha-forte")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("Authenticate", func() {
		var pair *services.TokenPair

		BeforeEach(func() {
			var err error
			pair, err = service.ObtainToken(ctx, "admin", "senha-forte")
			Expect(err).NotTo(HaveOccurred())
		})

		It("aceita token de acesso válido", func() {
			user, claims, err := service.Authenticate(ctx, pair.Access)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Username).To(Equal("admin"))
			Expect(claims.Type).To(Equal(ports.AccessToken))
		})

		It("rejeita token de renovação como acesso", func() {
			_, _, err := service.Authenticate(ctx, pair.Refresh)
			Expect(err).To(MatchError(domainerrors.ErrInvalidToken))
		})

		It("rejeita token malformado", func() {
			_, _, err := service.Authenticate(ctx, "nao-e-um-jwt")
			Expect(services.IsAuthError(err)).To(BeTrue())
		})

		It("rejeita token de usuário removido", func() {
			user, _, err := service.Authenticate(ctx, pair.Access)
			Expect(err).NotTo(HaveOccurred())
			Expect(userRepo.Delete(ctx, user.ID)).To(Succeed())

			_, _, err = service.Authenticate(ctx, pair.Access)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})

		It("rejeita token revogado no logout", func() {
			_, claims, err := service.Authenticate(ctx, pair.Access)
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Logout(ctx, claims)).To(Succeed())

			_, _, err = service.Authenticate(ctx, pair.Access)
			Expect(err).To(MatchError(domainerrors.ErrTokenRevoked))
		})
	})

	Describe("RefreshToken", func() {
		It("emite novo token de acesso", func() {
			pair, err := service.ObtainToken(ctx, "admin", "senha-forte")
			Expect(err).NotTo(HaveOccurred())

			access, err := service.RefreshToken(ctx, pair.Refresh)
			Expect(err).NotTo(HaveOccurred())

			_, _, err = service.Authenticate(ctx, access)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejeita token de acesso como refresh", func() {
			pair, err := service.ObtainToken(ctx, "admin", "senha-forte")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.RefreshToken(ctx, pair.Access)
			Expect(err).To(MatchError(domainerrors.ErrInvalidToken))
		})
	})
})
