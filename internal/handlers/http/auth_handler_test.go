package http_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/agendasaude-backend/internal/handlers/dto"
)

var _ = Describe("AuthHandler", func() {
	var app *testApp

	BeforeEach(func() {
		app = newTestApp()
	})

	Describe("POST /api/v1/auth/token", func() {
		It("emite access e refresh", func() {
			Expect(app.access).NotTo(BeEmpty())
			Expect(app.refresh).NotTo(BeEmpty())
		})

		It("rejeita credenciais inválidas com 401", func() {
			w := app.do(http.MethodPost, "/api/v1/auth/token", map[string]string{"username": adminUsername, "password": "errada"}, "")

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			problem := decode[problemBody](w)
			Expect(problem.Detail).To(Equal("No active account found with the given credentials."))
		})

		It("exige usuário e senha", func() {
			w := app.do(http.MethodPost, "/api/v1/auth/token", map[string]string{}, "")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			problem := decode[problemBody](w)
			Expect(problem.Errors).To(HaveKey("username"))
			Expect(problem.Errors).To(HaveKey("password"))
		})
	})

	Describe("POST /api/v1/auth/token/refresh", func() {
		It("emite novo token de acesso utilizável", func() {
			w := app.do(http.MethodPost, "/api/v1/auth/token/refresh", map[string]string{"refresh": app.refresh}, "")
			Expect(w.Code).To(Equal(http.StatusOK))

			access := decode[dto.AccessTokenResponse](w).Access
			Expect(app.do(http.MethodGet, "/api/v1/professionals", nil, access).Code).To(Equal(http.StatusOK))
		})

		It("rejeita token de acesso no lugar do refresh", func() {
			w := app.do(http.MethodPost, "/api/v1/auth/token/refresh", map[string]string{"refresh": app.access}, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("rotas protegidas", func() {
		It("retornam 401 sem token", func() {
			for _, path := range []string{"/api/v1/professionals", "/api/v1/consultations"} {
				w := app.do(http.MethodGet, path, nil, "")
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Header().Get("Content-Type")).To(HavePrefix("application/problem+json"))
			}
		})

		It("retornam 401 com token malformado", func() {
			w := app.do(http.MethodGet, "/api/v1/professionals", nil, "nao-e-um-jwt")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejeitam refresh token como bearer", func() {
			w := app.do(http.MethodGet, "/api/v1/professionals", nil, app.refresh)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejeitam token de usuário removido", func() {
			user, err := app.userRepo.FindByUsername(context.Background(), adminUsername)
			Expect(err).NotTo(HaveOccurred())
			Expect(app.userRepo.Delete(context.Background(), user.ID)).To(Succeed())

			w := app.authed(http.MethodGet, "/api/v1/professionals", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode[problemBody](w).Detail).To(Equal("User not found."))
		})

		It("não exigem token para health", func() {
			w := app.do(http.MethodGet, "/health", nil, "")
			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})

	Describe("POST /api/v1/auth/logout", func() {
		It("revoga o token apresentado", func() {
			w := app.authed(http.MethodPost, "/api/v1/auth/logout", nil)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = app.authed(http.MethodGet, "/api/v1/professionals", nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decode[problemBody](w).Detail).To(Equal("Token has been revoked."))
		})

		It("exige autenticação", func() {
			w := app.do(http.MethodPost, "/api/v1/auth/logout", nil, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
