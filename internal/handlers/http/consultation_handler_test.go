package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/agendasaude-backend/internal/handlers/dto"
)

var _ = Describe("ConsultationHandler", func() {
	var (
		app          *testApp
		professional dto.ProfessionalResponse
		tomorrow     string
	)

	BeforeEach(func() {
		app = newTestApp()

		w := app.authed(http.MethodPost, "/api/v1/professionals", map[string]string{"name_social": "Alex", "profession": "Psicólogo"})
		Expect(w.Code).To(Equal(http.StatusCreated))
		professional = decode[dto.ProfessionalResponse](w)

		tomorrow = time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second).Format(time.RFC3339)
	})

	schedule := func(datetime, professionalID string) *httptest.ResponseRecorder {
		return app.authed(http.MethodPost, "/api/v1/consultations", map[string]string{
			"datetime":     datetime,
			"professional": professionalID,
			"notes":        "Primeira consulta",
		})
	}

	It("cenário completo de agendamento", func() {
		w := schedule(tomorrow, professional.ID)
		Expect(w.Code).To(Equal(http.StatusCreated), w.Body.String())
		created := decode[dto.ConsultationResponse](w)
		Expect(created.Professional).To(Equal(professional.ID))
		Expect(created.Status).To(Equal("scheduled"))
		Expect(created.Datetime.Format(time.RFC3339)).To(Equal(tomorrow))

		w = schedule(tomorrow, professional.ID)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		problem := decode[problemBody](w)
		Expect(problem.Errors).To(HaveKeyWithValue("non_field_errors",
			ConsistOf("a consultation is already scheduled for this professional at this time.")))

		yesterday := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
		w = schedule(yesterday, professional.ID)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		problem = decode[problemBody](w)
		Expect(problem.Errors).To(HaveKeyWithValue("datetime", ConsistOf("datetime cannot be in the past.")))

		w = app.authed(http.MethodDelete, "/api/v1/professionals/"+professional.ID, nil)
		Expect(w.Code).To(Equal(http.StatusNoContent))

		w = app.authed(http.MethodGet, "/api/v1/consultations/professional/"+professional.ID, nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(decode[[]dto.ConsultationResponse](w)).To(BeEmpty())

		w = app.authed(http.MethodGet, "/api/v1/consultations/"+created.ID, nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	Describe("POST /api/v1/consultations", func() {
		It("rejeita profissional inexistente com erro no campo", func() {
			w := schedule(tomorrow, "00000000-0000-0000-0000-000000000000")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			problem := decode[problemBody](w)
			Expect(problem.Errors).To(HaveKeyWithValue("professional", ConsistOf("referenced professional does not exist.")))
		})

		It("reporta horário passado e profissional inexistente juntos", func() {
			w := schedule(time.Now().Add(-time.Hour).UTC().Format(time.RFC3339), "nao-existe")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			problem := decode[problemBody](w)
			Expect(problem.Errors).To(HaveKey("datetime"))
			Expect(problem.Errors).To(HaveKey("professional"))
		})

		It("exige datetime e professional", func() {
			w := app.authed(http.MethodPost, "/api/v1/consultations", map[string]string{"notes": "x"})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			problem := decode[problemBody](w)
			Expect(problem.Errors).To(HaveKeyWithValue("datetime", ConsistOf("This field is required.")))
			Expect(problem.Errors).To(HaveKeyWithValue("professional", ConsistOf("This field is required.")))
		})

		It("rejeita datetime em formato inválido", func() {
			w := schedule("amanhã às 10h", professional.ID)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			problem := decode[problemBody](w)
			Expect(problem.Errors).To(HaveKey("datetime"))
		})

		It("rejeita status desconhecido", func() {
			w := app.authed(http.MethodPost, "/api/v1/consultations", map[string]string{
				"datetime":     tomorrow,
				"professional": professional.ID,
				"status":       "perdida",
			})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			problem := decode[problemBody](w)
			Expect(problem.Errors).To(HaveKeyWithValue("status", ConsistOf(`"perdida" is not a valid status.`)))
		})
	})

	Describe("com uma consulta agendada", func() {
		var consultation dto.ConsultationResponse

		BeforeEach(func() {
			w := schedule(tomorrow, professional.ID)
			Expect(w.Code).To(Equal(http.StatusCreated))
			consultation = decode[dto.ConsultationResponse](w)
		})

		It("lista e filtra por profissional", func() {
			other := app.authed(http.MethodPost, "/api/v1/professionals", map[string]string{"name_social": "Bia", "profession": "Nutricionista"})
			otherID := decode[dto.ProfessionalResponse](other).ID
			Expect(schedule(tomorrow, otherID).Code).To(Equal(http.StatusCreated))

			all := decode[[]dto.ConsultationResponse](app.authed(http.MethodGet, "/api/v1/consultations", nil))
			Expect(all).To(HaveLen(2))

			filtered := decode[[]dto.ConsultationResponse](app.authed(http.MethodGet, "/api/v1/consultations?professional="+otherID, nil))
			Expect(filtered).To(HaveLen(1))
			Expect(filtered[0].Professional).To(Equal(otherID))
		})

		It("PATCH de notas não acusa duplicidade consigo mesma", func() {
			w := app.authed(http.MethodPatch, "/api/v1/consultations/"+consultation.ID, map[string]string{"notes": "Trazer exames"})

			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())
			Expect(decode[dto.ConsultationResponse](w).Notes).To(Equal("Trazer exames"))
		})

		It("PATCH de status e filtro por status", func() {
			w := app.authed(http.MethodPatch, "/api/v1/consultations/"+consultation.ID, map[string]string{"status": "cancelled"})
			Expect(w.Code).To(Equal(http.StatusOK))

			path := "/api/v1/consultations/professional/" + professional.ID
			Expect(decode[[]dto.ConsultationResponse](app.authed(http.MethodGet, path+"?status=cancelled", nil))).To(HaveLen(1))
			Expect(decode[[]dto.ConsultationResponse](app.authed(http.MethodGet, path+"?status=scheduled", nil))).To(BeEmpty())

			w = app.authed(http.MethodGet, path+"?status=perdida", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("PATCH para horário ocupado retorna erro de duplicidade", func() {
			later := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second).Format(time.RFC3339)
			Expect(schedule(later, professional.ID).Code).To(Equal(http.StatusCreated))

			w := app.authed(http.MethodPatch, "/api/v1/consultations/"+consultation.ID, map[string]string{"datetime": later})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decode[problemBody](w).Errors).To(HaveKey("non_field_errors"))
		})

		It("PUT exige datetime e professional", func() {
			w := app.authed(http.MethodPut, "/api/v1/consultations/"+consultation.ID, map[string]string{"notes": "x"})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("PUT substitui os campos", func() {
			later := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second).Format(time.RFC3339)
			w := app.authed(http.MethodPut, "/api/v1/consultations/"+consultation.ID, map[string]string{
				"datetime":     later,
				"professional": professional.ID,
				"notes":        "Remarcada",
			})

			Expect(w.Code).To(Equal(http.StatusOK), w.Body.String())
			updated := decode[dto.ConsultationResponse](w)
			Expect(updated.Datetime.Format(time.RFC3339)).To(Equal(later))
			Expect(updated.Notes).To(Equal("Remarcada"))
		})

		It("DELETE retorna 204 e depois 404", func() {
			Expect(app.authed(http.MethodDelete, "/api/v1/consultations/"+consultation.ID, nil).Code).To(Equal(http.StatusNoContent))
			Expect(app.authed(http.MethodDelete, "/api/v1/consultations/"+consultation.ID, nil).Code).To(Equal(http.StatusNotFound))
			Expect(app.authed(http.MethodGet, "/api/v1/consultations/"+consultation.ID, nil).Code).To(Equal(http.StatusNotFound))
		})

		It("pagina a agenda do profissional", func() {
			later := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second).Format(time.RFC3339)
			Expect(schedule(later, professional.ID).Code).To(Equal(http.StatusCreated))

			w := app.authed(http.MethodGet, "/api/v1/consultations/professional/"+professional.ID+"?page=1&page_size=1", nil)

			page := decode[dto.PageResponse[dto.ConsultationResponse]](w)
			Expect(page.Count).To(BeEquivalentTo(2))
			Expect(page.Results).To(HaveLen(1))
			Expect(page.Results[0].ID).To(Equal(consultation.ID))
		})
	})

	Describe("GET /api/v1/consultations/professional/:professional_id", func() {
		It("retorna lista vazia para profissional desconhecido", func() {
			for _, id := range []string{"00000000-0000-0000-0000-000000000000", "nao-e-uuid"} {
				w := app.authed(http.MethodGet, "/api/v1/consultations/professional/"+id, nil)
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
			}
		})
	})

	Describe("GET /api/v1/ws/agenda", func() {
		It("recusa conexão sem token", func() {
			w := app.do(http.MethodGet, "/api/v1/ws/agenda", nil, "")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("entrega eventos de agendamento aos assinantes", func() {
			server := httptest.NewServer(app.router)
			DeferCleanup(server.Close)

			url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/ws/agenda?access_token=" + app.access
			conn, _, err := websocket.DefaultDialer.Dial(url, nil)
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(func() { _ = conn.Close() })

			Eventually(app.hub.ClientCount).Should(Equal(1))

			w := schedule(tomorrow, professional.ID)
			Expect(w.Code).To(Equal(http.StatusCreated))
			created := decode[dto.ConsultationResponse](w)

			Expect(conn.SetReadDeadline(time.Now().Add(2 * time.Second))).To(Succeed())
			var event struct {
				Type string                   `json:"type"`
				Data dto.ConsultationResponse `json:"data"`
			}
			Expect(conn.ReadJSON(&event)).To(Succeed())
			Expect(event.Type).To(Equal("consultation.created"))
			Expect(event.Data.ID).To(Equal(created.ID))
		})
	})
})
