package handler

import (
	"testing"

	"fundtracker/app/middleware"
	m "fundtracker/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDetailHandler(t *testing.T) {

	app := fiber.New()
	middleware.SetupMiddleware(app)

	stg := &StorageMock{}
	tb := &TokenBlockerMock{}
	auth := NewAuthHandler(stg, stg, tb, "test-key")
	d := NewDetailHandler(stg, stg, auth)
	d.InitRoute(app)

	_, token := seedAccount(t, stg, auth, "analista@fundtracker.com", m.RoleAnalyst)

	t.Run("amortizações", func(t *testing.T) {

		t.Run("fallback de demonstração", func(t *testing.T) {
			stg.amortizations = nil

			var resp []amortizationResponse
			status, err := sendRequest(app, "/funds/1/amortizations", "GET", "", nil, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Len(t, resp, 4)
			assert.Equal(t, "1", resp[0].FundID)
			assert.Equal(t, "R$ 500.000,00", resp[0].AmountDisplay)
		})

		t.Run("dados remotos têm prioridade", func(t *testing.T) {
			stg.amortizations = []m.Amortization{{ID: "a1", FundID: "f1", Amount: 10000}}

			var resp []amortizationResponse
			status, err := sendRequest(app, "/funds/f1/amortizations", "GET", "", nil, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Len(t, resp, 1)
			assert.Equal(t, "R$ 10.000,00", resp[0].AmountDisplay)
		})

		t.Run("criação exige autenticação", func(t *testing.T) {
			param := AddAmortizationReq{Date: "2025-03-01", Amount: 10000}
			status, err := sendRequest(app, "/funds/f1/amortizations", "POST", "", param, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, status)
		})

		t.Run("criação", func(t *testing.T) {
			stg.amortizations = nil

			param := AddAmortizationReq{Date: "2025-03-01", Amount: 10000, QuotaReference: 1.05, PlPercentage: 2.5}
			var resp struct {
				Amortization amortizationResponse `json:"amortization"`
				Notice
			}
			status, err := sendRequest(app, "/funds/f1/amortizations", "POST", token, param, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusCreated, status)
			assert.Equal(t, "Amortização adicionada", resp.Title)
			assert.Equal(t, "f1", resp.Amortization.FundID)
			assert.Equal(t, "2025-03-01", resp.Amortization.Date)
			assert.NotEmpty(t, resp.Amortization.ID)
			assert.Len(t, stg.amortizations, 1)
		})

		t.Run("data inválida", func(t *testing.T) {
			param := AddAmortizationReq{Date: "03/2025", Amount: 10000}
			status, err := sendRequest(app, "/funds/f1/amortizations", "POST", token, param, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	})

	t.Run("integralizações", func(t *testing.T) {

		t.Run("fallback de demonstração", func(t *testing.T) {
			stg.integralizations = nil

			var resp []integralizationResponse
			status, err := sendRequest(app, "/funds/1/integralizations", "GET", "", nil, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Len(t, resp, 4)
		})

		t.Run("criação", func(t *testing.T) {
			param := AddIntegralizationReq{Date: "2025-02-01", Amount: 50000, QuotasAcquired: 40.5, QuotaValue: 1.2345}
			var resp struct {
				Integralization integralizationResponse `json:"integralization"`
				Notice
			}
			status, err := sendRequest(app, "/funds/f1/integralizations", "POST", token, param, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusCreated, status)
			assert.Equal(t, "Integralização adicionada", resp.Title)
			assert.Equal(t, 40.5, resp.Integralization.QuotasAcquired)
		})
	})

	t.Run("registros do comitê", func(t *testing.T) {

		t.Run("fallback de demonstração", func(t *testing.T) {
			stg.rcis = nil

			var resp []rciResponse
			status, err := sendRequest(app, "/funds/1/rci", "GET", "", nil, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Len(t, resp, 4)
		})

		t.Run("decisão padrão em análise", func(t *testing.T) {
			param := AddRCIReq{Date: "2025-01-20", Agenda: "Aporte em CRI"}
			var resp struct {
				RCI rciResponse `json:"rci"`
				Notice
			}
			status, err := sendRequest(app, "/funds/f1/rci", "POST", token, param, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusCreated, status)
			assert.Equal(t, "Em análise", resp.RCI.Decision)
		})

		t.Run("decisão fora da lista", func(t *testing.T) {
			param := AddRCIReq{Date: "2025-01-20", Agenda: "Aporte", Decision: "Talvez"}
			status, err := sendRequest(app, "/funds/f1/rci", "POST", token, param, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	})

	t.Run("assembleias", func(t *testing.T) {

		t.Run("fallback de demonstração", func(t *testing.T) {
			stg.agqs = nil

			var resp []agqResponse
			status, err := sendRequest(app, "/funds/1/agq", "GET", "", nil, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Len(t, resp, 4)
		})

		t.Run("tipo e status padrão", func(t *testing.T) {
			param := AddAGQReq{Date: "2025-04-10", Agenda: "Aprovação de contas"}
			var resp struct {
				AGQ agqResponse `json:"agq"`
				Notice
			}
			status, err := sendRequest(app, "/funds/f1/agq", "POST", token, param, &resp)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusCreated, status)
			assert.Equal(t, "Ordinária", resp.AGQ.Type)
			assert.Equal(t, "Agendada", resp.AGQ.Status)
		})

		t.Run("quórum acima de 100", func(t *testing.T) {
			param := AddAGQReq{Date: "2025-04-10", Agenda: "Aprovação", Quorum: 120}
			status, err := sendRequest(app, "/funds/f1/agq", "POST", token, param, nil)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, status)
		})
	})

	t.Run("ordenação preservada do armazenamento", func(t *testing.T) {
		stg.agqs = []m.AGQ{
			{ID: "g2", FundID: "f1", Date: datatypes.Date{}, Type: m.AGQOrdinary, Status: m.AGQHeld},
		}

		var resp []agqResponse
		status, err := sendRequest(app, "/funds/f1/agq", "GET", "", nil, &resp)

		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, resp, 1)
		assert.Equal(t, "g2", resp[0].ID)
	})
}
