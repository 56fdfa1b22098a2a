package handler

import (
	"fmt"
	"os"

	"fundtracker/internal/demo"
	m "fundtracker/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// DetailHandler serves the four child collections of a fund: amortizations,
// integralizations, committee decisions (RCI) and assemblies (AGQ).
type DetailHandler struct {
	r    DetailRetriever
	w    DetailWriter
	auth *AuthHandler
	lg   zerolog.Logger
}

func NewDetailHandler(r DetailRetriever, w DetailWriter, auth *AuthHandler) *DetailHandler {
	return &DetailHandler{
		r:    r,
		w:    w,
		auth: auth,
		lg:   zerolog.New(os.Stdout).With().Str("Module", "DetailHandler").Timestamp().Logger(),
	}
}

func (h *DetailHandler) InitRoute(app *fiber.App) {
	router := app.Group("/funds/:id")

	router.Get("/amortizations", h.ListAmortizations)
	router.Post("/amortizations", h.auth.RequireAuth, h.AddAmortization)
	router.Get("/integralizations", h.ListIntegralizations)
	router.Post("/integralizations", h.auth.RequireAuth, h.AddIntegralization)
	router.Get("/rci", h.ListRCIs)
	router.Post("/rci", h.auth.RequireAuth, h.AddRCI)
	router.Get("/agq", h.ListAGQs)
	router.Post("/agq", h.auth.RequireAuth, h.AddAGQ)
}

func (h *DetailHandler) ListAmortizations(c *fiber.Ctx) error {

	fundID := c.Params("id")

	rows, err := h.r.RetrieveAmortizationsByFund(fundID)
	if err != nil {
		return fmt.Errorf("RetrieveAmortizationsByFund failed. %w", err)
	}

	merged := demo.Amortizations(fundID, rows)

	resp := make([]amortizationResponse, len(merged))
	for i := range merged {
		resp[i] = newAmortizationResponse(&merged[i])
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *DetailHandler) AddAmortization(c *fiber.Ctx) error {

	fundID := c.Params("id")

	var req AddAmortizationReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse amortization body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row := &m.Amortization{
		FundID:         fundID,
		Date:           date,
		Amount:         req.Amount,
		QuotaReference: req.QuotaReference,
		PlPercentage:   req.PlPercentage,
	}

	if err := h.w.SaveAmortization(row); err != nil {
		return fmt.Errorf("SaveAmortization failed. %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(struct {
		Amortization amortizationResponse `json:"amortization"`
		Notice
	}{
		Amortization: newAmortizationResponse(row),
		Notice:       Notice{Title: "Amortização adicionada", Description: "A amortização foi registrada com sucesso."},
	})
}

func (h *DetailHandler) ListIntegralizations(c *fiber.Ctx) error {

	fundID := c.Params("id")

	rows, err := h.r.RetrieveIntegralizationsByFund(fundID)
	if err != nil {
		return fmt.Errorf("RetrieveIntegralizationsByFund failed. %w", err)
	}

	merged := demo.Integralizations(fundID, rows)

	resp := make([]integralizationResponse, len(merged))
	for i := range merged {
		resp[i] = newIntegralizationResponse(&merged[i])
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *DetailHandler) AddIntegralization(c *fiber.Ctx) error {

	fundID := c.Params("id")

	var req AddIntegralizationReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse integralization body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	row := &m.Integralization{
		FundID:         fundID,
		Date:           date,
		Amount:         req.Amount,
		QuotasAcquired: req.QuotasAcquired,
		QuotaValue:     req.QuotaValue,
	}

	if err := h.w.SaveIntegralization(row); err != nil {
		return fmt.Errorf("SaveIntegralization failed. %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(struct {
		Integralization integralizationResponse `json:"integralization"`
		Notice
	}{
		Integralization: newIntegralizationResponse(row),
		Notice:          Notice{Title: "Integralização adicionada", Description: "A integralização foi registrada com sucesso."},
	})
}

func (h *DetailHandler) ListRCIs(c *fiber.Ctx) error {

	fundID := c.Params("id")

	rows, err := h.r.RetrieveRCIsByFund(fundID)
	if err != nil {
		return fmt.Errorf("RetrieveRCIsByFund failed. %w", err)
	}

	merged := demo.RCIs(fundID, rows)

	resp := make([]rciResponse, len(merged))
	for i := range merged {
		resp[i] = newRCIResponse(&merged[i])
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *DetailHandler) AddRCI(c *fiber.Ctx) error {

	fundID := c.Params("id")

	var req AddRCIReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse rci body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	decision := m.Decision(req.Decision)
	if req.Decision == "" {
		decision = m.DecisionUnderReview
	}

	row := &m.RCI{
		FundID:       fundID,
		Date:         date,
		Agenda:       req.Agenda,
		Decision:     decision,
		Observations: req.Observations,
	}

	if err := h.w.SaveRCI(row); err != nil {
		return fmt.Errorf("SaveRCI failed. %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(struct {
		RCI rciResponse `json:"rci"`
		Notice
	}{
		RCI:    newRCIResponse(row),
		Notice: Notice{Title: "RCI adicionado", Description: "O registro do comitê foi criado com sucesso."},
	})
}

func (h *DetailHandler) ListAGQs(c *fiber.Ctx) error {

	fundID := c.Params("id")

	rows, err := h.r.RetrieveAGQsByFund(fundID)
	if err != nil {
		return fmt.Errorf("RetrieveAGQsByFund failed. %w", err)
	}

	merged := demo.AGQs(fundID, rows)

	resp := make([]agqResponse, len(merged))
	for i := range merged {
		resp[i] = newAGQResponse(&merged[i])
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *DetailHandler) AddAGQ(c *fiber.Ctx) error {

	fundID := c.Params("id")

	var req AddAGQReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse agq body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	agqType := m.AGQType(req.Type)
	if req.Type == "" {
		agqType = m.AGQOrdinary
	}
	status := m.AGQStatus(req.Status)
	if req.Status == "" {
		status = m.AGQScheduled
	}

	row := &m.AGQ{
		FundID: fundID,
		Date:   date,
		Type:   agqType,
		Agenda: req.Agenda,
		Status: status,
		Quorum: req.Quorum,
	}

	if err := h.w.SaveAGQ(row); err != nil {
		return fmt.Errorf("SaveAGQ failed. %w", err)
	}

	return c.Status(fiber.StatusCreated).JSON(struct {
		AGQ agqResponse `json:"agq"`
		Notice
	}{
		AGQ:    newAGQResponse(row),
		Notice: Notice{Title: "AGQ adicionada", Description: "A assembleia foi registrada com sucesso."},
	})
}
