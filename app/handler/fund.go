package handler

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"fundtracker/internal/demo"
	m "fundtracker/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type FundHandler struct {
	r    FundRetriever
	w    FundWriter
	dw   DetailWriter
	auth *AuthHandler
	lg   zerolog.Logger
}

func NewFundHandler(r FundRetriever, w FundWriter, dw DetailWriter, auth *AuthHandler) *FundHandler {
	return &FundHandler{
		r:    r,
		w:    w,
		dw:   dw,
		auth: auth,
		lg:   zerolog.New(os.Stdout).With().Str("Module", "FundHandler").Timestamp().Logger(),
	}
}

func (h *FundHandler) InitRoute(app *fiber.App) {
	router := app.Group("/funds")

	router.Get("/", h.ListFunds)
	router.Post("/", h.auth.RequireAuth, h.AddFund)
	router.Get("/:id", h.GetFund)
	router.Patch("/:id", h.auth.RequireAuth, h.auth.RequireManager, h.UpdateFund)
	router.Delete("/:id", h.auth.RequireAuth, h.auth.RequireManager, h.DeleteFund)
}

func (h *FundHandler) ListFunds(c *fiber.Ctx) error {

	funds, err := h.r.RetrieveFunds()
	if err != nil {
		return fmt.Errorf("RetrieveFunds failed. %w", err)
	}

	merged := demo.Funds(funds)

	resp := make([]fundResponse, len(merged))
	for i := range merged {
		resp[i] = newFundResponse(&merged[i])
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *FundHandler) GetFund(c *fiber.Ctx) error {

	id := c.Params("id")

	fund, err := h.r.RetrieveFund(id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("RetrieveFund failed. %w", err)
		}
		demoFund, ok := demo.Fund(id)
		if !ok {
			return fmt.Errorf("fund %s. %w", id, gorm.ErrRecordNotFound)
		}
		fund = demoFund
	}

	return c.Status(fiber.StatusOK).JSON(newFundResponse(fund))
}

func (h *FundHandler) AddFund(c *fiber.Ctx) error {

	var req AddFundReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse fund body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	// stage children before touching the store so a bad date never leaves
	// a half-submitted batch behind
	children, err := stageChildren(&req)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	risk := m.Risk(req.Risk)
	if req.Risk == "" {
		risk = m.RiskMedium
	}

	fund := &m.Fund{
		Name:          req.Name,
		Ticker:        req.Ticker,
		Type:          req.Type,
		Aum:           req.Aum,
		YtdReturn:     req.YtdReturn,
		MonthlyReturn: req.MonthlyReturn,
		Risk:          risk,
		Manager:       req.Manager,
		MinInvestment: req.MinInvestment,
		Description:   req.Description,
	}

	if err := h.w.SaveFund(fund); err != nil {
		return fmt.Errorf("SaveFund failed. %w", err)
	}

	// children race each other on purpose; a failed child is logged and the
	// fund is kept as-is
	h.submitChildren(fund.ID, children)

	return c.Status(fiber.StatusCreated).JSON(fundMutationResponse{
		Fund:   newFundResponse(fund),
		Notice: Notice{Title: "Fundo criado", Description: "O fundo foi adicionado com sucesso."},
	})
}

type stagedChildren struct {
	amortizations    []m.Amortization
	integralizations []m.Integralization
	rcis             []m.RCI
	agqs             []m.AGQ
}

func stageChildren(req *AddFundReq) (*stagedChildren, error) {

	staged := &stagedChildren{}

	for _, p := range req.Amortizations {
		date, err := parseDate(p.Date)
		if err != nil {
			return nil, err
		}
		staged.amortizations = append(staged.amortizations, m.Amortization{
			Date: date, Amount: p.Amount,
			QuotaReference: p.QuotaReference, PlPercentage: p.PlPercentage,
		})
	}

	for _, p := range req.Integralizations {
		date, err := parseDate(p.Date)
		if err != nil {
			return nil, err
		}
		staged.integralizations = append(staged.integralizations, m.Integralization{
			Date: date, Amount: p.Amount,
			QuotasAcquired: p.QuotasAcquired, QuotaValue: p.QuotaValue,
		})
	}

	for _, p := range req.RCIs {
		date, err := parseDate(p.Date)
		if err != nil {
			return nil, err
		}
		decision := m.Decision(p.Decision)
		if p.Decision == "" {
			decision = m.DecisionUnderReview
		}
		staged.rcis = append(staged.rcis, m.RCI{
			Date: date, Agenda: p.Agenda,
			Decision: decision, Observations: p.Observations,
		})
	}

	for _, p := range req.AGQs {
		date, err := parseDate(p.Date)
		if err != nil {
			return nil, err
		}
		agqType := m.AGQType(p.Type)
		if p.Type == "" {
			agqType = m.AGQOrdinary
		}
		status := m.AGQStatus(p.Status)
		if p.Status == "" {
			status = m.AGQScheduled
		}
		staged.agqs = append(staged.agqs, m.AGQ{
			Date: date, Type: agqType, Agenda: p.Agenda,
			Status: status, Quorum: p.Quorum,
		})
	}

	return staged, nil
}

func (h *FundHandler) submitChildren(fundID string, staged *stagedChildren) {

	var wg sync.WaitGroup

	for i := range staged.amortizations {
		wg.Add(1)
		go func(a m.Amortization) {
			defer wg.Done()
			a.FundID = fundID
			if err := h.dw.SaveAmortization(&a); err != nil {
				h.lg.Error().Err(err).Str("fund_id", fundID).Msg("Staged amortization failed")
			}
		}(staged.amortizations[i])
	}

	for i := range staged.integralizations {
		wg.Add(1)
		go func(in m.Integralization) {
			defer wg.Done()
			in.FundID = fundID
			if err := h.dw.SaveIntegralization(&in); err != nil {
				h.lg.Error().Err(err).Str("fund_id", fundID).Msg("Staged integralization failed")
			}
		}(staged.integralizations[i])
	}

	for i := range staged.rcis {
		wg.Add(1)
		go func(r m.RCI) {
			defer wg.Done()
			r.FundID = fundID
			if err := h.dw.SaveRCI(&r); err != nil {
				h.lg.Error().Err(err).Str("fund_id", fundID).Msg("Staged RCI failed")
			}
		}(staged.rcis[i])
	}

	for i := range staged.agqs {
		wg.Add(1)
		go func(a m.AGQ) {
			defer wg.Done()
			a.FundID = fundID
			if err := h.dw.SaveAGQ(&a); err != nil {
				h.lg.Error().Err(err).Str("fund_id", fundID).Msg("Staged AGQ failed")
			}
		}(staged.agqs[i])
	}

	wg.Wait()
}

func (h *FundHandler) UpdateFund(c *fiber.Ctx) error {

	id := c.Params("id")

	var req UpdateFundReq
	err := c.BodyParser(&req)
	if err != nil {
		return fmt.Errorf("failed to parse fund body. %w", err)
	}

	err = validCheck(&req)
	if err != nil {
		return err
	}

	fields := req.fields()
	if len(fields) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nenhum campo para atualizar")
	}

	fund, err := h.w.UpdateFund(id, fields)
	if err != nil {
		return fmt.Errorf("UpdateFund failed. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(fundMutationResponse{
		Fund:   newFundResponse(fund),
		Notice: Notice{Title: "Fundo atualizado", Description: "As alterações foram salvas com sucesso."},
	})
}

func (h *FundHandler) DeleteFund(c *fiber.Ctx) error {

	id := c.Params("id")

	if err := h.w.DeleteFund(id); err != nil {
		return fmt.Errorf("DeleteFund failed. %w", err)
	}

	return c.Status(fiber.StatusOK).JSON(Notice{
		Title:       "Fundo excluído",
		Description: "O fundo foi removido com sucesso.",
	})
}
