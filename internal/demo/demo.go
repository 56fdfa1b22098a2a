// Package demo holds the seed dataset shown whenever the store has nothing to
// offer. Selection is wholesale per collection: a non-empty remote result is
// used exclusively, otherwise the demo collection stands in. Nothing here is
// a cache; demo rows are never written back.
package demo

import (
	"time"

	m "fundtracker/internal/model"

	"gorm.io/datatypes"
)

var baseTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func date(y int, mo time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, mo, d, 0, 0, 0, 0, time.UTC))
}

var funds = []m.Fund{
	{
		ID: "1", Name: "INOVA EMPRESA FUNDO DE INVESTIMENTO EM PARTICIPAÇÕES MULTIESTRATEGIA",
		Ticker: "FIP Inova Empresa", Type: "Participações", Aum: 380000000,
		YtdReturn: 14.52, MonthlyReturn: 1.23, Risk: m.RiskMedium,
		Manager: "Angra Partners", MinInvestment: 50000,
	},
	{
		ID: "2", Name: "SPX Nimitz Feeder FIC FIM",
		Ticker: "SPXNM", Type: "Multimercado", Aum: 8700000000,
		YtdReturn: 18.34, MonthlyReturn: 2.15, Risk: m.RiskHigh,
		Manager: "SPX Capital", MinInvestment: 100000,
	},
	{
		ID: "3", Name: "Kapitalo Kappa Advisory FIC FIM",
		Ticker: "KAPPA", Type: "Multimercado", Aum: 6200000000,
		YtdReturn: 12.89, MonthlyReturn: 0.87, Risk: m.RiskMedium,
		Manager: "Kapitalo", MinInvestment: 25000,
	},
	{
		ID: "4", Name: "Dynamo Cougar FIA",
		Ticker: "DYNAM", Type: "Ações", Aum: 4800000000,
		YtdReturn: 22.45, MonthlyReturn: 3.21, Risk: m.RiskHigh,
		Manager: "Dynamo", MinInvestment: 10000,
	},
	{
		ID: "5", Name: "JGP Strategy FIC FIM",
		Ticker: "JGPST", Type: "Multimercado", Aum: 3500000000,
		YtdReturn: 9.78, MonthlyReturn: 0.45, Risk: m.RiskLow,
		Manager: "JGP", MinInvestment: 5000,
	},
	{
		ID: "6", Name: "BTG Pactual Tesouro Selic FI RF",
		Ticker: "BTGTS", Type: "Renda Fixa", Aum: 15200000000,
		YtdReturn: 11.25, MonthlyReturn: 0.92, Risk: m.RiskLow,
		Manager: "BTG Pactual", MinInvestment: 1000,
	},
	{
		ID: "7", Name: "Alaska Black BDR Nível I FIC FIA",
		Ticker: "ALASK", Type: "Ações", Aum: 2100000000,
		YtdReturn: -5.67, MonthlyReturn: -1.23, Risk: m.RiskHigh,
		Manager: "Alaska", MinInvestment: 1000,
	},
	{
		ID: "8", Name: "XP Selection FIC FIM CP",
		Ticker: "XPSEL", Type: "Crédito Privado", Aum: 5600000000,
		YtdReturn: 13.45, MonthlyReturn: 1.05, Risk: m.RiskMedium,
		Manager: "XP Asset", MinInvestment: 10000,
	},
}

var amortizations = []m.Amortization{
	{ID: "1", Date: date(2024, 12, 15), Amount: 500000, QuotaReference: 1.2345, PlPercentage: 2.5},
	{ID: "2", Date: date(2024, 9, 15), Amount: 750000, QuotaReference: 1.1987, PlPercentage: 3.8},
	{ID: "3", Date: date(2024, 6, 15), Amount: 300000, QuotaReference: 1.1654, PlPercentage: 1.5},
	{ID: "4", Date: date(2024, 3, 15), Amount: 1000000, QuotaReference: 1.1234, PlPercentage: 5.0},
}

var integralizations = []m.Integralization{
	{ID: "1", Date: date(2024, 11, 1), Amount: 2000000, QuotasAcquired: 1620.45, QuotaValue: 1.2345},
	{ID: "2", Date: date(2024, 8, 1), Amount: 1500000, QuotasAcquired: 1251.87, QuotaValue: 1.1982},
	{ID: "3", Date: date(2024, 5, 1), Amount: 3000000, QuotasAcquired: 2573.21, QuotaValue: 1.1659},
	{ID: "4", Date: date(2024, 2, 1), Amount: 500000, QuotasAcquired: 445.12, QuotaValue: 1.1233},
}

var rcis = []m.RCI{
	{ID: "1", Date: date(2024, 12, 10), Agenda: "Aporte em CRI logístico", Decision: m.DecisionApproved, Observations: "Retorno esperado de 14% a.a."},
	{ID: "2", Date: date(2024, 11, 5), Agenda: "Desinvestimento em FII ABC", Decision: m.DecisionApproved, Observations: "Realização de lucro após valorização"},
	{ID: "3", Date: date(2024, 9, 20), Agenda: "Novo investimento em debêntures", Decision: m.DecisionUnderReview, Observations: "Aguardando due diligence"},
	{ID: "4", Date: date(2024, 8, 15), Agenda: "Aquisição de cotas FII XYZ", Decision: m.DecisionRejected, Observations: "Risco elevado para o perfil do fundo"},
}

var agqs = []m.AGQ{
	{ID: "1", Date: date(2025, 3, 15), Type: m.AGQOrdinary, Agenda: "Aprovação de contas do exercício 2024", Status: m.AGQScheduled, Quorum: 0},
	{ID: "2", Date: date(2024, 11, 20), Type: m.AGQExtraordinary, Agenda: "Alteração do regulamento do fundo", Status: m.AGQHeld, Quorum: 78.5},
	{ID: "3", Date: date(2024, 3, 15), Type: m.AGQOrdinary, Agenda: "Aprovação de contas do exercício 2023", Status: m.AGQHeld, Quorum: 82.3},
	{ID: "4", Date: date(2023, 9, 10), Type: m.AGQExtraordinary, Agenda: "Aprovação de nova política de investimentos", Status: m.AGQHeld, Quorum: 65.2},
}

// Funds returns the remote list untouched when it has rows, the demo list otherwise.
func Funds(remote []m.Fund) []m.Fund {
	if len(remote) > 0 {
		return remote
	}
	out := make([]m.Fund, len(funds))
	copy(out, funds)
	for i := range out {
		out[i].CreatedAt = baseTime.AddDate(0, 0, -i)
		out[i].UpdatedAt = out[i].CreatedAt
	}
	return out
}

// Fund looks an id up in the demo list.
func Fund(id string) (*m.Fund, bool) {
	for i, f := range funds {
		if f.ID == id {
			out := f
			out.CreatedAt = baseTime.AddDate(0, 0, -i)
			out.UpdatedAt = out.CreatedAt
			return &out, true
		}
	}
	return nil, false
}

func Amortizations(fundID string, remote []m.Amortization) []m.Amortization {
	if len(remote) > 0 {
		return remote
	}
	out := make([]m.Amortization, len(amortizations))
	copy(out, amortizations)
	for i := range out {
		out[i].FundID = fundID
	}
	return out
}

func Integralizations(fundID string, remote []m.Integralization) []m.Integralization {
	if len(remote) > 0 {
		return remote
	}
	out := make([]m.Integralization, len(integralizations))
	copy(out, integralizations)
	for i := range out {
		out[i].FundID = fundID
	}
	return out
}

func RCIs(fundID string, remote []m.RCI) []m.RCI {
	if len(remote) > 0 {
		return remote
	}
	out := make([]m.RCI, len(rcis))
	copy(out, rcis)
	for i := range out {
		out[i].FundID = fundID
	}
	return out
}

func AGQs(fundID string, remote []m.AGQ) []m.AGQ {
	if len(remote) > 0 {
		return remote
	}
	out := make([]m.AGQ, len(agqs))
	copy(out, agqs)
	for i := range out {
		out[i].FundID = fundID
	}
	return out
}
