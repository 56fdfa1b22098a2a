package model

import "slices"

// Enum values are stored as the Portuguese labels the product exposes,
// matching the columns of the backing tables.

type Risk string

const (
	RiskLow    Risk = "Baixo"
	RiskMedium Risk = "Médio"
	RiskHigh   Risk = "Alto"
)

var riskList = []string{string(RiskLow), string(RiskMedium), string(RiskHigh)}

func RiskList() []string { return riskList }

func IsValidRisk(s string) bool {
	return slices.Contains(riskList, s)
}

type Decision string

const (
	DecisionApproved    Decision = "Aprovado"
	DecisionRejected    Decision = "Reprovado"
	DecisionUnderReview Decision = "Em análise"
)

var decisionList = []string{string(DecisionApproved), string(DecisionRejected), string(DecisionUnderReview)}

func DecisionList() []string { return decisionList }

func IsValidDecision(s string) bool {
	return slices.Contains(decisionList, s)
}

type AGQType string

const (
	AGQOrdinary      AGQType = "Ordinária"
	AGQExtraordinary AGQType = "Extraordinária"
)

var agqTypeList = []string{string(AGQOrdinary), string(AGQExtraordinary)}

func AGQTypeList() []string { return agqTypeList }

func IsValidAGQType(s string) bool {
	return slices.Contains(agqTypeList, s)
}

type AGQStatus string

const (
	AGQHeld      AGQStatus = "Realizada"
	AGQScheduled AGQStatus = "Agendada"
	AGQCancelled AGQStatus = "Cancelada"
)

var agqStatusList = []string{string(AGQHeld), string(AGQScheduled), string(AGQCancelled)}

func AGQStatusList() []string { return agqStatusList }

func IsValidAGQStatus(s string) bool {
	return slices.Contains(agqStatusList, s)
}

type Role string

const (
	RoleManager Role = "gerente"
	RoleAnalyst Role = "analista"
)

var roleList = []string{string(RoleManager), string(RoleAnalyst)}

func RoleList() []string { return roleList }

func IsValidRole(s string) bool {
	return slices.Contains(roleList, s)
}
