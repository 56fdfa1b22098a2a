package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidation(t *testing.T) {

	assert.True(t, IsValidRisk("Médio"))
	assert.False(t, IsValidRisk("Altíssimo"))

	assert.True(t, IsValidDecision("Em análise"))
	assert.False(t, IsValidDecision("Talvez"))

	assert.True(t, IsValidAGQType("Extraordinária"))
	assert.False(t, IsValidAGQType("Especial"))

	assert.True(t, IsValidAGQStatus("Cancelada"))
	assert.False(t, IsValidAGQStatus("Adiada"))

	assert.True(t, IsValidRole("gerente"))
	assert.True(t, IsValidRole("analista"))
	assert.False(t, IsValidRole("admin"))
}
