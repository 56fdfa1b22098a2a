package db

import (
	"testing"
	"time"

	m "fundtracker/internal/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

// newTestStorage connects to the local dev instances. Tests are skipped when
// neither MySQL nor Redis is reachable so the suite stays runnable anywhere.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	stg, err := NewStorage(
		NewMysqlConfig("fundtracker", "fundtracker", "127.0.0.1", "3306", "fundtracker"),
		NewRedisConfig("", "127.0.0.1", "6379", 0),
	)
	if err != nil {
		t.Skipf("storage unavailable: %v", err)
	}
	if err := stg.db.Exec("SELECT 1").Error; err != nil {
		t.Skipf("mysql unavailable: %v", err)
	}
	return stg
}

func TestFundRoundTrip(t *testing.T) {

	stg := newTestStorage(t)

	fund := &m.Fund{
		Name:    "Fundo de Teste",
		Ticker:  "TST11",
		Type:    "FIDC",
		Aum:     1000000,
		Risk:    m.RiskMedium,
		Manager: "Gestora Teste",
	}

	err := stg.SaveFund(fund)
	assert.NoError(t, err)
	assert.NotEmpty(t, fund.ID)

	got, err := stg.RetrieveFund(fund.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Fundo de Teste", got.Name)

	updated, err := stg.UpdateFund(fund.ID, map[string]any{"name": "Fundo Renomeado"})
	assert.NoError(t, err)
	assert.Equal(t, "Fundo Renomeado", updated.Name)
	assert.Equal(t, "TST11", updated.Ticker)

	err = stg.DeleteFund(fund.ID)
	assert.NoError(t, err)

	_, err = stg.RetrieveFund(fund.ID)
	assert.Error(t, err)
}

func TestChildRowsFollowFund(t *testing.T) {

	stg := newTestStorage(t)

	fund := &m.Fund{Name: "Fundo com Filhos", Ticker: "FLH11", Type: "FIDC", Manager: "Gestora"}
	err := stg.SaveFund(fund)
	assert.NoError(t, err)
	defer stg.DeleteFund(fund.ID)

	err = stg.SaveAmortization(&m.Amortization{
		FundID: fund.ID,
		Date:   datatypes.Date(time.Now()),
		Amount: 50000,
	})
	assert.NoError(t, err)

	rows, err := stg.RetrieveAmortizationsByFund(fund.ID)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, fund.ID, rows[0].FundID)
}

func TestDeleteMissingFund(t *testing.T) {

	stg := newTestStorage(t)

	err := stg.DeleteFund("nao-existe")
	assert.Error(t, err)
}
