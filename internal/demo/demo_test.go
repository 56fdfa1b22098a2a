package demo

import (
	"testing"

	m "fundtracker/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFunds(t *testing.T) {

	t.Run("empty store falls back to the demo list", func(t *testing.T) {
		out := Funds(nil)

		assert.Len(t, out, 8)
		assert.False(t, out[0].CreatedAt.IsZero())
		assert.True(t, out[0].CreatedAt.After(out[1].CreatedAt))
	})

	t.Run("remote rows are used exclusively", func(t *testing.T) {
		remote := []m.Fund{{ID: "abc", Name: "Fundo Real"}}

		out := Funds(remote)

		assert.Len(t, out, 1)
		assert.Equal(t, "Fundo Real", out[0].Name)
	})

	t.Run("mutating the result leaves the seed intact", func(t *testing.T) {
		out := Funds(nil)
		out[0].Name = "Alterado"

		again := Funds(nil)
		assert.NotEqual(t, "Alterado", again[0].Name)
	})
}

func TestFund(t *testing.T) {

	fund, ok := Fund("3")
	assert.True(t, ok)
	assert.Equal(t, "3", fund.ID)
	assert.NotEmpty(t, fund.Name)

	_, ok = Fund("nao-existe")
	assert.False(t, ok)
}

func TestChildCollections(t *testing.T) {

	t.Run("fallback rows carry the requested fund id", func(t *testing.T) {
		am := Amortizations("f9", nil)
		assert.Len(t, am, 4)
		for _, a := range am {
			assert.Equal(t, "f9", a.FundID)
		}

		ag := AGQs("f9", nil)
		assert.Len(t, ag, 4)
		for _, a := range ag {
			assert.Equal(t, "f9", a.FundID)
		}
	})

	t.Run("remote rows win", func(t *testing.T) {
		remote := []m.RCI{{ID: "r1", FundID: "f9", Agenda: "Pauta real"}}

		out := RCIs("f9", remote)

		assert.Len(t, out, 1)
		assert.Equal(t, "Pauta real", out[0].Agenda)

		ints := Integralizations("f9", []m.Integralization{{ID: "i1", FundID: "f9"}})
		assert.Len(t, ints, 1)
	})
}
