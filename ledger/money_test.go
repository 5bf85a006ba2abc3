package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonavalle/credit-engine/ledger"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := ledger.NewMoney(100.50)
	b := ledger.NewMoney(49.50)

	assert.Equal(t, "150.00", a.Add(b).String())
	assert.Equal(t, "51.00", a.Sub(b).String())
	assert.True(t, a.GreaterThan(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Equal(ledger.NewMoney(100.5)))
}

func TestMoney_ZeroValue(t *testing.T) {
	// GIVEN: the zero value of Money
	// THEN: it behaves as $0.00 without any constructor call
	var m ledger.Money
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00", m.String())
	assert.Equal(t, "100.00", m.Add(ledger.MoneyFromInt(100)).String())
}

func TestMoney_DivInt(t *testing.T) {
	// The canonical installment: (300000 - 50000) / 24
	m := ledger.MoneyFromInt(250000)
	assert.Equal(t, "10416.67", m.DivInt(24).String())

	// Division by zero degrades to zero, not a panic
	assert.True(t, m.DivInt(0).IsZero())
}

func TestMoney_FloorDiv(t *testing.T) {
	pool := ledger.NewMoney(2500)
	unit := ledger.MoneyFromInt(1000)

	assert.Equal(t, 2, pool.FloorDiv(unit))
	assert.Equal(t, 0, ledger.NewMoney(999.99).FloorDiv(unit))
	// Zero unit never divides
	assert.Equal(t, 0, pool.FloorDiv(ledger.ZeroMoney()))
}

func TestMoney_Display(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$ 0.00"},
		{5, "$ 5.00"},
		{1234.56, "$ 1,234.56"},
		{1000000, "$ 1,000,000.00"},
		{-1234.5, "$ -1,234.50"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ledger.NewMoney(c.in).Display())
	}
}

func TestDisplayMoney_BadInputDegradesToZero(t *testing.T) {
	assert.Equal(t, "$ 0.00", ledger.DisplayMoney("not a number"))
	assert.Equal(t, "$ 0.00", ledger.DisplayMoney(""))
	assert.Equal(t, "$ 1,500.00", ledger.DisplayMoney("1500"))
}

func TestParseMoney(t *testing.T) {
	m, err := ledger.ParseMoney(" 1234.56 ")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", m.String())

	_, err = ledger.ParseMoney("abc")
	assert.Error(t, err)
}

func TestMoney_MinMax(t *testing.T) {
	a := ledger.MoneyFromInt(10)
	b := ledger.MoneyFromInt(20)

	assert.True(t, a.Min(b).Equal(a))
	assert.True(t, a.Max(b).Equal(b))
	// Equal values: either answer is the same value
	assert.True(t, a.Min(a).Equal(a))
}
