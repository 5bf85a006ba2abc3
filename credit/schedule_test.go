package credit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonavalle/credit-engine/credit"
	"github.com/zonavalle/credit-engine/ledger"
)

func TestBuildSchedule_NoScheduleWhilePending(t *testing.T) {
	c := pendingContract()
	assert.Nil(t, credit.BuildSchedule(c, ledger.MoneyFromInt(20000)))
}

func TestBuildSchedule_RowShape(t *testing.T) {
	// GIVEN: the 24x1000 contract with nothing beyond the down payment
	c := activeContract()

	rows := credit.BuildSchedule(c, ledger.MoneyFromInt(10000))

	// THEN: one row per month, due dates stepping monthly from the first
	require.Len(t, rows, 24)
	assert.Equal(t, 1, rows[0].Number)
	assert.Equal(t, "2024-01-01", rows[0].DueDate.String())
	assert.Equal(t, "2024-02-01", rows[1].DueDate.String())
	assert.Equal(t, "2025-12-01", rows[23].DueDate.String())
	for _, row := range rows {
		assert.Equal(t, "1000.00", row.Amount.String())
	}
}

func TestBuildSchedule_PaidPartialPending(t *testing.T) {
	// GIVEN: a pool of 2500 (12500 paid, 10000 down)
	c := activeContract()

	rows := credit.BuildSchedule(c, ledger.NewMoney(12500))

	// THEN: oldest-first consumption: two Paid, one Partial, rest Pending
	require.Len(t, rows, 24)
	assert.Equal(t, credit.InstallmentPaid, rows[0].State)
	assert.Equal(t, "1000.00", rows[0].Paid.String())
	assert.Equal(t, credit.InstallmentPaid, rows[1].State)
	assert.Equal(t, credit.InstallmentPartial, rows[2].State)
	assert.Equal(t, "500.00", rows[2].Paid.String())
	for _, row := range rows[3:] {
		assert.Equal(t, credit.InstallmentPending, row.State)
		assert.True(t, row.Paid.IsZero())
	}
}

func TestBuildSchedule_BalanceAmortizesRegardlessOfCash(t *testing.T) {
	// The balance column is scheduled principal, independent of payment
	// state: 24000 financed, minus 1000 each row, floored at zero
	c := activeContract()

	rows := credit.BuildSchedule(c, ledger.MoneyFromInt(10000))

	assert.Equal(t, "23000.00", rows[0].Balance.String())
	assert.Equal(t, "22000.00", rows[1].Balance.String())
	assert.Equal(t, "0.00", rows[23].Balance.String())
}

func TestBuildSchedule_FullyPaid(t *testing.T) {
	// 10000 down + 24000 installments, everything collected
	c := activeContract()

	rows := credit.BuildSchedule(c, ledger.MoneyFromInt(34000))

	for _, row := range rows {
		assert.Equal(t, credit.InstallmentPaid, row.State)
	}
}

func TestBuildSchedule_ZeroInstallmentRowsReadPaid(t *testing.T) {
	// A contract fully covered by its down payment amortizes nothing;
	// every scheduled row is trivially covered
	c := activeContract()
	c.Installment = ledger.ZeroMoney()
	c.TotalPrice = c.DownRequired

	rows := credit.BuildSchedule(c, c.DownRequired)

	require.Len(t, rows, 24)
	for _, row := range rows {
		assert.Equal(t, credit.InstallmentPaid, row.State)
		assert.True(t, row.Balance.IsZero())
	}
}

func TestBuildSchedule_PaidNeverExceedsPool(t *testing.T) {
	// Sum of allocated money equals min(pool, total scheduled)
	c := activeContract()
	pool := ledger.NewMoney(5500)

	rows := credit.BuildSchedule(c, c.DownRequired.Add(pool))

	total := ledger.ZeroMoney()
	for _, row := range rows {
		total = total.Add(row.Paid)
	}
	assert.True(t, total.Equal(pool))
}

func TestBuildSchedule_AgreesWithArrears(t *testing.T) {
	// The uncovered portion of due rows must equal the arrears figure
	c := activeContract()
	paid := ledger.NewMoney(12500)
	today := ledger.NewDate(2024, time.April, 15)

	rows := credit.BuildSchedule(c, paid)
	a := credit.AssessArrears(c, paid, today)

	short := ledger.ZeroMoney()
	for _, row := range rows[:a.MonthsDue] {
		short = short.Add(row.Amount.Sub(row.Paid))
	}
	assert.True(t, short.Equal(a.AmountOverdue),
		"schedule says %s short, arrears says %s", short, a.AmountOverdue)
}
