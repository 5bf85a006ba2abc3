package credit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonavalle/credit-engine/credit"
	"github.com/zonavalle/credit-engine/ledger"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func money(v float64) ledger.Money       { return ledger.NewMoney(v) }
func day(y int, m time.Month, d int) ledger.Date { return ledger.NewDate(y, m, d) }

// pendingContract is the canonical reservation: 300k price, 50k down,
// 24 months.
func pendingContract() ledger.Contract {
	price := ledger.MoneyFromInt(300000)
	down := ledger.MoneyFromInt(50000)
	return ledger.Contract{
		ID:           "c-1",
		LocationCode: "M01-L02",
		Client:       "Ana Torres",
		RegisteredOn: day(2024, time.January, 10),
		TotalPrice:   price,
		DownRequired: down,
		DownReceived: ledger.ZeroMoney(),
		TermMonths:   24,
		Installment:  credit.InstallmentAmount(price, down, 24),
		Status:       ledger.ContractPending,
	}
}

func payment(id string, c ledger.Contract, amount float64, on ledger.Date) ledger.Payment {
	return ledger.Payment{
		ID:         id,
		ContractID: c.ID,
		Date:       on,
		Amount:     money(amount),
	}
}

// =============================================================================
// INSTALLMENT AMOUNT
// =============================================================================

func TestInstallmentAmount(t *testing.T) {
	// (300000 - 50000) / 24 = 10416.666... rounds to 10416.67
	got := credit.InstallmentAmount(ledger.MoneyFromInt(300000), ledger.MoneyFromInt(50000), 24)
	assert.Equal(t, "10416.67", got.String())
}

func TestInstallmentAmount_ZeroWhenDownEqualsPrice(t *testing.T) {
	got := credit.InstallmentAmount(ledger.MoneyFromInt(100000), ledger.MoneyFromInt(100000), 12)
	assert.True(t, got.IsZero())
}

func TestInstallmentAmount_NonPositiveTerm(t *testing.T) {
	got := credit.InstallmentAmount(ledger.MoneyFromInt(100000), ledger.ZeroMoney(), 0)
	assert.True(t, got.IsZero())
}

// =============================================================================
// GRADUATION
// =============================================================================

func TestApplyPayment_PartialDownStaysPending(t *testing.T) {
	// GIVEN: a reservation requiring 50k down
	c := pendingContract()

	// WHEN: 20k arrives
	tr := credit.ApplyPayment(c, money(20000), day(2024, time.January, 20))

	// THEN: still Pending, down received accumulates, no dates set
	assert.Equal(t, ledger.ContractPending, tr.Contract.Status)
	assert.Equal(t, "20000.00", tr.Contract.DownReceived.String())
	assert.Equal(t, "20000.00", tr.AppliedToDown.String())
	assert.False(t, tr.Graduated)
	assert.True(t, tr.Contract.ContractDate.IsZero())
	assert.True(t, tr.Contract.FirstDueDate.IsZero())
}

func TestApplyPayment_ExactDownGraduates(t *testing.T) {
	// GIVEN: a reservation with 20k of 50k already received
	c := pendingContract()
	c.DownReceived = money(20000)

	// WHEN: the remaining 30k arrives on Feb 1
	tr := credit.ApplyPayment(c, money(30000), day(2024, time.February, 1))

	// THEN: the contract graduates with dates anchored to the payment
	require.True(t, tr.Graduated)
	assert.Equal(t, ledger.ContractActive, tr.Contract.Status)
	assert.Equal(t, "2024-02-01", tr.Contract.ContractDate.String())
	assert.Equal(t, "2024-03-01", tr.Contract.FirstDueDate.String())
	assert.Equal(t, "50000.00", tr.Contract.DownReceived.String())
}

func TestApplyPayment_MonthEndGraduationClampsFirstDueDate(t *testing.T) {
	// GIVEN: the down payment completes on Jan 31
	c := pendingContract()

	// WHEN: graduating
	tr := credit.ApplyPayment(c, money(50000), day(2024, time.January, 31))

	// THEN: the first installment lands on the last day of February,
	// not in March
	require.True(t, tr.Graduated)
	assert.Equal(t, "2024-02-29", tr.Contract.FirstDueDate.String())

	// AND: the schedule keeps the month-end anchor row by row
	rows := credit.BuildSchedule(tr.Contract, money(50000))
	require.Len(t, rows, 24)
	assert.Equal(t, "2024-02-29", rows[0].DueDate.String())
	assert.Equal(t, "2024-03-29", rows[1].DueDate.String())
}

func TestApplyPayment_OverpaymentCapsAtRequirement(t *testing.T) {
	// GIVEN: a fresh reservation
	c := pendingContract()

	// WHEN: 60k arrives against a 50k requirement
	tr := credit.ApplyPayment(c, money(60000), day(2024, time.February, 1))

	// THEN: only 50k allocates to the down payment; the surplus stays in
	// the payment stream for the allocation engine
	require.True(t, tr.Graduated)
	assert.Equal(t, "50000.00", tr.Contract.DownReceived.String())
	assert.Equal(t, "50000.00", tr.AppliedToDown.String())
}

func TestApplyPayment_ActiveContractPassesThrough(t *testing.T) {
	c := pendingContract()
	c.Status = ledger.ContractActive
	c.DownReceived = c.DownRequired
	c.ContractDate = day(2024, time.February, 1)
	c.FirstDueDate = day(2024, time.March, 1)

	tr := credit.ApplyPayment(c, money(10000), day(2024, time.April, 1))

	assert.False(t, tr.Graduated)
	assert.Equal(t, c, tr.Contract, "active contracts are untouched by the lifecycle engine")
	assert.True(t, tr.AppliedToDown.IsZero())
}

func TestApplyPayment_ZeroDownRequirementGraduatesImmediately(t *testing.T) {
	// A contract sold with no down payment graduates on its first payment
	c := pendingContract()
	c.DownRequired = ledger.ZeroMoney()

	tr := credit.ApplyPayment(c, money(100), day(2024, time.January, 15))
	assert.True(t, tr.Graduated)
	assert.True(t, tr.AppliedToDown.IsZero())
}

// =============================================================================
// REPLAY
// =============================================================================

func TestReplay_RebuildsGraduation(t *testing.T) {
	// GIVEN: a contract and three payments whose second one completes
	// the down payment
	c := pendingContract()
	payments := []ledger.Payment{
		payment("p-1", c, 30000, day(2024, time.January, 20)),
		payment("p-2", c, 20000, day(2024, time.February, 5)),
		payment("p-3", c, 10416.67, day(2024, time.March, 5)),
	}

	// WHEN: replaying from scratch
	got := credit.Replay(c, payments)

	// THEN: graduation lands on the payment that covered the requirement
	assert.Equal(t, ledger.ContractActive, got.Status)
	assert.Equal(t, "2024-02-05", got.ContractDate.String())
	assert.Equal(t, "2024-03-05", got.FirstDueDate.String())
	assert.Equal(t, "50000.00", got.DownReceived.String())
}

func TestReplay_OrderIndependentInput(t *testing.T) {
	// Payments arrive out of order in the slice; date order governs
	c := pendingContract()
	shuffled := []ledger.Payment{
		payment("p-2", c, 20000, day(2024, time.February, 5)),
		payment("p-1", c, 30000, day(2024, time.January, 20)),
	}

	got := credit.Replay(c, shuffled)
	assert.Equal(t, "2024-02-05", got.ContractDate.String())
}

func TestReplay_DeletionRevertsToPending(t *testing.T) {
	// GIVEN: an Active contract whose graduating payment was deleted
	c := pendingContract()
	c = credit.ApplyPayment(c, money(50000), day(2024, time.February, 1)).Contract
	require.Equal(t, ledger.ContractActive, c.Status)

	// WHEN: replaying the remaining (smaller) stream
	got := credit.Replay(c, []ledger.Payment{
		payment("p-1", c, 20000, day(2024, time.January, 20)),
	})

	// THEN: the contract is Pending again with cleared dates
	assert.Equal(t, ledger.ContractPending, got.Status)
	assert.Equal(t, "20000.00", got.DownReceived.String())
	assert.True(t, got.ContractDate.IsZero())
	assert.True(t, got.FirstDueDate.IsZero())
}

func TestReplay_Idempotent(t *testing.T) {
	c := pendingContract()
	payments := []ledger.Payment{
		payment("p-1", c, 50000, day(2024, time.February, 1)),
		payment("p-2", c, 10416.67, day(2024, time.March, 1)),
	}

	once := credit.Replay(c, payments)
	twice := credit.Replay(once, payments)
	assert.Equal(t, once, twice)
}

func TestReservationShortfall(t *testing.T) {
	c := pendingContract()
	c.DownReceived = money(20000)
	assert.Equal(t, "30000.00", credit.ReservationShortfall(c).String())

	c.DownReceived = c.DownRequired
	assert.True(t, credit.ReservationShortfall(c).IsZero())
}
