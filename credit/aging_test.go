package credit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zonavalle/credit-engine/credit"
	"github.com/zonavalle/credit-engine/ledger"
)

// activeContract has a 1000/month installment, 10k down requirement,
// first due date 2024-01-01, 24 month term.
func activeContract() ledger.Contract {
	return ledger.Contract{
		ID:           "c-1",
		LocationCode: "M01-L02",
		TotalPrice:   ledger.MoneyFromInt(34000),
		DownRequired: ledger.MoneyFromInt(10000),
		DownReceived: ledger.MoneyFromInt(10000),
		TermMonths:   24,
		Installment:  ledger.MoneyFromInt(1000),
		ContractDate: day(2023, time.December, 1),
		FirstDueDate: day(2024, time.January, 1),
		Status:       ledger.ContractActive,
	}
}

func TestAssessArrears_BehindByHalfAnInstallment(t *testing.T) {
	// GIVEN: 3 installments due (Jan 1, Feb 1, Mar 1 as of Apr 15) and
	// 12.5k collected, i.e. a pool of 2.5k against 3k expected
	c := activeContract()
	today := day(2024, time.April, 15)

	a := credit.AssessArrears(c, ledger.NewMoney(12500), today)

	// THEN: 500 overdue, clock runs from the first uncovered due date
	assert.Equal(t, 3, a.MonthsDue)
	assert.Equal(t, "3000.00", a.Expected.String())
	assert.Equal(t, "2500.00", a.Pool.String())
	assert.Equal(t, "500.00", a.AmountOverdue.String())
	// Two installments fully covered; Mar 1 is the first uncovered one
	assert.Equal(t, 45, a.DaysOverdue)
	assert.Equal(t, 0, a.MonthsBehind, "500 short of 1000 is zero whole installments")
}

func TestAssessArrears_FullyCurrent(t *testing.T) {
	c := activeContract()
	today := day(2024, time.April, 15)

	// 13k total = 10k down + 3k pool covers all 3 due installments
	a := credit.AssessArrears(c, ledger.MoneyFromInt(13000), today)

	assert.True(t, a.AmountOverdue.IsZero())
	assert.Equal(t, 0, a.DaysOverdue)
	assert.Equal(t, 0, a.MonthsBehind)
}

func TestAssessArrears_AheadOfSchedule(t *testing.T) {
	// Prepaying keeps overdue pinned at zero, never negative
	c := activeContract()
	a := credit.AssessArrears(c, ledger.MoneyFromInt(20000), day(2024, time.April, 15))

	assert.True(t, a.AmountOverdue.IsZero())
	assert.Equal(t, "10000.00", a.Pool.String())
}

func TestAssessArrears_NothingDueBeforeFirstDueDate(t *testing.T) {
	c := activeContract()
	a := credit.AssessArrears(c, ledger.MoneyFromInt(10000), day(2023, time.December, 15))

	assert.Equal(t, 0, a.MonthsDue)
	assert.True(t, a.Expected.IsZero())
	assert.True(t, a.AmountOverdue.IsZero())
}

func TestAssessArrears_MonthsDueCappedAtTerm(t *testing.T) {
	// GIVEN: a contract whose term ended years ago with nothing paid
	// beyond the down payment
	c := activeContract()
	a := credit.AssessArrears(c, ledger.MoneyFromInt(10000), day(2030, time.June, 1))

	// THEN: expected never grows past term * installment
	assert.Equal(t, 24, a.MonthsDue)
	assert.Equal(t, "24000.00", a.Expected.String())
	assert.Equal(t, "24000.00", a.AmountOverdue.String())
	assert.Equal(t, 24, a.MonthsBehind)
}

func TestAssessArrears_ZeroInstallmentReportsAllZeros(t *testing.T) {
	// A fully-paid-up-front contract can never be in arrears, no matter
	// how much time passes
	c := activeContract()
	c.Installment = ledger.ZeroMoney()

	a := credit.AssessArrears(c, ledger.MoneyFromInt(10000), day(2030, time.June, 1))

	assert.Equal(t, 0, a.MonthsDue)
	assert.True(t, a.Expected.IsZero())
	assert.True(t, a.AmountOverdue.IsZero())
	assert.Equal(t, 0, a.DaysOverdue)
	assert.Equal(t, 0, a.MonthsBehind)
}

func TestAssessArrears_PendingContractIsNotAged(t *testing.T) {
	c := activeContract()
	c.Status = ledger.ContractPending
	c.FirstDueDate = ledger.Date{}

	a := credit.AssessArrears(c, ledger.MoneyFromInt(5000), day(2024, time.June, 1))
	assert.Equal(t, credit.Arrears{
		Expected:      ledger.ZeroMoney(),
		Pool:          ledger.ZeroMoney(),
		AmountOverdue: ledger.ZeroMoney(),
	}, a)
}

func TestAssessArrears_OverdueGrowsMonotonically(t *testing.T) {
	// With no new payments, moving the clock forward never shrinks the
	// overdue amount or the day count
	c := activeContract()
	paid := ledger.MoneyFromInt(11000)

	prev := credit.AssessArrears(c, paid, day(2024, time.February, 1))
	for _, today := range []ledger.Date{
		day(2024, time.March, 1),
		day(2024, time.June, 15),
		day(2024, time.December, 31),
	} {
		cur := credit.AssessArrears(c, paid, today)
		assert.True(t, cur.AmountOverdue.GreaterThanOrEqual(prev.AmountOverdue))
		assert.GreaterOrEqual(t, cur.DaysOverdue, prev.DaysOverdue)
		prev = cur
	}
}

func TestAssessArrears_MoreMoneyNeverIncreasesOverdue(t *testing.T) {
	c := activeContract()
	today := day(2024, time.December, 15)

	prev := credit.AssessArrears(c, ledger.MoneyFromInt(10000), today)
	for _, paid := range []int64{11000, 13000, 16000, 40000} {
		cur := credit.AssessArrears(c, ledger.MoneyFromInt(paid), today)
		assert.True(t, prev.AmountOverdue.GreaterThanOrEqual(cur.AmountOverdue))
		prev = cur
	}
}
