/*
aging.go - Payment allocation and arrears for active contracts

PURPOSE:
  Answers the collections question: how far behind is this contract,
  in money and in days? Everything is re-derived from the contract terms
  and the cumulative payment total on every call - there is no stored
  running balance to drift out of sync.

POOL:
  The money available to service installments is the cumulative payment
  total net of the required down payment:
    pool = max(0, total paid - down required)
  This is the same pool the schedule builder consumes, so the arrears
  figure and the installment table always agree.

DUE MONTHS:
  months elapsed = (today.y - first.y)*12 + (today.m - first.m),
  minus one if today's day-of-month hasn't reached the due day yet.
  An installment therefore only counts as due once a full month has
  passed since its due date (the partial month is not yet due).
*/
package credit

import (
	"github.com/shopspring/decimal"

	"github.com/zonavalle/credit-engine/ledger"
)

func intDecimal(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

// Arrears is the collections picture of one active contract at a point
// in time.
type Arrears struct {
	// MonthsDue is how many installments have fallen due so far,
	// capped at the contract term.
	MonthsDue int

	// Expected is MonthsDue * installment.
	Expected ledger.Money

	// Pool is the cumulative payment total net of the down payment.
	Pool ledger.Money

	// AmountOverdue = max(0, Expected - Pool).
	AmountOverdue ledger.Money

	// DaysOverdue counts days from the first uncovered due date to
	// today; zero whenever AmountOverdue is zero.
	DaysOverdue int

	// MonthsBehind is the number of whole installments the contract is
	// short.
	MonthsBehind int
}

// AssessArrears computes the arrears of an active contract given the
// cumulative total of its payment stream. Contracts that are not Active
// (or have no first due date yet) report zero across the board - they
// are tracked as reservation shortfall instead.
//
// Edge policy: a zero installment amount yields zero overdue money and
// days regardless of elapsed time. No division happens on that path.
func AssessArrears(c ledger.Contract, totalPaid ledger.Money, today ledger.Date) Arrears {
	if c.Status != ledger.ContractActive || c.FirstDueDate.IsZero() {
		return Arrears{Expected: ledger.ZeroMoney(), Pool: ledger.ZeroMoney(), AmountOverdue: ledger.ZeroMoney()}
	}

	pool := totalPaid.Sub(c.DownRequired).Max(ledger.ZeroMoney())

	if c.Installment.IsZero() {
		return Arrears{Expected: ledger.ZeroMoney(), Pool: pool, AmountOverdue: ledger.ZeroMoney()}
	}

	monthsDue := ledger.MonthsElapsed(c.FirstDueDate, today)
	if monthsDue < 0 {
		monthsDue = 0
	}
	if monthsDue > c.TermMonths {
		monthsDue = c.TermMonths
	}

	expected := c.Installment.Mul(intDecimal(monthsDue))
	overdue := expected.Sub(pool).Max(ledger.ZeroMoney())

	a := Arrears{
		MonthsDue:     monthsDue,
		Expected:      expected,
		Pool:          pool,
		AmountOverdue: overdue,
	}
	if overdue.IsZero() {
		return a
	}

	a.MonthsBehind = overdue.FloorDiv(c.Installment)

	// First uncovered due date: the pool fully covers this many
	// installments, so the next one is where the clock starts.
	covered := pool.FloorDiv(c.Installment)
	firstUnpaid := c.FirstDueDate.AddMonths(covered)
	if days := ledger.DaysBetween(firstUnpaid, today); days > 0 {
		a.DaysOverdue = days
	}
	return a
}
