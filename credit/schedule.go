/*
schedule.go - Amortization schedule builder

PURPOSE:
  Projects the full installment table for an active contract: one row
  per month from 1 to the term, each with its due date, the fixed
  installment amount, how much of it is covered by money already
  collected, and the scheduled principal balance.

ALLOCATION:
  A pool initialized to the cumulative payments net of the down payment
  is consumed oldest installment first:
    pool >= installment  -> Paid    (full amount consumed)
    pool > 0             -> Partial (remainder consumed, pool empties)
    otherwise            -> Pending
  No per-installment allocation is ever persisted; the table is
  recomputed fresh on every call.

PRINCIPAL BALANCE:
  The balance column reflects scheduled amortization - prior balance
  minus one installment, floored at zero - regardless of whether the
  cash actually arrived. It answers "where should the contract be",
  not "where is it".
*/
package credit

import "github.com/zonavalle/credit-engine/ledger"

// InstallmentState classifies one schedule row.
type InstallmentState string

const (
	InstallmentPaid    InstallmentState = "Paid"
	InstallmentPartial InstallmentState = "Partial"
	InstallmentPending InstallmentState = "Pending"
)

// ScheduleRow is one month of the amortization table.
type ScheduleRow struct {
	Number  int
	DueDate ledger.Date
	Amount  ledger.Money // the fixed installment
	State   InstallmentState
	Paid    ledger.Money // portion covered by collected money
	Balance ledger.Money // scheduled principal remaining after this row
}

// BuildSchedule produces the installment table for an active contract
// given the cumulative total of its payment stream. Pending contracts
// have no schedule yet (it activates when the down payment is covered).
func BuildSchedule(c ledger.Contract, totalPaid ledger.Money) []ScheduleRow {
	if c.Status != ledger.ContractActive || c.FirstDueDate.IsZero() {
		return nil
	}

	pool := totalPaid.Sub(c.DownRequired).Max(ledger.ZeroMoney())
	balance := c.TotalPrice.Sub(c.DownRequired).Max(ledger.ZeroMoney())

	rows := make([]ScheduleRow, 0, c.TermMonths)
	for i := 1; i <= c.TermMonths; i++ {
		row := ScheduleRow{
			Number:  i,
			DueDate: c.FirstDueDate.AddMonths(i - 1),
			Amount:  c.Installment,
			Paid:    ledger.ZeroMoney(),
		}

		switch {
		case pool.GreaterThanOrEqual(c.Installment):
			row.State = InstallmentPaid
			row.Paid = c.Installment
			pool = pool.Sub(c.Installment)
		case pool.IsPositive():
			row.State = InstallmentPartial
			row.Paid = pool
			pool = ledger.ZeroMoney()
		default:
			row.State = InstallmentPending
		}

		balance = balance.Sub(c.Installment).Max(ledger.ZeroMoney())
		row.Balance = balance
		rows = append(rows, row)
	}
	return rows
}
