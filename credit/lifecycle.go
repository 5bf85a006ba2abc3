/*
lifecycle.go - Contract lifecycle engine (reservation -> active)

PURPOSE:
  Owns the Pending -> Active state machine and the allocation of
  received money to the down payment. A contract is Pending while its
  cumulative down payment is short of the requirement; the instant it is
  covered, the contract graduates: contract date is set to the payment
  date, the first installment falls due one month later, and the lot
  moves to Sold.

ALLOCATION RULE:
  For a payment of amount A on a Pending contract:
    applied  = min(A, required - received)
    received = received + applied
  Surplus beyond the down payment is NOT tracked separately here - it
  stays in the payment stream and is absorbed by the allocation engine's
  cumulative-sum logic at schedule-build time.

DETERMINISM:
  ApplyPayment is a pure function; Replay rebuilds a contract's derived
  state from scratch by re-applying its full payment stream in date
  order. Re-running either on the same inputs yields the same state,
  which is what makes the two-stream graduation write safe to retry.

SEE ALSO:
  - aging.go:    arrears once a contract is Active
  - schedule.go: the projected installment table
*/
package credit

import (
	"sort"

	"github.com/zonavalle/credit-engine/ledger"
)

// InstallmentAmount is the fixed monthly amount:
// (price - down payment) / term, rounded to cents. Computed once at
// sale registration and never revised as payments arrive.
func InstallmentAmount(price, down ledger.Money, termMonths int) ledger.Money {
	if termMonths <= 0 {
		return ledger.ZeroMoney()
	}
	return price.Sub(down).DivInt(termMonths)
}

// Transition is the outcome of applying one payment to a contract.
type Transition struct {
	Contract      ledger.Contract
	AppliedToDown ledger.Money
	Graduated     bool
}

// ApplyPayment allocates a payment of 'amount' received on 'on' against
// the contract's down payment and graduates the contract if the
// requirement is now covered. Active contracts pass through unchanged -
// their money is handled by cumulative allocation, not by this routine.
//
// Amount validation (> 0) happens at the caller before any state is
// touched; this routine assumes a positive amount.
func ApplyPayment(c ledger.Contract, amount ledger.Money, on ledger.Date) Transition {
	if c.Status == ledger.ContractActive {
		return Transition{Contract: c}
	}

	remaining := c.DownRequired.Sub(c.DownReceived).Max(ledger.ZeroMoney())
	applied := amount.Min(remaining)
	c.DownReceived = c.DownReceived.Add(applied)

	if c.DownReceived.GreaterThanOrEqual(c.DownRequired) {
		c.Status = ledger.ContractActive
		c.ContractDate = on
		c.FirstDueDate = on.AddMonths(1)
		return Transition{Contract: c, AppliedToDown: applied, Graduated: true}
	}
	return Transition{Contract: c, AppliedToDown: applied}
}

// Replay rebuilds the contract's derived state (down payment received,
// status, graduation dates) from its raw payment stream. Used after a
// payment correction or deletion, where incremental application would
// leave stale figures behind.
func Replay(c ledger.Contract, payments []ledger.Payment) ledger.Contract {
	c.DownReceived = ledger.ZeroMoney()
	c.Status = ledger.ContractPending
	c.ContractDate = ledger.Date{}
	c.FirstDueDate = ledger.Date{}

	ordered := make([]ledger.Payment, len(payments))
	copy(ordered, payments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	for _, p := range ordered {
		if !p.Amount.IsPositive() {
			continue
		}
		c = ApplyPayment(c, p.Amount, p.Date).Contract
	}
	return c
}

// ReservationShortfall is how much down payment a Pending contract is
// still missing. Pending contracts are tracked by this figure, not by
// days overdue.
func ReservationShortfall(c ledger.Contract) ledger.Money {
	return c.DownRequired.Sub(c.DownReceived).Max(ledger.ZeroMoney())
}
