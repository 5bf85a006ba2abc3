/*
Package reports computes the read-only financial views.

PURPOSE:
  Pure aggregation over snapshots the credit service already loads:
  income split between down payments and installments, expense totals
  by category, and the vendor commission ledger. No store access, no
  clocks; everything is a function of the rows passed in. Empty inputs
  produce zeroed reports, never errors.

KEY DESIGN DECISIONS:
  1. Income is attributed per contract by cumulative allocation: the
     first DownRequired of a contract's collected money is down-payment
     income, the rest is installment income. Individual payments are
     never tagged.
  2. Commission earned is a fixed share of each contract's price,
     credited in full once the contract exists. Disbursements reduce
     the pending figure; overpaying a vendor shows as negative pending
     rather than being clamped away.
*/
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/zonavalle/credit-engine/ledger"
)

// CommissionRate is the vendor's share of a sold contract's price.
var CommissionRate = decimal.NewFromFloat(0.03)

// =============================================================================
// FINANCIAL SUMMARY
// =============================================================================

// CategoryTotal is one expense category's aggregate.
type CategoryTotal struct {
	Category string
	Total    ledger.Money
}

// Financial is the income and expense overview.
type Financial struct {
	DownPaymentIncome  ledger.Money
	InstallmentIncome  ledger.Money
	TotalIncome        ledger.Money
	TotalExpenses      ledger.Money
	Net                ledger.Money
	ExpensesByCategory []CategoryTotal
}

// Summarize aggregates income and expenses. Payments belonging to no
// known contract (legacy rows, archived leftovers) still count as
// income, attributed to installments.
func Summarize(contracts []ledger.Contract, payments []ledger.Payment, expenses []ledger.Expense) Financial {
	byContract := make(map[string]ledger.Money, len(contracts))
	for _, p := range payments {
		byContract[p.ContractID] = byContract[p.ContractID].Add(p.Amount)
	}

	var f Financial
	f.DownPaymentIncome = ledger.ZeroMoney()
	f.InstallmentIncome = ledger.ZeroMoney()

	for _, c := range contracts {
		total, ok := byContract[c.ID]
		if !ok {
			continue
		}
		delete(byContract, c.ID)

		down := total.Min(c.DownRequired)
		f.DownPaymentIncome = f.DownPaymentIncome.Add(down)
		f.InstallmentIncome = f.InstallmentIncome.Add(total.Sub(down))
	}
	// Orphaned payment money still happened.
	for _, rest := range byContract {
		f.InstallmentIncome = f.InstallmentIncome.Add(rest)
	}
	f.TotalIncome = f.DownPaymentIncome.Add(f.InstallmentIncome)

	f.TotalExpenses = ledger.ZeroMoney()
	byCategory := make(map[string]ledger.Money)
	for _, e := range expenses {
		f.TotalExpenses = f.TotalExpenses.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}
	for cat, total := range byCategory {
		f.ExpensesByCategory = append(f.ExpensesByCategory, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(f.ExpensesByCategory, func(i, j int) bool {
		a, b := f.ExpensesByCategory[i], f.ExpensesByCategory[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	f.Net = f.TotalIncome.Sub(f.TotalExpenses)
	return f
}

// =============================================================================
// COMMISSIONS
// =============================================================================

// VendorCommission is one vendor's line in the commission ledger.
type VendorCommission struct {
	Vendor    string
	Contracts int
	Earned    ledger.Money
	Paid      ledger.Money
	Pending   ledger.Money
}

// ContractCommission is a per-contract earned line for the ranking view.
type ContractCommission struct {
	ContractID   string
	LocationCode string
	Vendor       string
	Price        ledger.Money
	Earned       ledger.Money
}

// CommissionReport is the full vendor commission position.
type CommissionReport struct {
	Vendors      []VendorCommission
	ByContract   []ContractCommission
	TotalEarned  ledger.Money
	TotalPaid    ledger.Money
	TotalPending ledger.Money
}

// Commissions computes earned vs disbursed per vendor. Contracts with
// no vendor earn nothing; disbursements to unknown vendors still show
// as their own line so paid money is never hidden.
func Commissions(contracts []ledger.Contract, disbursed []ledger.CommissionPayment) CommissionReport {
	earned := make(map[string]ledger.Money)
	count := make(map[string]int)

	var rep CommissionReport
	for _, c := range contracts {
		if c.Vendor == "" {
			continue
		}
		e := ledger.Money{Value: c.TotalPrice.Value.Mul(CommissionRate)}.Round2()
		earned[c.Vendor] = earned[c.Vendor].Add(e)
		count[c.Vendor]++
		rep.ByContract = append(rep.ByContract, ContractCommission{
			ContractID:   c.ID,
			LocationCode: c.LocationCode,
			Vendor:       c.Vendor,
			Price:        c.TotalPrice,
			Earned:       e,
		})
	}

	paid := make(map[string]ledger.Money)
	for _, d := range disbursed {
		paid[d.Vendor] = paid[d.Vendor].Add(d.Amount)
	}

	names := make(map[string]bool)
	for v := range earned {
		names[v] = true
	}
	for v := range paid {
		names[v] = true
	}

	rep.TotalEarned = ledger.ZeroMoney()
	rep.TotalPaid = ledger.ZeroMoney()
	for v := range names {
		line := VendorCommission{
			Vendor:    v,
			Contracts: count[v],
			Earned:    earned[v],
			Paid:      paid[v],
			Pending:   earned[v].Sub(paid[v]),
		}
		rep.Vendors = append(rep.Vendors, line)
		rep.TotalEarned = rep.TotalEarned.Add(line.Earned)
		rep.TotalPaid = rep.TotalPaid.Add(line.Paid)
	}
	rep.TotalPending = rep.TotalEarned.Sub(rep.TotalPaid)

	sort.Slice(rep.Vendors, func(i, j int) bool {
		a, b := rep.Vendors[i], rep.Vendors[j]
		if !a.Earned.Equal(b.Earned) {
			return a.Earned.GreaterThan(b.Earned)
		}
		return a.Vendor < b.Vendor
	})
	sort.Slice(rep.ByContract, func(i, j int) bool {
		a, b := rep.ByContract[i], rep.ByContract[j]
		if !a.Earned.Equal(b.Earned) {
			return a.Earned.GreaterThan(b.Earned)
		}
		return a.LocationCode < b.LocationCode
	})
	return rep
}
