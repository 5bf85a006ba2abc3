/*
Package ledger defines the record model and storage boundary for the
installment-sales system.

PURPOSE:
  Everything in the engine is derived from a handful of tabular record
  streams: lot inventory, sale contracts, collected payments, the
  client/vendor directory, expenses, and the archive streams for
  cancelled business. This package owns:
  - The typed records (Location, Contract, Payment, ...)
  - The loosely-typed Row form the backing store actually speaks
  - The Schema Guard that heals incomplete streams
  - The Store interface (read-all / replace-all, nothing finer)

KEY DESIGN DECISIONS:
  1. Derivation over stored state: contract status, arrears and schedules
     are recomputed from raw rows on every view. The only running figure
     a record carries is the contract's down-payment received, and even
     that can be rebuilt by replaying the payment stream.
  2. Payments reference their contract by a stable ContractID, not just
     by the location string. A lot resold after a cancellation can never
     inherit a previous buyer's payments.
  3. Money is decimal, dates are ISO on the wire. Bad cells degrade to
     zero values instead of failing a whole stream.

SEE ALSO:
  - rows.go:  Row type and Schema Guard
  - codec.go: rows <-> typed records
  - store.go: Store interface and stream names
*/
package ledger

// =============================================================================
// STATUSES
// =============================================================================

// LocationStatus is the lifecycle of a lot. Lots are never deleted once
// referenced by a sale; they only transition status.
type LocationStatus string

const (
	LocationAvailable LocationStatus = "Available"
	LocationReserved  LocationStatus = "Reserved"
	LocationSold      LocationStatus = "Sold"
	LocationBlocked   LocationStatus = "Blocked"
)

// ContractStatus: Pending is a reservation still collecting its down
// payment; Active is an amortizing contract. Cancellation is archival,
// not a status.
type ContractStatus string

const (
	ContractPending ContractStatus = "Pending"
	ContractActive  ContractStatus = "Active"
)

// PaymentMethods accepted by the collections workflow.
var PaymentMethods = []string{"Cash", "Transfer", "Deposit"}

// ExpenseCategories is the fixed expense taxonomy.
var ExpenseCategories = []string{
	"Advertising", "Commissions", "Maintenance",
	"Office Supplies", "Utilities", "Salaries", "Other",
}

// =============================================================================
// RECORDS
// =============================================================================

// Location is a lot in inventory. Code is the human identifier used
// everywhere ("M01-L05"); ID is the append-only internal sequence.
type Location struct {
	ID          int
	Code        string
	Phase       string
	Block       int
	Lot         int
	ListPrice   Money
	DownPayment Money // suggested required down payment
	Commission  Money // suggested vendor commission
	Status      LocationStatus
}

// Contract is one sale or reservation of one Location.
//
// Installment is fixed when the sale is registered:
//   (TotalPrice - DownRequired) / TermMonths, rounded to cents.
// It is never recomputed as payments arrive.
type Contract struct {
	ID           string // stable public id; payments join on this
	LocationCode string
	Client       string
	Vendor       string
	RegisteredOn Date // when the sale was entered
	ContractDate Date // set at graduation, zero while Pending
	FirstDueDate Date // first installment due date, set at graduation
	TotalPrice   Money
	DownRequired Money
	DownReceived Money
	TermMonths   int
	Installment  Money
	Commission   Money
	Status       ContractStatus
	Notes        string
}

// Payment is one collected amount. Append-only: the only mutations the
// workflow allows are correction edits and deletion of the most recent
// entry. A payment is never tagged with an installment number -
// allocation is re-derived from cumulative sums.
type Payment struct {
	ID           string
	ContractID   string
	LocationCode string
	Client       string
	Date         Date
	Amount       Money
	Method       string
	Reference    string
	Notes        string
}

// Client directory entry.
type Client struct {
	ID      int
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// Vendor directory entry. CommissionPaid mirrors the disbursement
// stream for quick display; the commissions report is the authority.
type Vendor struct {
	ID             int
	Name           string
	Phone          string
	Email          string
	CommissionPaid Money
}

// Expense is one entry of the expense ledger.
type Expense struct {
	ID       int
	Date     Date
	Category string
	Amount   Money
	Concept  string
	Notes    string
}

// CommissionPayment is a disbursement to a vendor against earned
// commissions.
type CommissionPayment struct {
	Vendor string
	Amount Money
	Date   Date
	Note   string
}

// ArchivedContract is a cancelled contract moved out of the active set.
type ArchivedContract struct {
	Contract
	CanceledOn Date
	Reason     string
}

// ArchivedPayment is a payment row relocated during cancellation. It
// keeps its originating ContractID so archived money never becomes
// ambiguous when the lot is resold.
type ArchivedPayment struct {
	Payment
	Reason string
}
