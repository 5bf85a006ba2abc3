/*
dto.go - Request/response data structures

PURPOSE:
  JSON shapes for the REST API. Amounts travel as plain decimal strings
  ("10416.67"); the api never does arithmetic, it formats what the
  credit engine computed. Display strings ("$ 10,416.67") are included
  where a frontend shows money directly.
*/
package api

import (
	"github.com/zonavalle/credit-engine/credit"
	"github.com/zonavalle/credit-engine/ledger"
)

// ErrorResponse is the standard error shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// INVENTORY
// =============================================================================

type LocationDTO struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Phase       string `json:"phase"`
	Block       int    `json:"block"`
	Lot         int    `json:"lot"`
	ListPrice   string `json:"list_price"`
	DownPayment string `json:"down_payment"`
	Commission  string `json:"commission"`
	Status      string `json:"status"`
}

func toLocationDTO(l ledger.Location) LocationDTO {
	return LocationDTO{
		ID:          l.ID,
		Code:        l.Code,
		Phase:       l.Phase,
		Block:       l.Block,
		Lot:         l.Lot,
		ListPrice:   l.ListPrice.String(),
		DownPayment: l.DownPayment.String(),
		Commission:  l.Commission.String(),
		Status:      string(l.Status),
	}
}

type CreateLocationRequest struct {
	Phase       string `json:"phase"`
	Block       int    `json:"block"`
	Lot         int    `json:"lot"`
	ListPrice   string `json:"list_price"`
	DownPayment string `json:"down_payment"`
	Commission  string `json:"commission"`
}

type UpdateLocationRequest struct {
	Phase       *string `json:"phase"`
	ListPrice   *string `json:"list_price"`
	DownPayment *string `json:"down_payment"`
	Commission  *string `json:"commission"`
	Status      *string `json:"status"`
}

// =============================================================================
// SALES
// =============================================================================

type ContractDTO struct {
	ID           string `json:"id"`
	LocationCode string `json:"location_code"`
	Client       string `json:"client"`
	Vendor       string `json:"vendor,omitempty"`
	RegisteredOn string `json:"registered_on"`
	ContractDate string `json:"contract_date,omitempty"`
	FirstDueDate string `json:"first_due_date,omitempty"`
	TotalPrice   string `json:"total_price"`
	DownRequired string `json:"down_required"`
	DownReceived string `json:"down_received"`
	TermMonths   int    `json:"term_months"`
	Installment  string `json:"installment"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

func toContractDTO(c ledger.Contract) ContractDTO {
	return ContractDTO{
		ID:           c.ID,
		LocationCode: c.LocationCode,
		Client:       c.Client,
		Vendor:       c.Vendor,
		RegisteredOn: c.RegisteredOn.String(),
		ContractDate: c.ContractDate.String(),
		FirstDueDate: c.FirstDueDate.String(),
		TotalPrice:   c.TotalPrice.String(),
		DownRequired: c.DownRequired.String(),
		DownReceived: c.DownReceived.String(),
		TermMonths:   c.TermMonths,
		Installment:  c.Installment.String(),
		Status:       string(c.Status),
		Notes:        c.Notes,
	}
}

type CreateSaleRequest struct {
	LocationCode string `json:"location_code"`
	Client       string `json:"client"`
	Vendor       string `json:"vendor"`
	Date         string `json:"date"`
	TotalPrice   string `json:"total_price"`
	DownRequired string `json:"down_required"`
	TermMonths   int    `json:"term_months"`
	Commission   string `json:"commission"`
	Notes        string `json:"notes"`
}

type UpdateSaleRequest struct {
	TotalPrice   *string `json:"total_price"`
	DownRequired *string `json:"down_required"`
	TermMonths   *int    `json:"term_months"`
	Vendor       *string `json:"vendor"`
	Notes        *string `json:"notes"`
}

type CancelContractRequest struct {
	Reason string `json:"reason"`
}

// =============================================================================
// PAYMENTS
// =============================================================================

type PaymentDTO struct {
	ID           string `json:"id"`
	ContractID   string `json:"contract_id"`
	LocationCode string `json:"location_code"`
	Client       string `json:"client"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	Method       string `json:"method,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func toPaymentDTO(p ledger.Payment) PaymentDTO {
	return PaymentDTO{
		ID:           p.ID,
		ContractID:   p.ContractID,
		LocationCode: p.LocationCode,
		Client:       p.Client,
		Date:         p.Date.String(),
		Amount:       p.Amount.String(),
		Method:       p.Method,
		Reference:    p.Reference,
		Notes:        p.Notes,
	}
}

type CreatePaymentRequest struct {
	ContractID string `json:"contract_id"`
	Date       string `json:"date"`
	Amount     string `json:"amount"`
	Method     string `json:"method"`
	Reference  string `json:"reference"`
	Notes      string `json:"notes"`
}

type UpdatePaymentRequest struct {
	Date      *string `json:"date"`
	Amount    *string `json:"amount"`
	Method    *string `json:"method"`
	Reference *string `json:"reference"`
	Notes     *string `json:"notes"`
}

// =============================================================================
// STATEMENTS AND COLLECTIONS
// =============================================================================

type ArrearsDTO struct {
	MonthsDue     int    `json:"months_due"`
	Expected      string `json:"expected"`
	AmountOverdue string `json:"amount_overdue"`
	DaysOverdue   int    `json:"days_overdue"`
	MonthsBehind  int    `json:"months_behind"`
}

func toArrearsDTO(a credit.Arrears) ArrearsDTO {
	return ArrearsDTO{
		MonthsDue:     a.MonthsDue,
		Expected:      a.Expected.String(),
		AmountOverdue: a.AmountOverdue.String(),
		DaysOverdue:   a.DaysOverdue,
		MonthsBehind:  a.MonthsBehind,
	}
}

type ScheduleRowDTO struct {
	Number  int    `json:"number"`
	DueDate string `json:"due_date"`
	Amount  string `json:"amount"`
	State   string `json:"state"`
	Paid    string `json:"paid"`
	Balance string `json:"balance"`
}

type StatementDTO struct {
	Contract       ContractDTO      `json:"contract"`
	TotalPaid      string           `json:"total_paid"`
	TotalPaidText  string           `json:"total_paid_text"`
	ProgressPct    int              `json:"progress_pct"`
	PendingBalance string           `json:"pending_balance"`
	Shortfall      string           `json:"shortfall,omitempty"`
	Arrears        *ArrearsDTO      `json:"arrears,omitempty"`
	Schedule       []ScheduleRowDTO `json:"schedule,omitempty"`
}

func toStatementDTO(st credit.Statement) StatementDTO {
	dto := StatementDTO{
		Contract:       toContractDTO(st.Contract),
		TotalPaid:      st.TotalPaid.String(),
		TotalPaidText:  st.TotalPaid.Display(),
		ProgressPct:    st.ProgressPct,
		PendingBalance: st.PendingBalance.String(),
	}
	if st.Contract.Status == ledger.ContractActive {
		a := toArrearsDTO(st.Arrears)
		dto.Arrears = &a
		for _, row := range st.Schedule {
			dto.Schedule = append(dto.Schedule, ScheduleRowDTO{
				Number:  row.Number,
				DueDate: row.DueDate.String(),
				Amount:  row.Amount.String(),
				State:   string(row.State),
				Paid:    row.Paid.String(),
				Balance: row.Balance.String(),
			})
		}
	} else {
		dto.Shortfall = st.Shortfall.String()
	}
	return dto
}

type CollectionItemDTO struct {
	Contract  ContractDTO `json:"contract"`
	TotalPaid string      `json:"total_paid"`
	Suggested string      `json:"suggested"`
	Shortfall string      `json:"shortfall,omitempty"`
	Arrears   *ArrearsDTO `json:"arrears,omitempty"`
}

func toCollectionItemDTO(it credit.CollectionItem) CollectionItemDTO {
	dto := CollectionItemDTO{
		Contract:  toContractDTO(it.Contract),
		TotalPaid: it.TotalPaid.String(),
		Suggested: it.Suggested.String(),
	}
	if it.Contract.Status == ledger.ContractActive {
		a := toArrearsDTO(it.Arrears)
		dto.Arrears = &a
	} else {
		dto.Shortfall = it.Shortfall.String()
	}
	return dto
}

// =============================================================================
// DIRECTORY, EXPENSES, COMMISSIONS
// =============================================================================

type ClientDTO struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

type ClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type VendorDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	CommissionPaid string `json:"commission_paid"`
}

type VendorRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type ExpenseDTO struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Concept  string `json:"concept,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

type ExpenseRequest struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Concept  string `json:"concept"`
	Notes    string `json:"notes"`
}

type CommissionPaymentDTO struct {
	Vendor string `json:"vendor"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Note   string `json:"note,omitempty"`
}

type CommissionPaymentRequest struct {
	Vendor string `json:"vendor"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Note   string `json:"note"`
}

// =============================================================================
// REPORTS AND DASHBOARD
// =============================================================================

type CategoryTotalDTO struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

type FinancialDTO struct {
	DownPaymentIncome  string             `json:"down_payment_income"`
	InstallmentIncome  string             `json:"installment_income"`
	TotalIncome        string             `json:"total_income"`
	TotalExpenses      string             `json:"total_expenses"`
	Net                string             `json:"net"`
	ExpensesByCategory []CategoryTotalDTO `json:"expenses_by_category"`
}

type VendorCommissionDTO struct {
	Vendor    string `json:"vendor"`
	Contracts int    `json:"contracts"`
	Earned    string `json:"earned"`
	Paid      string `json:"paid"`
	Pending   string `json:"pending"`
}

type ContractCommissionDTO struct {
	ContractID   string `json:"contract_id"`
	LocationCode string `json:"location_code"`
	Vendor       string `json:"vendor"`
	Price        string `json:"price"`
	Earned       string `json:"earned"`
}

type CommissionReportDTO struct {
	Vendors      []VendorCommissionDTO   `json:"vendors"`
	ByContract   []ContractCommissionDTO `json:"by_contract"`
	TotalEarned  string                  `json:"total_earned"`
	TotalPaid    string                  `json:"total_paid"`
	TotalPending string                  `json:"total_pending"`
}

type DashboardDTO struct {
	Sales         int    `json:"sales"`
	Clients       int    `json:"clients"`
	Collected     string `json:"collected"`
	CollectedText string `json:"collected_text"`
}
