/*
handlers.go - HTTP API handlers for the installment-sales system

PURPOSE:
  Exposes the credit engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the credit
  service. Handlers never compute money; they parse, call, format.

ENDPOINTS:
  Inventory:
    GET    /api/locations              List lot inventory
    POST   /api/locations              Register a lot
    PUT    /api/locations/{code}       Edit a lot

  Sales:
    GET    /api/sales                  List contracts
    POST   /api/sales                  Register a sale
    PUT    /api/sales/{id}             Correct contract terms
    POST   /api/sales/{id}/cancel      Cancel and archive
    GET    /api/sales/{id}/statement   Full credit statement

  Payments:
    GET    /api/payments               Payment history
    POST   /api/payments               Record a payment
    PUT    /api/payments/{id}          Correct a payment
    DELETE /api/payments/{id}          Delete the latest payment

  Collections and reports:
    GET    /api/collections            Outreach list with arrears
    GET    /api/commissions            Vendor commission ledger
    POST   /api/commissions/payments   Disburse commission
    GET    /api/reports/financial      Income/expense summary
    GET    /api/dashboard              Landing summary

  Directory and expenses:
    GET/POST        /api/clients       PUT/DELETE /api/clients/{id}
    GET/POST        /api/vendors
    GET/POST        /api/expenses      PUT/DELETE /api/expenses/{id}

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 503: Store temporarily unavailable (retries exhausted)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zonavalle/credit-engine/credit"
	"github.com/zonavalle/credit-engine/ledger"
	"github.com/zonavalle/credit-engine/reports"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Service *credit.Service
}

func NewHandler(svc *credit.Service) *Handler {
	return &Handler{Service: svc}
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeServiceError maps domain errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case credit.IsNotFound(err):
		writeError(w, http.StatusNotFound, "Not found", err)
	case credit.IsValidation(err):
		writeError(w, http.StatusBadRequest, "Invalid input", err)
	case ledger.IsTransient(err):
		writeError(w, http.StatusServiceUnavailable, "Storage temporarily unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

// parseMoneyField accepts "" as zero so optional amounts stay optional.
func parseMoneyField(s string) (ledger.Money, bool) {
	if s == "" {
		return ledger.ZeroMoney(), true
	}
	m, err := ledger.ParseMoney(s)
	if err != nil {
		return ledger.Money{}, false
	}
	return m, true
}

func parseDateField(s string) (ledger.Date, bool) {
	if s == "" {
		return ledger.Date{}, true
	}
	d, err := ledger.ParseDate(s)
	if err != nil {
		return ledger.Date{}, false
	}
	return d, true
}

// =============================================================================
// INVENTORY HANDLERS
// =============================================================================

// ListLocations returns the lot inventory, optionally narrowed with
// ?status=Available (etc.) or ?exclude_sold=true.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.Service.Locations(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	status := ledger.LocationStatus(r.URL.Query().Get("status"))
	excludeSold := r.URL.Query().Get("exclude_sold") == "true"

	dtos := make([]LocationDTO, 0, len(locs))
	for _, l := range locs {
		if status != "" && l.Status != status {
			continue
		}
		if excludeSold && l.Status == ledger.LocationSold {
			continue
		}
		dtos = append(dtos, toLocationDTO(l))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req CreateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	price, ok1 := parseMoneyField(req.ListPrice)
	down, ok2 := parseMoneyField(req.DownPayment)
	comm, ok3 := parseMoneyField(req.Commission)
	if !ok1 || !ok2 || !ok3 {
		writeError(w, http.StatusBadRequest, "Invalid amount", nil)
		return
	}

	loc, err := h.Service.AddLocation(r.Context(), credit.LocationInput{
		Phase:       req.Phase,
		Block:       req.Block,
		Lot:         req.Lot,
		ListPrice:   price,
		DownPayment: down,
		Commission:  comm,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLocationDTO(loc))
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req UpdateLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var upd credit.LocationUpdate
	upd.Phase = req.Phase
	if req.ListPrice != nil {
		m, ok := parseMoneyField(*req.ListPrice)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid list_price", nil)
			return
		}
		upd.ListPrice = &m
	}
	if req.DownPayment != nil {
		m, ok := parseMoneyField(*req.DownPayment)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid down_payment", nil)
			return
		}
		upd.DownPayment = &m
	}
	if req.Commission != nil {
		m, ok := parseMoneyField(*req.Commission)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid commission", nil)
			return
		}
		upd.Commission = &m
	}
	if req.Status != nil {
		st := ledger.LocationStatus(*req.Status)
		upd.Status = &st
	}

	loc, err := h.Service.UpdateLocation(r.Context(), code, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toLocationDTO(loc))
}

// =============================================================================
// SALES HANDLERS
// =============================================================================

func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.Service.Contracts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]ContractDTO, len(contracts))
	for i, c := range contracts {
		dtos[i] = toContractDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	price, ok1 := parseMoneyField(req.TotalPrice)
	down, ok2 := parseMoneyField(req.DownRequired)
	comm, ok3 := parseMoneyField(req.Commission)
	when, ok4 := parseDateField(req.Date)
	if !ok1 || !ok2 || !ok3 {
		writeError(w, http.StatusBadRequest, "Invalid amount", nil)
		return
	}
	if !ok4 {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", nil)
		return
	}

	contract, err := h.Service.RegisterSale(r.Context(), credit.SaleInput{
		LocationCode: req.LocationCode,
		Client:       req.Client,
		Vendor:       req.Vendor,
		Date:         when,
		TotalPrice:   price,
		DownRequired: down,
		TermMonths:   req.TermMonths,
		Commission:   comm,
		Notes:        req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContractDTO(contract))
}

func (h *Handler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var upd credit.SaleUpdate
	upd.Vendor = req.Vendor
	upd.Notes = req.Notes
	upd.TermMonths = req.TermMonths
	if req.TotalPrice != nil {
		m, ok := parseMoneyField(*req.TotalPrice)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid total_price", nil)
			return
		}
		upd.TotalPrice = &m
	}
	if req.DownRequired != nil {
		m, ok := parseMoneyField(*req.DownRequired)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid down_required", nil)
			return
		}
		upd.DownRequired = &m
	}

	contract, err := h.Service.UpdateSale(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toContractDTO(contract))
}

func (h *Handler) CancelContract(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req CancelContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.Service.CancelContract(r.Context(), id, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	st, err := h.Service.Statement(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatementDTO(st))
}

// =============================================================================
// PAYMENT HANDLERS
// =============================================================================

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Service.Payments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	amount, ok := parseMoneyField(req.Amount)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid amount", nil)
		return
	}
	when, ok := parseDateField(req.Date)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", nil)
		return
	}

	payment, contract, err := h.Service.RecordPayment(r.Context(), credit.PaymentInput{
		ContractID: req.ContractID,
		Date:       when,
		Amount:     amount,
		Method:     req.Method,
		Reference:  req.Reference,
		Notes:      req.Notes,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Payment  PaymentDTO  `json:"payment"`
		Contract ContractDTO `json:"contract"`
	}{toPaymentDTO(payment), toContractDTO(contract)})
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var upd credit.PaymentEdit
	upd.Method = req.Method
	upd.Reference = req.Reference
	upd.Notes = req.Notes
	if req.Amount != nil {
		m, ok := parseMoneyField(*req.Amount)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid amount", nil)
			return
		}
		upd.Amount = &m
	}
	if req.Date != nil {
		d, ok := parseDateField(*req.Date)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", nil)
			return
		}
		upd.Date = &d
	}

	payment, err := h.Service.EditPayment(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentDTO(payment))
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Service.DeletePayment(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// COLLECTIONS, REPORTS, DASHBOARD
// =============================================================================

func (h *Handler) ListCollections(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.Collections(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]CollectionItemDTO, len(items))
	for i, it := range items {
		dtos[i] = toCollectionItemDTO(it)
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) GetFinancialReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contracts, err := h.Service.Contracts(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	payments, err := h.Service.Payments(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	expenses, err := h.Service.Expenses(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	f := reports.Summarize(contracts, payments, expenses)
	dto := FinancialDTO{
		DownPaymentIncome: f.DownPaymentIncome.String(),
		InstallmentIncome: f.InstallmentIncome.String(),
		TotalIncome:       f.TotalIncome.String(),
		TotalExpenses:     f.TotalExpenses.String(),
		Net:               f.Net.String(),
	}
	for _, ct := range f.ExpensesByCategory {
		dto.ExpensesByCategory = append(dto.ExpensesByCategory, CategoryTotalDTO{
			Category: ct.Category, Total: ct.Total.String(),
		})
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) GetCommissionReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contracts, err := h.Service.Contracts(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	disbursed, err := h.Service.CommissionPayments(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	rep := reports.Commissions(contracts, disbursed)
	dto := CommissionReportDTO{
		TotalEarned:  rep.TotalEarned.String(),
		TotalPaid:    rep.TotalPaid.String(),
		TotalPending: rep.TotalPending.String(),
	}
	for _, v := range rep.Vendors {
		dto.Vendors = append(dto.Vendors, VendorCommissionDTO{
			Vendor:    v.Vendor,
			Contracts: v.Contracts,
			Earned:    v.Earned.String(),
			Paid:      v.Paid.String(),
			Pending:   v.Pending.String(),
		})
	}
	for _, c := range rep.ByContract {
		dto.ByContract = append(dto.ByContract, ContractCommissionDTO{
			ContractID:   c.ContractID,
			LocationCode: c.LocationCode,
			Vendor:       c.Vendor,
			Price:        c.Price.String(),
			Earned:       c.Earned.String(),
		})
	}
	writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) CreateCommissionPayment(w http.ResponseWriter, r *http.Request) {
	var req CommissionPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	amount, ok := parseMoneyField(req.Amount)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid amount", nil)
		return
	}
	when, ok := parseDateField(req.Date)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", nil)
		return
	}

	cp, err := h.Service.RecordCommissionPayment(r.Context(), credit.CommissionInput{
		Vendor: req.Vendor,
		Amount: amount,
		Date:   when,
		Note:   req.Note,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CommissionPaymentDTO{
		Vendor: cp.Vendor,
		Amount: cp.Amount.String(),
		Date:   cp.Date.String(),
		Note:   cp.Note,
	})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.Service.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DashboardDTO{
		Sales:         d.Sales,
		Clients:       d.Clients,
		Collected:     d.Collected.String(),
		CollectedText: d.Collected.Display(),
	})
}

// =============================================================================
// DIRECTORY AND EXPENSE HANDLERS
// =============================================================================

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.Clients(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]ClientDTO, len(clients))
	for i, c := range clients {
		dtos[i] = ClientDTO{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address, Notes: c.Notes}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c, err := h.Service.AddClient(r.Context(), credit.ClientInput(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ClientDTO{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address, Notes: c.Notes})
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid client id", err)
		return
	}
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	c, err := h.Service.UpdateClient(r.Context(), id, credit.ClientInput(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ClientDTO{ID: c.ID, Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address, Notes: c.Notes})
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid client id", err)
		return
	}
	if err := h.Service.DeleteClient(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.Service.Vendors(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]VendorDTO, len(vendors))
	for i, v := range vendors {
		dtos[i] = VendorDTO{ID: v.ID, Name: v.Name, Phone: v.Phone, Email: v.Email, CommissionPaid: v.CommissionPaid.String()}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req VendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	v, err := h.Service.AddVendor(r.Context(), credit.VendorInput(req))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, VendorDTO{ID: v.ID, Name: v.Name, Phone: v.Phone, Email: v.Email, CommissionPaid: v.CommissionPaid.String()})
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.Expenses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]ExpenseDTO, len(expenses))
	for i, e := range expenses {
		dtos[i] = ExpenseDTO{
			ID: e.ID, Date: e.Date.String(), Category: e.Category,
			Amount: e.Amount.String(), Concept: e.Concept, Notes: e.Notes,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) expenseInput(w http.ResponseWriter, r *http.Request) (credit.ExpenseInput, bool) {
	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return credit.ExpenseInput{}, false
	}
	amount, ok := parseMoneyField(req.Amount)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid amount", nil)
		return credit.ExpenseInput{}, false
	}
	when, ok := parseDateField(req.Date)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", nil)
		return credit.ExpenseInput{}, false
	}
	return credit.ExpenseInput{
		Date: when, Category: req.Category, Amount: amount,
		Concept: req.Concept, Notes: req.Notes,
	}, true
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	in, ok := h.expenseInput(w, r)
	if !ok {
		return
	}
	e, err := h.Service.AddExpense(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ExpenseDTO{
		ID: e.ID, Date: e.Date.String(), Category: e.Category,
		Amount: e.Amount.String(), Concept: e.Concept, Notes: e.Notes,
	})
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense id", err)
		return
	}
	in, ok := h.expenseInput(w, r)
	if !ok {
		return
	}
	e, err := h.Service.UpdateExpense(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ExpenseDTO{
		ID: e.ID, Date: e.Date.String(), Category: e.Category,
		Amount: e.Amount.String(), Concept: e.Concept, Notes: e.Notes,
	})
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid expense id", err)
		return
	}
	if err := h.Service.DeleteExpense(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
