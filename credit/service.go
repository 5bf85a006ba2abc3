/*
service.go - Orchestration over the ledger store

PURPOSE:
  The Service is the only component that touches the Store. Every
  operation follows the same shape: load full stream snapshots (healed
  by the Schema Guard), run the pure engines over them, and issue
  whole-stream writes for whatever changed. Views recompute everything;
  nothing derived is trusted from a previous call.

WRITE ORDERING:
  The store has no cross-stream transaction. Multi-stream updates are
  ordered so that a failure half-way leaves a state the engine can
  recover from by re-derivation:
  - payments are written before the contract they graduate, because
    Replay can rebuild a contract from its payments but not the other
    way around;
  - the location status write comes last, re-applied idempotently the
    next time the transition runs.

RETRIES:
  Transient store failures are retried with capped exponential backoff.
  After the attempts are exhausted the error surfaces as-is; the
  operation's in-memory result is discarded, never half-committed.
*/
package credit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/zonavalle/credit-engine/ledger"
)

// Service exposes every operation of the sales, credit and collections
// workflows.
type Service struct {
	store   ledger.Store
	now     func() ledger.Date
	newID   func() string
	retries int
	backoff time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithClock fixes "today" for deterministic aging in tests.
func WithClock(now func() ledger.Date) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the uuid generator.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// WithRetry sets the transient-failure retry budget.
func WithRetry(attempts int, backoff time.Duration) Option {
	return func(s *Service) { s.retries = attempts; s.backoff = backoff }
}

func NewService(store ledger.Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		now:     ledger.Today,
		newID:   uuid.NewString,
		retries: 3,
		backoff: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =============================================================================
// STREAM ACCESS - load/heal/write with retry
// =============================================================================

func (s *Service) withRetry(ctx context.Context, op func() error) error {
	var err error
	delay := s.backoff
	for attempt := 0; ; attempt++ {
		if err = op(); err == nil || !ledger.IsTransient(err) {
			return err
		}
		if attempt >= s.retries {
			return err
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
}

// loadRows loads a stream, repairs its shape, and writes the repaired
// shape back exactly once when something was missing.
func (s *Service) loadRows(ctx context.Context, stream string) ([]ledger.Row, error) {
	var rows []ledger.Row
	err := s.withRetry(ctx, func() error {
		var lerr error
		rows, lerr = s.store.LoadAll(ctx, stream)
		return lerr
	})
	if err != nil {
		return nil, err
	}

	healed, changed := ledger.EnsureColumns(rows, ledger.RequiredColumns[stream])
	if changed {
		if werr := s.writeRows(ctx, stream, healed); werr != nil {
			return nil, werr
		}
		log.Printf("credit: repaired shape of stream %q", stream)
	}
	return healed, nil
}

func (s *Service) writeRows(ctx context.Context, stream string, rows []ledger.Row) error {
	return s.withRetry(ctx, func() error {
		return s.store.ReplaceAll(ctx, stream, rows)
	})
}

// Snapshot accessors. Each is a fresh read of the full stream.

func (s *Service) Locations(ctx context.Context) ([]ledger.Location, error) {
	rows, err := s.loadRows(ctx, ledger.StreamLocations)
	if err != nil {
		return nil, err
	}
	return ledger.DecodeLocations(rows), nil
}

func (s *Service) Contracts(ctx context.Context) ([]ledger.Contract, error) {
	rows, err := s.loadRows(ctx, ledger.StreamContracts)
	if err != nil {
		return nil, err
	}
	return ledger.DecodeContracts(rows), nil
}

func (s *Service) Payments(ctx context.Context) ([]ledger.Payment, error) {
	rows, err := s.loadRows(ctx, ledger.StreamPayments)
	if err != nil {
		return nil, err
	}
	return ledger.DecodePayments(rows), nil
}

func (s *Service) Clients(ctx context.Context) ([]ledger.Client, error) {
	rows, err := s.loadRows(ctx, ledger.StreamClients)
	if err != nil {
		return nil, err
	}
	return ledger.DecodeClients(rows), nil
}

func (s *Service) Vendors(ctx context.Context) ([]ledger.Vendor, error) {
	rows, err := s.loadRows(ctx, ledger.StreamVendors)
	if err != nil {
		return nil, err
	}
	return ledger.DecodeVendors(rows), nil
}

func (s *Service) Expenses(ctx context.Context) ([]ledger.Expense, error) {
	rows, err := s.loadRows(ctx, ledger.StreamExpenses)
	if err != nil {
		return nil, err
	}
	return ledger.DecodeExpenses(rows), nil
}

func (s *Service) CommissionPayments(ctx context.Context) ([]ledger.CommissionPayment, error) {
	rows, err := s.loadRows(ctx, ledger.StreamCommissionPayments)
	if err != nil {
		return nil, err
	}
	return ledger.DecodeCommissionPayments(rows), nil
}

func (s *Service) ArchivedContracts(ctx context.Context) ([]ledger.ArchivedContract, error) {
	rows, err := s.loadRows(ctx, ledger.StreamArchivedContracts)
	if err != nil {
		return nil, err
	}
	return ledger.DecodeArchivedContracts(rows), nil
}

// =============================================================================
// INVENTORY
// =============================================================================

// LocationInput registers a new lot.
type LocationInput struct {
	Phase       string
	Block       int
	Lot         int
	ListPrice   ledger.Money
	DownPayment ledger.Money
	Commission  ledger.Money
}

// AddLocation registers a lot. The code is generated from block and lot
// numbers ("M01-L05") and must be unique in inventory.
func (s *Service) AddLocation(ctx context.Context, in LocationInput) (ledger.Location, error) {
	if in.Block < 1 || in.Lot < 1 {
		return ledger.Location{}, fmt.Errorf("%w: block and lot numbers", ErrMissingField)
	}
	if in.ListPrice.IsNegative() || in.DownPayment.IsNegative() {
		return ledger.Location{}, fmt.Errorf("%w: negative price", ErrInvalidInput)
	}

	locs, err := s.Locations(ctx)
	if err != nil {
		return ledger.Location{}, err
	}

	code := fmt.Sprintf("M%02d-L%02d", in.Block, in.Lot)
	nextID := 1
	for _, l := range locs {
		if l.Code == code {
			return ledger.Location{}, fmt.Errorf("%w: %s", ErrDuplicateLocation, code)
		}
		if l.ID >= nextID {
			nextID = l.ID + 1
		}
	}

	loc := ledger.Location{
		ID:          nextID,
		Code:        code,
		Phase:       in.Phase,
		Block:       in.Block,
		Lot:         in.Lot,
		ListPrice:   in.ListPrice,
		DownPayment: in.DownPayment,
		Commission:  in.Commission,
		Status:      ledger.LocationAvailable,
	}
	locs = append(locs, loc)

	if err := s.writeRows(ctx, ledger.StreamLocations, ledger.EncodeLocations(locs)); err != nil {
		return ledger.Location{}, err
	}
	return loc, nil
}

// LocationUpdate is a partial edit; nil fields are left alone.
type LocationUpdate struct {
	Phase       *string
	ListPrice   *ledger.Money
	DownPayment *ledger.Money
	Commission  *ledger.Money
	Status      *ledger.LocationStatus
}

// UpdateLocation applies a manual edit to a lot.
func (s *Service) UpdateLocation(ctx context.Context, code string, upd LocationUpdate) (ledger.Location, error) {
	locs, err := s.Locations(ctx)
	if err != nil {
		return ledger.Location{}, err
	}

	idx := -1
	for i, l := range locs {
		if l.Code == code {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ledger.Location{}, fmt.Errorf("%w: %s", ErrLocationNotFound, code)
	}

	if upd.Status != nil {
		switch *upd.Status {
		case ledger.LocationAvailable, ledger.LocationReserved, ledger.LocationSold, ledger.LocationBlocked:
		default:
			return ledger.Location{}, fmt.Errorf("%w: status %q", ErrInvalidInput, *upd.Status)
		}
		locs[idx].Status = *upd.Status
	}
	if upd.Phase != nil {
		locs[idx].Phase = *upd.Phase
	}
	if upd.ListPrice != nil {
		locs[idx].ListPrice = *upd.ListPrice
	}
	if upd.DownPayment != nil {
		locs[idx].DownPayment = *upd.DownPayment
	}
	if upd.Commission != nil {
		locs[idx].Commission = *upd.Commission
	}

	if err := s.writeRows(ctx, ledger.StreamLocations, ledger.EncodeLocations(locs)); err != nil {
		return ledger.Location{}, err
	}
	return locs[idx], nil
}

// =============================================================================
// SALES
// =============================================================================

// SaleInput registers a new sale or reservation.
type SaleInput struct {
	LocationCode string
	Client       string // existing directory name or a new one
	Vendor       string
	Date         ledger.Date // registration date; today if zero
	TotalPrice   ledger.Money
	DownRequired ledger.Money
	TermMonths   int
	Commission   ledger.Money
	Notes        string
}

// RegisterSale creates a Pending contract on an Available lot and moves
// the lot to Reserved. A client name not yet in the directory is
// registered inline.
func (s *Service) RegisterSale(ctx context.Context, in SaleInput) (ledger.Contract, error) {
	if in.Client == "" {
		return ledger.Contract{}, fmt.Errorf("%w: client", ErrMissingField)
	}
	if !in.TotalPrice.IsPositive() {
		return ledger.Contract{}, fmt.Errorf("%w: total price", ErrInvalidAmount)
	}
	if in.DownRequired.IsNegative() || in.DownRequired.GreaterThan(in.TotalPrice) {
		return ledger.Contract{}, fmt.Errorf("%w: down payment out of range", ErrInvalidInput)
	}
	if in.TermMonths < 1 {
		return ledger.Contract{}, fmt.Errorf("%w: term must be at least one month", ErrInvalidInput)
	}

	locs, err := s.Locations(ctx)
	if err != nil {
		return ledger.Contract{}, err
	}
	locIdx := -1
	for i, l := range locs {
		if l.Code == in.LocationCode {
			locIdx = i
			break
		}
	}
	if locIdx < 0 {
		return ledger.Contract{}, fmt.Errorf("%w: %s", ErrLocationNotFound, in.LocationCode)
	}
	if locs[locIdx].Status != ledger.LocationAvailable {
		return ledger.Contract{}, fmt.Errorf("%w: %s is %s", ErrLocationUnavailable, in.LocationCode, locs[locIdx].Status)
	}

	contracts, err := s.Contracts(ctx)
	if err != nil {
		return ledger.Contract{}, err
	}
	for _, c := range contracts {
		if c.LocationCode == in.LocationCode {
			return ledger.Contract{}, fmt.Errorf("%w: %s", ErrLocationInUse, in.LocationCode)
		}
	}

	if err := s.ensureClient(ctx, in.Client); err != nil {
		return ledger.Contract{}, err
	}

	registered := in.Date
	if registered.IsZero() {
		registered = s.now()
	}

	contract := ledger.Contract{
		ID:           s.newID(),
		LocationCode: in.LocationCode,
		Client:       in.Client,
		Vendor:       in.Vendor,
		RegisteredOn: registered,
		TotalPrice:   in.TotalPrice,
		DownRequired: in.DownRequired,
		DownReceived: ledger.ZeroMoney(),
		TermMonths:   in.TermMonths,
		Installment:  InstallmentAmount(in.TotalPrice, in.DownRequired, in.TermMonths),
		Commission:   in.Commission,
		Status:       ledger.ContractPending,
		Notes:        in.Notes,
	}
	contracts = append(contracts, contract)

	if err := s.writeRows(ctx, ledger.StreamContracts, ledger.EncodeContracts(contracts)); err != nil {
		return ledger.Contract{}, err
	}

	locs[locIdx].Status = ledger.LocationReserved
	if err := s.writeRows(ctx, ledger.StreamLocations, ledger.EncodeLocations(locs)); err != nil {
		return ledger.Contract{}, err
	}
	return contract, nil
}

// ensureClient registers the name in the directory if absent.
func (s *Service) ensureClient(ctx context.Context, name string) error {
	clients, err := s.Clients(ctx)
	if err != nil {
		return err
	}
	nextID := 1001
	for _, c := range clients {
		if c.Name == name {
			return nil
		}
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}
	clients = append(clients, ledger.Client{ID: nextID, Name: name})
	return s.writeRows(ctx, ledger.StreamClients, ledger.EncodeClients(clients))
}

// SaleUpdate corrects the terms of a contract that has not graduated.
// The installment is recomputed from the corrected terms.
type SaleUpdate struct {
	TotalPrice   *ledger.Money
	DownRequired *ledger.Money
	TermMonths   *int
	Vendor       *string
	Notes        *string
}

// UpdateSale edits contract terms. Term corrections on an Active
// contract would silently rewrite history the schedule was quoted
// against, so price/down/term edits are limited to Pending contracts.
func (s *Service) UpdateSale(ctx context.Context, contractID string, upd SaleUpdate) (ledger.Contract, error) {
	contracts, err := s.Contracts(ctx)
	if err != nil {
		return ledger.Contract{}, err
	}
	idx := contractIndex(contracts, contractID)
	if idx < 0 {
		return ledger.Contract{}, fmt.Errorf("%w: %s", ErrContractNotFound, contractID)
	}
	c := contracts[idx]

	termsEdit := upd.TotalPrice != nil || upd.DownRequired != nil || upd.TermMonths != nil
	if termsEdit && c.Status == ledger.ContractActive {
		return ledger.Contract{}, fmt.Errorf("%w: terms are fixed once the contract is active", ErrInvalidInput)
	}

	if upd.TotalPrice != nil {
		if !upd.TotalPrice.IsPositive() {
			return ledger.Contract{}, fmt.Errorf("%w: total price", ErrInvalidAmount)
		}
		c.TotalPrice = *upd.TotalPrice
	}
	if upd.DownRequired != nil {
		c.DownRequired = *upd.DownRequired
	}
	if upd.TermMonths != nil {
		if *upd.TermMonths < 1 {
			return ledger.Contract{}, fmt.Errorf("%w: term must be at least one month", ErrInvalidInput)
		}
		c.TermMonths = *upd.TermMonths
	}
	if c.DownRequired.IsNegative() || c.DownRequired.GreaterThan(c.TotalPrice) {
		return ledger.Contract{}, fmt.Errorf("%w: down payment out of range", ErrInvalidInput)
	}
	if upd.Vendor != nil {
		c.Vendor = *upd.Vendor
	}
	if upd.Notes != nil {
		c.Notes = *upd.Notes
	}

	if termsEdit {
		c.Installment = InstallmentAmount(c.TotalPrice, c.DownRequired, c.TermMonths)
		// Corrected terms can change whether the down payment is
		// already covered; re-derive from the raw payment stream.
		payments, perr := s.Payments(ctx)
		if perr != nil {
			return ledger.Contract{}, perr
		}
		c = Replay(c, paymentsOf(payments, c.ID))
	}

	contracts[idx] = c
	if err := s.writeRows(ctx, ledger.StreamContracts, ledger.EncodeContracts(contracts)); err != nil {
		return ledger.Contract{}, err
	}
	if err := s.syncLocationStatus(ctx, c); err != nil {
		return ledger.Contract{}, err
	}
	return c, nil
}

// CancelContract archives a contract: the contract row moves to the
// archive stream, every payment row belonging to it is relocated to the
// payment archive, and the lot returns to Available.
func (s *Service) CancelContract(ctx context.Context, contractID, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: cancellation reason", ErrMissingField)
	}

	contracts, err := s.Contracts(ctx)
	if err != nil {
		return err
	}
	idx := contractIndex(contracts, contractID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrContractNotFound, contractID)
	}
	c := contracts[idx]

	payments, err := s.Payments(ctx)
	if err != nil {
		return err
	}

	// Relocate this contract's payments. Rows predating the stable
	// contract id (empty contract_id) are swept by location so a resold
	// lot never inherits them.
	var kept []ledger.Payment
	var moved []ledger.ArchivedPayment
	for _, p := range payments {
		owned := p.ContractID == c.ID ||
			(p.ContractID == "" && p.LocationCode == c.LocationCode)
		if owned {
			moved = append(moved, ledger.ArchivedPayment{Payment: p, Reason: reason})
			continue
		}
		kept = append(kept, p)
	}

	archContracts, err := s.ArchivedContracts(ctx)
	if err != nil {
		return err
	}
	archContracts = append(archContracts, ledger.ArchivedContract{
		Contract:   c,
		CanceledOn: s.now(),
		Reason:     reason,
	})

	archRows, err := s.loadRows(ctx, ledger.StreamArchivedPayments)
	if err != nil {
		return err
	}
	archPayments := ledger.DecodeArchivedPayments(archRows)
	archPayments = append(archPayments, moved...)

	// Archive copies first: if a later write fails the worst case is a
	// duplicate archive row, not lost money.
	if err := s.writeRows(ctx, ledger.StreamArchivedContracts, ledger.EncodeArchivedContracts(archContracts)); err != nil {
		return err
	}
	if err := s.writeRows(ctx, ledger.StreamArchivedPayments, ledger.EncodeArchivedPayments(archPayments)); err != nil {
		return err
	}
	if err := s.writeRows(ctx, ledger.StreamPayments, ledger.EncodePayments(kept)); err != nil {
		return err
	}

	contracts = append(contracts[:idx], contracts[idx+1:]...)
	if err := s.writeRows(ctx, ledger.StreamContracts, ledger.EncodeContracts(contracts)); err != nil {
		return err
	}

	return s.setLocationStatus(ctx, c.LocationCode, ledger.LocationAvailable)
}

// =============================================================================
// COLLECTIONS
// =============================================================================

// PaymentInput records one collected amount against a contract.
type PaymentInput struct {
	ContractID string
	Date       ledger.Date // today if zero
	Amount     ledger.Money
	Method     string
	Reference  string
	Notes      string
}

// validPaymentMethod accepts the known methods plus the empty string
// (method is optional on hand-entered rows).
func validPaymentMethod(method string) bool {
	if method == "" {
		return true
	}
	for _, m := range ledger.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

// RecordPayment appends a payment and runs the lifecycle transition on
// a Pending contract. The payment row is written before the contract so
// a failure between the two can be healed by replaying the stream.
func (s *Service) RecordPayment(ctx context.Context, in PaymentInput) (ledger.Payment, ledger.Contract, error) {
	if !in.Amount.IsPositive() {
		return ledger.Payment{}, ledger.Contract{}, ErrInvalidAmount
	}
	if !validPaymentMethod(in.Method) {
		return ledger.Payment{}, ledger.Contract{}, fmt.Errorf("%w: payment method %q", ErrInvalidInput, in.Method)
	}

	contracts, err := s.Contracts(ctx)
	if err != nil {
		return ledger.Payment{}, ledger.Contract{}, err
	}
	idx := contractIndex(contracts, in.ContractID)
	if idx < 0 {
		return ledger.Payment{}, ledger.Contract{}, fmt.Errorf("%w: %s", ErrContractNotFound, in.ContractID)
	}
	c := contracts[idx]

	when := in.Date
	if when.IsZero() {
		when = s.now()
	}

	payment := ledger.Payment{
		ID:           s.newID(),
		ContractID:   c.ID,
		LocationCode: c.LocationCode,
		Client:       c.Client,
		Date:         when,
		Amount:       in.Amount,
		Method:       in.Method,
		Reference:    in.Reference,
		Notes:        in.Notes,
	}

	payments, err := s.Payments(ctx)
	if err != nil {
		return ledger.Payment{}, ledger.Contract{}, err
	}
	payments = append(payments, payment)
	if err := s.writeRows(ctx, ledger.StreamPayments, ledger.EncodePayments(payments)); err != nil {
		return ledger.Payment{}, ledger.Contract{}, err
	}

	tr := ApplyPayment(c, in.Amount, when)
	c = tr.Contract
	contracts[idx] = c
	if err := s.writeRows(ctx, ledger.StreamContracts, ledger.EncodeContracts(contracts)); err != nil {
		return payment, c, err
	}

	if tr.Graduated {
		if err := s.setLocationStatus(ctx, c.LocationCode, ledger.LocationSold); err != nil {
			return payment, c, err
		}
	}
	return payment, c, nil
}

// PaymentEdit is a correction to a recorded payment; nil fields are
// left alone.
type PaymentEdit struct {
	Date      *ledger.Date
	Amount    *ledger.Money
	Method    *string
	Reference *string
	Notes     *string
}

// EditPayment applies a correction and re-derives the owning contract
// from the full payment stream.
func (s *Service) EditPayment(ctx context.Context, paymentID string, upd PaymentEdit) (ledger.Payment, error) {
	payments, err := s.Payments(ctx)
	if err != nil {
		return ledger.Payment{}, err
	}

	idx := -1
	for i, p := range payments {
		if p.ID == paymentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ledger.Payment{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, paymentID)
	}

	if upd.Amount != nil {
		if !upd.Amount.IsPositive() {
			return ledger.Payment{}, ErrInvalidAmount
		}
		payments[idx].Amount = *upd.Amount
	}
	if upd.Date != nil {
		payments[idx].Date = *upd.Date
	}
	if upd.Method != nil {
		if !validPaymentMethod(*upd.Method) {
			return ledger.Payment{}, fmt.Errorf("%w: payment method %q", ErrInvalidInput, *upd.Method)
		}
		payments[idx].Method = *upd.Method
	}
	if upd.Reference != nil {
		payments[idx].Reference = *upd.Reference
	}
	if upd.Notes != nil {
		payments[idx].Notes = *upd.Notes
	}

	if err := s.writeRows(ctx, ledger.StreamPayments, ledger.EncodePayments(payments)); err != nil {
		return ledger.Payment{}, err
	}
	if err := s.rederiveContract(ctx, payments[idx].ContractID, payments); err != nil {
		return ledger.Payment{}, err
	}
	return payments[idx], nil
}

// DeletePayment removes a payment row. Only the most recent entry of
// the stream may be deleted; older rows are corrected, not removed.
func (s *Service) DeletePayment(ctx context.Context, paymentID string) error {
	payments, err := s.Payments(ctx)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		return fmt.Errorf("%w: %s", ErrPaymentNotFound, paymentID)
	}

	last := payments[len(payments)-1]
	if last.ID != paymentID {
		for _, p := range payments {
			if p.ID == paymentID {
				return ErrNotLatestPayment
			}
		}
		return fmt.Errorf("%w: %s", ErrPaymentNotFound, paymentID)
	}

	payments = payments[:len(payments)-1]
	if err := s.writeRows(ctx, ledger.StreamPayments, ledger.EncodePayments(payments)); err != nil {
		return err
	}
	return s.rederiveContract(ctx, last.ContractID, payments)
}

// rederiveContract replays a contract's payment stream after a
// correction or deletion and syncs the lot status with the outcome.
func (s *Service) rederiveContract(ctx context.Context, contractID string, payments []ledger.Payment) error {
	if contractID == "" {
		return nil
	}
	contracts, err := s.Contracts(ctx)
	if err != nil {
		return err
	}
	idx := contractIndex(contracts, contractID)
	if idx < 0 {
		return nil // archived while we worked; nothing to sync
	}

	c := Replay(contracts[idx], paymentsOf(payments, contractID))
	contracts[idx] = c
	if err := s.writeRows(ctx, ledger.StreamContracts, ledger.EncodeContracts(contracts)); err != nil {
		return err
	}
	return s.syncLocationStatus(ctx, c)
}

// =============================================================================
// STATEMENTS AND COLLECTIONS VIEWS
// =============================================================================

// Statement is the full credit picture of one contract.
type Statement struct {
	Contract       ledger.Contract
	TotalPaid      ledger.Money
	ProgressPct    int // paid share of the total price, 0-100
	PendingBalance ledger.Money
	Shortfall      ledger.Money // Pending contracts: down payment missing
	Arrears        Arrears      // Active contracts
	Schedule       []ScheduleRow
}

// Statement recomputes everything for one contract from raw rows.
func (s *Service) Statement(ctx context.Context, contractID string) (Statement, error) {
	contracts, err := s.Contracts(ctx)
	if err != nil {
		return Statement{}, err
	}
	idx := contractIndex(contracts, contractID)
	if idx < 0 {
		return Statement{}, fmt.Errorf("%w: %s", ErrContractNotFound, contractID)
	}
	c := contracts[idx]

	payments, err := s.Payments(ctx)
	if err != nil {
		return Statement{}, err
	}
	return buildStatement(c, paymentsOf(payments, c.ID), s.now()), nil
}

func buildStatement(c ledger.Contract, payments []ledger.Payment, today ledger.Date) Statement {
	total := ledger.ZeroMoney()
	for _, p := range payments {
		total = total.Add(p.Amount)
	}

	st := Statement{
		Contract:       c,
		TotalPaid:      total,
		PendingBalance: c.TotalPrice.Sub(total).Max(ledger.ZeroMoney()),
	}
	if c.TotalPrice.IsPositive() {
		pct := total.Value.Div(c.TotalPrice.Value).Mul(intDecimal(100)).IntPart()
		if pct > 100 {
			pct = 100
		}
		st.ProgressPct = int(pct)
	}

	if c.Status == ledger.ContractActive {
		st.Arrears = AssessArrears(c, total, today)
		st.Schedule = BuildSchedule(c, total)
	} else {
		st.Shortfall = ReservationShortfall(c)
	}
	return st
}

// CollectionItem is one contract's row in the collections outlook.
type CollectionItem struct {
	Contract  ledger.Contract
	TotalPaid ledger.Money
	Arrears   Arrears
	Shortfall ledger.Money
	// Suggested is what the collector should ask for: the arrears when
	// behind, otherwise one installment (Active) or the remaining down
	// payment (Pending).
	Suggested ledger.Money
}

// Collections computes the outreach list across every contract.
func (s *Service) Collections(ctx context.Context) ([]CollectionItem, error) {
	contracts, err := s.Contracts(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]ledger.Money, len(contracts))
	for _, p := range payments {
		totals[p.ContractID] = totals[p.ContractID].Add(p.Amount)
	}

	today := s.now()
	items := make([]CollectionItem, 0, len(contracts))
	for _, c := range contracts {
		item := CollectionItem{Contract: c, TotalPaid: totals[c.ID]}
		if c.Status == ledger.ContractActive {
			item.Arrears = AssessArrears(c, item.TotalPaid, today)
			item.Suggested = c.Installment
			if item.Arrears.AmountOverdue.IsPositive() {
				item.Suggested = item.Arrears.AmountOverdue
			}
		} else {
			item.Shortfall = ReservationShortfall(c)
			item.Suggested = item.Shortfall
		}
		items = append(items, item)
	}
	return items, nil
}

// Dashboard is the landing-page summary.
type Dashboard struct {
	Sales     int
	Clients   int
	Collected ledger.Money
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	contracts, err := s.Contracts(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	clients, err := s.Clients(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	payments, err := s.Payments(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	collected := ledger.ZeroMoney()
	for _, p := range payments {
		collected = collected.Add(p.Amount)
	}
	return Dashboard{Sales: len(contracts), Clients: len(clients), Collected: collected}, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func contractIndex(contracts []ledger.Contract, id string) int {
	for i, c := range contracts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func paymentsOf(payments []ledger.Payment, contractID string) []ledger.Payment {
	var out []ledger.Payment
	for _, p := range payments {
		if p.ContractID == contractID {
			out = append(out, p)
		}
	}
	return out
}

// setLocationStatus is the lifecycle engine's write to the inventory
// stream. Re-applying it with the same arguments is a no-op write, so
// the two-stream transition can be retried safely.
func (s *Service) setLocationStatus(ctx context.Context, code string, status ledger.LocationStatus) error {
	locs, err := s.Locations(ctx)
	if err != nil {
		return err
	}
	for i, l := range locs {
		if l.Code == code {
			locs[i].Status = status
			return s.writeRows(ctx, ledger.StreamLocations, ledger.EncodeLocations(locs))
		}
	}
	return nil // lot edited away manually; nothing to sync
}

// syncLocationStatus maps a contract's state onto its lot: Active lots
// are Sold, Pending lots Reserved.
func (s *Service) syncLocationStatus(ctx context.Context, c ledger.Contract) error {
	status := ledger.LocationReserved
	if c.Status == ledger.ContractActive {
		status = ledger.LocationSold
	}
	return s.setLocationStatus(ctx, c.LocationCode, status)
}
