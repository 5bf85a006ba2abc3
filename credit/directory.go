/*
directory.go - Clients, vendors, expenses, commission disbursements

PURPOSE:
  The bookkeeping side of the Service: directory maintenance and the
  money that leaves the business (expenses, vendor commission
  disbursements). Same load/modify/replace shape as the sales
  operations, one stream each.
*/
package credit

import (
	"context"
	"fmt"

	"github.com/zonavalle/credit-engine/ledger"
)

// ClientInput registers or edits a directory entry.
type ClientInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// AddClient registers a client. Directory ids count up from 1001.
func (s *Service) AddClient(ctx context.Context, in ClientInput) (ledger.Client, error) {
	if in.Name == "" {
		return ledger.Client{}, fmt.Errorf("%w: client name", ErrMissingField)
	}

	clients, err := s.Clients(ctx)
	if err != nil {
		return ledger.Client{}, err
	}
	nextID := 1001
	for _, c := range clients {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}

	client := ledger.Client{ID: nextID, Name: in.Name, Phone: in.Phone, Email: in.Email, Address: in.Address, Notes: in.Notes}
	clients = append(clients, client)
	if err := s.writeRows(ctx, ledger.StreamClients, ledger.EncodeClients(clients)); err != nil {
		return ledger.Client{}, err
	}
	return client, nil
}

// UpdateClient replaces the editable fields of a directory entry.
func (s *Service) UpdateClient(ctx context.Context, id int, in ClientInput) (ledger.Client, error) {
	if in.Name == "" {
		return ledger.Client{}, fmt.Errorf("%w: client name", ErrMissingField)
	}

	clients, err := s.Clients(ctx)
	if err != nil {
		return ledger.Client{}, err
	}
	for i, c := range clients {
		if c.ID == id {
			clients[i].Name = in.Name
			clients[i].Phone = in.Phone
			clients[i].Email = in.Email
			clients[i].Address = in.Address
			clients[i].Notes = in.Notes
			if err := s.writeRows(ctx, ledger.StreamClients, ledger.EncodeClients(clients)); err != nil {
				return ledger.Client{}, err
			}
			return clients[i], nil
		}
	}
	return ledger.Client{}, fmt.Errorf("%w: %d", ErrClientNotFound, id)
}

// DeleteClient removes a directory entry. Contracts keep the client by
// name, so removing the entry never orphans a sale.
func (s *Service) DeleteClient(ctx context.Context, id int) error {
	clients, err := s.Clients(ctx)
	if err != nil {
		return err
	}
	for i, c := range clients {
		if c.ID == id {
			clients = append(clients[:i], clients[i+1:]...)
			return s.writeRows(ctx, ledger.StreamClients, ledger.EncodeClients(clients))
		}
	}
	return fmt.Errorf("%w: %d", ErrClientNotFound, id)
}

// VendorInput registers a sales vendor.
type VendorInput struct {
	Name  string
	Phone string
	Email string
}

// AddVendor registers a vendor. Ids share the 1001-up directory range.
func (s *Service) AddVendor(ctx context.Context, in VendorInput) (ledger.Vendor, error) {
	if in.Name == "" {
		return ledger.Vendor{}, fmt.Errorf("%w: vendor name", ErrMissingField)
	}

	vendors, err := s.Vendors(ctx)
	if err != nil {
		return ledger.Vendor{}, err
	}
	nextID := 1001
	for _, v := range vendors {
		if v.ID >= nextID {
			nextID = v.ID + 1
		}
	}

	vendor := ledger.Vendor{ID: nextID, Name: in.Name, Phone: in.Phone, Email: in.Email, CommissionPaid: ledger.ZeroMoney()}
	vendors = append(vendors, vendor)
	if err := s.writeRows(ctx, ledger.StreamVendors, ledger.EncodeVendors(vendors)); err != nil {
		return ledger.Vendor{}, err
	}
	return vendor, nil
}

// ExpenseInput records an operating expense.
type ExpenseInput struct {
	Date     ledger.Date // today if zero
	Category string
	Amount   ledger.Money
	Concept  string
	Notes    string
}

func validExpenseCategory(cat string) bool {
	for _, c := range ledger.ExpenseCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// AddExpense records an expense against one of the fixed categories.
func (s *Service) AddExpense(ctx context.Context, in ExpenseInput) (ledger.Expense, error) {
	if !in.Amount.IsPositive() {
		return ledger.Expense{}, ErrInvalidAmount
	}
	if !validExpenseCategory(in.Category) {
		return ledger.Expense{}, fmt.Errorf("%w: category %q", ErrInvalidInput, in.Category)
	}

	expenses, err := s.Expenses(ctx)
	if err != nil {
		return ledger.Expense{}, err
	}
	nextID := 1
	for _, e := range expenses {
		if e.ID >= nextID {
			nextID = e.ID + 1
		}
	}

	when := in.Date
	if when.IsZero() {
		when = s.now()
	}

	expense := ledger.Expense{
		ID:       nextID,
		Date:     when,
		Category: in.Category,
		Amount:   in.Amount,
		Concept:  in.Concept,
		Notes:    in.Notes,
	}
	expenses = append(expenses, expense)
	if err := s.writeRows(ctx, ledger.StreamExpenses, ledger.EncodeExpenses(expenses)); err != nil {
		return ledger.Expense{}, err
	}
	return expense, nil
}

// UpdateExpense replaces the editable fields of an expense row.
func (s *Service) UpdateExpense(ctx context.Context, id int, in ExpenseInput) (ledger.Expense, error) {
	if !in.Amount.IsPositive() {
		return ledger.Expense{}, ErrInvalidAmount
	}
	if !validExpenseCategory(in.Category) {
		return ledger.Expense{}, fmt.Errorf("%w: category %q", ErrInvalidInput, in.Category)
	}

	expenses, err := s.Expenses(ctx)
	if err != nil {
		return ledger.Expense{}, err
	}
	for i, e := range expenses {
		if e.ID == id {
			expenses[i].Category = in.Category
			expenses[i].Amount = in.Amount
			expenses[i].Concept = in.Concept
			expenses[i].Notes = in.Notes
			if !in.Date.IsZero() {
				expenses[i].Date = in.Date
			}
			if err := s.writeRows(ctx, ledger.StreamExpenses, ledger.EncodeExpenses(expenses)); err != nil {
				return ledger.Expense{}, err
			}
			return expenses[i], nil
		}
	}
	return ledger.Expense{}, fmt.Errorf("%w: %d", ErrExpenseNotFound, id)
}

// DeleteExpense removes an expense row.
func (s *Service) DeleteExpense(ctx context.Context, id int) error {
	expenses, err := s.Expenses(ctx)
	if err != nil {
		return err
	}
	for i, e := range expenses {
		if e.ID == id {
			expenses = append(expenses[:i], expenses[i+1:]...)
			return s.writeRows(ctx, ledger.StreamExpenses, ledger.EncodeExpenses(expenses))
		}
	}
	return fmt.Errorf("%w: %d", ErrExpenseNotFound, id)
}

// CommissionInput disburses earned commission to a vendor.
type CommissionInput struct {
	Vendor string
	Amount ledger.Money
	Date   ledger.Date // today if zero
	Note   string
}

// RecordCommissionPayment appends a disbursement and bumps the vendor's
// running paid total. The disbursement row is the source of truth; the
// vendor total is a convenience the reports recompute anyway.
func (s *Service) RecordCommissionPayment(ctx context.Context, in CommissionInput) (ledger.CommissionPayment, error) {
	if in.Vendor == "" {
		return ledger.CommissionPayment{}, fmt.Errorf("%w: vendor", ErrMissingField)
	}
	if !in.Amount.IsPositive() {
		return ledger.CommissionPayment{}, ErrInvalidAmount
	}

	vendors, err := s.Vendors(ctx)
	if err != nil {
		return ledger.CommissionPayment{}, err
	}
	vidx := -1
	for i, v := range vendors {
		if v.Name == in.Vendor {
			vidx = i
			break
		}
	}
	if vidx < 0 {
		return ledger.CommissionPayment{}, fmt.Errorf("%w: %s", ErrVendorNotFound, in.Vendor)
	}

	when := in.Date
	if when.IsZero() {
		when = s.now()
	}

	disbursement := ledger.CommissionPayment{
		Vendor: in.Vendor,
		Amount: in.Amount,
		Date:   when,
		Note:   in.Note,
	}

	rows, err := s.CommissionPayments(ctx)
	if err != nil {
		return ledger.CommissionPayment{}, err
	}
	rows = append(rows, disbursement)
	if err := s.writeRows(ctx, ledger.StreamCommissionPayments, ledger.EncodeCommissionPayments(rows)); err != nil {
		return ledger.CommissionPayment{}, err
	}

	vendors[vidx].CommissionPaid = vendors[vidx].CommissionPaid.Add(in.Amount)
	if err := s.writeRows(ctx, ledger.StreamVendors, ledger.EncodeVendors(vendors)); err != nil {
		return ledger.CommissionPayment{}, err
	}
	return disbursement, nil
}
