/*
codec.go - Conversion between rows and typed records

PURPOSE:
  Decodes schema-guarded rows into typed records and encodes records
  back into rows for ReplaceAll writes. Decoding is lenient the way the
  error design requires: a non-numeric price or unparseable date
  degrades to the zero value (and is logged) instead of aborting the
  whole view. Encoding is exact; every column in RequiredColumns is
  written, so a round trip re-heals the stream.
*/
package ledger

import (
	"log"
	"strconv"
	"strings"
)

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

func money(row Row, col, stream string) Money {
	m, err := ParseMoney(row[col])
	if err != nil && strings.TrimSpace(row[col]) != "" {
		log.Printf("ledger: %s row has bad %s %q, using 0", stream, col, row[col])
		return ZeroMoney()
	}
	if err != nil {
		return ZeroMoney()
	}
	return m
}

func date(row Row, col, stream string) Date {
	if strings.TrimSpace(row[col]) == "" {
		return Date{}
	}
	d, err := ParseDate(row[col])
	if err != nil {
		log.Printf("ledger: %s row has bad %s %q, skipping value", stream, col, row[col])
		return Date{}
	}
	return d
}

// =============================================================================
// LOCATIONS
// =============================================================================

func DecodeLocations(rows []Row) []Location {
	out := make([]Location, 0, len(rows))
	for _, r := range rows {
		status := LocationStatus(r["status"])
		if status == "" {
			status = LocationAvailable
		}
		out = append(out, Location{
			ID:          parseInt(r["id"]),
			Code:        r["code"],
			Phase:       r["phase"],
			Block:       parseInt(r["block"]),
			Lot:         parseInt(r["lot"]),
			ListPrice:   money(r, "list_price", StreamLocations),
			DownPayment: money(r, "down_payment", StreamLocations),
			Commission:  money(r, "commission", StreamLocations),
			Status:      status,
		})
	}
	return out
}

func EncodeLocations(locs []Location) []Row {
	rows := make([]Row, 0, len(locs))
	for _, l := range locs {
		rows = append(rows, Row{
			"id":           strconv.Itoa(l.ID),
			"code":         l.Code,
			"phase":        l.Phase,
			"block":        strconv.Itoa(l.Block),
			"lot":          strconv.Itoa(l.Lot),
			"list_price":   l.ListPrice.String(),
			"down_payment": l.DownPayment.String(),
			"commission":   l.Commission.String(),
			"status":       string(l.Status),
		})
	}
	return rows
}

// =============================================================================
// CONTRACTS
// =============================================================================

func decodeContract(r Row, stream string) Contract {
	status := ContractStatus(r["status"])
	if status != ContractActive {
		status = ContractPending
	}
	term := parseInt(r["term_months"])
	if term < 1 {
		term = 1
	}
	return Contract{
		ID:           r["id"],
		LocationCode: r["location"],
		Client:       r["client"],
		Vendor:       r["vendor"],
		RegisteredOn: date(r, "registered_on", stream),
		ContractDate: date(r, "contract_date", stream),
		FirstDueDate: date(r, "first_due_date", stream),
		TotalPrice:   money(r, "total_price", stream),
		DownRequired: money(r, "down_required", stream),
		DownReceived: money(r, "down_received", stream),
		TermMonths:   term,
		Installment:  money(r, "installment", stream),
		Commission:   money(r, "commission", stream),
		Status:       status,
		Notes:        r["notes"],
	}
}

func encodeContract(c Contract) Row {
	return Row{
		"id":             c.ID,
		"location":       c.LocationCode,
		"client":         c.Client,
		"vendor":         c.Vendor,
		"registered_on":  c.RegisteredOn.String(),
		"contract_date":  c.ContractDate.String(),
		"first_due_date": c.FirstDueDate.String(),
		"total_price":    c.TotalPrice.String(),
		"down_required":  c.DownRequired.String(),
		"down_received":  c.DownReceived.String(),
		"term_months":    strconv.Itoa(c.TermMonths),
		"installment":    c.Installment.String(),
		"commission":     c.Commission.String(),
		"status":         string(c.Status),
		"notes":          c.Notes,
	}
}

func DecodeContracts(rows []Row) []Contract {
	out := make([]Contract, 0, len(rows))
	for _, r := range rows {
		out = append(out, decodeContract(r, StreamContracts))
	}
	return out
}

func EncodeContracts(cs []Contract) []Row {
	rows := make([]Row, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, encodeContract(c))
	}
	return rows
}

// =============================================================================
// PAYMENTS
// =============================================================================

func decodePayment(r Row, stream string) Payment {
	return Payment{
		ID:           r["id"],
		ContractID:   r["contract_id"],
		LocationCode: r["location"],
		Client:       r["client"],
		Date:         date(r, "date", stream),
		Amount:       money(r, "amount", stream),
		Method:       r["method"],
		Reference:    r["reference"],
		Notes:        r["notes"],
	}
}

func encodePayment(p Payment) Row {
	return Row{
		"id":          p.ID,
		"contract_id": p.ContractID,
		"location":    p.LocationCode,
		"client":      p.Client,
		"date":        p.Date.String(),
		"amount":      p.Amount.String(),
		"method":      p.Method,
		"reference":   p.Reference,
		"notes":       p.Notes,
	}
}

func DecodePayments(rows []Row) []Payment {
	out := make([]Payment, 0, len(rows))
	for _, r := range rows {
		out = append(out, decodePayment(r, StreamPayments))
	}
	return out
}

func EncodePayments(ps []Payment) []Row {
	rows := make([]Row, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, encodePayment(p))
	}
	return rows
}

// =============================================================================
// DIRECTORY
// =============================================================================

func DecodeClients(rows []Row) []Client {
	out := make([]Client, 0, len(rows))
	for _, r := range rows {
		out = append(out, Client{
			ID:      parseInt(r["id"]),
			Name:    r["name"],
			Phone:   r["phone"],
			Email:   r["email"],
			Address: r["address"],
			Notes:   r["notes"],
		})
	}
	return out
}

func EncodeClients(cs []Client) []Row {
	rows := make([]Row, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, Row{
			"id": strconv.Itoa(c.ID), "name": c.Name, "phone": c.Phone,
			"email": c.Email, "address": c.Address, "notes": c.Notes,
		})
	}
	return rows
}

func DecodeVendors(rows []Row) []Vendor {
	out := make([]Vendor, 0, len(rows))
	for _, r := range rows {
		out = append(out, Vendor{
			ID:             parseInt(r["id"]),
			Name:           r["name"],
			Phone:          r["phone"],
			Email:          r["email"],
			CommissionPaid: money(r, "commission_paid", StreamVendors),
		})
	}
	return out
}

func EncodeVendors(vs []Vendor) []Row {
	rows := make([]Row, 0, len(vs))
	for _, v := range vs {
		rows = append(rows, Row{
			"id": strconv.Itoa(v.ID), "name": v.Name, "phone": v.Phone,
			"email": v.Email, "commission_paid": v.CommissionPaid.String(),
		})
	}
	return rows
}

// =============================================================================
// EXPENSES AND COMMISSION PAYMENTS
// =============================================================================

func DecodeExpenses(rows []Row) []Expense {
	out := make([]Expense, 0, len(rows))
	for _, r := range rows {
		out = append(out, Expense{
			ID:       parseInt(r["id"]),
			Date:     date(r, "date", StreamExpenses),
			Category: r["category"],
			Amount:   money(r, "amount", StreamExpenses),
			Concept:  r["concept"],
			Notes:    r["notes"],
		})
	}
	return out
}

func EncodeExpenses(es []Expense) []Row {
	rows := make([]Row, 0, len(es))
	for _, e := range es {
		rows = append(rows, Row{
			"id": strconv.Itoa(e.ID), "date": e.Date.String(),
			"category": e.Category, "amount": e.Amount.String(),
			"concept": e.Concept, "notes": e.Notes,
		})
	}
	return rows
}

func DecodeCommissionPayments(rows []Row) []CommissionPayment {
	out := make([]CommissionPayment, 0, len(rows))
	for _, r := range rows {
		out = append(out, CommissionPayment{
			Vendor: r["vendor"],
			Amount: money(r, "amount", StreamCommissionPayments),
			Date:   date(r, "date", StreamCommissionPayments),
			Note:   r["note"],
		})
	}
	return out
}

func EncodeCommissionPayments(cps []CommissionPayment) []Row {
	rows := make([]Row, 0, len(cps))
	for _, cp := range cps {
		rows = append(rows, Row{
			"vendor": cp.Vendor, "amount": cp.Amount.String(),
			"date": cp.Date.String(), "note": cp.Note,
		})
	}
	return rows
}

// =============================================================================
// ARCHIVE STREAMS
// =============================================================================

func DecodeArchivedContracts(rows []Row) []ArchivedContract {
	out := make([]ArchivedContract, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArchivedContract{
			Contract:   decodeContract(r, StreamArchivedContracts),
			CanceledOn: date(r, "canceled_on", StreamArchivedContracts),
			Reason:     r["reason"],
		})
	}
	return out
}

func EncodeArchivedContracts(acs []ArchivedContract) []Row {
	rows := make([]Row, 0, len(acs))
	for _, ac := range acs {
		row := encodeContract(ac.Contract)
		row["canceled_on"] = ac.CanceledOn.String()
		row["reason"] = ac.Reason
		rows = append(rows, row)
	}
	return rows
}

func DecodeArchivedPayments(rows []Row) []ArchivedPayment {
	out := make([]ArchivedPayment, 0, len(rows))
	for _, r := range rows {
		out = append(out, ArchivedPayment{
			Payment: decodePayment(r, StreamArchivedPayments),
			Reason:  r["reason"],
		})
	}
	return out
}

func EncodeArchivedPayments(aps []ArchivedPayment) []Row {
	rows := make([]Row, 0, len(aps))
	for _, ap := range aps {
		row := encodePayment(ap.Payment)
		row["reason"] = ap.Reason
		rows = append(rows, row)
	}
	return rows
}
