/*
rows.go - Loosely-typed rows and the Schema Guard

PURPOSE:
  The backing store speaks sequences of string-keyed rows, not typed
  records. Streams created by hand (or by older versions of the system)
  may be missing columns entirely. The Schema Guard repairs that shape
  once at the load boundary, so the rest of the engine can decode rows
  into typed records without per-field existence checks.

CONTRACT:
  EnsureColumns(rows, required) returns a row set guaranteed to contain
  every required column (missing cells filled with that column's
  default) and whether anything was actually missing. It never removes
  unknown columns, never reorders rows, and is idempotent: running it
  twice reports no further changes. The caller performs exactly one
  write-back when (and only when) the shape changed.
*/
package ledger

// Row is one loosely-typed record as stored: column name -> cell value.
type Row map[string]string

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// EnsureColumns back-fills missing columns with defaults. The input is
// not mutated. The second return reports whether a write-back is
// needed: true iff at least one cell was absent.
func EnsureColumns(rows []Row, required map[string]string) ([]Row, bool) {
	healed := make([]Row, len(rows))
	changed := false

	for i, row := range rows {
		out := row.Clone()
		for col, def := range required {
			if _, ok := out[col]; !ok {
				out[col] = def
				changed = true
			}
		}
		healed[i] = out
	}
	return healed, changed
}

// RequiredColumns declares, per stream, the columns every row must have
// and the default used to back-fill them. This is the single schema
// authority; the codec reads exactly these columns.
var RequiredColumns = map[string]map[string]string{
	StreamLocations: {
		"id": "0", "code": "", "phase": "", "block": "0", "lot": "0",
		"list_price": "0", "down_payment": "0", "commission": "0",
		"status": string(LocationAvailable),
	},
	StreamContracts: {
		"id": "", "location": "", "client": "", "vendor": "",
		"registered_on": "", "contract_date": "", "first_due_date": "",
		"total_price": "0", "down_required": "0", "down_received": "0",
		"term_months": "1", "installment": "0", "commission": "0",
		"status": string(ContractPending), "notes": "",
	},
	StreamPayments: {
		"id": "", "contract_id": "", "location": "", "client": "",
		"date": "", "amount": "0", "method": "", "reference": "", "notes": "",
	},
	StreamClients: {
		"id": "0", "name": "", "phone": "", "email": "", "address": "", "notes": "",
	},
	StreamVendors: {
		"id": "0", "name": "", "phone": "", "email": "", "commission_paid": "0",
	},
	StreamExpenses: {
		"id": "0", "date": "", "category": "", "amount": "0", "concept": "", "notes": "",
	},
	StreamCommissionPayments: {
		"vendor": "", "amount": "0", "date": "", "note": "",
	},
	StreamArchivedContracts: {
		"id": "", "location": "", "client": "", "vendor": "",
		"registered_on": "", "contract_date": "", "first_due_date": "",
		"total_price": "0", "down_required": "0", "down_received": "0",
		"term_months": "1", "installment": "0", "commission": "0",
		"status": string(ContractPending), "notes": "",
		"canceled_on": "", "reason": "",
	},
	StreamArchivedPayments: {
		"id": "", "contract_id": "", "location": "", "client": "",
		"date": "", "amount": "0", "method": "", "reference": "", "notes": "",
		"reason": "",
	},
}
