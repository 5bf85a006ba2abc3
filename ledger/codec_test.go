package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonavalle/credit-engine/ledger"
)

func TestDecodeContracts_LenientOnBadCells(t *testing.T) {
	// GIVEN: a contract row with an unparseable price and date
	rows := []ledger.Row{{
		"id": "c-1", "location": "M01-L02", "client": "Ana",
		"total_price": "not-a-number", "registered_on": "13/05/2024",
		"term_months": "24", "status": "Active",
	}}

	// WHEN: decoding
	cs := ledger.DecodeContracts(rows)

	// THEN: bad cells degrade to zero values, the row survives
	require.Len(t, cs, 1)
	assert.True(t, cs[0].TotalPrice.IsZero())
	assert.True(t, cs[0].RegisteredOn.IsZero())
	assert.Equal(t, ledger.ContractActive, cs[0].Status)
}

func TestDecodeContracts_UnknownStatusBecomesPending(t *testing.T) {
	rows := []ledger.Row{{"id": "c-1", "status": "Cancelled"}}
	cs := ledger.DecodeContracts(rows)

	require.Len(t, cs, 1)
	assert.Equal(t, ledger.ContractPending, cs[0].Status)
}

func TestDecodeContracts_TermFloorsAtOne(t *testing.T) {
	rows := []ledger.Row{{"id": "c-1", "term_months": "0"}}
	assert.Equal(t, 1, ledger.DecodeContracts(rows)[0].TermMonths)

	rows = []ledger.Row{{"id": "c-2", "term_months": "-3"}}
	assert.Equal(t, 1, ledger.DecodeContracts(rows)[0].TermMonths)
}

func TestContract_EncodeDecodeRoundTrip(t *testing.T) {
	c := ledger.Contract{
		ID:           "c-1",
		LocationCode: "M02-L07",
		Client:       "Ana Torres",
		Vendor:       "Luis",
		RegisteredOn: ledger.NewDate(2024, time.January, 10),
		ContractDate: ledger.NewDate(2024, time.February, 1),
		FirstDueDate: ledger.NewDate(2024, time.March, 1),
		TotalPrice:   ledger.MoneyFromInt(300000),
		DownRequired: ledger.MoneyFromInt(50000),
		DownReceived: ledger.MoneyFromInt(50000),
		TermMonths:   24,
		Installment:  ledger.NewMoney(10416.67),
		Commission:   ledger.MoneyFromInt(9000),
		Status:       ledger.ContractActive,
		Notes:        "corner lot",
	}

	got := ledger.DecodeContracts(ledger.EncodeContracts([]ledger.Contract{c}))
	require.Len(t, got, 1)
	assert.Equal(t, c.ID, got[0].ID)
	assert.True(t, got[0].TotalPrice.Equal(c.TotalPrice))
	assert.True(t, got[0].Installment.Equal(c.Installment))
	assert.True(t, got[0].FirstDueDate.Equal(c.FirstDueDate))
	assert.Equal(t, c.Status, got[0].Status)
}

func TestDecodePayments_IntegerAmountsFromLegacyRows(t *testing.T) {
	// Hand-entered rows sometimes carry "1500.0" style floats
	rows := []ledger.Row{{"id": "p-1", "amount": "1500.0"}}
	ps := ledger.DecodePayments(rows)
	require.Len(t, ps, 1)
	assert.Equal(t, "1500.00", ps[0].Amount.String())
}

func TestArchivedContract_CarriesReason(t *testing.T) {
	ac := ledger.ArchivedContract{
		Contract: ledger.Contract{
			ID: "c-1", LocationCode: "M01-L01",
			TotalPrice: ledger.MoneyFromInt(100000), TermMonths: 12,
			Status: ledger.ContractPending,
		},
		CanceledOn: ledger.NewDate(2024, time.June, 1),
		Reason:     "buyer withdrew",
	}

	got := ledger.DecodeArchivedContracts(ledger.EncodeArchivedContracts([]ledger.ArchivedContract{ac}))
	require.Len(t, got, 1)
	assert.Equal(t, "buyer withdrew", got[0].Reason)
	assert.Equal(t, "2024-06-01", got[0].CanceledOn.String())
	assert.Equal(t, "c-1", got[0].ID)
}
