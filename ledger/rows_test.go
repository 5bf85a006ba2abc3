package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zonavalle/credit-engine/ledger"
)

func TestEnsureColumns_BackfillsMissing(t *testing.T) {
	// GIVEN: a payment row missing the contract_id column
	rows := []ledger.Row{
		{"id": "p-1", "location": "M01-L02", "amount": "500"},
	}

	// WHEN: the schema guard runs
	healed, changed := ledger.EnsureColumns(rows, ledger.RequiredColumns[ledger.StreamPayments])

	// THEN: the column exists with its default and a write-back is requested
	require.True(t, changed)
	assert.Equal(t, "", healed[0]["contract_id"])
	assert.Equal(t, "500", healed[0]["amount"], "existing cells are untouched")
}

func TestEnsureColumns_Idempotent(t *testing.T) {
	rows := []ledger.Row{{"id": "p-1"}}

	healed, changed := ledger.EnsureColumns(rows, ledger.RequiredColumns[ledger.StreamPayments])
	require.True(t, changed)

	// Running the guard again reports nothing to do
	again, changed := ledger.EnsureColumns(healed, ledger.RequiredColumns[ledger.StreamPayments])
	assert.False(t, changed)
	assert.Equal(t, healed, again)
}

func TestEnsureColumns_DoesNotMutateInput(t *testing.T) {
	rows := []ledger.Row{{"id": "p-1"}}

	_, _ = ledger.EnsureColumns(rows, ledger.RequiredColumns[ledger.StreamPayments])

	_, leaked := rows[0]["amount"]
	assert.False(t, leaked, "input rows must stay as loaded")
}

func TestEnsureColumns_KeepsUnknownColumns(t *testing.T) {
	// Extra columns (hand-added by an operator) survive the guard
	rows := []ledger.Row{{"id": "p-1", "legacy_note": "keep me"}}

	healed, _ := ledger.EnsureColumns(rows, ledger.RequiredColumns[ledger.StreamPayments])
	assert.Equal(t, "keep me", healed[0]["legacy_note"])
}

func TestEnsureColumns_EmptyStream(t *testing.T) {
	healed, changed := ledger.EnsureColumns(nil, ledger.RequiredColumns[ledger.StreamContracts])
	assert.Empty(t, healed)
	assert.False(t, changed)
}

func TestRequiredColumns_CoverEveryStream(t *testing.T) {
	for _, stream := range ledger.Streams {
		assert.NotEmpty(t, ledger.RequiredColumns[stream], "stream %s has no schema", stream)
	}
}
