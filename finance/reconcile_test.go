/*
reconcile_test.go - Monetary reconciliation engine tests

ORGANIZATION:
  1. Budget reconciliation - partitioning and the exclusion property
  2. Settlement differences - sign, magnitude, classification
  3. Invoice totals - integer sums and the 11% tax rounding
  4. BKK summary - rollup including the empty-collection contract
*/
package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odnamta/gis-erp-sub004/finance"
	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

func voucher(status lifecycle.Status, requested int64) finance.Disbursement {
	return finance.Disbursement{Status: status, AmountRequested: requested}
}

// =============================================================================
// BUDGET
// =============================================================================

func TestAvailableBudget_PartitionsByStatus(t *testing.T) {
	// GIVEN: vouchers across the whole lifecycle
	requests := []finance.Disbursement{
		voucher(finance.BKKPending, 1_500_000),
		voucher(finance.BKKApproved, 500_000),
		voucher(finance.BKKReleased, 2_000_000),
		voucher(finance.BKKSettled, 1_000_000),
		voucher(finance.BKKRejected, 9_000_000),
		voucher(finance.BKKCancelled, 9_000_000),
	}

	pos := finance.AvailableBudget(10_000_000, requests)

	assert.Equal(t, int64(10_000_000), pos.BudgetAmount)
	assert.Equal(t, int64(3_000_000), pos.AlreadyDisbursed, "released + settled")
	assert.Equal(t, int64(2_000_000), pos.PendingRequests, "pending + approved")
	assert.Equal(t, int64(5_000_000), pos.Available)
}

func TestAvailableBudget_RejectedAndCancelledChangeNothing(t *testing.T) {
	active := []finance.Disbursement{
		voucher(finance.BKKReleased, 4_000_000),
		voucher(finance.BKKPending, 1_000_000),
	}
	withInactive := append([]finance.Disbursement{
		voucher(finance.BKKRejected, 7_000_000),
		voucher(finance.BKKCancelled, 3_000_000),
	}, active...)

	assert.Equal(t, finance.AvailableBudget(10_000_000, active),
		finance.AvailableBudget(10_000_000, withInactive))
}

func TestAvailableBudget_NegativeAvailableIsRepresentable(t *testing.T) {
	// Over-allocation is a state to report, not an error.
	pos := finance.AvailableBudget(1_000_000, []finance.Disbursement{
		voucher(finance.BKKReleased, 900_000),
		voucher(finance.BKKPending, 400_000),
	})
	assert.Equal(t, int64(-300_000), pos.Available)
}

func TestAvailableBudget_EmptyRequests(t *testing.T) {
	pos := finance.AvailableBudget(2_500_000, nil)
	assert.Equal(t, int64(2_500_000), pos.Available)
	assert.Zero(t, pos.AlreadyDisbursed)
	assert.Zero(t, pos.PendingRequests)
}

// =============================================================================
// SETTLEMENT
// =============================================================================

func TestSettlementDifference(t *testing.T) {
	cases := []struct {
		name             string
		released, spent  int64
		wantDiff         int64
		wantType         finance.SettlementType
	}{
		{"return", 1_000_000, 800_000, 200_000, finance.SettlementReturn},
		{"additional", 800_000, 950_000, 150_000, finance.SettlementAdditional},
		{"exact", 500_000, 500_000, 0, finance.SettlementExact},
		{"both zero", 0, 0, 0, finance.SettlementExact},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := finance.SettlementDifference(tc.released, tc.spent)
			assert.Equal(t, tc.wantDiff, s.Difference)
			assert.Equal(t, tc.wantType, s.Type)
			assert.Equal(t, tc.released, s.ReleasedAmount)
			assert.Equal(t, tc.spent, s.SpentAmount)
		})
	}
}

// =============================================================================
// INVOICE TOTALS
// =============================================================================

func TestInvoiceTotals_IntegerInputs(t *testing.T) {
	// GIVEN: lines whose subtotal divides evenly under the 11% rate
	lines := []finance.InvoiceLine{
		{Description: "ocean freight", Quantity: 2, UnitPrice: 400_000},
		{Description: "trucking", Quantity: 1, UnitPrice: 200_000},
	}

	totals := finance.InvoiceTotals(lines)

	assert.Equal(t, int64(1_000_000), totals.Subtotal)
	assert.Equal(t, int64(110_000), totals.TaxAmount)
	assert.Equal(t, int64(1_110_000), totals.GrandTotal)
}

func TestInvoiceTotals_FractionalTaxRoundsHalfUp(t *testing.T) {
	// 11% of 150 is 16.5, which rounds up to 17.
	totals := finance.InvoiceTotals([]finance.InvoiceLine{
		{Description: "doc fee", Quantity: 1, UnitPrice: 150},
	})
	assert.Equal(t, int64(17), totals.TaxAmount)
	assert.Equal(t, int64(167), totals.GrandTotal)
}

func TestInvoiceTotals_Empty(t *testing.T) {
	totals := finance.InvoiceTotals(nil)
	assert.Equal(t, finance.Totals{}, totals)
}

// =============================================================================
// BKK SUMMARY
// =============================================================================

func TestBKKSummary_EmptyCollection(t *testing.T) {
	assert.Equal(t, finance.Summary{}, finance.BKKSummary(nil))
	assert.Equal(t, finance.Summary{}, finance.BKKSummary([]finance.Disbursement{}))
}

func TestBKKSummary_Rollup(t *testing.T) {
	vouchers := []finance.Disbursement{
		{Status: finance.BKKPending, AmountRequested: 500_000},
		{Status: finance.BKKReleased, AmountRequested: 1_000_000, AmountReleased: 1_000_000},
		{Status: finance.BKKSettled, AmountRequested: 2_000_000, AmountReleased: 2_000_000, AmountSettled: 1_700_000},
		{Status: finance.BKKRejected, AmountRequested: 800_000},
	}

	s := finance.BKKSummary(vouchers)

	assert.Equal(t, int64(3_500_000), s.TotalRequested, "rejected excluded")
	assert.Equal(t, int64(3_000_000), s.TotalReleased)
	assert.Equal(t, int64(1_700_000), s.TotalSettled)
	assert.Equal(t, int64(300_000), s.PendingReturn)
}

func TestBKKSummary_OverspendDoesNotOffsetReturns(t *testing.T) {
	// One voucher under-spent by 200k, another over-spent by 500k: the
	// pending return is 200k, not -300k.
	vouchers := []finance.Disbursement{
		{Status: finance.BKKSettled, AmountReleased: 1_000_000, AmountSettled: 800_000},
		{Status: finance.BKKSettled, AmountReleased: 1_000_000, AmountSettled: 1_500_000},
	}
	assert.Equal(t, int64(200_000), finance.BKKSummary(vouchers).PendingReturn)
}
