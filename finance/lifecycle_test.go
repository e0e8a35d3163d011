/*
lifecycle_test.go - Invoice and BKK state machine tests

PURPOSE:
  Pins the two financial transition tables down pair by pair and checks
  that transition application stamps timestamps only at the transitions
  the tables permit.
*/
package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odnamta/gis-erp-sub004/finance"
	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBKKTable_AllowedTransitions(t *testing.T) {
	allowed := map[lifecycle.Status][]lifecycle.Status{
		finance.BKKDraft:     {finance.BKKPending},
		finance.BKKPending:   {finance.BKKApproved, finance.BKKRejected, finance.BKKCancelled},
		finance.BKKApproved:  {finance.BKKReleased, finance.BKKCancelled},
		finance.BKKReleased:  {finance.BKKSettled},
		finance.BKKSettled:   {},
		finance.BKKRejected:  {},
		finance.BKKCancelled: {},
	}
	for from, targets := range allowed {
		want := lifecycle.NewStatusSet(targets...)
		for _, to := range finance.BKKTable.Statuses() {
			assert.Equal(t, want.Has(to), finance.BKKTable.Allows(from, to),
				"BKK pair (%s, %s)", from, to)
		}
	}
}

func TestInvoiceTable_AllowedTransitions(t *testing.T) {
	allowed := map[lifecycle.Status][]lifecycle.Status{
		finance.InvoiceDraft:     {finance.InvoiceSent, finance.InvoiceCancelled},
		finance.InvoiceSent:      {finance.InvoicePaid, finance.InvoiceOverdue, finance.InvoiceCancelled},
		finance.InvoiceOverdue:   {finance.InvoicePaid, finance.InvoiceCancelled},
		finance.InvoicePaid:      {},
		finance.InvoiceCancelled: {},
	}
	for from, targets := range allowed {
		want := lifecycle.NewStatusSet(targets...)
		for _, to := range finance.InvoiceTable.Statuses() {
			assert.Equal(t, want.Has(to), finance.InvoiceTable.Allows(from, to),
				"invoice pair (%s, %s)", from, to)
		}
	}
}

func TestApplyInvoiceTransition_OverdueRequiresPastDue(t *testing.T) {
	// GIVEN: a sent invoice due March 10
	due := date(2025, time.March, 10)
	inv := finance.Invoice{Status: finance.InvoiceSent, DueDate: &due}

	// WHEN: marking overdue on the due date itself
	// THEN: rejected; the invoice is not yet past due
	_, ok := finance.ApplyInvoiceTransition(inv, finance.InvoiceOverdue, date(2025, time.March, 10))
	assert.False(t, ok, "due today is not past due")

	// WHEN: marking overdue the day after
	next, ok := finance.ApplyInvoiceTransition(inv, finance.InvoiceOverdue, date(2025, time.March, 11))
	require.True(t, ok)
	assert.Equal(t, finance.InvoiceOverdue, next.Status)

	// A sent invoice with no due date can never go overdue.
	noDue := finance.Invoice{Status: finance.InvoiceSent}
	_, ok = finance.ApplyInvoiceTransition(noDue, finance.InvoiceOverdue, date(2025, time.March, 11))
	assert.False(t, ok)
}

func TestApplyInvoiceTransition_StampsTimestamps(t *testing.T) {
	inv := finance.Invoice{Status: finance.InvoiceDraft}
	at := date(2025, time.April, 1)

	sent, ok := finance.ApplyInvoiceTransition(inv, finance.InvoiceSent, at)
	require.True(t, ok)
	require.NotNil(t, sent.SentAt)
	assert.Equal(t, at, *sent.SentAt)
	// Input untouched.
	assert.Nil(t, inv.SentAt)
	assert.Equal(t, finance.InvoiceDraft, inv.Status)

	paid, ok := finance.ApplyInvoiceTransition(sent, finance.InvoicePaid, at.AddDate(0, 0, 5))
	require.True(t, ok)
	require.NotNil(t, paid.PaidAt)

	// Paid is terminal.
	_, ok = finance.ApplyInvoiceTransition(paid, finance.InvoiceCancelled, at)
	assert.False(t, ok)
}

func TestApplyDisbursementTransition_ReleaseDefaultsToRequested(t *testing.T) {
	d := finance.Disbursement{Status: finance.BKKApproved, AmountRequested: 1_000_000}
	at := date(2025, time.May, 2)

	released, ok := finance.ApplyDisbursementTransition(d, finance.BKKReleased, at)
	require.True(t, ok)
	assert.Equal(t, int64(1_000_000), released.AmountReleased)
	require.NotNil(t, released.ReleasedAt)

	// An explicitly set released amount is kept.
	d.AmountReleased = 800_000
	released, ok = finance.ApplyDisbursementTransition(d, finance.BKKReleased, at)
	require.True(t, ok)
	assert.Equal(t, int64(800_000), released.AmountReleased)
}

func TestApplyDisbursementTransition_IllegalLeavesInputUnchanged(t *testing.T) {
	d := finance.Disbursement{Status: finance.BKKDraft}
	out, ok := finance.ApplyDisbursementTransition(d, finance.BKKSettled, date(2025, time.May, 2))
	assert.False(t, ok)
	assert.Equal(t, d, out)
}
