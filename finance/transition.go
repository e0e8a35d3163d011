/*
transition.go - Transition application for financial documents

PURPOSE:
  The caller contract made concrete: the table decides legality, and this
  layer stamps the lifecycle timestamps at exactly the transitions the
  table permits. Inputs are never mutated; a new value is returned.

OVERDUE GUARD:
  The invoice table allows sent -> overdue, but overdue is only a true
  statement about an invoice whose due date has passed. ApplyInvoiceTransition
  therefore rejects the overdue target while the invoice is not past due
  (or has no due date at all).
*/
package finance

import (
	"time"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// ApplyInvoiceTransition validates and applies one transition, stamping
// SentAt / PaidAt as appropriate. The second return is false when the
// transition is rejected; the input is returned unchanged in that case.
func ApplyInvoiceTransition(inv Invoice, to lifecycle.Status, at time.Time) (Invoice, bool) {
	if !InvoiceTable.Allows(inv.Status, to) {
		return inv, false
	}
	if to == InvoiceOverdue && !pastDue(inv, at) {
		return inv, false
	}
	out := inv
	out.Status = to
	switch to {
	case InvoiceSent:
		t := at
		out.SentAt = &t
	case InvoicePaid:
		t := at
		out.PaidAt = &t
	}
	return out, true
}

func pastDue(inv Invoice, at time.Time) bool {
	return inv.DueDate != nil && dateOnly(*inv.DueDate).Before(dateOnly(at))
}

// ApplyDisbursementTransition validates and applies one transition,
// stamping ApprovedAt / ReleasedAt / SettledAt. On release the released
// amount defaults to the requested amount when the caller has not set one.
func ApplyDisbursementTransition(d Disbursement, to lifecycle.Status, at time.Time) (Disbursement, bool) {
	if !BKKTable.Allows(d.Status, to) {
		return d, false
	}
	out := d
	out.Status = to
	switch to {
	case BKKApproved:
		t := at
		out.ApprovedAt = &t
	case BKKReleased:
		t := at
		out.ReleasedAt = &t
		if out.AmountReleased == 0 {
			out.AmountReleased = out.AmountRequested
		}
	case BKKSettled:
		t := at
		out.SettledAt = &t
	}
	return out, true
}
