/*
reconcile.go - Monetary reconciliation engine

PURPOSE:
  Computes every derived monetary figure in the system: budget consumption
  for a job order, settlement differences on released cash, invoice totals,
  and the BKK summary rollup. This is the central calculation that answers
  "where did the money go?".

BUDGET COMPONENTS:
  BudgetAmount:     The job order's operational budget
  AlreadyDisbursed: Cash out the door (released or settled vouchers)
  PendingRequests:  Committed but not yet released (pending or approved)
  Available:        BudgetAmount - AlreadyDisbursed - PendingRequests

  Rejected and cancelled vouchers are excluded entirely: they never held
  budget. Available may go negative; over-allocation is representable and
  it is the approver's screen, not this engine, that decides what to do
  about it.

ARITHMETIC POLICY:
  Sums are int64 minor units, so aggregation is exact and order-free.
  The only non-integer operation is the tax rate, applied through decimal
  and rounded half-up to the nearest minor unit.

EXAMPLE:
  Budget 10,000,000 with one settled voucher of 4,000,000 and one pending
  of 1,500,000:

    Available = 10,000,000 - 4,000,000 - 1,500,000 = 4,500,000

SEE ALSO:
  - aging.go: Receivable/payable bucket classification
  - types.go: Document variants and status tables
*/
package finance

import "github.com/shopspring/decimal"

// TaxRate is the flat VAT rate applied to invoice subtotals (11%).
var TaxRate = decimal.NewFromFloat(0.11)

// =============================================================================
// BUDGET POSITION
// =============================================================================

// BudgetPosition is the reconciled budget for one job order.
type BudgetPosition struct {
	BudgetAmount     Money `json:"budget_amount"`
	AlreadyDisbursed Money `json:"already_disbursed"`
	PendingRequests  Money `json:"pending_requests"`
	Available        Money `json:"available"`
}

// AvailableBudget partitions the job order's vouchers and reconciles them
// against the budget. Inactive vouchers (rejected, cancelled) are excluded;
// released and settled count as disbursed; pending and approved count as
// committed.
func AvailableBudget(budget Money, requests []Disbursement) BudgetPosition {
	var disbursed, pending Money
	for _, r := range requests {
		if r.inactive() {
			continue
		}
		switch r.Status {
		case BKKReleased, BKKSettled:
			disbursed += r.AmountRequested
		case BKKPending, BKKApproved:
			pending += r.AmountRequested
		}
	}
	return BudgetPosition{
		BudgetAmount:     budget,
		AlreadyDisbursed: disbursed,
		PendingRequests:  pending,
		Available:        budget - disbursed - pending,
	}
}

// =============================================================================
// SETTLEMENT DIFFERENCE
// =============================================================================

type SettlementType string

const (
	SettlementReturn     SettlementType = "return"     // spent less than released
	SettlementAdditional SettlementType = "additional" // spent more than released
	SettlementExact      SettlementType = "exact"
)

// Settlement classifies the gap between cash released and cash spent.
// Difference is the absolute gap; the direction lives in Type.
type Settlement struct {
	ReleasedAmount Money          `json:"released_amount"`
	SpentAmount    Money          `json:"spent_amount"`
	Difference     Money          `json:"difference"`
	Type           SettlementType `json:"type"`
}

// SettlementDifference compares released against spent cash.
func SettlementDifference(released, spent Money) Settlement {
	s := Settlement{ReleasedAmount: released, SpentAmount: spent}
	switch {
	case spent < released:
		s.Difference = released - spent
		s.Type = SettlementReturn
	case spent > released:
		s.Difference = spent - released
		s.Type = SettlementAdditional
	default:
		s.Type = SettlementExact
	}
	return s
}

// =============================================================================
// INVOICE TOTALS
// =============================================================================

// Totals is the derived monetary block of an invoice.
type Totals struct {
	Subtotal   Money `json:"subtotal"`
	TaxAmount  Money `json:"tax_amount"`
	GrandTotal Money `json:"grand_total"`
}

// InvoiceTotals computes subtotal, tax, and grand total from line items.
// The subtotal is an exact integer sum; tax is the flat rate applied via
// decimal and rounded half-up to the nearest minor unit, so the grand
// total is again an exact integer.
func InvoiceTotals(lines []InvoiceLine) Totals {
	var subtotal Money
	for _, l := range lines {
		subtotal += l.Total()
	}
	tax := decimal.NewFromInt(subtotal).Mul(TaxRate).Round(0).IntPart()
	return Totals{
		Subtotal:   subtotal,
		TaxAmount:  tax,
		GrandTotal: subtotal + tax,
	}
}

// =============================================================================
// BKK SUMMARY
// =============================================================================

// Summary is the disbursement rollup shown on the BKK dashboard.
// PendingReturn is cash released but not accounted for by settlements:
// the sum over settled vouchers of max(released - settled, 0).
type Summary struct {
	TotalRequested Money `json:"total_requested"`
	TotalReleased  Money `json:"total_released"`
	TotalSettled   Money `json:"total_settled"`
	PendingReturn  Money `json:"pending_return"`
}

// BKKSummary rolls up a voucher collection. Inactive vouchers are
// excluded; an empty collection yields the zero summary, never an error.
func BKKSummary(requests []Disbursement) Summary {
	var s Summary
	for _, r := range requests {
		if r.inactive() {
			continue
		}
		s.TotalRequested += r.AmountRequested
		switch r.Status {
		case BKKReleased:
			s.TotalReleased += r.AmountReleased
		case BKKSettled:
			s.TotalReleased += r.AmountReleased
			s.TotalSettled += r.AmountSettled
			if ret := r.AmountReleased - r.AmountSettled; ret > 0 {
				s.PendingReturn += ret
			}
		}
	}
	return s
}
