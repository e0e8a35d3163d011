// Package finance implements the financial document variants and the
// monetary reconciliation engine: invoices, cash disbursement vouchers
// (BKK), budget consumption, settlement differences, and aging buckets.
// It uses the lifecycle engine with finance-specific transition tables.
package finance

import (
	"time"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// =============================================================================
// MONEY - Integer minor units
// =============================================================================

// Money is an amount in the smallest currency unit. Sums stay in integer
// arithmetic so aggregation is exact regardless of order; decimal is used
// only where a rate or ratio is applied (see reconcile.go).
type Money = int64

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

const (
	DocTypeInvoice      lifecycle.DocType = "invoice"
	DocTypeDisbursement lifecycle.DocType = "disbursement"
)

// Invoice statuses. Overdue is only a valid target while the invoice is
// past due; see ApplyInvoiceTransition.
const (
	InvoiceDraft     lifecycle.Status = "draft"
	InvoiceSent      lifecycle.Status = "sent"
	InvoicePaid      lifecycle.Status = "paid"
	InvoiceOverdue   lifecycle.Status = "overdue"
	InvoiceCancelled lifecycle.Status = "cancelled"
)

// Disbursement (BKK) statuses.
const (
	BKKDraft     lifecycle.Status = "draft"
	BKKPending   lifecycle.Status = "pending"
	BKKApproved  lifecycle.Status = "approved"
	BKKReleased  lifecycle.Status = "released"
	BKKSettled   lifecycle.Status = "settled"
	BKKRejected  lifecycle.Status = "rejected"
	BKKCancelled lifecycle.Status = "cancelled"
)

// InvoiceTable is the invoice state machine. Paid and cancelled are
// terminal.
var InvoiceTable = lifecycle.TransitionTable{
	InvoiceDraft:     lifecycle.NewStatusSet(InvoiceSent, InvoiceCancelled),
	InvoiceSent:      lifecycle.NewStatusSet(InvoicePaid, InvoiceOverdue, InvoiceCancelled),
	InvoiceOverdue:   lifecycle.NewStatusSet(InvoicePaid, InvoiceCancelled),
	InvoicePaid:      lifecycle.NewStatusSet(),
	InvoiceCancelled: lifecycle.NewStatusSet(),
}

// BKKTable is the disbursement state machine. Settled, rejected and
// cancelled are terminal.
var BKKTable = lifecycle.TransitionTable{
	BKKDraft:     lifecycle.NewStatusSet(BKKPending),
	BKKPending:   lifecycle.NewStatusSet(BKKApproved, BKKRejected, BKKCancelled),
	BKKApproved:  lifecycle.NewStatusSet(BKKReleased, BKKCancelled),
	BKKReleased:  lifecycle.NewStatusSet(BKKSettled),
	BKKSettled:   lifecycle.NewStatusSet(),
	BKKRejected:  lifecycle.NewStatusSet(),
	BKKCancelled: lifecycle.NewStatusSet(),
}

func init() {
	lifecycle.Register(DocTypeInvoice, InvoiceTable, InvoiceDraft)
	lifecycle.Register(DocTypeDisbursement, BKKTable, BKKDraft)
}

// =============================================================================
// INVOICE
// =============================================================================

// InvoiceLine is one billed line. Quantity and UnitPrice are validated
// strictly positive at creation; LineTotal is always recomputed, never
// trusted from input.
type InvoiceLine struct {
	Description string `json:"description"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
}

// Total returns quantity x unit price for this line.
func (l InvoiceLine) Total() Money {
	return l.Quantity * l.UnitPrice
}

// Invoice is a customer invoice row as supplied by the persistence layer.
// The engine never mutates one; transition helpers return new values.
type Invoice struct {
	ID         string           `json:"id"`
	Number     string           `json:"number"`
	CustomerID string           `json:"customer_id"`
	JobOrderID string           `json:"job_order_id"`
	Status     lifecycle.Status `json:"status"`

	Lines      []InvoiceLine `json:"lines"`
	Subtotal   Money         `json:"subtotal"`
	TaxAmount  Money         `json:"tax_amount"`
	GrandTotal Money         `json:"grand_total"`

	IssueDate time.Time  `json:"issue_date"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

// =============================================================================
// DISBURSEMENT (BKK)
// =============================================================================

// Disbursement is a cash disbursement voucher (Bukti Kas Keluar). Amounts
// fill in as the voucher moves through its lifecycle: requested at draft,
// released on release, settled on settlement.
type Disbursement struct {
	ID          string           `json:"id"`
	Number      string           `json:"number"`
	JobOrderID  string           `json:"job_order_id"`
	RequesterID string           `json:"requester_id"`
	Purpose     string           `json:"purpose"`
	Status      lifecycle.Status `json:"status"`

	AmountRequested Money `json:"amount_requested"`
	AmountReleased  Money `json:"amount_released"`
	AmountSettled   Money `json:"amount_settled"`

	RequestedAt time.Time  `json:"requested_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	ReleasedAt  *time.Time `json:"released_at,omitempty"`
	SettledAt   *time.Time `json:"settled_at,omitempty"`
}

// inactive disbursements are excluded from every monetary aggregate.
func (d Disbursement) inactive() bool {
	return d.Status == BKKRejected || d.Status == BKKCancelled
}
