/*
aging.go - Aging bucket classification for receivables and payables

PURPOSE:
  Classifies every open invoice into exactly one of five fixed buckets by
  how far past due it is, and rolls a collection up into the aging report.

THE PARTITION IS TOTAL:
  - Every open record lands in exactly one bucket
  - The report always contains all five buckets, in order, even when empty
  - Bucket totals sum to the filtered outstanding total, exactly

DATE POLICY:
  Both sides are truncated to midnight before differencing, so the time of
  day never moves a record across a bucket edge. Records with no due date
  are current by definition.

EXCLUSIONS:
  Paid and cancelled records are settled history, not outstanding balance,
  and are excluded before bucketing.

SEE ALSO:
  - reconcile.go: The integer-sum arithmetic policy
  - reporting: Dashboard rollups built on these buckets
*/
package finance

import (
	"time"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// =============================================================================
// AGING BUCKETS - Fixed, ordered
// =============================================================================

type AgingBucket string

const (
	BucketCurrent AgingBucket = "current"
	Bucket1To30   AgingBucket = "1-30 days"
	Bucket31To60  AgingBucket = "31-60 days"
	Bucket61To90  AgingBucket = "61-90 days"
	BucketOver90  AgingBucket = "over 90 days"
)

// AgingBuckets returns the five buckets in report order.
func AgingBuckets() []AgingBucket {
	return []AgingBucket{BucketCurrent, Bucket1To30, Bucket31To60, Bucket61To90, BucketOver90}
}

// dateOnly truncates to midnight UTC so day differences are whole days
// regardless of time zone or DST.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysOverdue returns whole days between the due date and the reference
// date, both truncated to midnight. Negative means not yet due.
func DaysOverdue(dueDate, asOf time.Time) int {
	return int(dateOnly(asOf).Sub(dateOnly(dueDate)).Hours() / 24)
}

// BucketFor classifies one record. A nil due date is current.
func BucketFor(dueDate *time.Time, asOf time.Time) AgingBucket {
	if dueDate == nil {
		return BucketCurrent
	}
	days := DaysOverdue(*dueDate, asOf)
	switch {
	case days <= 0:
		return BucketCurrent
	case days <= 30:
		return Bucket1To30
	case days <= 60:
		return Bucket31To60
	case days <= 90:
		return Bucket61To90
	default:
		return BucketOver90
	}
}

// =============================================================================
// AGING REPORT
// =============================================================================

// AgedItem is the minimal view of a receivable or payable the report
// needs. Both customer invoices and vendor invoices reduce to it.
type AgedItem struct {
	DueDate *time.Time
	Amount  Money
	Status  lifecycle.Status
}

// BucketTotal is one row of the aging report.
type BucketTotal struct {
	Bucket      AgingBucket `json:"bucket"`
	Count       int         `json:"count"`
	TotalAmount Money       `json:"total_amount"`
}

// settled records carry no outstanding balance.
func settled(s lifecycle.Status) bool {
	return s == InvoicePaid || s == InvoiceCancelled
}

// GroupByAgingBucket buckets a collection as of the given date. The
// result always holds the five buckets in fixed order; their totals sum
// to TotalOutstanding over the same records.
func GroupByAgingBucket(items []AgedItem, asOf time.Time) []BucketTotal {
	index := make(map[AgingBucket]int, 5)
	out := make([]BucketTotal, 0, 5)
	for i, b := range AgingBuckets() {
		index[b] = i
		out = append(out, BucketTotal{Bucket: b})
	}
	for _, it := range items {
		if settled(it.Status) {
			continue
		}
		i := index[BucketFor(it.DueDate, asOf)]
		out[i].Count++
		out[i].TotalAmount += it.Amount
	}
	return out
}

// TotalOutstanding sums the unsettled records of a collection.
func TotalOutstanding(items []AgedItem) Money {
	var total Money
	for _, it := range items {
		if settled(it.Status) {
			continue
		}
		total += it.Amount
	}
	return total
}

// AgedInvoices adapts invoices to the report's view.
func AgedInvoices(invoices []Invoice) []AgedItem {
	out := make([]AgedItem, len(invoices))
	for i, inv := range invoices {
		out[i] = AgedItem{DueDate: inv.DueDate, Amount: inv.GrandTotal, Status: inv.Status}
	}
	return out
}
