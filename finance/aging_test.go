/*
aging_test.go - Aging bucket classification tests

ORGANIZATION:
  1. Bucket edges - every boundary day lands where the partition says
  2. Report shape - all five buckets, fixed order, even when empty
  3. Conservation - bucket totals sum to the filtered outstanding total
*/
package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odnamta/gis-erp-sub004/finance"
)

func due(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestBucketFor_Boundaries(t *testing.T) {
	asOf := date(2025, time.June, 30)
	cases := []struct {
		name string
		due  *time.Time
		want finance.AgingBucket
	}{
		{"due in the future", due(2025, time.July, 15), finance.BucketCurrent},
		{"due today", due(2025, time.June, 30), finance.BucketCurrent},
		{"1 day overdue", due(2025, time.June, 29), finance.Bucket1To30},
		{"30 days overdue", due(2025, time.May, 31), finance.Bucket1To30},
		{"31 days overdue", due(2025, time.May, 30), finance.Bucket31To60},
		{"60 days overdue", due(2025, time.May, 1), finance.Bucket31To60},
		{"61 days overdue", due(2025, time.April, 30), finance.Bucket61To90},
		{"90 days overdue", due(2025, time.April, 1), finance.Bucket61To90},
		{"91 days overdue", due(2025, time.March, 31), finance.BucketOver90},
		{"no due date", nil, finance.BucketCurrent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, finance.BucketFor(tc.due, asOf))
		})
	}
}

func TestBucketFor_TimeOfDayIsIgnored(t *testing.T) {
	// GIVEN: a due date late in the evening and a reference early in the
	// morning of the next day
	dueAt := time.Date(2025, time.June, 29, 23, 50, 0, 0, time.UTC)
	asOf := time.Date(2025, time.June, 30, 0, 5, 0, 0, time.UTC)
	// THEN: a full calendar day separates them
	assert.Equal(t, finance.Bucket1To30, finance.BucketFor(&dueAt, asOf))
}

func TestGroupByAgingBucket_EmptyInputKeepsAllFiveBuckets(t *testing.T) {
	buckets := finance.GroupByAgingBucket(nil, date(2025, time.June, 30))
	require.Len(t, buckets, 5)
	for i, want := range finance.AgingBuckets() {
		assert.Equal(t, want, buckets[i].Bucket)
		assert.Zero(t, buckets[i].Count)
		assert.Zero(t, buckets[i].TotalAmount)
	}
}

func TestGroupByAgingBucket_TotalsConserved(t *testing.T) {
	asOf := date(2025, time.June, 30)
	items := []finance.AgedItem{
		{DueDate: due(2025, time.July, 10), Amount: 1_000_000, Status: finance.InvoiceSent},
		{DueDate: due(2025, time.June, 15), Amount: 2_500_000, Status: finance.InvoiceOverdue},
		{DueDate: due(2025, time.April, 20), Amount: 750_000, Status: finance.InvoiceOverdue},
		{DueDate: due(2025, time.January, 2), Amount: 4_000_000, Status: finance.InvoiceOverdue},
		{DueDate: nil, Amount: 300_000, Status: finance.InvoiceSent},
		// Settled history must not appear anywhere.
		{DueDate: due(2025, time.March, 1), Amount: 9_999_999, Status: finance.InvoicePaid},
		{DueDate: due(2025, time.March, 1), Amount: 9_999_999, Status: finance.InvoiceCancelled},
	}

	buckets := finance.GroupByAgingBucket(items, asOf)
	require.Len(t, buckets, 5)

	var sum int64
	var count int
	for _, b := range buckets {
		sum += b.TotalAmount
		count += b.Count
	}
	assert.Equal(t, finance.TotalOutstanding(items), sum, "bucket totals must sum to the filtered total exactly")
	assert.Equal(t, 5, count, "paid and cancelled are excluded")

	// Spot-check placement.
	assert.Equal(t, int64(1_300_000), buckets[0].TotalAmount, "current: future due + no due date")
	assert.Equal(t, int64(2_500_000), buckets[1].TotalAmount, "1-30 days")
	assert.Equal(t, int64(750_000), buckets[3].TotalAmount, "61-90 days")
	assert.Equal(t, int64(4_000_000), buckets[4].TotalAmount, "over 90 days")
}

func TestGroupByAgingBucket_Idempotent(t *testing.T) {
	asOf := date(2025, time.June, 30)
	items := []finance.AgedItem{
		{DueDate: due(2025, time.June, 1), Amount: 100, Status: finance.InvoiceSent},
		{DueDate: due(2025, time.February, 1), Amount: 200, Status: finance.InvoiceOverdue},
	}
	first := finance.GroupByAgingBucket(items, asOf)
	second := finance.GroupByAgingBucket(items, asOf)
	assert.Equal(t, first, second)
}
