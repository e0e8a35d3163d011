/*
ranking.go - Customer rankings and period trends

PURPOSE:
  Ranks customers by summed job value within a period and derives the
  trend against the previous period. Sorting is fully deterministic:
  value descending, customer ID ascending on ties, so re-running the
  ranking on the same input always yields the same order.

TREND RULES:
  current > previous  -> up
  current < previous  -> down
  current == previous -> stable
  A customer absent from the previous period has previous == 0, so any
  current value trends up and a zero current value is stable.
*/
package reporting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/odnamta/gis-erp-sub004/finance"
)

// =============================================================================
// JOB RECORDS
// =============================================================================

// JobRecord is the minimal view of a job order the rankings need.
// Period is the reporting bucket the job falls in (e.g. "2025-08").
type JobRecord struct {
	CustomerID   string
	CustomerName string
	Period       string
	Value        finance.Money
}

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// TopCustomer is one row of the customer ranking.
type TopCustomer struct {
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	JobCount     int           `json:"job_count"`
	TotalValue   finance.Money `json:"total_value"`
	AvgValue     finance.Money `json:"avg_value"`
	Trend        Trend         `json:"trend"`
}

// =============================================================================
// RANKING
// =============================================================================

// RankByValue ranks customers by their summed job value within
// currentPeriod, with the trend taken against previousPeriod. Customers
// with no jobs in the current period do not appear, even if they had
// jobs previously. Empty input yields an empty, non-nil ranking.
func RankByValue(records []JobRecord, currentPeriod, previousPeriod string) []TopCustomer {
	type acc struct {
		name    string
		count   int
		current finance.Money
		prev    finance.Money
	}
	byCustomer := make(map[string]*acc)
	for _, r := range records {
		if r.Period != currentPeriod && r.Period != previousPeriod {
			continue
		}
		a, ok := byCustomer[r.CustomerID]
		if !ok {
			a = &acc{name: r.CustomerName}
			byCustomer[r.CustomerID] = a
		}
		if r.Period == currentPeriod {
			a.count++
			a.current += r.Value
		} else {
			a.prev += r.Value
		}
	}

	out := make([]TopCustomer, 0, len(byCustomer))
	for id, a := range byCustomer {
		if a.count == 0 {
			continue
		}
		out = append(out, TopCustomer{
			CustomerID:   id,
			CustomerName: a.name,
			JobCount:     a.count,
			TotalValue:   a.current,
			AvgValue:     avg(a.current, a.count),
			Trend:        trend(a.current, a.prev),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalValue != out[j].TotalValue {
			return out[i].TotalValue > out[j].TotalValue
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	return out
}

// TopN returns the first n rows of the ranking; n <= 0 or beyond the end
// returns the whole ranking.
func TopN(ranked []TopCustomer, n int) []TopCustomer {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// avg divides total value by job count, rounded half-up to a minor unit.
func avg(total finance.Money, count int) finance.Money {
	if count == 0 {
		return 0
	}
	return decimal.NewFromInt(total).
		Div(decimal.NewFromInt(int64(count))).
		Round(0).IntPart()
}

func trend(current, previous finance.Money) Trend {
	switch {
	case current > previous:
		return TrendUp
	case current < previous:
		return TrendDown
	default:
		return TrendStable
	}
}
