/*
Package reporting implements the aggregation and rollup engine behind the
management dashboards: proforma job order pipeline, win/loss analysis,
customer rankings with trends, and conversion rates.

PURPOSE:
  Every function here groups an already-fetched collection by a derived
  key and reduces it to counts and sums. The engine never touches the
  database and never throws on empty input: an empty collection rolls up
  to zero-valued aggregates with the full fixed bucket structure intact.

ARITHMETIC POLICY:
  Value sums are exact int64 minor units. Percentages and averages go
  through decimal and are rounded half-up. Win/loss percentages are
  rounded per bucket independently; the three may sum to 99-101 and are
  deliberately NOT back-derived from each other.

SEE ALSO:
  - ranking.go: Customer rankings and period trends
  - finance/aging.go: The aging rollup these dashboards also surface
*/
package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/odnamta/gis-erp-sub004/finance"
	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// =============================================================================
// PIPELINE RECORDS
// =============================================================================

// Pipeline stages in report order. Approved and converted share the
// approved status and are split by the conversion flag.
type Stage string

const (
	StageDraft           Stage = "draft"
	StagePendingApproval Stage = "pending_approval"
	StageApproved        Stage = "approved"
	StageConverted       Stage = "converted"
	StageRejected        Stage = "rejected"
)

// Stages returns the five pipeline stages in fixed order.
func Stages() []Stage {
	return []Stage{StageDraft, StagePendingApproval, StageApproved, StageConverted, StageRejected}
}

// PipelineRecord is the minimal view of a proforma job order the rollups
// need. Converted marks an approved PJO that became a job order.
// Inactive records are excluded from every rollup.
type PipelineRecord struct {
	Status    lifecycle.Status
	Value     finance.Money
	Converted bool
	Inactive  bool
}

func (r PipelineRecord) stage() (Stage, bool) {
	switch r.Status {
	case "draft":
		return StageDraft, true
	case "pending_approval":
		return StagePendingApproval, true
	case "approved":
		if r.Converted {
			return StageConverted, true
		}
		return StageApproved, true
	case "rejected":
		return StageRejected, true
	}
	return "", false
}

// =============================================================================
// PIPELINE ROLLUP
// =============================================================================

// PipelineEntry is one stage of the pipeline dashboard.
type PipelineEntry struct {
	Stage Stage         `json:"stage"`
	Count int           `json:"count"`
	Value finance.Money `json:"value"`
}

// GroupByPipelineStage rolls records up into exactly five entries in
// fixed stage order. Inactive records and unknown statuses are excluded;
// empty input yields the five zero entries.
func GroupByPipelineStage(records []PipelineRecord) []PipelineEntry {
	index := make(map[Stage]int, 5)
	out := make([]PipelineEntry, 0, 5)
	for i, s := range Stages() {
		index[s] = i
		out = append(out, PipelineEntry{Stage: s})
	}
	for _, r := range records {
		if r.Inactive {
			continue
		}
		stage, ok := r.stage()
		if !ok {
			continue
		}
		i := index[stage]
		out[i].Count++
		out[i].Value += r.Value
	}
	return out
}

// =============================================================================
// WIN / LOSS
// =============================================================================

// WinLossBucket is one of the three outcome buckets. Percentage is of
// record counts against the three-bucket total, rounded half-up per
// bucket.
type WinLossBucket struct {
	Count      int           `json:"count"`
	Value      finance.Money `json:"value"`
	Percentage int           `json:"percentage"`
}

// WinLoss is the win/loss dashboard block. Won is converted PJOs, lost
// is rejected ones, pending is everything else still in flight.
type WinLoss struct {
	Won     WinLossBucket `json:"won"`
	Lost    WinLossBucket `json:"lost"`
	Pending WinLossBucket `json:"pending"`
}

// WinLossData rolls records up into won/lost/pending. Empty input yields
// all-zero buckets.
func WinLossData(records []PipelineRecord) WinLoss {
	var wl WinLoss
	for _, r := range records {
		if r.Inactive {
			continue
		}
		stage, ok := r.stage()
		if !ok {
			continue
		}
		switch stage {
		case StageConverted:
			wl.Won.Count++
			wl.Won.Value += r.Value
		case StageRejected:
			wl.Lost.Count++
			wl.Lost.Value += r.Value
		default:
			wl.Pending.Count++
			wl.Pending.Value += r.Value
		}
	}
	total := wl.Won.Count + wl.Lost.Count + wl.Pending.Count
	wl.Won.Percentage = percentOf(wl.Won.Count, total)
	wl.Lost.Percentage = percentOf(wl.Lost.Count, total)
	wl.Pending.Percentage = percentOf(wl.Pending.Count, total)
	return wl
}

// percentOf rounds half-up to a whole percent; zero denominator yields 0.
func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(part) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(0).IntPart())
}

// ConversionRate returns toCount as a percentage of fromCount, rounded
// to one decimal place. A zero fromCount yields 0 rather than an error.
func ConversionRate(fromCount, toCount int) float64 {
	if fromCount == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(toCount) * 100).
		Div(decimal.NewFromInt(int64(fromCount))).
		Round(1)
	f, _ := rate.Float64()
	return f
}
