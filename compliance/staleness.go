/*
staleness.go - Elapsed-time staleness classification

PURPOSE:
  Flags documents that have been sitting in a status for too long. The
  thresholds are per status and are data, not code: a draft left alone
  for more than 5 days is a warning and more than 7 an alert; a document
  waiting for approval for more than 3 days is a warning. Statuses with
  no entry never escalate.

DATA FRESHNESS:
  IsStale covers cached dashboard figures: strictly older than the
  threshold is stale; exactly at the threshold is not.
*/
package compliance

import (
	"time"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// =============================================================================
// STALENESS LEVELS
// =============================================================================

type Level string

const (
	LevelNormal  Level = "normal"
	LevelWarning Level = "warning"
	LevelAlert   Level = "alert"
)

// stalenessThreshold holds the escalation edges for one status. A zero
// AlertAfter means the status never reaches alert.
type stalenessThreshold struct {
	WarningAfter int // days; strictly greater escalates
	AlertAfter   int
}

var stalenessThresholds = map[lifecycle.Status]stalenessThreshold{
	"draft":            {WarningAfter: 5, AlertAfter: 7},
	"pending_approval": {WarningAfter: 3},
}

// StalenessLevel classifies how long a document has sat in a status.
// Statuses without thresholds are always normal.
func StalenessLevel(status lifecycle.Status, daysInStatus int) Level {
	th, ok := stalenessThresholds[status]
	if !ok {
		return LevelNormal
	}
	if th.AlertAfter > 0 && daysInStatus > th.AlertAfter {
		return LevelAlert
	}
	if daysInStatus > th.WarningAfter {
		return LevelWarning
	}
	return LevelNormal
}

// IsStale reports whether a cached figure computed at calculatedAt is
// older than the threshold as of now. Exactly at the threshold is fresh.
func IsStale(calculatedAt, now time.Time, threshold time.Duration) bool {
	return now.Sub(calculatedAt) > threshold
}
