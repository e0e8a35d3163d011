/*
Package compliance provides the temporal classification engine: expiry
status for HSE training certificates, staleness levels for documents
sitting too long in a status, and data-freshness checks.

PURPOSE:
  All classifications here are pure functions of a reference date and a
  target date. Nothing is stored and nothing reads the wall clock: "now"
  is always an explicit argument, so every result is deterministic and
  the same inputs always classify the same way.

BOUNDARY POLICY (certificate expiry):
  Dates are truncated to midnight before comparison. A certificate whose
  validity ends today is EXPIRED: validTo <= asOf means expired, 1 to 30
  remaining days means expiring soon, anything further out is valid. A
  certificate with no recorded expiry is valid by definition.

SEE ALSO:
  - staleness.go: Elapsed-time-in-status classification
*/
package compliance

import "time"

// =============================================================================
// CERTIFICATE COMPLIANCE
// =============================================================================

type Status string

const (
	StatusValid        Status = "valid"
	StatusExpiringSoon Status = "expiring_soon"
	StatusExpired      Status = "expired"
)

// ExpiringSoonWindowDays is how many days before expiry a certificate
// starts reporting expiring_soon. Exactly at the window edge counts as
// expiring soon.
const ExpiringSoonWindowDays = 30

// dateOnly truncates to midnight UTC so day differences are whole days
// regardless of time zone or DST.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns whole days from asOf to the target date, both
// truncated to midnight. Negative means the target has passed.
func DaysUntil(target, asOf time.Time) int {
	return int(dateOnly(target).Sub(dateOnly(asOf)).Hours() / 24)
}

// CertificateStatus classifies a training certificate against its expiry
// date. A nil validTo means no expiry is tracked and the certificate is
// always valid.
func CertificateStatus(validTo *time.Time, asOf time.Time) Status {
	if validTo == nil {
		return StatusValid
	}
	days := DaysUntil(*validTo, asOf)
	switch {
	case days <= 0:
		return StatusExpired
	case days <= ExpiringSoonWindowDays:
		return StatusExpiringSoon
	default:
		return StatusValid
	}
}

// Certificate is the minimal view of a training record the compliance
// report needs.
type Certificate struct {
	EmployeeID string     `json:"employee_id"`
	Course     string     `json:"course"`
	ValidTo    *time.Time `json:"valid_to,omitempty"`
}

// CertificateReportEntry pairs a certificate with its derived status.
type CertificateReportEntry struct {
	Certificate
	Status Status `json:"status"`
}

// ClassifyCertificates derives the status of every certificate as of the
// given date. Empty input yields an empty, non-nil report.
func ClassifyCertificates(certs []Certificate, asOf time.Time) []CertificateReportEntry {
	out := make([]CertificateReportEntry, len(certs))
	for i, c := range certs {
		out[i] = CertificateReportEntry{Certificate: c, Status: CertificateStatus(c.ValidTo, asOf)}
	}
	return out
}
