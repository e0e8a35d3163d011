/*
transition.go - Transition application for shipping documents

PURPOSE:
  The caller contract of the lifecycle validator made concrete: legality
  comes from the table, and the lifecycle timestamp matching the target
  status is stamped at exactly that transition. Inputs are never mutated;
  each Apply returns a new value and a boolean; false means the document
  is returned unchanged.
*/
package shipping

import (
	"time"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// ApplyBLTransition validates and applies one bill of lading transition.
func ApplyBLTransition(bl BillOfLading, to lifecycle.Status, at time.Time) (BillOfLading, bool) {
	if !BillOfLadingTable.Allows(bl.Status, to) {
		return bl, false
	}
	out := bl
	out.Status = to
	t := at
	switch to {
	case BLSubmitted:
		out.SubmittedAt = &t
	case BLIssued:
		out.IssuedAt = &t
	case BLReleased:
		out.ReleasedAt = &t
	case BLSurrendered:
		out.SurrenderedAt = &t
	case BLAmended:
		out.AmendedAt = &t
	}
	return out, true
}

// ApplySITransition validates and applies one shipping instruction
// transition.
func ApplySITransition(si ShippingInstruction, to lifecycle.Status, at time.Time) (ShippingInstruction, bool) {
	if !ShippingInstructionTable.Allows(si.Status, to) {
		return si, false
	}
	out := si
	out.Status = to
	t := at
	switch to {
	case SISubmitted:
		out.SubmittedAt = &t
	case SIConfirmed:
		out.ConfirmedAt = &t
	case SIAmended:
		out.AmendedAt = &t
	}
	return out, true
}

// ApplyArrivalTransition validates and applies one arrival notice
// transition along its linear lifecycle.
func ApplyArrivalTransition(an ArrivalNotice, to lifecycle.Status, at time.Time) (ArrivalNotice, bool) {
	if !ArrivalNoticeTable.Allows(an.Status, to) {
		return an, false
	}
	out := an
	out.Status = to
	t := at
	switch to {
	case ANNotified:
		out.NotifiedAt = &t
	case ANCleared:
		out.ClearedAt = &t
	case ANDelivered:
		out.DeliveredAt = &t
	}
	return out, true
}

// ApplyManifestTransition validates and applies one cargo manifest
// transition. Returning to draft clears the submission stamp so a
// resubmission gets a fresh one.
func ApplyManifestTransition(m CargoManifest, to lifecycle.Status, at time.Time) (CargoManifest, bool) {
	if !CargoManifestTable.Allows(m.Status, to) {
		return m, false
	}
	out := m
	out.Status = to
	t := at
	switch to {
	case ManifestSubmitted:
		out.SubmittedAt = &t
	case ManifestApproved:
		out.ApprovedAt = &t
	case ManifestDraft:
		out.SubmittedAt = nil
	}
	return out, true
}

// ApplyBookingTransition validates and applies one booking transition.
func ApplyBookingTransition(b Booking, to lifecycle.Status, at time.Time) (Booking, bool) {
	if !BookingTable.Allows(b.Status, to) {
		return b, false
	}
	out := b
	out.Status = to
	t := at
	switch to {
	case BookingRequested:
		out.RequestedAt = &t
	case BookingConfirmed:
		out.ConfirmedAt = &t
	case BookingShipped:
		out.ShippedAt = &t
	case BookingCompleted:
		out.CompletedAt = &t
	case BookingCancelled:
		out.CancelledAt = &t
	}
	return out, true
}
