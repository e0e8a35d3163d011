/*
transition_test.go - Shipping document state machine tests

ORGANIZATION:
  1. Tables - every (from, to) pair checked against the declared machine
  2. Application - timestamps stamped only at the permitted transitions
*/
package shipping_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
	"github.com/odnamta/gis-erp-sub004/shipping"
)

// assertTable checks the full cartesian product of a table's enum
// against the expected adjacency.
func assertTable(t *testing.T, table lifecycle.TransitionTable, allowed map[lifecycle.Status][]lifecycle.Status) {
	t.Helper()
	for from, targets := range allowed {
		want := lifecycle.NewStatusSet(targets...)
		for _, to := range table.Statuses() {
			assert.Equal(t, want.Has(to), table.Allows(from, to), "pair (%s, %s)", from, to)
		}
	}
}

func TestBillOfLadingTable(t *testing.T) {
	assertTable(t, shipping.BillOfLadingTable, map[lifecycle.Status][]lifecycle.Status{
		shipping.BLDraft:       {shipping.BLSubmitted, shipping.BLAmended},
		shipping.BLSubmitted:   {shipping.BLIssued, shipping.BLDraft, shipping.BLAmended},
		shipping.BLIssued:      {shipping.BLReleased, shipping.BLSurrendered, shipping.BLAmended},
		shipping.BLReleased:    {shipping.BLAmended},
		shipping.BLSurrendered: {shipping.BLAmended},
		shipping.BLAmended:     {shipping.BLSubmitted, shipping.BLIssued},
	})
}

func TestShippingInstructionTable(t *testing.T) {
	assertTable(t, shipping.ShippingInstructionTable, map[lifecycle.Status][]lifecycle.Status{
		shipping.SIDraft:     {shipping.SISubmitted, shipping.SIAmended},
		shipping.SISubmitted: {shipping.SIConfirmed, shipping.SIDraft, shipping.SIAmended},
		shipping.SIConfirmed: {shipping.SIAmended},
		shipping.SIAmended:   {shipping.SISubmitted, shipping.SIConfirmed},
	})
}

func TestArrivalNoticeTable_Linear(t *testing.T) {
	assertTable(t, shipping.ArrivalNoticeTable, map[lifecycle.Status][]lifecycle.Status{
		shipping.ANPending:   {shipping.ANNotified},
		shipping.ANNotified:  {shipping.ANCleared},
		shipping.ANCleared:   {shipping.ANDelivered},
		shipping.ANDelivered: {},
	})
	// One-directional: no going back.
	assert.False(t, shipping.ArrivalNoticeTable.Allows(shipping.ANCleared, shipping.ANNotified))
	assert.True(t, shipping.ArrivalNoticeTable.IsTerminal(shipping.ANDelivered))
}

func TestCargoManifestTable(t *testing.T) {
	assertTable(t, shipping.CargoManifestTable, map[lifecycle.Status][]lifecycle.Status{
		shipping.ManifestDraft:     {shipping.ManifestSubmitted},
		shipping.ManifestSubmitted: {shipping.ManifestApproved, shipping.ManifestDraft},
		shipping.ManifestApproved:  {},
	})
}

func TestBookingTable_CancellableFromAnyNonTerminal(t *testing.T) {
	assertTable(t, shipping.BookingTable, map[lifecycle.Status][]lifecycle.Status{
		shipping.BookingDraft:     {shipping.BookingRequested, shipping.BookingCancelled},
		shipping.BookingRequested: {shipping.BookingConfirmed, shipping.BookingCancelled},
		shipping.BookingConfirmed: {shipping.BookingShipped, shipping.BookingCancelled},
		shipping.BookingShipped:   {shipping.BookingCompleted, shipping.BookingCancelled},
		shipping.BookingCompleted: {},
		shipping.BookingCancelled: {},
	})
	assert.Equal(t,
		[]lifecycle.Status{shipping.BookingCancelled, shipping.BookingCompleted},
		shipping.BookingTable.Terminals())
}

// =============================================================================
// TRANSITION APPLICATION
// =============================================================================

func at(d int) time.Time {
	return time.Date(2025, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyBLTransition_FullFlow(t *testing.T) {
	bl := shipping.BillOfLading{Status: shipping.BLDraft}

	bl, ok := shipping.ApplyBLTransition(bl, shipping.BLSubmitted, at(1))
	require.True(t, ok)
	require.NotNil(t, bl.SubmittedAt)

	bl, ok = shipping.ApplyBLTransition(bl, shipping.BLIssued, at(2))
	require.True(t, ok)
	require.NotNil(t, bl.IssuedAt)
	assert.Equal(t, at(2), *bl.IssuedAt)

	bl, ok = shipping.ApplyBLTransition(bl, shipping.BLReleased, at(3))
	require.True(t, ok)
	require.NotNil(t, bl.ReleasedAt)

	// A released B/L can only be amended.
	_, ok = shipping.ApplyBLTransition(bl, shipping.BLIssued, at(4))
	assert.False(t, ok)

	bl, ok = shipping.ApplyBLTransition(bl, shipping.BLAmended, at(4))
	require.True(t, ok)
	require.NotNil(t, bl.AmendedAt)
	// Earlier stamps survive amendment.
	assert.Equal(t, at(2), *bl.IssuedAt)
}

func TestApplyManifestTransition_BackToDraftClearsSubmission(t *testing.T) {
	m := shipping.CargoManifest{Status: shipping.ManifestDraft}

	m, ok := shipping.ApplyManifestTransition(m, shipping.ManifestSubmitted, at(5))
	require.True(t, ok)
	require.NotNil(t, m.SubmittedAt)

	m, ok = shipping.ApplyManifestTransition(m, shipping.ManifestDraft, at(6))
	require.True(t, ok)
	assert.Nil(t, m.SubmittedAt, "resubmission gets a fresh stamp")
}

func TestApplyBookingTransition_CancelStamps(t *testing.T) {
	b := shipping.Booking{Status: shipping.BookingConfirmed}
	cancelled, ok := shipping.ApplyBookingTransition(b, shipping.BookingCancelled, at(7))
	require.True(t, ok)
	require.NotNil(t, cancelled.CancelledAt)

	// Terminal afterwards.
	_, ok = shipping.ApplyBookingTransition(cancelled, shipping.BookingRequested, at(8))
	assert.False(t, ok)

	// Input untouched.
	assert.Nil(t, b.CancelledAt)
	assert.Equal(t, shipping.BookingConfirmed, b.Status)
}

func TestApplyArrivalTransition_StampsEachStep(t *testing.T) {
	an := shipping.ArrivalNotice{Status: shipping.ANPending}

	an, ok := shipping.ApplyArrivalTransition(an, shipping.ANNotified, at(10))
	require.True(t, ok)
	an, ok = shipping.ApplyArrivalTransition(an, shipping.ANCleared, at(11))
	require.True(t, ok)
	an, ok = shipping.ApplyArrivalTransition(an, shipping.ANDelivered, at(12))
	require.True(t, ok)

	assert.Equal(t, at(10), *an.NotifiedAt)
	assert.Equal(t, at(11), *an.ClearedAt)
	assert.Equal(t, at(12), *an.DeliveredAt)
}
