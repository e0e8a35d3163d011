// Package shipping implements the operational shipping document variants:
// bills of lading, shipping instructions, arrival notices, cargo manifests,
// and bookings. It uses the lifecycle engine with shipping-specific
// transition tables.
package shipping

import (
	"time"

	"github.com/odnamta/gis-erp-sub004/lifecycle"
)

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

const (
	DocTypeBillOfLading        lifecycle.DocType = "bill_of_lading"
	DocTypeShippingInstruction lifecycle.DocType = "shipping_instruction"
	DocTypeArrivalNotice       lifecycle.DocType = "arrival_notice"
	DocTypeCargoManifest       lifecycle.DocType = "cargo_manifest"
	DocTypeBooking             lifecycle.DocType = "booking"
)

// Bill of lading statuses. Amendment is always possible after issue, so
// the table has no terminal state: a surrendered B/L can still be amended.
const (
	BLDraft       lifecycle.Status = "draft"
	BLSubmitted   lifecycle.Status = "submitted"
	BLIssued      lifecycle.Status = "issued"
	BLReleased    lifecycle.Status = "released"
	BLSurrendered lifecycle.Status = "surrendered"
	BLAmended     lifecycle.Status = "amended"
)

var BillOfLadingTable = lifecycle.TransitionTable{
	BLDraft:       lifecycle.NewStatusSet(BLSubmitted, BLAmended),
	BLSubmitted:   lifecycle.NewStatusSet(BLIssued, BLDraft, BLAmended),
	BLIssued:      lifecycle.NewStatusSet(BLReleased, BLSurrendered, BLAmended),
	BLReleased:    lifecycle.NewStatusSet(BLAmended),
	BLSurrendered: lifecycle.NewStatusSet(BLAmended),
	BLAmended:     lifecycle.NewStatusSet(BLSubmitted, BLIssued),
}

// Shipping instruction statuses.
const (
	SIDraft     lifecycle.Status = "draft"
	SISubmitted lifecycle.Status = "submitted"
	SIConfirmed lifecycle.Status = "confirmed"
	SIAmended   lifecycle.Status = "amended"
)

var ShippingInstructionTable = lifecycle.TransitionTable{
	SIDraft:     lifecycle.NewStatusSet(SISubmitted, SIAmended),
	SISubmitted: lifecycle.NewStatusSet(SIConfirmed, SIDraft, SIAmended),
	SIConfirmed: lifecycle.NewStatusSet(SIAmended),
	SIAmended:   lifecycle.NewStatusSet(SISubmitted, SIConfirmed),
}

// Arrival notice statuses: a strictly linear lifecycle.
const (
	ANPending   lifecycle.Status = "pending"
	ANNotified  lifecycle.Status = "notified"
	ANCleared   lifecycle.Status = "cleared"
	ANDelivered lifecycle.Status = "delivered"
)

var ArrivalNoticeTable = lifecycle.TransitionTable{
	ANPending:   lifecycle.NewStatusSet(ANNotified),
	ANNotified:  lifecycle.NewStatusSet(ANCleared),
	ANCleared:   lifecycle.NewStatusSet(ANDelivered),
	ANDelivered: lifecycle.NewStatusSet(),
}

// Cargo manifest statuses. Approval is final; corrections before approval
// go back through draft.
const (
	ManifestDraft     lifecycle.Status = "draft"
	ManifestSubmitted lifecycle.Status = "submitted"
	ManifestApproved  lifecycle.Status = "approved"
)

var CargoManifestTable = lifecycle.TransitionTable{
	ManifestDraft:     lifecycle.NewStatusSet(ManifestSubmitted),
	ManifestSubmitted: lifecycle.NewStatusSet(ManifestApproved, ManifestDraft),
	ManifestApproved:  lifecycle.NewStatusSet(),
}

// Booking statuses. Cancellation is reachable from every non-terminal
// state.
const (
	BookingDraft     lifecycle.Status = "draft"
	BookingRequested lifecycle.Status = "requested"
	BookingConfirmed lifecycle.Status = "confirmed"
	BookingShipped   lifecycle.Status = "shipped"
	BookingCompleted lifecycle.Status = "completed"
	BookingCancelled lifecycle.Status = "cancelled"
)

var BookingTable = lifecycle.TransitionTable{
	BookingDraft:     lifecycle.NewStatusSet(BookingRequested, BookingCancelled),
	BookingRequested: lifecycle.NewStatusSet(BookingConfirmed, BookingCancelled),
	BookingConfirmed: lifecycle.NewStatusSet(BookingShipped, BookingCancelled),
	BookingShipped:   lifecycle.NewStatusSet(BookingCompleted, BookingCancelled),
	BookingCompleted: lifecycle.NewStatusSet(),
	BookingCancelled: lifecycle.NewStatusSet(),
}

func init() {
	lifecycle.Register(DocTypeBillOfLading, BillOfLadingTable, BLDraft)
	lifecycle.Register(DocTypeShippingInstruction, ShippingInstructionTable, SIDraft)
	lifecycle.Register(DocTypeArrivalNotice, ArrivalNoticeTable, ANPending)
	lifecycle.Register(DocTypeCargoManifest, CargoManifestTable, ManifestDraft)
	lifecycle.Register(DocTypeBooking, BookingTable, BookingDraft)
}

// =============================================================================
// DOCUMENT RECORDS
// =============================================================================

// BillOfLading is a B/L row as supplied by the persistence layer.
type BillOfLading struct {
	ID              string           `json:"id"`
	Number          string           `json:"number"`
	BookingID       string           `json:"booking_id"`
	Shipper         string           `json:"shipper"`
	Consignee       string           `json:"consignee"`
	VesselName      string           `json:"vessel_name"`
	VoyageNumber    string           `json:"voyage_number"`
	PortOfLoading   string           `json:"port_of_loading"`
	PortOfDischarge string           `json:"port_of_discharge"`
	Status          lifecycle.Status `json:"status"`

	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	IssuedAt      *time.Time `json:"issued_at,omitempty"`
	ReleasedAt    *time.Time `json:"released_at,omitempty"`
	SurrenderedAt *time.Time `json:"surrendered_at,omitempty"`
	AmendedAt     *time.Time `json:"amended_at,omitempty"`
}

// ShippingInstruction is an SI row.
type ShippingInstruction struct {
	ID        string           `json:"id"`
	Number    string           `json:"number"`
	BookingID string           `json:"booking_id"`
	Shipper   string           `json:"shipper"`
	Consignee string           `json:"consignee"`
	Status    lifecycle.Status `json:"status"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	AmendedAt   *time.Time `json:"amended_at,omitempty"`
}

// ArrivalNotice is an arrival notice row.
type ArrivalNotice struct {
	ID       string           `json:"id"`
	BLNumber string           `json:"bl_number"`
	Vessel   string           `json:"vessel"`
	ETA      *time.Time       `json:"eta,omitempty"`
	Status   lifecycle.Status `json:"status"`

	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
	ClearedAt   *time.Time `json:"cleared_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// CargoManifest is a manifest row.
type CargoManifest struct {
	ID           string           `json:"id"`
	VoyageNumber string           `json:"voyage_number"`
	Status       lifecycle.Status `json:"status"`

	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
}

// Booking is a booking row.
type Booking struct {
	ID             string           `json:"id"`
	Number         string           `json:"number"`
	Shipper        string           `json:"shipper"`
	Consignee      string           `json:"consignee"`
	Origin         string           `json:"origin"`
	Destination    string           `json:"destination"`
	ContainerCount int64            `json:"container_count"`
	Status         lifecycle.Status `json:"status"`

	RequestedAt *time.Time `json:"requested_at,omitempty"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
