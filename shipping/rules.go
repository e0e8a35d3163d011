// rules.go - Structural validation rule sets for shipping payloads.
package shipping

import "github.com/odnamta/gis-erp-sub004/validate"

// BookingInput is the create payload for a booking.
type BookingInput struct {
	Shipper        string `json:"shipper"`
	Consignee      string `json:"consignee"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	ContainerCount int64  `json:"container_count"`
}

// ValidateBookingInput checks a booking create payload. Origin and
// destination must differ; identical ports are a data-entry error, not a
// routing choice.
func ValidateBookingInput(in BookingInput) validate.Result {
	var c validate.Checker
	c.Required("shipper", in.Shipper)
	c.Required("consignee", in.Consignee)
	c.Required("origin", in.Origin)
	c.Required("destination", in.Destination)
	c.Positive("container_count", in.ContainerCount)
	if in.Origin != "" && in.Origin == in.Destination {
		c.Check(false, "origin and destination must differ")
	}
	return c.Result()
}

// InstructionInput is the create payload for a shipping instruction.
type InstructionInput struct {
	BookingID string `json:"booking_id"`
	Shipper   string `json:"shipper"`
	Consignee string `json:"consignee"`
}

// ValidateInstructionInput checks a shipping instruction create payload.
func ValidateInstructionInput(in InstructionInput) validate.Result {
	var c validate.Checker
	c.Required("booking_id", in.BookingID)
	c.Required("shipper", in.Shipper)
	c.Required("consignee", in.Consignee)
	return c.Result()
}

// BLInput is the create payload for a bill of lading.
type BLInput struct {
	BookingID       string `json:"booking_id"`
	Shipper         string `json:"shipper"`
	Consignee       string `json:"consignee"`
	VesselName      string `json:"vessel_name"`
	PortOfLoading   string `json:"port_of_loading"`
	PortOfDischarge string `json:"port_of_discharge"`
}

// ValidateBLInput checks a bill of lading create payload.
func ValidateBLInput(in BLInput) validate.Result {
	var c validate.Checker
	c.Required("booking_id", in.BookingID)
	c.Required("shipper", in.Shipper)
	c.Required("consignee", in.Consignee)
	c.Required("vessel_name", in.VesselName)
	c.Required("port_of_loading", in.PortOfLoading)
	c.Required("port_of_discharge", in.PortOfDischarge)
	return c.Result()
}
