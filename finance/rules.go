/*
rules.go - Structural validation rule sets for financial payloads

PURPOSE:
  Declarative create-payload validation for invoices and BKK vouchers.
  Every violated rule is reported; nothing short-circuits.

SEE ALSO:
  - validate: The accumulating checker these rules are written against
  - shipping/rules.go: The shipping-side rule sets
*/
package finance

import (
	"fmt"

	"github.com/odnamta/gis-erp-sub004/validate"
)

// InvoiceInput is the create payload for an invoice.
type InvoiceInput struct {
	Number     string        `json:"number"`
	CustomerID string        `json:"customer_id"`
	JobOrderID string        `json:"job_order_id"`
	Lines      []InvoiceLine `json:"lines"`
}

// ValidateInvoiceInput checks an invoice create payload. Line totals are
// not checked here; they are recomputed by InvoiceTotals regardless.
func ValidateInvoiceInput(in InvoiceInput) validate.Result {
	var c validate.Checker
	c.Required("number", in.Number)
	c.Required("customer_id", in.CustomerID)
	c.Required("job_order_id", in.JobOrderID)
	c.Check(len(in.Lines) > 0, "lines must contain at least one item")
	for i, l := range in.Lines {
		c.Required(fmt.Sprintf("lines[%d].description", i), l.Description)
		c.Positive(fmt.Sprintf("lines[%d].quantity", i), l.Quantity)
		c.Positive(fmt.Sprintf("lines[%d].unit_price", i), l.UnitPrice)
	}
	return c.Result()
}

// DisbursementInput is the create payload for a BKK voucher.
type DisbursementInput struct {
	JobOrderID  string `json:"job_order_id"`
	RequesterID string `json:"requester_id"`
	Purpose     string `json:"purpose"`
	Amount      Money  `json:"amount"`
}

// ValidateDisbursementInput checks a BKK create payload.
func ValidateDisbursementInput(in DisbursementInput) validate.Result {
	var c validate.Checker
	c.Required("job_order_id", in.JobOrderID)
	c.Required("requester_id", in.RequesterID)
	c.Required("purpose", in.Purpose)
	c.Positive("amount", in.Amount)
	return c.Result()
}
