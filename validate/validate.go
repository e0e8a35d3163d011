/*
Package validate provides the structural validation engine for create and
transition payloads.

PURPOSE:
  A uniform {valid, errors} contract shared by every document type. Rules
  are declarative and accumulating: every violated rule lands in the
  result, never just the first one, and validation never returns a Go
  error or panics.

KEY CONCEPTS:
  - Result: The uniform outcome; Valid is true iff Errors is empty
  - Checker: Accumulates rule violations for one payload

RULES:
  Required:    non-blank after trimming
  Positive:    strictly greater than zero (amounts, quantities)
  NonNegative: zero or greater
  OneOf:       membership in a closed enum

USAGE:
  var c validate.Checker
  c.Required("customer_name", in.CustomerName)
  c.Positive("amount", in.Amount)
  c.OneOf("status", in.Status, "draft", "pending")
  return c.Result()

SEE ALSO:
  - finance/rules.go, shipping/rules.go: The per-document rule sets
*/
package validate

import (
	"fmt"
	"strings"
)

// =============================================================================
// RESULT - Uniform validation outcome
// =============================================================================

type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// OK is the result of a payload that violated nothing.
func OK() Result {
	return Result{Valid: true, Errors: []string{}}
}

// =============================================================================
// CHECKER - Accumulates violations
// =============================================================================

// Checker collects rule violations. The zero value is ready to use.
type Checker struct {
	errs []string
}

// Required records a violation when the value is blank after trimming.
func (c *Checker) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.errs = append(c.errs, field+" is required")
	}
}

// Positive records a violation unless the value is strictly positive.
func (c *Checker) Positive(field string, value int64) {
	if value <= 0 {
		c.errs = append(c.errs, field+" must be greater than zero")
	}
}

// NonNegative records a violation when the value is below zero.
func (c *Checker) NonNegative(field string, value int64) {
	if value < 0 {
		c.errs = append(c.errs, field+" must not be negative")
	}
}

// OneOf records a violation unless the value is a member of the allowed
// enum. The allowed values are echoed in the message so the caller can
// surface them without a second lookup.
func (c *Checker) OneOf(field, value string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.errs = append(c.errs, fmt.Sprintf("%s must be one of [%s]", field, strings.Join(allowed, ", ")))
}

// Check records the given message when the condition is false. Escape
// hatch for rules that do not fit the declarative helpers.
func (c *Checker) Check(ok bool, message string) {
	if !ok {
		c.errs = append(c.errs, message)
	}
}

// Result finalizes the accumulated violations. Errors is never nil so the
// JSON form is always an array.
func (c *Checker) Result() Result {
	if len(c.errs) == 0 {
		return OK()
	}
	errs := make([]string, len(c.errs))
	copy(errs, c.errs)
	return Result{Valid: false, Errors: errs}
}
