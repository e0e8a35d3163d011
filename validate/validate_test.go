package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odnamta/gis-erp-sub004/validate"
)

func TestChecker_AccumulatesEveryViolation(t *testing.T) {
	// GIVEN: a payload violating three rules at once
	var c validate.Checker
	c.Required("name", "   ")
	c.Positive("amount", 0)
	c.OneOf("status", "bogus", "draft", "pending")

	result := c.Result()

	// THEN: all three are reported, not just the first
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors, "name is required")
	assert.Contains(t, result.Errors, "amount must be greater than zero")
	assert.Contains(t, result.Errors, "status must be one of [draft, pending]")
}

func TestChecker_CleanPayload(t *testing.T) {
	var c validate.Checker
	c.Required("name", "PT Samudera")
	c.Positive("amount", 1)
	c.NonNegative("discount", 0)
	c.OneOf("status", "draft", "draft", "pending")

	result := c.Result()
	assert.True(t, result.Valid)
	assert.NotNil(t, result.Errors)
	assert.Empty(t, result.Errors)
}

func TestChecker_RequiredTrimsWhitespace(t *testing.T) {
	var c validate.Checker
	c.Required("a", "")
	c.Required("b", " \t\n")
	c.Required("c", " x ")
	assert.Len(t, c.Result().Errors, 2)
}

func TestChecker_NegativeAmount(t *testing.T) {
	var c validate.Checker
	c.Positive("amount", -500)
	c.NonNegative("balance", -1)
	assert.Len(t, c.Result().Errors, 2)
}

func TestChecker_Check(t *testing.T) {
	var c validate.Checker
	c.Check(false, "origin and destination must differ")
	c.Check(true, "never recorded")
	result := c.Result()
	assert.Equal(t, []string{"origin and destination must differ"}, result.Errors)
}
