package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	verr := NewValidationError("email", "Enter a valid email address.")
	verr.Add("password", "This field is required.")
	verr.Add("email", "account with this email already exists.")

	assert.True(t, verr.HasErrors())
	assert.Len(t, verr.Fields["email"], 2)
	assert.Equal(t,
		"validation failed: email: Enter a valid email address. account with this email already exists.; password: This field is required.",
		verr.Error())

	var target *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", verr), &target))
	assert.Same(t, verr, target)
}

func TestValidationError_Empty(t *testing.T) {
	var verr *ValidationError
	assert.False(t, verr.HasErrors())
	assert.False(t, (&ValidationError{}).HasErrors())
}
