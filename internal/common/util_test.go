package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_IsMatchesSentinel(t *testing.T) {
	err := NewValidationError("title", "must not be empty")

	assert.True(t, errors.Is(err, ErrorValidation))
	assert.False(t, errors.Is(err, ErrorNotFound))

	wrapped := fmt.Errorf("create task: %w", err)
	assert.True(t, errors.Is(wrapped, ErrorValidation))

	var ve *ValidationError
	require.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "title", ve.Fields[0].Field)
}

func TestValidationError_ErrorListsFields(t *testing.T) {
	v := &ValidationError{}
	v.Add("title", "must not be empty")
	v.Add("due_date", "cannot be in the past")

	assert.Equal(t, "validation error: title: must not be empty; due_date: cannot be in the past", v.Error())
}

func TestValidationError_OrNil(t *testing.T) {
	var nilErr *ValidationError
	assert.NoError(t, nilErr.OrNil())

	v := &ValidationError{}
	assert.NoError(t, v.OrNil())

	v.Add("priority", "invalid value")
	assert.Error(t, v.OrNil())
}
