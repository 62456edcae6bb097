package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   string `json:"id" validate:"required"`
	Code string `json:"code" validate:"len=3"`
}

func TestValidateRequest(t *testing.T) {
	assert.Nil(t, ValidateRequest(sample{ID: "1", Code: "abc"}))

	errs := ValidateRequest(sample{Code: "abcd"})
	require.Len(t, errs, 2)
	assert.Equal(t, ValidationError{Field: "ID", Message: "This field is required", Type: "required"}, errs[0])
	assert.Equal(t, ValidationError{Field: "Code", Message: "Invalid value", Type: "len"}, errs[1])
}

func TestValidateRequestNonStruct(t *testing.T) {
	errs := ValidateRequest("not a struct")
	require.Len(t, errs, 1)
	assert.Equal(t, "invalid", errs[0].Type)
}
