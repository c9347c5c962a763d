package validation_test

import (
	"testing"

	domainerrors "katalog/internal/errors"
	"katalog/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name  string   `json:"name" validate:"notblank,max=10"`
	Price *float64 `json:"price" validate:"required,gt=0"`
	Tags  []string `json:"tags" validate:"omitempty,dive,uuid"`
}

func ptr[T any](v T) *T { return &v }

func TestValidate_Valid(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Name: "Pack", Price: ptr(5.0), Tags: []string{"2f1c2e0a-8a66-4f3e-9d7a-1b7f2a3c4d5e"}})
	assert.NoError(t, err)
}

func TestValidate_FieldErrorsUseJSONNames(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Name: "   ", Price: ptr(-1.0), Tags: []string{"nope"}})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "this field is required", details["name"])
	assert.Equal(t, "must be greater than 0", details["price"])
	assert.Equal(t, "must be a valid UUID", details["tags"])
}

func TestValidate_MissingPointerIsRequired(t *testing.T) {
	v := validation.New()

	err := v.Validate(testRequest{Name: "Pack"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))
	assert.Equal(t, map[string]string{"price": "this field is required"}, domainErr.Details)
}
