package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	domainerrors "katalog/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestCodeHTTPStatus(t *testing.T) {
	cases := map[domainerrors.Code]int{
		domainerrors.CodeNotFound:           http.StatusNotFound,
		domainerrors.CodeAlreadyExists:      http.StatusConflict,
		domainerrors.CodeUnauthorized:       http.StatusUnauthorized,
		domainerrors.CodeInvalidCredentials: http.StatusUnauthorized,
		domainerrors.CodeValidation:         http.StatusBadRequest,
		domainerrors.CodeInternal:           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, code.HTTPStatus(), string(code))
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := domainerrors.NotFoundf("product with ID %s not found", "abc")
	wrapped := fmt.Errorf("lookup: %w", err)

	assert.True(t, domainerrors.Is(wrapped, domainerrors.ErrNotFound))
	assert.False(t, domainerrors.Is(wrapped, domainerrors.ErrValidation))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := domainerrors.Wrap(cause, domainerrors.CodeInternal, "failed to save image")

	assert.Equal(t, "failed to save image: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
}

func TestFieldError(t *testing.T) {
	err := domainerrors.FieldError("image", "upload a valid image")

	assert.Equal(t, domainerrors.CodeValidation, err.Code)
	assert.Equal(t, map[string]string{"image": "upload a valid image"}, err.Details)
}
