package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError_KnownCodes(t *testing.T) {
	cases := []struct {
		code   int
		status int
	}{
		{ErrInvalidParams, http.StatusBadRequest},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrEmailTaken, http.StatusConflict},
		{ErrPhoneTaken, http.StatusConflict},
		{ErrStoreUnavailable, http.StatusServiceUnavailable},
		{ErrProfileNotSaved, http.StatusInternalServerError},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
	}

	for _, tc := range cases {
		e := NewError(tc.code)
		assert.Equal(t, tc.code, e.Code)
		assert.Equal(t, tc.status, e.Status)
		assert.NotEmpty(t, e.Message)
	}
}

func TestNewError_UnknownCodeFallsBack(t *testing.T) {
	e := NewError(424242)
	assert.Equal(t, ErrUnknown, e.Code)
	assert.Equal(t, http.StatusInternalServerError, e.Status)
}

func TestNewError_FormatsTemplate(t *testing.T) {
	e := NewError(ErrFileTypeNotAllowed, ".exe")
	assert.Equal(t, "File type .exe is not allowed.", e.Message)
}

func TestNewError_UnknownNeverLeaksCause(t *testing.T) {
	e := NewError(ErrUnknown, errors.New("pq: password authentication failed"))
	assert.NotContains(t, e.Message, "password authentication")
}

func TestNewError_DoesNotMutateTemplate(t *testing.T) {
	_ = NewError(ErrFileTypeNotAllowed, ".bat")
	assert.Equal(t, "File type %s is not allowed.", errorMap[ErrFileTypeNotAllowed].Message)
}

func TestCustomError_Error(t *testing.T) {
	e := NewError(ErrUserNotFound)
	assert.Equal(t, "Error Code 2001 (HTTP 404): User not found.", e.Error())
}
