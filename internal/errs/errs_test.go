package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/user/cinemax/internal/errs"
)

func TestError_Error(t *testing.T) {
	err := &errs.Error{Code: errs.ECONFLICT, Message: "slug already exists"}
	assert.Equal(t, "application error: code=conflict message=slug already exists", err.Error())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"application error", errs.Errorf(errs.ENOTFOUND, "movie not found"), errs.ENOTFOUND},
		{"plain error", errors.New("connection reset"), errs.EINTERNAL},
		{"wrapped", fmt.Errorf("update: %w", errs.Errorf(errs.EINVALID, "bad id")), errs.EINVALID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", errs.ErrorMessage(nil))
	assert.Equal(t, "movie 7 not found", errs.ErrorMessage(errs.Errorf(errs.ENOTFOUND, "movie %d not found", 7)))
	assert.Equal(t, "Internal error.", errs.ErrorMessage(errors.New("pq: relation does not exist")))
}
