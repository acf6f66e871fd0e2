package apperr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/stretchr/testify/assert"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("field is required")

	if err.Error() != "field is required" {
		t.Errorf("expected 'field is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid dataset size", inner)

	if err.Error() != "invalid dataset size: parse failed" {
		t.Errorf("expected 'invalid dataset size: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("unknown strategy")

	wrapped := fmt.Errorf("failed to optimize: %w", original)
	doubleWrapped := fmt.Errorf("handler error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "unknown strategy" {
		t.Errorf("expected 'unknown strategy', got %q", ve.Message)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperr.Kind
	}{
		{"nil", nil, apperr.KindNone},
		{"timeout", &apperr.TimeoutError{Endpoint: "/x", Err: context.DeadlineExceeded}, apperr.KindTimeout},
		{"network", &apperr.NetworkError{Endpoint: "/x", Err: errors.New("connection refused")}, apperr.KindNetwork},
		{"status", &apperr.HTTPStatusError{Endpoint: "/x", StatusCode: 500}, apperr.KindHTTPStatus},
		{"empty", apperr.NewEmptyResult("benchmark"), apperr.KindEmpty},
		{"validation", apperr.NewValidation("bad"), apperr.KindValidation},
		{"wrapped status", fmt.Errorf("run: %w", &apperr.HTTPStatusError{StatusCode: 404}), apperr.KindHTTPStatus},
		{"bare deadline", context.DeadlineExceeded, apperr.KindTimeout},
		{"canceled", context.Canceled, apperr.KindCanceled},
		{"plain", errors.New("boom"), apperr.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.Classify(tt.err))
		})
	}
}

func TestRecoverable(t *testing.T) {
	assert.True(t, apperr.Recoverable(&apperr.TimeoutError{}))
	assert.True(t, apperr.Recoverable(apperr.NewEmptyResult("")))
	assert.False(t, apperr.Recoverable(context.Canceled))
	assert.False(t, apperr.Recoverable(apperr.NewValidation("bad")))
	assert.False(t, apperr.Recoverable(nil))
}

func TestErrorMessages(t *testing.T) {
	he := &apperr.HTTPStatusError{Endpoint: "/api/benchmark", StatusCode: 400, Message: "dataset_size must be positive"}
	assert.Equal(t, "/api/benchmark returned status 400: dataset_size must be positive", he.Error())

	assert.Equal(t, "no results returned for benchmark", apperr.NewEmptyResult("benchmark").Error())
	assert.Equal(t, "no results returned", apperr.NewEmptyResult("").Error())
}
