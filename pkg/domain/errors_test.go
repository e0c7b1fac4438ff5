package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "ValidationError は 400",
			err:        NewValidationError("prompt", "missing prompt"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "missing prompt",
		},
		{
			name:       "ラップされた ValidationError も 400",
			err:        fmt.Errorf("decode: %w", NewValidationError("requests", "missing requests")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "missing requests",
		},
		{
			name:       "VendorError はコードをそのまま使う",
			err:        &VendorError{Code: 429, Message: "quota exceeded"},
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    "quota exceeded",
		},
		{
			name:       "コードの無い VendorError は 500",
			err:        &VendorError{Message: "connection reset"},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "connection reset",
		},
		{
			name:       "HTTP ステータスとして不正なコードは 500",
			err:        &VendorError{Code: 16, Message: "unauthenticated"},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "unauthenticated",
		},
		{
			name:       "メッセージの無い VendorError は汎用メッセージ",
			err:        &VendorError{Code: 503},
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    GenericErrorMessage,
		},
		{
			name:       "UnexpectedError は 500 と汎用メッセージ",
			err:        &UnexpectedError{Cause: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    GenericErrorMessage,
		},
		{
			name:       "未分類のエラーも 500",
			err:        errors.New("plain"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    GenericErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := Describe(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestVendorError_Unwrap(t *testing.T) {
	cause := errors.New("upstream")
	err := fmt.Errorf("generate: %w", &VendorError{Code: 500, Message: "upstream", Cause: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "vendor error 500")
}
