package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// GenericErrorMessage はエラーメッセージを特定できない場合にクライアントへ返す文言です。
const GenericErrorMessage = "the image generation request could not be processed"

// ErrorEnvelope は失敗時のレスポンスボディです。
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// ValidationError はクライアントリクエストの不備を表します。常に 400 になります。
type ValidationError struct {
	Field   string
	Message string
	Cause   error
}

// NewValidationError は ValidationError を生成します。
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation: %s: %v", e.Message, e.Cause)
	}
	return "validation: " + e.Message
}

func (e *ValidationError) Unwrap() error { return e.Cause }

// VendorError は画像生成 API 呼び出しで発生したエラーです。
// Code が 0 の場合、ベンダーからステータスコードが提供されなかったことを示します。
type VendorError struct {
	Code    int
	Message string
	Cause   error
}

func (e *VendorError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("vendor error %d: %s", e.Code, e.Message)
	}
	return "vendor error: " + e.Message
}

func (e *VendorError) Unwrap() error { return e.Cause }

// UnexpectedError は上記以外の想定外エラー（panic 等）です。
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string {
	if e.Cause == nil {
		return "unexpected error"
	}
	return "unexpected error: " + e.Cause.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Cause }

// Describe はエラーを HTTP ステータスコードとクライアント向けメッセージに変換します。
func Describe(err error) (int, string) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		msg := vErr.Message
		if msg == "" {
			msg = GenericErrorMessage
		}
		return http.StatusBadRequest, msg
	}

	var vendorErr *VendorError
	if errors.As(err, &vendorErr) {
		msg := vendorErr.Message
		if msg == "" {
			msg = GenericErrorMessage
		}
		return statusFromCode(vendorErr.Code), msg
	}

	return http.StatusInternalServerError, GenericErrorMessage
}

// statusFromCode はベンダーのコードが HTTP ステータスとして使える場合のみ採用します。
func statusFromCode(code int) int {
	if code < 100 || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}
