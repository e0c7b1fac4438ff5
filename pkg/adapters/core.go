package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-mannequin-proxy/pkg/domain"
)

// requestIDKeyType はリクエスト ID 用のコンテキストキー型です。
type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// ContextWithRequestID はリクエスト ID を保持したコンテキストを返します。
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext はコンテキストからリクエスト ID を取り出します。未設定なら空文字列です。
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// WriteJSON は v を JSON としてステータスコード付きで書き込みます。
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("レスポンスの書き込みに失敗しました", "status", status, "error", err)
	}
}

// WriteError はエラーを ErrorEnvelope として書き込みます。
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, domain.ErrorEnvelope{Error: message})
}

// decodeRequest はボディを ClientGenerationRequest にデコードします。
// 空のボディは requests 未指定として扱い、後段の検証に任せます。
func decodeRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (domain.ClientGenerationRequest, error) {
	var req domain.ClientGenerationRequest
	if r.Body == nil {
		return req, nil
	}

	body := http.MaxBytesReader(w, r.Body, maxBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.ClientGenerationRequest{}, nil
		}

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, &domain.ValidationError{Field: "body", Message: "request body too large", Cause: err}
		}
		return req, &domain.ValidationError{Field: "body", Message: "invalid request body", Cause: err}
	}
	return req, nil
}
