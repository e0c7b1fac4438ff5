package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shouni/gemini-mannequin-proxy/pkg/domain"
	"github.com/shouni/gemini-mannequin-proxy/pkg/generator"
	"github.com/shouni/gemini-mannequin-proxy/pkg/sl"
	"google.golang.org/genai"
)

// DefaultMaxBodyBytes はリクエストボディの上限のデフォルト値です。
const DefaultMaxBodyBytes int64 = 1 << 20

// MannequinHandler は POST /generate-mannequin を処理するプロキシハンドラです。
// クライアント形式のリクエストを検証・変換して画像生成 API に渡し、応答をそのまま返します。
type MannequinHandler struct {
	generator    generator.ImageGenerator
	model        string
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewMannequinHandler は依存関係を注入して MannequinHandler を初期化します。
// maxBodyBytes が 0 以下の場合は DefaultMaxBodyBytes、logger が nil の場合は slog.Default() を使います。
func NewMannequinHandler(gen generator.ImageGenerator, model string, maxBodyBytes int64, logger *slog.Logger) (*MannequinHandler, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator (ImageGenerator) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MannequinHandler{
		generator:    gen,
		model:        model,
		maxBodyBytes: maxBodyBytes,
		logger:       logger.With(sl.Module("adapters.mannequin")),
	}, nil
}

// ServeHTTP は http.Handler の実装です。
func (h *MannequinHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp, err := h.generate(ctx, w, r)
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

func (h *MannequinHandler) generate(ctx context.Context, w http.ResponseWriter, r *http.Request) (*genai.GenerateImagesResponse, error) {
	req, err := decodeRequest(w, r, h.maxBodyBytes)
	if err != nil {
		return nil, err
	}

	params, err := req.ToParams(h.model)
	if err != nil {
		return nil, err
	}

	return h.generator.GenerateImages(ctx, params)
}

// writeError はエラーをログに記録してから ErrorEnvelope を返します。
func (h *MannequinHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, message := domain.Describe(err)

	level := slog.LevelError
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		level = slog.LevelWarn
	}
	h.logger.LogAttrs(ctx, level, "画像生成リクエストの処理に失敗しました",
		slog.String("request_id", RequestIDFromContext(ctx)),
		slog.Int("status", status),
		sl.Err(err),
	)

	WriteError(w, status, message)
}
