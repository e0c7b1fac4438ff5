package domain

import "github.com/shouni/gemini-mannequin-proxy/pkg/utils"

const (
	// DefaultNumberOfImages は numberOfImages 未指定時の生成枚数です。
	DefaultNumberOfImages = 1
	// DefaultAspectRatio は aspectRatio 未指定時のアスペクト比です。
	DefaultAspectRatio = "1:1"
)

// ClientGenerationRequest はブラウザから届く画像生成リクエストです。
// requests は配列ですが、利用されるのは先頭の要素のみです。
type ClientGenerationRequest struct {
	Requests []RequestItem `json:"requests"`
}

// RequestItem は単一の画像生成要求です。
type RequestItem struct {
	Prompt string         `json:"prompt"`
	Config *RequestConfig `json:"config,omitempty"`
}

// RequestConfig は生成オプションです。ゼロ値はデフォルト値に置き換えられます。
type RequestConfig struct {
	NumberOfImages int    `json:"numberOfImages,omitempty"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
}

// GenerateParams は画像生成 API に渡すパラメータです。
type GenerateParams struct {
	Model          string
	Prompt         string
	NumberOfImages int
	AspectRatio    string
}

// Validate はリクエストの必須項目を順に検証し、最初に見つかった不備を返します。
func (r ClientGenerationRequest) Validate() error {
	if len(r.Requests) == 0 {
		return NewValidationError("requests", "missing requests")
	}
	if r.Requests[0].Prompt == "" {
		return NewValidationError("prompt", "missing prompt")
	}
	return nil
}

// ToParams は検証済みのリクエストを GenerateParams に変換します。
// requests[0] のみを利用し、2件目以降は無視します。
func (r ClientGenerationRequest) ToParams(model string) (GenerateParams, error) {
	if err := r.Validate(); err != nil {
		return GenerateParams{}, err
	}

	item := r.Requests[0]
	var cfg RequestConfig
	if item.Config != nil {
		cfg = *item.Config
	}

	return GenerateParams{
		Model:          model,
		Prompt:         item.Prompt,
		NumberOfImages: utils.OrDefault(cfg.NumberOfImages, DefaultNumberOfImages),
		AspectRatio:    utils.OrDefault(cfg.AspectRatio, DefaultAspectRatio),
	}, nil
}
