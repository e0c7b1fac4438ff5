package generator

import (
	"context"

	"github.com/shouni/gemini-mannequin-proxy/pkg/domain"
	"google.golang.org/genai"
)

// ImageGenerator はハンドラ層が利用する画像生成の窓口です。
type ImageGenerator interface {
	// GenerateImages は params に従って画像生成 API を一度だけ呼び出し、応答をそのまま返します。
	GenerateImages(ctx context.Context, params domain.GenerateParams) (*genai.GenerateImagesResponse, error)
}

// ImagesModel は genai の Models が持つ画像生成機能のみを抽象化したインターフェースです。
// *genai.Models はこのインターフェースを満たします。
type ImagesModel interface {
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}
