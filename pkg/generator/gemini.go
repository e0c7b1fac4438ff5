package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/gemini-mannequin-proxy/pkg/domain"
	"github.com/shouni/gemini-mannequin-proxy/pkg/observability"
	"github.com/shouni/gemini-mannequin-proxy/pkg/utils"
	"google.golang.org/genai"
)

// ImagenGenerator は Imagen の画像生成 API を呼び出すジェネレーターです。
// 保持する状態は初期化時に決まり、リクエスト間で共有されても変更されません。
type ImagenGenerator struct {
	models ImagesModel
	model  string
}

// NewImagenGenerator は ImagenGenerator を初期化するのだ。
// model が空の場合は DefaultModel を使うのだ。
func NewImagenGenerator(models ImagesModel, model string) (*ImagenGenerator, error) {
	if models == nil {
		return nil, fmt.Errorf("models (ImagesModel) is required")
	}

	return &ImagenGenerator{
		models: models,
		model:  utils.OrDefault(model, DefaultModel),
	}, nil
}

// Model は利用するモデル名を返します。
func (g *ImagenGenerator) Model() string {
	return g.model
}

// GenerateImages は画像生成 API を一度だけ呼び出します。リトライは行いません。
// エラーは常に *domain.VendorError として返されます。
func (g *ImagenGenerator) GenerateImages(ctx context.Context, params domain.GenerateParams) (*genai.GenerateImagesResponse, error) {
	model := utils.OrDefault(params.Model, g.model)

	slog.DebugContext(ctx, "Imagen に画像生成をリクエストします",
		"model", model,
		"number_of_images", params.NumberOfImages,
		"aspect_ratio", params.AspectRatio,
	)

	start := time.Now()
	resp, err := g.models.GenerateImages(ctx, model, params.Prompt, toImagesConfig(params))
	observability.VendorLatency.WithLabelValues(model).Observe(time.Since(start).Seconds())

	if err != nil {
		vendorErr := toVendorError(err)
		observability.VendorRequestsTotal.WithLabelValues(model, vendorStatusLabel(vendorErr.Code)).Inc()
		return nil, vendorErr
	}
	if resp == nil {
		observability.VendorRequestsTotal.WithLabelValues(model, metricStatusError).Inc()
		return nil, &domain.VendorError{Message: "Imagen から有効な応答がありませんでした"}
	}

	observability.VendorRequestsTotal.WithLabelValues(model, metricStatusOK).Inc()
	slog.DebugContext(ctx, "Imagen の画像生成が完了しました", "model", model, "images", len(resp.GeneratedImages))
	return resp, nil
}
