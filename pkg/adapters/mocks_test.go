package adapters

import (
	"context"

	"github.com/shouni/gemini-mannequin-proxy/pkg/domain"
	"google.golang.org/genai"
)

// mockGenerator は generator.ImageGenerator のテスト用モックなのだ。
type mockGenerator struct {
	generateFunc func(ctx context.Context, params domain.GenerateParams) (*genai.GenerateImagesResponse, error)

	calls      int
	lastParams domain.GenerateParams
}

func (m *mockGenerator) GenerateImages(ctx context.Context, params domain.GenerateParams) (*genai.GenerateImagesResponse, error) {
	m.calls++
	m.lastParams = params
	if m.generateFunc != nil {
		return m.generateFunc(ctx, params)
	}
	return &genai.GenerateImagesResponse{}, nil
}
