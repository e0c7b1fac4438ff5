package generator

import (
	"context"

	"google.golang.org/genai"
)

// --- Mocks ---

// mockImagesModel は ImagesModel のテスト用モックなのだ。
type mockImagesModel struct {
	generateFunc func(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)

	calls      int
	lastModel  string
	lastPrompt string
	lastConfig *genai.GenerateImagesConfig
}

func (m *mockImagesModel) GenerateImages(ctx context.Context, model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	m.calls++
	m.lastModel = model
	m.lastPrompt = prompt
	m.lastConfig = config
	if m.generateFunc != nil {
		return m.generateFunc(ctx, model, prompt, config)
	}
	return &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{
			{Image: &genai.Image{MIMEType: "image/png", ImageBytes: []byte("fake")}},
		},
	}, nil
}
