package generator

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// NewClient は Gemini API バックエンド向けの genai.Client を生成します。
// 生成したクライアントはプロセス全体で読み取り専用として共有されます。
// httpClient が nil の場合は SDK のデフォルトが使われます。
func NewClient(ctx context.Context, apiKey string, httpClient *http.Client) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("genai クライアントの初期化に失敗しました: %w", err)
	}
	return client, nil
}

// NewImagenGeneratorFromClient は genai.Client の Models を使って ImagenGenerator を初期化します。
func NewImagenGeneratorFromClient(client *genai.Client, model string) (*ImagenGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("client (*genai.Client) is required")
	}
	return NewImagenGenerator(client.Models, model)
}
