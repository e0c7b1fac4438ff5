package generator

import (
	"errors"

	"github.com/shouni/gemini-mannequin-proxy/pkg/domain"
	"google.golang.org/genai"
)

func toImagesConfig(params domain.GenerateParams) *genai.GenerateImagesConfig {
	return &genai.GenerateImagesConfig{
		NumberOfImages: toInt32(params.NumberOfImages),
		AspectRatio:    params.AspectRatio,
	}
}

// toVendorError は SDK のエラーを domain.VendorError に変換します。
// genai.APIError の場合は HTTP ステータスコードとメッセージを引き継ぎます。
func toVendorError(err error) *domain.VendorError {
	var vendorErr *domain.VendorError
	if errors.As(err, &vendorErr) {
		return vendorErr
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &domain.VendorError{Code: apiErr.Code, Message: apiErr.Message, Cause: err}
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &domain.VendorError{Code: apiErrPtr.Code, Message: apiErrPtr.Message, Cause: err}
	}

	return &domain.VendorError{Message: err.Error(), Cause: err}
}
