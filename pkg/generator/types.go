package generator

const (
	// DefaultModel は固定で利用する Imagen のモデルバージョンです。
	DefaultModel = "imagen-2.5-generate-002"

	metricStatusOK    = "ok"
	metricStatusError = "error"
)
