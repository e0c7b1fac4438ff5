package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config はプロキシサーバーのプロセス設定です。
// 環境変数（および任意の YAML ファイル）から読み込みます。
type Config struct {
	Env               string        `yaml:"env" env:"APP_ENV" env-default:"local" env-description:"local, dev or prod"`
	Port              int           `yaml:"port" env:"PORT" env-default:"3000" env-description:"listen port"`
	GeminiAPIKey      string        `yaml:"gemini_api_key" env:"GEMINI_API_KEY" env-description:"Gemini API key (required)"`
	Model             string        `yaml:"model" env:"IMAGEN_MODEL" env-default:"imagen-2.5-generate-002" env-description:"pinned Imagen model version"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" env:"MAX_BODY_BYTES" env-default:"1048576" env-description:"maximum request body size"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s" env-description:"graceful shutdown deadline"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT" env-default:"10s" env-description:"HTTP read header timeout"`
}

// Load は設定を読み込みます。path が空の場合は環境変数のみを参照します。
func Load(path string) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(&cfg, nil)
		return nil, fmt.Errorf("config: %s; %s", err, desc)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// Validate は設定値の整合性を検証します。
func (c *Config) Validate() error {
	var errs []error
	if c.GeminiAPIKey == "" {
		errs = append(errs, errors.New("GEMINI_API_KEY is required"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range", c.Port))
	}
	if c.Model == "" {
		errs = append(errs, errors.New("model must not be empty"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes))
	}
	return errors.Join(errs...)
}

// Addr は http.Server 用の listen アドレスを返します。
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
