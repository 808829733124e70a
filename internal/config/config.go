// Package config はPCC Consoleの設定管理を提供する。
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config はアプリケーション設定を保持する
type Config struct {
	// バックエンドAPI設定
	APIBaseURL string `envconfig:"PCC_API_URL" default:"http://localhost:5000"`

	// セッションファイルのパス（未指定時はユーザー設定ディレクトリ配下）
	SessionPath string `envconfig:"PCC_SESSION_PATH"`

	// ダウンロード先ディレクトリ（未指定時はカレントディレクトリ）
	DownloadDir string `envconfig:"PCC_DOWNLOAD_DIR"`

	// HTTPリクエストタイムアウト
	RequestTimeout time.Duration `envconfig:"PCC_REQUEST_TIMEOUT" default:"15s"`

	// ログ設定
	LogMaskToken bool `envconfig:"PCC_LOG_MASK_TOKEN" default:"true"`
}

// Load は環境変数から設定を読み込む
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.SessionPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		cfg.SessionPath = filepath.Join(dir, AppName, SessionFileName)
	}
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = "."
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// validate は設定値のバリデーションを行う
func (c *Config) validate() error {
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("PCC_API_URL must start with http:// or https://")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("PCC_REQUEST_TIMEOUT must be positive")
	}
	return nil
}
