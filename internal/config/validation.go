package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// validate 对配置进行基础校验。
func validate(c *Config) error {
	return c.App.validate()
}

func (a *AppConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(a.LogLevel)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("app.log_level must be one of debug/info/warn/error, got %q", a.LogLevel)
	}
	if lang := strings.TrimSpace(a.Lang); lang != "" {
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("app.lang is not a valid language tag %q: %w", a.Lang, err)
		}
	}
	if a.LogMaxSizeMB < 0 {
		return fmt.Errorf("app.log_max_size_mb must be >= 0")
	}
	if a.LogMaxBackups < 0 {
		return fmt.Errorf("app.log_max_backups must be >= 0")
	}
	return nil
}
