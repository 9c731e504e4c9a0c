package config

import "strings"

// Config 是 herald 的主配置载体。
type Config struct {
	Include []string  `toml:"include" yaml:"include"`
	App     AppConfig `toml:"app" yaml:"app"`
}

type AppConfig struct {
	Env           string `toml:"env" yaml:"env"`
	LogLevel      string `toml:"log_level" yaml:"log_level"`
	LogPath       string `toml:"log_path" yaml:"log_path"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb" yaml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups" yaml:"log_max_backups"`
	Lang          string `toml:"lang" yaml:"lang"`
}

// keySet 用于追踪配置文件中显式设置的字段路径。
type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return false
	}
	_, ok := k[path]
	return ok
}

// fieldDefault 描述单个字段的默认值设置规则。
type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}
