package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileOptions 描述滚动日志文件。
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
}

// SetupFile 将日志同时写入 console 与滚动文件；Path 为空时不做任何事并返回 nil。
func SetupFile(console io.Writer, opts FileOptions) (io.Closer, error) {
	trimmed := strings.TrimSpace(opts.Path)
	if trimmed == "" {
		return nil, nil
	}
	dir := filepath.Dir(trimmed)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	rotator := &lumberjack.Logger{
		Filename:   trimmed,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}
	if console == nil {
		console = os.Stderr
	}
	SetOutput(io.MultiWriter(console, rotator))
	return rotator, nil
}
