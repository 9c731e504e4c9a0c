package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"herald/internal/channel"
	hcfg "herald/internal/config"
	"herald/internal/i18n"
	"herald/internal/logger"
	"herald/internal/registry"
)

// Streams 是交互所用的输入输出；为空时使用进程的 stdin/stdout。
type Streams struct {
	In  io.Reader
	Out io.Writer
}

type AppBuilder struct {
	cfg     *hcfg.Config
	streams Streams

	catalogFn  func(lang string) (i18n.Catalog, error)
	registryFn func(io.Writer, i18n.Catalog) *registry.Registry
}

type AppBuilderOption func(*AppBuilder)

// WithRegistry 替换默认的 sender 注册表构建方式（测试用）。
func WithRegistry(fn func(io.Writer, i18n.Catalog) *registry.Registry) AppBuilderOption {
	return func(b *AppBuilder) {
		if fn != nil {
			b.registryFn = fn
		}
	}
}

func NewAppBuilder(cfg *hcfg.Config, streams Streams, opts ...AppBuilderOption) *AppBuilder {
	b := &AppBuilder{
		cfg:        cfg,
		streams:    streams,
		catalogFn:  loadCatalog,
		registryFn: buildRegistry,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func loadCatalog(lang string) (i18n.Catalog, error) {
	bundle, err := i18n.Load()
	if err != nil {
		return i18n.Catalog{}, err
	}
	return bundle.Lookup(lang), nil
}

func buildRegistry(out io.Writer, cat i18n.Catalog) *registry.Registry {
	reg := registry.New()
	reg.RegisterDefaults(out, cat)
	return reg
}

func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	if b.cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	in, out := b.streams.In, b.streams.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	cat, err := b.catalogFn(b.cfg.App.Lang)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	reg := b.registryFn(out, cat)
	if reg == nil {
		return nil, fmt.Errorf("nil sender registry")
	}
	summary := &StartupSummary{
		Env:      b.cfg.App.Env,
		Lang:     cat.Tag.String(),
		Channels: reg.Channels(),
	}
	if len(summary.Channels) < len(channel.All()) {
		logger.Warnf("只注册了 %d/%d 个通知渠道", len(summary.Channels), len(channel.All()))
	}
	return &App{
		cfg:      b.cfg,
		catalog:  cat,
		registry: reg,
		in:       in,
		out:      out,
		Summary:  summary,
	}, nil
}
