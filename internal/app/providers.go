package app

import (
	"context"

	"herald/internal/config"
)

type appBuilderDeps interface {
	Build(context.Context) (*App, error)
}

func provideAppFromBuilder(b appBuilderDeps, ctx context.Context) (*App, error) {
	return b.Build(ctx)
}

func provideAppBuilder(cfg *config.Config, streams Streams) *AppBuilder {
	return NewAppBuilder(cfg, streams)
}
