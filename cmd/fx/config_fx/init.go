package config_fx

import (
	"go.uber.org/fx"
	"jelajah/internal/config"
	"jelajah/internal/infra"
)

var Module = fx.Provide(
	config.Load,
	infra.NewLogger)
