package main

import (
	"log"

	"lookcircuit-backend/internal/bootstrap"
	"lookcircuit-backend/internal/shared/config"
	"lookcircuit-backend/internal/shared/server"
	"lookcircuit-backend/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Configure(telemetry.Options{
		Level:         cfg.LogLevel,
		HumanReadable: cfg.LogFormat == "console",
	})

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	if app.DB != nil {
		defer app.DB.Close()
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
