package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hikilaka/rs-lib/internal/config"
	"github.com/hikilaka/rs-lib/pkg/container"
)

const defaultConfigPath = "config/invdemo.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to demo config YAML")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(path string) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	cfg, err := config.LoadDemo(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	inv := container.NewInventory(cfg.Capacity)
	slog.Info("inventory created", "capacity", inv.Capacity(), "state", inv.String())

	for _, seed := range cfg.Seeds {
		item := container.NewItem(seed.Identifier, seed.Quantity)

		var placeErr error
		if seed.Slot < 0 {
			placeErr = inv.Add(item)
		} else {
			placeErr = inv.AddAt(item, seed.Slot)
		}
		if placeErr != nil {
			slog.Warn("seed skipped",
				"identifier", seed.Identifier,
				"quantity", seed.Quantity,
				"slot", seed.Slot,
				"err", placeErr)
			continue
		}

		slog.Info("seed placed",
			"identifier", seed.Identifier,
			"quantity", seed.Quantity,
			"slot", seed.Slot)
	}

	slog.Info("inventory seeded", "count", inv.Count(), "state", inv.String())
	return nil
}
