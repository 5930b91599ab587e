package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitemapper/internal/config"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"sitemapper.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Generate struct {
		Output string `short:"o" help:"Output directory for sitemap documents (overrides config)"`
	} `cmd:"" help:"Build all sitemap documents"`

	Routes struct{} `cmd:"" help:"List discovered route templates without building"`

	Validate struct{} `cmd:"" help:"Check locale-count consistency without writing output"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "generate":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if CLI.Generate.Output != "" {
			cfg.Output.Directory = CLI.Generate.Output
		}
		if err := runGenerate(context.Background(), cfg); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}
	case "routes":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runRoutes(cfg); err != nil {
			slog.Error("Route discovery failed", "error", err)
			os.Exit(1)
		}
	case "validate":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		if err := runValidate(context.Background(), cfg); err != nil {
			slog.Error("Validation failed", "error", err)
			os.Exit(1)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Configuration file created", "path", CLI.Config)
	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}
