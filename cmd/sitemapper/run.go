package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"git.home.luguber.info/inful/sitemapper/internal/build"
	"git.home.luguber.info/inful/sitemapper/internal/config"
)

func runGenerate(ctx context.Context, cfg *config.Config) error {
	engine, err := build.New(cfg)
	if err != nil {
		return err
	}
	return engine.Generate(ctx)
}

func runValidate(ctx context.Context, cfg *config.Config) error {
	engine, err := build.New(cfg)
	if err != nil {
		return err
	}
	if err := engine.Validate(ctx); err != nil {
		return err
	}
	slog.Info("Locale counts within tolerance", "locales", len(engine.Locales().All()))
	return nil
}

// runRoutes prints the discovered route templates as a dry run.
func runRoutes(cfg *config.Config) error {
	engine, err := build.New(cfg)
	if err != nil {
		return err
	}
	templates, err := engine.DiscoverTemplates()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tKIND\tSOURCE")
	for _, t := range templates {
		kind := "static"
		if t.Dynamic {
			kind = "dynamic"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", t.Path, kind, t.SourceFile)
	}
	return w.Flush()
}
