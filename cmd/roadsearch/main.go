// Command roadsearch loads a road network from an OpenStreetMap extract and
// compares Dijkstra against weighted A* on the scenarios of a YAML config.
//
// Usage:
//
//	roadsearch -config scenarios.yaml [-v]
//
// The config names the .osm.pbf extract, the A* weight factor and a list of
// scenarios (raw source/target coordinates). Results print as a text table;
// when the config sets an output path the routes are also written as GeoJSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/roadsearch/compare"
	"github.com/katalvlaran/roadsearch/osmload"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML scenario config")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: roadsearch -config scenarios.yaml")
		os.Exit(2)
	}

	if err := run(context.Background(), *configPath, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, logger *slog.Logger) error {
	cfg, err := compare.LoadConfig(configPath)
	if err != nil {
		return err
	}

	started := time.Now()
	graph, err := osmload.Load(ctx, cfg.OSMFile, osmload.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("extract decoded", "elapsed", time.Since(started))

	snapper, err := osmload.NewSnapper(graph)
	if err != nil {
		return err
	}

	reports := make([]compare.Report, 0, len(cfg.Scenarios))
	for _, sc := range cfg.Scenarios {
		report, err := compare.Run(graph, snapper, sc, *cfg.WeightFactor)
		if err != nil {
			return err
		}
		logger.Debug("scenario done",
			"scenario", sc.Name,
			"dijkstra_expanded", report.Dijkstra.Expanded,
			"astar_expanded", report.AStar.Expanded,
		)
		reports = append(reports, report)
	}

	if err := compare.RenderTable(os.Stdout, reports); err != nil {
		return err
	}

	if cfg.Output != "" {
		data, err := compare.GeoJSON(graph, reports)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
			return fmt.Errorf("write geojson: %w", err)
		}
		logger.Info("routes exported", "path", cfg.Output)
	}

	return nil
}
