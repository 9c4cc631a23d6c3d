package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rsrsi-chart/internal/chart"
	"rsrsi-chart/internal/config"
	"rsrsi-chart/internal/dataset"
	"rsrsi-chart/internal/logger"
	"rsrsi-chart/internal/render"
	"rsrsi-chart/internal/utils"
	"rsrsi-chart/internal/viewer"
)

func main() {
	var configPath = flag.String("config", "",
		"Path to the YAML config (default: $CONFIG_PATH or '"+config.DefaultPath+"')",
	)
	var mode = flag.String("mode", "",
		"Chart mode, overrides the config. Modes are:\n"+
			"'trajectory' - Last points of every series connected with arrows\n"+
			"'overview'   - Whole series on fixed axes with a legend",
	)
	var output = flag.String("output", "",
		"Write the chart to this file instead of showing it",
	)
	flag.Parse()

	_ = godotenv.Load(".env")

	cfg, err := config.Load(config.Path(*configPath))
	utils.MaybeCrash(err)
	if *mode != "" {
		cfg.Chart.Mode = *mode
	}
	if *output != "" {
		cfg.Render.Output = *output
	}

	closer, err := logger.Setup(cfg.Logger())
	utils.MaybeCrash(err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := exitCode(run(ctx, cfg), closer)
	stop()
	os.Exit(code)
}

// exitCode logs a fatal err before the log output is released and returns
// the process exit code
func exitCode(err error, closer io.Closer) int {
	code := 0
	if err != nil {
		log.WithLevel(zerolog.FatalLevel).Msg(utils.PrettifyError(err))
		code = 1
	}
	if cerr := closer.Close(); cerr != nil {
		fmt.Fprintln(os.Stderr, "close log:", cerr)
	}
	return code
}

func run(ctx context.Context, cfg *config.Config) error {
	opts, err := cfg.ChartOptions()
	if err != nil {
		return err
	}

	ds, err := dataset.Load(dataset.DefaultPath, opts.RSIKey)
	if err != nil {
		return err
	}
	log.Info().Int("series", len(ds)).Str("mode", cfg.Chart.Mode).Msg("dataset loaded")

	assigner, err := chart.NewColorAssigner(cfg.Chart.ColorPolicy, len(ds))
	if err != nil {
		return err
	}
	canvas, err := render.New(cfg.Render.Backend, cfg.Render.Width, cfg.Render.Height, cfg.Render.Format)
	if err != nil {
		return err
	}
	spec, err := chart.Render(ds, canvas, assigner, opts)
	if err != nil {
		return err
	}

	if cfg.Render.Output != "" {
		return save(canvas, cfg.Render.Output)
	}

	v, err := viewer.New(cfg.Viewer.Addr, canvas, spec)
	if err != nil {
		return err
	}
	return v.Show(ctx)
}

func save(canvas chart.Canvas, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := canvas.Render(file); err != nil {
		file.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Info().Str("path", path).Str("type", canvas.MediaType()).Msg("chart saved")
	return nil
}
