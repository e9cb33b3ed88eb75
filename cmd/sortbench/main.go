package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"github.com/rlaau/sortbench/bench"
	"github.com/rlaau/sortbench/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("sortbench failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("정렬 알고리즘 벤치마크 시작",
		"cpus", runtime.NumCPU(),
		"gomaxprocs", runtime.GOMAXPROCS(0),
		"algorithms", cfg.Algorithms,
		"sizes", cfg.Sizes)

	sorters, err := cfg.Sorters()
	if err != nil {
		return err
	}
	dists, err := cfg.DistributionList()
	if err != nil {
		return err
	}
	sinks, err := cfg.SinkList()
	if err != nil {
		return err
	}

	var metrics *bench.Metrics
	if cfg.Output.MetricsFile != "" {
		metrics = bench.NewMetrics()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := &bench.Harness{
		Generator:     cfg.Generator(),
		Distributions: dists,
		Sizes:         cfg.Sizes,
		Sorters:       sorters,
		Logger:        logger,
		Metrics:       metrics,
	}

	start := time.Now()
	records, err := h.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "benchmark")
	}
	logger.Info("벤치마크 완료",
		"records", humanize.Comma(int64(len(records))),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %s", cfg.Output.Dir)
	}
	for _, sink := range sinks {
		if err := sink.Write(records); err != nil {
			return err
		}
		logger.Info("결과 저장", "location", sink.Location())
	}

	if err := metrics.WriteTextfile(cfg.Output.MetricsFile); err != nil {
		return err
	}
	if metrics != nil {
		logger.Info("메트릭 저장", "location", cfg.Output.MetricsFile)
	}
	return nil
}
