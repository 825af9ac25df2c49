package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blocktimes/internal/blockchaininfo"
	"github.com/goodnatureofminers/blocktimes/internal/display"
	"github.com/goodnatureofminers/blocktimes/internal/export"
	"github.com/goodnatureofminers/blocktimes/internal/metrics"
	"github.com/goodnatureofminers/blocktimes/internal/repository"
	"github.com/goodnatureofminers/blocktimes/internal/service"
	"github.com/goodnatureofminers/blocktimes/internal/stats"
)

type config struct {
	BaseURL       string        `long:"base-url" env:"BLOCKTIMES_BASE_URL" description:"Block explorer base URL" default:"https://blockchain.info"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"BLOCKTIMES_HTTP_TIMEOUT" description:"HTTP timeout for explorer requests" default:"30s"`
	RPS           int           `long:"rps" env:"BLOCKTIMES_RPS" description:"Explorer requests per second, 0 for unlimited" default:"2"`
	OutDir        string        `long:"out-dir" env:"BLOCKTIMES_OUT_DIR" description:"Directory for CSV exports" default:"."`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"BLOCKTIMES_CLICKHOUSE_DSN" description:"Optional ClickHouse DSN for archiving collected blocks"`
	BatchSize     int           `long:"clickhouse-batch-size" env:"BLOCKTIMES_CLICKHOUSE_BATCH_SIZE" description:"Rows per ClickHouse insert" default:"1000"`
	MetricsAddr   string        `long:"metrics-addr" env:"BLOCKTIMES_METRICS_ADDR" description:"Optional address for the Prometheus metrics server"`
	Args          struct {
		Days int `positional-arg-name:"days" description:"Number of daily block pages to fetch"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	// optional .env file for local runs
	_ = godotenv.Load()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.Args.Days <= 0 {
		logger.Fatal("days must be a positive number", zap.Int("days", cfg.Args.Days))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("blocktimes failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	var sink *repository.BlocksRepository
	if cfg.ClickhouseDSN != "" {
		repo, err := repository.NewBlocksRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		if err := repo.Ping(ctx); err != nil {
			return err
		}
		sink = repo
	}

	client := blockchaininfo.NewClient(cfg.BaseURL, cfg.HTTPTimeout, cfg.RPS, metrics.NewAPIClient())
	collector := service.NewCollector(client, logger, metrics.NewCollector())

	index, err := collector.Run(ctx, cfg.Args.Days)
	if err != nil {
		return err
	}

	report, err := stats.Compute(index.ByTimeAsc(), index.DuplicateTimestamps())
	if err != nil {
		return err
	}

	logger.Info("computed block time stats",
		zap.Int("total_blocks", report.TotalBlocks),
		zap.Int("duplicate_timestamps", report.DuplicateTimes),
		zap.Float64("span_days", report.SpanDays),
		zap.Duration("avg_gap", report.AvgGap),
		zap.Duration("min_gap", report.MinGap),
		zap.Duration("max_gap", report.MaxGap))

	display.Render(os.Stdout, report)

	heightPath := filepath.Join(cfg.OutDir, export.ByHeightFilename)
	if err := export.WriteByHeight(heightPath, index.ByHeightAsc()); err != nil {
		return err
	}
	timePath := filepath.Join(cfg.OutDir, export.ByTimestampFilename)
	if err := export.WriteByTimestamp(timePath, index.ByTimeAsc()); err != nil {
		return err
	}
	logger.Info("exported csv files",
		zap.String("by_height", heightPath),
		zap.String("by_timestamp", timePath))

	if sink != nil {
		archiver := service.NewArchiver(sink, logger, cfg.BatchSize)
		if err := archiver.Run(ctx, index.ByHeightAsc()); err != nil {
			return err
		}
	}

	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
