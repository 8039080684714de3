// benchmark — автономный прогон generate_fake_users на возрастающих
// размерах батча. В отличие от HTTP-пути, использует одно разделяемое
// подключение (пул) на весь прогон.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/smolinaer/usergen-service/internal/benchmark"
	"github.com/smolinaer/usergen-service/internal/config"
	"github.com/smolinaer/usergen-service/internal/storage/postgres"
)

// defaultCounts — размеры батча по умолчанию (локальный прогон).
const defaultCounts = "10000,50000,100000,500000,1000000"

func main() {
	var (
		configPath string
		countsRaw  string
		locale     string
		seed       int64
	)
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.StringVar(&countsRaw, "counts", defaultCounts, "comma-separated batch sizes")
	flag.StringVar(&locale, "locale", "en_US", "locale passed to the generator")
	flag.Int64Var(&seed, "seed", 12345, "seed passed to the generator")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	counts, err := parseCounts(countsRaw)
	if err != nil {
		log.Error("bad_counts", slog.String("err", err.Error()))
		os.Exit(2)
	}

	runID := uuid.NewString()
	log.Info("starting benchmark",
		slog.String("run_id", runID),
		slog.String("locale", locale),
		slog.Int64("seed", seed),
		slog.Int("sizes", len(counts)),
	)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	store, err := postgres.New(dbCtx, cfg.DB.URL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	runner := benchmark.NewRunner(store, log, locale, seed)

	results, err := runner.Run(rootCtx, counts)
	if err != nil {
		log.Error("benchmark_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	printResults(results)
}

// parseCounts разбирает список размеров батча из флага --counts.
func parseCounts(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	counts := make([]int64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse count %q: %w", p, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("count must be positive, got %d", n)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

// printResults печатает итоговую таблицу прогона.
func printResults(results []benchmark.Result) {
	fmt.Println()
	fmt.Println("Benchmark Results")
	fmt.Println("Batch Size | Time (s) | Throughput (users/s)")
	for _, res := range results {
		fmt.Printf("%10d | %8.2f | %12.0f\n", res.Count, res.Elapsed.Seconds(), res.Throughput)
	}
}
