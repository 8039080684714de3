// benchmark измеряет пропускную способность хранимой функции
// generate_fake_users на возрастающих размерах батча. Запуски строго
// последовательны, одно соединение (пул) разделяется между всеми
// размерами в рамках одного прогона.
package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// BulkGenerator — 3-аргументная (массовая) форма вызова генератора.
// Реализуется postgres-хранилищем; в тестах подменяется заглушкой.
type BulkGenerator interface {
	GenerateBulk(ctx context.Context, locale string, seed int64, count int64) error
}

// Result — итог одного размера батча.
type Result struct {
	// Count — запрошенное количество пользователей.
	Count int64
	// Elapsed — настенное время одного вызова.
	Elapsed time.Duration
	// Throughput — Count / Elapsed в пользователях в секунду.
	Throughput float64
}

// Runner прогоняет последовательность размеров батча через генератор.
type Runner struct {
	gen    BulkGenerator
	log    *slog.Logger
	locale string
	seed   int64

	// now подменяется в тестах.
	now func() time.Time
}

// NewRunner создаёт Runner. Нулевой логгер заменяется slog.Default().
func NewRunner(gen BulkGenerator, log *slog.Logger, locale string, seed int64) *Runner {
	if log == nil {
		log = slog.Default()
	}

	return &Runner{
		gen:    gen,
		log:    log,
		locale: locale,
		seed:   seed,
		now:    time.Now,
	}
}

// Run выполняет по одному вызову генератора на каждый размер батча,
// в заданном порядке, и возвращает результаты всех размеров.
// Первая же ошибка прерывает прогон.
func (r *Runner) Run(ctx context.Context, counts []int64) ([]Result, error) {
	const op = "benchmark.Run"

	results := make([]Result, 0, len(counts))
	for _, count := range counts {
		r.log.Info("generating users", "count", count)

		start := r.now()
		if err := r.gen.GenerateBulk(ctx, r.locale, r.seed, count); err != nil {
			return results, fmt.Errorf("%s: count %d: %w", op, count, err)
		}
		elapsed := r.now().Sub(start)

		res := Result{
			Count:   count,
			Elapsed: elapsed,
		}
		if secs := elapsed.Seconds(); secs > 0 {
			res.Throughput = float64(count) / secs
		}

		r.log.Info("batch done",
			"count", count,
			"elapsed", elapsed,
			"throughput_users_per_sec", int64(res.Throughput),
		)

		results = append(results, res)
	}

	return results, nil
}
