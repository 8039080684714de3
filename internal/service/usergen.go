package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/smolinaer/usergen-service/internal/models"
	"github.com/smolinaer/usergen-service/internal/pkg/log"
	"github.com/smolinaer/usergen-service/internal/storage"
)

// Границы seed — диапазон int32 хранимой функции.
const (
	MinSeed = 0
	MaxSeed = 2147483647
)

// GenerateInput — параметры одного запроса генерации.
// Живёт ровно один HTTP-запрос, никуда не сохраняется.
type GenerateInput struct {
	Locale     string
	Seed       int64
	BatchIndex int64
	BatchSize  int32
}

// Locales возвращает справочник локалей, отсортированный по коду.
//
// Поведение:
//   - пустая таблица — пустой срез без ошибки;
//   - недоступность БД — ErrUnavailable, прочее — ErrInternal.
func (s *Service) Locales(ctx context.Context) ([]models.Locale, error) {
	const op = "service/usergen/Locales"

	lg := log.From(ctx).With("op", op)

	result, err := s.storage.ListLocales(ctx)
	if err != nil {
		return nil, s.mapStorageErr(lg, op, err)
	}

	return result, nil
}

// GenerateUsers валидирует параметры, вызывает хранимую функцию и
// округляет координаты каждого пользователя до 6 знаков.
//
// Валидация (до любого обращения к БД):
//   - 1 <= batch_size <= limits.max_batch;
//   - MinSeed <= seed <= MaxSeed.
//
// Сообщение ошибки называет нарушенное ограничение; сами правила
// генерации (детерминизм по seed, смысл batch_index) — контракт БД.
func (s *Service) GenerateUsers(ctx context.Context, input GenerateInput) ([]models.User, error) {
	const op = "service/usergen/GenerateUsers"

	lg := log.From(ctx).With("op", op, "locale", input.Locale, "seed", input.Seed)

	if input.BatchSize < 1 || input.BatchSize > s.cfg.Limits.MaxBatch {
		lg.Warn("invalid batch_size", "batch_size", input.BatchSize)

		return nil, fmt.Errorf("%s: batch_size must be between 1 and %d: %w",
			op, s.cfg.Limits.MaxBatch, ErrInvalidArgument)
	}

	if input.Seed < MinSeed || input.Seed > MaxSeed {
		lg.Warn("invalid seed")

		return nil, fmt.Errorf("%s: seed must be between %d and %d: %w",
			op, MinSeed, MaxSeed, ErrInvalidArgument)
	}

	users, err := s.storage.GenerateUsers(ctx, input.Locale, input.Seed, input.BatchIndex, input.BatchSize)
	if err != nil {
		return nil, s.mapStorageErr(lg, op, err)
	}

	for _, user := range users {
		user.RoundCoordinates()
	}

	return users, nil
}

// HealthCheck проверяет доступность БД тривиальным запросом.
func (s *Service) HealthCheck(ctx context.Context) error {
	const op = "service/usergen/HealthCheck"

	if err := s.storage.Ping(ctx); err != nil {
		log.From(ctx).Error("health check failed", "op", op, "err", err)

		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}

	return nil
}

// mapStorageErr переводит ошибки стораджа в сервисные сентинелы.
func (s *Service) mapStorageErr(lg *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		lg.Warn("storage unavailable", "err", err)

		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	default:
		lg.Error("storage error", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}
}
