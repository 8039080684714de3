package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smolinaer/usergen-service/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
}

// New создает пул соединений к PostgreSQL.
// Каждый логический вызов получает изолированное соединение из пула;
// открытия/закрытия на каждый запрос, как в первоначальной версии, больше нет.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage.postgres.New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUnavailable)
	}

	return &Storage{db: db}, nil
}

// Ping выполняет SELECT 1 для health-проверки.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.postgres.Ping"

	var one int
	if err := s.db.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrUnavailable)
	}

	return nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() {
	s.db.Close()
}

// Проверка на соответствие интерфейсу Storage.
var _ storage.Storage = (*Storage)(nil)
