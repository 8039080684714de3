package postgres

import (
	"context"
	"fmt"

	"github.com/smolinaer/usergen-service/internal/models"
)

// GenerateUsers вызывает оконную (4-аргументную) форму generate_fake_users.
// Раскладка полей пользователя известна только БД, поэтому строки
// декодируются динамически: имена колонок из описания результата,
// значения как есть. Детерминизм по seed и семантика batch_index —
// контракт хранимой функции, этот слой их не проверяет.
func (s *Storage) GenerateUsers(ctx context.Context, locale string, seed int64, batchIndex int64, batchSize int32) ([]models.User, error) {
	const op = "storage.postgres.GenerateUsers"

	rows, err := s.db.Query(ctx, `
	SELECT * FROM generate_fake_users($1, $2, $3, $4)
	`, locale, seed, batchIndex, batchSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()

	var users []models.User
	for rows.Next() {
		values, valErr := rows.Values()
		if valErr != nil {
			return nil, fmt.Errorf("%s: row values: %w", op, valErr)
		}

		user := make(models.User, len(fields))
		for i, fd := range fields {
			user[fd.Name] = values[i]
		}

		users = append(users, user)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return users, nil
}

// GenerateBulk вызывает скалярную (3-аргументную) форму generate_fake_users.
// Сигнатуры двух форм намеренно не объединяются: веб-путь и бенчмарк
// исторически обращаются к разным перегрузкам.
func (s *Storage) GenerateBulk(ctx context.Context, locale string, seed int64, count int64) error {
	const op = "storage.postgres.GenerateBulk"

	if _, err := s.db.Exec(ctx, `
	SELECT generate_fake_users($1, $2, $3)
	`, locale, seed, count); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
