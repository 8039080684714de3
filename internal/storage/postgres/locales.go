package postgres

import (
	"context"
	"fmt"

	"github.com/smolinaer/usergen-service/internal/models"
)

// ListLocales возвращает все локали, отсортированные по коду.
// Порядок фиксирован: locale_code ASC — его же отдаёт индексная страница.
func (s *Storage) ListLocales(ctx context.Context) ([]models.Locale, error) {
	const op = "storage.postgres.ListLocales"

	rows, err := s.db.Query(ctx, `
	SELECT locale_code, locale_name
	FROM locales
	ORDER BY locale_code
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var locales []models.Locale
	for rows.Next() {
		var locale models.Locale
		if scanErr := rows.Scan(&locale.Code, &locale.Name); scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		locales = append(locales, locale)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return locales, nil
}
