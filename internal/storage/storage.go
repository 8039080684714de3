// storage определяет контракты доступа к БД для usergen-service.
package storage

import (
	"context"
	"errors"

	"github.com/smolinaer/usergen-service/internal/models"
)

var (
	// ErrUnavailable — база недоступна (ошибка соединения/пула).
	// Транспорт: HTTP 503.
	ErrUnavailable = errors.New("storage unavailable")
)

// LocaleStorage описывает операции над справочником локалей.
type LocaleStorage interface {
	// ListLocales возвращает все известные локали, отсортированные по коду.
	// Пустая таблица — пустой срез, не ошибка.
	ListLocales(ctx context.Context) ([]models.Locale, error)
}

// UserStorage описывает обе формы вызова хранимой функции generate_fake_users.
// Формы намеренно разные (4-аргументная оконная и 3-аргументная массовая) и
// не сводятся к одной сигнатуре.
type UserStorage interface {
	// GenerateUsers вызывает generate_fake_users(locale, seed, batch_index, batch_size)
	// и возвращает строки как есть; раскладка полей пользователя — контракт БД.
	GenerateUsers(ctx context.Context, locale string, seed int64, batchIndex int64, batchSize int32) ([]models.User, error)
	// GenerateBulk вызывает скалярную форму generate_fake_users(locale, seed, count).
	// Используется только бенчмарком; результат генерации не читается.
	GenerateBulk(ctx context.Context, locale string, seed int64, count int64) error
}

// Storage задаёт контракт доступа к хранилищу для usergen-сервиса.
type Storage interface {
	LocaleStorage
	UserStorage
	// Ping выполняет тривиальный запрос (SELECT 1) для health-проверки.
	Ping(ctx context.Context) error
	Close()
}
