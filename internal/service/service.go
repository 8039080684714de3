// service содержит бизнес-логику usergen-сервиса: валидацию параметров
// генерации, обращение к хранилищу через интерфейсы из пакета storage
// и нормализацию результата (округление координат).
//
// Экземпляр Service не хранит состояние запроса и безопасен для
// конкурентного использования при потокобезопасном storage.Storage.
//
// Ошибки возвращаются сентинелами и далее маппятся HTTP-слоем
// (см. комментарии к переменным ниже).
package service

import (
	"errors"

	"github.com/smolinaer/usergen-service/internal/config"
	"github.com/smolinaer/usergen-service/internal/storage"
)

var (
	// ErrInvalidArgument — параметр запроса вне допустимых границ
	// (seed или batch_size). Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnavailable — база данных недоступна. Транспорт: HTTP 503.
	ErrUnavailable = errors.New("unavailable")

	// ErrInternal — прочие ошибки хранилища/БД. Транспорт: HTTP 500.
	ErrInternal = errors.New("internal error")
)

// Service реализует операции usergen-сервиса поверх storage.Storage.
type Service struct {
	storage storage.Storage
	cfg     *config.Config
}

// New создаёт Service с переданным хранилищем и конфигурацией.
func New(st storage.Storage, cfg *config.Config) *Service {
	return &Service{
		storage: st,
		cfg:     cfg,
	}
}
