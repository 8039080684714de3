// errors стандартизирует ответы об ошибках HTTP-слоя usergen-service.
// На вход он принимает сервисную ошибку (сентинелы пакета service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - стабильный машиночитаемый код;
//   - человекочитаемое message, называющее нарушенное ограничение.
//
// Таксономия (вместо бывшего catch-all со строкой исключения):
//   - ErrInvalidArgument -> 400 (валидация seed/batch_size, битый JSON);
//   - ErrUnavailable     -> 503 (БД недоступна);
//   - context.DeadlineExceeded -> 504;
//   - context.Canceled   -> 499 (клиент закрыл соединение);
//   - прочее             -> 500/internal.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smolinaer/usergen-service/internal/service"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует сервисную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - для ErrInvalidArgument в message попадает текст ошибки целиком:
//     он называет конкретное нарушенное ограничение.
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, ErrorResponse{
			Error: APIError{
				Code:    "invalid_argument",
				Message: err.Error(),
			},
		}
	case errors.Is(err, service.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorResponse{
			Error: APIError{
				Code:    "unavailable",
				Message: "database unavailable",
			},
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrorResponse{
			Error: APIError{
				Code:    "deadline_exceeded",
				Message: "deadline exceeded",
			},
		}
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorResponse{
			Error: APIError{
				Code:    "canceled",
				Message: "canceled",
			},
		}
	default:
		return http.StatusInternalServerError, ErrorResponse{
			Error: APIError{
				Code:    "internal",
				Message: "internal error",
			},
		}
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
