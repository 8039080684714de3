// handlers — HTTP-обработчики usergen-service: индексная страница,
// API генерации и health-проверка.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/smolinaer/usergen-service/internal/config"
	"github.com/smolinaer/usergen-service/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	Service *service.Service
	Limits  config.LimitsConfig
}

func New(svc *service.Service, limits config.LimitsConfig) *Handlers {
	return &Handlers{Service: svc, Limits: limits}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
