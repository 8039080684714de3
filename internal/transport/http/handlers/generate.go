package handlers

import (
	"fmt"
	"net/http"
	"time"

	apierrors "github.com/smolinaer/usergen-service/internal/errors"
	"github.com/smolinaer/usergen-service/internal/models"
	"github.com/smolinaer/usergen-service/internal/service"
)

// defaultLocale — локаль по умолчанию для запроса без поля locale.
const defaultLocale = "en_US"

// defaultSeed — seed по умолчанию.
const defaultSeed = 12345

// generateRequest — тело POST /api/generate; все поля опциональны.
// Указатели отличают «поле не прислали» от нулевого значения.
type generateRequest struct {
	Locale     *string `json:"locale"`
	Seed       *int64  `json:"seed"`
	BatchIndex *int64  `json:"batch_index"`
	BatchSize  *int32  `json:"batch_size"`
}

// generateResponse — 200-ответ: пользователи плюс эхо параметров запроса
// и серверная отметка времени формирования ответа (RFC 3339, UTC).
type generateResponse struct {
	Users      []models.User `json:"users"`
	Locale     string        `json:"locale"`
	Seed       int64         `json:"seed"`
	BatchIndex int64         `json:"batch_index"`
	BatchSize  int32         `json:"batch_size"`
	Timestamp  string        `json:"timestamp"`
}

// GenerateUsers обрабатывает POST /api/generate.
func (h *Handlers) GenerateUsers(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r,
			fmt.Errorf("invalid request body: %w", service.ErrInvalidArgument))
		return
	}

	input := service.GenerateInput{
		Locale:     defaultLocale,
		Seed:       defaultSeed,
		BatchIndex: 0,
		BatchSize:  h.Limits.DefaultBatch,
	}
	if req.Locale != nil {
		input.Locale = *req.Locale
	}
	if req.Seed != nil {
		input.Seed = *req.Seed
	}
	if req.BatchIndex != nil {
		input.BatchIndex = *req.BatchIndex
	}
	if req.BatchSize != nil {
		input.BatchSize = *req.BatchSize
	}

	users, err := h.Service.GenerateUsers(r.Context(), input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if users == nil {
		// В JSON уходит [], а не null.
		users = []models.User{}
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Users:      users,
		Locale:     input.Locale,
		Seed:       input.Seed,
		BatchIndex: input.BatchIndex,
		BatchSize:  input.BatchSize,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}
