package handlers

import (
	"net/http"
)

// healthResponse — двухсостоянный контракт health-проверки:
// 200 {"status":"healthy","database":"connected"} либо
// 500 {"status":"unhealthy","error":...}.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Health обрабатывает GET /health: тривиальный запрос к БД.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.HealthCheck(r.Context()); err != nil {
		writeJSON(w, http.StatusInternalServerError, healthResponse{
			Status: "unhealthy",
			Error:  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
