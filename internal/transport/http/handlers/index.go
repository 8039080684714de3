package handlers

import (
	"embed"
	"html/template"
	"net/http"

	apierrors "github.com/smolinaer/usergen-service/internal/errors"
	"github.com/smolinaer/usergen-service/internal/models"
	logctx "github.com/smolinaer/usergen-service/internal/pkg/log"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// indexData — данные индексной страницы.
type indexData struct {
	Locales []models.Locale
}

// Index обрабатывает GET /: список локалей, отрендеренный в HTML.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	locales, err := h.Service.Locales(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, indexData{Locales: locales}); err != nil {
		// Статус уже мог уйти клиенту; остаётся только залогировать.
		logctx.From(r.Context()).Error("index template render failed", "err", err)
	}
}
