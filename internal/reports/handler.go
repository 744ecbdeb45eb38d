package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/frahmantamala/smart-records/internal/transport"
	"github.com/frahmantamala/smart-records/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Generator *Generator
}

func NewHandler(gen *Generator) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Generator:   gen,
	}
}

// Get serves the report: plain text by default, a spreadsheet download with
// ?format=xlsx.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "xlsx" {
		h.serveXLSX(w)
		return
	}

	report, err := h.Generator.Generate()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(report)); err != nil {
		h.Logger.Error("failed to write report response", "error", err)
	}
}

func (h *Handler) serveXLSX(w http.ResponseWriter) {
	f, err := h.Generator.Workbook()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	filename := fmt.Sprintf("report_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if err := f.Write(w); err != nil {
		h.Logger.Error("failed to stream spreadsheet", "error", err)
	}
}
