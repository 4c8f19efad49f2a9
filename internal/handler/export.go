package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/kingdomroll/internal/export"
	"github.com/osse101/kingdomroll/internal/logger"
)

type ExportHandler struct {
	service export.Service
}

func NewExportHandler(service export.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// HandleExportRolls streams a CSV of completed rolls. The optional filter
// query parameter narrows the set to high-tier or pity wins.
func (h *ExportHandler) HandleExportRolls(w http.ResponseWriter, r *http.Request) {
	filter := export.Filter(GetOptionalQueryParam(r, "filter", string(export.FilterAll)))

	data, err := h.service.RollsCSV(r.Context(), filter)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to export rolls", "error", err, "filter", filter)
		statusCode, userMsg := MapDomainError(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondCSV(w, exportFilename("rolls"), data)
}

// HandleExportPrizes streams a CSV of all recorded prize wins.
func (h *ExportHandler) HandleExportPrizes(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.PrizesCSV(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to export prizes", "error", err)
		statusCode, userMsg := MapDomainError(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondCSV(w, exportFilename("prizes"), data)
}

func exportFilename(kind string) string {
	return fmt.Sprintf("%s_%s.csv", kind, time.Now().UTC().Format("20060102"))
}
