package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
	"github.com/gofiber/fiber/v2"
)

// exportState snapshots everything an export renders under one lock hold.
func (handler *Handler) exportState() services.ExportState {
	handler.mu.Lock()
	defer handler.mu.Unlock()

	return services.ExportState{
		Profile:    handler.lastProfile,
		CurrentBMI: handler.lastResult.Value,
		History:    handler.history.List(),
		Goal:       handler.goal,
	}
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	state := handler.exportState()
	return c.JSON(services.BuildExportSummary(state.History, handler.location))
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	state := handler.exportState()
	now := time.Now().In(handler.location)

	serialized, err := json.MarshalIndent(services.BuildStructuredExport(state, now), "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	return handler.sendExport(c, services.ExportKindStructured, now, serialized)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	return handler.exportTabular(c, services.ExportKindCSV, ',')
}

func (handler *Handler) ExportSpreadsheet(c *fiber.Ctx) error {
	return handler.exportTabular(c, services.ExportKindSpreadsheet, '\t')
}

// exportTabular renders the fixed-section layout shared by both tabular
// flavors: profile block, history header row, one row per record. The csv
// writer quotes any field carrying the active delimiter.
func (handler *Handler) exportTabular(c *fiber.Ctx, kind string, delimiter rune) error {
	state := handler.exportState()
	now := time.Now().In(handler.location)

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	writer.Comma = delimiter

	for _, row := range services.BuildProfileRows(state) {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	if err := writer.Write(services.HistoryTableHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, row := range services.BuildHistoryRows(state.History, handler.location) {
		if err := writer.Write(row); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	return handler.sendExport(c, kind, now, output.Bytes())
}

func (handler *Handler) sendExport(c *fiber.Ctx, kind string, now time.Time, body []byte) error {
	filename, err := services.ExportFilename(kind, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	contentType, err := services.ExportContentType(kind)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, contentType, filename)
	return c.Send(body)
}
