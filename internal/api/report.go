package api

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
	"github.com/gofiber/fiber/v2"
)

// reportHTML is the printable document handed to the platform print
// facility. Styling follows the app palette so the printout matches the
// on-screen report.
const reportHTML = `<!DOCTYPE html>
<html>
<head>
<title>HealthMetric Pro Report</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; }
  .header { text-align: center; color: #2E8B57; border-bottom: 2px solid #2E8B57; padding-bottom: 20px; }
  .section { margin: 30px 0; }
  .section h2 { color: #2E8B57; border-bottom: 1px solid #ddd; padding-bottom: 10px; }
  table { width: 100%; border-collapse: collapse; margin: 10px 0; }
  th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
  th { background-color: #f8f9fa; }
  .bmi-score { font-size: 2em; color: #2E8B57; font-weight: bold; }
</style>
</head>
<body>
<div class="header">
  <h1>HealthMetric Pro Report</h1>
  <p>Generated on {{.GeneratedOn}}</p>
</div>
<div class="section">
  <h2>Current Health Status</h2>
  <p><strong>BMI Score:</strong> <span class="bmi-score">{{.CurrentBMI}}</span></p>
  <p><strong>Height:</strong> {{.HeightCM}} cm</p>
  <p><strong>Weight:</strong> {{.WeightKG}} kg</p>
  <p><strong>Age:</strong> {{.AgeYears}} years</p>
  <p><strong>Sex:</strong> {{.Sex}}</p>
  <p><strong>Activity Level:</strong> {{.Activity}}</p>
</div>
{{if .HistoryRows}}
<div class="section">
  <h2>Measurement History</h2>
  <table>
    <thead>
      <tr>{{range .HistoryHeaders}}<th>{{.}}</th>{{end}}</tr>
    </thead>
    <tbody>
      {{range .HistoryRows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
      {{end}}
    </tbody>
  </table>
</div>
{{end}}
</body>
</html>`

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

type reportData struct {
	GeneratedOn    string
	CurrentBMI     string
	HeightCM       string
	WeightKG       string
	AgeYears       int
	Sex            string
	Activity       string
	HistoryHeaders []string
	HistoryRows    [][]string
}

// ExportReport renders the printable report. It is served inline: the
// print dialog itself belongs to the platform, not to this service.
func (handler *Handler) ExportReport(c *fiber.Ctx) error {
	state := handler.exportState()
	now := time.Now().In(handler.location)

	data := reportData{
		GeneratedOn:    now.Format("2006-01-02"),
		CurrentBMI:     fmt.Sprintf("%.1f", state.CurrentBMI),
		HeightCM:       fmt.Sprintf("%g", state.Profile.HeightCM),
		WeightKG:       fmt.Sprintf("%g", state.Profile.WeightKG),
		AgeYears:       state.Profile.AgeYears,
		Sex:            state.Profile.Sex,
		Activity:       state.Profile.Activity,
		HistoryHeaders: services.HistoryTableHeaders,
		HistoryRows:    services.BuildHistoryRows(state.History, handler.location),
	}

	var output bytes.Buffer
	if err := reportTemplate.Execute(&output, data); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	filename, err := services.ExportFilename(services.ExportKindPrintable, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}
	contentType, err := services.ExportContentType(services.ExportKindPrintable)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build report")
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", filename))
	return c.Send(output.Bytes())
}
