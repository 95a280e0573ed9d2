package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

const (
	exportDateLayout   = "2006-01-02"
	recordStampLayout  = "2006-01-02 15:04"
	exportAppName      = "HealthMetric Pro"
	exportAppVersion   = "1.0"
	exportFilenameStem = "healthmetric-data"
	reportFilenameStem = "healthmetric-report"
)

const (
	ExportKindStructured  = "structured"
	ExportKindCSV         = "csv"
	ExportKindSpreadsheet = "spreadsheet"
	ExportKindPrintable   = "printable"
)

// HistoryTableHeaders is the header row shared by the tabular exports and
// the printable report.
var HistoryTableHeaders = []string{"Date", "Height (cm)", "Weight (kg)", "BMI", "Category"}

// ExportState is the combined snapshot an export renders: the profile and
// BMI of the latest computation, the saved history and the active goal.
type ExportState struct {
	Profile    models.Profile
	CurrentBMI float64
	History    []models.Record
	Goal       *models.Goal
}

// StructuredExport is the lossless nested representation behind the
// structured (JSON) export kind.
type StructuredExport struct {
	ExportDate string          `json:"export_date"`
	App        string          `json:"app"`
	Version    string          `json:"version"`
	Profile    models.Profile  `json:"profile"`
	CurrentBMI float64         `json:"current_bmi"`
	History    []models.Record `json:"history"`
	Goal       *models.Goal    `json:"goal,omitempty"`
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

func BuildStructuredExport(state ExportState, now time.Time) StructuredExport {
	history := state.History
	if history == nil {
		history = []models.Record{}
	}
	return StructuredExport{
		ExportDate: now.Format(time.RFC3339),
		App:        exportAppName,
		Version:    exportAppVersion,
		Profile:    state.Profile,
		CurrentBMI: state.CurrentBMI,
		History:    history,
		Goal:       state.Goal,
	}
}

// BuildProfileRows renders the fixed profile block that leads both tabular
// flavors: a title line, the labelled profile fields and the current BMI.
func BuildProfileRows(state ExportState) [][]string {
	return [][]string{
		{exportAppName + " Export"},
		{},
		{"User Information:"},
		{"Height", formatExportNumber(state.Profile.HeightCM) + " cm"},
		{"Weight", formatExportNumber(state.Profile.WeightKG) + " kg"},
		{"Age", strconv.Itoa(state.Profile.AgeYears) + " years"},
		{"Sex", state.Profile.Sex},
		{"Activity Level", state.Profile.Activity},
		{"Current BMI", formatExportNumber(state.CurrentBMI)},
		{},
		{"Calculation History:"},
	}
}

// BuildHistoryRows renders one row per record in the same newest-first
// order the store lists them. Quoting of delimiter-bearing fields is the
// encoder's job.
func BuildHistoryRows(history []models.Record, location *time.Location) [][]string {
	rows := make([][]string, 0, len(history))
	for _, record := range history {
		rows = append(rows, []string{
			record.CreatedAt.In(locationOrUTC(location)).Format(recordStampLayout),
			formatExportNumber(record.HeightCM),
			formatExportNumber(record.WeightKG),
			formatExportNumber(record.BMI),
			record.Category,
		})
	}
	return rows
}

// BuildExportSummary reports the record count and the covered date span
// for the export dialog. History arrives newest-first.
func BuildExportSummary(history []models.Record, location *time.Location) ExportSummary {
	if len(history) == 0 {
		return ExportSummary{}
	}
	loc := locationOrUTC(location)
	return ExportSummary{
		TotalEntries: len(history),
		HasData:      true,
		DateFrom:     history[len(history)-1].CreatedAt.In(loc).Format(exportDateLayout),
		DateTo:       history[0].CreatedAt.In(loc).Format(exportDateLayout),
	}
}

// ExportFilename embeds the current date; the extension follows the kind.
func ExportFilename(kind string, now time.Time) (string, error) {
	date := now.Format(exportDateLayout)
	switch kind {
	case ExportKindStructured:
		return fmt.Sprintf("%s-%s.json", exportFilenameStem, date), nil
	case ExportKindCSV:
		return fmt.Sprintf("%s-%s.csv", exportFilenameStem, date), nil
	case ExportKindSpreadsheet:
		return fmt.Sprintf("%s-%s.xls", exportFilenameStem, date), nil
	case ExportKindPrintable:
		return fmt.Sprintf("%s-%s.html", reportFilenameStem, date), nil
	default:
		return "", &ConfigurationError{Table: "export filenames", Key: kind}
	}
}

func ExportContentType(kind string) (string, error) {
	switch kind {
	case ExportKindStructured:
		return "application/json", nil
	case ExportKindCSV:
		return "text/csv", nil
	case ExportKindSpreadsheet:
		return "application/vnd.ms-excel", nil
	case ExportKindPrintable:
		return "text/html; charset=utf-8", nil
	default:
		return "", &ConfigurationError{Table: "export content types", Key: kind}
	}
}

// formatExportNumber prints whole values without a trailing zero decimal,
// matching how the stored numbers round-trip through the exports.
func formatExportNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func locationOrUTC(location *time.Location) *time.Location {
	if location == nil {
		return time.UTC
	}
	return location
}
