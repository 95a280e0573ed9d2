package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/bmi", handler.ComputeBMI)
	api.Get("/share", handler.ShareMessage)
	api.Get("/analytics", handler.Analytics)

	records := api.Group("/records")
	records.Get("", handler.ListRecords)
	records.Post("", handler.SaveRecord)
	records.Delete("", handler.ClearRecords)

	goal := api.Group("/goal")
	goal.Get("", handler.GetGoal)
	goal.Post("", handler.SaveGoal)
	goal.Post("/suggest", handler.SuggestGoal)

	preferences := api.Group("/preferences")
	preferences.Get("", handler.GetPreferences)
	preferences.Put("", handler.UpdatePreferences)

	export := api.Group("/export")
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/spreadsheet", handler.ExportSpreadsheet)
	export.Get("/report", handler.ExportReport)
}
