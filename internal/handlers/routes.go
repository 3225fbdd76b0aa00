package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Upload   *UploadHandler
	Analysis *AnalysisHandler
	Tailored *TailoredHandler
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "AI CV Agent is running!",
		})
	})

	app.Post("/upload-cv/", h.Upload.HandleUpload)
	app.Get("/list-cvs/", h.Upload.HandleList)
	app.Get("/cvs/:filename", h.Upload.HandleCVInfo)
	app.Post("/analyze-fit/", h.Analysis.HandleAnalyzeFit)
	app.Post("/generate-tailored-cv/", h.Analysis.HandleGenerateTailoredCV)
	app.Get("/download-tailored-cv/:filename", h.Tailored.HandleDownload)
	app.Get("/tailored-cvs/", h.Tailored.HandleHistory)
}

// ErrorHandler renders fiber errors as-is. Anything else is logged and
// reported to the client as a bare 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := fiber.ErrInternalServerError.Message

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("❌ %s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}
