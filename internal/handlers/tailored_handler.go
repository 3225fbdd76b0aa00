package handlers

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-agent/internal/models"
	"alfredoptarigan/cv-agent/internal/repositories"
	"alfredoptarigan/cv-agent/internal/services"
)

const historyLimit = 100

type TailoredHandler struct {
	docRepo  repositories.DocumentRepository
	tailored services.StorageService
}

func NewTailoredHandler(docRepo repositories.DocumentRepository, tailored services.StorageService) *TailoredHandler {
	return &TailoredHandler{
		docRepo:  docRepo,
		tailored: tailored,
	}
}

// HandleDownload handles GET /download-tailored-cv/:filename
func (h *TailoredHandler) HandleDownload(c *fiber.Ctx) error {
	filename, err := services.SanitizeFilename(c.Params("filename"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filename")
	}

	f, err := os.Open(h.tailored.GetFilePath(filename))
	if errors.Is(err, os.ErrNotExist) {
		return fiber.NewError(fiber.StatusNotFound, "file not found: "+filename)
	}
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, services.DocxContentType)

	// fasthttp closes the file once the body has been written.
	return c.SendStream(f, int(info.Size()))
}

// HandleHistory handles GET /tailored-cvs/
func (h *TailoredHandler) HandleHistory(c *fiber.Ctx) error {
	docs, err := h.docRepo.ListTailored(historyLimit)
	if err != nil {
		return err
	}

	if docs == nil {
		docs = []models.TailoredDocument{}
	}

	return c.JSON(models.TailoredHistoryResponse{TailoredCVs: docs})
}
