package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alfredoptarigan/cv-agent/internal/models"
	"alfredoptarigan/cv-agent/internal/repositories"
	"alfredoptarigan/cv-agent/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload-cv/
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	cvFile, err := c.FormFile("cv")
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "cv file is required",
		})
	}

	if h.maxFileSize > 0 && cvFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("CV file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, _, err := h.storageService.SaveFile(cvFile)
	if errors.Is(err, services.ErrInvalidFilename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("invalid CV filename: %q", cvFile.Filename),
		})
	}
	if err != nil {
		return err
	}

	if h.docRepo != nil {
		doc := &models.CVDocument{
			Filename:    filename,
			SizeBytes:   cvFile.Size,
			ContentType: cvFile.Header.Get(fiber.HeaderContentType),
		}
		if err := h.docRepo.UpsertCV(doc); err != nil {
			log.Printf("⚠️  Failed to catalog CV %s: %v", filename, err)
		}
	}

	return c.JSON(models.UploadResponse{
		Message:  "CV uploaded and saved.",
		Filename: filename,
	})
}

// HandleCVInfo handles GET /cvs/:filename
func (h *UploadHandler) HandleCVInfo(c *fiber.Ctx) error {
	filename, err := services.SanitizeFilename(c.Params("filename"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid filename")
	}

	doc, err := h.docRepo.FindCV(filename)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "CV not found: "+filename)
	}
	if err != nil {
		return err
	}

	return c.JSON(doc)
}

// HandleList handles GET /list-cvs/
func (h *UploadHandler) HandleList(c *fiber.Ctx) error {
	names, err := h.storageService.ListFiles()
	if err != nil {
		return err
	}

	return c.JSON(models.ListCVsResponse{UploadedCVs: names})
}
