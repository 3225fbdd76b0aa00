package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/cv-agent/internal/models"
	"alfredoptarigan/cv-agent/internal/services"
)

type AnalysisHandler struct {
	agent services.CVAgentService
}

func NewAnalysisHandler(agent services.CVAgentService) *AnalysisHandler {
	return &AnalysisHandler{
		agent: agent,
	}
}

// HandleAnalyzeFit handles POST /analyze-fit/
func (h *AnalysisHandler) HandleAnalyzeFit(c *fiber.Ctx) error {
	req, err := parseJobRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.agent.AnalyzeFit(c.UserContext(), req)
	if errors.Is(err, services.ErrCVNotFound) {
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// HandleGenerateTailoredCV handles POST /generate-tailored-cv/
func (h *AnalysisHandler) HandleGenerateTailoredCV(c *fiber.Ctx) error {
	req, err := parseJobRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.agent.GenerateTailoredCV(c.UserContext(), req)
	if errors.Is(err, services.ErrCVNotFound) {
		return c.JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

func parseJobRequest(c *fiber.Ctx) (*models.JobRequest, error) {
	var req models.JobRequest

	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "invalid form payload")
	}

	if err := req.Validate(); err != nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, validationMessage(err))
	}

	return &req, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	switch fe := verrs[0]; fe.Field() {
	case "CVFilename":
		return "cv_filename is required"
	case "URL":
		return "url must be a valid URL"
	default:
		return fe.Error()
	}
}
