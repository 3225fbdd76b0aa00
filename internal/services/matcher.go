package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"alfredoptarigan/cv-agent/internal/models"
)

type FitAnalyzer interface {
	AnalyzeMatchFit(ctx context.Context, cvText, jobText string) (*models.MatchResult, error)
}

type TailoringGenerator interface {
	GenerateTailoredCV(ctx context.Context, cvText, jobText string) (*models.TailoredResult, error)
}

// Matcher implements both FitAnalyzer and TailoringGenerator on top of Gemini.
type Matcher struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	temperature   float32
	maxRetries    int
}

func NewMatcher(geminiService GeminiService, temperature float32, maxRetries int) *Matcher {
	return &Matcher{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		temperature:   temperature,
		maxRetries:    maxRetries,
	}
}

func (m *Matcher) AnalyzeMatchFit(ctx context.Context, cvText, jobText string) (*models.MatchResult, error) {
	prompt := m.promptBuilder.BuildFitAnalysisPrompt(cvText, jobText)
	log.Printf("📝 Fit analysis prompt length: %d characters", len(prompt))

	response, err := m.geminiService.GenerateJSONWithRetry(ctx, prompt, m.temperature, m.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fit analysis: %w", err)
	}

	var result models.MatchResult
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse fit analysis response: %w", err)
	}

	result.MatchScore = clampScore(result.MatchScore)
	return &result, nil
}

func (m *Matcher) GenerateTailoredCV(ctx context.Context, cvText, jobText string) (*models.TailoredResult, error) {
	prompt := m.promptBuilder.BuildTailoringPrompt(cvText, jobText)
	log.Printf("📝 Tailoring prompt length: %d characters", len(prompt))

	response, err := m.geminiService.GenerateJSONWithRetry(ctx, prompt, m.temperature, m.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tailored CV: %w", err)
	}

	var result models.TailoredResult
	if err := parseJSONResponse(response, &result); err != nil {
		return nil, fmt.Errorf("failed to parse tailored CV response: %w", err)
	}

	if strings.TrimSpace(result.TailoredCV) == "" {
		return nil, fmt.Errorf("tailored CV response is empty")
	}
	if result.Keywords == nil {
		result.Keywords = []string{}
	}
	if result.KeyPhrases == nil {
		result.KeyPhrases = []string{}
	}

	return &result, nil
}

func clampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}

func parseJSONResponse(response string, target interface{}) error {
	jsonStr := extractJSON(response)

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		log.Printf("⚠️  Unparseable model response (%d chars): %s", len(response), truncate(response, 500))
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}
