package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"alfredoptarigan/cv-agent/internal/models"
	"alfredoptarigan/cv-agent/internal/repositories"
)

// ErrCVNotFound is reported to clients verbatim, hence the sentence form.
var ErrCVNotFound = errors.New("CV file not found.")

type CVAgentService interface {
	AnalyzeFit(ctx context.Context, req *models.JobRequest) (*models.AnalyzeFitResponse, error)
	GenerateTailoredCV(ctx context.Context, req *models.JobRequest) (*models.TailoredCVResponse, error)
}

type cvAgentService struct {
	uploads   StorageService
	extractor TextExtractor
	jobSource JobSourceResolver
	analyzer  FitAnalyzer
	generator TailoringGenerator
	writer    DocumentWriter
	docRepo   repositories.DocumentRepository
}

func NewCVAgentService(
	uploads StorageService,
	extractor TextExtractor,
	jobSource JobSourceResolver,
	analyzer FitAnalyzer,
	generator TailoringGenerator,
	writer DocumentWriter,
	docRepo repositories.DocumentRepository,
) CVAgentService {
	return &cvAgentService{
		uploads:   uploads,
		extractor: extractor,
		jobSource: jobSource,
		analyzer:  analyzer,
		generator: generator,
		writer:    writer,
		docRepo:   docRepo,
	}
}

func (s *cvAgentService) AnalyzeFit(ctx context.Context, req *models.JobRequest) (*models.AnalyzeFitResponse, error) {
	cvText, jobText, err := s.loadInputs(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Printf("🤖 Analyzing fit for %s...", req.CVFilename)
	result, err := s.analyzer.AnalyzeMatchFit(ctx, cvText, jobText)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze fit: %w", err)
	}

	return &models.AnalyzeFitResponse{
		CVText:         cvText,
		JobDescription: jobText,
		MatchResult:    result,
	}, nil
}

func (s *cvAgentService) GenerateTailoredCV(ctx context.Context, req *models.JobRequest) (*models.TailoredCVResponse, error) {
	cvText, jobText, err := s.loadInputs(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Printf("🤖 Generating tailored CV for %s...", req.CVFilename)
	result, err := s.generator.GenerateTailoredCV(ctx, cvText, jobText)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tailored CV: %w", err)
	}

	filename, err := s.writer.WriteTailoredCV(result.TailoredCV)
	if err != nil {
		return nil, err
	}
	log.Printf("💾 Tailored CV saved as %s", filename)

	if s.docRepo != nil {
		record := &models.TailoredDocument{
			Filename:   filename,
			SourceCV:   req.CVFilename,
			Keywords:   result.Keywords,
			KeyPhrases: result.KeyPhrases,
		}
		if err := s.docRepo.CreateTailored(record); err != nil {
			log.Printf("⚠️  Failed to catalog tailored CV %s: %v", filename, err)
		}
	}

	return &models.TailoredCVResponse{
		TailoredCVText: result.TailoredCV,
		Keywords:       result.Keywords,
		KeyPhrases:     result.KeyPhrases,
		DownloadLink:   "/download-tailored-cv/" + filename,
	}, nil
}

func (s *cvAgentService) loadInputs(ctx context.Context, req *models.JobRequest) (string, string, error) {
	filename, err := SanitizeFilename(req.CVFilename)
	if err != nil || !s.uploads.Exists(filename) {
		return "", "", ErrCVNotFound
	}

	log.Printf("📄 Extracting text from %s...", filename)
	cvText, err := s.extractor.ExtractText(s.uploads.GetFilePath(filename))
	if err != nil {
		return "", "", fmt.Errorf("failed to extract CV text: %w", err)
	}

	jobText, err := s.jobSource.Resolve(ctx, req.URL, req.Text)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve job description: %w", err)
	}

	return cvText, jobText, nil
}
