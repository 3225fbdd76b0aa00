package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// JobRequest is the form payload shared by analyze-fit and
// generate-tailored-cv. URL wins over Text when both are set.
type JobRequest struct {
	CVFilename string `form:"cv_filename" validate:"required"`
	URL        string `form:"url" validate:"omitempty,url"`
	Text       string `form:"text"`
}

func (r *JobRequest) Validate() error {
	return validate.Struct(r)
}

type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

type ListCVsResponse struct {
	UploadedCVs []string `json:"uploaded_cvs"`
}

type AnalyzeFitResponse struct {
	CVText         string       `json:"cv_text"`
	JobDescription string       `json:"job_description"`
	MatchResult    *MatchResult `json:"match_result"`
}

type TailoredCVResponse struct {
	TailoredCVText string   `json:"tailored_cv_text"`
	Keywords       []string `json:"keywords"`
	KeyPhrases     []string `json:"key_phrases"`
	DownloadLink   string   `json:"download_link"`
}

type TailoredHistoryResponse struct {
	TailoredCVs []TailoredDocument `json:"tailored_cvs"`
}

// MatchResult is the fit analysis produced by the language model.
type MatchResult struct {
	MatchScore          int      `json:"match_score"`
	MatchingSkills      []string `json:"matching_skills"`
	MissingSkills       []string `json:"missing_skills"`
	RelevantExperiences []string `json:"relevant_experiences"`
	Strengths           []string `json:"strengths"`
	Gaps                []string `json:"gaps"`
	Summary             string   `json:"summary"`
	Recommendation      string   `json:"recommendation"`
}

// TailoredResult is the rewritten CV plus the terms it was optimised for.
type TailoredResult struct {
	TailoredCV string   `json:"tailored_cv"`
	Keywords   []string `json:"keywords"`
	KeyPhrases []string `json:"key_phrases"`
}
