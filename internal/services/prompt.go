package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildFitAnalysisPrompt creates prompt for CV vs job description matching
func (pb *PromptBuilder) BuildFitAnalysisPrompt(cvText, jobDescription string) string {
	return fmt.Sprintf(`You are an experienced technical recruiter comparing a candidate's CV with a job description.

JOB DESCRIPTION:
%s

CANDIDATE CV:
%s

Assess how well the candidate fits the role. Consider hard skills, tools, seniority, domain experience and measurable achievements.

Return your response in the following JSON format:
{
  "match_score": <integer 0-100>,
  "matching_skills": ["<skill present in both CV and job description>"],
  "missing_skills": ["<skill the job asks for that the CV does not show>"],
  "relevant_experiences": ["<CV experience that supports the application>"],
  "strengths": ["<short strength statement>"],
  "gaps": ["<short gap statement>"],
  "summary": "<3-5 sentences explaining the fit>",
  "recommendation": "<one of: Strong Fit, Good Fit, Partial Fit, Poor Fit>"
}

Be objective. Only list skills that are explicitly supported by the text.`,
		orPlaceholder(jobDescription), cvText)
}

// BuildTailoringPrompt creates prompt for rewriting the CV against a job
func (pb *PromptBuilder) BuildTailoringPrompt(cvText, jobDescription string) string {
	return fmt.Sprintf(`You are a professional CV writer. Rewrite the candidate's CV so it targets the job description below.

JOB DESCRIPTION:
%s

ORIGINAL CV:
%s

Rules:
- Keep every fact truthful. Do not invent employers, dates, degrees or skills.
- Reorder and rephrase content so the most relevant experience comes first.
- Use the job description's terminology where the CV supports it.
- Plain text only, one item per line, blank lines between sections. No markdown.

Also extract the job description's most important keywords (single terms) and key phrases (multi-word).

Return your response in the following JSON format:
{
  "tailored_cv": "<full tailored CV text with \n line breaks>",
  "keywords": ["<keyword>"],
  "key_phrases": ["<key phrase>"]
}`,
		orPlaceholder(jobDescription), cvText)
}

func orPlaceholder(jobDescription string) string {
	if strings.TrimSpace(jobDescription) == "" {
		return "(no job description provided; assess the CV on general merit)"
	}
	return jobDescription
}
