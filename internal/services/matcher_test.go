package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGemini) GenerateJSON(_ context.Context, prompt string, _ float32) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func (f *fakeGemini) GenerateJSONWithRetry(ctx context.Context, prompt string, temperature float32, _ int) (string, error) {
	return f.GenerateJSON(ctx, prompt, temperature)
}

func TestMatcher_AnalyzeMatchFit(t *testing.T) {
	gemini := &fakeGemini{response: "```json\n" + `{
		"match_score": 140,
		"matching_skills": ["Go"],
		"missing_skills": ["Rust"],
		"summary": "Solid backend profile.",
		"recommendation": "Good Fit"
	}` + "\n```"}

	result, err := NewMatcher(gemini, 0.3, 1).AnalyzeMatchFit(context.Background(), "CV: Go developer", "Wanted: Go and Rust")
	require.NoError(t, err)

	assert.Equal(t, 100, result.MatchScore, "score is clamped to 0-100")
	assert.Equal(t, []string{"Go"}, result.MatchingSkills)
	assert.Equal(t, []string{"Rust"}, result.MissingSkills)
	assert.Equal(t, "Good Fit", result.Recommendation)

	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "CV: Go developer")
	assert.Contains(t, gemini.prompts[0], "Wanted: Go and Rust")
}

func TestMatcher_EmptyJobDescriptionUsesPlaceholder(t *testing.T) {
	gemini := &fakeGemini{response: `{"match_score": 50}`}

	_, err := NewMatcher(gemini, 0.3, 1).AnalyzeMatchFit(context.Background(), "cv", "")
	require.NoError(t, err)
	assert.Contains(t, gemini.prompts[0], "no job description provided")
}

func TestMatcher_GenerateTailoredCV(t *testing.T) {
	gemini := &fakeGemini{response: `Here you go: {"tailored_cv": "Jane\nGo Engineer", "keywords": ["Go"]}`}

	result, err := NewMatcher(gemini, 0.3, 1).GenerateTailoredCV(context.Background(), "cv", "job")
	require.NoError(t, err)

	assert.Equal(t, "Jane\nGo Engineer", result.TailoredCV)
	assert.Equal(t, []string{"Go"}, result.Keywords)
	assert.NotNil(t, result.KeyPhrases)
	assert.Empty(t, result.KeyPhrases)
}

func TestMatcher_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := NewMatcher(&fakeGemini{err: errors.New("quota exceeded")}, 0.3, 1).AnalyzeMatchFit(ctx, "cv", "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = NewMatcher(&fakeGemini{response: "not json"}, 0.3, 1).AnalyzeMatchFit(ctx, "cv", "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse fit analysis response")

	_, err = NewMatcher(&fakeGemini{response: `{"match_score": "secret model output"`}, 0.3, 1).AnalyzeMatchFit(ctx, "cv", "job")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret model output")

	_, err = NewMatcher(&fakeGemini{response: `{"tailored_cv": "  "}`}, 0.3, 1).GenerateTailoredCV(ctx, "cv", "job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare object", in: `{"a":1}`, want: `{"a":1}`},
		{name: "markdown fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", in: `Sure! {"a":{"b":2}} Hope this helps.`, want: `{"a":{"b":2}}`},
		{name: "array", in: `result: ["x","y"]`, want: `["x","y"]`},
		{name: "no json", in: "  nothing here ", want: "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
