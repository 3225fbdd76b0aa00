package services

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tailoredNamePattern = regexp.MustCompile(`^tailored_[0-9a-f]{8}\.docx$`)

func TestSplitParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "three lines", text: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "trailing newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "blank line kept", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf", text: "a\r\nb", want: []string{"a", "b"}},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitParagraphs(tt.text))
		})
	}
}

func TestNewTailoredFilename(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		name := NewTailoredFilename()
		assert.Regexp(t, tailoredNamePattern, name)
		seen[name] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestDocumentWriter_OneParagraphPerLine(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	writer := NewDocumentWriter(storage)

	filename, err := writer.WriteTailoredCV("Jane Doe\nSenior Go Engineer\nBerlin")
	require.NoError(t, err)
	assert.Regexp(t, tailoredNamePattern, filename)
	assert.True(t, storage.Exists(filename))

	paragraphs := readParagraphs(t, storage.GetFilePath(filename))
	assert.Equal(t, []string{"Jane Doe", "Senior Go Engineer", "Berlin"}, paragraphs)
}

func TestDocumentWriter_BlankLinesBecomeEmptyParagraphs(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	filename, err := NewDocumentWriter(storage).WriteTailoredCV("SUMMARY\n\nEXPERIENCE\n")
	require.NoError(t, err)

	paragraphs := readParagraphs(t, storage.GetFilePath(filename))
	assert.Equal(t, []string{"SUMMARY", "", "EXPERIENCE"}, paragraphs)
}

func TestDocumentWriter_EscapesMarkup(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	filename, err := NewDocumentWriter(storage).WriteTailoredCV("C++ & Go <fast>")
	require.NoError(t, err)

	paragraphs := readParagraphs(t, storage.GetFilePath(filename))
	assert.Equal(t, []string{"C++ & Go <fast>"}, paragraphs)
}
