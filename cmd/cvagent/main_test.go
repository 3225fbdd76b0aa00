package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/cv-agent/internal/services"
)

func TestExtractCommand(t *testing.T) {
	var doc bytes.Buffer
	require.NoError(t, services.RenderDocx(&doc, []string{"Jane Doe", "Go Engineer"}))

	path := filepath.Join(t.TempDir(), "jane.docx")
	require.NoError(t, os.WriteFile(path, doc.Bytes(), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"extract", "--cv", path})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "Jane Doe\nGo Engineer\n", out.String())
}

func TestAnalyzeCommand_MissingCV(t *testing.T) {
	rootCmd.SetArgs([]string{"analyze", "--cv", filepath.Join(t.TempDir(), "nope.pdf"), "--text", "Go"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CV file not found")
}
