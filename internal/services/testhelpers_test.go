package services

import (
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/nguyenthenguyen/docx"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alfredoptarigan/cv-agent/internal/models"
	"alfredoptarigan/cv-agent/internal/repositories"
)

func newTestRepo(t *testing.T) repositories.DocumentRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CVDocument{}, &models.TailoredDocument{}))

	return repositories.NewDocumentRepository(db)
}

// readParagraphs returns the text of every w:p in a stored docx.
func readParagraphs(t *testing.T, path string) []string {
	t.Helper()

	r, err := docx.ReadDocxFile(path)
	require.NoError(t, err)
	defer r.Close()

	decoder := xml.NewDecoder(strings.NewReader(r.Editable().GetContent()))
	var (
		paragraphs []string
		current    strings.Builder
	)
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		switch tt := tok.(type) {
		case xml.EndElement:
			if tt.Name.Local == "p" {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			current.Write(tt)
		}
	}
	return paragraphs
}
