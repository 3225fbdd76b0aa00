package services

import (
	"bytes"
	_ "embed"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/nguyenthenguyen/docx"
)

const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

//go:embed templates/blank.docx
var blankDocx []byte

const (
	documentXMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentXMLFooter = `<w:sectPr><w:pgSz w:w="12240" w:h="15840"/>` +
		`<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440" w:header="720" w:footer="720" w:gutter="0"/>` +
		`</w:sectPr></w:body></w:document>`
)

// DocumentWriter renders tailored CV text as a .docx in the tailored
// directory and returns the generated filename.
type DocumentWriter interface {
	WriteTailoredCV(text string) (string, error)
}

type documentWriter struct {
	storage StorageService
}

func NewDocumentWriter(storage StorageService) DocumentWriter {
	return &documentWriter{storage: storage}
}

func (w *documentWriter) WriteTailoredCV(text string) (string, error) {
	var buf bytes.Buffer
	if err := RenderDocx(&buf, SplitParagraphs(text)); err != nil {
		return "", err
	}

	filename := NewTailoredFilename()
	if _, err := w.storage.SaveStream(filename, &buf); err != nil {
		return "", fmt.Errorf("failed to write tailored document: %w", err)
	}

	return filename, nil
}

// NewTailoredFilename returns tailored_<8 hex chars>.docx.
func NewTailoredFilename() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("tailored_%s.docx", id[:8])
}

// SplitParagraphs splits on line boundaries. A trailing newline does not
// start an extra paragraph; blank lines inside the text are kept.
func SplitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// RenderDocx writes a document holding one paragraph per entry.
func RenderDocx(dst io.Writer, paragraphs []string) error {
	tpl, err := docx.ReadDocxFromMemory(bytes.NewReader(blankDocx), int64(len(blankDocx)))
	if err != nil {
		return fmt.Errorf("failed to load docx template: %w", err)
	}
	defer tpl.Close()

	body, err := buildDocumentXML(paragraphs)
	if err != nil {
		return err
	}

	doc := tpl.Editable()
	doc.SetContent(body)
	if err := doc.Write(dst); err != nil {
		return fmt.Errorf("failed to render docx: %w", err)
	}

	return nil
}

func buildDocumentXML(paragraphs []string) (string, error) {
	var sb strings.Builder
	sb.WriteString(documentXMLHeader)

	for _, p := range paragraphs {
		if p == "" {
			sb.WriteString("<w:p/>")
			continue
		}

		sb.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(&sb, []byte(p)); err != nil {
			return "", fmt.Errorf("failed to escape paragraph: %w", err)
		}
		sb.WriteString("</w:t></w:r></w:p>")
	}

	sb.WriteString(documentXMLFooter)
	return sb.String(), nil
}
