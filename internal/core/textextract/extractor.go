package textextract

import (
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"

	"github.com/markdave123-py/FinSheet/internal/core"
)

var _ core.TextExtractor = (*Extractor)(nil)

// Extractor converts an uploaded file into plain text based on its extension.
// Supported: pdf, txt, docx.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// FromFile dispatches on the file extension and returns the extracted text.
// Unsupported extensions fail with core.ErrUnsupportedType; parse failures
// fail with core.ErrUnreadableDocument carrying the parser's message.
func (e *Extractor) FromFile(path string) (string, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "pdf":
		return e.fromPDF(path)
	case "txt":
		return e.fromTXT(path)
	case "docx":
		return e.fromDOCX(path)
	}
	return "", core.ErrUnsupportedType
}

// fromPDF concatenates the plain text of every page in page order. A page
// that yields no text (or fails to parse) contributes the empty string; only
// a whole-document open failure aborts.
func (e *Extractor) fromPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", core.Unreadable("Error reading PDF: %v", err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return b.String(), nil
}

func (e *Extractor) fromTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", core.Unreadable("Error reading text file: %v", err)
	}
	return string(data), nil
}

// fromDOCX extracts paragraph text in document order, one paragraph per line.
func (e *Extractor) fromDOCX(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", core.Unreadable("Error reading DOCX: %v", err)
	}
	defer f.Close()

	res, err := docconv.Convert(f, docconv.MimeTypeByExtension(path), false)
	if err != nil {
		return "", core.Unreadable("Error reading DOCX: %v", err)
	}
	return res.Body, nil
}
