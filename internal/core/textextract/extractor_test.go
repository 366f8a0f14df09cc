package textextract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markdave123-py/FinSheet/internal/core"
)

// buildPDF assembles a minimal uncompressed PDF with one text line per page.
// Object offsets are recorded as objects are written so the xref table and
// startxref stay correct.
func buildPDF(t *testing.T, pageTexts []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), len(pageTexts)))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")
	for i, text := range pageTexts {
		pageObj := 4 + 2*i
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
			"/Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageObj, pageObj+1))
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			pageObj+1, len(content), content))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)
	return buf.Bytes()
}

// buildDOCX zips a bare OOXML package with one w:p element per paragraph.
func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	parts := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
			`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
			`<Default Extension="xml" ContentType="application/xml"/>` +
			`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
			`</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
			`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
			`</Relationships>`,
		"word/document.xml": document,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		f, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(parts[name])); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestFromFileTXTReturnsTextVerbatim(t *testing.T) {
	content := strings.Repeat("Revenue from operations 1,000 900\n", 10) + "totals ₹ in crores"
	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New().FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got != content {
		t.Errorf("Expected text unchanged, got %d bytes vs %d", len(got), len(content))
	}
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b,c"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New().FromFile(path)
	if !errors.Is(err, core.ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType, got %v", err)
	}
}

func TestFromFileMissingTXT(t *testing.T) {
	_, err := New().FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, core.ErrUnreadableDocument) {
		t.Fatalf("Expected ErrUnreadableDocument, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Error reading text file") {
		t.Errorf("Expected parser cause in message, got %q", err.Error())
	}
}

func TestFromFileMultiPagePDFConcatenatesPagesInOrder(t *testing.T) {
	pageOne := "ACME INDUSTRIES annual results"
	pageTwo := "Revenue from operations 1,000 900"
	path := filepath.Join(t.TempDir(), "filing.pdf")
	if err := os.WriteFile(path, buildPDF(t, []string{pageOne, pageTwo}), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New().FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got != pageOne+pageTwo {
		t.Errorf("Expected page texts concatenated in order, got %q", got)
	}
}

func TestFromFileDOCXParagraphsInOrder(t *testing.T) {
	first := "ACME INDUSTRIES annual results"
	second := "Revenue from operations 1,000 900"
	path := filepath.Join(t.TempDir(), "filing.docx")
	if err := os.WriteFile(path, buildDOCX(t, []string{first, second}), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New().FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	i, j := strings.Index(got, first), strings.Index(got, second)
	if i < 0 || j < 0 {
		t.Fatalf("Expected both paragraphs in output, got %q", got)
	}
	if i > j {
		t.Errorf("Expected paragraphs in document order, got %q", got)
	}
}

func TestFromFileCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New().FromFile(path)
	if !errors.Is(err, core.ErrUnreadableDocument) {
		t.Fatalf("Expected ErrUnreadableDocument, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Error reading PDF") {
		t.Errorf("Expected PDF cause in message, got %q", err.Error())
	}
}

func TestFromFileCorruptDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := New().FromFile(path)
	if !errors.Is(err, core.ErrUnreadableDocument) {
		t.Fatalf("Expected ErrUnreadableDocument, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Error reading DOCX") {
		t.Errorf("Expected DOCX cause in message, got %q", err.Error())
	}
}

func TestFromFileExtensionCaseInsensitive(t *testing.T) {
	content := strings.Repeat("x", 200)
	path := filepath.Join(t.TempDir(), "REPORT.TXT")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New().FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if got != content {
		t.Error("Expected uppercase extension to be handled")
	}
}
