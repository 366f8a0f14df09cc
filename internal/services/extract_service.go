package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/markdave123-py/FinSheet/internal/config"
	"github.com/markdave123-py/FinSheet/internal/core"
	"github.com/markdave123-py/FinSheet/internal/core/report"
)

// minDocumentChars is the upload policy: anything shorter after trimming is
// rejected as empty or unreadable. This lives at the call site on purpose;
// the text extractor itself has no opinion about document length.
const minDocumentChars = 100

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"txt":  true,
	"docx": true,
}

// AllowedFile reports whether the filename carries a supported extension.
func AllowedFile(filename string) bool {
	ext := filepath.Ext(filename)
	if ext == "" {
		return false
	}
	return allowedExtensions[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// ExtractService runs the full per-request pipeline: persist the upload to a
// request-scoped temp file, extract text, apply the length policy, run the
// configured extraction strategy, render the workbook. No state survives the
// request.
type ExtractService struct {
	cfg       *config.Config
	texts     core.TextExtractor
	extractor core.FinancialExtractor
	log       zerolog.Logger
}

func NewExtractService(cfg *config.Config, texts core.TextExtractor, extractor core.FinancialExtractor, log zerolog.Logger) *ExtractService {
	return &ExtractService{cfg: cfg, texts: texts, extractor: extractor, log: log}
}

// Result is one finished extraction: the workbook bytes and the company name
// used to build the download filename.
type Result struct {
	Workbook    []byte
	CompanyName string
}

// ExtractToWorkbook processes a single uploaded document end to end. The temp
// file is removed unconditionally, success or failure.
func (s *ExtractService) ExtractToWorkbook(ctx context.Context, file io.Reader, filename string) (*Result, error) {
	if !AllowedFile(filename) {
		return nil, core.ErrUnsupportedType
	}

	tempPath, err := s.saveUpload(file, filename)
	if err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", tempPath).Msg("temp file cleanup failed")
		}
	}()

	text, err := s.texts.FromFile(tempPath)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(text)) < minDocumentChars {
		return nil, core.ErrDocumentTooShort
	}

	rec, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	workbook, err := report.BuildWorkbook(rec)
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	company := rec.CompanyName
	if company == "" {
		company = "unknown"
	}
	s.log.Info().
		Str("company", company).
		Int("years", len(rec.FiscalYears)).
		Int("line_items", len(rec.FinancialData)).
		Msg("extraction complete")

	return &Result{Workbook: workbook, CompanyName: company}, nil
}

// saveUpload writes the upload under the configured directory with a
// uuid-prefixed name so concurrent requests never collide.
func (s *ExtractService) saveUpload(file io.Reader, filename string) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(s.cfg.UploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
