package core

import (
	"context"

	"github.com/markdave123-py/FinSheet/internal/models"
)

// FinancialExtractor turns raw document text into a structured record.
// The two implementations (heuristic pattern scanning and the model-assisted
// extractor) are interchangeable; the service layer picks one at startup.
type FinancialExtractor interface {
	Extract(ctx context.Context, documentText string) (*models.FinancialRecord, error)
}

// TextModel is the external language-model capability the model-assisted
// extractor delegates to. It is a black box: prompt in, completion text out.
type TextModel interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// TextExtractor converts an uploaded file on disk into plain text, dispatching
// on the file's extension.
type TextExtractor interface {
	FromFile(path string) (string, error)
}
