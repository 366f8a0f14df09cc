package finextract

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/markdave123-py/FinSheet/internal/core"
	"github.com/markdave123-py/FinSheet/internal/models"
)

var _ core.FinancialExtractor = (*Model)(nil)

// Model is the model-assisted extraction strategy. It delegates to an external
// language model with a fixed prompt contract and parses the response as JSON
// exactly as received. One attempt per request; no retry, no streaming.
type Model struct {
	llm     core.TextModel
	timeout time.Duration
}

// NewModel wraps a TextModel. The timeout bounds the single upstream call;
// zero or negative falls back to 60s.
func NewModel(llm core.TextModel, timeout time.Duration) *Model {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Model{llm: llm, timeout: timeout}
}

func (m *Model) Extract(ctx context.Context, documentText string) (*models.FinancialRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	raw, err := m.llm.Generate(ctx, systemPrompt, BuildUserPrompt(documentText))
	if err != nil {
		return nil, core.ServiceFailure("Model API error: %v", err)
	}
	raw = strings.TrimSpace(raw)

	// The prompt forbids markdown fences, so the response is decoded as-is.
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, core.ExtractionFailure("Failed to parse financial data: %v", err)
	}
	if err := validateRecordShape(decoded); err != nil {
		return nil, core.ExtractionFailure("Failed to parse financial data: %v", err)
	}

	var rec models.FinancialRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, core.ExtractionFailure("Failed to parse financial data: %v", err)
	}
	return &rec, nil
}
