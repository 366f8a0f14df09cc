package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/markdave123-py/FinSheet/internal/api/handlers"
	"github.com/markdave123-py/FinSheet/internal/config"
	"github.com/markdave123-py/FinSheet/internal/core"
	"github.com/markdave123-py/FinSheet/internal/core/finextract"
	"github.com/markdave123-py/FinSheet/internal/core/llm"
	"github.com/markdave123-py/FinSheet/internal/core/textextract"
	"github.com/markdave123-py/FinSheet/internal/services"
)

// App owns the wired pipeline and the HTTP server.
type App struct {
	Server *Server
	gemini *llm.Gemini
}

// New wires the configured extraction strategy into the service and server.
// The Gemini client is only created when the model strategy is selected.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	var (
		extractor core.FinancialExtractor
		gemini    *llm.Gemini
	)
	switch cfg.Extractor {
	case config.ExtractorModel:
		g, err := llm.NewGemini(ctx, cfg.AIAPIKey, cfg.GenModel)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the model client, %w", err)
		}
		gemini = g
		extractor = finextract.NewModel(g, cfg.ModelTimeout)
	default:
		extractor = finextract.NewHeuristic()
	}
	log.Info().Str("strategy", cfg.Extractor).Msg("extraction strategy ready")

	svc := services.NewExtractService(cfg, textextract.New(), extractor, log)
	extractHandler := handlers.NewExtractHandler(svc, cfg.MaxUploadBytes())

	return &App{
		Server: NewServer(cfg, extractHandler),
		gemini: gemini,
	}, nil
}

func (a *App) Close() {
	if a.gemini != nil {
		_ = a.gemini.Close()
	}
}
