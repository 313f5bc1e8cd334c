package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"TextSidekick/internal/config"
	"TextSidekick/internal/domain"
	"TextSidekick/internal/engine"
	"TextSidekick/internal/infrastructure/htmltext"
	"TextSidekick/internal/infrastructure/remote"
	"TextSidekick/internal/infrastructure/source"
	"TextSidekick/internal/logging"
	"TextSidekick/internal/ports"
	"TextSidekick/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	source    ports.DocumentSource
	assistant *usecase.Assistant
}

// New builds the application around the engine strategy named in cfg.
// A nil fs means the OS filesystem.
func New(cfg config.Config, baseLogger *slog.Logger, fs afero.Fs) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.NewWithWriter(cfg.Logging, os.Stderr)
	}

	registry := engine.NewRegistry()
	registry.Register(engine.NewLocal(cfg.Engine.SummarySentences))
	if cfg.Remote.Endpoint != "" {
		registry.Register(remote.NewClient(cfg.Remote.Endpoint, cfg.Remote.APIKey, cfg.Remote.Timeout()))
	}

	eng, err := registry.Resolve(cfg.Engine.Strategy)
	if err != nil {
		return nil, fmt.Errorf("select engine: %w", err)
	}
	baseLogger.Debug("engine selected", "strategy", eng.Name(), "available", registry.Names())

	extractor := htmltext.NewExtractor(baseLogger.With("component", "htmltext"))
	src := source.NewFileSource(fs, extractor, baseLogger.With("component", "source"))

	assistant := usecase.NewAssistant(usecase.AssistantDeps{
		Engine:           eng,
		Logger:           baseLogger.With("component", "assistant"),
		SummarySentences: cfg.Engine.SummarySentences,
		MinSummaryWords:  cfg.Engine.MinSummaryWords,
		MinGrammarWords:  cfg.Engine.MinGrammarWords,
	})

	return &Application{cfg: cfg, logger: baseLogger, source: src, assistant: assistant}, nil
}

// Config returns the configuration the application was built with.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Load reads a document from path, or from stdin when path is "" or "-".
func (a *Application) Load(ctx context.Context, path string, stdin io.Reader) (domain.Document, error) {
	var (
		doc domain.Document
		err error
	)
	if path == "" || path == "-" {
		doc, err = a.source.Read(ctx, source.StdinName, stdin)
	} else {
		doc, err = a.source.Load(ctx, path)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("load document: %w", err)
	}
	return doc, nil
}

// Summarize loads and summarizes a document.
func (a *Application) Summarize(ctx context.Context, path string, stdin io.Reader, opts usecase.Options) (domain.Reply, error) {
	doc, err := a.Load(ctx, path, stdin)
	if err != nil {
		return domain.Reply{}, err
	}
	return a.assistant.Summarize(ctx, doc, opts)
}

// Correct loads and grammar-checks a document.
func (a *Application) Correct(ctx context.Context, path string, stdin io.Reader, opts usecase.Options) (domain.Reply, error) {
	doc, err := a.Load(ctx, path, stdin)
	if err != nil {
		return domain.Reply{}, err
	}
	return a.assistant.Grammar(ctx, doc, opts)
}

// Bullets loads a document and bulletizes its lines.
func (a *Application) Bullets(ctx context.Context, path string, stdin io.Reader) (domain.Reply, error) {
	doc, err := a.Load(ctx, path, stdin)
	if err != nil {
		return domain.Reply{}, err
	}
	return a.assistant.Bullets(ctx, doc), nil
}
