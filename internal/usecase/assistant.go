package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"TextSidekick/internal/domain"
	"TextSidekick/internal/format"
	"TextSidekick/internal/ports"
	"TextSidekick/internal/sentence"
)

// AssistantDeps wires the engine and length gates into the assistant.
type AssistantDeps struct {
	Engine ports.Engine
	Logger *slog.Logger
	// SummarySentences is the default summary length.
	SummarySentences int
	// MinSummaryWords: documents with this many words or fewer are not summarized.
	MinSummaryWords int
	// MinGrammarWords: drafts with fewer words are not checked.
	MinGrammarWords int
}

// Options tune a single request.
type Options struct {
	// Force skips the length gates.
	Force bool
	// MaxSentences overrides the default summary length when positive.
	MaxSentences int
}

// Assistant turns documents into display-ready replies using an engine.
type Assistant struct {
	engine           ports.Engine
	logger           *slog.Logger
	summarySentences int
	minSummaryWords  int
	minGrammarWords  int
	newID            func() string
}

// NewAssistant constructs the use case.
func NewAssistant(deps AssistantDeps) *Assistant {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Assistant{
		engine:           deps.Engine,
		logger:           logger,
		summarySentences: deps.SummarySentences,
		minSummaryWords:  deps.MinSummaryWords,
		minGrammarWords:  deps.MinGrammarWords,
		newID:            uuid.NewString,
	}
}

// Summarize produces a bulleted extractive summary of doc.
func (a *Assistant) Summarize(ctx context.Context, doc domain.Document, opts Options) (domain.Reply, error) {
	reply, log := a.begin(domain.KindSummarize, doc)

	words := sentence.WordCount(doc.Text)
	if !opts.Force && words <= a.minSummaryWords {
		log.Debug("summary skipped", "words", words, "min_words", a.minSummaryWords)
		return skip(reply, fmt.Sprintf("document has %d words; summaries start above %d", words, a.minSummaryWords)), nil
	}
	if a.engine == nil {
		return reply, fmt.Errorf("summarize %s: engine is not configured", doc.Name)
	}

	limit := a.summarySentences
	if opts.MaxSentences > 0 {
		limit = opts.MaxSentences
	}

	items, err := a.engine.Summarize(ctx, doc.Text, limit)
	if err != nil {
		return reply, fmt.Errorf("summarize %s: %w", doc.Name, err)
	}

	reply.Items = items
	reply.Text = buildSummaryMessage(items)
	log.Info("summary ready", "engine", a.engine.Name(), "words", words, "sentences", len(items))
	return reply, nil
}

// Grammar checks doc and proposes a rewrite.
func (a *Assistant) Grammar(ctx context.Context, doc domain.Document, opts Options) (domain.Reply, error) {
	reply, log := a.begin(domain.KindGrammar, doc)

	draft := strings.TrimSpace(doc.Text)
	words := sentence.WordCount(draft)
	if !opts.Force && words < a.minGrammarWords {
		log.Debug("grammar skipped", "words", words, "min_words", a.minGrammarWords)
		return skip(reply, fmt.Sprintf("draft has %d words; checks start at %d", words, a.minGrammarWords)), nil
	}
	if a.engine == nil {
		return reply, fmt.Errorf("grammar %s: engine is not configured", doc.Name)
	}

	correction, err := a.engine.Correct(ctx, draft)
	if err != nil {
		return reply, fmt.Errorf("grammar %s: %w", doc.Name, err)
	}

	distance, err := editDistance(ctx, draft, correction.Rewrite)
	if err != nil {
		return reply, fmt.Errorf("grammar %s: %w", doc.Name, err)
	}

	reply.Items = correction.Suggestions
	reply.Original = draft
	reply.Rewrite = correction.Rewrite
	reply.EditDistance = distance
	reply.Text = buildGrammarMessage(correction)
	log.Info("grammar ready",
		"engine", a.engine.Name(),
		"suggestions", len(correction.Suggestions),
		"edit_distance", reply.EditDistance)
	return reply, nil
}

// Bullets renders every non-empty line of doc as a bullet.
func (a *Assistant) Bullets(_ context.Context, doc domain.Document) domain.Reply {
	reply, log := a.begin(domain.KindBullets, doc)
	reply.Text = format.BulletizeText(doc.Text)
	log.Debug("bullets ready", "chars", len(reply.Text))
	return reply
}

func (a *Assistant) begin(kind domain.RequestKind, doc domain.Document) (domain.Reply, *slog.Logger) {
	id := a.newID()
	log := a.logger.With("request_id", id, "kind", string(kind), "source", doc.Name)
	log.Debug("request received", "chars", len(doc.Text))
	return domain.Reply{RequestID: id, Kind: kind, Source: doc.Name}, log
}

func skip(reply domain.Reply, reason string) domain.Reply {
	reply.Skipped = true
	reply.Reason = reason
	return reply
}

func buildSummaryMessage(items []string) string {
	if len(items) == 0 {
		return "Quick Summary:\nNo sentence is long enough to quote."
	}
	return "Quick Summary:\n" + format.Bulletize(items)
}

func buildGrammarMessage(c domain.Correction) string {
	return fmt.Sprintf("Suggestions:\n%s\n\nRephrase:\n%s", format.Bulletize(c.Suggestions), c.Rewrite)
}
