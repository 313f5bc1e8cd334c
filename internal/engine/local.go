// Package engine selects and runs text-analysis strategies.
package engine

import (
	"context"

	"TextSidekick/internal/domain"
	"TextSidekick/internal/grammar"
	"TextSidekick/internal/ports"
	"TextSidekick/internal/summary"
)

// LocalName identifies the offline heuristic engine.
const LocalName = "local"

// Local runs the heuristic summarizer and grammar corrector in-process.
type Local struct {
	summarizer *summary.Summarizer
}

var _ ports.Engine = (*Local)(nil)

// NewLocal wires the local engine; defaultMax applies when callers pass a non-positive limit.
func NewLocal(defaultMax int) *Local {
	return &Local{summarizer: summary.New(summary.WithMaxSentences(defaultMax))}
}

// Name identifies the strategy inside the registry.
func (l *Local) Name() string {
	return LocalName
}

// Summarize returns the most salient sentences of text in document order.
func (l *Local) Summarize(ctx context.Context, text string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return l.summarizer.Summarize(text), nil
	}
	return summary.Summarize(text, limit), nil
}

// Correct returns suggestions and a rewrite for text.
func (l *Local) Correct(ctx context.Context, text string) (domain.Correction, error) {
	if err := ctx.Err(); err != nil {
		return domain.Correction{}, err
	}
	return grammar.Correct(text), nil
}
