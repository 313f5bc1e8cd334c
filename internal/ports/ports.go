package ports

import (
	"context"
	"io"

	"TextSidekick/internal/domain"
)

// Engine is a text-analysis strategy. Implementations must return at most
// limit sentences from Summarize and a non-empty suggestion list from Correct.
type Engine interface {
	Name() string
	Summarize(ctx context.Context, text string, limit int) ([]string, error)
	Correct(ctx context.Context, text string) (domain.Correction, error)
}

// DocumentSource loads documents from the host environment.
type DocumentSource interface {
	Load(ctx context.Context, path string) (domain.Document, error)
	Read(ctx context.Context, name string, r io.Reader) (domain.Document, error)
}

// TextExtractor turns markup into readable prose.
type TextExtractor interface {
	Extract(ctx context.Context, r io.Reader) (string, error)
}
