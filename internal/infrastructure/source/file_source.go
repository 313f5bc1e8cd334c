package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"TextSidekick/internal/domain"
	"TextSidekick/internal/ports"
)

// StdinName labels documents read from standard input.
const StdinName = "stdin"

// FileSource implements DocumentSource on top of an afero filesystem.
// Markup is routed through the configured extractor.
type FileSource struct {
	fs        afero.Fs
	extractor ports.TextExtractor
	logger    *slog.Logger
}

var _ ports.DocumentSource = (*FileSource)(nil)

// NewFileSource wires a filesystem and an optional HTML extractor.
func NewFileSource(fs afero.Fs, extractor ports.TextExtractor, log *slog.Logger) *FileSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSource{
		fs:        fs,
		extractor: extractor,
		logger:    log,
	}
}

// Load reads the document stored at path.
func (s *FileSource) Load(ctx context.Context, path string) (domain.Document, error) {
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	s.debug("loaded file", "path", path, "bytes", len(raw))
	return s.Read(ctx, path, bytes.NewReader(raw))
}

// Read consumes r as a document labelled name. CRLF line endings become LF.
func (s *FileSource) Read(ctx context.Context, name string, r io.Reader) (domain.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", name, err)
	}
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	text := string(raw)
	if s.extractor != nil && isMarkup(name, raw) {
		text, err = s.extractor.Extract(ctx, bytes.NewReader(raw))
		if err != nil {
			return domain.Document{}, fmt.Errorf("extract %s: %w", name, err)
		}
		s.debug("extracted markup", "name", name, "chars", len(text))
	}

	return domain.Document{Name: name, Text: text}, nil
}

func isMarkup(name string, raw []byte) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("<"))
}

func (s *FileSource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
