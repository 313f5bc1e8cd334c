package source

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TextSidekick/internal/infrastructure/htmltext"
)

type failingExtractor struct{}

func (failingExtractor) Extract(context.Context, io.Reader) (string, error) {
	return "", errors.New("boom")
}

func TestFileSourceLoad(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/docs/note.txt", []byte("Plain text body."), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/docs/page.html", []byte("<article><p>From HTML.</p></article>"), 0o644))

	src := NewFileSource(fs, htmltext.NewExtractor(nil), nil)
	ctx := context.Background()

	doc, err := src.Load(ctx, "/docs/note.txt")
	require.NoError(t, err)
	assert.Equal(t, "/docs/note.txt", doc.Name)
	assert.Equal(t, "Plain text body.", doc.Text)

	doc, err = src.Load(ctx, "/docs/page.html")
	require.NoError(t, err)
	assert.Equal(t, "From HTML.", doc.Text)

	_, err = src.Load(ctx, "/docs/missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/docs/missing.txt")
}

func TestFileSourceRead(t *testing.T) {
	t.Parallel()

	src := NewFileSource(afero.NewMemMapFs(), htmltext.NewExtractor(nil), nil)
	ctx := context.Background()

	t.Run("ShouldSniffMarkupOnStdin", func(t *testing.T) {
		doc, err := src.Read(ctx, StdinName, strings.NewReader("  <main>Sniffed.</main>"))
		require.NoError(t, err)
		assert.Equal(t, "Sniffed.", doc.Text)
		assert.Equal(t, StdinName, doc.Name)
	})

	t.Run("ShouldNormalizeCRLF", func(t *testing.T) {
		doc, err := src.Read(ctx, "draft.txt", strings.NewReader(strings.Repeat("This line is fine.\r\n", 3)))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("This line is fine.\n", 3), doc.Text)
		assert.NotContains(t, doc.Text, "\r")
	})

	t.Run("ShouldKeepPlainText", func(t *testing.T) {
		doc, err := src.Read(ctx, StdinName, strings.NewReader("a < b, plainly."))
		require.NoError(t, err)
		assert.Equal(t, "a < b, plainly.", doc.Text)
	})

	t.Run("ShouldAcceptEmptyInput", func(t *testing.T) {
		doc, err := src.Read(ctx, StdinName, strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, doc.Text)
	})
}

func TestFileSourceWithoutExtractor(t *testing.T) {
	t.Parallel()

	src := NewFileSource(afero.NewMemMapFs(), nil, nil)
	doc, err := src.Read(context.Background(), "page.html", strings.NewReader("<p>raw</p>"))
	require.NoError(t, err)
	assert.Equal(t, "<p>raw</p>", doc.Text)
}

func TestFileSourceExtractError(t *testing.T) {
	t.Parallel()

	src := NewFileSource(afero.NewMemMapFs(), failingExtractor{}, nil)
	_, err := src.Read(context.Background(), "page.htm", strings.NewReader("<p>x</p>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extract page.htm")
}
