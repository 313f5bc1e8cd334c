package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TextSidekick/internal/domain"
	"TextSidekick/internal/grammar"
)

type stubEngine struct {
	name string
}

func (s stubEngine) Name() string { return s.name }

func (s stubEngine) Summarize(context.Context, string, int) ([]string, error) { return nil, nil }

func (s stubEngine) Correct(context.Context, string) (domain.Correction, error) {
	return domain.Correction{}, nil
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(NewLocal(5))
	reg.Register(stubEngine{name: "remote"})

	got, err := reg.Resolve(LocalName)
	require.NoError(t, err)
	assert.Equal(t, LocalName, got.Name())

	_, err = reg.Resolve("gpt")
	require.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Contains(t, err.Error(), `"gpt"`)

	assert.Equal(t, []string{"local", "remote"}, reg.Names())
}

func TestRegistryZeroValue(t *testing.T) {
	t.Parallel()

	var reg Registry
	reg.Register(stubEngine{name: "x"})

	got, err := reg.Resolve("x")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name())
}

func TestLocalSummarize(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := range 10 {
		fmt.Fprintf(&b, "Paragraph sentence %d talks about engines and strategies. ", i)
	}

	local := NewLocal(3)
	ctx := context.Background()

	got, err := local.Summarize(ctx, b.String(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = local.Summarize(ctx, b.String(), 7)
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestLocalCorrect(t *testing.T) {
	t.Parallel()

	got, err := NewLocal(5).Correct(context.Background(), "a apple and an banana")
	require.NoError(t, err)
	assert.Equal(t, "An apple and a banana.", got.Rewrite)
	assert.Equal(t, []string{grammar.AllClear}, got.Suggestions)
}

func TestLocalHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	local := NewLocal(5)
	_, err := local.Summarize(ctx, "Some text here for you.", 1)
	require.ErrorIs(t, err, context.Canceled)

	_, err = local.Correct(ctx, "text")
	require.ErrorIs(t, err, context.Canceled)
}
