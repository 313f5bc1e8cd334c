package summary

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TextSidekick/internal/sentence"
)

func TestSummarizePicksHighestKeywordSentence(t *testing.T) {
	t.Parallel()

	text := "Sent one is short. This is a considerably longer sentence that contains several repeated important keyword words. Keyword words matter a lot for scoring this example sentence. Short end."

	got := Summarize(text, 1)
	require.Len(t, got, 1)
	assert.Equal(t, "This is a considerably longer sentence that contains several repeated important keyword words.", got[0])
}

func TestSummarizeReturnsFilteredSentencesWhenAlreadyConcise(t *testing.T) {
	t.Parallel()

	text := "Tiny one. The first real sentence has enough words. Also short. The second real sentence has enough words too."

	got := Summarize(text, 5)
	assert.Equal(t, []string{
		"The first real sentence has enough words.",
		"The second real sentence has enough words too.",
	}, got)
}

func TestSummarizeEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("ShouldReturnEmptyForNoQualifyingSentences", func(t *testing.T) {
		got := Summarize("Too short. Also tiny. Nope.", 3)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("ShouldReturnEmptyForEmptyInput", func(t *testing.T) {
		assert.Empty(t, Summarize("", 5))
	})

	t.Run("ShouldFallBackToDefaultLimit", func(t *testing.T) {
		got := Summarize(longDocument(12), 0)
		assert.Len(t, got, DefaultMaxSentences)
	})
}

func TestSummarizeKeepsDocumentOrder(t *testing.T) {
	t.Parallel()

	text := longDocument(12)
	all := sentence.Texts(text)

	for limit := 1; limit <= 12; limit++ {
		got := Summarize(text, limit)
		require.LessOrEqual(t, len(got), limit)

		last := -1
		for _, s := range got {
			idx := slices.Index(all, s)
			require.GreaterOrEqual(t, idx, 0, "summary sentence %q not produced by segmentation", s)
			assert.Greater(t, idx, last)
			last = idx
		}
	}
}

func TestSummarizeKeepsInputOrderOnTies(t *testing.T) {
	t.Parallel()

	// Every sentence has identical word frequencies, so all scores tie.
	text := strings.Repeat("Alpha beta gamma delta epsilon. ", 6)
	got := Summarize(text, 2)
	assert.Equal(t, []string{"Alpha beta gamma delta epsilon.", "Alpha beta gamma delta epsilon."}, got)
}

func TestScoreLengthBonus(t *testing.T) {
	t.Parallel()

	freq := map[string]int{"word": 2}
	nine := strings.TrimSpace(strings.Repeat("word ", 9))
	ten := strings.TrimSpace(strings.Repeat("word ", 10))
	thirtyOne := strings.TrimSpace(strings.Repeat("word ", 31))

	assert.InDelta(t, 18.0, score(nine, freq), 1e-9)
	assert.InDelta(t, 22.0, score(ten, freq), 1e-9)
	assert.InDelta(t, 62.0, score(thirtyOne, freq), 1e-9)
}

func TestFrequenciesSkipStopWords(t *testing.T) {
	t.Parallel()

	freq := frequencies("The cat and the dog ran over the cat.")
	assert.Equal(t, map[string]int{"cat": 2, "dog": 1, "ran": 1}, freq)
}

func TestSummarizerOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultMaxSentences, New().MaxSentences())
	assert.Equal(t, 2, New(WithMaxSentences(2)).MaxSentences())
	assert.Equal(t, DefaultMaxSentences, New(WithMaxSentences(-1)).MaxSentences())

	got := New(WithMaxSentences(3)).Summarize(longDocument(8))
	assert.Len(t, got, 3)
}

func longDocument(n int) string {
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "Sentence number %d mentions topic%d and the shared subject matter. ", i, i%3)
	}
	return b.String()
}
