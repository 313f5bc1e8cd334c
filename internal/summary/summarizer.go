// Package summary implements a word-frequency extractive summarizer.
package summary

import (
	"cmp"
	"slices"

	"TextSidekick/internal/sentence"
)

const (
	// DefaultMaxSentences is used when the caller passes a non-positive limit.
	DefaultMaxSentences = 5

	minWords      = 5
	bonusMinWords = 10
	bonusMaxWords = 30
	lengthBonus   = 1.1
)

var stopWords = newSet(
	"a", "an", "the", "and", "or", "but", "if", "while", "on", "in",
	"at", "to", "from", "of", "for", "with", "without", "within", "than", "then",
	"so", "very", "really", "just", "into", "onto", "up", "down", "over", "under",
	"again", "further",
)

type scored struct {
	index int
	score float64
}

// Summarizer picks the most salient sentences of a document.
type Summarizer struct {
	maxSentences int
}

// Option customises a Summarizer.
type Option func(*Summarizer)

// WithMaxSentences overrides the default summary length.
func WithMaxSentences(n int) Option {
	return func(s *Summarizer) {
		if n > 0 {
			s.maxSentences = n
		}
	}
}

// New builds a Summarizer returning at most DefaultMaxSentences sentences unless configured otherwise.
func New(opts ...Option) *Summarizer {
	s := &Summarizer{maxSentences: DefaultMaxSentences}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxSentences reports the configured summary length.
func (s *Summarizer) MaxSentences() int {
	return s.maxSentences
}

// Summarize applies the configured limit.
func (s *Summarizer) Summarize(text string) []string {
	return Summarize(text, s.maxSentences)
}

// Summarize returns at most limit sentences of text, chosen by the summed
// document frequency of their words and presented in document order.
// Sentences of four words or fewer never qualify.
func Summarize(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultMaxSentences
	}

	candidates := make([]string, 0)
	for s := range sentence.All(text) {
		if sentence.WordCount(s.Text) >= minWords {
			candidates = append(candidates, s.Text)
		}
	}
	if len(candidates) <= limit {
		return candidates
	}

	freq := frequencies(text)

	scores := make([]scored, len(candidates))
	for i, s := range candidates {
		scores[i] = scored{index: i, score: score(s, freq)}
	}

	slices.SortStableFunc(scores, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	top := scores[:limit]
	slices.SortFunc(top, func(a, b scored) int {
		return cmp.Compare(a.index, b.index)
	})

	out := make([]string, len(top))
	for i, sc := range top {
		out[i] = candidates[sc.index]
	}
	return out
}

func frequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range sentence.Words(text) {
		if _, stop := stopWords[w]; stop {
			continue
		}
		freq[w]++
	}
	return freq
}

func score(s string, freq map[string]int) float64 {
	words := sentence.Words(s)

	total := 0
	for _, w := range words {
		total += freq[w]
	}

	sc := float64(total)
	if n := len(words); n >= bonusMinWords && n <= bonusMaxWords {
		sc *= lengthBonus
	}
	return sc
}

func newSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
