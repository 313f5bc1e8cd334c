// Package sentence splits English prose into sentences and word tokens.
package sentence

import (
	"iter"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"TextSidekick/internal/domain"
)

var (
	newlineRuns = regexp.MustCompile(`\n+`)
	// Whitespace after a terminal mark, when the next character (any uppercase
	// letter, a digit or a quote) opens a new sentence.
	boundary  = regexp2.MustCompile(`(?<=[.!?])\s+(?=[\p{Lu}0-9"])`, regexp2.None)
	wordToken = regexp.MustCompile(`[a-z][a-z'-]+`)
)

// Segment returns the sentences of text in input order.
func Segment(text string) []domain.Sentence {
	var out []domain.Sentence
	for s := range All(text) {
		out = append(out, s)
	}
	return out
}

// Texts is Segment without the indices.
func Texts(text string) []string {
	var out []string
	for s := range All(text) {
		out = append(out, s.Text)
	}
	return out
}

// All lazily yields the sentences of text. Each range over the returned
// sequence segments the text again, so it can be iterated any number of times.
func All(text string) iter.Seq[domain.Sentence] {
	return func(yield func(domain.Sentence) bool) {
		flat := newlineRuns.ReplaceAllString(text, " ")
		idx := 0
		for _, piece := range split(flat) {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if !yield(domain.Sentence{Index: idx, Text: piece}) {
				return
			}
			idx++
		}
	}
}

func split(text string) []string {
	runes := []rune(text)
	var parts []string
	last := 0

	m, err := boundary.FindRunesMatch(runes)
	for err == nil && m != nil {
		parts = append(parts, string(runes[last:m.Index]))
		last = m.Index + m.Length
		m, err = boundary.FindNextMatch(m)
	}

	return append(parts, string(runes[last:]))
}

// Words returns the lowercase word tokens of text: a letter followed by one
// or more letters, apostrophes or hyphens.
func Words(text string) []string {
	return wordToken.FindAllString(strings.ToLower(text), -1)
}

// WordCount counts whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
