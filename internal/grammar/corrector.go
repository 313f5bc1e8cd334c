// Package grammar flags common style problems in English drafts and produces
// a normalized rewrite. Both halves are heuristics working on regular
// expressions; they do not parse the text.
package grammar

import "TextSidekick/internal/domain"

// Correct returns the suggestions for text and its rewrite. The two are
// computed independently: every rewrite rule runs whether or not a check fired.
func Correct(text string) domain.Correction {
	return domain.Correction{
		Suggestions: Suggest(text),
		Rewrite:     Rewrite(text),
	}
}
