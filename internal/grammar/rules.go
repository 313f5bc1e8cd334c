package grammar

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"TextSidekick/internal/format"
)

// Rule is one step of the rewrite pipeline. Rules run in table order and each
// one sees the output of the previous.
type Rule struct {
	Name  string
	Apply func(text string) string
}

var (
	// RE2's \s is ASCII-only; \p{Z} adds no-break and other Unicode spaces.
	spaceBeforePunct = regexp.MustCompile(`[\s\p{Z}]+([,.;:!?])`)
	// RE2 has no look-ahead; regexp2 keeps "not followed by whitespace or end" in one pattern.
	punctWithoutSpace = regexp2.MustCompile(`([,.;:!?])(?!\s|$)`, regexp2.None)

	articleBeforeVowel     = regexp.MustCompile(`\b([Aa])[\s\p{Z}]+([aeiouAEIOU])`)
	articleBeforeConsonant = regexp.MustCompile(`\b([Aa])[nN][\s\p{Z}]+([b-df-hj-np-tv-zB-DF-HJ-NP-TV-Z])`)

	terminalPunct = regexp.MustCompile(`[.!?]"?$`)
)

// Contractions and filler words, applied top to bottom.
var substitutions = []struct {
	pattern *regexp.Regexp
	replace string
}{
	{regexp.MustCompile(`\bi\b`), "I"},
	{regexp.MustCompile(`(?i)\bim\b`), "I'm"},
	{regexp.MustCompile(`(?i)\bdont\b`), "don't"},
	{regexp.MustCompile(`(?i)\bcant\b`), "can't"},
	{regexp.MustCompile(`(?i)\bwont\b`), "won't"},
	{regexp.MustCompile(`(?i)\bdoesnt\b`), "doesn't"},
	{regexp.MustCompile(`(?i)\barent\b`), "aren't"},
	{regexp.MustCompile(`(?i)\bisnt\b`), "isn't"},
	{regexp.MustCompile(`(?i)\bshouldnt\b`), "shouldn't"},
	{regexp.MustCompile(`(?i)\bcouldnt\b`), "couldn't"},
	{regexp.MustCompile(`(?i)\bwasnt\b`), "wasn't"},
	{regexp.MustCompile(`(?i)\bwerent\b`), "weren't"},
	{regexp.MustCompile(`(?i)\bhavent\b`), "haven't"},
	{regexp.MustCompile(`(?i)\bhasnt\b`), "hasn't"},
	{regexp.MustCompile(`(?i)\bhadnt\b`), "hadn't"},
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bdue to the fact that\b`), "because"},
	{regexp.MustCompile(`(?i)\butilize\b`), "use"},
	{regexp.MustCompile(`(?i)\bvery\b`), ""},
}

var rules = []Rule{
	{Name: "punctuation-spacing", Apply: fixPunctuationSpacing},
	{Name: "substitutions", Apply: applySubstitutions},
	{Name: "indefinite-article", Apply: fixArticles},
	{Name: "sentence-case", Apply: format.SentenceCase},
	{Name: "terminal-punctuation", Apply: ensureTerminalPunctuation},
}

// Rules returns the rewrite pipeline in the order it runs.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Rewrite runs every rule over text. Blank input yields "".
func Rewrite(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	out := text
	for _, r := range rules {
		out = r.Apply(out)
	}
	return strings.TrimSpace(out)
}

func fixPunctuationSpacing(text string) string {
	out := spaceBeforePunct.ReplaceAllString(text, "$1")
	spaced, err := punctWithoutSpace.Replace(out, "$1 ", -1, -1)
	if err != nil {
		// regexp2 only fails on a match timeout, and none is set.
		return out
	}
	return spaced
}

func applySubstitutions(text string) string {
	for _, s := range substitutions {
		text = s.pattern.ReplaceAllLiteralString(text, s.replace)
	}
	return text
}

func fixArticles(text string) string {
	text = articleBeforeVowel.ReplaceAllString(text, "${1}n $2")
	return articleBeforeConsonant.ReplaceAllString(text, "$1 $2")
}

func ensureTerminalPunctuation(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || terminalPunct.MatchString(trimmed) {
		return trimmed
	}
	return trimmed + "."
}
