package grammar

import (
	"fmt"
	"regexp"

	"TextSidekick/internal/sentence"
)

// LongSentenceWords is the word count above which a sentence is reported as too long.
const LongSentenceWords = 28

// AllClear is the single suggestion emitted when no check fires.
const AllClear = "Looks good overall. Minor polishing applied."

var (
	repeatedSpace = regexp.MustCompile(`[\s\p{Z}]{2,}`)
	shouting      = regexp.MustCompile(`[!?]{3,}`)
	// Auxiliary verb followed by a word ending in -ed. A rough stand-in for passive voice.
	passiveProxy = regexp.MustCompile(`(?i)\b(?:was|were|is|are|been|being|be)[\s\p{Z}]+[a-z]+ed\b`)
)

// Check inspects the raw text and returns a suggestion, or "" when it has nothing to say.
type Check struct {
	Name string
	Run  func(text string) string
}

var checks = []Check{
	{Name: "repeated-spaces", Run: func(text string) string {
		if repeatedSpace.MatchString(text) {
			return "Remove repeated spaces."
		}
		return ""
	}},
	{Name: "excessive-punctuation", Run: func(text string) string {
		if shouting.MatchString(text) {
			return "Avoid excessive punctuation."
		}
		return ""
	}},
	{Name: "long-sentences", Run: func(text string) string {
		n := countLongSentences(text)
		if n == 0 {
			return ""
		}
		return fmt.Sprintf("Split %d long sentence(s) (>%d words) for clarity.", n, LongSentenceWords)
	}},
	{Name: "passive-voice", Run: func(text string) string {
		if PassiveCount(text) > 0 {
			return "Prefer active voice where possible."
		}
		return ""
	}},
}

// Checks returns the suggestion checks in the order they run.
func Checks() []Check {
	out := make([]Check, len(checks))
	copy(out, checks)
	return out
}

// Suggest runs every check and collects what fired. The result is never empty.
func Suggest(text string) []string {
	var out []string
	for _, c := range checks {
		if msg := c.Run(text); msg != "" {
			out = append(out, msg)
		}
	}
	if len(out) == 0 {
		out = append(out, AllClear)
	}
	return out
}

// PassiveCount counts auxiliary + "-ed" word pairs in text.
func PassiveCount(text string) int {
	return len(passiveProxy.FindAllStringIndex(text, -1))
}

func countLongSentences(text string) int {
	n := 0
	for s := range sentence.All(text) {
		if sentence.WordCount(s.Text) > LongSentenceWords {
			n++
		}
	}
	return n
}
