// Package format prepares engine output for display.
package format

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"TextSidekick/internal/sentence"
)

// Bullet prefixes every rendered item.
const Bullet = "• "

var lineBreaks = regexp.MustCompile(`\n+`)

// Bulletize renders items one per line, each prefixed with a bullet.
// Blank items are dropped.
func Bulletize(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		lines = append(lines, Bullet+item)
	}
	return strings.Join(lines, "\n")
}

// BulletizeText treats every non-empty line of text as an item.
func BulletizeText(text string) string {
	return Bulletize(lineBreaks.Split(text, -1))
}

// SentenceCase upper-cases the first character of every sentence and joins
// the sentences with single spaces. Other characters keep their case.
func SentenceCase(text string) string {
	parts := sentence.Texts(text)
	for i, p := range parts {
		parts[i] = capitalize(p)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := cases.Upper(language.Und)
	return upper.String(string(r)) + s[size:]
}
