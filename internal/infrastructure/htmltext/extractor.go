package htmltext

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"TextSidekick/internal/ports"
)

const boilerplate = "script,style,noscript,nav,footer,header,aside"

var (
	whitespace  = regexp.MustCompile(`\s+`)
	inlineSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLines  = regexp.MustCompile(`\n{2,}`)
)

// Block-level elements end a line in the extracted text.
var blockElements = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true, "dd": true,
	"div": true, "dl": true, "dt": true, "figcaption": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"hr": true, "li": true, "main": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

// Extractor pulls the readable body out of an HTML page: the first article,
// else main, else body, with navigation and scripts removed.
type Extractor struct {
	logger *slog.Logger
}

var _ ports.TextExtractor = (*Extractor)(nil)

// NewExtractor wires an optional logger.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses r and returns its main text with one block per line.
func (e *Extractor) Extract(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse document: %w", err)
	}

	root, region := mainRegion(doc)
	root.Find(boilerplate).Remove()

	var b strings.Builder
	for _, n := range root.Nodes {
		collect(&b, n)
	}

	text := normalize(b.String())
	e.debug("extracted main text", "region", region, "chars", len(text))
	return text, nil
}

func mainRegion(doc *goquery.Document) (*goquery.Selection, string) {
	for _, sel := range []string{"article", "main", "body"} {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found, sel
		}
	}
	return doc.Selection, "document"
}

func collect(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(whitespace.ReplaceAllString(n.Data, " "))
		return
	case html.ElementNode, html.DocumentNode:
	default:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(b, c)
	}
	if block {
		b.WriteString("\n")
	}
}

func normalize(text string) string {
	text = inlineSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

func (e *Extractor) debug(msg string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Debug(msg, args...)
	}
}
