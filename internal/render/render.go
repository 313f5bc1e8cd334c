// Package render writes assistant replies to a terminal or a plain stream.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/sergi/go-diff/diffmatchpatch"

	"TextSidekick/internal/domain"
)

// Output styles accepted by New.
const (
	StyleAuto  = "auto"
	StylePlain = "plain"
	StyleBox   = "box"
)

// Renderer formats replies either as plain text or inside a rounded box.
type Renderer struct {
	w     io.Writer
	boxed bool
	box   lipgloss.Style
	title lipgloss.Style
}

// New picks boxed output for StyleBox, plain output for StylePlain, and for
// StyleAuto boxes only when w is a terminal.
func New(w io.Writer, style string, width int) *Renderer {
	return &Renderer{
		w:     w,
		boxed: wantsBox(w, style),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(width),
		title: lipgloss.NewStyle().Bold(true),
	}
}

// Boxed reports whether output is decorated.
func (r *Renderer) Boxed() bool {
	return r.boxed
}

// Reply writes the reply text, or the reason it was skipped.
func (r *Renderer) Reply(reply domain.Reply) error {
	if reply.Skipped {
		return r.write(fmt.Sprintf("Skipped %s: %s", reply.Kind, reply.Reason))
	}
	if !r.boxed {
		return r.write(reply.Text)
	}

	head, body, found := strings.Cut(reply.Text, "\n")
	if found && strings.HasSuffix(head, ":") {
		return r.write(r.box.Render(r.title.Render(head) + "\n" + body))
	}
	return r.write(r.box.Render(reply.Text))
}

// Diff shows what the rewrite changed. Plain output marks deletions as
// [-text-] and insertions as {+text+}; boxed output uses colours.
func (r *Renderer) Diff(original, rewrite string) error {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(original, rewrite, false))

	if r.boxed {
		return r.write(r.box.Render(r.title.Render("Changes:") + "\n" + dmp.DiffPrettyText(diffs)))
	}
	return r.write("Changes:\n" + PlainDiff(diffs))
}

// PlainDiff renders diffs without terminal escapes.
func PlainDiff(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func (r *Renderer) write(s string) error {
	_, err := fmt.Fprintln(r.w, s)
	return err
}

func wantsBox(w io.Writer, style string) bool {
	switch style {
	case StyleBox:
		return true
	case StylePlain:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
