package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletize(t *testing.T) {
	t.Parallel()

	items := []string{"first", "", "  second  ", "   ", "third"}
	want := "• first\n• second\n• third"

	assert.Equal(t, want, Bulletize(items))
	assert.Equal(t, Bulletize(items), Bulletize(items))
	assert.Equal(t, "", Bulletize(nil))
}

func TestBulletizeText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "• one\n• two", BulletizeText("one\n\n\ntwo\n"))
	assert.Equal(t, "", BulletizeText(""))
}

func TestSentenceCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "first sentence", in: "hello there. How are you?", want: "Hello there. How are you?"},
		{name: "keeps inner casing", in: "iPhone sales. NASA said so.", want: "IPhone sales. NASA said so."},
		{name: "quote first", in: `"quoted" start.`, want: `"quoted" start.`},
		{name: "unicode", in: "élan vital.", want: "Élan vital."},
		{name: "collapses boundary whitespace", in: "One.\n\nTwo.", want: "One. Two."},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SentenceCase(tt.in))
		})
	}
}
