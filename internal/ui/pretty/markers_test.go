package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdprefix/internal/ui/pretty"
	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/parser/goldmark"
)

func TestFormatNotation(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name string
		line string
		want string
	}{
		{"nested quote list task", "> > - [x] done", "> > - [x]"},
		{"ordered", "12) step", "12)"},
		{"plain text", "hello", "(none)"},
		{"blank", " \t ", "(blank)"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			prefix := blockprefix.Analyze([]byte(testCase.line), blockprefix.DefaultOptions())
			assert.Equal(t, testCase.want, styles.FormatNotation(prefix))
		})
	}
}

func TestFormatLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	prefix := blockprefix.Analyze([]byte("> - item"), blockprefix.DefaultOptions())
	prefix.Line = 7

	assert.Equal(t, "  docs/a.md:7  > -\n", styles.FormatLine("docs/a.md", prefix, ""))
	assert.Equal(t, "  docs/a.md:7  > -  item\n", styles.FormatLine("docs/a.md", prefix, "item"))
}

func TestFormatColumns(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	prefix := blockprefix.Analyze([]byte(">\t- x"), blockprefix.DefaultOptions())

	assert.Equal(t, "> @0 col 0, - @2 col 4", styles.FormatColumns(prefix))
}

func TestFormatMismatch(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	out := styles.FormatMismatch("a.md", goldmark.Mismatch{Line: 3, Kind: blockprefix.KindBullet})
	assert.Equal(t, "  a.md:3  mismatch  goldmark opens bullet, scanner found nothing\n", out)

	out = styles.FormatMismatch("a.md", goldmark.Mismatch{Line: 4, Kind: blockprefix.KindTask, Found: "-"})
	assert.Contains(t, out, "scanner found -")

	out = styles.FormatMismatch("a.md", goldmark.Mismatch{
		Line:  5,
		Kind:  blockprefix.KindBullet,
		Char:  '*',
		Extra: true,
		Found: "*",
		Text:  "* * x",
	})
	assert.Equal(t, "  a.md:5  mismatch  scanner found bullet *, goldmark opens no item\n    * * x\n", out)
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.md", styles.FormatFileHeader("a.md", 0))
	assert.Equal(t, "a.md (3 structural lines)", styles.FormatFileHeader("a.md", 3))
}
