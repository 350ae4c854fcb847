// Package langdetect classifies files named explicitly on the command line
// so that Markdown without a recognized extension (README, CHANGES, .mdx
// drafts) is still scanned. It uses go-enry, the linguist port.
package langdetect

import (
	"path/filepath"
	"slices"

	"github.com/go-enry/go-enry/v2"
)

// Markdown is the language name enry reports for Markdown.
const Markdown = "Markdown"

// sniffCandidates bounds the content classifier to prose formats.
//
//nolint:gochecknoglobals // Read-only lookup table.
var sniffCandidates = []string{Markdown, "Text", "reStructuredText", "AsciiDoc", "Org"}

// Verdict is the classification of one file.
type Verdict struct {
	// Language is the best enry guess, or "" when nothing matched.
	Language string

	// Markdown is set when Language is Markdown.
	Markdown bool

	// Vendored is set for third-party paths such as vendor/ or node_modules/.
	Vendored bool

	// Generated is set for files that look machine generated.
	Generated bool
}

// Classify guesses the language of path. Filename rules win over the
// extension; content is only consulted when neither matched.
func Classify(path string, content []byte) Verdict {
	slashPath := filepath.ToSlash(path)
	verdict := Verdict{
		Vendored:  enry.IsVendor(slashPath),
		Generated: enry.IsGenerated(slashPath, content),
	}

	base := filepath.Base(path)
	switch {
	case len(enry.GetLanguagesByFilename(base, content, nil)) > 0:
		verdict.Language = pick(enry.GetLanguagesByFilename(base, content, nil))
	case len(enry.GetLanguagesByExtension(base, content, nil)) > 0:
		verdict.Language = pick(enry.GetLanguagesByExtension(base, content, nil))
	default:
		verdict.Language = sniff(content)
	}

	verdict.Markdown = verdict.Language == Markdown
	return verdict
}

// IsMarkdown reports whether path should be scanned as Markdown.
func IsMarkdown(path string, content []byte) bool {
	return Classify(path, content).Markdown
}

// pick prefers Markdown among ambiguous candidates; ".md" is shared with
// GCC machine descriptions.
func pick(languages []string) string {
	if slices.Contains(languages, Markdown) {
		return Markdown
	}
	return languages[0]
}

// sniff classifies extensionless content.
func sniff(content []byte) string {
	if len(content) == 0 || enry.IsBinary(content) {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}

	lang, _ := enry.GetLanguageByClassifier(content, sniffCandidates)
	return lang
}
