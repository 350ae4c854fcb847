package reporter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/mdprefix/pkg/config"
)

// Format names an output format. Values mirror config.OutputFormat so a
// loaded configuration converts directly.
type Format string

const (
	FormatText    = Format(config.FormatText)
	FormatTable   = Format(config.FormatTable)
	FormatJSON    = Format(config.FormatJSON)
	FormatSummary = Format(config.FormatSummary)
)

// Formats lists every supported format in help order.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatSummary}
}

// ParseFormat converts a format name. The empty string selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	format := Format(strings.ToLower(name))
	if !format.IsValid() {
		names := make([]string, 0, len(Formats()))
		for _, f := range Formats() {
			names = append(names, string(f))
		}
		return "", fmt.Errorf("unknown format %q; valid formats: %s", name, strings.Join(names, ", "))
	}
	return format, nil
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a supported format.
func (f Format) IsValid() bool {
	return slices.Contains(Formats(), f)
}

// aggregated reports whether f renders an analysis.Report rather than
// walking the per-line results.
func (f Format) aggregated() bool {
	return f == FormatJSON || f == FormatSummary
}
