package configloader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/mdprefix/pkg/config"
)

// EnvPrefix starts every environment override, e.g. MDPREFIX_FLAVOR.
const EnvPrefix = "MDPREFIX_"

// envBinding ties one environment variable suffix to a config key.
type envBinding struct {
	suffix      string
	key         string
	description string
	apply       func(cfg *config.Config, raw string) error
}

//nolint:gochecknoglobals // Read-only lookup table, kept in name order.
var envBindings = []envBinding{
	{"EXTENSIONS", "extensions", "Comma-separated Markdown extensions", func(cfg *config.Config, raw string) error {
		cfg.Extensions = splitList(raw)
		return nil
	}},
	{"FLAVOR", "flavor", "Markdown flavor: commonmark or gfm", func(cfg *config.Config, raw string) error {
		cfg.Flavor = config.Flavor(raw)
		return nil
	}},
	{"FORMAT", "format", "Output format: text, table, json or summary", func(cfg *config.Config, raw string) error {
		cfg.Format = config.OutputFormat(raw)
		return nil
	}},
	{"IGNORE", "ignore", "Comma-separated ignore globs", func(cfg *config.Config, raw string) error {
		cfg.Ignore = splitList(raw)
		return nil
	}},
	{"JOBS", "jobs", "Parallel workers (0 = auto)", func(cfg *config.Config, raw string) error {
		return parseInt(raw, &cfg.Jobs)
	}},
	{"MAX_MARKERS", "max_markers", "Markers recorded per line (0 = default)", func(cfg *config.Config, raw string) error {
		return parseInt(raw, &cfg.MaxMarkers)
	}},
	{"TASK_LISTS", "task_lists", "Recognize task checkboxes (true/false)", func(cfg *config.Config, raw string) error {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0, got %q", raw)
		}
		cfg.TaskLists = &enabled
		return nil
	}},
	{"VERIFY", "verify", "Cross-check against goldmark (true/false)", func(cfg *config.Config, raw string) error {
		verify, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0, got %q", raw)
		}
		cfg.Verify = verify
		return nil
	}},
}

// LoadFromEnv applies MDPREFIX_* overrides from environ (KEY=VALUE pairs).
// Empty values are ignored.
func LoadFromEnv(cfg *config.Config, environ []string) error {
	if cfg == nil {
		return nil
	}

	for _, entry := range environ {
		name, raw, ok := strings.Cut(entry, "=")
		suffix, hasPrefix := strings.CutPrefix(name, EnvPrefix)
		if !ok || !hasPrefix || raw == "" {
			continue
		}

		idx := slices.IndexFunc(envBindings, func(b envBinding) bool { return b.suffix == suffix })
		if idx < 0 {
			continue
		}
		if err := envBindings[idx].apply(cfg, raw); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	return nil
}

func parseInt(raw string, dst *int) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("expected an integer, got %q", raw)
	}
	*dst = n
	return nil
}

// splitList splits a comma-separated value, dropping blank entries.
func splitList(raw string) []string {
	var items []string
	for part := range strings.SplitSeq(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// GetEnvVarName returns the environment variable for a config key, or "".
func GetEnvVarName(key string) string {
	for _, binding := range envBindings {
		if binding.key == key {
			return EnvPrefix + binding.suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns every supported environment variable in name order.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, len(envBindings))
	for i, binding := range envBindings {
		vars[i] = EnvVar{Name: EnvPrefix + binding.suffix, Description: binding.description}
	}
	return vars
}
