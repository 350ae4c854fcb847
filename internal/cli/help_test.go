package cli

import (
	"strings"
	"testing"
)

func TestStyleUsageTemplate(t *testing.T) {
	t.Parallel()

	tmpl := "Usage:{{if .Runnable}}\n  {{.UseLine}}{{end}}\n\nFlags:\n{{.LocalFlags}}\n\nGlobal Flags:\n{{.InheritedFlags}}"
	got := styleUsageTemplate(tmpl)

	for _, want := range []string{
		`{{styleHeading "Usage:"}}{{if .Runnable}}`,
		`{{styleCommand .UseLine}}`,
		`{{styleHeading "Flags:"}}` + "\n",
		`{{styleHeading "Global Flags:"}}` + "\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in styled template:\n%s", want, got)
		}
	}
	if strings.Contains(got, `Global {{styleHeading`) {
		t.Errorf("Global Flags heading was split:\n%s", got)
	}
}
