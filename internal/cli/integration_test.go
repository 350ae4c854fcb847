package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdprefix/internal/cli"
	"github.com/yaklabco/mdprefix/pkg/analysis"
	"github.com/yaklabco/mdprefix/pkg/config"
)

// testMarkdown has a nested blockquote list with a task on line 1 and an
// ordered item on line 4.
const testMarkdown = "> > - [x] done\n\nplain text\n1. first\n"

// writeTestFile writes content to name inside a fresh temp directory.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// emptyConfig writes an empty config file so tests do not depend on
// whatever project config sits above the package directory.
func emptyConfig(t *testing.T) string {
	t.Helper()
	return writeTestFile(t, ".mdprefix.yml", "")
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestIntegration_ScanText(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)

	stdout, _, err := runCLI(t, "scan", "--config", emptyConfig(t), "--color", "never", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "test.md:1  > > - [x]\n")
	assert.Contains(t, stdout, "test.md:4  1.\n")
	assert.NotContains(t, stdout, "test.md:3")
	assert.Contains(t, stdout, "2 structural lines in 1 file (4 lines)")
}

func TestIntegration_ScanShowBlank(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)

	stdout, _, err := runCLI(t, "scan", "--config", emptyConfig(t), "--color", "never", "--show-blank", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "test.md:2  (blank)")
	assert.Contains(t, stdout, "test.md:3  (none)")
}

func TestIntegration_NoTasksFlag(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)

	stdout, _, err := runCLI(t, "scan", "--config", emptyConfig(t), "--color", "never", "--no-tasks", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "test.md:1  > > -\n")
}

func TestIntegration_ConfigDisablesTasks(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)
	cfgFile := writeTestFile(t, "config.toml", "task_lists = false\nformat = \"text\"\n")

	stdout, _, err := runCLI(t, "scan", "--config", cfgFile, "--color", "never", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "test.md:1  > > -\n")
}

func TestIntegration_Verify(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)

	stdout, _, err := runCLI(t, "scan", "--config", emptyConfig(t), "--color", "never", "--verify", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, ", verified")
}

func TestIntegration_JSONOutputFile(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)
	outFile := filepath.Join(t.TempDir(), "report.json")

	stdout, _, err := runCLI(t, "scan", "--config", emptyConfig(t), "--format", "json", "--output", outFile, mdFile)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	var report analysis.Report
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, analysis.ReportVersion, report.Version)
	assert.Equal(t, 1, report.Totals.Files)
	assert.Equal(t, 4, report.Totals.Lines)
	assert.Equal(t, 2, report.Totals.StructuralLines)
	assert.Equal(t, 5, report.Totals.Markers)
	assert.Equal(t, 2, report.Totals.MaxDepth)
}

func TestIntegration_TableFormat(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)

	stdout, _, err := runCLI(t, "scan", "--config", emptyConfig(t), "--color", "never", "--format", "table", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "FILE")
	assert.Contains(t, stdout, "STRUCT")
	assert.Contains(t, stdout, "TOTAL (1 file)")
}

func TestIntegration_SummaryFormat(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)

	stdout, _, err := runCLI(t, "scan", "--config", emptyConfig(t), "--color", "never", "--format", "summary", mdFile)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Markers Summary")
	assert.Contains(t, stdout, "Files Summary")
	assert.Contains(t, stdout, "Total: 5 markers on 2 of 4 lines in 1 file")
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)
	cfgFile := writeTestFile(t, ".mdprefix.yml", "flavor: markua\n")

	_, _, err := runCLI(t, "scan", "--config", cfgFile, mdFile)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_UnknownConfigKey(t *testing.T) {
	t.Parallel()

	mdFile := writeTestFile(t, "test.md", testMarkdown)
	cfgFile := writeTestFile(t, ".mdprefix.yml", "rules:\n  MD009: false\n")

	_, _, err := runCLI(t, "scan", "--config", cfgFile, mdFile)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_MissingPath(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.md")

	_, _, err := runCLI(t, "scan", "--config", emptyConfig(t), missing)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}

func TestIntegration_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"scan", "--fix"}},
		{"unknown command", []string{"lint"}},
		{"line without text", []string{"line"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := runCLI(t, testCase.args...)
			require.Error(t, err)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
		})
	}
}

func TestIntegration_LineCommand(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, "line", "--color", "never", `>\t- [ ] todo`)
	require.NoError(t, err)

	assert.Contains(t, stdout, "notation: > - [ ]\n")
	assert.Contains(t, stdout, "indent:   0 columns\n")
	assert.Contains(t, stdout, "markers:  > @0 col 0, - @2 col 4, [ ] @4 col 6\n")
	assert.Contains(t, stdout, `content:  @8 col 10 "todo"`)
}

func TestIntegration_LineCommandPlain(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCLI(t, "line", "--color", "never", "    code")
	require.NoError(t, err)

	assert.Equal(t, "notation: (none)\nindent:   4 columns\n", stdout)
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	outFile := filepath.Join(t.TempDir(), ".mdprefix.yml")

	_, _, err := runCLI(t, "init", "--output", outFile)
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.NewConfig(), cfg)
	assert.Contains(t, string(data), "#   MDPREFIX_VERIFY")

	_, _, err = runCLI(t, "init", "--output", outFile)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	_, _, err = runCLI(t, "init", "--output", outFile, "--force")
	require.NoError(t, err)
}
