package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/yaklabco/mdprefix/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "mdprefix" {
		t.Errorf("expected Use to be 'mdprefix', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"scan", "line", "init", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestScanCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	scanCmd, _, err := cmd.Find([]string{"scan"})
	if err != nil {
		t.Fatalf("scan command not found: %v", err)
	}

	expectedFlags := []string{
		"format",
		"jobs",
		"ignore",
		"flavor",
		"no-tasks",
		"show-blank",
		"verify",
		"output",
	}

	for _, flagName := range expectedFlags {
		if scanCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on scan command", flagName)
		}
	}

	if err := scanCmd.Args(scanCmd, []string{"file1.md", "file2.md", "docs/"}); err != nil {
		t.Errorf("scan command should accept arbitrary args, got error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"debug", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2026-01-01",
	})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"mdprefix", "version=1.2.3", "commit=abc123"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("expected %q in version output, got %q", want, out.String())
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"mismatches", cli.ErrMismatchesFound, cli.ExitMismatches},
		{"wrapped mismatches", fmt.Errorf("scan: %w", cli.ErrMismatchesFound), cli.ExitMismatches},
		{"config", &cli.ExitError{Code: cli.ExitConfigError, Err: errors.New("bad")}, cli.ExitConfigError},
		{"unknown command", errors.New(`unknown command "lint" for "mdprefix"`), cli.ExitInvalidUsage},
		{"arg count", errors.New("accepts 1 arg(s), received 0"), cli.ExitInvalidUsage},
		{"anything else", errors.New("boom"), cli.ExitInternalError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			if got := cli.ExitCode(testCase.err); got != testCase.want {
				t.Errorf("ExitCode(%v) = %d, want %d", testCase.err, got, testCase.want)
			}
		})
	}
}

func TestDecodeEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{`>\t- x`, ">\t- x"},
		{`a\\tb`, `a\tb`},
		{"plain", "plain"},
		{`\t\t`, "\t\t"},
	}

	for _, testCase := range tests {
		if got := cli.DecodeEscapes(testCase.in); got != testCase.want {
			t.Errorf("DecodeEscapes(%q) = %q, want %q", testCase.in, got, testCase.want)
		}
	}
}

func TestVersionCommand_Short(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3"})
	cmd.SetArgs([]string{"version", "--short"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version --short failed: %v", err)
	}
	if out.String() != "1.2.3\n" {
		t.Errorf("expected bare version, got %q", out.String())
	}
}
