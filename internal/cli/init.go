package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdprefix/internal/configloader"
	"github.com/yaklabco/mdprefix/internal/logging"
	"github.com/yaklabco/mdprefix/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// configHeader heads generated configuration files and lists the
// environment overrides.
func configHeader() string {
	var b strings.Builder
	b.WriteString("# mdprefix configuration\n")
	b.WriteString("# Precedence: defaults < ~/.config/mdprefix < .mdprefix.yml < --config < MDPREFIX_* < flags\n#\n")
	b.WriteString("# Environment overrides:\n")
	for _, v := range configloader.ListEnvVars() {
		fmt.Fprintf(&b, "#   %-22s %s\n", v.Name, v.Description)
	}
	return b.String()
}

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdprefix configuration file",
		Long: `Create a new .mdprefix.yml configuration file in the current directory
holding the default settings.

Examples:
  mdprefix init                       Create .mdprefix.yml
  mdprefix init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", ".mdprefix.yml", "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("resolve path: %w", err))
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return withExitCode(ExitInvalidUsage,
				fmt.Errorf("file %q already exists; use --force to overwrite", flags.output))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	content, err := config.NewConfig().ToYAMLWithHeader(configHeader())
	if err != nil {
		return withExitCode(ExitInternalError, fmt.Errorf("generate config: %w", err))
	}

	if err := renameio.WriteFile(absPath, content, configFilePermissions); err != nil {
		return withExitCode(ExitIOError, fmt.Errorf("write file: %w", err))
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)

	return nil
}
