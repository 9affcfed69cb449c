package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// RootOptions holds what the command needs beyond its arguments. The command
// takes no flags; tests set these fields directly.
type RootOptions struct {
	// Fs is the filesystem scanned. Nil means the OS filesystem.
	Fs afero.Fs

	// Workers is passed to the scanner. Zero means one per CPU.
	Workers int

	// LogLevel is the minimum level logged to stderr.
	LogLevel slog.Level
}

// NewRootCommand creates the fontdex command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fontdex <root_directory> <output_store_path>",
		Short: "Index font names below a directory into SQLite",
		Long: `Scan every file below a directory and record the full-name and
PostScript-name entries of each font face in a new SQLite database.

Every file gets a font row. Files or collection faces that cannot be parsed
get an error row. The output database must not already contain fontdex tables.

Example:
  fontdex /usr/share/fonts ./fonts.db`,
		Args:          exactPositional(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args[0], args[1])
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		printUsage(c)
		return WrapExitError(ExitCommandError, "invalid arguments", err)
	})

	return cmd
}

// exactPositional prints usage and returns a usage error unless exactly n
// arguments are given.
func exactPositional(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			printUsage(cmd)
			return NewExitError(ExitCommandError, fmt.Sprintf("expected %d arguments, got %d", n, len(args)))
		}
		return nil
	}
}

func printUsage(cmd *cobra.Command) {
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
}
