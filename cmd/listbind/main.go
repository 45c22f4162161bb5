// Listbind inspects and edits screen-list documents from the command line.
//
// A screen document is a YAML file holding the data rows of a screen list
// (outer), the per-row screen state (inner), and the paths that bind them.
// listbind pairs the two lists, scans the status codes into a selection, and
// writes selection and value changes back to the file.
//
// Usage:
//
//	listbind [command] [flags]
//
// See 'listbind --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/listbind/internal/config"
	"github.com/muurk/listbind/internal/logging"
	"github.com/muurk/listbind/internal/screen"
	"github.com/muurk/listbind/internal/ui"
	"github.com/muurk/listbind/internal/version"
)

const programName = "listbind"

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

// reportError prints document errors as a failure box with hints and
// anything else as a plain line
func reportError(err error) {
	if hints := screen.GetTroubleshootingHint(err); hints != nil {
		fmt.Fprintln(os.Stderr, ui.RenderFailure(screen.GetShortErrorMessage(err), err, hints))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// prefs holds the loaded user preferences for the running command
var prefs = config.DefaultPreferences()

var rootCmd = &cobra.Command{
	Use:   programName,
	Short: "Screen-list document utility",
	Long: `Inspect and edit screen-list documents.

A screen document pairs a list of data rows (outer) with a list of per-row
screen state (inner). Status codes in the inner rows mark rows as selected,
highlighted or hidden; listbind reads them, changes the selection or the
current value, and writes the result back.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.InitializeFromEnv(); err != nil {
			return err
		}

		registry, err := config.LoadRegistry()
		if err != nil {
			// a broken config file should not block document commands
			logging.Warn("Ignoring unreadable config", zap.Error(err))
			return nil
		}
		prefs = registry.Preferences
		return nil
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String(programName))
	},
}
