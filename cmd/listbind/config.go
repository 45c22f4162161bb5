package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/listbind/internal/config"
	"github.com/muurk/listbind/internal/ui"
)

var forceInit bool

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

// configCmd groups configuration file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the listbind configuration file",
}

// configInitCmd writes a default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write a configuration file holding the default preferences.

An existing file is only replaced with --force.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Replace an existing configuration file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if !forceInit {
		registry, err := config.LoadRegistry()
		if err == nil && len(registry.Screens) > 0 {
			return fmt.Errorf("config file %s already records %d document(s); use --force to replace it", configPath, len(registry.Screens))
		}
	}

	registry, err := config.CreateDefaultConfig()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Configuration written",
		ui.Param{Key: "File", Value: configPath},
		ui.Param{Key: "Format", Value: registry.Preferences.Format},
	))
	return nil
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	registry, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	if format == config.FormatYAML {
		data, err := yaml.Marshal(registry)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	p := registry.Preferences
	fmt.Fprintln(out, ui.NewHeader("Configuration", configPath,
		ui.Param{Key: "Status path", Value: p.StatusPath},
		ui.Param{Key: "Value path", Value: orNone(p.ValuePath)},
		ui.Param{Key: "Capacity", Value: strconv.Itoa(p.Capacity)},
		ui.Param{Key: "Format", Value: p.Format},
	).Render())

	files := make([]string, 0, len(registry.Screens))
	for file := range registry.Screens {
		files = append(files, file)
	}
	sort.Strings(files)
	for _, file := range files {
		s := registry.Screens[file]
		fmt.Fprintf(out, "  %s  %d rows  %s\n", file, s.Rows, s.LastOpened.Format("2006-01-02 15:04"))
	}
	return nil
}
