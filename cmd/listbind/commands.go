package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/listbind/internal/config"
	"github.com/muurk/listbind/internal/listview"
	"github.com/muurk/listbind/internal/logging"
	"github.com/muurk/listbind/internal/pairing"
	"github.com/muurk/listbind/internal/path"
	"github.com/muurk/listbind/internal/picker"
	"github.com/muurk/listbind/internal/screen"
	"github.com/muurk/listbind/internal/ui"
)

// Document command flags
var (
	outputFormat string
	topRow       int
	commitValue  bool

	newStatusPath string
	newValuePath  string
	newCapacity   int
	newMulti      bool
	newFiltered   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (detailed, compact, yaml); defaults to the configured format")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(selectedCmd)
	rootCmd.AddCommand(setValueCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(pickCmd)
}

// newCmd creates an empty screen document
var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty screen document",
	Long: `Create an empty screen document.

Paths and capacity default to the values in the configuration file
(see 'listbind config show').`,
	Example: `  # Create a document with the configured defaults
  listbind new people.yaml

  # Multi-select list keyed by id, without a value cursor
  listbind new tags.yaml --multi --value-path "" --status-path state`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newStatusPath, "status-path", "", "Path to each row's status code")
	newCmd.Flags().StringVar(&newValuePath, "value-path", "", "Path to each row's value (empty disables the cursor)")
	newCmd.Flags().IntVar(&newCapacity, "capacity", 0, "Row count below which the cursor may insert rows")
	newCmd.Flags().BoolVar(&newMulti, "multi", false, "Allow several selected rows")
	newCmd.Flags().BoolVar(&newFiltered, "filtered", false, "Skip hidden rows instead of truncating at the first one")
}

func runNew(cmd *cobra.Command, args []string) error {
	doc := screen.NewDocument(prefs.StatusPath)
	doc.ValuePath = prefs.ValuePath
	doc.Capacity = prefs.Capacity

	flags := cmd.Flags()
	if flags.Changed("status-path") {
		doc.StatusPath = newStatusPath
	}
	if flags.Changed("value-path") {
		doc.ValuePath = newValuePath
	}
	if flags.Changed("capacity") {
		doc.Capacity = newCapacity
	}
	doc.Multi = newMulti
	doc.Filtered = newFiltered

	if err := doc.Validate(); err != nil {
		return err
	}
	if err := saveDocument(args[0], doc); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Document created",
		ui.Param{Key: "File", Value: args[0]},
		ui.Param{Key: "Status path", Value: doc.StatusPath},
		ui.Param{Key: "Value path", Value: orNone(doc.ValuePath)},
	))
	return nil
}

// showCmd renders the visible rows of a document
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show the visible rows of a screen document",
	Long: `Display the rows of a screen document as the screen list sees them.

Hidden rows are omitted, the highlighted top row is marked with ▸, and
selected rows with ✓. Showing a document normalizes its status codes in
memory only; the file is not written.`,
	Example: `  # Boxed table
  listbind show people.yaml

  # One line per row for scripts
  listbind show people.yaml --format compact

  # Raw document
  listbind show people.yaml --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := screen.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	if format == config.FormatYAML {
		data, err := doc.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
		return nil
	}

	binding, err := doc.Bind()
	if err != nil {
		return err
	}
	rows := ui.RowsFromList(binding.List(), rowLabel(doc))

	if format == config.FormatCompact {
		fmt.Fprint(out, ui.RenderCompact(rows))
		return nil
	}

	mode := listview.InPlace
	if doc.Filtered {
		mode = listview.Filtered
	}
	fmt.Fprintln(out, ui.NewHeader(filepath.Base(args[0]), "listbind show "+args[0],
		ui.Param{Key: "Status path", Value: doc.StatusPath},
		ui.Param{Key: "Value path", Value: orNone(doc.ValuePath)},
		ui.Param{Key: "Mode", Value: mode.String()},
		ui.Param{Key: "Rows", Value: fmt.Sprintf("%d visible of %d", len(rows), len(doc.Outer))},
	).Render())
	fmt.Fprintln(out, ui.NewRowTable("Rows", rows).Render())
	return nil
}

// selectCmd replaces the selection
var selectCmd = &cobra.Command{
	Use:   "select <file> [index...]",
	Short: "Select rows by visible index",
	Long: `Replace the selection of a screen document.

Indexes count visible rows from 0. Every row not named is deselected; with
no indexes the selection is cleared. Outside multi mode only the first index
is used.`,
	Example: `  # Select the third visible row
  listbind select people.yaml 2

  # Select rows 0 and 3 and highlight row 3
  listbind select tags.yaml 0 3 --top 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelect,
}

func init() {
	selectCmd.Flags().IntVar(&topRow, "top", -1, "Highlight this visible row")
}

func runSelect(cmd *cobra.Command, args []string) error {
	indexes := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid row index %q: %w", arg, err)
		}
		indexes = append(indexes, i)
	}

	doc, binding, err := loadBinding(args[0])
	if err != nil {
		return err
	}
	if err := binding.Select(indexes...); err != nil {
		return err
	}

	list := binding.List()
	if cmd.Flags().Changed("top") {
		if topRow < 0 || topRow >= list.Len() {
			return screen.NewRangeError(topRow, list.Len())
		}
		list.SetTop(topRow)
		list.MarkTop()
	}

	binding.Sync()
	if err := saveDocument(args[0], doc); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderSuccess("Selection saved",
		ui.Param{Key: "File", Value: args[0]},
		ui.Param{Key: "Selected", Value: fmt.Sprint(list.Selections())},
	))
	return nil
}

// selectedCmd lists the selected rows
var selectedCmd = &cobra.Command{
	Use:   "selected <file>",
	Short: "List the selected rows",
	Long: `Print the selected rows of a screen document, one per line.

Rows marked "*", "+" or ">" count as selected. Nothing is normalized or
written.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelected,
}

func runSelected(cmd *cobra.Command, args []string) error {
	doc, err := screen.Load(args[0])
	if err != nil {
		return err
	}

	items := pairing.Zip(doc.Outer, doc.Inner).Items()
	label := rowLabel(doc)
	for _, item := range listview.SelectedOnly(items, path.Parse(doc.StatusPath)) {
		fmt.Fprintln(cmd.OutOrStdout(), label(item))
	}
	return nil
}

// setValueCmd writes through the editable cursor
var setValueCmd = &cobra.Command{
	Use:   "set-value <file> <value>...",
	Short: "Move the value cursor",
	Long: `Set the current value of an editable screen document.

A value matching a row's value field selects that row. Any other value is
inserted as a new row while the document holds fewer rows than its
capacity. Several values are applied in order; without --commit each value
replaces the row inserted by the one before it.`,
	Example: `  # Select Bob, or add him
  listbind set-value people.yaml Bob

  # Add both Dave and Erin
  listbind set-value people.yaml Dave Erin --commit`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSetValue,
}

func init() {
	setValueCmd.Flags().BoolVar(&commitValue, "commit", false, "Keep every inserted row")
}

func runSetValue(cmd *cobra.Command, args []string) error {
	doc, binding, err := loadBinding(args[0])
	if err != nil {
		return err
	}

	values := make([]any, len(args)-1)
	for i, arg := range args[1:] {
		values[i] = arg
	}
	if err := binding.SetValue(commitValue, values...); err != nil {
		return err
	}

	binding.Sync()
	if err := saveDocument(args[0], doc); err != nil {
		return err
	}

	current := binding.List().Value()
	result := ui.NewSuccessResult("Value saved",
		ui.Param{Key: "File", Value: args[0]},
		ui.Param{Key: "Value", Value: orNone(current.String())},
	)
	if current != nil && binding.List().IndexOf(current.Item) < 0 {
		result = ui.NewWarningResult("Value not stored as a row",
			ui.Param{Key: "Value", Value: current.String()},
			ui.Param{Key: "Capacity", Value: strconv.Itoa(doc.Capacity)},
		)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.Render())
	return nil
}

// getCmd reads a raw value
var getCmd = &cobra.Command{
	Use:   "get <file> <path>",
	Short: "Print the value at a path",
	Long: `Print the value at a dotted path as YAML.

Paths start at outer or inner; numeric fragments index sequences.`,
	Example: `  listbind get people.yaml outer.1.name
  listbind get people.yaml inner`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	doc, err := screen.Load(args[0])
	if err != nil {
		return err
	}

	v, err := doc.GetRaw(args[1])
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// setCmd writes a raw value
var setCmd = &cobra.Command{
	Use:   "set <file> <path> <value>",
	Short: "Write a value at a path",
	Long: `Write a value at a dotted path and save the document.

The value is parsed as YAML, so 3 is a number, "3" a string, and
{name: Zed} a mapping. Missing containers are created and sequences grow
as needed.`,
	Example: `  # Hide the second row
  listbind set people.yaml inner.1.status H

  # Append a row
  listbind set people.yaml outer.3 "{name: Dave}"`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	doc, err := screen.Load(args[0])
	if err != nil {
		return err
	}

	var value any
	if err := yaml.Unmarshal([]byte(args[2]), &value); err != nil {
		return screen.NewParseError("", "failed to parse value", err)
	}
	if err := doc.SetRaw(args[1], value); err != nil {
		return err
	}
	if err := saveDocument(args[0], doc); err != nil {
		return err
	}

	logging.Info("Set raw value", zap.String("path", args[1]), zap.Any("value", value))
	return nil
}

// pickCmd launches the interactive picker
var pickCmd = &cobra.Command{
	Use:   "pick <file>",
	Short: "Pick rows interactively",
	Long: `Browse a screen document and change its selection interactively.

Move with the arrow keys, toggle rows with space, type a new value with e,
and save with enter. Quitting with q leaves the file untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	doc, binding, err := loadBinding(args[0])
	if err != nil {
		return err
	}

	model, err := picker.Run(picker.New(filepath.Base(args[0]), binding.List(), rowLabel(doc)))
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}
	if !model.Saved() {
		return nil
	}

	binding.Sync()
	return saveDocument(args[0], doc)
}

// loadBinding loads a document and binds it to a list
func loadBinding(file string) (*screen.Document, *screen.Binding, error) {
	doc, err := screen.Load(file)
	if err != nil {
		return nil, nil, err
	}
	binding, err := doc.Bind()
	if err != nil {
		return nil, nil, err
	}
	return doc, binding, nil
}

// saveDocument writes a document and records it in the config registry.
// Registry failures are logged, never returned.
func saveDocument(file string, doc *screen.Document) error {
	if err := doc.Save(file); err != nil {
		return err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		abs = file
	}
	registry, err := config.LoadRegistry()
	if err != nil {
		logging.Warn("Skipping recent-document record", zap.Error(err))
		return nil
	}
	registry.TouchScreen(abs, len(doc.Outer))
	if err := registry.Save(); err != nil {
		logging.Warn("Skipping recent-document record", zap.Error(err))
	}
	return nil
}

// rowLabel renders a row by its value field when the document has one, and
// by its outer data otherwise
func rowLabel(doc *screen.Document) func(item any) string {
	value := path.Parse(doc.ValuePath)
	return func(item any) string {
		if !value.IsEmpty() {
			if s := listview.Stringify(value.Get(item)); s != "" {
				return s
			}
		}
		if rec, ok := item.(*pairing.Record); ok {
			return fmt.Sprint(rec.Outer)
		}
		return fmt.Sprint(item)
	}
}

func resolveFormat() (string, error) {
	format := outputFormat
	if format == "" {
		format = prefs.Format
	}
	if !config.ValidFormat(format) {
		return "", fmt.Errorf("unknown format %q (expected detailed, compact or yaml)", format)
	}
	return format, nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
