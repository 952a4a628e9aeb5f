package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/config"
	"github.com/javiermolinar/allot/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  allot config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.Export.Dir = promptValue(reader, out, "Export directory", cfg.Export.Dir)
	cfg.Export.Format = promptChoice(reader, out, "Export format", cfg.Export.Format, config.Formats)
	cfg.Export.SheetName = promptValue(reader, out, "Sheet name", cfg.Export.SheetName)
	cfg.Export.SeqWidth = promptFloat(reader, out, "Sl No column width", cfg.Export.SeqWidth)
	cfg.Export.IDWidth = promptFloat(reader, out, "Register number column width", cfg.Export.IDWidth)
	cfg.UI.Theme = promptChoice(reader, out, "UI theme", cfg.UI.Theme, theme.Available())

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "  db_path          = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(out, "\n[export]")
	fmt.Fprintf(out, "  dir              = %s\n", cfg.Export.Dir)
	fmt.Fprintf(out, "  format           = %s\n", cfg.Export.Format)
	fmt.Fprintf(out, "  sheet_name       = %s\n", cfg.Export.SheetName)
	fmt.Fprintf(out, "  seq_width        = %g\n", cfg.Export.SeqWidth)
	fmt.Fprintf(out, "  id_width         = %g\n", cfg.Export.IDWidth)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
}

// promptYesNo reads one answer line. Anything but y/yes is a no.
func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptFloat(reader *bufio.Reader, out io.Writer, label string, current float64) float64 {
	for {
		value := promptValue(reader, out, label, strconv.FormatFloat(current, 'g', -1, 64))
		n, err := strconv.ParseFloat(value, 64)
		if err == nil && n > 0 {
			return n
		}
		fmt.Fprintf(out, "  Invalid width %q\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptChoice(reader *bufio.Reader, out io.Writer, label, current string, options []string) string {
	list := strings.Join(options, ", ")
	label = fmt.Sprintf("%s (%s)", label, list)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		for _, o := range options {
			if o == value {
				return value
			}
		}
		fmt.Fprintf(out, "  Invalid value %q. Available: %s\n", value, list)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
