package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/allotment"
	"github.com/javiermolinar/allot/internal/config"
	"github.com/javiermolinar/allot/internal/db"
	"github.com/javiermolinar/allot/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store    allotment.Store
	ownStore bool // opened by ensureStore, closed by Close
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
}

// NewApp creates a new CLI application with the given store and config.
// A nil store is opened lazily from the configured database path.
func NewApp(store allotment.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg}

	a.root = &cobra.Command{
		Use:   "allot",
		Short: "Room allotment sheets for exam halls",
		Long: `Allot keeps an ordered list of student seatings (room, time, course,
subject, student ID) and lays it out as a room allotment sheet: one banner
per room, one header block per course, student IDs in columns of ten.

Run without a sub-command to open the interactive form.`,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.store, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.insertCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.inspectCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.nextIDCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "allot %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureStore opens the configured database on first use.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}

	path := a.config.Storage.DBPath
	if path == "" {
		return fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	store, err := db.New(path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.store = store
	a.ownStore = true
	return nil
}

// Close releases the store if the App opened it.
func (a *App) Close() error {
	if !a.ownStore || a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	a.ownStore = false
	return err
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
