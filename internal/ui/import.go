package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/allot/internal/allotment"
	"github.com/javiermolinar/allot/internal/db"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file.json|file.db]",
		Short: "Import records from a JSON entries file or another database",
		Long: `Append records to the end of the current list.

A .json file holds an array of entries:
  [{"room": "101", "time": "09:30", "course": "CS101", "subject": "Algorithms", "studentId": "21CS001"}]

Any other file is opened as an allot database and all of its records are
copied in order.`,
		Example: `  allot import entries.json
  allot import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source path is a directory: %s", sourcePath)
			}

			ctx := context.Background()
			var count int
			if strings.EqualFold(filepath.Ext(sourcePath), ".json") {
				count, err = importJSONFile(ctx, a.store, sourcePath)
			} else {
				destPath, perr := resolvePath(a.config.Storage.DBPath)
				if perr != nil {
					return perr
				}
				if sourcePath == destPath {
					return fmt.Errorf("source database matches current database")
				}
				count, err = importRecords(ctx, a.store, sourcePath)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records from %s\n", count, sourcePath)
			return nil
		},
	}

	return cmd
}

// entry is one element of the JSON entries format.
type entry struct {
	Room      string `json:"room"`
	Time      string `json:"time"`
	Course    string `json:"course"`
	Subject   string `json:"subject"`
	StudentID string `json:"studentId"`
}

// record converts the entry. Blank student IDs are kept: they are seats
// created with "insert below".
func (e entry) record() (allotment.Record, error) {
	d := allotment.Draft(e).Normalize()
	if d.Room == "" || d.Course == "" {
		return allotment.Record{}, fmt.Errorf("%w: room, course", allotment.ErrMissingField)
	}
	return allotment.Record(d), nil
}

// decodeEntries parses a JSON entries array into records.
func decodeEntries(r io.Reader) ([]allotment.Record, error) {
	var entries []entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding entries: %w", err)
	}

	records := make([]allotment.Record, 0, len(entries))
	for i, e := range entries {
		rec, err := e.record()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func importJSONFile(ctx context.Context, dest allotment.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening entries file: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := decodeEntries(f)
	if err != nil {
		return 0, err
	}
	if err := dest.AppendAll(ctx, records); err != nil {
		return 0, fmt.Errorf("importing records: %w", err)
	}
	return len(records), nil
}

func importRecords(ctx context.Context, dest allotment.Store, sourcePath string) (int, error) {
	source, err := db.New(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = source.Close() }()

	records, err := source.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source records: %w", err)
	}

	if err := dest.AppendAll(ctx, records); err != nil {
		return 0, fmt.Errorf("importing records: %w", err)
	}
	return len(records), nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
