package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/javiermolinar/allot/internal/allotment"
	"github.com/javiermolinar/allot/internal/db"
)

func TestImportRecords(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "source.db")
	destPath := filepath.Join(dir, "dest.db")

	source, err := db.New(sourcePath)
	if err != nil {
		t.Fatalf("creating source store: %v", err)
	}
	defer func() { _ = source.Close() }()

	want := []allotment.Record{
		{Room: "101", Time: "09:30", Course: "CS101", Subject: "Algorithms", StudentID: "21CS001"},
		{Room: "101", Time: "09:30", Course: "CS101", Subject: "Algorithms"},
		{Room: "202", Time: "14:00", Course: "MA101", StudentID: "21MA001"},
	}
	if err := source.AppendAll(ctx, want); err != nil {
		t.Fatalf("AppendAll failed: %v", err)
	}

	dest, err := db.New(destPath)
	if err != nil {
		t.Fatalf("creating destination store: %v", err)
	}
	defer func() { _ = dest.Close() }()

	if _, err := dest.Append(ctx, allotment.Record{Room: "301", Time: "10:00", Course: "PH101", StudentID: "X1"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	count, err := importRecords(ctx, dest, sourcePath)
	if err != nil {
		t.Fatalf("importRecords failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 imported records, got %d", count)
	}

	got, err := dest.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 records in destination, got %d", len(got))
	}
	if !reflect.DeepEqual(got[1:], want) {
		t.Fatalf("imported records = %+v, want %+v", got[1:], want)
	}
}

func TestDecodeEntries(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []allotment.Record
		wantErr error
	}{
		{
			name:  "entries",
			input: `[{"room":" 101 ","time":"09:30","course":"CS101","subject":"Algo","studentId":"21cs001"},{"room":"101","time":"09:30","course":"CS101","subject":"Algo","studentId":""}]`,
			want: []allotment.Record{
				{Room: "101", Time: "09:30", Course: "CS101", Subject: "Algo", StudentID: "21CS001"},
				{Room: "101", Time: "09:30", Course: "CS101", Subject: "Algo"},
			},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  []allotment.Record{},
		},
		{
			name:    "missing room",
			input:   `[{"course":"CS101","studentId":"A1"}]`,
			wantErr: allotment.ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeEntries(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeEntries_InvalidJSON(t *testing.T) {
	if _, err := decodeEntries(strings.NewReader(`{"room":`)); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestImportCmd_JSON(t *testing.T) {
	app, store := newTestApp(t)
	path := filepath.Join(t.TempDir(), "entries.json")
	data := `[{"room":"101","time":"09:30","course":"CS101","subject":"Algorithms","studentId":"21CS001"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing entries: %v", err)
	}

	out, err := runApp(t, app, "", "import", path)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if !strings.Contains(out, "Imported 1 records") {
		t.Errorf("unexpected output %q", out)
	}

	records := snapshot(t, store)
	if len(records) != 1 || records[0].StudentID != "21CS001" {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestImportCmd_SameDatabase(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := runApp(t, app, "", "import", app.config.Storage.DBPath)
	if err == nil || !strings.Contains(err.Error(), "matches current database") {
		t.Fatalf("expected same-database error, got %v", err)
	}
}

func TestImportCmd_Missing(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := runApp(t, app, "", "import", filepath.Join(t.TempDir(), "nope.json"))
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("expected missing-source error, got %v", err)
	}
}
