package tui

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/allot/internal/allotment"
)

func TestDebugLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	if err := initDebugLoggerAt(path); err != nil {
		t.Fatalf("initDebugLoggerAt failed: %v", err)
	}
	t.Cleanup(func() { debugLog = nil })

	LogRecordAdd(3, allotment.Record{Room: "101", Course: "CS101", StudentID: "A1"})
	LogExport("/tmp/room_allotments.xlsx", 4)
	LogError("submit", errors.New("boom"))
	LogModeChange(ModeForm, ModeConfirmClear, "test")
	CloseDebugLogger()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer func() { _ = f.Close() }()

	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("invalid json line %q: %v", scanner.Text(), err)
		}
		events = append(events, entry["event"].(string))
		if entry["event"] == "RECORD_ADD" && entry["student_id"] != "A1" {
			t.Errorf("RECORD_ADD student_id = %v, want A1", entry["student_id"])
		}
		if entry["event"] == "MODE_CHANGE" && entry["to"] != "ConfirmClear" {
			t.Errorf("MODE_CHANGE to = %v, want ConfirmClear", entry["to"])
		}
	}

	want := []string{"DEBUG_START", "RECORD_ADD", "EXPORT", "ERROR", "MODE_CHANGE", "DEBUG_END"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, events[i], want[i])
		}
	}
}

func TestDebugLogger_DisabledIsNoop(t *testing.T) {
	if err := InitDebugLogger(false); err != nil {
		t.Fatalf("InitDebugLogger(false) failed: %v", err)
	}
	t.Cleanup(func() { debugLog = nil })

	LogExport("x", 1)
	CloseDebugLogger()
}

func TestTruncateStr(t *testing.T) {
	if got := truncateStr("short", 10); got != "short" {
		t.Errorf("truncateStr(short) = %q", got)
	}
	if got := truncateStr("a much longer course name", 10); got != "a much ..." {
		t.Errorf("truncateStr(long) = %q", got)
	}
}
