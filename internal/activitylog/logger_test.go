package activitylog

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("bad JSONL line %q: %v", sc.Text(), err)
		}
		lines = append(lines, m)
	}
	return lines
}

func TestLogger_WritesJSONL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.jsonl")
	l := New(true, path, "sess-1")
	l.SessionStart("test-model", 80, 24)
	l.Submit(5)
	l.Resize(100, 30)
	l.Notice("system", "hello")
	l.SessionStop(42)
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	lines := readLines(t, path)
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[0]["event"] != "session_start" || lines[0]["model"] != "test-model" {
		t.Fatalf("unexpected first line: %v", lines[0])
	}
	if lines[0]["session_id"] != "sess-1" {
		t.Fatalf("expected session id on envelope: %v", lines[0])
	}
	if lines[1]["event"] != "submit" || lines[1]["length"] != float64(5) {
		t.Fatalf("unexpected submit line: %v", lines[1])
	}
	if lines[4]["event"] != "session_stop" || lines[4]["tokens"] != float64(42) {
		t.Fatalf("unexpected stop line: %v", lines[4])
	}
}

func TestLogger_DisabledIsNoop(t *testing.T) {
	l := New(false, "/nonexistent/dir/x.jsonl", "sess")
	l.SessionStart("m", 1, 1)
	l.Submit(1)
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNop_SafeToUse(t *testing.T) {
	l := Nop()
	l.Notice("system", "x")
	l.Resize(1, 1)
	if err := l.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
