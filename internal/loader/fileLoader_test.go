package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLinesFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb\r", []string{"a", "b"}},
		{"mixed endings", "a\r\rb\nc", []string{"a", "", "b", "c"}},
		{"only newlines", "\n\n", []string{"", ""}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLinesFrom(strings.NewReader(tt.input))
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLinesFrom() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	got, err := ReadLinesFrom(strings.NewReader(long + "\nshort\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || len(got[0]) != len(long) {
		t.Errorf("got %d lines, first of length %d", len(got), len(got[0]))
	}
}

func TestReadLinesOverOneMebibyte(t *testing.T) {
	long := `127.0.0.1 - - [10/Oct/2000:13:55:36 -0700] "GET /` + strings.Repeat("a", 2*1024*1024) + ` HTTP/1.1" 200 2326`
	got, err := ReadLinesFrom(strings.NewReader("ok line\n" + long + "\n"))
	if err != nil {
		t.Fatalf("ReadLinesFrom failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0] != "ok line" || got[1] != long {
		t.Errorf("lines not preserved: first %q, second of length %d (want %d)", got[0], len(got[1]), len(long))
	}
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "access.log")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"one", "two"}) {
		t.Errorf("ReadLines() = %q", got)
	}
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.log"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}
