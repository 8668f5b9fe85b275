package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadLines returns every line of the file at path. Blank lines are kept,
// a trailing newline does not produce an extra line.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	lines, err := ReadLinesFrom(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read log file %s: %w", path, err)
	}
	return lines, nil
}

// ReadLinesFrom splits r on "\n", "\r\n" or a lone "\r". Lines have no
// length limit.
func ReadLinesFrom(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)

	var lines []string
	var line bytes.Buffer
	pending := false

	for {
		b, err := reader.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch b {
		case '\n':
			lines = append(lines, line.String())
			line.Reset()
			pending = false
		case '\r':
			lines = append(lines, line.String())
			line.Reset()
			pending = false
			// "\r\n" ends a single line
			if next, err := reader.Peek(1); err == nil && next[0] == '\n' {
				reader.ReadByte()
			}
		default:
			line.WriteByte(b)
			pending = true
		}
	}

	if pending {
		lines = append(lines, line.String())
	}
	return lines, nil
}
