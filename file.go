package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// loadLines reads the startup buffer from filename. A file that does not
// exist yet opens as a single empty line.
func loadLines(filename string) ([]string, error) {
	if filename == "" {
		return []string{""}, nil
	}
	file, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{""}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer file.Close()

	lines, err := readLines(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filename, err)
	}
	return lines, nil
}

// readLines splits r into lines without their terminators. A "\r\n" ending
// counts as one terminator and lines have no length limit. Empty input gives
// one empty line.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(trimmed, "\r")
			}
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}
