package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Missing is rendered for a line index that exists on only one side.
const Missing = "<missing>"

// ErrExistingNotFound is returned when there is no committed table to
// compare against.
var ErrExistingNotFound = errors.New("existing table not found")

// LineDiff records one differing line between the generated and existing
// tables. Line is 1-based.
type LineDiff struct {
	Line      int
	Generated string
	Existing  string
}

// Compare checks two tables line by line. The verdict is exact equality of
// the raw content; the returned diffs carry the differing lines with
// trailing line-ending characters stripped for display.
func Compare(generated, existing string) (bool, []LineDiff) {
	if generated == existing {
		return true, nil
	}

	genLines := splitLines(generated)
	existLines := splitLines(existing)

	var diffs []LineDiff
	n := max(len(genLines), len(existLines))
	for i := 0; i < n; i++ {
		g, e := Missing, Missing
		if i < len(genLines) {
			g = genLines[i]
		}
		if i < len(existLines) {
			e = existLines[i]
		}
		if g != e {
			diffs = append(diffs, LineDiff{Line: i + 1, Generated: g, Existing: e})
		}
	}
	return false, diffs
}

// CompareFiles compares a freshly generated table file against the committed
// one on disk.
func CompareFiles(generatedPath, existingPath string) (bool, []LineDiff, error) {
	existing, err := os.ReadFile(existingPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil, ErrExistingNotFound
	}
	if err != nil {
		return false, nil, fmt.Errorf("read %s: %w", existingPath, err)
	}

	generated, err := os.ReadFile(generatedPath)
	if err != nil {
		return false, nil, fmt.Errorf("read %s: %w", generatedPath, err)
	}

	ok, diffs := Compare(string(generated), string(existing))
	return ok, diffs, nil
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	return lines
}
