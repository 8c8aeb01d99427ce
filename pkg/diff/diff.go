// Package diff renders unified diffs of resource state for dry-run
// previews and verbose output.
package diff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// StateDiff renders a unified diff between the current and desired state
// of a resource. Both mappings are rendered as stable, indented JSON so
// the diff is line-oriented and key order does not produce noise. Returns
// the empty string when the states render identically.
func StateDiff(current, desired map[string]any, currentLabel, desiredLabel string) string {
	currentDoc := renderState(current)
	desiredDoc := renderState(desired)
	return Unified([]byte(currentDoc), []byte(desiredDoc), currentLabel, desiredLabel)
}

// Unified generates a unified diff comparing two documents. Returns the
// empty string if the documents are identical. Diffs exceeding the line
// budget are truncated with a marker.
func Unified(expected, actual []byte, expectedLabel, actualLabel string) string {
	if bytes.Equal(expected, actual) {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(expected), string(actual), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf bytes.Buffer

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(&buf, "--- %s\t%s\n", expectedLabel, timestamp)
	fmt.Fprintf(&buf, "+++ %s\t%s\n", actualLabel, timestamp)

	expectedLines := strings.Count(string(expected), "\n") + 1
	actualLines := strings.Count(string(actual), "\n") + 1
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", expectedLines, actualLines)

	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffEqual:
			prefix = " "
		}
		for _, line := range splitLines(d.Text) {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func renderState(state map[string]any) string {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", state)
	}
	return string(raw)
}
