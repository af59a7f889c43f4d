package testutil

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"testing"
)

// updateGolden rewrites golden files instead of comparing.
// Use: go test ./... -run Golden -update
var updateGolden = flag.Bool("update", false, "update golden files")

// CompareGolden compares got against the golden file, failing with a diff on
// mismatch. With -update the golden file is rewritten instead.
func CompareGolden(t *testing.T, fixture *FixtureContext, name string, got any) {
	t.Helper()

	normalized := MarshalNormalized(t, fixture, got)
	goldenPath := fixture.ExpectedPath(name)

	if *updateGolden {
		if err := os.MkdirAll(fixture.ExpectedDir, 0o755); err != nil {
			t.Fatalf("Failed to create expected directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, normalized, 0o644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		t.Logf("Updated golden: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("Golden file missing: %s\n\nGot:\n%s\n\nRun with -update to create:\n  go test ./... -run %s -update",
				goldenPath, normalized, t.Name())
		}
		t.Fatalf("Failed to read golden file: %v", err)
	}

	if !bytes.Equal(normalized, expected) {
		t.Fatalf("Golden mismatch for %s:\n%s\nRun with -update to refresh:\n  go test ./... -run %s -update",
			name, lineDiff(string(expected), string(normalized), goldenPath), t.Name())
	}
}

// lineDiff lists the lines that differ between expected and got, position by
// position, with up to two lines of context before each run of changes.
func lineDiff(expected, got, path string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s (expected)\n+++ %s (got)\n", path, path)

	want := strings.Split(expected, "\n")
	have := strings.Split(got, "\n")
	n := max(len(want), len(have))

	lineAt := func(lines []string, i int) (string, bool) {
		if i < len(lines) {
			return lines[i], true
		}
		return "", false
	}

	lastPrinted := -1
	for i := 0; i < n; i++ {
		w, wok := lineAt(want, i)
		h, hok := lineAt(have, i)
		if wok == hok && w == h {
			continue
		}
		if i-lastPrinted > 1 {
			fmt.Fprintf(&buf, "@@ line %d @@\n", i+1)
			for j := max(lastPrinted+1, i-2); j < i; j++ {
				fmt.Fprintf(&buf, " %s\n", want[j])
			}
		}
		if wok {
			fmt.Fprintf(&buf, "-%s\n", w)
		}
		if hok {
			fmt.Fprintf(&buf, "+%s\n", h)
		}
		lastPrinted = i
	}
	return buf.String()
}
