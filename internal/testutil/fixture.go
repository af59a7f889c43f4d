// Package testutil provides fixture projects and golden-file comparison for tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FixtureContext holds information about a loaded fixture project.
type FixtureContext struct {
	// Name is the fixture directory name, e.g. "shop"
	Name string

	// Root is the absolute path to the fixture project
	Root string

	// ExpectedDir holds the golden files, outside the project so that
	// analysis never sees them
	ExpectedDir string
}

// LoadFixture locates testdata/fixtures/<name>, failing the test if it is missing.
func LoadFixture(t *testing.T, name string) *FixtureContext {
	t.Helper()

	testdata := getTestdataRoot(t)
	root := filepath.Join(testdata, "fixtures", name)
	if _, err := os.Stat(root); err != nil {
		t.Fatalf("Fixture directory not found: %s", root)
	}

	return &FixtureContext{
		Name:        name,
		Root:        root,
		ExpectedDir: filepath.Join(testdata, "expected", name),
	}
}

// ExpectedPath returns the path to a golden file. The name should not include
// the .json extension.
func (f *FixtureContext) ExpectedPath(name string) string {
	return filepath.Join(f.ExpectedDir, name+".json")
}

// getTestdataRoot returns the absolute path to testdata/ at the module root.
func getTestdataRoot(t *testing.T) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get caller information")
	}

	// internal/testutil -> module root
	moduleRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
	testdata := filepath.Join(moduleRoot, "testdata")
	if _, err := os.Stat(testdata); err != nil {
		t.Fatalf("testdata not found: %s", testdata)
	}
	return testdata
}
