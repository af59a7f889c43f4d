// Package paths turns filesystem paths into the stable, slash-separated
// project-relative form used in every report.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// CanonicalizePath converts an absolute path to a project-relative canonical path
// - Resolves symlinks to real paths
// - Makes path relative to the project root
// - Converts backslashes to forward slashes
func CanonicalizePath(absolutePath string, projectRoot string) (string, error) {
	resolved, err := filepath.EvalSymlinks(absolutePath)
	if err != nil {
		if os.IsNotExist(err) {
			resolved = absolutePath
		} else {
			return "", err
		}
	}

	rootResolved, err := filepath.EvalSymlinks(projectRoot)
	if err != nil {
		if os.IsNotExist(err) {
			rootResolved = projectRoot
		} else {
			return "", err
		}
	}

	relativePath, err := filepath.Rel(rootResolved, resolved)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(relativePath), nil
}

// Display returns the canonical form of path for reports, falling back to the
// slash-normalized input when it cannot be made relative to projectRoot.
func Display(path string, projectRoot string) string {
	canonical, err := CanonicalizePath(path, projectRoot)
	if err != nil || strings.HasPrefix(canonical, "..") {
		return NormalizePath(path)
	}
	return canonical
}

// NormalizePath converts backslashes to forward slashes
func NormalizePath(path string) string {
	return filepath.ToSlash(path)
}

// ResolveImport resolves a relative module specifier against the directory of
// the importing file. Bare specifiers are returned unchanged.
func ResolveImport(fromFile string, specifier string) string {
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") {
		return specifier
	}
	dir := filepath.Dir(NormalizePath(fromFile))
	return NormalizePath(filepath.Join(dir, specifier))
}
