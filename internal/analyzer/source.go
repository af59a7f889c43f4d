package analyzer

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"ngmap/internal/config"
	"ngmap/internal/errors"
	"ngmap/internal/model"
	"ngmap/internal/paths"
)

// alwaysSkipped are tool and editor directories that never hold project source
var alwaysSkipped = []string{".angular", ".vscode", ".git", config.Dir}

// File is one project file read into memory.
type File struct {
	// Path is project-relative with forward slashes
	Path    string
	Abs     string
	Content string
}

// Source enumerates the project files an analysis looks at.
type Source struct {
	root   string
	opts   config.AnalysisConfig
	ignore map[string]bool
	logger *slog.Logger
}

// NewSource creates a Source rooted at root.
func NewSource(root string, opts config.AnalysisConfig, logger *slog.Logger) *Source {
	ignore := make(map[string]bool)
	for _, dir := range alwaysSkipped {
		ignore[dir] = true
	}
	for _, dir := range opts.Ignore {
		ignore[dir] = true
	}
	if !opts.IncludeNodeModules {
		ignore["node_modules"] = true
	}
	return &Source{root: root, opts: opts, ignore: ignore, logger: logger}
}

// Root returns the directory the source walks.
func (s *Source) Root() string {
	return s.root
}

func (s *Source) skipDir(name string) bool {
	return s.ignore[name]
}

// keepFile applies the test and style filters to a file name.
func (s *Source) keepFile(name string) bool {
	if !s.opts.IncludeTests && model.IsTestFile(name) {
		return false
	}
	if !s.opts.IncludeStyles && model.IsStyleFile(name) {
		return false
	}
	return true
}

// Collect walks the project in lexical order and returns the absolute paths of
// the kept files whose name satisfies match. Entries that cannot be listed are
// skipped; only a failure on the root itself is returned.
func (s *Source) Collect(ctx context.Context, match func(name string) bool) ([]string, error) {
	var found []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == s.root {
				return errors.NewError(errors.FileUnreadable, "failed to read project root", err).
					WithDetails(map[string]string{"path": path})
			}
			s.logger.Debug("Skipping unreadable entry", "path", s.display(path), "error", err.Error())
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != s.root && s.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		if !s.keepFile(name) || !match(name) {
			return nil
		}

		if s.opts.MaxFileSizeBytes > 0 {
			info, err := d.Info()
			if err == nil && info.Size() > s.opts.MaxFileSizeBytes {
				s.logger.Debug("Skipping file: too large", "path", s.display(path), "size", info.Size())
				return nil
			}
		}

		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func (s *Source) display(path string) string {
	return paths.Display(path, s.root)
}

// ReadAll reads files with at most concurrency reads in flight. The result
// keeps the order of files. The first file that cannot be read aborts the
// whole call with a FILE_UNREADABLE error naming it.
func ReadAll(ctx context.Context, root string, files []string, concurrency int) ([]File, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	out := make([]File, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, abs := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rel := paths.Display(abs, root)
			data, err := os.ReadFile(abs)
			if err != nil {
				return errors.NewError(errors.FileUnreadable, "failed to read "+rel, err).
					WithDetails(map[string]string{"path": rel})
			}
			out[i] = File{Path: rel, Abs: abs, Content: string(data)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
