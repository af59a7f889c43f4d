package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ngmap/internal/errors"
	"ngmap/internal/model"
	"ngmap/internal/paths"
)

// Structure returns the filtered directory tree of the project. Directories
// without any kept file below them are pruned, and nothing deeper than the
// configured max depth is listed.
func (a *Analyzer) Structure(ctx context.Context) (*model.ProjectStructure, error) {
	a.logger.Info("Analyzing project structure", "root", a.root, "maxDepth", a.cfg.Analysis.MaxDepth)

	root := model.DirectoryNode{
		Name:        filepath.Base(a.root),
		Path:        ".",
		Directories: []model.DirectoryNode{},
		Files:       []model.FileNode{},
	}
	if err := a.scanDirectory(ctx, a.root, &root, 0); err != nil {
		return nil, err
	}

	_, total := Summary(&model.ProjectStructure{Root: root})
	a.logger.Info("Analysis finished", "kind", "structure", "files", total)
	return &model.ProjectStructure{Root: root}, nil
}

func (a *Analyzer) scanDirectory(ctx context.Context, dir string, node *model.DirectoryNode, depth int) error {
	if depth >= a.cfg.Analysis.MaxDepth {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		rel := paths.Display(dir, a.root)
		return errors.NewError(errors.FileUnreadable, "failed to read directory "+rel, err).
			WithDetails(map[string]string{"path": rel})
	}

	for _, entry := range entries {
		name := entry.Name()
		abs := filepath.Join(dir, name)

		if entry.IsDir() {
			if a.source.skipDir(name) {
				continue
			}
			child := model.DirectoryNode{
				Name:        name,
				Path:        paths.Display(abs, a.root),
				Directories: []model.DirectoryNode{},
				Files:       []model.FileNode{},
			}
			if err := a.scanDirectory(ctx, abs, &child, depth+1); err != nil {
				return err
			}
			if len(child.Files) > 0 || len(child.Directories) > 0 {
				node.Directories = append(node.Directories, child)
			}
			continue
		}

		if !a.source.keepFile(name) {
			continue
		}
		node.Files = append(node.Files, model.FileNode{
			Name:     name,
			Path:     paths.Display(abs, a.root),
			FileType: model.ClassifyFile(name),
		})
	}

	slices.SortFunc(node.Directories, func(x, y model.DirectoryNode) int { return strings.Compare(x.Name, y.Name) })
	slices.SortFunc(node.Files, func(x, y model.FileNode) int { return strings.Compare(x.Name, y.Name) })
	return nil
}

// TypeCount is the number of files of one type in a structure.
type TypeCount struct {
	Type  model.FileType `json:"type" yaml:"type" toml:"type"`
	Count int            `json:"count" yaml:"count" toml:"count"`
	// Share is Count divided by the total number of files
	Share float64 `json:"share" yaml:"share" toml:"share"`
}

// Summary counts the files of s per type, ordered as model.FileTypes. Types with
// no files are left out. The second result is the total file count.
func Summary(s *model.ProjectStructure) ([]TypeCount, int) {
	counts := make(map[model.FileType]int)
	total := countFiles(&s.Root, counts)

	summary := []TypeCount{}
	for _, ft := range model.FileTypes {
		n := counts[ft]
		if n == 0 {
			continue
		}
		summary = append(summary, TypeCount{Type: ft, Count: n, Share: float64(n) / float64(total)})
	}
	return summary, total
}

func countFiles(dir *model.DirectoryNode, counts map[model.FileType]int) int {
	total := len(dir.Files)
	for _, f := range dir.Files {
		counts[f.FileType]++
	}
	for i := range dir.Directories {
		total += countFiles(&dir.Directories[i], counts)
	}
	return total
}
