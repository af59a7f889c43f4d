package analyzer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ngmap/internal/config"
	"ngmap/internal/extract"
	"ngmap/internal/model"
	"ngmap/internal/paths"
)

// Analyzer runs extraction passes over one project.
type Analyzer struct {
	root   string
	cfg    *config.Config
	source *Source
	fields *extract.Fields
	logger *slog.Logger
}

// New creates an Analyzer for the project at root.
func New(root string, cfg *config.Config, logger *slog.Logger) *Analyzer {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{
		root:   root,
		cfg:    cfg,
		source: NewSource(root, cfg.Analysis, logger),
		fields: extract.NewFields(cfg.Cache.PatternCacheSize),
		logger: logger,
	}
}

// Root returns the absolute project root.
func (a *Analyzer) Root() string {
	return a.root
}

// Units returns every declared unit of kind, in traversal order.
func (a *Analyzer) Units(ctx context.Context, kind model.UnitKind) ([]model.DeclaredUnit, error) {
	suffix := kind.FileSuffix()
	match := func(name string) bool {
		return strings.HasSuffix(name, suffix) && !model.IsTestFile(name)
	}
	return extractEach(ctx, a, kind.Marker()+"s", match, func(f File) []model.DeclaredUnit {
		unit := buildUnit(a.fields, kind, f.Path, f.Content)
		a.attachSiblings(&unit, f)
		return []model.DeclaredUnit{unit}
	})
}

// Modules returns the composition of every NgModule file.
func (a *Analyzer) Modules(ctx context.Context) ([]model.ModuleComposition, error) {
	match := func(name string) bool { return strings.HasSuffix(name, ".module.ts") }
	return extractEach(ctx, a, "modules", match, func(f File) []model.ModuleComposition {
		return []model.ModuleComposition{buildModule(a.fields, f.Path, f.Content)}
	})
}

// Dependencies returns the named-import edges of every TypeScript file.
func (a *Analyzer) Dependencies(ctx context.Context) ([]model.DependencyEdge, error) {
	match := func(name string) bool { return filepath.Ext(name) == ".ts" }
	return extractEach(ctx, a, "dependencies", match, func(f File) []model.DependencyEdge {
		edges := ExtractDependencies(f.Path, f.Content)
		for i := range edges {
			if resolved := paths.ResolveImport(f.Path, edges[i].Target); resolved != edges[i].Target {
				edges[i].Resolved = resolved
			}
		}
		return edges
	})
}

// Routes returns the top-level routes of every routing file, concatenated.
func (a *Analyzer) Routes(ctx context.Context) ([]model.RouteNode, error) {
	return extractEach(ctx, a, "routes", IsRouteFile, func(f File) []model.RouteNode {
		interior, ok := RoutesArray(f.Content)
		if !ok {
			a.logger.Debug("No routes array", "path", f.Path)
			return nil
		}
		return buildRoutes(a.fields, interior)
	})
}

// IsRouteFile reports whether name is a routing module or a standalone routes file.
func IsRouteFile(name string) bool {
	if strings.Contains(name, "routing") && strings.HasSuffix(name, ".module.ts") {
		return true
	}
	return strings.HasSuffix(name, ".routes.ts")
}

// extractEach collects the files accepted by match, reads them and applies fn to
// each file in parallel. Results are concatenated in traversal order.
func extractEach[T any](ctx context.Context, a *Analyzer, what string, match func(string) bool, fn func(File) []T) ([]T, error) {
	start := time.Now()
	a.logger.Info("Analyzing "+what, "root", a.root)

	found, err := a.source.Collect(ctx, match)
	if err != nil {
		return nil, err
	}

	files, err := ReadAll(ctx, a.root, found, a.cfg.Analysis.Concurrency)
	if err != nil {
		return nil, err
	}

	perFile := make([][]T, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.cfg.Analysis.Concurrency, 1))
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			perFile[i] = fn(f)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := []T{}
	for _, items := range perFile {
		results = append(results, items...)
	}

	a.logger.Info("Analysis finished",
		"kind", what,
		"files", len(files),
		"found", len(results),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return results, nil
}

// attachSiblings fills in the template, style and test files that sit next to
// a unit's source and share its stem.
func (a *Analyzer) attachSiblings(unit *model.DeclaredUnit, f File) {
	marker := unit.Kind.Marker()
	dir := filepath.Dir(f.Abs)
	stem := stemFor(f.Abs, marker)
	prefix := filepath.Join(dir, stem+"."+marker)

	if unit.Kind == model.UnitComponent {
		if p, ok := a.sibling(prefix + ".html"); ok {
			unit.TemplatePath = p
		}
		for _, ext := range model.StyleExtensions {
			if p, ok := a.sibling(prefix + "." + ext); ok {
				unit.StylePaths = append(unit.StylePaths, p)
			}
		}
	}
	if p, ok := a.sibling(prefix + ".spec.ts"); ok {
		unit.TestPath = p
	}
}

func (a *Analyzer) sibling(abs string) (string, bool) {
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", false
	}
	return paths.Display(abs, a.root), true
}
