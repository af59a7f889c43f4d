package render

import (
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"ngmap/internal/analyzer"
	"ngmap/internal/model"
	"ngmap/internal/output"
)

// Printer writes human-readable reports.
type Printer struct {
	w   io.Writer
	p   palette
	err error
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, colored bool) *Printer {
	return &Printer{w: w, p: newPalette(colored)}
}

// Err returns the first write error, if any.
func (pr *Printer) Err() error {
	return pr.err
}

func (pr *Printer) printf(format string, args ...any) {
	if pr.err != nil {
		return
	}
	_, pr.err = fmt.Fprintf(pr.w, format, args...)
}

func (pr *Printer) heading(label, title string, count int) {
	pr.printf("\n%s %s (%s):\n", pr.p.header.Sprint(label+":"), title, humanize.Comma(int64(count)))
}

// Structure prints the directory tree followed by the per-type summary.
func (pr *Printer) Structure(s *model.ProjectStructure) {
	pr.printf("\n%s Project Structure:\n", pr.p.header.Sprint("STRUCTURE:"))
	pr.directory(&s.Root, 0)
	pr.printf("\n")

	counts, total := analyzer.Summary(s)
	pr.Summary(counts, total)
}

func (pr *Printer) directory(dir *model.DirectoryNode, depth int) {
	indent := strings.Repeat("  ", depth)
	name := dir.Name
	if depth > 0 {
		name += "/"
	}
	pr.printf("%s%s\n", indent, pr.p.dir.Sprint(name))

	for _, f := range dir.Files {
		pr.printf("%s  [%s] %s\n", indent, pr.p.fileType(f.FileType), f.Name)
	}
	for i := range dir.Directories {
		pr.directory(&dir.Directories[i], depth+1)
	}
}

// Summary prints a table of file counts per type.
func (pr *Printer) Summary(counts []analyzer.TypeCount, total int) {
	pr.printf("%s Summary:\n", pr.p.header.Sprint("SUMMARY:"))

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.SeparateHeader = false
	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"Type", "Files", "Share"})
	for _, c := range counts {
		tbl.AppendRow(table.Row{string(c.Type), humanize.Comma(int64(c.Count)), output.FormatPercent(c.Share)})
	}
	tbl.AppendFooter(table.Row{"Total", humanize.Comma(int64(total)), ""})

	pr.printf("%s\n\n", tbl.Render())
}

// Units prints declared units of one kind. detailed adds selector, scope and
// sibling files.
func (pr *Printer) Units(kind model.UnitKind, units []model.DeclaredUnit, detailed bool) {
	plural := kind.Marker() + "s"
	pr.heading(strings.ToUpper(plural), string(kind)+"s", len(units))

	if len(units) == 0 {
		pr.printf("  No %s found\n", plural)
		return
	}

	for _, u := range units {
		pr.printf("  %s (%s)\n", pr.p.name.Sprint(u.Name), u.Path)
		if !detailed {
			continue
		}
		if u.Selector != "" {
			pr.printf("    Selector: %s\n", u.Selector)
		}
		if u.Scope != "" {
			pr.printf("    Injectable scope: %s\n", u.Scope)
		}
		if u.TemplatePath != "" {
			pr.printf("    Template: %s\n", u.TemplatePath)
		}
		if len(u.StylePaths) > 0 {
			pr.printf("    Styles:\n")
			for _, s := range u.StylePaths {
				pr.printf("      %s\n", s)
			}
		}
		if u.TestPath != "" {
			pr.printf("    Test: %s\n", u.TestPath)
		}
		pr.printf("\n")
	}
}

// Modules prints NgModules. detailed adds the non-empty metadata lists.
func (pr *Printer) Modules(mods []model.ModuleComposition, detailed bool) {
	pr.heading("MODULES", "Modules", len(mods))

	if len(mods) == 0 {
		pr.printf("  No modules found\n")
		return
	}

	for _, m := range mods {
		pr.printf("  %s (%s)\n", pr.p.name.Sprint(m.Name), m.Path)
		if !detailed {
			continue
		}
		lists := []struct {
			label string
			names []string
		}{
			{"Declarations", m.Declarations},
			{"Imports", m.Imports},
			{"Exports", m.Exports},
			{"Providers", m.Providers},
			{"Bootstrap", m.Bootstrap},
		}
		for _, l := range lists {
			if len(l.names) > 0 {
				pr.printf("    %s: %s\n", l.label, strings.Join(l.names, ", "))
			}
		}
		pr.printf("\n")
	}
}

// Dependencies prints edges grouped by source file. Sources are sorted; edges
// keep their source order within a group.
func (pr *Printer) Dependencies(edges []model.DependencyEdge) {
	pr.heading("DEPENDENCIES", "Dependencies", len(edges))

	if len(edges) == 0 {
		pr.printf("  No dependencies found\n")
		return
	}

	grouped := make(map[string][]model.DependencyEdge)
	for _, e := range edges {
		grouped[e.Source] = append(grouped[e.Source], e)
	}

	for _, source := range sortedKeys(grouped) {
		pr.printf("  %s:\n", source)
		for _, e := range grouped[source] {
			name := e.Name
			if e.Alias != "" {
				name += " as " + e.Alias
			}
			pr.printf("    %s -> %s (%s)\n", e.Target, pr.p.importKind(e.Kind), name)
		}
		pr.printf("\n")
	}
}

// Graph prints one node per source file stem with its distinct targets.
func (pr *Printer) Graph(edges []model.DependencyEdge) {
	pr.printf("\n%s Dependency Graph:\n", pr.p.header.Sprint("GRAPH:"))

	if len(edges) == 0 {
		pr.printf("  No dependencies found\n")
		return
	}

	for _, node := range BuildGraph(edges) {
		pr.printf("  %s %s:\n", pr.p.node.Sprint("Node:"), pr.p.name.Sprint(node.Source))
		for _, t := range node.Targets {
			pr.printf("    └─→ %s (%s)\n", pr.p.target.Sprint(t.Target), pr.p.importKind(t.Kind))
		}
		pr.printf("\n")
	}
}

// GraphNode is one source of the dependency graph.
type GraphNode struct {
	Source  string
	Targets []GraphTarget
}

// GraphTarget is a distinct (target, kind) pair imported by a GraphNode.
type GraphTarget struct {
	Target string
	Kind   model.ImportKind
}

// BuildGraph groups edges by source stem, dropping repeated (target, kind)
// pairs. Nodes and targets are sorted.
func BuildGraph(edges []model.DependencyEdge) []GraphNode {
	sets := make(map[string]map[GraphTarget]bool)
	for _, e := range edges {
		stem := graphStem(e.Source)
		if sets[stem] == nil {
			sets[stem] = make(map[GraphTarget]bool)
		}
		sets[stem][GraphTarget{Target: e.Target, Kind: e.Kind}] = true
	}

	nodes := make([]GraphNode, 0, len(sets))
	for _, stem := range sortedKeys(sets) {
		targets := make([]GraphTarget, 0, len(sets[stem]))
		for t := range sets[stem] {
			targets = append(targets, t)
		}
		slices.SortFunc(targets, func(a, b GraphTarget) int {
			if c := strings.Compare(a.Target, b.Target); c != 0 {
				return c
			}
			return strings.Compare(string(a.Kind), string(b.Kind))
		})
		nodes = append(nodes, GraphNode{Source: stem, Targets: targets})
	}
	return nodes
}

// graphStem drops the directory and the last extension: "src/app.module.ts"
// becomes "app.module".
func graphStem(source string) string {
	base := path.Base(source)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Routes prints the route forest as an indented tree.
func (pr *Printer) Routes(routes []model.RouteNode) {
	pr.heading("ROUTES", "Routes", len(routes))

	if len(routes) == 0 {
		pr.printf("  No routes found\n")
		return
	}

	for i := range routes {
		pr.route(&routes[i], 1)
	}
}

func (pr *Printer) route(r *model.RouteNode, depth int) {
	p := r.Path
	if p == "" {
		p = "/"
	}
	line := strings.Repeat("  ", depth) + pr.p.route.Sprint(p)
	if r.Component != "" {
		line += " -> " + pr.p.name.Sprint(r.Component)
	}
	if r.LazyModule != "" {
		line += " (lazy: " + pr.p.lazy.Sprint(r.LazyModule) + ")"
	}
	if r.RedirectTo != "" {
		line += " (redirect: " + pr.p.redirect.Sprint(r.RedirectTo) + ")"
	}
	pr.printf("%s\n", line)

	for i := range r.Children {
		pr.route(&r.Children[i], depth+1)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
