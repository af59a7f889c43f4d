package analyzer

import (
	"regexp"
	"strings"

	"ngmap/internal/model"
)

var (
	namedImportPattern = regexp.MustCompile(`import\s+(?:type\s+)?\{([^}]+)\}\s+from\s+['"]([^'"]+)['"]`)
	aliasPattern       = regexp.MustCompile(`^(\S+)\s+as\s+(\S+)$`)
)

// ExtractDependencies returns one edge per name imported through a braced
// import statement in text, in source order. Default, namespace and
// side-effect imports produce no edges.
func ExtractDependencies(path, text string) []model.DependencyEdge {
	edges := []model.DependencyEdge{}
	for _, m := range namedImportPattern.FindAllStringSubmatch(text, -1) {
		target := m[2]
		for _, item := range strings.Split(m[1], ",") {
			name, alias := parseImportName(item)
			if name == "" {
				continue
			}
			edges = append(edges, model.DependencyEdge{
				Source: path,
				Target: target,
				Name:   name,
				Alias:  alias,
				Kind:   model.ClassifyImport(name),
			})
		}
	}
	return edges
}

// parseImportName splits "type X as Y" into the exported name X and alias Y.
func parseImportName(item string) (name, alias string) {
	item = strings.Join(strings.Fields(item), " ")
	item = strings.TrimPrefix(item, "type ")
	if m := aliasPattern.FindStringSubmatch(item); m != nil {
		return m[1], m[2]
	}
	return item, ""
}
