package analyzer

import (
	"regexp"

	"ngmap/internal/extract"
	"ngmap/internal/model"
)

var (
	routesArrayPattern = regexp.MustCompile(
		`\b[A-Za-z0-9_]*(?:[Rr]outes|ROUTES)\s*` +
			`(?::\s*(?:Routes|Route\s*\[\s*\]|Array\s*<\s*Route\s*>))?\s*=\s*\[`)
	loadChildrenKey   = regexp.MustCompile(`\bloadChildren\s*:`)
	lazyImportPattern = regexp.MustCompile(
		`^\s*\(\s*\)\s*=>\s*import\s*\(\s*['"]([^'"]+)['"]\s*\)` +
			`(?:\s*\.then\s*\(\s*\(?\s*([A-Za-z0-9_]+)\s*\)?\s*=>\s*([A-Za-z0-9_]+)\.([A-Za-z0-9_]+)\s*\))?`)
)

// RoutesArray returns the interior of the first routes array assigned in text,
// e.g. `const routes: Routes = [ ... ]` or `export const routes: Route[] = [ ... ]`
// in a standalone *.routes.ts file. It reports false when there is none or
// the array never closes.
func RoutesArray(text string) (string, bool) {
	loc := routesArrayPattern.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	open := loc[1] - 1
	end := extract.MatchingClose(text, open)
	if end < 0 {
		return "", false
	}
	return text[open+1 : end], true
}

// BuildRoutes builds one RouteNode per top-level object literal in interior,
// recursing into nested children arrays.
func BuildRoutes(interior string) []model.RouteNode {
	return buildRoutes(extract.DefaultFields, interior)
}

func buildRoutes(fields *extract.Fields, interior string) []model.RouteNode {
	nodes := []model.RouteNode{}
	for block := range extract.BalancedBlocks(interior, '{', '}') {
		nodes = append(nodes, buildRoute(fields, block))
	}
	return nodes
}

// buildRoute reads the fields of one route object. Lookups run on the shallow
// view so that fields of nested objects are not attributed to this route.
func buildRoute(fields *extract.Fields, block string) model.RouteNode {
	view := extract.Shallow(block)

	node := model.RouteNode{Children: []model.RouteNode{}}
	node.Path, _ = fields.String(view, "path")
	node.Component, _ = fields.Identifier(view, "component")
	node.RedirectTo, _ = fields.String(view, "redirectTo")
	node.LazyModule = lazyModule(fields, block, view)

	// The shallow view keeps the brackets of a depth-1 array, so its offsets
	// locate the same interior in the original block.
	if interior, offset, ok := fields.ArrayInterior(view, "children"); ok {
		node.Children = buildRoutes(fields, block[offset:offset+len(interior)])
	}
	return node
}

// lazyModule handles both `loadChildren: 'spec#Name'` and
// `loadChildren: () => import('spec').then(m => m.Name)`.
func lazyModule(fields *extract.Fields, block, view string) string {
	if spec, ok := fields.String(view, "loadChildren"); ok {
		return spec
	}
	loc := loadChildrenKey.FindStringIndex(view)
	if loc == nil {
		return ""
	}
	m := lazyImportPattern.FindStringSubmatch(block[loc[1]:])
	if m == nil {
		return ""
	}
	if m[4] != "" && m[2] == m[3] {
		return m[1] + "#" + m[4]
	}
	return m[1]
}
