// Package analyzer turns project source text into model entities.
//
// The builders in this file are pure: they take a path and the file text and
// never touch the filesystem. A field the source does not contain is simply
// absent from the result; nothing here returns an error.
package analyzer

import (
	"regexp"
	"strings"

	"ngmap/internal/extract"
	"ngmap/internal/model"
	"ngmap/internal/paths"
)

var classNamePattern = regexp.MustCompile(`export\s+(?:default\s+)?(?:abstract\s+)?class\s+([A-Za-z0-9_]+)`)

// moduleLists are the NgModule metadata arrays, in ModuleComposition field order
var moduleLists = []string{"declarations", "imports", "exports", "providers", "bootstrap"}

// ClassName returns the first exported class name declared in text.
func ClassName(text string) (string, bool) {
	m := classNamePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// stemFor strips the directory and the ".<marker>.ts" suffix from path.
func stemFor(path, marker string) string {
	base := paths.NormalizePath(path)
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	base = strings.TrimSuffix(base, ".ts")
	return strings.TrimSuffix(base, "."+marker)
}

func unitName(text, path, marker, suffix string) string {
	if name, ok := ClassName(text); ok {
		return name
	}
	return extract.SynthesizeName(stemFor(path, marker), suffix)
}

// BuildUnit builds the DeclaredUnit of the given kind declared in text.
func BuildUnit(kind model.UnitKind, path, text string) model.DeclaredUnit {
	return buildUnit(extract.DefaultFields, kind, path, text)
}

func buildUnit(fields *extract.Fields, kind model.UnitKind, path, text string) model.DeclaredUnit {
	unit := model.DeclaredUnit{
		Kind: kind,
		Name: unitName(text, path, kind.Marker(), kind.Suffix()),
		Path: path,
	}
	if kind.HasSelector() {
		unit.Selector, _ = fields.String(text, "selector")
	}
	unit.Scope, _ = fields.String(text, "providedIn")
	return unit
}

// BuildModule builds the ModuleComposition declared in text. Each metadata list
// is empty, never nil, when the field is missing.
func BuildModule(path, text string) model.ModuleComposition {
	return buildModule(extract.DefaultFields, path, text)
}

func buildModule(fields *extract.Fields, path, text string) model.ModuleComposition {
	lists := make([][]string, len(moduleLists))
	for i, name := range moduleLists {
		names, ok := fields.List(text, name)
		if !ok {
			names = []string{}
		}
		lists[i] = names
	}

	return model.ModuleComposition{
		Name:         unitName(text, path, "module", "Module"),
		Path:         path,
		Declarations: lists[0],
		Imports:      lists[1],
		Exports:      lists[2],
		Providers:    lists[3],
		Bootstrap:    lists[4],
	}
}
