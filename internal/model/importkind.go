package model

import "strings"

// ImportKind classifies an imported identifier by its naming convention.
// It says nothing about what the identifier actually declares.
type ImportKind string

const (
	ImportComponent ImportKind = "Component"
	ImportService   ImportKind = "Service"
	ImportModule    ImportKind = "Module"
	ImportDirective ImportKind = "Directive"
	ImportPipe      ImportKind = "Pipe"
	ImportGuard     ImportKind = "Guard"
	ImportResolver  ImportKind = "Resolver"
	ImportModel     ImportKind = "Model"
	ImportOther     ImportKind = "Other"
)

// importSuffixes is checked in order; the first matching suffix wins
var importSuffixes = []struct {
	suffix string
	kind   ImportKind
}{
	{"Component", ImportComponent},
	{"Service", ImportService},
	{"Module", ImportModule},
	{"Directive", ImportDirective},
	{"Pipe", ImportPipe},
	{"Guard", ImportGuard},
	{"Resolver", ImportResolver},
	{"Model", ImportModel},
	{"Interface", ImportModel},
}

// ClassifyImport maps an identifier to its ImportKind by suffix, defaulting to Other
func ClassifyImport(name string) ImportKind {
	for _, s := range importSuffixes {
		if strings.HasSuffix(name, s.suffix) {
			return s.kind
		}
	}
	return ImportOther
}
