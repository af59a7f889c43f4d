// Package model defines the structural facts extracted from a front-end project.
// Values are built once per extraction pass and never mutated afterwards.
package model

// UnitKind identifies the class-like construct a DeclaredUnit describes
type UnitKind string

const (
	UnitComponent UnitKind = "Component"
	UnitService   UnitKind = "Service"
	UnitDirective UnitKind = "Directive"
	UnitPipe      UnitKind = "Pipe"
	UnitGuard     UnitKind = "Guard"
	UnitResolver  UnitKind = "Resolver"
)

// UnitKinds lists every declared-unit kind in display order
var UnitKinds = []UnitKind{UnitComponent, UnitService, UnitDirective, UnitPipe, UnitGuard, UnitResolver}

// Suffix returns the class-name suffix conventionally used for the kind
func (k UnitKind) Suffix() string {
	return string(k)
}

// Marker returns the file-name marker for the kind, e.g. "component"
func (k UnitKind) Marker() string {
	switch k {
	case UnitComponent:
		return "component"
	case UnitService:
		return "service"
	case UnitDirective:
		return "directive"
	case UnitPipe:
		return "pipe"
	case UnitGuard:
		return "guard"
	case UnitResolver:
		return "resolver"
	default:
		return ""
	}
}

// FileSuffix returns the source file suffix for the kind, e.g. ".component.ts"
func (k UnitKind) FileSuffix() string {
	return "." + k.Marker() + ".ts"
}

// HasSelector reports whether units of this kind carry a template selector
func (k UnitKind) HasSelector() bool {
	return k == UnitComponent || k == UnitDirective
}

// DeclaredUnit is one class-like declaration found in one file
type DeclaredUnit struct {
	Kind UnitKind `json:"kind" yaml:"kind" toml:"kind"`

	// Name is the declared class name, or a name synthesized from the file name
	Name string `json:"name" yaml:"name" toml:"name"`

	// Selector is the template selector; empty when absent
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty" toml:"selector,omitempty"`

	// Scope is the providedIn injection scope; empty when absent
	Scope string `json:"injectableScope,omitempty" yaml:"injectableScope,omitempty" toml:"injectableScope,omitempty"`

	Path string `json:"path" yaml:"path" toml:"path"`

	// Sibling files following the <stem>.<kind>.<ext> convention
	TemplatePath string   `json:"templatePath,omitempty" yaml:"templatePath,omitempty" toml:"templatePath,omitempty"`
	StylePaths   []string `json:"stylePaths,omitempty" yaml:"stylePaths,omitempty" toml:"stylePaths,omitempty"`
	TestPath     string   `json:"testPath,omitempty" yaml:"testPath,omitempty" toml:"testPath,omitempty"`
}

// ModuleComposition is an NgModule and the identifiers referenced by its metadata.
// Lists keep first-seen order and may contain duplicates.
type ModuleComposition struct {
	Name         string   `json:"name" yaml:"name" toml:"name"`
	Path         string   `json:"path" yaml:"path" toml:"path"`
	Declarations []string `json:"declarations" yaml:"declarations" toml:"declarations"`
	Imports      []string `json:"imports" yaml:"imports" toml:"imports"`
	Exports      []string `json:"exports" yaml:"exports" toml:"exports"`
	Providers    []string `json:"providers" yaml:"providers" toml:"providers"`
	Bootstrap    []string `json:"bootstrap" yaml:"bootstrap" toml:"bootstrap"`
}

// DependencyEdge is one named import from one file. A statement importing several
// names produces one edge per name, so edges may repeat (source, target).
type DependencyEdge struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	// Target is the module specifier exactly as written
	Target string     `json:"target" yaml:"target" toml:"target"`
	Name   string     `json:"name" yaml:"name" toml:"name"`
	Alias  string     `json:"alias,omitempty" yaml:"alias,omitempty" toml:"alias,omitempty"`
	Kind   ImportKind `json:"importType" yaml:"importType" toml:"importType"`
	// Resolved is the project-relative target of a relative specifier
	Resolved string `json:"resolved,omitempty" yaml:"resolved,omitempty" toml:"resolved,omitempty"`
}

// RouteNode is one entry of a routing tree. Children mirror the source nesting.
type RouteNode struct {
	Path       string      `json:"path" yaml:"path" toml:"path"`
	Component  string      `json:"component,omitempty" yaml:"component,omitempty" toml:"component,omitempty"`
	LazyModule string      `json:"lazyModule,omitempty" yaml:"lazyModule,omitempty" toml:"lazyModule,omitempty"`
	RedirectTo string      `json:"redirectTo,omitempty" yaml:"redirectTo,omitempty" toml:"redirectTo,omitempty"`
	Children   []RouteNode `json:"children" yaml:"children" toml:"children"`
}

// ProjectStructure is the filtered directory tree of a project
type ProjectStructure struct {
	Root DirectoryNode `json:"root" yaml:"root" toml:"root"`
}

// DirectoryNode is a directory holding at least one kept file somewhere below it
type DirectoryNode struct {
	Name        string          `json:"name" yaml:"name" toml:"name"`
	Path        string          `json:"path" yaml:"path" toml:"path"`
	Directories []DirectoryNode `json:"directories" yaml:"directories" toml:"directories"`
	Files       []FileNode      `json:"files" yaml:"files" toml:"files"`
}

// FileNode is a classified file
type FileNode struct {
	Name     string   `json:"name" yaml:"name" toml:"name"`
	Path     string   `json:"path" yaml:"path" toml:"path"`
	FileType FileType `json:"fileType" yaml:"fileType" toml:"fileType"`
}
