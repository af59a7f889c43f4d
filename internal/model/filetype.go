package model

import (
	"path/filepath"
	"strings"
)

// FileType is the category of a project file, derived from its name
type FileType string

const (
	FileComponent    FileType = "Component"
	FileService      FileType = "Service"
	FileModule       FileType = "Module"
	FileDirective    FileType = "Directive"
	FilePipe         FileType = "Pipe"
	FileTemplate     FileType = "Template"
	FileGuard        FileType = "Guard"
	FileResolver     FileType = "Resolver"
	FileModel        FileType = "Model"
	FileConfig       FileType = "Config"
	FileStyle        FileType = "Style"
	FileTest         FileType = "Test"
	FileNgRxAction   FileType = "NgRxAction"
	FileNgRxReducer  FileType = "NgRxReducer"
	FileNgRxEffect   FileType = "NgRxEffect"
	FileNgRxSelector FileType = "NgRxSelector"
	FileNgRxOther    FileType = "NgRxOther"
	FileOther        FileType = "Other"
)

// FileTypes lists every FileType in summary order
var FileTypes = []FileType{
	FileComponent, FileService, FileModule, FileDirective, FilePipe, FileTemplate,
	FileGuard, FileResolver, FileModel, FileConfig, FileStyle, FileTest,
	FileNgRxAction, FileNgRxReducer, FileNgRxEffect, FileNgRxSelector, FileNgRxOther,
	FileOther,
}

// Order returns the position of t in FileTypes, or len(FileTypes) if unknown
func (t FileType) Order() int {
	for i, ft := range FileTypes {
		if ft == t {
			return i
		}
	}
	return len(FileTypes)
}

// Indicator returns the short tag shown next to a file in the structure tree
func (t FileType) Indicator() string {
	switch t {
	case FileComponent:
		return "C"
	case FileService:
		return "S"
	case FileModule:
		return "M"
	case FileDirective:
		return "D"
	case FilePipe:
		return "P"
	case FileGuard:
		return "G"
	case FileResolver:
		return "R"
	case FileModel:
		return "I"
	case FileConfig:
		return "CF"
	case FileStyle:
		return "ST"
	case FileTest:
		return "T"
	case FileTemplate:
		return "H"
	case FileNgRxAction:
		return "NGA"
	case FileNgRxReducer:
		return "NGR"
	case FileNgRxEffect:
		return "NGE"
	case FileNgRxSelector:
		return "NGS"
	case FileNgRxOther:
		return "NGO"
	default:
		return "O"
	}
}

var fileSuffixes = []struct {
	suffix string
	typ    FileType
}{
	{".action.ts", FileNgRxAction},
	{".html", FileTemplate},
	{".reducer.ts", FileNgRxReducer},
	{".effects.ts", FileNgRxEffect},
	{".selector.ts", FileNgRxSelector},
	{".ngrx.ts", FileNgRxOther},
	{".component.ts", FileComponent},
	{".service.ts", FileService},
	{".module.ts", FileModule},
	{".directive.ts", FileDirective},
	{".pipe.ts", FilePipe},
	{".guard.ts", FileGuard},
	{".resolver.ts", FileResolver},
	{".model.ts", FileModel},
	{".interface.ts", FileModel},
}

// ClassifyFile returns the FileType for a file name (not a path)
func ClassifyFile(name string) FileType {
	for _, s := range fileSuffixes {
		if strings.HasSuffix(name, s.suffix) {
			return s.typ
		}
	}
	switch {
	case name == "tsconfig.json" || name == "angular.json":
		return FileConfig
	case strings.HasSuffix(name, ".spec.ts"):
		return FileTest
	case IsStyleFile(name):
		return FileStyle
	default:
		return FileOther
	}
}

// StyleExtensions are the stylesheet extensions recognised next to components
var StyleExtensions = []string{"css", "scss", "sass", "less"}

// IsStyleFile reports whether name has a stylesheet extension
func IsStyleFile(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	for _, e := range StyleExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsTestFile reports whether name looks like a unit test file
func IsTestFile(name string) bool {
	return strings.Contains(name, ".spec.")
}
