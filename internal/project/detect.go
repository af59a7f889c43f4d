// Package project recognises the kind of front-end workspace being analyzed.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Framework identifies the front-end framework a workspace is built with.
type Framework string

const (
	FrameworkAngular Framework = "angular"
	FrameworkUnknown Framework = "unknown"
)

// Language represents the source language of a workspace.
type Language string

const (
	LangTypeScript Language = "typescript"
	LangJavaScript Language = "javascript"
	LangUnknown    Language = "unknown"
)

// Info is what detection learned about a workspace.
type Info struct {
	Framework Framework `json:"framework" yaml:"framework" toml:"framework"`
	Language  Language  `json:"language" yaml:"language" toml:"language"`
	// Manifest is the file that identified the framework, relative to the root
	Manifest string `json:"manifest,omitempty" yaml:"manifest,omitempty" toml:"manifest,omitempty"`
	// Version is the declared @angular/core version range, if any
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

type packageManifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Detect inspects root for workspace manifests. It never fails: unreadable or
// malformed manifests are treated as absent.
func Detect(root string) Info {
	info := Info{Framework: FrameworkUnknown, Language: detectLanguage(root)}

	if _, err := os.Stat(filepath.Join(root, "angular.json")); err == nil {
		info.Framework = FrameworkAngular
		info.Manifest = "angular.json"
	}

	if pkg, ok := readPackageManifest(root); ok {
		if v, found := pkg.dependency("@angular/core"); found {
			info.Framework = FrameworkAngular
			info.Version = v
			if info.Manifest == "" {
				info.Manifest = "package.json"
			}
		}
	}

	return info
}

// DetectFramework returns the framework of root and the manifest that identified it.
func DetectFramework(root string) (Framework, string, bool) {
	info := Detect(root)
	return info.Framework, info.Manifest, info.Framework != FrameworkUnknown
}

func readPackageManifest(root string) (*packageManifest, bool) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil, false
	}
	var pkg packageManifest
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, false
	}
	return &pkg, true
}

func (p *packageManifest) dependency(name string) (string, bool) {
	if v, ok := p.Dependencies[name]; ok {
		return v, true
	}
	v, ok := p.DevDependencies[name]
	return v, ok
}

// detectLanguage checks if a workspace is TypeScript or JavaScript.
func detectLanguage(root string) Language {
	if _, err := os.Stat(filepath.Join(root, "tsconfig.json")); err == nil {
		return LangTypeScript
	}
	if hasFileWithExt(root, ".ts") {
		return LangTypeScript
	}
	if hasFileWithExt(root, ".js") {
		return LangJavaScript
	}
	return LangUnknown
}

// hasFileWithExt checks the root and its src directory for a file with ext.
func hasFileWithExt(root, ext string) bool {
	for _, dir := range []string{root, filepath.Join(root, "src")} {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ext) {
				return true
			}
		}
	}
	return false
}

// DisplayName returns a human-readable name for the framework.
func (f Framework) DisplayName() string {
	switch f {
	case FrameworkAngular:
		return "Angular"
	default:
		return "Unknown"
	}
}
