// Package render presents analysis results as colored text or as structured
// documents.
package render

import (
	"time"

	"github.com/google/uuid"

	"ngmap/internal/project"
	"ngmap/internal/version"
)

// Report wraps one analysis result for structured output.
type Report struct {
	Tool        string        `json:"tool" yaml:"tool" toml:"tool"`
	Version     string        `json:"version" yaml:"version" toml:"version"`
	RunID       string        `json:"runId" yaml:"runId" toml:"runId"`
	GeneratedAt time.Time     `json:"generatedAt" yaml:"generatedAt" toml:"generatedAt"`
	Root        string        `json:"root" yaml:"root" toml:"root"`
	Project     *project.Info `json:"project,omitempty" yaml:"project,omitempty" toml:"project,omitempty"`
	Kind        string        `json:"kind" yaml:"kind" toml:"kind"`
	Count       int           `json:"count" yaml:"count" toml:"count"`
	Data        any           `json:"data" yaml:"data" toml:"data"`
}

// NewReport builds a report for data of the given kind, e.g. "components".
func NewReport(kind, root string, count int, data any) *Report {
	return &Report{
		Tool:        version.Tool,
		Version:     version.Version,
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Truncate(time.Second),
		Root:        root,
		Kind:        kind,
		Count:       count,
		Data:        data,
	}
}

// WithProject attaches detected workspace information.
func (r *Report) WithProject(info project.Info) *Report {
	r.Project = &info
	return r
}
