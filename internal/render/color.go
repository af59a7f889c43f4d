package render

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"ngmap/internal/model"
)

// ColorEnabled resolves a color mode ("auto", "always", "never") for w. In auto
// mode color is used only on a terminal and only when NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	header   *color.Color
	name     *color.Color
	dir      *color.Color
	route    *color.Color
	target   *color.Color
	lazy     *color.Color
	redirect *color.Color
	node     *color.Color
	imports  map[model.ImportKind]*color.Color
	files    map[model.FileType]*color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header:   color.New(color.FgGreen, color.Bold),
		name:     color.New(color.FgYellow),
		dir:      color.New(color.FgBlue, color.Bold),
		route:    color.New(color.FgGreen),
		target:   color.New(color.FgGreen),
		lazy:     color.New(color.FgCyan),
		redirect: color.New(color.FgMagenta),
		node:     color.New(color.FgCyan),
		imports: map[model.ImportKind]*color.Color{
			model.ImportComponent: color.New(color.FgCyan),
			model.ImportService:   color.New(color.FgGreen),
			model.ImportModule:    color.New(color.FgYellow),
			model.ImportDirective: color.New(color.FgMagenta),
			model.ImportPipe:      color.New(color.FgBlue),
			model.ImportGuard:     color.New(color.FgRed),
			model.ImportResolver:  color.New(color.FgHiRed),
			model.ImportModel:     color.New(color.FgHiBlue),
			model.ImportOther:     color.New(color.Reset),
		},
		files: map[model.FileType]*color.Color{
			model.FileComponent:    color.New(color.FgMagenta),
			model.FileService:      color.New(color.FgGreen),
			model.FileModule:       color.New(color.FgYellow),
			model.FileDirective:    color.New(color.FgCyan),
			model.FilePipe:         color.New(color.FgBlue),
			model.FileGuard:        color.New(color.FgRed),
			model.FileResolver:     color.New(color.FgHiRed),
			model.FileModel:        color.New(color.FgHiBlue),
			model.FileConfig:       color.New(color.FgHiYellow),
			model.FileStyle:        color.New(color.FgHiMagenta),
			model.FileTest:         color.New(color.FgHiGreen),
			model.FileTemplate:     color.New(color.FgWhite),
			model.FileNgRxAction:   color.RGB(255, 165, 0),
			model.FileNgRxReducer:  color.RGB(75, 0, 130),
			model.FileNgRxEffect:   color.RGB(60, 179, 113),
			model.FileNgRxSelector: color.RGB(220, 20, 60),
			model.FileNgRxOther:    color.New(color.FgHiWhite),
			model.FileOther:        color.New(color.Reset),
		},
	}

	all := []*color.Color{p.header, p.name, p.dir, p.route, p.target, p.lazy, p.redirect, p.node}
	for _, c := range p.imports {
		all = append(all, c)
	}
	for _, c := range p.files {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) importKind(k model.ImportKind) string {
	if c, ok := p.imports[k]; ok {
		return c.Sprint(string(k))
	}
	return string(k)
}

func (p palette) fileType(t model.FileType) string {
	if c, ok := p.files[t]; ok {
		return c.Sprint(t.Indicator())
	}
	return t.Indicator()
}
