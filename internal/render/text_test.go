package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngmap/internal/model"
)

func TestPrinter_Routes(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, false)

	pr.Routes(sampleRoutes())
	require.NoError(t, pr.Err())

	want := "\nROUTES: Routes (3):\n" +
		"  a -> Foo\n" +
		"    b -> Bar\n" +
		"  / (redirect: home)\n" +
		"  admin (lazy: ./admin/admin.module#AdminModule)\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Empty(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, false)

	pr.Units(model.UnitComponent, nil, false)
	pr.Modules(nil, true)
	pr.Dependencies(nil)
	pr.Graph(nil)
	pr.Routes(nil)

	out := buf.String()
	for _, want := range []string{
		"COMPONENTS: Components (0):\n  No components found",
		"MODULES: Modules (0):\n  No modules found",
		"DEPENDENCIES: Dependencies (0):\n  No dependencies found",
		"GRAPH: Dependency Graph:\n  No dependencies found",
		"ROUTES: Routes (0):\n  No routes found",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrinter_UnitsDetailed(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, false)

	pr.Units(model.UnitComponent, []model.DeclaredUnit{{
		Kind:         model.UnitComponent,
		Name:         "AppComponent",
		Selector:     "app-root",
		Path:         "src/app/app.component.ts",
		TemplatePath: "src/app/app.component.html",
		StylePaths:   []string{"src/app/app.component.scss"},
		TestPath:     "src/app/app.component.spec.ts",
	}}, true)

	want := "\nCOMPONENTS: Components (1):\n" +
		"  AppComponent (src/app/app.component.ts)\n" +
		"    Selector: app-root\n" +
		"    Template: src/app/app.component.html\n" +
		"    Styles:\n" +
		"      src/app/app.component.scss\n" +
		"    Test: src/app/app.component.spec.ts\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_ModulesDetailed(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, false)

	pr.Modules([]model.ModuleComposition{{
		Name:         "AppModule",
		Path:         "src/app/app.module.ts",
		Declarations: []string{"A", "B"},
		Imports:      []string{},
		Exports:      []string{},
		Providers:    []string{"S"},
		Bootstrap:    []string{"A"},
	}}, true)

	out := buf.String()
	assert.Contains(t, out, "    Declarations: A, B\n")
	assert.Contains(t, out, "    Providers: S\n")
	assert.Contains(t, out, "    Bootstrap: A\n")
	assert.NotContains(t, out, "Imports:")
}

func TestPrinter_Dependencies(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, false)

	pr.Dependencies(sampleEdges())

	want := "\nDEPENDENCIES: Dependencies (4):\n" +
		"  src/app/app.module.ts:\n" +
		"    ./x -> Other (Foo)\n" +
		"    ./x -> Service (BarService)\n" +
		"    ./x -> Service (BazService)\n" +
		"\n" +
		"  src/main.ts:\n" +
		"    ./app/app.module -> Module (AppModule as Root)\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestBuildGraph(t *testing.T) {
	nodes := BuildGraph(sampleEdges())

	require.Len(t, nodes, 2)
	assert.Equal(t, "app.module", nodes[0].Source)
	assert.Equal(t, []GraphTarget{
		{Target: "./x", Kind: model.ImportOther},
		{Target: "./x", Kind: model.ImportService},
	}, nodes[0].Targets, "repeated (target, kind) pairs collapse")
	assert.Equal(t, "main", nodes[1].Source)
}

func TestPrinter_Graph(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf, false)

	pr.Graph(sampleEdges())

	out := buf.String()
	assert.Contains(t, out, "  Node: app.module:\n    └─→ ./x (Other)\n    └─→ ./x (Service)\n\n")
	assert.Contains(t, out, "  Node: main:\n    └─→ ./app/app.module (Module)\n")
	assert.Equal(t, 1, strings.Count(out, "(Service)"))
}

func TestPrinter_Structure(t *testing.T) {
	s := &model.ProjectStructure{Root: model.DirectoryNode{
		Name: "shop",
		Path: ".",
		Files: []model.FileNode{
			{Name: "angular.json", Path: "angular.json", FileType: model.FileConfig},
		},
		Directories: []model.DirectoryNode{{
			Name: "src",
			Path: "src",
			Files: []model.FileNode{
				{Name: "app.component.ts", Path: "src/app.component.ts", FileType: model.FileComponent},
				{Name: "app.module.ts", Path: "src/app.module.ts", FileType: model.FileModule},
				{Name: "main.ts", Path: "src/main.ts", FileType: model.FileOther},
			},
			Directories: []model.DirectoryNode{},
		}},
	}}

	var buf bytes.Buffer
	pr := NewPrinter(&buf, false)
	pr.Structure(s)
	require.NoError(t, pr.Err())

	out := buf.String()
	assert.Contains(t, out, "shop\n  [CF] angular.json\n  src/\n    [C] app.component.ts\n    [M] app.module.ts\n    [O] main.ts\n")
	assert.Contains(t, out, "SUMMARY: Summary:")
	assert.Contains(t, out, "Component")
	assert.Contains(t, out, "25.0%")
	assert.Regexp(t, `Type\s+Files\s+Share`, out)
	assert.Regexp(t, `Total\s+4`, out)
	assert.NotContains(t, out, "TOTAL")
}

func TestPrinter_ColoredOutputDiffers(t *testing.T) {
	var plain, colored bytes.Buffer
	NewPrinter(&plain, false).Routes(sampleRoutes())
	NewPrinter(&colored, true).Routes(sampleRoutes())

	assert.NotEqual(t, plain.String(), colored.String())
	assert.Contains(t, colored.String(), "\x1b[")
	assert.NotContains(t, plain.String(), "\x1b[")
}
