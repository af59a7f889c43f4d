package analyzer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ngmap/internal/config"
	"ngmap/internal/errors"
	"ngmap/internal/model"
)

// fixture is a small project laid out the way the Angular CLI generates one.
var fixture = map[string]string{
	"angular.json": "{}",
	"src/main.ts":  "import { AppModule } from './app/app.module';\n",
	"src/app/app.module.ts": `import { NgModule } from '@angular/core';
import { AppComponent } from './app.component';
import { LoginFormComponent } from './login/login-form.component';

@NgModule({
  declarations: [AppComponent, LoginFormComponent],
  imports: [AppRoutingModule],
  bootstrap: [AppComponent],
})
export class AppModule {}
`,
	"src/app/app-routing.module.ts": `const routes: Routes = [
  { path: '', component: HomeComponent },
  { path: 'admin', loadChildren: () => import('./admin/admin.module').then(m => m.AdminModule) },
];
export class AppRoutingModule {}
`,
	"src/app/app.component.ts": `@Component({ selector: 'app-root', templateUrl: './app.component.html' })
export class AppComponent {}
`,
	"src/app/app.component.html":    "<router-outlet></router-outlet>",
	"src/app/app.component.scss":    ":host {}",
	"src/app/app.component.spec.ts": "import { AppComponent } from './app.component';\n",
	"src/app/login/login-form.component.ts": `@Component({ selector: 'app-login-form' })
class Unexported {}
`,
	"src/app/admin/admin.routes.ts": `export const adminRoutes: Routes = [
  { path: 'users', component: UsersComponent, children: [{ path: ':id', component: UserComponent }] },
];
`,
	"src/app/core/auth.service.ts": `@Injectable({ providedIn: 'root' })
export class AuthService {}
`,
	"src/app/empty/.keep":               "",
	"node_modules/lib/lib.component.ts": "export class LibComponent {}",
	".angular/cache/x.component.ts":     "export class CachedComponent {}",
}

func writeFixture(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func newTestAnalyzer(t *testing.T, mutate func(*config.Config)) *Analyzer {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}
	return New(writeFixture(t, fixture), cfg, nil)
}

func TestAnalyzer_Components(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	units, err := a.Units(context.Background(), model.UnitComponent)
	require.NoError(t, err)
	require.Len(t, units, 2, "node_modules and .angular are skipped")

	app := units[0]
	assert.Equal(t, "AppComponent", app.Name)
	assert.Equal(t, "app-root", app.Selector)
	assert.Equal(t, "src/app/app.component.ts", app.Path)
	assert.Equal(t, "src/app/app.component.html", app.TemplatePath)
	assert.Equal(t, []string{"src/app/app.component.scss"}, app.StylePaths)
	assert.Equal(t, "src/app/app.component.spec.ts", app.TestPath, "siblings are found even when tests are filtered")

	login := units[1]
	assert.Equal(t, "LoginFormComponent", login.Name)
	assert.Equal(t, "app-login-form", login.Selector)
	assert.Empty(t, login.TemplatePath)
	assert.Empty(t, login.StylePaths)
}

func TestAnalyzer_ComponentsIncludingNodeModules(t *testing.T) {
	a := newTestAnalyzer(t, func(c *config.Config) { c.Analysis.IncludeNodeModules = true })

	units, err := a.Units(context.Background(), model.UnitComponent)
	require.NoError(t, err)

	var names []string
	for _, u := range units {
		names = append(names, u.Name)
	}
	assert.Contains(t, names, "LibComponent")
	assert.NotContains(t, names, "CachedComponent")
}

func TestAnalyzer_Services(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	units, err := a.Units(context.Background(), model.UnitService)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "AuthService", units[0].Name)
	assert.Equal(t, "root", units[0].Scope)
}

func TestAnalyzer_NoUnitsIsEmptyNotNil(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	units, err := a.Units(context.Background(), model.UnitPipe)
	require.NoError(t, err)
	require.NotNil(t, units)
	assert.Empty(t, units)
}

func TestAnalyzer_Modules(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	mods, err := a.Modules(context.Background())
	require.NoError(t, err)
	require.Len(t, mods, 2)

	// Traversal is lexical: app-routing.module.ts sorts before app.module.ts
	assert.Equal(t, "AppRoutingModule", mods[0].Name)
	assert.Empty(t, mods[0].Declarations)

	assert.Equal(t, "AppModule", mods[1].Name)
	assert.Equal(t, []string{"AppComponent", "LoginFormComponent"}, mods[1].Declarations)
	assert.Equal(t, []string{"AppRoutingModule"}, mods[1].Imports)
	assert.Equal(t, []string{"AppComponent"}, mods[1].Bootstrap)
}

func TestAnalyzer_Dependencies(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	edges, err := a.Dependencies(context.Background())
	require.NoError(t, err)

	bySource := map[string][]model.DependencyEdge{}
	for _, e := range edges {
		bySource[e.Source] = append(bySource[e.Source], e)
	}

	appModule := bySource["src/app/app.module.ts"]
	require.Len(t, appModule, 3)
	assert.Equal(t, "NgModule", appModule[0].Name)
	assert.Empty(t, appModule[0].Resolved, "package imports are not resolved")
	assert.Equal(t, model.ImportComponent, appModule[2].Kind)
	assert.Equal(t, "src/app/login/login-form.component", appModule[2].Resolved)

	assert.Len(t, bySource["src/main.ts"], 1)
	assert.NotContains(t, bySource, "src/app/app.component.spec.ts", "tests are filtered by default")
}

func TestAnalyzer_DependenciesWithTests(t *testing.T) {
	a := newTestAnalyzer(t, func(c *config.Config) { c.Analysis.IncludeTests = true })

	edges, err := a.Dependencies(context.Background())
	require.NoError(t, err)

	var sources []string
	for _, e := range edges {
		sources = append(sources, e.Source)
	}
	assert.Contains(t, sources, "src/app/app.component.spec.ts")
}

func TestAnalyzer_Routes(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	routes, err := a.Routes(context.Background())
	require.NoError(t, err)

	// admin/admin.routes.ts is visited before app-routing.module.ts
	require.Len(t, routes, 3)
	assert.Equal(t, "users", routes[0].Path)
	require.Len(t, routes[0].Children, 1)
	assert.Equal(t, ":id", routes[0].Children[0].Path)

	assert.Equal(t, "", routes[1].Path)
	assert.Equal(t, "HomeComponent", routes[1].Component)
	assert.Equal(t, "admin", routes[2].Path)
	assert.Equal(t, "./admin/admin.module#AdminModule", routes[2].LazyModule)
}

func TestIsRouteFile(t *testing.T) {
	assert.True(t, IsRouteFile("app-routing.module.ts"))
	assert.True(t, IsRouteFile("admin.routes.ts"))
	assert.False(t, IsRouteFile("app.module.ts"))
	assert.False(t, IsRouteFile("routing.service.ts"))
}

func TestAnalyzer_Structure(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	s, err := a.Structure(context.Background())
	require.NoError(t, err)

	root := s.Root
	assert.Equal(t, ".", root.Path)
	require.Len(t, root.Files, 1)
	assert.Equal(t, "angular.json", root.Files[0].Name)
	assert.Equal(t, model.FileConfig, root.Files[0].FileType)

	require.Len(t, root.Directories, 1, "node_modules and .angular are skipped")
	src := root.Directories[0]
	assert.Equal(t, "src", src.Name)

	app := src.Directories[0]
	assert.Equal(t, "src/app", app.Path)

	var dirs []string
	for _, d := range app.Directories {
		dirs = append(dirs, d.Name)
	}
	assert.Equal(t, []string{"admin", "core", "empty", "login"}, dirs)

	var files []string
	for _, f := range app.Files {
		files = append(files, f.Name)
	}
	assert.Equal(t, []string{"app-routing.module.ts", "app.component.html", "app.component.ts", "app.module.ts"}, files,
		"styles and tests are filtered by default")
}

func TestAnalyzer_StructureMaxDepth(t *testing.T) {
	a := newTestAnalyzer(t, func(c *config.Config) { c.Analysis.MaxDepth = 2 })

	s, err := a.Structure(context.Background())
	require.NoError(t, err)

	require.Len(t, s.Root.Directories, 1)
	src := s.Root.Directories[0]
	assert.Len(t, src.Files, 1, "main.ts is at depth 1")
	assert.Empty(t, src.Directories, "src/app is at depth 2 and not scanned")
}

func TestAnalyzer_StructurePrunesEmptyDirectories(t *testing.T) {
	a := New(writeFixture(t, map[string]string{
		"src/styles/theme.scss": "",
		"src/main.ts":           "",
	}), nil, nil)

	s, err := a.Structure(context.Background())
	require.NoError(t, err)

	src := s.Root.Directories[0]
	assert.Empty(t, src.Directories, "a directory holding only filtered files is pruned")
}

func TestSummary(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	s, err := a.Structure(context.Background())
	require.NoError(t, err)

	counts, total := Summary(s)
	assert.Equal(t, 10, total)

	sum := 0
	for i, c := range counts {
		sum += c.Count
		assert.Positive(t, c.Count)
		if i > 0 {
			assert.Less(t, counts[i-1].Type.Order(), c.Type.Order())
		}
	}
	assert.Equal(t, total, sum)
	assert.Equal(t, model.FileComponent, counts[0].Type)
	assert.Equal(t, 2, counts[0].Count)
}

func TestReadAll_PreservesOrder(t *testing.T) {
	root := writeFixture(t, map[string]string{"a.ts": "A", "b.ts": "B", "c.ts": "C"})
	paths := []string{filepath.Join(root, "c.ts"), filepath.Join(root, "a.ts"), filepath.Join(root, "b.ts")}

	files, err := ReadAll(context.Background(), root, paths, 2)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "c.ts", files[0].Path)
	assert.Equal(t, "C", files[0].Content)
	assert.Equal(t, "a.ts", files[1].Path)
	assert.Equal(t, "b.ts", files[2].Path)
}

func TestReadAll_UnreadableFileAborts(t *testing.T) {
	root := writeFixture(t, map[string]string{"a.ts": "A", "dir.ts/inner": ""})
	paths := []string{filepath.Join(root, "a.ts"), filepath.Join(root, "dir.ts")}

	files, err := ReadAll(context.Background(), root, paths, 4)
	require.Error(t, err)
	assert.Nil(t, files)
	assert.True(t, errors.Is(err, errors.FileUnreadable))
	assert.Contains(t, err.Error(), "dir.ts")
}

func TestAnalyzer_DirectoryNamedLikeSource(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"src/ok.component.ts":       "export class OkComponent {}",
		"src/broken.component.ts/x": "",
	})

	units, err := New(root, nil, nil).Units(context.Background(), model.UnitComponent)
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t, "OkComponent", units[0].Name)
}

func TestSource_SkipsLargeFiles(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"small.ts": "x",
		"large.ts": "0123456789",
	})
	opts := config.DefaultConfig().Analysis
	opts.MaxFileSizeBytes = 5

	src := NewSource(root, opts, newDiscardLogger())

	found, err := src.Collect(context.Background(), func(string) bool { return true })
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(root, "small.ts"), found[0])
}

func TestSource_IgnoreDirectories(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"src/a.ts":  "",
		"dist/b.ts": "",
		"e2e/c.ts":  "",
	})
	opts := config.DefaultConfig().Analysis
	opts.Ignore = []string{"dist", "e2e"}

	src := NewSource(root, opts, newDiscardLogger())
	found, err := src.Collect(context.Background(), func(string) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "a.ts")}, found)
}

func TestSource_CancelledContext(t *testing.T) {
	root := writeFixture(t, map[string]string{"a.ts": ""})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(root, config.DefaultConfig().Analysis, newDiscardLogger()).
		Collect(ctx, func(string) bool { return true })
	assert.ErrorIs(t, err, context.Canceled)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
