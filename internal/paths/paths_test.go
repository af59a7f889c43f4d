package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalizePath(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "src", "app", "app.module.ts")
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte("export class AppModule {}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := CanonicalizePath(file, root)
	if err != nil {
		t.Fatalf("CanonicalizePath failed: %v", err)
	}
	if got != "src/app/app.module.ts" {
		t.Errorf("CanonicalizePath() = %q, want src/app/app.module.ts", got)
	}

	// Missing files are still canonicalized
	missing := filepath.Join(root, "src", "missing.ts")
	got, err = CanonicalizePath(missing, root)
	if err != nil {
		t.Fatalf("CanonicalizePath on missing file failed: %v", err)
	}
	if got != "src/missing.ts" {
		t.Errorf("CanonicalizePath() = %q, want src/missing.ts", got)
	}
}

func TestDisplay(t *testing.T) {
	root := t.TempDir()

	if got := Display(filepath.Join(root, "a", "b.ts"), root); got != "a/b.ts" {
		t.Errorf("Display() = %q, want a/b.ts", got)
	}

	outside := filepath.Join(filepath.Dir(root), "elsewhere.ts")
	if got := Display(outside, root); got != filepath.ToSlash(outside) {
		t.Errorf("Display() outside root = %q, want %q", got, filepath.ToSlash(outside))
	}
}

func TestResolveImport(t *testing.T) {
	tests := []struct {
		from      string
		specifier string
		want      string
	}{
		{"src/app/app.module.ts", "./x.service", "src/app/x.service"},
		{"src/app/feature/a.component.ts", "../shared/b", "src/app/shared/b"},
		{"src/app/app.module.ts", "@angular/core", "@angular/core"},
		{"src/app/app.module.ts", "rxjs/operators", "rxjs/operators"},
	}

	for _, tt := range tests {
		if got := ResolveImport(tt.from, tt.specifier); got != tt.want {
			t.Errorf("ResolveImport(%q, %q) = %q, want %q", tt.from, tt.specifier, got, tt.want)
		}
	}
}
