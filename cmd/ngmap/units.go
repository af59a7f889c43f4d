package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ngmap/internal/model"
	"ngmap/internal/render"
)

var unitsDetailed bool

// One subcommand per declared-unit kind: components, services, directives,
// pipes, guards, resolvers.
func init() {
	for _, kind := range model.UnitKinds {
		plural := kind.Marker() + "s"
		cmd := &cobra.Command{
			Use:   plural + " [path]",
			Short: fmt.Sprintf("List %s declared in *%s files", plural, kind.FileSuffix()),
			Long: fmt.Sprintf(`List every %[1]s found in *%[2]s files with the name of its class.

With --detailed, also shows %[3]s sibling template, style and test files.

Examples:
  ngmap %[4]s
  ngmap %[4]s ./shop --detailed
  ngmap %[4]s --json`, strings.ToLower(string(kind)), kind.FileSuffix(), detailNote(kind), plural),
			Args: cobra.MaximumNArgs(1),
			RunE: runUnits(kind),
		}
		cmd.Flags().BoolVarP(&unitsDetailed, "detailed", "d", false, "Show selector, scope and sibling files")
		rootCmd.AddCommand(cmd)
	}
}

func detailNote(kind model.UnitKind) string {
	switch {
	case kind.HasSelector():
		return "the selector and"
	case kind == model.UnitService:
		return "the providedIn scope and"
	default:
		return "the"
	}
}

func runUnits(kind model.UnitKind) func(*cobra.Command, []string) error {
	return withSession(func(ctx context.Context, s *session) error {
		units, err := s.analyzer.Units(ctx, kind)
		if err != nil {
			return err
		}
		return s.emit(kind.Marker()+"s", len(units), units, func(pr *render.Printer) {
			pr.Units(kind, units, unitsDetailed)
		})
	})
}
