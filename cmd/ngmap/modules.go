package main

import (
	"context"

	"github.com/spf13/cobra"

	"ngmap/internal/render"
)

var modulesDetailed bool

var modulesCmd = &cobra.Command{
	Use:   "modules [path]",
	Short: "List NgModules and their metadata",
	Long: `List every NgModule found in *.module.ts files.

With --detailed, also shows the declarations, imports, exports, providers
and bootstrap lists of each module. Empty lists are omitted from text output
but always present in structured output.

Examples:
  ngmap modules
  ngmap modules ./shop --detailed
  ngmap modules --format=yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: withSession(func(ctx context.Context, s *session) error {
		mods, err := s.analyzer.Modules(ctx)
		if err != nil {
			return err
		}
		return s.emit("modules", len(mods), mods, func(pr *render.Printer) {
			pr.Modules(mods, modulesDetailed)
		})
	}),
}

func init() {
	modulesCmd.Flags().BoolVarP(&modulesDetailed, "detailed", "d", false, "Show the metadata lists of each module")
	rootCmd.AddCommand(modulesCmd)
}
