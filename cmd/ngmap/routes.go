package main

import (
	"context"

	"github.com/spf13/cobra"

	"ngmap/internal/render"
)

var routesCmd = &cobra.Command{
	Use:   "routes [path]",
	Short: "Print routing trees",
	Long: `Print the routing trees declared in *-routing.module.ts and *.routes.ts
files. Nested children, lazy-loaded modules and redirects are shown.

Examples:
  ngmap routes
  ngmap routes ./shop --format=toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: withSession(func(ctx context.Context, s *session) error {
		routes, err := s.analyzer.Routes(ctx)
		if err != nil {
			return err
		}
		return s.emit("routes", len(routes), routes, func(pr *render.Printer) {
			pr.Routes(routes)
		})
	}),
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
