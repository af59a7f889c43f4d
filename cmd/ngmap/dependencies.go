package main

import (
	"context"

	"github.com/spf13/cobra"

	"ngmap/internal/render"
)

var dependenciesGraph bool

var dependenciesCmd = &cobra.Command{
	Use:   "dependencies [path]",
	Short: "List named imports of every TypeScript file",
	Long: `List one edge per named import in every *.ts file, classified by the
imported name (Component, Service, Module, ...).

With --graph, prints one node per source file with its distinct targets. In
structured output, --graph replaces the edge list with the grouped graph.

Examples:
  ngmap dependencies
  ngmap dependencies --graph
  ngmap dependencies --json -o deps.json.zst`,
	Args: cobra.MaximumNArgs(1),
	RunE: withSession(func(ctx context.Context, s *session) error {
		edges, err := s.analyzer.Dependencies(ctx)
		if err != nil {
			return err
		}
		if dependenciesGraph {
			nodes := render.BuildGraph(edges)
			return s.emit("graph", len(nodes), nodes, func(pr *render.Printer) {
				pr.Graph(edges)
			})
		}
		return s.emit("dependencies", len(edges), edges, func(pr *render.Printer) {
			pr.Dependencies(edges)
		})
	}),
}

func init() {
	dependenciesCmd.Flags().BoolVarP(&dependenciesGraph, "graph", "g", false, "Group edges into a graph by source file")
	rootCmd.AddCommand(dependenciesCmd)
}
