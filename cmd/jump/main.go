// Command jump solves peg-jump board puzzles described by a JSON or YAML
// definition file, printing every discovered move sequence.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cyberfrontiers/jump/config"
	"github.com/cyberfrontiers/jump/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("jump failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		file   string
		method string
		scope  string
	)

	cmd := &cobra.Command{
		Use:           "jump",
		Short:         "A general peg jump game solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, file, method, scope)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "puzzle definition file (JSON or YAML)")
	cmd.Flags().StringVar(&method, "method", "", "override search method: DEPTH_FIRST or BREADTH_FIRST")
	cmd.Flags().StringVar(&scope, "scope", "", "override solution scope: SINGLE or MULTIPLE")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// run loads the definition, applies CLI overrides, searches, and reports.
// Configuration errors surface before any search is attempted.
func run(cmd *cobra.Command, file, method, scope string) error {
	cfg, err := config.Load(file)
	if err != nil {
		return err
	}

	opts := []solver.Option{
		solver.WithContext(cmd.Context()),
		solver.WithMethod(cfg.Method),
		solver.WithScope(cfg.Scope),
	}
	if method != "" {
		m, err := solver.ParseMethod(method)
		if err != nil {
			return err
		}
		opts = append(opts, solver.WithMethod(m))
	}
	if scope != "" {
		s, err := solver.ParseScope(scope)
		if err != nil {
			return err
		}
		opts = append(opts, solver.WithScope(s))
	}

	slog.Info("solving", "puzzle", cfg.Description,
		"nodes", cfg.Board.Nodes(), "edges", cfg.Board.Edges(), "pegs", cfg.Start.Len())

	solutions, err := solver.Solve(cfg.Board, cfg.Start, cfg.Goal(), opts...)
	if err != nil {
		return err
	}

	for i, solution := range solutions {
		slog.Info("solution", "index", i, "steps", solution.Len(), "moves", solution.String())
	}
	slog.Info("search complete", "solutions", len(solutions))

	return nil
}
