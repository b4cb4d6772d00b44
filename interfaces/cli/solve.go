package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/patrol-go/interfaces/api"
)

// solveOptions holds options for the solve command.
type solveOptions struct {
	jsonOutput bool
}

// newVisitedCmd creates the visited command.
func (a *App) newVisitedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visited [map]",
		Short: "Count the cells the guard visits before leaving the map",
		Long: `Count the distinct cells the guard occupies, including the start, from
the initial position until it steps off the map.

Use "-" to read the map from stdin.

Examples:
  patrol visited map.txt
  cat map.txt | patrol visited -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.answer(cmd, args, api.PartVisited)
		},
	}
}

// newLoopsCmd creates the loops command.
func (a *App) newLoopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loops [map]",
		Short: "Count the obstruction placements that trap the guard",
		Long: `Count the cells where one extra obstruction would make the guard walk
in a loop forever. Only cells on the guard's original route, other than the
start, are tried. Candidates are evaluated concurrently (see --workers).

Examples:
  patrol loops map.txt
  patrol loops --workers 8 map.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.answer(cmd, args, api.PartLoops)
		},
	}
}

// answer prints the single answer for part.
func (a *App) answer(cmd *cobra.Command, args []string, part api.Part) error {
	s, err := a.openSession(cmd, args, &part)
	if err != nil {
		return err
	}
	defer s.close()

	text, err := s.readMap()
	if err != nil {
		return err
	}

	sol, err := s.solver.SolvePart(cmd.Context(), text, part)
	if err != nil {
		return err
	}

	if part == api.PartLoops {
		_, _ = fmt.Fprintln(a.stdout, sol.Loops.Answer())
		return nil
	}
	_, _ = fmt.Fprintln(a.stdout, sol.Visited.Answer())
	return nil
}

// newSolveCmd creates the solve command.
func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [map]",
		Short: "Compute the answers selected by analysis.part",
		Long: `Parse the map once and compute the visited count and the loop count
(or only the part selected by analysis.part in the configuration).

Examples:
  patrol solve map.txt
  patrol solve --json map.txt
  patrol solve -c patrol.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

// solve prints every requested answer.
func (a *App) solve(cmd *cobra.Command, args []string, opts *solveOptions) error {
	s, err := a.openSession(cmd, args, nil)
	if err != nil {
		return err
	}
	defer s.close()

	text, err := s.readMap()
	if err != nil {
		return err
	}

	sol, err := s.solver.SolvePart(cmd.Context(), text, s.cfg.Analysis.Part)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return a.writeSolutionJSON(sol)
	}

	_, _ = fmt.Fprintf(a.stdout, "visited: %s\n", sol.Visited.Answer())
	if sol.Loops != nil {
		_, _ = fmt.Fprintf(a.stdout, "loops:   %s\n", sol.Loops.Answer())
	}
	return nil
}

func (a *App) writeSolutionJSON(sol *api.Solution) error {
	output := map[string]any{
		"bounds":       sol.Grid.Bounds,
		"start":        sol.Grid.Start,
		"visited":      sol.Visited.Count(),
		"steps":        sol.Visited.Steps,
		"pivots":       sol.Visited.Pivots,
		"track_run_id": sol.Visited.Run.ID,
		"duration":     sol.Duration.String(),
	}
	if sol.Loops != nil {
		output["loops"] = sol.Loops.Count()
		output["loop_positions"] = sol.Loops.Positions
		output["workers"] = sol.Loops.Workers
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
