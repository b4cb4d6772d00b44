package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/patrol-go/infrastructure/input"
)

// newWatchCmd creates the watch command.
func (a *App) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [map]",
		Short: "Re-solve a map every time the file changes",
		Long: `Solve the map, then watch the file and solve it again after each change
until interrupted. Bursts of writes are coalesced (watch.debounce).

Examples:
  patrol watch map.txt
  patrol watch --log-level info map.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd, args)
		},
	}
}

func (a *App) watch(cmd *cobra.Command, args []string) error {
	s, err := a.openSession(cmd, args, nil)
	if err != nil {
		return err
	}
	defer s.close()

	if s.cfg.Input == "" {
		return ErrNoInput
	}

	handler := func(ctx context.Context, contents string) {
		sol, err := s.solver.SolvePart(ctx, contents, s.cfg.Analysis.Part)
		stamp := time.Now().Format(time.TimeOnly)
		if err != nil {
			_, _ = fmt.Fprintf(a.stderr, "%s Error: %v\n", stamp, err)
			return
		}
		if sol.Loops != nil {
			_, _ = fmt.Fprintf(a.stdout, "%s visited=%s loops=%s\n", stamp, sol.Visited.Answer(), sol.Loops.Answer())
			return
		}
		_, _ = fmt.Fprintf(a.stdout, "%s visited=%s\n", stamp, sol.Visited.Answer())
	}

	w, err := input.NewWatcher(s.cfg.Input, handler, input.WithDebounce(s.cfg.Watch.Debounce.Duration()))
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.stderr, "Watching %s (Ctrl+C to stop)\n", w.Path())
	return w.Run(cmd.Context())
}
