package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/patrol-go/interfaces/api"
)

// validateOptions holds options for the validate command.
type validateOptions struct {
	render bool
}

// newValidateCmd creates the validate command.
func (a *App) newValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [map]",
		Short: "Validate the configuration and parse a map without solving it",
		Long: `Validate the configuration (defaults, config file and flags) and, when a
map is given, parse it and print its size, obstruction count and start.

Examples:
  # Validate a configuration file
  patrol validate -c patrol.yaml

  # Check a map and draw it back
  patrol validate --render map.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.render, "render", false, "Print the parsed map")

	return cmd
}

// validate checks configuration and map.
func (a *App) validate(cmd *cobra.Command, args []string, opts *validateOptions) error {
	s, err := a.openSession(cmd, args, nil)
	if err != nil {
		return err
	}
	defer s.close()

	_, _ = fmt.Fprintf(a.stdout, "Configuration %q is valid\n", s.cfg.Name)
	if s.cfg.Input == "" {
		return nil
	}

	text, err := s.readMap()
	if err != nil {
		return err
	}
	g, err := s.solver.Parse(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("invalid map: %w", err)
	}

	printGrid(a, g)
	if opts.render {
		_, _ = fmt.Fprintf(a.stdout, "\n%s", g.Render())
	}
	return nil
}

func printGrid(a *App, g *api.Grid) {
	_, _ = fmt.Fprintf(a.stdout, "Map is valid\n")
	_, _ = fmt.Fprintf(a.stdout, "  Size: %dx%d\n", g.Bounds.Width(), g.Bounds.Height())
	_, _ = fmt.Fprintf(a.stdout, "  Obstructions: %d\n", g.Obstructions.Len())
	_, _ = fmt.Fprintf(a.stdout, "  Start: %s facing %s\n", g.Start.Position, g.Start.Facing)
}
