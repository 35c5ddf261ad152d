package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arcroute/fleet"
	"github.com/katalvlaran/arcroute/graphio"
)

func newFleetCmd() *cobra.Command {
	var (
		out      outputFlags
		vehicles int
		workers  int
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "fleet <network>",
		Short: "Split the network among snow plows and route each one",
		Long: `Partition the network into one region per vehicle (Girvan-Newman), reconnect every region, solve its Chinese Postman circuit and turn the circuit into a drivable route that respects one-way streets.

Regions that cannot be routed are reported under "failures"; with --strict the command then fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			if cmd.Flags().Changed("vehicles") {
				cfg.Fleet.Vehicles = vehicles
			}
			if cmd.Flags().Changed("workers") {
				cfg.Fleet.Workers = workers
			}
			if cmd.Flags().Changed("strict") {
				cfg.Fleet.Strict = strict
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("network loaded", "path", args[0], "nodes", g.VertexCount(), "edges", g.EdgeCount())

			prog := newProgress(logger)
			plan, planErr := cfg.Planner(logger).Plan(ctx, g, cfg.Fleet.Vehicles)
			if plan == nil {
				return fmt.Errorf("fleet: %w", planErr)
			}
			if planErr != nil && !errors.Is(planErr, fleet.ErrPartialPlan) {
				return fmt.Errorf("fleet: %w", planErr)
			}
			prog.done(fmt.Sprintf("Planned %d routes", plan.Succeeded()),
				"total", plan.TotalDistance,
				"makespan", plan.Makespan,
				"failed", len(plan.Failures))

			if err := out.write(cmd, func(w io.Writer, f graphio.Format) error {
				return graphio.WriteRoutes(w, f, plan)
			}); err != nil {
				return err
			}
			if planErr != nil && cfg.Fleet.Strict {
				return fmt.Errorf("fleet: %w", planErr)
			}

			return nil
		},
	}
	out.register(cmd)
	cmd.Flags().IntVarP(&vehicles, "vehicles", "n", 1, "number of vehicles (overrides [fleet] vehicles)")
	cmd.Flags().IntVar(&workers, "workers", 0, "regions routed concurrently, 0 for GOMAXPROCS")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any region cannot be routed")

	return cmd
}
