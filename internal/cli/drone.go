package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arcroute/graphio"
)

func newDroneCmd() *cobra.Command {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "drone <network>",
		Short: "Plan one drone circuit over every street",
		Long:  `Solve the Chinese Postman Problem on the undirected view of the network (a drone ignores one-way restrictions) and write the closed circuit.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			g, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			logger.Debug("network loaded", "path", args[0], "nodes", g.VertexCount(), "edges", g.EdgeCount())

			prog := newProgress(logger)
			flight, err := cfg.Planner(logger).Drone(ctx, g)
			if err != nil {
				return fmt.Errorf("drone: %w", err)
			}
			prog.done("Planned drone flight",
				"distance", flight.Distance,
				"deadhead", flight.Distance-flight.NetworkLength,
				"duration", flight.Duration)

			return out.write(cmd, func(w io.Writer, f graphio.Format) error {
				return graphio.WriteFlight(w, f, flight)
			})
		},
	}
	out.register(cmd)

	return cmd
}
