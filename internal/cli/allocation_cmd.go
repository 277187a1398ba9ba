package cli

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/contract"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newAllocationsCmd(app *App) *cobra.Command {
	var scenario, pool, period string

	cmd := &cobra.Command{
		Use:   "allocations",
		Short: "Show the pool-by-period allocation table",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.AllocationRequest{
				ScenarioID: scenario,
				Period:     domain.PeriodType(period),
			}
			if pool != "" {
				id, err := resolvePoolID(cmd.Context(), app, pool)
				if err != nil {
					return err
				}
				req.PoolID = id
			}

			resp, err := app.Consequences.Allocations(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatAllocations(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "", "Scenario ID (default: baseline)")
	cmd.Flags().StringVar(&pool, "pool", "", "Restrict to one pool")
	cmd.Flags().StringVar(&period, "period", "month", "Allocation period (month|quarter|year)")

	return cmd
}
