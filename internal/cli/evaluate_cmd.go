package cli

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/contract"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newEvaluateCmd(app *App) *cobra.Command {
	var scenario, initiative, period string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Analyze the current roadmap for violations and conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewEvaluateRequest()
			req.ScenarioID = scenario
			req.Period = domain.PeriodType(period)

			if initiative != "" {
				id, err := resolveInitiativeID(cmd.Context(), app, initiative)
				if err != nil {
					return err
				}
				req.InitiativeID = id
			}

			resp, err := app.Consequences.Evaluate(cmd.Context(), req)
			if err != nil {
				return err
			}

			if resp.Issues != nil {
				fmt.Printf("%s\n", formatter.FormatInitiativeIssues(resp.Issues))
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatReport(&resp.Report))
			return nil
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "", "Scenario ID (default: baseline)")
	cmd.Flags().StringVar(&initiative, "initiative", "", "Restrict the report to one initiative")
	cmd.Flags().StringVar(&period, "period", "month", "Allocation period (month|quarter|year)")

	return cmd
}
