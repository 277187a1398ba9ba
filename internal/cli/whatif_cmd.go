package cli

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/contract"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newWhatIfCmd(app *App) *cobra.Command {
	var start, end, scenario, period string

	cmd := &cobra.Command{
		Use:   "what-if <initiative>",
		Short: "Evaluate a hypothetical date move without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			newStart, err := parseDate(start, "start")
			if err != nil {
				return err
			}
			newEnd, err := parseDate(end, "end")
			if err != nil {
				return err
			}

			req := contract.NewWhatIfRequest(id, newStart, newEnd)
			req.ScenarioID = scenario
			req.Period = domain.PeriodType(period)

			resp, err := app.Consequences.WhatIf(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatWhatIf(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Proposed start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Proposed end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "Scenario ID (default: baseline)")
	cmd.Flags().StringVar(&period, "period", "month", "Allocation period (month|quarter|year)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}
