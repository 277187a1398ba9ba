package cli

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newScenarioCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage roadmap scenarios",
	}

	var baseline bool
	var description string

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Scenario{
				Name:        args[0],
				Description: description,
				IsBaseline:  baseline,
			}
			if err := app.Scenarios.Create(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Printf("Created scenario %s (%s)\n", s.Name, shortID(s.ID))
			return nil
		},
	}
	add.Flags().BoolVar(&baseline, "baseline", false, "Mark as the baseline scenario")
	add.Flags().StringVar(&description, "description", "", "Scenario description")

	list := &cobra.Command{
		Use:   "list",
		Short: "List scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios, err := app.Scenarios.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(scenarios) == 0 {
				fmt.Println("No scenarios defined.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatScenarioList(scenarios))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Scenarios.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Scenario removed.")
			return nil
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}
