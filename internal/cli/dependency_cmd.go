package cli

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newDependencyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dependency",
		Aliases: []string{"dep"},
		Short:   "Manage dependencies between initiatives",
	}

	cmd.AddCommand(
		newDependencyAddCmd(app),
		newDependencyListCmd(app),
		newDependencyRemoveCmd(app),
	)

	return cmd
}

func newDependencyAddCmd(app *App) *cobra.Command {
	var typeStr string
	var lag int

	cmd := &cobra.Command{
		Use:   "add <predecessor> <successor>",
		Short: "Add a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			predID, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			succID, err := resolveInitiativeID(cmd.Context(), app, args[1])
			if err != nil {
				return err
			}

			d := &domain.Dependency{
				PredecessorID: predID,
				SuccessorID:   succID,
				Type:          domain.DependencyType(typeStr),
				LagDays:       lag,
			}
			if err := app.Dependencies.Add(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Printf("Added %s dependency %s -> %s\n", d.Type, shortID(predID), shortID(succID))
			return nil
		},
	}

	cmd.Flags().StringVar(&typeStr, "type", "", "Dependency type (finish_to_start|start_to_start|finish_to_finish|start_to_finish)")
	cmd.Flags().IntVar(&lag, "lag", 0, "Lag in days")

	return cmd
}

func newDependencyListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.Dependencies.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(deps) == 0 {
				fmt.Println("No dependencies defined.")
				return nil
			}
			names, err := initiativeNames(cmd.Context(), app)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatDependencyList(deps, names))
			return nil
		},
	}
	return cmd
}

func newDependencyRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <predecessor> <successor>",
		Short: "Remove a dependency edge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			predID, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			succID, err := resolveInitiativeID(cmd.Context(), app, args[1])
			if err != nil {
				return err
			}
			if err := app.Dependencies.Remove(cmd.Context(), predID, succID); err != nil {
				return err
			}
			fmt.Println("Dependency removed.")
			return nil
		},
	}
	return cmd
}
