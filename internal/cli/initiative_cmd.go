package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

// resolveInitiativeID accepts an exact name (case-insensitive), an exact UUID
// or a UUID prefix and resolves it to one initiative.
func resolveInitiativeID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("initiative is required")
	}

	initiatives, err := app.Initiatives.List(ctx)
	if err != nil {
		return "", err
	}

	for _, i := range initiatives {
		if strings.EqualFold(i.Name, input) {
			return i.ID, nil
		}
	}
	for _, i := range initiatives {
		if i.ID == input {
			return i.ID, nil
		}
	}

	var matches []string
	for _, i := range initiatives {
		if strings.HasPrefix(i.ID, input) {
			matches = append(matches, i.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("initiative not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("initiative %q is ambiguous (%d matches)", input, len(matches))
	}
}

func parseDate(value, flag string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", flag, value, err)
	}
	return t, nil
}

func newInitiativeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initiative",
		Aliases: []string{"init"},
		Short:   "Manage initiatives",
	}

	cmd.AddCommand(
		newInitiativeAddCmd(app),
		newInitiativeListCmd(app),
		newInitiativeInspectCmd(app),
		newInitiativeUpdateCmd(app),
		newInitiativeRemoveCmd(app),
	)

	return cmd
}

func newInitiativeAddCmd(app *App) *cobra.Command {
	var name, typeStr, statusStr, start, end, scenario string
	var effort float64
	var priority int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new initiative",
		RunE: func(cmd *cobra.Command, args []string) error {
			i := &domain.Initiative{
				Name:       name,
				Type:       domain.InitiativeType(typeStr),
				Status:     domain.InitiativeStatus(statusStr),
				Priority:   priority,
				ScenarioID: scenario,
			}
			if start != "" {
				startDate, err := parseDate(start, "start")
				if err != nil {
					return err
				}
				i.StartDate = &startDate
			}
			if end != "" {
				endDate, err := parseDate(end, "end")
				if err != nil {
					return err
				}
				i.EndDate = &endDate
			}
			if cmd.Flags().Changed("effort") {
				i.EffortEstimate = &effort
			}

			if err := app.Initiatives.Create(cmd.Context(), i); err != nil {
				return err
			}
			fmt.Printf("Created initiative %s (%s)\n", i.Name, shortID(i.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Initiative name")
	cmd.Flags().StringVar(&typeStr, "type", "", "Type (project|epic|maintenance|upgrade|decommission)")
	cmd.Flags().StringVar(&statusStr, "status", "", "Status (proposed|planned|in_progress|complete|on_hold|cancelled)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&effort, "effort", 0, "Effort estimate in person-days")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority (higher is more important)")
	cmd.Flags().StringVar(&scenario, "scenario", "", "Scenario ID (empty = baseline)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newInitiativeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List initiatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			initiatives, err := app.Initiatives.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(initiatives) == 0 {
				fmt.Println("No initiatives found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatInitiativeList(initiatives))
			return nil
		},
	}
	return cmd
}

func newInitiativeInspectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <initiative>",
		Short: "Show one initiative with its violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			initiative, err := app.Initiatives.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatInitiativeDetail(initiative))
			return nil
		},
	}
	return cmd
}

func newInitiativeUpdateCmd(app *App) *cobra.Command {
	var name, statusStr, start, end string
	var priority int

	cmd := &cobra.Command{
		Use:   "update <initiative>",
		Short: "Update an initiative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			i, err := app.Initiatives.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if name != "" {
				i.Name = name
			}
			if statusStr != "" {
				i.Status = domain.InitiativeStatus(statusStr)
			}
			if start != "" {
				startDate, err := parseDate(start, "start")
				if err != nil {
					return err
				}
				i.StartDate = &startDate
			}
			if end != "" {
				endDate, err := parseDate(end, "end")
				if err != nil {
					return err
				}
				i.EndDate = &endDate
			}
			if cmd.Flags().Changed("priority") {
				i.Priority = priority
			}

			if err := app.Initiatives.Update(cmd.Context(), i); err != nil {
				return err
			}
			fmt.Printf("Updated initiative %s\n", i.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&statusStr, "status", "", "New status")
	cmd.Flags().StringVar(&start, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "New end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&priority, "priority", 0, "New priority")

	return cmd
}

func newInitiativeRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <initiative>",
		Short: "Delete an initiative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Initiatives.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Initiative removed.")
			return nil
		},
	}
	return cmd
}

// initiativeNames maps initiative IDs to display names for formatters.
func initiativeNames(ctx context.Context, app *App) (map[string]string, error) {
	initiatives, err := app.Initiatives.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(initiatives))
	for _, i := range initiatives {
		names[i.ID] = i.Name
	}
	return names, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
