package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func resolvePoolID(ctx context.Context, app *App, input string) (string, error) {
	pools, err := app.Resources.ListPools(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range pools {
		if strings.EqualFold(p.Name, input) || p.ID == input {
			return p.ID, nil
		}
	}
	var matches []string
	for _, p := range pools {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", fmt.Errorf("resource pool not found: %q", input)
}

func newResourceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Manage resource pools and effort assignments",
	}

	cmd.AddCommand(
		newPoolAddCmd(app),
		newPoolListCmd(app),
		newPoolRemoveCmd(app),
		newPoolAssignCmd(app),
		newPoolUnassignCmd(app),
		newPoolMemberCmd(app),
	)

	return cmd
}

func newPoolAddCmd(app *App) *cobra.Command {
	var name, unit, period string
	var capacity float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a resource pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.ResourcePool{
				Name:         name,
				CapacityUnit: unit,
				PeriodType:   domain.PeriodType(period),
			}
			if cmd.Flags().Changed("capacity") {
				p.CapacityPerPeriod = &capacity
			}

			if err := app.Resources.CreatePool(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Created pool %s (%s)\n", p.Name, shortID(p.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Pool name")
	cmd.Flags().Float64Var(&capacity, "capacity", 0, "Capacity per period (omit for unconstrained)")
	cmd.Flags().StringVar(&unit, "unit", "person-days", "Capacity unit")
	cmd.Flags().StringVar(&period, "period", "month", "Period granularity (month|quarter|year)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPoolListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resource pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			pools, err := app.Resources.ListPools(cmd.Context())
			if err != nil {
				return err
			}
			if len(pools) == 0 {
				fmt.Println("No resource pools defined.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatPoolList(pools))
			return nil
		},
	}
	return cmd
}

func newPoolRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <pool>",
		Short: "Delete a resource pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolvePoolID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Resources.DeletePool(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Pool removed.")
			return nil
		},
	}
	return cmd
}

func newPoolAssignCmd(app *App) *cobra.Command {
	var effort float64
	var periodStart string

	cmd := &cobra.Command{
		Use:   "assign <initiative> <pool>",
		Short: "Assign effort from a pool to an initiative",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			initID, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			poolID, err := resolvePoolID(cmd.Context(), app, args[1])
			if err != nil {
				return err
			}

			req := &domain.ResourceRequirement{
				InitiativeID:   initID,
				PoolID:         poolID,
				EffortRequired: effort,
			}
			if periodStart != "" {
				d, err := parseDate(periodStart, "period-start")
				if err != nil {
					return err
				}
				req.PeriodStart = &d
			}

			if err := app.Resources.AssignEffort(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Printf("Assigned %.1f effort to %s\n", effort, shortID(initID))
			return nil
		},
	}

	cmd.Flags().Float64Var(&effort, "effort", 0, "Effort required")
	cmd.Flags().StringVar(&periodStart, "period-start", "", "Land the full effort in the period containing this date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("effort")

	return cmd
}

func newPoolUnassignCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unassign <initiative> <pool>",
		Short: "Remove an effort assignment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			initID, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			poolID, err := resolvePoolID(cmd.Context(), app, args[1])
			if err != nil {
				return err
			}
			if err := app.Resources.UnassignEffort(cmd.Context(), initID, poolID); err != nil {
				return err
			}
			fmt.Println("Assignment removed.")
			return nil
		},
	}
	return cmd
}

func newPoolMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage named members of a pool",
	}

	var role string
	var availability float64

	add := &cobra.Command{
		Use:   "add <pool> <name>",
		Short: "Add a named member to a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := resolvePoolID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			r := &domain.Resource{
				Name:         args[1],
				Role:         role,
				PoolID:       poolID,
				Availability: availability,
			}
			if err := app.Resources.AddResource(cmd.Context(), r); err != nil {
				return err
			}
			fmt.Printf("Added %s to pool\n", r.Name)
			return nil
		},
	}
	add.Flags().StringVar(&role, "role", "", "Member role")
	add.Flags().Float64Var(&availability, "availability", 1.0, "Availability fraction (0-1)")

	list := &cobra.Command{
		Use:   "list <pool>",
		Short: "List members of a pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			poolID, err := resolvePoolID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			members, err := app.Resources.ListResources(cmd.Context(), poolID)
			if err != nil {
				return err
			}
			if len(members) == 0 {
				fmt.Println("No members in pool.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMemberList(members))
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
