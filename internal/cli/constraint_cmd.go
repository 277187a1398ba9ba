package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func resolveConstraintID(ctx context.Context, app *App, input string) (string, error) {
	constraints, err := app.Constraints.List(ctx)
	if err != nil {
		return "", err
	}
	for _, c := range constraints {
		if strings.EqualFold(c.Name, input) || c.ID == input {
			return c.ID, nil
		}
	}
	var matches []string
	for _, c := range constraints {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}
	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", fmt.Errorf("constraint not found: %q", input)
}

func newConstraintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constraint",
		Short: "Manage constraints and their initiative links",
	}

	cmd.AddCommand(
		newConstraintAddCmd(app),
		newConstraintListCmd(app),
		newConstraintRemoveCmd(app),
		newConstraintLinkCmd(app),
		newConstraintUnlinkCmd(app),
	)

	return cmd
}

func newConstraintAddCmd(app *App) *cobra.Command {
	var name, typeStr, hardness, effective, expiry string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new constraint",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Constraint{
				Name:     name,
				Type:     domain.ConstraintType(typeStr),
				Hardness: domain.Hardness(hardness),
			}
			if effective != "" {
				d, err := parseDate(effective, "effective")
				if err != nil {
					return err
				}
				c.EffectiveDate = &d
			}
			if expiry != "" {
				d, err := parseDate(expiry, "expiry")
				if err != nil {
					return err
				}
				c.ExpiryDate = &d
			}

			if err := app.Constraints.Create(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Printf("Created %s constraint %s (%s)\n", c.Hardness, c.Name, shortID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Constraint name")
	cmd.Flags().StringVar(&typeStr, "type", "", "Type (deadline|budget|resource|dependency|compliance|other)")
	cmd.Flags().StringVar(&hardness, "hardness", "soft", "Hardness (hard|soft)")
	cmd.Flags().StringVar(&effective, "effective", "", "Effective date / deadline (YYYY-MM-DD)")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newConstraintListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, err := app.Constraints.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(constraints) == 0 {
				fmt.Println("No constraints defined.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatConstraintList(constraints))
			return nil
		},
	}
	return cmd
}

func newConstraintRemoveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <constraint>",
		Short: "Delete a constraint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveConstraintID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			if err := app.Constraints.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Println("Constraint removed.")
			return nil
		},
	}
	return cmd
}

func newConstraintLinkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link <initiative> <constraint>",
		Short: "Link a constraint to an initiative",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			initID, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			conID, err := resolveConstraintID(cmd.Context(), app, args[1])
			if err != nil {
				return err
			}
			if err := app.Constraints.Link(cmd.Context(), initID, conID); err != nil {
				return err
			}
			fmt.Println("Constraint linked.")
			return nil
		},
	}
	return cmd
}

func newConstraintUnlinkCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlink <initiative> <constraint>",
		Short: "Unlink a constraint from an initiative",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			initID, err := resolveInitiativeID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			conID, err := resolveConstraintID(cmd.Context(), app, args[1])
			if err != nil {
				return err
			}
			if err := app.Constraints.Unlink(cmd.Context(), initID, conID); err != nil {
				return err
			}
			fmt.Println("Constraint unlinked.")
			return nil
		},
	}
	return cmd
}
