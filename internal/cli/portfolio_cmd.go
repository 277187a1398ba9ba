package cli

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/spf13/cobra"
)

func newCapabilityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capability",
		Short: "Manage business capabilities",
	}

	var description, parent string

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a capability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Capability{Name: args[0], Description: description, ParentID: parent}
			if err := app.Portfolio.CreateCapability(cmd.Context(), c); err != nil {
				return err
			}
			fmt.Printf("Created capability %s (%s)\n", c.Name, shortID(c.ID))
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "Capability description")
	add.Flags().StringVar(&parent, "parent", "", "Parent capability ID")

	list := &cobra.Command{
		Use:   "list",
		Short: "List capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			capabilities, err := app.Portfolio.ListCapabilities(cmd.Context())
			if err != nil {
				return err
			}
			if len(capabilities) == 0 {
				fmt.Println("No capabilities defined.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatCapabilityList(capabilities))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a capability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Portfolio.DeleteCapability(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Capability removed.")
			return nil
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func newSystemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Manage IT systems on the roadmap",
	}

	var owner, vendor, capability, supportEnd string

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.System{
				Name:         args[0],
				Owner:        owner,
				Vendor:       vendor,
				CapabilityID: capability,
			}
			if supportEnd != "" {
				d, err := parseDate(supportEnd, "support-end")
				if err != nil {
					return err
				}
				s.SupportEndDate = &d
			}
			if err := app.Portfolio.CreateSystem(cmd.Context(), s); err != nil {
				return err
			}
			fmt.Printf("Registered system %s (%s)\n", s.Name, shortID(s.ID))
			return nil
		},
	}
	add.Flags().StringVar(&owner, "owner", "", "System owner")
	add.Flags().StringVar(&vendor, "vendor", "", "Vendor")
	add.Flags().StringVar(&capability, "capability", "", "Capability ID")
	add.Flags().StringVar(&supportEnd, "support-end", "", "Vendor support end date (YYYY-MM-DD)")

	var byCapability string
	list := &cobra.Command{
		Use:   "list",
		Short: "List systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			systems, err := app.Portfolio.ListSystems(cmd.Context(), byCapability)
			if err != nil {
				return err
			}
			if len(systems) == 0 {
				fmt.Println("No systems registered.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatSystemList(systems))
			return nil
		},
	}
	list.Flags().StringVar(&byCapability, "capability", "", "Filter by capability ID")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Portfolio.DeleteSystem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("System removed.")
			return nil
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func newFiscalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fiscal",
		Short: "Manage financial periods",
	}

	var typeStr, start, end string
	var budget float64

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a financial period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := parseDate(start, "start")
			if err != nil {
				return err
			}
			endDate, err := parseDate(end, "end")
			if err != nil {
				return err
			}
			p := &domain.FinancialPeriod{
				Name:      args[0],
				Type:      domain.PeriodType(typeStr),
				StartDate: startDate,
				EndDate:   endDate,
			}
			if cmd.Flags().Changed("budget") {
				p.BudgetAvailable = &budget
			}
			if err := app.Portfolio.CreateFinancialPeriod(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Printf("Created financial period %s\n", p.Name)
			return nil
		},
	}
	add.Flags().StringVar(&typeStr, "type", "year", "Period type (month|quarter|year)")
	add.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	add.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	add.Flags().Float64Var(&budget, "budget", 0, "Available budget")
	_ = add.MarkFlagRequired("start")
	_ = add.MarkFlagRequired("end")

	list := &cobra.Command{
		Use:   "list",
		Short: "List financial periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			periods, err := app.Portfolio.ListFinancialPeriods(cmd.Context())
			if err != nil {
				return err
			}
			if len(periods) == 0 {
				fmt.Println("No financial periods defined.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatFinancialPeriodList(periods))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a financial period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Portfolio.DeleteFinancialPeriod(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Financial period removed.")
			return nil
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}
