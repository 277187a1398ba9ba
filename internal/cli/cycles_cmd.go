package cli

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCyclesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Detect circular dependency chains",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Consequences.Cycles(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatCycles(resp))
			return nil
		},
	}
	return cmd
}
