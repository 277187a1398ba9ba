package cli

import (
	"github.com/jmcalloway/roadmap/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Initiatives  service.InitiativeService
	Dependencies service.DependencyService
	Constraints  service.ConstraintService
	Resources    service.ResourceService
	Scenarios    service.ScenarioService
	Portfolio    service.PortfolioService
	Consequences service.ConsequenceService
}

// NewRootCmd creates the top-level "roadmap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roadmap",
		Short: "Roadmap planner with consequence analysis",
	}

	root.AddCommand(
		newInitiativeCmd(app),
		newDependencyCmd(app),
		newConstraintCmd(app),
		newResourceCmd(app),
		newScenarioCmd(app),
		newCapabilityCmd(app),
		newSystemCmd(app),
		newFiscalCmd(app),
		newEvaluateCmd(app),
		newWhatIfCmd(app),
		newCyclesCmd(app),
		newAllocationsCmd(app),
	)

	return root
}
