package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmcalloway/roadmap/internal/cli"
	"github.com/jmcalloway/roadmap/internal/db"
	"github.com/jmcalloway/roadmap/internal/repository"
	"github.com/jmcalloway/roadmap/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.roadmap/roadmap.db
	dbPath := os.Getenv("ROADMAP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".roadmap", "roadmap.db")
	}

	// Disable color when output is piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	initiativeRepo := repository.NewSQLiteInitiativeRepo(database)
	dependencyRepo := repository.NewSQLiteDependencyRepo(database)
	constraintRepo := repository.NewSQLiteConstraintRepo(database)
	resourceRepo := repository.NewSQLiteResourceRepo(database)
	scenarioRepo := repository.NewSQLiteScenarioRepo(database)
	portfolioRepo := repository.NewSQLitePortfolioRepo(database)

	// Use-case telemetry goes to stderr when ROADMAP_LOG is set.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("ROADMAP_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Initiatives:  service.NewInitiativeService(initiativeRepo),
		Dependencies: service.NewDependencyService(dependencyRepo, initiativeRepo),
		Constraints:  service.NewConstraintService(constraintRepo, initiativeRepo),
		Resources:    service.NewResourceService(resourceRepo, initiativeRepo),
		Scenarios:    service.NewScenarioService(scenarioRepo),
		Portfolio:    service.NewPortfolioService(portfolioRepo),
		Consequences: service.NewConsequenceService(
			initiativeRepo, dependencyRepo, constraintRepo, resourceRepo, scenarioRepo, observer),
	}

	return cli.NewRootCmd(app).Execute()
}
