package domain

import "time"

// Scenario groups a set of initiatives into one version of the roadmap.
// Exactly one scenario is the baseline; others branch from it.
type Scenario struct {
	ID               string
	Name             string
	Description      string
	Type             ScenarioType
	IsBaseline       bool
	ParentScenarioID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Capability is a business capability used to group systems on the roadmap.
type Capability struct {
	ID          string
	Name        string
	Description string
	ParentID    string
	Colour      string
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// System is an IT system tracked on the roadmap.
type System struct {
	ID                      string
	Name                    string
	Description             string
	Owner                   string
	Vendor                  string
	LifecycleStage          string
	Criticality             string
	SupportEndDate          *time.Time
	ExtendedSupportEndDate  *time.Time
	CapabilityID            string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// FinancialPeriod is a budgeting window (e.g. a fiscal year or quarter).
type FinancialPeriod struct {
	ID              string
	Name            string
	Type            PeriodType
	StartDate       time.Time
	EndDate         time.Time
	BudgetAvailable *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
