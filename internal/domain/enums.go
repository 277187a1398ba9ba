package domain

type InitiativeStatus string

const (
	StatusProposed   InitiativeStatus = "proposed"
	StatusPlanned    InitiativeStatus = "planned"
	StatusInProgress InitiativeStatus = "in_progress"
	StatusComplete   InitiativeStatus = "complete"
	StatusOnHold     InitiativeStatus = "on_hold"
	StatusCancelled  InitiativeStatus = "cancelled"
)

type InitiativeType string

const (
	TypeProject      InitiativeType = "project"
	TypeEpic         InitiativeType = "epic"
	TypeMaintenance  InitiativeType = "maintenance"
	TypeUpgrade      InitiativeType = "upgrade"
	TypeDecommission InitiativeType = "decommission"
)

type DependencyType string

const (
	FinishToStart  DependencyType = "finish_to_start"
	StartToStart   DependencyType = "start_to_start"
	FinishToFinish DependencyType = "finish_to_finish"
	StartToFinish  DependencyType = "start_to_finish"
)

type ConstraintType string

const (
	ConstraintDeadline   ConstraintType = "deadline"
	ConstraintBudget     ConstraintType = "budget"
	ConstraintResource   ConstraintType = "resource"
	ConstraintDependency ConstraintType = "dependency"
	ConstraintCompliance ConstraintType = "compliance"
	ConstraintOther      ConstraintType = "other"
)

type Hardness string

const (
	Hard Hardness = "hard"
	Soft Hardness = "soft"
)

type PeriodType string

const (
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
	PeriodYear    PeriodType = "year"
)

type ScenarioType string

const (
	ScenarioBaseline    ScenarioType = "baseline"
	ScenarioWhatIf      ScenarioType = "what_if"
	ScenarioContingency ScenarioType = "contingency"
)

// ValidDependencyTypes is the canonical set of accepted dependency type strings.
var ValidDependencyTypes = map[string]bool{
	"finish_to_start": true, "start_to_start": true,
	"finish_to_finish": true, "start_to_finish": true,
}

// ValidConstraintTypes is the canonical set of accepted constraint type strings.
var ValidConstraintTypes = map[string]bool{
	"deadline": true, "budget": true, "resource": true,
	"dependency": true, "compliance": true, "other": true,
}

// ValidPeriodTypes is the canonical set of accepted period granularity strings.
var ValidPeriodTypes = map[string]bool{
	"month": true, "quarter": true, "year": true,
}
