package contract

import (
	"fmt"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/engine"
)

// WhatIfRequest asks what would happen if one initiative moved to new dates.
// Nothing is persisted; the move is evaluated against a snapshot.
type WhatIfRequest struct {
	InitiativeID string
	NewStart     time.Time
	NewEnd       time.Time
	ScenarioID   string // empty means the baseline scenario
	Period       domain.PeriodType
}

func NewWhatIfRequest(initiativeID string, newStart, newEnd time.Time) WhatIfRequest {
	return WhatIfRequest{
		InitiativeID: initiativeID,
		NewStart:     newStart,
		NewEnd:       newEnd,
		Period:       domain.PeriodMonth,
	}
}

type WhatIfResponse struct {
	Initiative *domain.Initiative
	Proposed   engine.DateRange
	Report     engine.Report
}

// EvaluateRequest asks for a full current-state analysis of a scenario.
type EvaluateRequest struct {
	ScenarioID   string // empty means the baseline scenario
	InitiativeID string // when set, restrict the report to one initiative
	Period       domain.PeriodType
}

func NewEvaluateRequest() EvaluateRequest {
	return EvaluateRequest{Period: domain.PeriodMonth}
}

type EvaluateResponse struct {
	Report engine.Report
	// Issues is populated instead of Report when the request names an
	// initiative.
	Issues *engine.InitiativeIssues
}

// AllocationRequest asks for the full pool-by-period allocation table.
type AllocationRequest struct {
	ScenarioID string
	PoolID     string // when set, restrict to one pool
	Period     domain.PeriodType
}

type AllocationResponse struct {
	Allocations []engine.Allocation
	Conflicts   []engine.Conflict
}

type CyclesResponse struct {
	Report engine.CycleReport
	// Names maps initiative IDs appearing in cycles to display names.
	Names map[string]string
}

type ConsequenceErrorCode string

const (
	ErrUnknownInitiative ConsequenceErrorCode = "UNKNOWN_INITIATIVE"
	ErrUnknownScenario   ConsequenceErrorCode = "UNKNOWN_SCENARIO"
	ErrUnknownPool       ConsequenceErrorCode = "UNKNOWN_POOL"
	ErrInvalidDates      ConsequenceErrorCode = "INVALID_DATES"
)

// ConsequenceError carries a stable code alongside the human-readable message
// so callers can branch without string matching.
type ConsequenceError struct {
	Code    ConsequenceErrorCode
	Message string
}

func (e *ConsequenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConsequenceError(code ConsequenceErrorCode, format string, args ...any) *ConsequenceError {
	return &ConsequenceError{Code: code, Message: fmt.Sprintf(format, args...)}
}
