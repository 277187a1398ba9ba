package domain

import (
	"fmt"
	"time"
)

type Initiative struct {
	ID             string
	Name           string
	Description    string
	Type           InitiativeType
	Status         InitiativeStatus
	StartDate      *time.Time
	EndDate        *time.Time
	EffortEstimate *float64 // person-days
	CostEstimate   *float64
	Priority       int
	ScenarioID     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasSchedule reports whether the initiative carries both a start and an end
// date. Analyzers treat anything else as unscheduled.
func (i *Initiative) HasSchedule() bool {
	return i.StartDate != nil && i.EndDate != nil
}

// Schedulable reports whether the initiative participates in scheduling
// analysis: it must be dated and not cancelled.
func (i *Initiative) Schedulable() bool {
	return i.HasSchedule() && i.Status != StatusCancelled
}

// DurationDays returns the initiative's duration in whole days, counting both
// endpoints. Returns 0 when the initiative is unscheduled.
func (i *Initiative) DurationDays() int {
	if !i.HasSchedule() {
		return 0
	}
	return DaysBetween(*i.StartDate, *i.EndDate)
}

// ValidateSchedule enforces the data-model invariant on dates: either both
// are absent, or both are present with start ≤ end. The consequence engine
// assumes this holds and does not re-check it.
func (i *Initiative) ValidateSchedule() error {
	if (i.StartDate == nil) != (i.EndDate == nil) {
		return fmt.Errorf("initiative %q must have both start and end dates, or neither", i.Name)
	}
	if i.HasSchedule() && i.EndDate.Before(*i.StartDate) {
		return fmt.Errorf("initiative %q end date %s is before start date %s",
			i.Name, i.EndDate.Format(DateLayout), i.StartDate.Format(DateLayout))
	}
	return nil
}

type Dependency struct {
	PredecessorID string
	SuccessorID   string
	Type          DependencyType
	LagDays       int
}

// DateLayout is the calendar-date storage and display format.
const DateLayout = "2006-01-02"

// DaysBetween returns the inclusive day count from a to b, ceiling-rounded so
// partial days count as full days. Returns at least 1 when a ≤ b.
func DaysBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	hours := b.Sub(a).Hours()
	days := int(hours / 24)
	if float64(days*24) < hours {
		days++
	}
	return days + 1
}

// Date builds a calendar date (midnight UTC).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
