package engine

import (
	"fmt"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// ConstraintViolationsFor evaluates the constraints linked to the initiative.
// Unscheduled (or cancelled) initiatives are never evaluated, and a
// constraint with neither an effective nor an expiry date never triggers.
func ConstraintViolationsFor(initiative *domain.Initiative, ctx *Context) []ConstraintViolation {
	var violations []ConstraintViolation
	if initiative == nil || !initiative.Schedulable() {
		return violations
	}
	for _, c := range ctx.constraintsFor(initiative.ID) {
		if v := evaluateConstraint(initiative, c); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

func evaluateConstraint(initiative *domain.Initiative, c domain.Constraint) *ConstraintViolation {
	var msg string
	switch {
	case c.Type == domain.ConstraintDeadline:
		// A deadline's effective date is its due date.
		if c.EffectiveDate == nil || !initiative.EndDate.After(*c.EffectiveDate) {
			return nil
		}
		msg = fmt.Sprintf("%s ends %s, after the %s deadline of %s",
			initiative.Name,
			initiative.EndDate.Format(domain.DateLayout),
			c.Name,
			c.EffectiveDate.Format(domain.DateLayout))

	case c.ExpiryDate != nil && initiative.StartDate.After(*c.ExpiryDate):
		msg = fmt.Sprintf("%s starts %s, after %s expires on %s",
			initiative.Name,
			initiative.StartDate.Format(domain.DateLayout),
			c.Name,
			c.ExpiryDate.Format(domain.DateLayout))

	case c.EffectiveDate != nil && initiative.EndDate.Before(*c.EffectiveDate):
		msg = fmt.Sprintf("%s ends %s, before %s takes effect on %s",
			initiative.Name,
			initiative.EndDate.Format(domain.DateLayout),
			c.Name,
			c.EffectiveDate.Format(domain.DateLayout))

	default:
		return nil
	}

	return &ConstraintViolation{
		InitiativeID:   initiative.ID,
		InitiativeName: initiative.Name,
		ConstraintID:   c.ID,
		ConstraintName: c.Name,
		Type:           c.Type,
		Hardness:       c.Hardness,
		Message:        msg,
	}
}

// HypotheticalConstraintViolations evaluates the initiative's constraints as
// if it already carried the proposed dates.
func HypotheticalConstraintViolations(initiative *domain.Initiative, proposed DateRange, ctx *Context) []ConstraintViolation {
	if initiative == nil {
		return nil
	}
	virtual := *initiative
	start, end := proposed.Start, proposed.End
	virtual.StartDate = &start
	virtual.EndDate = &end
	return ConstraintViolationsFor(&virtual, ctx)
}

// Categorize partitions constraint violations by hardness. Every violation
// lands in exactly one of the two slices.
func Categorize(violations []ConstraintViolation) (hard, soft []ConstraintViolation) {
	for _, v := range violations {
		if v.Hardness == domain.Hard {
			hard = append(hard, v)
		} else {
			soft = append(soft, v)
		}
	}
	return hard, soft
}
