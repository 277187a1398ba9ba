package domain

import "time"

type Constraint struct {
	ID            string
	Name          string
	Description   string
	Type          ConstraintType
	Hardness      Hardness
	EffectiveDate *time.Time // for deadline constraints, the due date
	ExpiryDate    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ConstraintLink ties a constraint to an initiative (many-to-many).
type ConstraintLink struct {
	InitiativeID string
	ConstraintID string
}
