package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchedule_BothDatesOrNeither(t *testing.T) {
	start := Date(2025, time.January, 1)
	end := Date(2025, time.March, 31)

	undated := &Initiative{Name: "Discovery"}
	assert.NoError(t, undated.ValidateSchedule())
	assert.False(t, undated.HasSchedule())

	dated := &Initiative{Name: "Build", StartDate: &start, EndDate: &end}
	assert.NoError(t, dated.ValidateSchedule())
	assert.True(t, dated.HasSchedule())

	half := &Initiative{Name: "Broken", StartDate: &start}
	require.Error(t, half.ValidateSchedule())
}

func TestValidateSchedule_EndBeforeStart(t *testing.T) {
	start := Date(2025, time.June, 1)
	end := Date(2025, time.May, 1)
	i := &Initiative{Name: "Inverted", StartDate: &start, EndDate: &end}

	err := i.ValidateSchedule()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start date")
}

func TestSchedulable_CancelledExcluded(t *testing.T) {
	start := Date(2025, time.January, 1)
	end := Date(2025, time.March, 31)
	i := &Initiative{Name: "Sunset", Status: StatusCancelled, StartDate: &start, EndDate: &end}

	assert.True(t, i.HasSchedule())
	assert.False(t, i.Schedulable())
}

func TestDurationDays_Inclusive(t *testing.T) {
	start := Date(2025, time.January, 1)
	end := Date(2025, time.January, 31)
	i := &Initiative{StartDate: &start, EndDate: &end}

	assert.Equal(t, 31, i.DurationDays())

	same := &Initiative{StartDate: &start, EndDate: &start}
	assert.Equal(t, 1, same.DurationDays())
}

func TestDaysBetween_Ordering(t *testing.T) {
	a := Date(2025, time.February, 1)
	b := Date(2025, time.April, 30)

	assert.Equal(t, 89, DaysBetween(a, b))
	assert.Equal(t, 0, DaysBetween(b, a))
}
