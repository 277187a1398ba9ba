package engine

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
)

// TestAllocate_PeriodAdditivity property-tests the core allocation invariant:
// summing a pool's demand across every period of the table reproduces the
// total effort of the requirements feeding it, for any date layout and any
// granularity.
func TestAllocate_PeriodAdditivity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	granularities := []domain.PeriodType{domain.PeriodMonth, domain.PeriodQuarter, domain.PeriodYear}

	for trial := 0; trial < 200; trial++ {
		numInitiatives := rng.Intn(6) + 1
		var initiatives []domain.Initiative
		var requirements []domain.ResourceRequirement
		var totalEffort float64

		for i := 0; i < numInitiatives; i++ {
			start := domain.Date(2025, time.January, 1).AddDate(0, 0, rng.Intn(400))
			end := start.AddDate(0, 0, rng.Intn(180))
			id := fmt.Sprintf("i-%d", i)
			initiatives = append(initiatives, dated(id, id, start, end))

			effort := float64(rng.Intn(50) + 1)
			totalEffort += effort
			requirements = append(requirements, domain.ResourceRequirement{
				InitiativeID:   id,
				PoolID:         "p-1",
				EffortRequired: effort,
			})
		}

		ctx := &Context{
			Initiatives:  initiatives,
			Pools:        []domain.ResourcePool{capacityPool("p-1", "Pool", 10, domain.PeriodMonth)},
			Requirements: requirements,
		}

		granularity := granularities[rng.Intn(len(granularities))]
		allocations := Allocate(ctx, granularity)

		var totalDemand float64
		for _, a := range allocations {
			totalDemand += a.Demand
		}
		assert.InDelta(t, totalEffort, totalDemand, 1e-6,
			"trial %d (%s): summed period demand must equal total effort", trial, granularity)
	}
}

// TestAllocate_DemandNeverNegative guards the overlap arithmetic on
// single-day initiatives and period boundaries.
func TestAllocate_DemandNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 100; trial++ {
		start := domain.Date(2025, time.January, 1).AddDate(0, 0, rng.Intn(365))
		end := start.AddDate(0, 0, rng.Intn(3)) // 1–3 day initiatives
		ctx := &Context{
			Initiatives: []domain.Initiative{dated("i-1", "Tiny", start, end)},
			Pools:       []domain.ResourcePool{capacityPool("p-1", "Pool", 1, domain.PeriodMonth)},
			Requirements: []domain.ResourceRequirement{
				{InitiativeID: "i-1", PoolID: "p-1", EffortRequired: float64(rng.Intn(10) + 1)},
			},
		}

		for _, a := range Allocate(ctx, domain.PeriodMonth) {
			assert.GreaterOrEqual(t, a.Demand, 0.0, "trial %d", trial)
			assert.False(t, a.PeriodEnd.Before(a.PeriodStart), "trial %d", trial)
		}
	}
}
