package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

func optionalDate(t *domain.Initiative) (string, string) {
	start, end := Dim("--"), Dim("--")
	if t.StartDate != nil {
		start = StyleFg.Render(t.StartDate.Format(domain.DateLayout))
	}
	if t.EndDate != nil {
		end = StyleFg.Render(t.EndDate.Format(domain.DateLayout))
	}
	return start, end
}

// FormatInitiativeList renders all initiatives as a table.
func FormatInitiativeList(initiatives []domain.Initiative) string {
	headers := []string{"ID", "NAME", "TYPE", "STATUS", "START", "END", "EFFORT"}
	rows := make([][]string, 0, len(initiatives))

	for i := range initiatives {
		init := &initiatives[i]
		start, end := optionalDate(init)
		effort := Dim("--")
		if init.EffortEstimate != nil {
			effort = StyleFg.Render(fmt.Sprintf("%.1f", *init.EffortEstimate))
		}
		rows = append(rows, []string{
			Dim(truncateID(init.ID)),
			Bold(init.Name),
			string(init.Type),
			StatusPill(init.Status),
			start,
			end,
			effort,
		})
	}

	return RenderTable(headers, rows)
}

// FormatInitiativeDetail renders one initiative as a key/value block.
func FormatInitiativeDetail(i *domain.Initiative) string {
	var b strings.Builder
	b.WriteString(Header(i.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("ID:"), i.ID))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Type:"), string(i.Type)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), StatusPill(i.Status)))
	start, end := optionalDate(i)
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n", Dim("Start:"), start, Dim("End:"), end))
	if i.EffortEstimate != nil {
		b.WriteString(fmt.Sprintf("%s %.1f person-days\n", Dim("Effort:"), *i.EffortEstimate))
	}
	if i.Priority != 0 {
		b.WriteString(fmt.Sprintf("%s %d\n", Dim("Priority:"), i.Priority))
	}
	if i.ScenarioID != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Scenario:"), truncateID(i.ScenarioID)))
	}
	if i.Description != "" {
		b.WriteString("\n" + i.Description + "\n")
	}
	return b.String()
}

// FormatDependencyList renders dependency edges with resolved names.
func FormatDependencyList(deps []domain.Dependency, names map[string]string) string {
	headers := []string{"PREDECESSOR", "SUCCESSOR", "TYPE", "LAG"}
	rows := make([][]string, 0, len(deps))

	for _, d := range deps {
		lag := Dim("--")
		if d.LagDays > 0 {
			lag = StyleFg.Render(fmt.Sprintf("%dd", d.LagDays))
		}
		rows = append(rows, []string{
			Bold(nameOrID(names, d.PredecessorID)),
			Bold(nameOrID(names, d.SuccessorID)),
			string(d.Type),
			lag,
		})
	}

	return RenderTable(headers, rows)
}

// FormatConstraintList renders all constraints as a table.
func FormatConstraintList(constraints []domain.Constraint) string {
	headers := []string{"ID", "NAME", "TYPE", "HARDNESS", "EFFECTIVE", "EXPIRES"}
	rows := make([][]string, 0, len(constraints))

	for _, c := range constraints {
		effective, expiry := Dim("--"), Dim("--")
		if c.EffectiveDate != nil {
			effective = StyleFg.Render(c.EffectiveDate.Format(domain.DateLayout))
		}
		if c.ExpiryDate != nil {
			expiry = StyleFg.Render(c.ExpiryDate.Format(domain.DateLayout))
		}
		rows = append(rows, []string{
			Dim(truncateID(c.ID)),
			Bold(c.Name),
			string(c.Type),
			HardnessIndicator(c.Hardness),
			effective,
			expiry,
		})
	}

	return RenderTable(headers, rows)
}

// FormatPoolList renders resource pools as a table.
func FormatPoolList(pools []domain.ResourcePool) string {
	headers := []string{"ID", "NAME", "CAPACITY", "UNIT", "PERIOD"}
	rows := make([][]string, 0, len(pools))

	for _, p := range pools {
		capacity := Dim("unconstrained")
		if p.CapacityPerPeriod != nil {
			capacity = StyleFg.Render(fmt.Sprintf("%.1f", *p.CapacityPerPeriod))
		}
		rows = append(rows, []string{
			Dim(truncateID(p.ID)),
			Bold(p.Name),
			capacity,
			p.CapacityUnit,
			string(p.PeriodType),
		})
	}

	return RenderTable(headers, rows)
}

// FormatMemberList renders pool members as a table.
func FormatMemberList(members []domain.Resource) string {
	headers := []string{"NAME", "ROLE", "AVAILABILITY"}
	rows := make([][]string, 0, len(members))

	for _, m := range members {
		role := Dim("--")
		if m.Role != "" {
			role = StyleFg.Render(m.Role)
		}
		rows = append(rows, []string{
			Bold(m.Name),
			role,
			fmt.Sprintf("%.0f%%", m.Availability*100),
		})
	}

	return RenderTable(headers, rows)
}

// FormatScenarioList renders scenarios as a table.
func FormatScenarioList(scenarios []domain.Scenario) string {
	headers := []string{"ID", "NAME", "TYPE", "BASELINE"}
	rows := make([][]string, 0, len(scenarios))

	for _, s := range scenarios {
		baseline := Dim("")
		if s.IsBaseline {
			baseline = StyleGreen.Render("✓")
		}
		rows = append(rows, []string{
			Dim(truncateID(s.ID)),
			Bold(s.Name),
			string(s.Type),
			baseline,
		})
	}

	return RenderTable(headers, rows)
}

// FormatCapabilityList renders capabilities as a table.
func FormatCapabilityList(capabilities []domain.Capability) string {
	headers := []string{"ID", "NAME", "DESCRIPTION"}
	rows := make([][]string, 0, len(capabilities))

	for _, c := range capabilities {
		rows = append(rows, []string{
			Dim(truncateID(c.ID)),
			Bold(c.Name),
			c.Description,
		})
	}

	return RenderTable(headers, rows)
}

// FormatSystemList renders systems as a table. Support end dates in the past
// are highlighted.
func FormatSystemList(systems []domain.System) string {
	headers := []string{"ID", "NAME", "OWNER", "VENDOR", "SUPPORT ENDS"}
	rows := make([][]string, 0, len(systems))

	for _, s := range systems {
		supportEnd := Dim("--")
		if s.SupportEndDate != nil {
			text := s.SupportEndDate.Format(domain.DateLayout)
			if s.SupportEndDate.Before(nowFunc()) {
				supportEnd = StyleRed.Render(text)
			} else {
				supportEnd = StyleFg.Render(text)
			}
		}
		rows = append(rows, []string{
			Dim(truncateID(s.ID)),
			Bold(s.Name),
			s.Owner,
			s.Vendor,
			supportEnd,
		})
	}

	return RenderTable(headers, rows)
}

// FormatFinancialPeriodList renders financial periods as a table.
func FormatFinancialPeriodList(periods []domain.FinancialPeriod) string {
	headers := []string{"ID", "NAME", "TYPE", "START", "END", "BUDGET"}
	rows := make([][]string, 0, len(periods))

	for _, p := range periods {
		budget := Dim("--")
		if p.BudgetAvailable != nil {
			budget = StyleFg.Render(fmt.Sprintf("%.0f", *p.BudgetAvailable))
		}
		rows = append(rows, []string{
			Dim(truncateID(p.ID)),
			Bold(p.Name),
			string(p.Type),
			p.StartDate.Format(domain.DateLayout),
			p.EndDate.Format(domain.DateLayout),
			budget,
		})
	}

	return RenderTable(headers, rows)
}

// nowFunc is swappable in tests.
var nowFunc = time.Now

func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func nameOrID(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return truncateID(id)
}
