package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmcalloway/roadmap/internal/contract"
	"github.com/jmcalloway/roadmap/internal/domain"
	"github.com/jmcalloway/roadmap/internal/engine"
)

// FormatReport renders a full consequence report.
func FormatReport(r *engine.Report) string {
	var b strings.Builder

	if r.TotalIssues == 0 && len(r.CascadingChanges) == 0 {
		b.WriteString(StyleGreen.Render("✓ "+r.Summary) + "\n")
		return b.String()
	}

	writeSummaryLine(&b, r)

	if len(r.DependencyViolations) > 0 {
		b.WriteString("\n" + Header("Dependency violations") + "\n")
		for _, v := range r.DependencyViolations {
			writeDependencyViolation(&b, v)
		}
	}

	if len(r.ConstraintViolations) > 0 {
		b.WriteString("\n" + Header("Constraint violations") + "\n")
		for _, v := range r.ConstraintViolations {
			writeConstraintViolation(&b, v)
		}
	}

	if len(r.ResourceConflicts) > 0 {
		b.WriteString("\n" + Header("Resource conflicts") + "\n")
		for _, c := range r.ResourceConflicts {
			writeConflict(&b, c)
		}
	}

	if len(r.ResolvedConflicts) > 0 {
		b.WriteString("\n" + Header("Conflicts resolved by this move") + "\n")
		for _, c := range r.ResolvedConflicts {
			b.WriteString(StyleGreen.Render(fmt.Sprintf("  ✓ %s, %s",
				c.PoolName, c.PeriodStart.Format(domain.DateLayout))) + "\n")
		}
	}

	if len(r.CascadingChanges) > 0 {
		b.WriteString("\n" + Header("Cascading changes") + "\n")
		b.WriteString(FormatCascades(r.CascadingChanges, nil))
	}

	return b.String()
}

func writeSummaryLine(b *strings.Builder, r *engine.Report) {
	style := StyleYellow
	if r.HasHardViolations {
		style = StyleRed
	}
	b.WriteString(style.Render(r.Summary) + "\n")
}

func writeDependencyViolation(b *strings.Builder, v engine.DependencyViolation) {
	b.WriteString(StyleRed.Render("  ✗ ") + v.Message + "\n")
	if v.SuggestedFix != nil {
		b.WriteString(Dim(fmt.Sprintf("    suggested: move %s to %s – %s",
			v.SuccessorName,
			v.SuggestedFix.Start.Format(domain.DateLayout),
			v.SuggestedFix.End.Format(domain.DateLayout))) + "\n")
	}
}

func writeConstraintViolation(b *strings.Builder, v engine.ConstraintViolation) {
	b.WriteString(fmt.Sprintf("  %s %s\n", HardnessIndicator(v.Hardness), v.Message))
}

func writeConflict(b *strings.Builder, c engine.Conflict) {
	b.WriteString(StyleRed.Render("  ✗ ") + fmt.Sprintf("%s, %s: demand %.1f over capacity %.1f (%.0f%%)\n",
		Bold(c.PoolName),
		c.PeriodStart.Format(domain.DateLayout),
		c.Demand,
		c.Capacity,
		c.UtilisationPercent,
	))
	for _, contrib := range c.Contributors {
		b.WriteString(Dim(fmt.Sprintf("      %s: %.1f", contrib.InitiativeName, contrib.Effort)) + "\n")
	}
}

// FormatCascades renders the cascade map sorted by initiative for stable
// output. Names resolve IDs when provided.
func FormatCascades(cascades map[string]engine.DateRange, names map[string]string) string {
	ids := make([]string, 0, len(cascades))
	for id := range cascades {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		r := cascades[id]
		label := id
		if names != nil {
			label = nameOrID(names, id)
		}
		b.WriteString(fmt.Sprintf("  %s %s shifts to %s – %s\n",
			StyleYellow.Render("→"),
			Bold(label),
			r.Start.Format(domain.DateLayout),
			r.End.Format(domain.DateLayout)))
	}
	return b.String()
}

// FormatInitiativeIssues renders the per-initiative violation lookup.
func FormatInitiativeIssues(issues *engine.InitiativeIssues) string {
	total := len(issues.Dependencies) + len(issues.Constraints) + len(issues.Resources)
	if total == 0 {
		return StyleGreen.Render("✓ No issues for this initiative") + "\n"
	}

	var b strings.Builder
	if len(issues.Dependencies) > 0 {
		b.WriteString(Header("Dependency violations") + "\n")
		for _, v := range issues.Dependencies {
			writeDependencyViolation(&b, v)
		}
	}
	if len(issues.Constraints) > 0 {
		b.WriteString(Header("Constraint violations") + "\n")
		for _, v := range issues.Constraints {
			writeConstraintViolation(&b, v)
		}
	}
	if len(issues.Resources) > 0 {
		b.WriteString(Header("Resource conflicts") + "\n")
		for _, c := range issues.Resources {
			writeConflict(&b, c)
		}
	}
	return b.String()
}

// FormatWhatIf renders a hypothetical move report with its proposal header.
func FormatWhatIf(resp *contract.WhatIfResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s → %s – %s\n\n",
		Bold(resp.Initiative.Name),
		Dim("proposed move:"),
		resp.Proposed.Start.Format(domain.DateLayout),
		resp.Proposed.End.Format(domain.DateLayout)))
	b.WriteString(FormatReport(&resp.Report))

	return b.String()
}

// FormatCycles renders cycle detection results with resolved names.
func FormatCycles(resp *contract.CyclesResponse) string {
	if !resp.Report.HasCycles {
		return StyleGreen.Render("✓ No dependency cycles detected") + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render(fmt.Sprintf("%d dependency cycle(s) detected", len(resp.Report.Cycles))) + "\n\n")
	for _, cycle := range resp.Report.Cycles {
		labels := make([]string, len(cycle))
		for i, id := range cycle {
			labels[i] = nameOrID(resp.Names, id)
		}
		b.WriteString("  " + strings.Join(labels, Dim(" → ")) + "\n")
	}
	return b.String()
}

// FormatAllocations renders the allocation table with utilisation coloring.
func FormatAllocations(resp *contract.AllocationResponse) string {
	if len(resp.Allocations) == 0 {
		return Dim("No allocations to show.") + "\n"
	}

	headers := []string{"POOL", "PERIOD", "DEMAND", "CAPACITY", "UTILISATION"}
	rows := make([][]string, 0, len(resp.Allocations))

	for _, a := range resp.Allocations {
		capacity := Dim("unconstrained")
		utilisation := Dim("--")
		if a.Capacity > 0 {
			capacity = StyleFg.Render(fmt.Sprintf("%.1f", a.Capacity))
			utilisation = utilisationStyled(a.UtilisationPercent)
		}
		rows = append(rows, []string{
			Bold(a.PoolName),
			a.PeriodStart.Format(domain.DateLayout),
			fmt.Sprintf("%.1f", a.Demand),
			capacity,
			utilisation,
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))

	if len(resp.Conflicts) > 0 {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf("%d period(s) over capacity", len(resp.Conflicts))) + "\n")
	}

	return b.String()
}

func utilisationStyled(pct float64) string {
	text := fmt.Sprintf("%.0f%%", pct)
	switch {
	case pct > 100:
		return StyleRed.Render(text)
	case pct >= 85:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}
