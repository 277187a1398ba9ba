package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// SQLitePortfolioRepo implements PortfolioRepo using a SQLite database. It
// holds the supporting roadmap entities: capabilities, systems and financial
// periods.
type SQLitePortfolioRepo struct {
	db *sql.DB
}

// NewSQLitePortfolioRepo creates a new SQLitePortfolioRepo.
func NewSQLitePortfolioRepo(db *sql.DB) *SQLitePortfolioRepo {
	return &SQLitePortfolioRepo{db: db}
}

func (r *SQLitePortfolioRepo) CreateCapability(ctx context.Context, c *domain.Capability) error {
	query := `INSERT INTO capabilities (id, name, description, parent_id, colour,
		sort_order, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Description,
		c.ParentID,
		c.Colour,
		c.SortOrder,
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting capability: %w", err)
	}
	return nil
}

func (r *SQLitePortfolioRepo) ListCapabilities(ctx context.Context) ([]domain.Capability, error) {
	query := `SELECT id, name, description, parent_id, colour, sort_order,
		created_at, updated_at
		FROM capabilities ORDER BY sort_order, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing capabilities: %w", err)
	}
	defer rows.Close()

	var capabilities []domain.Capability
	for rows.Next() {
		var c domain.Capability
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.Colour,
			&c.SortOrder, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning capability: %w", err)
		}
		var parseErr error
		c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		capabilities = append(capabilities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating capabilities: %w", err)
	}
	return capabilities, nil
}

func (r *SQLitePortfolioRepo) DeleteCapability(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM capabilities WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting capability: %w", err)
	}
	return nil
}

func (r *SQLitePortfolioRepo) CreateSystem(ctx context.Context, s *domain.System) error {
	query := `INSERT INTO systems (id, name, description, owner, vendor,
		lifecycle_stage, criticality, support_end_date, extended_support_end_date,
		capability_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Description,
		s.Owner,
		s.Vendor,
		s.LifecycleStage,
		s.Criticality,
		nullableTimeToString(s.SupportEndDate, dateLayout),
		nullableTimeToString(s.ExtendedSupportEndDate, dateLayout),
		s.CapabilityID,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting system: %w", err)
	}
	return nil
}

func (r *SQLitePortfolioRepo) ListSystems(ctx context.Context) ([]domain.System, error) {
	return r.querySystems(ctx, `SELECT id, name, description, owner, vendor,
		lifecycle_stage, criticality, support_end_date, extended_support_end_date,
		capability_id, created_at, updated_at
		FROM systems ORDER BY name`)
}

func (r *SQLitePortfolioRepo) ListSystemsByCapability(ctx context.Context, capabilityID string) ([]domain.System, error) {
	return r.querySystems(ctx, `SELECT id, name, description, owner, vendor,
		lifecycle_stage, criticality, support_end_date, extended_support_end_date,
		capability_id, created_at, updated_at
		FROM systems WHERE capability_id = ? ORDER BY name`, capabilityID)
}

func (r *SQLitePortfolioRepo) querySystems(ctx context.Context, query string, args ...any) ([]domain.System, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing systems: %w", err)
	}
	defer rows.Close()

	var systems []domain.System
	for rows.Next() {
		var s domain.System
		var supportEnd, extendedEnd sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Owner, &s.Vendor,
			&s.LifecycleStage, &s.Criticality, &supportEnd, &extendedEnd,
			&s.CapabilityID, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning system: %w", err)
		}
		s.SupportEndDate = parseNullableTime(supportEnd, dateLayout)
		s.ExtendedSupportEndDate = parseNullableTime(extendedEnd, dateLayout)
		var parseErr error
		s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		systems = append(systems, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating systems: %w", err)
	}
	return systems, nil
}

func (r *SQLitePortfolioRepo) DeleteSystem(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM systems WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting system: %w", err)
	}
	return nil
}

func (r *SQLitePortfolioRepo) CreateFinancialPeriod(ctx context.Context, p *domain.FinancialPeriod) error {
	query := `INSERT INTO financial_periods (id, name, type, start_date, end_date,
		budget_available, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		string(p.Type),
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		nullableFloatToValue(p.BudgetAvailable),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting financial period: %w", err)
	}
	return nil
}

func (r *SQLitePortfolioRepo) ListFinancialPeriods(ctx context.Context) ([]domain.FinancialPeriod, error) {
	query := `SELECT id, name, type, start_date, end_date, budget_available,
		created_at, updated_at
		FROM financial_periods ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing financial periods: %w", err)
	}
	defer rows.Close()

	var periods []domain.FinancialPeriod
	for rows.Next() {
		var p domain.FinancialPeriod
		var periodType, startDate, endDate, createdAt, updatedAt string
		var budget sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Name, &periodType, &startDate, &endDate,
			&budget, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning financial period: %w", err)
		}
		p.Type = domain.PeriodType(periodType)
		p.BudgetAvailable = nullableFloat(budget)
		var parseErr error
		p.StartDate, parseErr = time.Parse(dateLayout, startDate)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing start_date: %w", parseErr)
		}
		p.EndDate, parseErr = time.Parse(dateLayout, endDate)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing end_date: %w", parseErr)
		}
		p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating financial periods: %w", err)
	}
	return periods, nil
}

func (r *SQLitePortfolioRepo) DeleteFinancialPeriod(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM financial_periods WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting financial period: %w", err)
	}
	return nil
}
