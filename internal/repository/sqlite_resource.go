package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

const poolColumns = `id, name, description, capacity_per_period,
		capacity_unit, period_type, created_at, updated_at`

// SQLiteResourceRepo implements ResourceRepo using a SQLite database. It
// covers pools, their named resources and initiative requirements.
type SQLiteResourceRepo struct {
	db *sql.DB
}

// NewSQLiteResourceRepo creates a new SQLiteResourceRepo.
func NewSQLiteResourceRepo(db *sql.DB) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: db}
}

func (r *SQLiteResourceRepo) CreatePool(ctx context.Context, p *domain.ResourcePool) error {
	query := `INSERT INTO resource_pools (` + poolColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Description,
		nullableFloatToValue(p.CapacityPerPeriod),
		p.CapacityUnit,
		string(p.PeriodType),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting resource pool: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) GetPoolByID(ctx context.Context, id string) (*domain.ResourcePool, error) {
	query := `SELECT ` + poolColumns + ` FROM resource_pools WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	p, err := scanPoolFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("resource pool not found")
	}
	return p, err
}

func (r *SQLiteResourceRepo) ListPools(ctx context.Context) ([]domain.ResourcePool, error) {
	query := `SELECT ` + poolColumns + ` FROM resource_pools ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing resource pools: %w", err)
	}
	defer rows.Close()

	var pools []domain.ResourcePool
	for rows.Next() {
		p, err := scanPoolFrom(rows)
		if err != nil {
			return nil, err
		}
		pools = append(pools, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resource pools: %w", err)
	}
	return pools, nil
}

func (r *SQLiteResourceRepo) UpdatePool(ctx context.Context, p *domain.ResourcePool) error {
	query := `UPDATE resource_pools SET
		name = ?, description = ?, capacity_per_period = ?,
		capacity_unit = ?, period_type = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		nullableFloatToValue(p.CapacityPerPeriod),
		p.CapacityUnit,
		string(p.PeriodType),
		time.Now().UTC().Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating resource pool: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) DeletePool(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM resource_pools WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting resource pool: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) UpsertRequirement(ctx context.Context, req *domain.ResourceRequirement) error {
	query := `INSERT INTO initiative_resources (initiative_id, pool_id, effort_required, period_start)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(initiative_id, pool_id)
		DO UPDATE SET effort_required = excluded.effort_required, period_start = excluded.period_start`
	_, err := r.db.ExecContext(ctx, query,
		req.InitiativeID,
		req.PoolID,
		req.EffortRequired,
		nullableTimeToString(req.PeriodStart, dateLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting resource requirement: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) DeleteRequirement(ctx context.Context, initiativeID, poolID string) error {
	query := `DELETE FROM initiative_resources WHERE initiative_id = ? AND pool_id = ?`
	if _, err := r.db.ExecContext(ctx, query, initiativeID, poolID); err != nil {
		return fmt.Errorf("deleting resource requirement: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) ListRequirements(ctx context.Context) ([]domain.ResourceRequirement, error) {
	query := `SELECT initiative_id, pool_id, effort_required, period_start
		FROM initiative_resources ORDER BY initiative_id, pool_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing resource requirements: %w", err)
	}
	defer rows.Close()

	var reqs []domain.ResourceRequirement
	for rows.Next() {
		var req domain.ResourceRequirement
		var periodStart sql.NullString
		if err := rows.Scan(&req.InitiativeID, &req.PoolID, &req.EffortRequired, &periodStart); err != nil {
			return nil, fmt.Errorf("scanning resource requirement: %w", err)
		}
		req.PeriodStart = parseNullableTime(periodStart, dateLayout)
		reqs = append(reqs, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resource requirements: %w", err)
	}
	return reqs, nil
}

func (r *SQLiteResourceRepo) CreateResource(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, name, role, pool_id, availability,
		start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		res.ID,
		res.Name,
		res.Role,
		res.PoolID,
		res.Availability,
		nullableTimeToString(res.StartDate, dateLayout),
		nullableTimeToString(res.EndDate, dateLayout),
		res.CreatedAt.Format(time.RFC3339),
		res.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) ListResourcesByPool(ctx context.Context, poolID string) ([]domain.Resource, error) {
	query := `SELECT id, name, role, pool_id, availability,
		start_date, end_date, created_at, updated_at
		FROM resources WHERE pool_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, poolID)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		var startDate, endDate sql.NullString
		var createdAt, updatedAt string
		if err := rows.Scan(&res.ID, &res.Name, &res.Role, &res.PoolID, &res.Availability,
			&startDate, &endDate, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning resource: %w", err)
		}
		res.StartDate = parseNullableTime(startDate, dateLayout)
		res.EndDate = parseNullableTime(endDate, dateLayout)
		var parseErr error
		res.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}
		res.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return resources, nil
}

func (r *SQLiteResourceRepo) DeleteResource(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}
	return nil
}

func scanPoolFrom(s rowScanner) (*domain.ResourcePool, error) {
	var p domain.ResourcePool
	var periodType, createdAt, updatedAt string
	var capacity sql.NullFloat64

	err := s.Scan(
		&p.ID, &p.Name, &p.Description, &capacity,
		&p.CapacityUnit, &periodType, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning resource pool: %w", err)
	}

	p.CapacityPerPeriod = nullableFloat(capacity)
	p.PeriodType = domain.PeriodType(periodType)
	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &p, nil
}
