package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// initiativeColumns is the canonical SELECT column list for initiatives.
const initiativeColumns = `id, name, description, type, status,
		start_date, end_date, effort_estimate, cost_estimate,
		priority, scenario_id, created_at, updated_at`

// SQLiteInitiativeRepo implements InitiativeRepo using a SQLite database.
type SQLiteInitiativeRepo struct {
	db *sql.DB
}

// NewSQLiteInitiativeRepo creates a new SQLiteInitiativeRepo.
func NewSQLiteInitiativeRepo(db *sql.DB) *SQLiteInitiativeRepo {
	return &SQLiteInitiativeRepo{db: db}
}

func (r *SQLiteInitiativeRepo) Create(ctx context.Context, i *domain.Initiative) error {
	query := `INSERT INTO initiatives (` + initiativeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.Name,
		i.Description,
		string(i.Type),
		string(i.Status),
		nullableTimeToString(i.StartDate, dateLayout),
		nullableTimeToString(i.EndDate, dateLayout),
		nullableFloatToValue(i.EffortEstimate),
		nullableFloatToValue(i.CostEstimate),
		i.Priority,
		i.ScenarioID,
		i.CreatedAt.Format(time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting initiative: %w", err)
	}
	return nil
}

func (r *SQLiteInitiativeRepo) GetByID(ctx context.Context, id string) (*domain.Initiative, error) {
	query := `SELECT ` + initiativeColumns + ` FROM initiatives WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanInitiative(row)
}

func (r *SQLiteInitiativeRepo) List(ctx context.Context) ([]domain.Initiative, error) {
	query := `SELECT ` + initiativeColumns + ` FROM initiatives ORDER BY start_date, name`
	return r.queryInitiatives(ctx, query)
}

func (r *SQLiteInitiativeRepo) ListByScenario(ctx context.Context, scenarioID string) ([]domain.Initiative, error) {
	query := `SELECT ` + initiativeColumns + ` FROM initiatives
		WHERE scenario_id = ? ORDER BY start_date, name`
	return r.queryInitiatives(ctx, query, scenarioID)
}

func (r *SQLiteInitiativeRepo) Update(ctx context.Context, i *domain.Initiative) error {
	query := `UPDATE initiatives SET
		name = ?, description = ?, type = ?, status = ?,
		start_date = ?, end_date = ?, effort_estimate = ?, cost_estimate = ?,
		priority = ?, scenario_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		i.Name,
		i.Description,
		string(i.Type),
		string(i.Status),
		nullableTimeToString(i.StartDate, dateLayout),
		nullableTimeToString(i.EndDate, dateLayout),
		nullableFloatToValue(i.EffortEstimate),
		nullableFloatToValue(i.CostEstimate),
		i.Priority,
		i.ScenarioID,
		time.Now().UTC().Format(time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating initiative: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("initiative %s not found", i.ID)
	}
	return nil
}

func (r *SQLiteInitiativeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM initiatives WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting initiative: %w", err)
	}
	return nil
}

func (r *SQLiteInitiativeRepo) queryInitiatives(ctx context.Context, query string, args ...interface{}) ([]domain.Initiative, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing initiatives: %w", err)
	}
	defer rows.Close()

	var initiatives []domain.Initiative
	for rows.Next() {
		i, err := r.scanInitiativeRow(rows)
		if err != nil {
			return nil, err
		}
		initiatives = append(initiatives, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating initiatives: %w", err)
	}
	return initiatives, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *SQLiteInitiativeRepo) scanInitiative(row *sql.Row) (*domain.Initiative, error) {
	i, err := scanInitiativeFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("initiative not found")
	}
	return i, err
}

func (r *SQLiteInitiativeRepo) scanInitiativeRow(rows *sql.Rows) (*domain.Initiative, error) {
	return scanInitiativeFrom(rows)
}

func scanInitiativeFrom(s rowScanner) (*domain.Initiative, error) {
	var i domain.Initiative
	var initType, status, createdAt, updatedAt string
	var startDate, endDate sql.NullString
	var effort, cost sql.NullFloat64

	err := s.Scan(
		&i.ID, &i.Name, &i.Description, &initType, &status,
		&startDate, &endDate, &effort, &cost,
		&i.Priority, &i.ScenarioID, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning initiative: %w", err)
	}

	i.Type = domain.InitiativeType(initType)
	i.Status = domain.InitiativeStatus(status)
	i.StartDate = parseNullableTime(startDate, dateLayout)
	i.EndDate = parseNullableTime(endDate, dateLayout)
	i.EffortEstimate = nullableFloat(effort)
	i.CostEstimate = nullableFloat(cost)
	var parseErr error
	i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &i, nil
}
