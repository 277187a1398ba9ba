package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

const scenarioColumns = `id, name, description, type, is_baseline,
		parent_scenario_id, created_at, updated_at`

// SQLiteScenarioRepo implements ScenarioRepo using a SQLite database.
type SQLiteScenarioRepo struct {
	db *sql.DB
}

// NewSQLiteScenarioRepo creates a new SQLiteScenarioRepo.
func NewSQLiteScenarioRepo(db *sql.DB) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: db}
}

func (r *SQLiteScenarioRepo) Create(ctx context.Context, s *domain.Scenario) error {
	query := `INSERT INTO scenarios (` + scenarioColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Description,
		string(s.Type),
		boolToInt(s.IsBaseline),
		s.ParentScenarioID,
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) GetByID(ctx context.Context, id string) (*domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	s, err := scanScenarioFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scenario not found")
	}
	return s, err
}

func (r *SQLiteScenarioRepo) GetBaseline(ctx context.Context) (*domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE is_baseline = 1 LIMIT 1`
	row := r.db.QueryRowContext(ctx, query)

	s, err := scanScenarioFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no baseline scenario defined")
	}
	return s, err
}

func (r *SQLiteScenarioRepo) List(ctx context.Context) ([]domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios ORDER BY is_baseline DESC, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []domain.Scenario
	for rows.Next() {
		s, err := scanScenarioFrom(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenarios: %w", err)
	}
	return scenarios, nil
}

func (r *SQLiteScenarioRepo) Update(ctx context.Context, s *domain.Scenario) error {
	query := `UPDATE scenarios SET
		name = ?, description = ?, type = ?, is_baseline = ?,
		parent_scenario_id = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		s.Name,
		s.Description,
		string(s.Type),
		boolToInt(s.IsBaseline),
		s.ParentScenarioID,
		time.Now().UTC().Format(time.RFC3339),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating scenario: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	return nil
}

func scanScenarioFrom(s rowScanner) (*domain.Scenario, error) {
	var sc domain.Scenario
	var scenarioType, createdAt, updatedAt string
	var isBaseline int

	err := s.Scan(
		&sc.ID, &sc.Name, &sc.Description, &scenarioType, &isBaseline,
		&sc.ParentScenarioID, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning scenario: %w", err)
	}

	sc.Type = domain.ScenarioType(scenarioType)
	sc.IsBaseline = intToBool(isBaseline)
	var parseErr error
	sc.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	sc.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &sc, nil
}
