package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmcalloway/roadmap/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db *sql.DB
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(db *sql.DB) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: db}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	query := `INSERT INTO initiative_dependencies (predecessor_id, successor_id, type, lag_days)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.PredecessorID, d.SuccessorID, string(d.Type), d.LagDays)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, predecessorID, successorID string) error {
	query := `DELETE FROM initiative_dependencies WHERE predecessor_id = ? AND successor_id = ?`
	_, err := r.db.ExecContext(ctx, query, predecessorID, successorID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) List(ctx context.Context) ([]domain.Dependency, error) {
	query := `SELECT predecessor_id, successor_id, type, lag_days
		FROM initiative_dependencies ORDER BY predecessor_id, successor_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListPredecessors(ctx context.Context, successorID string) ([]domain.Dependency, error) {
	query := `SELECT predecessor_id, successor_id, type, lag_days
		FROM initiative_dependencies WHERE successor_id = ? ORDER BY predecessor_id`
	rows, err := r.db.QueryContext(ctx, query, successorID)
	if err != nil {
		return nil, fmt.Errorf("listing predecessors: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListSuccessors(ctx context.Context, predecessorID string) ([]domain.Dependency, error) {
	query := `SELECT predecessor_id, successor_id, type, lag_days
		FROM initiative_dependencies WHERE predecessor_id = ? ORDER BY successor_id`
	rows, err := r.db.QueryContext(ctx, query, predecessorID)
	if err != nil {
		return nil, fmt.Errorf("listing successors: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

// scanDependencies scans multiple dependency rows from *sql.Rows.
func (r *SQLiteDependencyRepo) scanDependencies(rows *sql.Rows) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		var depType string
		if err := rows.Scan(&d.PredecessorID, &d.SuccessorID, &depType, &d.LagDays); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		d.Type = domain.DependencyType(depType)
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}
