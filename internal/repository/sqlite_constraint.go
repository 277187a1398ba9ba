package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmcalloway/roadmap/internal/domain"
)

const constraintColumns = `id, name, description, type, hardness,
		effective_date, expiry_date, created_at, updated_at`

// SQLiteConstraintRepo implements ConstraintRepo using a SQLite database.
type SQLiteConstraintRepo struct {
	db *sql.DB
}

// NewSQLiteConstraintRepo creates a new SQLiteConstraintRepo.
func NewSQLiteConstraintRepo(db *sql.DB) *SQLiteConstraintRepo {
	return &SQLiteConstraintRepo{db: db}
}

func (r *SQLiteConstraintRepo) Create(ctx context.Context, c *domain.Constraint) error {
	query := `INSERT INTO constraints (` + constraintColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Description,
		string(c.Type),
		string(c.Hardness),
		nullableTimeToString(c.EffectiveDate, dateLayout),
		nullableTimeToString(c.ExpiryDate, dateLayout),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting constraint: %w", err)
	}
	return nil
}

func (r *SQLiteConstraintRepo) GetByID(ctx context.Context, id string) (*domain.Constraint, error) {
	query := `SELECT ` + constraintColumns + ` FROM constraints WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	c, err := scanConstraintFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("constraint not found")
	}
	return c, err
}

func (r *SQLiteConstraintRepo) List(ctx context.Context) ([]domain.Constraint, error) {
	query := `SELECT ` + constraintColumns + ` FROM constraints ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing constraints: %w", err)
	}
	defer rows.Close()

	var constraints []domain.Constraint
	for rows.Next() {
		c, err := scanConstraintFrom(rows)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating constraints: %w", err)
	}
	return constraints, nil
}

func (r *SQLiteConstraintRepo) Update(ctx context.Context, c *domain.Constraint) error {
	query := `UPDATE constraints SET
		name = ?, description = ?, type = ?, hardness = ?,
		effective_date = ?, expiry_date = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Description,
		string(c.Type),
		string(c.Hardness),
		nullableTimeToString(c.EffectiveDate, dateLayout),
		nullableTimeToString(c.ExpiryDate, dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating constraint: %w", err)
	}
	return nil
}

func (r *SQLiteConstraintRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM constraints WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting constraint: %w", err)
	}
	return nil
}

func (r *SQLiteConstraintRepo) Link(ctx context.Context, initiativeID, constraintID string) error {
	query := `INSERT OR IGNORE INTO initiative_constraints (initiative_id, constraint_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, initiativeID, constraintID); err != nil {
		return fmt.Errorf("linking constraint: %w", err)
	}
	return nil
}

func (r *SQLiteConstraintRepo) Unlink(ctx context.Context, initiativeID, constraintID string) error {
	query := `DELETE FROM initiative_constraints WHERE initiative_id = ? AND constraint_id = ?`
	if _, err := r.db.ExecContext(ctx, query, initiativeID, constraintID); err != nil {
		return fmt.Errorf("unlinking constraint: %w", err)
	}
	return nil
}

func (r *SQLiteConstraintRepo) ListLinks(ctx context.Context) ([]domain.ConstraintLink, error) {
	query := `SELECT initiative_id, constraint_id FROM initiative_constraints
		ORDER BY initiative_id, constraint_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing constraint links: %w", err)
	}
	defer rows.Close()

	var links []domain.ConstraintLink
	for rows.Next() {
		var l domain.ConstraintLink
		if err := rows.Scan(&l.InitiativeID, &l.ConstraintID); err != nil {
			return nil, fmt.Errorf("scanning constraint link: %w", err)
		}
		links = append(links, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating constraint links: %w", err)
	}
	return links, nil
}

func scanConstraintFrom(s rowScanner) (*domain.Constraint, error) {
	var c domain.Constraint
	var cType, hardness, createdAt, updatedAt string
	var effective, expiry sql.NullString

	err := s.Scan(
		&c.ID, &c.Name, &c.Description, &cType, &hardness,
		&effective, &expiry, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning constraint: %w", err)
	}

	c.Type = domain.ConstraintType(cType)
	c.Hardness = domain.Hardness(hardness)
	c.EffectiveDate = parseNullableTime(effective, dateLayout)
	c.ExpiryDate = parseNullableTime(expiry, dateLayout)
	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
