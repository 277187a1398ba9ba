package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS scenarios (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		type               TEXT NOT NULL DEFAULT 'what_if'
		                   CHECK(type IN ('baseline','what_if','contingency')),
		is_baseline        INTEGER NOT NULL DEFAULT 0,
		parent_scenario_id TEXT NOT NULL DEFAULT '',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS capabilities (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		parent_id   TEXT NOT NULL DEFAULT '',
		colour      TEXT NOT NULL DEFAULT '',
		sort_order  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS systems (
		id                        TEXT PRIMARY KEY,
		name                      TEXT NOT NULL,
		description               TEXT NOT NULL DEFAULT '',
		owner                     TEXT NOT NULL DEFAULT '',
		vendor                    TEXT NOT NULL DEFAULT '',
		lifecycle_stage           TEXT NOT NULL DEFAULT '',
		criticality               TEXT NOT NULL DEFAULT '',
		support_end_date          TEXT,
		extended_support_end_date TEXT,
		capability_id             TEXT NOT NULL DEFAULT '',
		created_at                TEXT NOT NULL,
		updated_at                TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_systems_capability ON systems(capability_id)`,

	`CREATE TABLE IF NOT EXISTS initiatives (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		type            TEXT NOT NULL DEFAULT 'project'
		                CHECK(type IN ('project','epic','maintenance','upgrade','decommission')),
		status          TEXT NOT NULL DEFAULT 'proposed'
		                CHECK(status IN ('proposed','planned','in_progress','complete','on_hold','cancelled')),
		start_date      TEXT,
		end_date        TEXT,
		effort_estimate REAL,
		cost_estimate   REAL,
		priority        INTEGER NOT NULL DEFAULT 0,
		scenario_id     TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_initiatives_scenario ON initiatives(scenario_id)`,

	`CREATE TABLE IF NOT EXISTS initiative_dependencies (
		predecessor_id TEXT NOT NULL REFERENCES initiatives(id) ON DELETE CASCADE,
		successor_id   TEXT NOT NULL REFERENCES initiatives(id) ON DELETE CASCADE,
		type           TEXT NOT NULL DEFAULT 'finish_to_start'
		               CHECK(type IN ('finish_to_start','start_to_start','finish_to_finish','start_to_finish')),
		lag_days       INTEGER NOT NULL DEFAULT 0 CHECK(lag_days >= 0),
		PRIMARY KEY (predecessor_id, successor_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_dependencies_successor ON initiative_dependencies(successor_id)`,

	`CREATE TABLE IF NOT EXISTS constraints (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		type           TEXT NOT NULL DEFAULT 'other'
		               CHECK(type IN ('deadline','budget','resource','dependency','compliance','other')),
		hardness       TEXT NOT NULL DEFAULT 'soft' CHECK(hardness IN ('hard','soft')),
		effective_date TEXT,
		expiry_date    TEXT,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS initiative_constraints (
		initiative_id TEXT NOT NULL REFERENCES initiatives(id) ON DELETE CASCADE,
		constraint_id TEXT NOT NULL REFERENCES constraints(id) ON DELETE CASCADE,
		PRIMARY KEY (initiative_id, constraint_id)
	)`,

	`CREATE TABLE IF NOT EXISTS resource_pools (
		id                  TEXT PRIMARY KEY,
		name                TEXT NOT NULL,
		description         TEXT NOT NULL DEFAULT '',
		capacity_per_period REAL,
		capacity_unit       TEXT NOT NULL DEFAULT 'FTE',
		period_type         TEXT NOT NULL DEFAULT 'month'
		                    CHECK(period_type IN ('month','quarter','year')),
		created_at          TEXT NOT NULL,
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		role         TEXT NOT NULL DEFAULT '',
		pool_id      TEXT NOT NULL REFERENCES resource_pools(id) ON DELETE CASCADE,
		availability REAL NOT NULL DEFAULT 1.0,
		start_date   TEXT,
		end_date     TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_resources_pool ON resources(pool_id)`,

	`CREATE TABLE IF NOT EXISTS initiative_resources (
		initiative_id   TEXT NOT NULL REFERENCES initiatives(id) ON DELETE CASCADE,
		pool_id         TEXT NOT NULL REFERENCES resource_pools(id) ON DELETE CASCADE,
		effort_required REAL NOT NULL DEFAULT 0,
		period_start    TEXT,
		PRIMARY KEY (initiative_id, pool_id)
	)`,

	`CREATE TABLE IF NOT EXISTS financial_periods (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		type             TEXT NOT NULL DEFAULT 'year'
		                 CHECK(type IN ('month','quarter','year')),
		start_date       TEXT NOT NULL,
		end_date         TEXT NOT NULL,
		budget_available REAL,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,
}
