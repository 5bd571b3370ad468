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
	`CREATE TABLE IF NOT EXISTS export_runs (
		id            TEXT PRIMARY KEY,
		lang          TEXT NOT NULL,
		status        TEXT NOT NULL DEFAULT 'running'
		              CHECK(status IN ('running','done','failed')),
		nuclide_count INTEGER NOT NULL DEFAULT 0,
		isotope_count INTEGER NOT NULL DEFAULT 0,
		started_at    TEXT NOT NULL,
		finished_at   TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS nuclides (
		z            INTEGER PRIMARY KEY CHECK(z >= 0 AND z <= 118),
		run_id       TEXT NOT NULL REFERENCES export_runs(id) ON DELETE CASCADE,
		symbol       TEXT NOT NULL UNIQUE,
		name         TEXT NOT NULL,
		period       INTEGER NOT NULL,
		group_no     INTEGER NOT NULL,
		block        TEXT NOT NULL,
		category     TEXT NOT NULL,
		weight       REAL NOT NULL,
		melt         REAL,
		boil         REAL,
		state        TEXT NOT NULL,
		stability    TEXT NOT NULL,
		origin       TEXT NOT NULL,
		bio          TEXT NOT NULL,
		known_index  INTEGER NOT NULL,
		year         INTEGER NOT NULL DEFAULT 0,
		discoverer   TEXT NOT NULL DEFAULT '',
		etymology    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_nuclides_run ON nuclides(run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_nuclides_category ON nuclides(category)`,

	`CREATE TABLE IF NOT EXISTS isotopes (
		z          INTEGER NOT NULL REFERENCES nuclides(z) ON DELETE CASCADE,
		a          INTEGER NOT NULL CHECK(a >= z),
		abundance  REAL CHECK(abundance IS NULL OR (abundance >= 0 AND abundance <= 100)),
		halflife   REAL CHECK(halflife IS NULL OR halflife > 0),
		decay_code TEXT NOT NULL DEFAULT '',
		occurrence TEXT NOT NULL,
		stability  TEXT NOT NULL,
		PRIMARY KEY (z, a)
	)`,

	`CREATE TABLE IF NOT EXISTS nuclide_names (
		z    INTEGER NOT NULL REFERENCES nuclides(z) ON DELETE CASCADE,
		lang TEXT NOT NULL,
		name TEXT NOT NULL,
		PRIMARY KEY (z, lang)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_export_runs_started ON export_runs(started_at)`,

	// Temperature the physical states were evaluated at.
	`ALTER TABLE export_runs ADD COLUMN temperature REAL NOT NULL DEFAULT 273.15`,
}
