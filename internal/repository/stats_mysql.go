package repository

import (
	"context"
	"database/sql"

	"github.com/passgen/passgen-go/internal/model"
)

const createStatsTable = `
	CREATE TABLE IF NOT EXISTS strength_stats (
		kind       VARCHAR(16) NOT NULL,
		label      VARCHAR(16) NOT NULL,
		total      BIGINT      NOT NULL DEFAULT 0,
		updated_at TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (kind, label)
	)`

// MySQLStatsRepository stores counters in the strength_stats table.
type MySQLStatsRepository struct {
	db *sql.DB
}

// NewMySQLStatsRepository creates a new MySQLStatsRepository.
func NewMySQLStatsRepository(db *sql.DB) *MySQLStatsRepository {
	return &MySQLStatsRepository{db: db}
}

func (r *MySQLStatsRepository) Name() string { return "mysql" }

// EnsureSchema creates the strength_stats table if it does not exist.
func (r *MySQLStatsRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createStatsTable)
	return err
}

// Increment adds one to the counter, creating the row on first use.
func (r *MySQLStatsRepository) Increment(ctx context.Context, kind, label string) error {
	if kind == "" || label == "" {
		return ErrInvalidStatsKey
	}

	query := `INSERT INTO strength_stats (kind, label, total) VALUES (?, ?, 1)
		ON DUPLICATE KEY UPDATE total = total + 1`

	_, err := r.db.ExecContext(ctx, query, kind, label)
	return err
}

// Snapshot returns every counter ordered by kind, then label.
func (r *MySQLStatsRepository) Snapshot(ctx context.Context) ([]model.StatsCounter, error) {
	query := `SELECT kind, label, total FROM strength_stats ORDER BY kind, label`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counters []model.StatsCounter
	for rows.Next() {
		var c model.StatsCounter
		if err := rows.Scan(&c.Kind, &c.Label, &c.Total); err != nil {
			return nil, err
		}
		counters = append(counters, c)
	}

	return counters, rows.Err()
}
