package audit

import (
	"context"
	"database/sql"
	"fmt"

	"aurum/pkg/domain"
)

// PostgresStore persists the audit trail in a table with a primary-key
// index, for deployments that outgrow the flat file.
//
// Schema:
//
//	CREATE TABLE audit_logs (
//	    id             BIGSERIAL PRIMARY KEY,
//	    ts             TIMESTAMPTZ NOT NULL,
//	    actor          TEXT NOT NULL,
//	    application_id TEXT NOT NULL,
//	    action         TEXT NOT NULL,
//	    remarks        TEXT NOT NULL DEFAULT ''
//	);
//	CREATE INDEX audit_logs_application_idx ON audit_logs (application_id);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_logs (ts, actor, application_id, action, remarks)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.Timestamp, e.Actor, e.ApplicationID.String(), e.Action, e.Remarks,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByApplication(ctx context.Context, appID domain.ApplicationID) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ts, actor, application_id, action, remarks
		 FROM audit_logs WHERE application_id = $1 ORDER BY id`,
		appID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var rawAppID string
		if err := rows.Scan(&e.Timestamp, &e.Actor, &rawAppID, &e.Action, &e.Remarks); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.ApplicationID = domain.ApplicationID(rawAppID)
		out = append(out, e)
	}
	return out, rows.Err()
}
