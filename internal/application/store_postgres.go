package application

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"aurum/internal/identity"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

// PostgresStore is the relational Store variant. Update runs inside a
// transaction with SELECT ... FOR UPDATE, so the row lock gives the same
// single-writer guarantee the flat-file store gets from its mutex.
//
// Schema:
//
//	CREATE TABLE applications (
//	    id                TEXT PRIMARY KEY,
//	    customer_id       TEXT NOT NULL,
//	    amount            BIGINT NOT NULL,
//	    tenure            INT NOT NULL,
//	    weight            DOUBLE PRECISION NOT NULL,
//	    carat             INT NOT NULL,
//	    status            TEXT NOT NULL,
//	    failure_reason    TEXT NOT NULL DEFAULT '',
//	    extracted_name    TEXT NOT NULL DEFAULT '',
//	    extracted_dob     TEXT NOT NULL DEFAULT '',
//	    extracted_id_last4 TEXT NOT NULL DEFAULT '',
//	    created_at        TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX applications_customer_idx ON applications (customer_id);
//	CREATE INDEX applications_status_idx ON applications (status);
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const appColumns = `id, customer_id, amount, tenure, weight, carat, status,
	failure_reason, extracted_name, extracted_dob, extracted_id_last4, created_at`

func (s *PostgresStore) Create(ctx context.Context, app Application) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applications (`+appColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		string(app.ID), string(app.CustomerID), app.Amount, app.TenureMonths,
		app.NetWeightGrams, app.Carat, string(app.Status), app.FailureReason,
		app.Extracted.Name, app.Extracted.DOB, app.Extracted.IDLast4,
		app.CreatedAt.UTC(),
	)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "insert application")
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id domain.ApplicationID) (Application, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+appColumns+` FROM applications WHERE id = $1`, string(id))
	return scanApplication(row)
}

func (s *PostgresStore) ListByCustomer(ctx context.Context, id domain.CustomerID) ([]Application, error) {
	return s.query(ctx,
		`SELECT `+appColumns+` FROM applications WHERE customer_id = $1 ORDER BY created_at`,
		string(id))
}

func (s *PostgresStore) ListPending(ctx context.Context) ([]Application, error) {
	return s.query(ctx,
		`SELECT `+appColumns+` FROM applications WHERE status = $1 OR status = $2 ORDER BY created_at`,
		string(StatusSubmitted), string(StatusUnderReview))
}

func (s *PostgresStore) query(ctx context.Context, q string, args ...any) ([]Application, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "query applications")
	}
	defer rows.Close()
	var out []Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "scan applications")
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, id domain.ApplicationID, mutate func(Application) (Application, error)) (Application, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "begin update")
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		`SELECT `+appColumns+` FROM applications WHERE id = $1 FOR UPDATE`, string(id))
	app, err := scanApplication(row)
	if err != nil {
		return Application{}, err
	}
	app, err = mutate(app)
	if err != nil {
		return Application{}, err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE applications SET status = $2, failure_reason = $3 WHERE id = $1`,
		string(app.ID), string(app.Status), app.FailureReason)
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "update application")
	}
	if err := tx.Commit(); err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "commit update")
	}
	return app, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var (
		app     Application
		id, cid string
		status  string
		ext     identity.Extracted
		created time.Time
	)
	err := row.Scan(&id, &cid, &app.Amount, &app.TenureMonths, &app.NetWeightGrams,
		&app.Carat, &status, &app.FailureReason, &ext.Name, &ext.DOB, &ext.IDLast4, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Application{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "scan application")
	}
	app.ID = domain.ApplicationID(id)
	app.CustomerID = domain.CustomerID(cid)
	app.Status = Status(status)
	app.Extracted = ext
	app.CreatedAt = created
	return app, nil
}
