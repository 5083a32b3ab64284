// Package recordstore provides the durable table abstraction behind the
// entity stores: one flat delimited-text table per entity type, header row
// first, insertion order preserved. The contract is append, full scan, and
// whole-table rewrite; there is no random-access update.
package recordstore

import (
	"context"
	"iter"
)

// Record is one row of a table. Column order matches the table header.
type Record []string

// Store is the narrow persistence contract the entity stores build on.
//
// Scan is lazy and restartable: each range over the returned sequence
// re-reads the table from the start. Rewrite replaces the entire table and
// costs O(n) in the table size; entity stores use it to apply in-place field
// updates since the underlying storage cannot update a single row.
type Store interface {
	Append(ctx context.Context, table string, rec Record) error
	Scan(table string) iter.Seq2[Record, error]
	Rewrite(ctx context.Context, table string, recs []Record) error
}

// Table names and their fixed column layouts. Column order is part of the
// on-disk compatibility contract and must not change.
const (
	TableCustomers     = "customers"
	TableOfficers      = "loan_officers"
	TableApplications  = "applications"
	TableNotifications = "notifications"
	TableAuditLog      = "audit_logs"
	TableBranchVisits  = "branch_visits"
)

// Headers maps each table to its header row.
var Headers = map[string][]string{
	TableCustomers:     {"id", "name", "dob", "gender", "mobile", "email", "address", "pan", "aadhaar", "pin"},
	TableOfficers:      {"id", "name", "empcode", "pin"},
	TableApplications:  {"id", "customer_id", "amount", "tenure", "weight", "carat", "status", "failure_reason", "extracted_name", "extracted_dob", "extracted_id_last4", "created_at"},
	TableNotifications: {"customer_id", "application_id", "sender", "message", "created_at"},
	TableAuditLog:      {"timestamp", "actor", "application_id", "action", "remarks"},
	TableBranchVisits:  {"application_id", "branch", "branch_code", "date", "time", "status"},
}
