package appointment

import (
	"context"
	"database/sql"

	"github.com/itpmanager/ITP-SchedulingService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both on
// a plain *sql.DB and on the metrics-wrapped handle.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner interface for starting transactions.
// Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
