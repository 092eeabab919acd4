package booking

import (
	"context"
	"database/sql"

	"github.com/erplora/OnlineBooking-Service/pkg/dbmetrics"
)

// Database executor interfaces shared with dbmetrics
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Implemented by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
