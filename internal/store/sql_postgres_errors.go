package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.inTx] whether a failed transaction may be
// attempted again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE classes reported by pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify retries server errors of a transient class and driver errors that
// pgconn marks as safe to retry (the request never reached the server).
// Everything else, constraint violations included, is final.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if pgconn.SafeToRetry(err) {
		return Retryable
	}
	return NonRetryable
}

// ClassifyPgError looks at the SQLSTATE class. Connection exceptions (08),
// transaction rollbacks such as serialization failures and deadlocks (40),
// and a server that is starting up or out of connections are transient.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.TooManyConnections:
		return Retryable
	default:
		return NonRetryable
	}
}
