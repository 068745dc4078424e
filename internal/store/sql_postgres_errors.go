package store

import (
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It separates failures the caller should
// report as infrastructure problems from ordinary operation errors.
type ErrorClassification int

const (
	// Operational indicates an ordinary failed operation: the database was
	// reachable and evaluated the request. This is the default
	// classification for unrecognised errors, constraint violations,
	// syntax errors, and data exceptions.
	Operational ErrorClassification = iota

	// Unavailable indicates that the database could not be reached or is
	// refusing work (connection exceptions, shutdown, network failures).
	// Repository methods surface these as [ErrStoreUnavailable].
	Unavailable
)

// ErrorClassificator classifies low-level database errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Network errors and pgconn
// errors of the connection/intervention classes are [Unavailable];
// everything else is [Operational].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Operational
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Unavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return Operational
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based
// on the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for
// the full list of PostgreSQL error codes.
//
// Unavailable codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - Class 53 — insufficient resources (53300)
//   - Class 57 — operator intervention (57P01, 57P02, 57P03)
//
// Any other code is classified as [Operational].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Unavailable

	// Class 53 — insufficient resources
	case pgerrcode.TooManyConnections:
		return Unavailable

	// Class 57 — operator intervention
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Unavailable
	}

	return Operational
}
