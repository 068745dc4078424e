package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when an operation targets a note that
	// does not exist in the database. Deleting an already-deleted note
	// returns this as well: deletion is idempotent in effect, not in
	// result.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteNotSaved is returned when an INSERT completes without error
	// but the number of affected rows is zero, indicating that no data was
	// actually persisted.
	ErrNoteNotSaved = errors.New("note was not saved")

	// ErrStoreUnavailable is returned when the database cannot be reached
	// or refuses the operation for infrastructure reasons (connection
	// loss, shutdown in progress). Distinct from domain failures: the
	// request was never evaluated against the data.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrSnapshotDisabled is returned by client-side code when the offline
	// snapshot was not configured (empty snapshot path).
	ErrSnapshotDisabled = errors.New("offline snapshot is disabled")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan note rows")
)
