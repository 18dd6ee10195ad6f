package store

import "errors"

// Low-level database operation errors. They are wrapped with the failing
// operation; callers should match them with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the store fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction, typically because another process holds the write lock
	// for longer than the busy timeout.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning a result row fails.
	ErrScanningRows = errors.New("failed to scan kv rows")

	// ErrEncodingValue is returned when a value given to Set cannot be
	// encoded as JSON.
	ErrEncodingValue = errors.New("failed to encode value")
)

// ErrEmptyKey is returned when a write names an empty key.
var ErrEmptyKey = errors.New("empty key")
