package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration hits the unique
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches no account.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProfileNotFound is returned when the user has no profile row.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrDocumentNotFound is returned when a document does not exist or
	// belongs to another user.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrNoteNotFound is returned when a note does not exist or belongs to
	// another user.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrCategoryNotFound is returned when a custom category does not exist or
	// belongs to another user.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrAimaProcessNotFound is returned when the user has not started an
	// AIMA process yet.
	ErrAimaProcessNotFound = errors.New("aima process was not found")

	// ErrObjectNotFound is returned by file storages for a missing object.
	ErrObjectNotFound = errors.New("stored object was not found")

	// ErrInvalidObjectKey is returned when an object key would escape the
	// storage root.
	ErrInvalidObjectKey = errors.New("invalid object key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSONB column value cannot be encoded
	// or decoded.
	ErrEncodingJSON = errors.New("failed to encode jsonb column")
)
