package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same e-mail already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query or update targets a user
	// that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPlaceNotFound is returned when a query, update or delete targets
	// a place that does not exist.
	ErrPlaceNotFound = errors.New("place was not found")
)

// Image storage errors. They describe a bad upload rather than a storage
// failure.
var (
	// ErrUnsupportedImageType is returned for content types other than
	// png, jpg and jpeg.
	ErrUnsupportedImageType = errors.New("unsupported image type")

	// ErrImageTooLarge is returned when an upload exceeds the configured size.
	ErrImageTooLarge = errors.New("image is too large")

	// ErrInvalidImagePath is returned when a stored image reference points
	// outside the uploads directory.
	ErrInvalidImagePath = errors.New("invalid image path")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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

	// ErrRollingBackTransaction is returned together with the original error
	// when a failed transaction cannot be rolled back.
	ErrRollingBackTransaction = errors.New("failed to rollback transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
