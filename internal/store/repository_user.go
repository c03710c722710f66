package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgtype"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and the places list stored in the
// "users" table as a UUID array.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, m *pgtype.Map) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Image,
		m.SQLScanner(&user.Places),
		&user.CreatedAt,
	)
	if user.Places == nil {
		user.Places = []string{}
	}
	return user, err
}

// CreateUser persists a new user record and returns the stored row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.conn(ctx).QueryRowContext(ctx, query, args...), pgtype.NewMap())
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Str("classification", r.db.classify(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByID retrieves a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildSelectUserQuery(ctx, map[string]any{"id": userID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

// FindUserByEmail retrieves a user by e-mail address.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	query, args, err := buildSelectUserQuery(ctx, map[string]any{"email": email})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.conn(ctx).QueryRowContext(ctx, query, args...), pgtype.NewMap())
	if err != nil {
		if isMissingRow(err) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).
			Str("func", funcName).
			Str("classification", r.db.classify(err)).
			Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns every user ordered by creation time.
// Returns an empty slice when there are none.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsers").
			Str("classification", r.db.classify(err)).
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	m := pgtype.NewMap()
	users := make([]models.User, 0)
	for rows.Next() {
		user, scanErr := scanUser(rows, m)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// AppendPlace adds placeID to the end of the user's place_ids array.
func (r *userRepository) AppendPlace(ctx context.Context, userID, placeID string) error {
	query, args, err := buildAppendUserPlaceQuery(ctx, userID, placeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.AppendPlace").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updatePlaces(ctx, "*userRepository.AppendPlace", userID, placeID, query, args)
}

// RemovePlace removes every occurrence of placeID from the user's place_ids array.
func (r *userRepository) RemovePlace(ctx context.Context, userID, placeID string) error {
	query, args, err := buildRemoveUserPlaceQuery(ctx, userID, placeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.RemovePlace").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.updatePlaces(ctx, "*userRepository.RemovePlace", userID, placeID, query, args)
}

func (r *userRepository) updatePlaces(ctx context.Context, funcName, userID, placeID, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Str("user_id", userID).
			Str("place_id", placeID).
			Str("classification", r.db.classify(err)).
			Msg("failed to update user places")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
