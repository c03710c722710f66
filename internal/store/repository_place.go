package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/models"
)

// placeRepository is the PostgreSQL-backed implementation of [PlaceRepository]
// operating on the "places" table.
type placeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlaceRepository constructs a [PlaceRepository] backed by the provided
// database connection and logger.
func NewPlaceRepository(db *DB, logger *logger.Logger) PlaceRepository {
	logger.Debug().Msg("creating place repository")
	return &placeRepository{
		db:     db,
		logger: logger,
	}
}

func scanPlace(row rowScanner) (models.Place, error) {
	var place models.Place
	err := row.Scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Address,
		&place.Location.Lat,
		&place.Location.Lng,
		&place.Image,
		&place.Creator,
		&place.CreatedAt,
	)
	return place, err
}

func (p *placeRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPlaceQuery(ctx, place)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.CreatePlace").Msg("failed to build query")
		return models.Place{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanPlace(p.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*placeRepository.CreatePlace").
			Str("creator", place.Creator).
			Str("classification", p.db.classify(err)).
			Msg("error inserting place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (p *placeRepository) FindPlaceByID(ctx context.Context, placeID string) (models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlaceByIDQuery(ctx, placeID)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlaceByID").Msg("failed to build query")
		return models.Place{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	place, err := scanPlace(p.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if isMissingRow(err) {
			return models.Place{}, ErrPlaceNotFound
		}

		log.Err(err).
			Str("func", "*placeRepository.FindPlaceByID").
			Str("place_id", placeID).
			Str("classification", p.db.classify(err)).
			Msg("error selecting place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return place, nil
}

// FindPlacesByCreator returns the places created by userID, oldest first.
// Returns an empty slice when there are none.
func (p *placeRepository) FindPlacesByCreator(ctx context.Context, userID string) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlacesByCreatorQuery(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.FindPlacesByCreator").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*placeRepository.FindPlacesByCreator").
			Str("user_id", userID).
			Str("classification", p.db.classify(err)).
			Msg("failed to execute query for getting user places")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	places := make([]models.Place, 0)
	for rows.Next() {
		place, scanErr := scanPlace(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*placeRepository.FindPlacesByCreator").
				Str("user_id", userID).
				Msg("failed to scan place row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		places = append(places, place)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*placeRepository.FindPlacesByCreator").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return places, nil
}

func (p *placeRepository) UpdatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePlaceQuery(ctx, place)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.UpdatePlace").Msg("failed to build query")
		return models.Place{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanPlace(p.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if isMissingRow(err) {
			return models.Place{}, ErrPlaceNotFound
		}

		log.Err(err).
			Str("func", "*placeRepository.UpdatePlace").
			Str("place_id", place.ID).
			Str("classification", p.db.classify(err)).
			Msg("error updating place")
		return models.Place{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (p *placeRepository) DeletePlace(ctx context.Context, placeID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePlaceQuery(ctx, placeID)
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.DeletePlace").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		if isMissingRow(err) {
			return ErrPlaceNotFound
		}

		log.Err(err).
			Str("func", "*placeRepository.DeletePlace").
			Str("place_id", placeID).
			Str("classification", p.db.classify(err)).
			Msg("error deleting place")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*placeRepository.DeletePlace").Msg("failed to get affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPlaceNotFound
	}

	return nil
}
