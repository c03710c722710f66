package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-places/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns  = []string{"id", "name", "email", "password", "image", "place_ids", "created_at"}
	placeColumns = []string{"id", "title", "description", "address", "lat", "lng", "image", "creator", "created_at"}
)

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.
		Insert(user.TableName()).
		Columns("id", "name", "email", "password", "image").
		Values(user.ID, user.Name, user.Email, user.Password, user.Image).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
}

func buildSelectUserQuery(ctx context.Context, where sq.Eq) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildSelectAllUsersQuery(ctx context.Context) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at", "id").
		ToSql()
}

func buildAppendUserPlaceQuery(ctx context.Context, userID, placeID string) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("place_ids", sq.Expr("array_append(place_ids, ?::uuid)", placeID)).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildRemoveUserPlaceQuery(ctx context.Context, userID, placeID string) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("place_ids", sq.Expr("array_remove(place_ids, ?::uuid)", placeID)).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertPlaceQuery(ctx context.Context, place models.Place) (string, []any, error) {
	return psql.
		Insert(place.TableName()).
		Columns("id", "title", "description", "address", "lat", "lng", "image", "creator").
		Values(place.ID, place.Title, place.Description, place.Address,
			place.Location.Lat, place.Location.Lng, place.Image, place.Creator).
		Suffix("RETURNING " + joinColumns(placeColumns)).
		ToSql()
}

func buildSelectPlaceByIDQuery(ctx context.Context, placeID string) (string, []any, error) {
	return psql.
		Select(placeColumns...).
		From(models.Place{}.TableName()).
		Where(sq.Eq{"id": placeID}).
		ToSql()
}

func buildSelectPlacesByCreatorQuery(ctx context.Context, userID string) (string, []any, error) {
	return psql.
		Select(placeColumns...).
		From(models.Place{}.TableName()).
		Where(sq.Eq{"creator": userID}).
		OrderBy("created_at", "id").
		ToSql()
}

func buildUpdatePlaceQuery(ctx context.Context, place models.Place) (string, []any, error) {
	return psql.
		Update(place.TableName()).
		Set("title", place.Title).
		Set("description", place.Description).
		Where(sq.Eq{"id": place.ID}).
		Suffix("RETURNING " + joinColumns(placeColumns)).
		ToSql()
}

func buildDeletePlaceQuery(ctx context.Context, placeID string) (string, []any, error) {
	return psql.
		Delete(models.Place{}.TableName()).
		Where(sq.Eq{"id": placeID}).
		ToSql()
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
