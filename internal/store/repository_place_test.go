// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlaceRepo(t *testing.T) (*placeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &placeRepository{db: db, logger: logger.Nop()}, mock
}

func testPlace() models.Place {
	return models.Place{
		ID:          "p1",
		Title:       "Empire State Building",
		Description: "One of the most famous sky scrapers",
		Address:     "20 W 34th St, New York, NY 10001",
		Location:    models.Location{Lat: 40.7484474, Lng: -73.9871516},
		Image:       "uploads/images/p1.png",
		Creator:     "u1",
	}
}

func placeRow(rows *sqlmock.Rows, p models.Place) *sqlmock.Rows {
	return rows.AddRow(p.ID, p.Title, p.Description, p.Address, p.Location.Lat, p.Location.Lng, p.Image, p.Creator, time.Now())
}

func TestCreatePlace_Success(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)
	p := testPlace()

	mock.ExpectQuery("INSERT INTO places").
		WithArgs(p.ID, p.Title, p.Description, p.Address, p.Location.Lat, p.Location.Lng, p.Image, p.Creator).
		WillReturnRows(placeRow(sqlmock.NewRows(testPlaceColumns), p))

	created, err := repo.CreatePlace(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p.ID, created.ID)
	assert.Equal(t, p.Location, created.Location)
	assert.Equal(t, p.Creator, created.Creator)
}

func TestCreatePlace_ForeignKeyViolation(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery("INSERT INTO places").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreatePlace(context.Background(), testPlace())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindPlaceByID(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)
	p := testPlace()

	mock.ExpectQuery(`SELECT (.+) FROM places WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(placeRow(sqlmock.NewRows(testPlaceColumns), p))

	found, err := repo.FindPlaceByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, p.Title, found.Title)
}

func TestFindPlaceByID_NotFound(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery(`FROM places WHERE id`).
		WillReturnRows(sqlmock.NewRows(testPlaceColumns))

	_, err := repo.FindPlaceByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestFindPlaceByID_MalformedID(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery(`FROM places WHERE id`).
		WithArgs("abc").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.FindPlaceByID(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrPlaceNotFound)
	assert.NotErrorIs(t, err, ErrExecutingQuery)
}

func TestFindPlaceByID_DBError(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery(`FROM places WHERE id`).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.FindPlaceByID(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrPlaceNotFound)
}

func TestFindPlacesByCreator(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)
	p1 := testPlace()
	p2 := testPlace()
	p2.ID = "p2"

	rows := sqlmock.NewRows(testPlaceColumns)
	placeRow(rows, p1)
	placeRow(rows, p2)
	mock.ExpectQuery(`SELECT (.+) FROM places WHERE creator = \$1 ORDER BY created_at, id`).
		WithArgs("u1").
		WillReturnRows(rows)

	places, err := repo.FindPlacesByCreator(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "p1", places[0].ID)
	assert.Equal(t, "p2", places[1].ID)
}

func TestFindPlacesByCreator_Empty(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery(`FROM places WHERE creator`).
		WillReturnRows(sqlmock.NewRows(testPlaceColumns))

	places, err := repo.FindPlacesByCreator(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestFindPlacesByCreator_QueryError(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery(`FROM places WHERE creator`).
		WillReturnError(errors.New("boom"))

	_, err := repo.FindPlacesByCreator(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestUpdatePlace(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)
	p := testPlace()
	p.Title = "New title"
	p.Description = "New description"

	mock.ExpectQuery(`UPDATE places SET title = \$1, description = \$2 WHERE id = \$3 RETURNING`).
		WithArgs("New title", "New description", "p1").
		WillReturnRows(placeRow(sqlmock.NewRows(testPlaceColumns), p))

	updated, err := repo.UpdatePlace(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, p.Address, updated.Address)
}

func TestUpdatePlace_NotFound(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectQuery(`UPDATE places`).
		WillReturnRows(sqlmock.NewRows(testPlaceColumns))

	_, err := repo.UpdatePlace(context.Background(), testPlace())
	assert.ErrorIs(t, err, ErrPlaceNotFound)
}

func TestDeletePlace(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectExec(`DELETE FROM places WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeletePlace(context.Background(), "p1"))
}

func TestDeletePlace_NotFound(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectExec(`DELETE FROM places`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeletePlace(context.Background(), "p1"), ErrPlaceNotFound)
}

func TestDeletePlace_MalformedID(t *testing.T) {
	repo, mock := newTestPlaceRepo(t)

	mock.ExpectExec(`DELETE FROM places`).
		WithArgs("abc").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	assert.ErrorIs(t, repo.DeletePlace(context.Background(), "abc"), ErrPlaceNotFound)
}
