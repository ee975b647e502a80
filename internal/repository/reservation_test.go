package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationRow(id int64, start time.Time, rating any) []any {
	row := []any{id, int64(4), int64(1), start, start.AddDate(0, 0, 3)}
	return append(row, propertyRow(1, "Vancouver", 9000, rating)...)
}

func TestGetAllReservations(t *testing.T) {
	first := time.Date(2018, 9, 11, 0, 0, 0, 0, time.UTC)
	second := time.Date(2019, 1, 4, 0, 0, 0, 0, time.UTC)

	db := &fakeQuerier{rows: [][]any{
		reservationRow(1, first, 4.25),
		reservationRow(2, second, nil),
	}}
	repo := NewReservationRepository(db)

	reservations, err := repo.GetAllReservations(context.Background(), 4, 0)
	require.NoError(t, err)
	require.Len(t, reservations, 2)

	assert.Equal(t, int64(1), reservations[0].ID)
	assert.Equal(t, int64(4), reservations[0].GuestID)
	assert.Equal(t, first, reservations[0].StartDate)
	assert.Equal(t, first.AddDate(0, 0, 3), reservations[0].EndDate)
	assert.Equal(t, "Vancouver", reservations[0].Property.City)
	require.NotNil(t, reservations[0].AverageRating)
	assert.InDelta(t, 4.25, *reservations[0].AverageRating, 0.0001)
	assert.Nil(t, reservations[1].AverageRating)

	assert.Contains(t, db.sql, "WHERE reservations.guest_id = $1")
	assert.Contains(t, db.sql, "ORDER BY reservations.start_date")
	assert.Contains(t, db.sql, "LIMIT $2")
	assert.Equal(t, []any{int64(4), DefaultLimit}, db.args)
}

func TestGetAllReservationsEmpty(t *testing.T) {
	repo := NewReservationRepository(&fakeQuerier{})

	reservations, err := repo.GetAllReservations(context.Background(), 404, 5)
	require.NoError(t, err)
	assert.NotNil(t, reservations)
	assert.Empty(t, reservations)
	assert.Equal(t, Found, Classify(err))
}

func TestGetAllReservationsFailure(t *testing.T) {
	cause := errors.New("relation \"reservations\" does not exist")
	repo := NewReservationRepository(&fakeQuerier{err: cause})

	reservations, err := repo.GetAllReservations(context.Background(), 1, 5)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, reservations)
}
