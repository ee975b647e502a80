package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/database"
)

// Reservations of unreviewed properties are kept; their average is NULL.
const getAllReservations = `
	SELECT reservations.id, reservations.guest_id, reservations.property_id,
		reservations.start_date, reservations.end_date,
		` + propertyColumns + `,
		avg(property_reviews.rating)::float8 AS average_rating
	FROM reservations
	JOIN properties ON reservations.property_id = properties.id
	LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
	WHERE reservations.guest_id = $1
	GROUP BY properties.id, reservations.id
	ORDER BY reservations.start_date
	LIMIT $2`

type ReservationRepository struct {
	db database.Querier
}

func NewReservationRepository(db database.Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// GetAllReservations returns a guest's reservations, earliest start date
// first, at most limit rows (DefaultLimit when limit <= 0).
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]ReservationListing, error) {
	rows, err := r.db.Query(ctx, getAllReservations, guestID, effectiveLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]ReservationListing, 0)
	for rows.Next() {
		var listing ReservationListing

		dest := []any{
			&listing.ID,
			&listing.GuestID,
			&listing.PropertyID,
			&listing.StartDate,
			&listing.EndDate,
		}
		dest = append(dest, propertyFields(&listing.Property)...)
		dest = append(dest, &listing.AverageRating)

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}
