package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// description is the only nullable text column.
const propertyColumns = `properties.id, properties.owner_id, properties.title, coalesce(properties.description, ''),
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.street, properties.city, properties.province, properties.post_code, properties.country,
	properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
	properties.active`

const searchPropertiesBase = `
	SELECT ` + propertyColumns + `, avg(property_reviews.rating)::float8 AS average_rating
	FROM properties
	LEFT JOIN property_reviews ON properties.id = property_reviews.property_id`

const insertProperty = `
	INSERT INTO properties (
		owner_id,
		title,
		description,
		thumbnail_photo_url,
		cover_photo_url,
		cost_per_night,
		street,
		city,
		province,
		post_code,
		country,
		parking_spaces,
		number_of_bathrooms,
		number_of_bedrooms
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
	) RETURNING ` + propertyColumns

// PropertyFilter lists the optional search predicates. A zero field is
// not applied.
//
// Prices are in dollars. The price range only applies when both bounds
// are set; a single bound is ignored rather than treated as open-ended.
type PropertyFilter struct {
	City                 string  `json:"city"`
	OwnerID              int64   `json:"owner_id"`
	MinimumPricePerNight float64 `json:"minimum_price_per_night"`
	MaximumPricePerNight float64 `json:"maximum_price_per_night"`
	MinimumRating        float64 `json:"minimum_rating"`
}

// HasPriceRange reports whether both price bounds are set.
func (f PropertyFilter) HasPriceRange() bool {
	return f.MinimumPricePerNight != 0 && f.MaximumPricePerNight != 0
}

// DollarsToCents converts a dollar amount into the cents stored in
// cost_per_night, rounded to the nearest cent.
func DollarsToCents(dollars float64) int64 {
	return decimal.NewFromFloat(dollars).Shift(2).Round(0).IntPart()
}

type PropertyRepository struct {
	db database.Querier
}

func NewPropertyRepository(db database.Querier) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// buildPropertySearch renders the filtered search. Predicates are added
// in a fixed order: city, owner, price range, then the minimum rating,
// which filters the aggregated average and therefore lives in HAVING.
func buildPropertySearch(filter PropertyFilter, limit int) *selectBuilder {
	qb := newSelectBuilder(searchPropertiesBase)

	if filter.City != "" {
		qb.Where("properties.city LIKE ?", "%"+filter.City+"%")
	}

	if filter.OwnerID != 0 {
		qb.Where("properties.owner_id = ?", filter.OwnerID)
	}

	if filter.HasPriceRange() {
		qb.Where("properties.cost_per_night BETWEEN ? AND ?",
			DollarsToCents(filter.MinimumPricePerNight),
			DollarsToCents(filter.MaximumPricePerNight),
		)
	}

	qb.GroupBy("properties.id")

	if filter.MinimumRating != 0 {
		qb.Having("avg(property_reviews.rating) >= ?", filter.MinimumRating)
	}

	return qb.OrderBy("properties.cost_per_night").Limit(effectiveLimit(limit))
}

// GetAllProperties returns the properties matching every set filter,
// cheapest first, at most limit rows (DefaultLimit when limit <= 0).
func (r *PropertyRepository) GetAllProperties(ctx context.Context, filter PropertyFilter, limit int) ([]PropertyListing, error) {
	query, args, err := buildPropertySearch(filter, limit).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build property search: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	defer rows.Close()

	listings := make([]PropertyListing, 0)
	for rows.Next() {
		var listing PropertyListing
		if err := rows.Scan(append(propertyFields(&listing.Property), &listing.AverageRating)...); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	return listings, nil
}

// AddProperty inserts all fourteen columns positionally and returns the
// stored row, including its generated id.
func (r *PropertyRepository) AddProperty(ctx context.Context, property NewProperty) (*Property, error) {
	row := r.db.QueryRow(ctx, insertProperty,
		property.OwnerID,
		property.Title,
		property.Description,
		property.ThumbnailPhotoURL,
		property.CoverPhotoURL,
		property.CostPerNight,
		property.Street,
		property.City,
		property.Province,
		property.PostCode,
		property.Country,
		property.ParkingSpaces,
		property.NumberOfBathrooms,
		property.NumberOfBedrooms,
	)

	created, err := scanProperty(row)
	if err != nil {
		return nil, fmt.Errorf("failed to add property: %w", err)
	}

	return created, nil
}

func propertyFields(p *Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Country,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Active,
	}
}

func scanProperty(row pgx.Row) (*Property, error) {
	var p Property
	if err := row.Scan(propertyFields(&p)...); err != nil {
		return nil, err
	}
	return &p, nil
}
