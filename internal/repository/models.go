package repository

import "time"

// User is a row of the users table. Password is stored exactly as given.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser holds the fields required to create a user.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Property is a row of the properties table. CostPerNight is in cents.
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Active            bool   `json:"active"`
}

// NewProperty holds the fourteen insertable property columns. Nothing is
// defaulted or validated here; zero values are inserted as given.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
}

// PropertyListing is a property with the average of its review ratings.
// AverageRating is nil for a property nobody has reviewed.
type PropertyListing struct {
	Property
	AverageRating *float64 `json:"average_rating"`
}

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id"`
	PropertyID int64     `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// ReservationListing is a guest's reservation joined with the reserved
// property and that property's average rating.
type ReservationListing struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating *float64 `json:"average_rating"`
}
