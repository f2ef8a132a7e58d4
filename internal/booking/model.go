package booking

import "time"

const StatusConfirmed = "Confirmed"

// Table is a bookable dining table.
type Table struct {
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
	Image    string `json:"image"`
}

type Booking struct {
	ID          string    `json:"_id"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	TableNumber string    `json:"tableNumber"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Guests      int       `json:"guests"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BookRequest payload of POST /api/booking.
// swagger:model BookRequest
type BookRequest struct {
	UserID      string `json:"userId"      example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	TableNumber string `json:"tableNumber" example:"T4"`
	Date        string `json:"date"        example:"2024-05-01"`
	Time        string `json:"time"        example:"19:30"`
	Guests      int    `json:"guests"      example:"4"`
}
