package model

import "github.com/google/uuid"

// Booking is a customer's reservation of a named service for a specific date.
// The (email, service_name, booking_date) tuple is unique: the same customer
// cannot book the same service twice on one date.
type Booking struct {
	Base
	Email         string  `json:"email" db:"email"`
	ServiceName   string  `json:"serviceName" db:"service_name"`
	Date          string  `json:"date" db:"booking_date"`
	Phone         string  `json:"phone" db:"phone"`
	Price         float64 `json:"price" db:"price"`
	Paid          bool    `json:"paid" db:"paid"`
	TransactionID *string `json:"transactionId,omitempty" db:"transaction_id"`
}

// CreateBookingRequest represents booking parameters from the storefront.
type CreateBookingRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	ServiceName string  `json:"serviceName" binding:"required"`
	Date        string  `json:"date" binding:"required,bookingdate"`
	Phone       string  `json:"phone"`
	Price       float64 `json:"price" binding:"omitempty,gt=0"`
}

// BookingResult is the outcome of a booking attempt. A duplicate booking is a
// business-rule rejection, not an error: Accepted is false and Message names
// the conflicting date.
type BookingResult struct {
	Accepted bool       `json:"accepted"`
	ID       *uuid.UUID `json:"id,omitempty"`
	Message  string     `json:"message,omitempty"`
}
