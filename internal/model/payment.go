package model

import "github.com/google/uuid"

// Payment records a completed charge against a booking. Rows are immutable
// once written.
type Payment struct {
	Base
	BookingID     uuid.UUID `json:"bookingId" db:"booking_id"`
	Email         string    `json:"email" db:"email"`
	Price         float64   `json:"price" db:"price"`
	TransactionID string    `json:"transactionId" db:"transaction_id"`
}

// CreateIntentRequest represents payment-intent parameters.
type CreateIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreateIntentResponse carries the client secret needed to complete the
// charge client-side.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// RecordPaymentRequest represents a confirmed payment to reconcile.
type RecordPaymentRequest struct {
	BookingID     uuid.UUID `json:"bookingId" binding:"required"`
	Email         string    `json:"email" binding:"required,email"`
	Price         float64   `json:"price" binding:"required,gt=0"`
	TransactionID string    `json:"transactionId" binding:"required"`
}

// TokenResponse is the wire shape for GET /jwt. AccessToken is empty when no
// account exists for the requested email.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
