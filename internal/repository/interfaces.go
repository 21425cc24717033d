package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/cctvshop/storefront-api/internal/model"
)

// UserRepository manages storefront accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	PromoteToAdmin(ctx context.Context, id uuid.UUID) error
}

// BookingRepository manages booking records. Create reports accepted=false
// when the (email, service_name, booking_date) tuple already exists.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (accepted bool, err error)
	Get(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Booking, error)
	MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) error
}

// CatalogRepository reads the service catalog.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*model.Service, error)
	ListServiceNames(ctx context.Context) ([]*model.ServiceName, error)
}

// TechnicianRepository manages technician records.
type TechnicianRepository interface {
	Create(ctx context.Context, technician *model.Technician) error
	List(ctx context.Context) ([]*model.Technician, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository persists payment records. Record writes the payment row
// and marks the referenced booking paid inside one transaction.
type PaymentRepository interface {
	Record(ctx context.Context, payment *model.Payment) error
}
