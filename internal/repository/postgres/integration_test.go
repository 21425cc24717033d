//go:build integration

package postgres

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cctvshop/storefront-api/internal/model"
	"github.com/cctvshop/storefront-api/internal/testutil"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
)

var testDB *sqlx.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := testutil.NewPostgresContainer(ctx)
	if err != nil {
		log.Fatalf("start postgres: %v", err)
	}

	testDB, err = sqlx.Connect("postgres", pgContainer.ConnectionString)
	if err != nil {
		log.Fatalf("connect to postgres: %v", err)
	}

	schema, err := os.ReadFile("../../../scripts/schema.sql")
	if err != nil {
		log.Fatalf("read schema: %v", err)
	}
	if _, err := testDB.ExecContext(ctx, string(schema)); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	code := m.Run()

	testDB.Close()
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("terminate postgres: %v", err)
	}

	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	_, err := testDB.Exec(`TRUNCATE payments, bookings CASCADE`)
	require.NoError(t, err)
}

func countRows(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, testDB.Get(&n, `SELECT COUNT(*) FROM `+table))
	return n
}

func insertBooking(t *testing.T, repo *bookingRepository, email, service, date string) *model.Booking {
	t.Helper()
	b := &model.Booking{
		Email:       email,
		ServiceName: service,
		Date:        date,
		Phone:       "01700000000",
		Price:       120,
	}
	accepted, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	require.True(t, accepted)
	return b
}

func TestBookingRepositoryRejectsDuplicateTuple(t *testing.T) {
	resetTables(t)
	repo := &bookingRepository{NewBaseRepository(testDB)}
	ctx := context.Background()

	insertBooking(t, repo, "alice@example.com", "CCTV Installation", "2026-09-15")

	dup := &model.Booking{
		Email:       "alice@example.com",
		ServiceName: "CCTV Installation",
		Date:        "2026-09-15",
		Phone:       "01811111111",
		Price:       150,
	}
	accepted, err := repo.Create(ctx, dup)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.Equal(t, 1, countRows(t, "bookings"))

	otherDate := &model.Booking{
		Email:       "alice@example.com",
		ServiceName: "CCTV Installation",
		Date:        "2026-09-16",
		Price:       120,
	}
	accepted, err = repo.Create(ctx, otherDate)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, 2, countRows(t, "bookings"))
}

func TestBookingRepositoryMarkPaidIdempotent(t *testing.T) {
	resetTables(t)
	repo := &bookingRepository{NewBaseRepository(testDB)}
	ctx := context.Background()

	b := insertBooking(t, repo, "bob@example.com", "Camera Repair", "2026-10-01")

	require.NoError(t, repo.MarkPaid(ctx, b.ID, "txn_100"))
	require.NoError(t, repo.MarkPaid(ctx, b.ID, "txn_100"))

	got, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, "txn_100", *got.TransactionID)

	err = repo.MarkPaid(ctx, uuid.New(), "txn_101")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPaymentRepositoryRecordMarksBookingPaid(t *testing.T) {
	resetTables(t)
	bookingRepo := &bookingRepository{NewBaseRepository(testDB)}
	paymentRepo := &paymentRepository{NewBaseRepository(testDB)}
	ctx := context.Background()

	b := insertBooking(t, bookingRepo, "carol@example.com", "CCTV Installation", "2026-11-20")

	err := paymentRepo.Record(ctx, &model.Payment{
		BookingID:     b.ID,
		Email:         "carol@example.com",
		Price:         120,
		TransactionID: "txn_200",
	})
	require.NoError(t, err)

	got, err := bookingRepo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Paid)
	require.NotNil(t, got.TransactionID)
	assert.Equal(t, "txn_200", *got.TransactionID)
	assert.Equal(t, 1, countRows(t, "payments"))
}

// A payment against a booking that does not exist must not survive the
// transaction: the payments table stays empty.
func TestPaymentRepositoryRecordMissingBookingLeavesNoRow(t *testing.T) {
	resetTables(t)
	paymentRepo := &paymentRepository{NewBaseRepository(testDB)}

	err := paymentRepo.Record(context.Background(), &model.Payment{
		BookingID:     uuid.New(),
		Email:         "dana@example.com",
		Price:         120,
		TransactionID: "txn_300",
	})
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 0, countRows(t, "payments"))
}
