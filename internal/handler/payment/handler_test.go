package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cctvshop/storefront-api/internal/model"
	paymentservice "github.com/cctvshop/storefront-api/internal/service/payment"
	apperrors "github.com/cctvshop/storefront-api/pkg/errors"
)

type fakeGateway struct {
	err error
}

func (f *fakeGateway) CreateIntent(_ context.Context, price float64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "pi_secret", nil
}

type fakePaymentRepo struct {
	recorded []*model.Payment
	err      error
}

func (f *fakePaymentRepo) Record(_ context.Context, p *model.Payment) error {
	if f.err != nil {
		return f.err
	}
	f.recorded = append(f.recorded, p)
	return nil
}

func newTestEngine(gateway *fakeGateway, repo *fakePaymentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(paymentservice.NewService(gateway, repo))

	r := gin.New()
	r.POST("/create-payment-intent", h.CreateIntent)
	r.POST("/payments", h.RecordPayment)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateIntent(t *testing.T) {
	r := newTestEngine(&fakeGateway{}, &fakePaymentRepo{})

	w := postJSON(r, "/create-payment-intent", map[string]float64{"price": 49.99})
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CreateIntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_secret", resp.ClientSecret)
}

func TestCreateIntentMissingPrice(t *testing.T) {
	r := newTestEngine(&fakeGateway{}, &fakePaymentRepo{})

	w := postJSON(r, "/create-payment-intent", map[string]float64{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIntentGatewayError(t *testing.T) {
	gateway := &fakeGateway{err: apperrors.Gateway("failed to create payment intent", nil)}
	r := newTestEngine(gateway, &fakePaymentRepo{})

	w := postJSON(r, "/create-payment-intent", map[string]float64{"price": 10})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRecordPayment(t *testing.T) {
	repo := &fakePaymentRepo{}
	r := newTestEngine(&fakeGateway{}, repo)

	w := postJSON(r, "/payments", map[string]interface{}{
		"bookingId":     uuid.NewString(),
		"email":         "a@x.com",
		"price":         99,
		"transactionId": "tx_123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.recorded, 1)
	assert.Equal(t, "tx_123", repo.recorded[0].TransactionID)
}

func TestRecordPaymentMissingBooking(t *testing.T) {
	repo := &fakePaymentRepo{err: apperrors.NotFound("booking", nil)}
	r := newTestEngine(&fakeGateway{}, repo)

	w := postJSON(r, "/payments", map[string]interface{}{
		"bookingId":     uuid.NewString(),
		"email":         "a@x.com",
		"price":         99,
		"transactionId": "tx_123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
