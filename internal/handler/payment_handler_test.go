package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentService struct {
	save func(req service.SavePaymentRequest) (service.PaymentResponse, error)
	list func(page, limit int) (service.PaymentPage, error)
}

func (s *stubPaymentService) SavePayment(_ context.Context, req service.SavePaymentRequest) (service.PaymentResponse, error) {
	return s.save(req)
}
func (s *stubPaymentService) ListPayments(_ context.Context, page, limit int) (service.PaymentPage, error) {
	return s.list(page, limit)
}

func newPaymentRouter(svc *stubPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPaymentHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func TestSavePaymentCreated(t *testing.T) {
	appID := uuid.NewString()
	router := newPaymentRouter(&stubPaymentService{
		save: func(req service.SavePaymentRequest) (service.PaymentResponse, error) {
			assert.Equal(t, "TXN-0001", req.TransactionID)
			assert.Equal(t, "1234", req.PIN)
			return service.PaymentResponse{
				ID:            uuid.NewString(),
				PaymentOption: "bKash",
				TransactionID: req.TransactionID,
				ApplicationID: appID,
			}, nil
		},
	})

	payload := `{"paymentOption":"bKash","number":"01712345678","transactionId":"TXN-0001","amount":5500,"pin":"1234","applicationId":"` + appID + `"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `"Payment information saved successfully"`, string(body["message"]))
	// The redacted payment view never includes the PIN.
	assert.NotContains(t, rec.Body.String(), `"pin"`)
}

func TestSavePaymentConflict(t *testing.T) {
	router := newPaymentRouter(&stubPaymentService{
		save: func(service.SavePaymentRequest) (service.PaymentResponse, error) {
			return service.PaymentResponse{}, service.ErrDuplicateTransaction
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"Transaction ID already exists"}`, rec.Body.String())
}

func TestSavePaymentUnknownApplication(t *testing.T) {
	router := newPaymentRouter(&stubPaymentService{
		save: func(service.SavePaymentRequest) (service.PaymentResponse, error) {
			return service.PaymentResponse{}, service.ErrPaymentApplicationNotFound
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Application not found for this payment."}`, rec.Body.String())
}

func TestListPaymentsDefaultsPagination(t *testing.T) {
	router := newPaymentRouter(&stubPaymentService{
		list: func(page, limit int) (service.PaymentPage, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 10, limit)
			return service.PaymentPage{
				TotalPayments: 0,
				TotalPages:    0,
				CurrentPage:   page,
				Payments:      []service.PaymentListItem{},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalPayments":0,"totalPages":0,"currentPage":1,"payments":[]}`, rec.Body.String())
}
