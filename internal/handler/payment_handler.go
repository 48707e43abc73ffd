package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/service"
	"github.com/fiamanillah/TravelLaneConnectBackend/pkg/pagination"
	"github.com/fiamanillah/TravelLaneConnectBackend/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.POST("/payments", h.SavePayment)
		api.GET("/payments", h.ListPayments)
	}
}

type savePaymentResponse struct {
	Message string                  `json:"message"`
	Payment service.PaymentResponse `json:"payment"`
}

// SavePayment records one payment attempt against an application
// @Summary      Record payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SavePaymentRequest  true  "Payment payload"
// @Success      201      {object}  savePaymentResponse
// @Failure      400      {object}  response.ErrorBody
// @Failure      404      {object}  response.ErrorBody
// @Failure      409      {object}  response.ErrorBody
// @Router       /api/payments [post]
func (h *PaymentHandler) SavePayment(c *gin.Context) {
	var req service.SavePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid request payload: "+err.Error()))
		return
	}

	payment, err := h.paymentService.SavePayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, response.Error(err.Error()))
		case errors.Is(err, service.ErrPaymentApplicationNotFound):
			c.JSON(http.StatusNotFound, response.Error("Application not found for this payment."))
		case errors.Is(err, service.ErrDuplicateTransaction):
			c.JSON(http.StatusConflict, response.Error("Transaction ID already exists"))
		default:
			log.Printf("Error saving payment: %v", err)
			c.JSON(http.StatusInternalServerError, response.Error("An error occurred while saving payment information"))
		}
		return
	}

	c.JSON(http.StatusCreated, savePaymentResponse{
		Message: "Payment information saved successfully",
		Payment: payment,
	})
}

// ListPayments returns one page of payments with their application projection
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Items per page (default 10)"
// @Success      200    {object}  service.PaymentPage
// @Failure      500    {object}  response.ErrorBody
// @Router       /api/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	params := pagination.Parse(c)

	page, err := h.paymentService.ListPayments(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		log.Printf("Error retrieving payments: %v", err)
		c.JSON(http.StatusInternalServerError, response.Error("Error retrieving payments"))
		return
	}

	c.JSON(http.StatusOK, page)
}
