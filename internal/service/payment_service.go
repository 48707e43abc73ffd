package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/model"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/repository"
	"github.com/fiamanillah/TravelLaneConnectBackend/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

type SavePaymentRequest struct {
	PaymentOption string          `json:"paymentOption"`
	Number        string          `json:"number"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	PIN           string          `json:"pin"`
	ApplicationID string          `json:"applicationId"`
}

// PaymentResponse is the redacted view returned after saving: no PIN.
type PaymentResponse struct {
	ID            string          `json:"id"`
	PaymentOption string          `json:"paymentOption"`
	Number        string          `json:"number"`
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	ApplicationID string          `json:"applicationId"`
	CreatedAt     string          `json:"createdAt"`
}

// ApplicationSummary is the projection of the referenced application shown in
// the payment listing.
type ApplicationSummary struct {
	ID             string `json:"id"`
	Fullname       string `json:"fullname"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Status         string `json:"status"`
	PassportNumber string `json:"passportNumber"`
}

type PaymentListItem struct {
	ID            string              `json:"id"`
	PaymentOption string              `json:"paymentOption"`
	Number        string              `json:"number"`
	TransactionID string              `json:"transactionId"`
	Amount        decimal.Decimal     `json:"amount"`
	ApplicationID string              `json:"applicationId"`
	Application   *ApplicationSummary `json:"application,omitempty"`
	CreatedAt     string              `json:"createdAt"`
}

type PaymentPage struct {
	TotalPayments int64             `json:"totalPayments"`
	TotalPages    int               `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
	Payments      []PaymentListItem `json:"payments"`
}

// --- Interface ---

type PaymentService interface {
	SavePayment(ctx context.Context, req SavePaymentRequest) (PaymentResponse, error)
	ListPayments(ctx context.Context, page, limit int) (PaymentPage, error)
}

type paymentService struct {
	paymentRepo     repository.PaymentRepository
	applicationRepo repository.ApplicationRepository
	txManager       repository.TransactionManager
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	applicationRepo repository.ApplicationRepository,
	txManager repository.TransactionManager,
) PaymentService {
	return &paymentService{
		paymentRepo:     paymentRepo,
		applicationRepo: applicationRepo,
		txManager:       txManager,
	}
}

// --- Implementation ---

func (s *paymentService) SavePayment(ctx context.Context, req SavePaymentRequest) (PaymentResponse, error) {
	if err := validatePayment(req); err != nil {
		return PaymentResponse{}, err
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return PaymentResponse{}, ErrPaymentApplicationNotFound
	}
	if _, err := s.applicationRepo.FindByID(ctx, applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PaymentResponse{}, ErrPaymentApplicationNotFound
		}
		return PaymentResponse{}, fmt.Errorf("resolve application: %w", err)
	}

	payment := model.Payment{
		PaymentOption: req.PaymentOption,
		Number:        req.Number,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		PIN:           req.PIN,
		ApplicationID: applicationID,
	}

	// Duplicate transaction ids are checked proactively; the unique index is
	// the backstop for concurrent saves of the same id.
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		exists, checkErr := s.paymentRepo.ExistsByTransactionID(txCtx, req.TransactionID)
		if checkErr != nil {
			return fmt.Errorf("check transaction id: %w", checkErr)
		}
		if exists {
			return ErrDuplicateTransaction
		}
		if createErr := s.paymentRepo.Create(txCtx, &payment); createErr != nil {
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return ErrDuplicateTransaction
			}
			return fmt.Errorf("save payment: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return PaymentResponse{}, err
	}

	return PaymentResponse{
		ID:            payment.ID.String(),
		PaymentOption: payment.PaymentOption,
		Number:        payment.Number,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		ApplicationID: payment.ApplicationID.String(),
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *paymentService) ListPayments(ctx context.Context, page, limit int) (PaymentPage, error) {
	payments, total, err := s.paymentRepo.List(ctx, page, limit)
	if err != nil {
		return PaymentPage{}, fmt.Errorf("fetch payments: %w", err)
	}

	items := make([]PaymentListItem, 0, len(payments))
	for _, p := range payments {
		items = append(items, toPaymentListItem(p))
	}

	totalPages := pagination.TotalPages(total, limit)

	return PaymentPage{
		TotalPayments: total,
		TotalPages:    totalPages,
		CurrentPage:   page,
		Payments:      items,
	}, nil
}

// --- Validation ---

var approvedPaymentOptions = map[string]bool{
	model.PaymentOptionBkash:  true,
	model.PaymentOptionNagad:  true,
	model.PaymentOptionRocket: true,
}

func validatePayment(req SavePaymentRequest) error {
	switch {
	case req.PaymentOption == "":
		return fmt.Errorf("%w: paymentOption is required", ErrValidation)
	case !approvedPaymentOptions[req.PaymentOption]:
		return fmt.Errorf("%w: paymentOption must be one of bKash, Nagad, Rocket", ErrValidation)
	case req.Number == "":
		return fmt.Errorf("%w: number is required", ErrValidation)
	case req.TransactionID == "":
		return fmt.Errorf("%w: transactionId is required", ErrValidation)
	case !req.Amount.IsPositive():
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	case req.ApplicationID == "":
		return fmt.Errorf("%w: applicationId is required", ErrValidation)
	}
	if err := validatePIN(req.PIN); err != nil {
		return err
	}
	return nil
}

func validatePIN(pin string) error {
	if len(pin) < 4 || len(pin) > 6 {
		return fmt.Errorf("%w: PIN must be 4 to 6 digits", ErrValidation)
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: PIN must contain digits only", ErrValidation)
		}
	}
	return nil
}

// --- Mapping ---

func toPaymentListItem(p model.Payment) PaymentListItem {
	item := PaymentListItem{
		ID:            p.ID.String(),
		PaymentOption: p.PaymentOption,
		Number:        p.Number,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		ApplicationID: p.ApplicationID.String(),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
	if p.Application != nil {
		item.Application = &ApplicationSummary{
			ID:             p.Application.ID.String(),
			Fullname:       p.Application.Fullname,
			Email:          p.Application.Email,
			Phone:          p.Application.Phone,
			Status:         p.Application.Status,
			PassportNumber: p.Application.PassportNumber,
		}
	}
	return item
}
