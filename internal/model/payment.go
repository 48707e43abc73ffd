package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentOption enum constants — the supported mobile-payment providers.
const (
	PaymentOptionBkash  = "bKash"
	PaymentOptionNagad  = "Nagad"
	PaymentOptionRocket = "Rocket"
)

// Payment represents one payment attempt against an application. The PIN is
// stored but never serialized back to clients.
type Payment struct {
	ID            uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PaymentOption string          `gorm:"type:varchar(20);not null" json:"paymentOption"`
	Number        string          `gorm:"type:varchar(30);not null" json:"number"`
	TransactionID string          `gorm:"type:varchar(64);uniqueIndex;not null" json:"transactionId"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	PIN           string          `gorm:"column:pin;type:varchar(6);not null" json:"-"`
	ApplicationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"applicationId"`
	Application   *Application    `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
