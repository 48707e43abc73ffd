package repository

import (
	"context"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)
	List(ctx context.Context, page, limit int) ([]model.Payment, int64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return GetDB(ctx, r.db).Create(payment).Error
}

func (r *paymentRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.Payment{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns one page of payments, newest first, each preloaded with a
// narrow projection of its application for the admin listing.
func (r *paymentRepository) List(ctx context.Context, page, limit int) ([]model.Payment, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.Model(&model.Payment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var payments []model.Payment
	offset := (page - 1) * limit
	err := db.
		Preload("Application", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "fullname", "email", "phone", "status", "passport_number")
		}).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&payments).Error
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
