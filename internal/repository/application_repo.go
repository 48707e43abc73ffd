package repository

import (
	"context"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	FindByPassportNumber(ctx context.Context, passportNumber string) (*model.Application, error)
	ListNewestFirst(ctx context.Context) ([]model.Application, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Save(ctx context.Context, application *model.Application) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *model.Application) error {
	return GetDB(ctx, r.db).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	if err := GetDB(ctx, r.db).First(&application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByPassportNumber(ctx context.Context, passportNumber string) (*model.Application, error) {
	var application model.Application
	if err := GetDB(ctx, r.db).First(&application, "passport_number = ?", passportNumber).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) ListNewestFirst(ctx context.Context) ([]model.Application, error) {
	var applications []model.Application
	if err := GetDB(ctx, r.db).Order("created_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateFields applies a partial update; keys are column names already
// validated by the service layer.
func (r *applicationRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return GetDB(ctx, r.db).Model(&model.Application{}).Where("id = ?", id).Updates(fields).Error
}

func (r *applicationRepository) Save(ctx context.Context, application *model.Application) error {
	return GetDB(ctx, r.db).Save(application).Error
}

// Delete reports whether a row was actually removed so the service can
// distinguish not-found from success.
func (r *applicationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res := GetDB(ctx, r.db).Delete(&model.Application{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
