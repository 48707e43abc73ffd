package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/model"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/repository"
	"github.com/fiamanillah/TravelLaneConnectBackend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// --- DTOs ---

// CreateApplicationRequest carries the applicant fields of the multipart
// submission. File parts are passed alongside, keyed by slot name.
type CreateApplicationRequest struct {
	Fullname        string `form:"fullname"`
	FatherName      string `form:"fatherName"`
	MotherName      string `form:"motherName"`
	Sex             string `form:"sex"`
	Age             int    `form:"age"`
	DOB             string `form:"dob"`
	Nationality     string `form:"nationality"`
	PassportNumber  string `form:"passportNumber"`
	MaritalStatus   string `form:"maritalStatus"`
	ResidentAddress string `form:"residentAddress"`
	District        string `form:"district"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`

	College              string `form:"college"`
	GraduationYear       string `form:"graduationYear"`
	FieldOfStudy         string `form:"fieldOfStudy"`
	ReferredBy           string `form:"referredBy"`
	EmploymentExperience string `form:"employmentExperience"`
	LastWorkPlace        string `form:"lastWorkPlace"`
}

// UpdateApplicationRequest is a partial update; only non-nil fields are
// applied. Identifier and timestamps are not updatable.
type UpdateApplicationRequest struct {
	Fullname        *string `json:"fullname"`
	FatherName      *string `json:"fatherName"`
	MotherName      *string `json:"motherName"`
	Sex             *string `json:"sex"`
	Age             *int    `json:"age"`
	DOB             *string `json:"dob"`
	Nationality     *string `json:"nationality"`
	PassportNumber  *string `json:"passportNumber"`
	MaritalStatus   *string `json:"maritalStatus"`
	ResidentAddress *string `json:"residentAddress"`
	District        *string `json:"district"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`

	College              *string `json:"college"`
	GraduationYear       *string `json:"graduationYear"`
	FieldOfStudy         *string `json:"fieldOfStudy"`
	ReferredBy           *string `json:"referredBy"`
	EmploymentExperience *string `json:"employmentExperience"`
	LastWorkPlace        *string `json:"lastWorkPlace"`

	PassportPhoto *string `json:"passportPhoto"`
	NidScan       *string `json:"nidScan"`
	PassportScan  *string `json:"passportScan"`
	Signature     *string `json:"signature"`

	ApplicationFormImages *[]string `json:"applicationFormImages"`

	Status        *string `json:"status"`
	BodyText      *string `json:"bodyText"`
	FooterText    *string `json:"footerText"`
	PayButtonText *string `json:"payButtonText"`
}

// --- Interface ---

type ApplicationService interface {
	Submit(ctx context.Context, req CreateApplicationRequest, files map[string]*multipart.FileHeader) (*model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	GetByPassportNumber(ctx context.Context, passportNumber string) (*model.Application, error)
	Update(ctx context.Context, id string, req UpdateApplicationRequest) (*model.Application, error)
	Delete(ctx context.Context, id string) error
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	fileStore       storage.FileStore
}

func NewApplicationService(applicationRepo repository.ApplicationRepository, fileStore storage.FileStore) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		fileStore:       fileStore,
	}
}

// --- Implementation ---

// Submit uploads each attached document slot in fixed order, then persists
// the application with the collected URLs. The first upload failure aborts
// the whole submission: nothing is persisted and files already uploaded in
// this request are left in place.
func (s *applicationService) Submit(ctx context.Context, req CreateApplicationRequest, files map[string]*multipart.FileHeader) (*model.Application, error) {
	// Namespaces the uploaded file names only; the record's primary key is
	// assigned by the store.
	uploadID := time.Now().UnixMilli()

	fileLinks := make(map[string]string, len(model.DocumentSlots))
	for _, slot := range model.DocumentSlots {
		file, ok := files[slot]
		if !ok || file == nil {
			continue
		}
		name := fmt.Sprintf("%s_%d_%s", slot, uploadID, storage.SanitizeFilename(file.Filename))
		url, err := s.fileStore.Upload(ctx, file, name)
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", slot, err)
		}
		fileLinks[slot] = url
	}

	application := buildApplication(req, fileLinks)
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	return application, nil
}

func (s *applicationService) List(ctx context.Context) ([]model.Application, error) {
	return s.applicationRepo.ListNewestFirst(ctx)
}

func (s *applicationService) GetByID(ctx context.Context, id string) (*model.Application, error) {
	applicationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("fetch application: %w", err)
	}
	return application, nil
}

func (s *applicationService) GetByPassportNumber(ctx context.Context, passportNumber string) (*model.Application, error) {
	application, err := s.applicationRepo.FindByPassportNumber(ctx, passportNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("fetch application by passport number: %w", err)
	}
	return application, nil
}

func (s *applicationService) Update(ctx context.Context, id string, req UpdateApplicationRequest) (*model.Application, error) {
	applicationID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields := req.fields()
	if len(fields) == 0 {
		return nil, ErrNoUpdateFields
	}

	if _, err := s.applicationRepo.FindByID(ctx, applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("fetch application: %w", err)
	}

	if err := s.applicationRepo.UpdateFields(ctx, applicationID, fields); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	return s.applicationRepo.FindByID(ctx, applicationID)
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	applicationID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.applicationRepo.Delete(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if !deleted {
		return ErrApplicationNotFound
	}
	// Remote files and payment records referencing this application are
	// intentionally left untouched.
	return nil
}

// --- Helpers ---

func buildApplication(req CreateApplicationRequest, fileLinks map[string]string) *model.Application {
	application := &model.Application{
		Fullname:        req.Fullname,
		FatherName:      req.FatherName,
		MotherName:      req.MotherName,
		Sex:             req.Sex,
		Age:             req.Age,
		DOB:             parseDOB(req.DOB),
		Nationality:     req.Nationality,
		PassportNumber:  req.PassportNumber,
		MaritalStatus:   req.MaritalStatus,
		ResidentAddress: req.ResidentAddress,
		District:        req.District,
		Email:           req.Email,
		Phone:           req.Phone,

		College:              defaultIfBlank(req.College),
		GraduationYear:       defaultIfBlank(req.GraduationYear),
		FieldOfStudy:         defaultIfBlank(req.FieldOfStudy),
		ReferredBy:           defaultIfBlank(req.ReferredBy),
		EmploymentExperience: defaultIfBlank(req.EmploymentExperience),
		LastWorkPlace:        defaultIfBlank(req.LastWorkPlace),

		PassportPhoto: fileLinks["passportPhoto"],
		NidScan:       fileLinks["nidScan"],
		PassportScan:  fileLinks["passportScan"],
		Signature:     fileLinks["signature"],

		Status:        model.StatusPending,
		BodyText:      model.DefaultBodyText,
		FooterText:    model.DefaultFooterText,
		PayButtonText: model.DefaultPayButtonText,
	}
	return application
}

func defaultIfBlank(value string) string {
	if value == "" {
		return model.NotSpecified
	}
	return value
}

func parseDOB(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	log.Printf("could not parse dob %q, storing zero date", raw)
	return time.Time{}
}

// fields maps the non-nil request fields onto their database columns.
func (r UpdateApplicationRequest) fields() map[string]interface{} {
	fields := make(map[string]interface{})

	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}

	setString("fullname", r.Fullname)
	setString("father_name", r.FatherName)
	setString("mother_name", r.MotherName)
	setString("sex", r.Sex)
	if r.Age != nil {
		fields["age"] = *r.Age
	}
	if r.DOB != nil {
		fields["dob"] = parseDOB(*r.DOB)
	}
	setString("nationality", r.Nationality)
	setString("passport_number", r.PassportNumber)
	setString("marital_status", r.MaritalStatus)
	setString("resident_address", r.ResidentAddress)
	setString("district", r.District)
	setString("email", r.Email)
	setString("phone", r.Phone)

	setString("college", r.College)
	setString("graduation_year", r.GraduationYear)
	setString("field_of_study", r.FieldOfStudy)
	setString("referred_by", r.ReferredBy)
	setString("employment_experience", r.EmploymentExperience)
	setString("last_work_place", r.LastWorkPlace)

	setString("passport_photo", r.PassportPhoto)
	setString("nid_scan", r.NidScan)
	setString("passport_scan", r.PassportScan)
	setString("signature", r.Signature)

	if r.ApplicationFormImages != nil {
		fields["application_form_images"] = datatypes.JSONSlice[string](*r.ApplicationFormImages)
	}

	setString("status", r.Status)
	setString("body_text", r.BodyText)
	setString("footer_text", r.FooterText)
	setString("pay_button_text", r.PayButtonText)

	return fields
}
