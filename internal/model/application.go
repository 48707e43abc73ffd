package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Default values applied when the submission leaves optional fields blank.
const (
	NotSpecified  = "Not Specified"
	StatusPending = "Pending"

	DefaultBodyText      = "Body text not set yet."
	DefaultFooterText    = "Footer text not set yet."
	DefaultPayButtonText = "Pay Now"
)

// Document slot field names, in the fixed order uploads are performed.
var DocumentSlots = []string{"passportPhoto", "nidScan", "passportScan", "signature"}

// Application represents one submitted visa/travel application together with
// the URLs of its uploaded documents.
type Application struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Fullname        string    `gorm:"type:varchar(120)" json:"fullname"`
	FatherName      string    `gorm:"type:varchar(120)" json:"fatherName"`
	MotherName      string    `gorm:"type:varchar(120)" json:"motherName"`
	Sex             string    `gorm:"type:varchar(20)" json:"sex"`
	Age             int       `json:"age"`
	DOB             time.Time `gorm:"column:dob" json:"dob"`
	Nationality     string    `gorm:"type:varchar(80)" json:"nationality"`
	PassportNumber  string    `gorm:"type:varchar(40);index" json:"passportNumber"`
	MaritalStatus   string    `gorm:"type:varchar(30)" json:"maritalStatus"`
	ResidentAddress string    `gorm:"type:text" json:"residentAddress"`
	District        string    `gorm:"type:varchar(80)" json:"district"`
	Email           string    `gorm:"type:varchar(120)" json:"email"`
	Phone           string    `gorm:"type:varchar(30)" json:"phone"`

	// Optional academic/employment fields, "Not Specified" when absent.
	College              string `gorm:"type:varchar(120)" json:"college"`
	GraduationYear       string `gorm:"type:varchar(10)" json:"graduationYear"`
	FieldOfStudy         string `gorm:"type:varchar(120)" json:"fieldOfStudy"`
	ReferredBy           string `gorm:"type:varchar(120)" json:"referredBy"`
	EmploymentExperience string `gorm:"type:text" json:"employmentExperience"`
	LastWorkPlace        string `gorm:"type:varchar(120)" json:"lastWorkPlace"`

	// Document URLs, one per attachment slot, set during submission only.
	PassportPhoto string `gorm:"type:text" json:"passportPhoto"`
	NidScan       string `gorm:"type:text" json:"nidScan"`
	PassportScan  string `gorm:"type:text" json:"passportScan"`
	Signature     string `gorm:"type:text" json:"signature"`

	// Supplementary images appended after submission.
	ApplicationFormImages datatypes.JSONSlice[string] `json:"applicationFormImages"`

	Status string `gorm:"type:varchar(40);default:'Pending'" json:"status"`

	// Presentational overrides shown by the admin front-end.
	BodyText      string `gorm:"type:text" json:"bodyText"`
	FooterText    string `gorm:"type:text" json:"footerText"`
	PayButtonText string `gorm:"type:varchar(80)" json:"payButtonText"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
