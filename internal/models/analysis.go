package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Analysis statuses. A record is Pending until a report has been generated
// for it.
const (
	AnalysisPending  = "Pending"
	AnalysisComplete = "Complete"
)

// Analysis is one hair analysis intake: questionnaire answers plus optional
// camera metrics and scalp image, and at most one current report. Writing a
// new report is always a full replace.
type Analysis struct {
	ID             uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	TestID         string         `gorm:"size:20;uniqueIndex;not null" json:"test_id"`
	CustomerID     *uuid.UUID     `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Customer       *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Answers        JSONBAnswers   `gorm:"type:jsonb;not null;default:'{}'" json:"answers"`
	ScalpImageURL  string         `gorm:"size:512" json:"scalp_image_url"`
	Status         string         `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Report         *JSONBReport   `gorm:"type:jsonb" json:"report,omitempty"`
	ClinicianNotes string         `gorm:"type:text" json:"clinician_notes"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
}

func (Analysis) TableName() string {
	return "analyses"
}

func (a *Analysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
