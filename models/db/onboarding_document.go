package dbmodels

import (
	"database/sql/driver"
	"hr-onboarding-backend/models"
	"time"

	"github.com/pkg/errors"
)

type OnboardingDocument struct {
	BaseSpaceModel
	ApplicantID  string                `gorm:"type:varchar(36);uniqueIndex:idx_applicant_document"`
	DocumentType models.DocumentType   `gorm:"type:varchar(100);uniqueIndex:idx_applicant_document"`
	Payload      DocumentPayload       `gorm:"type:jsonb"`
	Status       models.DocumentStatus `gorm:"type:varchar(50)"`
	FileID       string                `gorm:"type:varchar(36)"` // rendered pdf
	Agreement    models.Agreement      `gorm:"type:varchar(20)"`
	SubmittedAt  *time.Time
}

// DocumentPayload - raw json of the type specific form
type DocumentPayload []byte

func (p DocumentPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	return string(p), nil
}

func (p *DocumentPayload) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		*p = append((*p)[:0], v...)
	case string:
		*p = DocumentPayload(v)
	case nil:
		*p = nil
	default:
		return errors.Errorf("unsupported type for DocumentPayload: %T", value)
	}
	return nil
}
