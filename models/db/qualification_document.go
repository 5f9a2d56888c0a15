package dbmodels

import "hr-onboarding-backend/models"

type QualificationDocument struct {
	BaseSpaceModel
	ApplicantID string                      `gorm:"type:varchar(36);uniqueIndex:idx_applicant_qualification"`
	DocType     models.QualificationDocType `gorm:"type:varchar(50);uniqueIndex:idx_applicant_qualification"`
	FileID      string                      `gorm:"type:varchar(36)"`
	Status      models.QualificationStatus  `gorm:"type:varchar(50)"`
	Comment     string
}
