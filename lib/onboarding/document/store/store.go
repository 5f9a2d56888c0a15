package documentstore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/models"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.OnboardingDocument) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	Get(applicantID string, docType models.DocumentType) (*dbmodels.OnboardingDocument, error)
	ListByApplicant(applicantID string) ([]dbmodels.OnboardingDocument, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OnboardingDocument) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", storageerrors.Wrap(err)
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.OnboardingDocument{}).
		Where("id = ?", id).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return storageerrors.Wrap(err)
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) Get(applicantID string, docType models.DocumentType) (*dbmodels.OnboardingDocument, error) {
	rec := dbmodels.OnboardingDocument{}
	err := i.db.
		Model(&dbmodels.OnboardingDocument{}).
		Where("applicant_id = ?", applicantID).
		Where("document_type = ?", docType).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageerrors.Wrap(err)
	}
	return &rec, nil
}

func (i impl) ListByApplicant(applicantID string) ([]dbmodels.OnboardingDocument, error) {
	list := []dbmodels.OnboardingDocument{}
	err := i.db.
		Model(&dbmodels.OnboardingDocument{}).
		Select("id", "applicant_id", "document_type", "status", "file_id", "submitted_at").
		Where("applicant_id = ?", applicantID).
		Find(&list).
		Error
	if err != nil {
		return nil, storageerrors.Wrap(err)
	}
	return list, nil
}
