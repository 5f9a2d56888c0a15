package signaturestore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Signature) (id string, err error)
	GetByApplicant(applicantID string) (*dbmodels.Signature, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Signature) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", storageerrors.Wrap(err)
	}
	return rec.ID, nil
}

func (i impl) GetByApplicant(applicantID string) (*dbmodels.Signature, error) {
	rec := dbmodels.Signature{}
	err := i.db.
		Model(&dbmodels.Signature{}).
		Where("applicant_id = ?", applicantID).
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
