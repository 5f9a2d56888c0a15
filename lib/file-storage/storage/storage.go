package filesdbstorage

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Save(rec dbmodels.FileStorage) (id string, err error)
	GetByID(id string) (*dbmodels.FileStorage, error)
	GetListByType(applicantID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error)
	Delete(id string) error
}

type impl struct {
	db *gorm.DB
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

func (i impl) Save(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", storageerrors.Wrap(err)
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.FileStorage, error) {
	rec := dbmodels.FileStorage{}
	err := i.db.
		Model(&dbmodels.FileStorage{}).
		Where("id = ?", id).
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

func (i impl) GetListByType(applicantID string, fileType dbmodels.FileType) (list []dbmodels.FileStorage, err error) {
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("applicant_id = ? AND type = ?", applicantID, fileType).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, storageerrors.Wrap(err)
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return storageerrors.Wrap(i.db.Where("id = ?", id).Delete(&dbmodels.FileStorage{}).Error)
}
