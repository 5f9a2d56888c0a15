package spacestore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Space) (spaceID string, err error)
	Delete(spaceID string) error
	GetByID(spaceID string) (rec *dbmodels.Space, err error)
	ExistByEIN(ein string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Space) (spaceID string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", storageerrors.Wrap(err)
	}
	return rec.ID, nil
}

// Delete - used to roll back a registration whose administrator could not be created
func (i impl) Delete(spaceID string) error {
	return storageerrors.Wrap(i.db.
		Where("id = ?", spaceID).
		Delete(&dbmodels.Space{}).
		Error)
}

func (i impl) GetByID(spaceID string) (*dbmodels.Space, error) {
	rec := dbmodels.Space{}
	err := i.db.
		Where("id = ?", spaceID).
		Take(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageerrors.Wrap(err)
	}
	return &rec, nil
}

func (i impl) ExistByEIN(ein string) (bool, error) {
	var rowCount int64
	err := i.db.
		Model(&dbmodels.Space{}).
		Where("ein = ?", ein).
		Count(&rowCount).
		Error
	if err != nil {
		return false, storageerrors.Wrap(err)
	}
	return rowCount > 0, nil
}
