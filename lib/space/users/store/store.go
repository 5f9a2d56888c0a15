package spaceusersstore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/models"
	dbmodels "hr-onboarding-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.SpaceUser) (string, error)
	Update(userID string, updMap map[string]interface{}) error
	GetList(spaceID string, page, limit int) (userList []dbmodels.SpaceUser, rowCount int64, err error)
	GetStaffIDs(spaceID string) ([]string, error)
	ExistByEmail(email string) (bool, error)
	FindByEmail(email string) (rec *dbmodels.SpaceUser, err error)
	GetByID(userID string) (rec *dbmodels.SpaceUser, err error)
	GetByApplicantID(applicantID string) (rec *dbmodels.SpaceUser, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetList(spaceID string, page, limit int) (userList []dbmodels.SpaceUser, rowCount int64, err error) {
	staff := func() *gorm.DB {
		return i.db.
			Model(dbmodels.SpaceUser{}).
			Where("space_id = ?", spaceID).
			Where("role in (?)", []models.UserRole{models.SpaceAdminRole, models.SpaceUserRole})
	}
	if err = staff().Count(&rowCount).Error; err != nil {
		return nil, 0, storageerrors.Wrap(err)
	}
	tx := staff()
	i.setPage(tx, page, limit)
	err = tx.
		Order("last_name, first_name").
		Find(&userList).
		Error
	if err != nil {
		return nil, 0, storageerrors.Wrap(err)
	}
	return userList, rowCount, nil
}

// GetStaffIDs - active HR users of the space
func (i impl) GetStaffIDs(spaceID string) ([]string, error) {
	ids := []string{}
	err := i.db.
		Model(dbmodels.SpaceUser{}).
		Select("id").
		Where("space_id = ? AND is_active = ?", spaceID, true).
		Where("role in (?)", []models.UserRole{models.SpaceAdminRole, models.SpaceUserRole}).
		Find(&ids).
		Error
	if err != nil {
		return nil, storageerrors.Wrap(err)
	}
	return ids, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	return storageerrors.Wrap(i.db.
		Model(&dbmodels.SpaceUser{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error)
}

func (i impl) GetByID(userID string) (rec *dbmodels.SpaceUser, err error) {
	return i.first(i.db.Where("id = ?", userID))
}

func (i impl) GetByApplicantID(applicantID string) (rec *dbmodels.SpaceUser, err error) {
	return i.first(i.db.Where("applicant_id = ?", applicantID))
}

func (i impl) FindByEmail(email string) (rec *dbmodels.SpaceUser, err error) {
	return i.first(i.db.Where("email = ?", strings.ToLower(email)))
}

func (i impl) first(tx *gorm.DB) (*dbmodels.SpaceUser, error) {
	rec := dbmodels.SpaceUser{}
	err := tx.
		Model(dbmodels.SpaceUser{}).
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

func (i impl) Create(rec dbmodels.SpaceUser) (string, error) {
	rec.Email = strings.ToLower(rec.Email)
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", storageerrors.Wrap(err)
	}
	return rec.ID, nil
}

func (i impl) ExistByEmail(email string) (bool, error) {
	var count int64
	err := i.db.
		Model(dbmodels.SpaceUser{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).
		Error
	if err != nil {
		return false, storageerrors.Wrap(err)
	}
	return count > 0, nil
}

func (i impl) setPage(tx *gorm.DB, pageValue, limitValue int) {
	page, limit := GetPage(pageValue, limitValue)
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}

func GetPage(pageValue, limitValue int) (page, limit int) {
	page = 1
	limit = 10
	if pageValue > 0 {
		page = pageValue
	}
	if limitValue > 0 {
		limit = limitValue
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
