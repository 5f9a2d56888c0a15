package vacancystore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/models"
	vacancyapimodels "hr-onboarding-backend/models/api/vacancy"
	dbmodels "hr-onboarding-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	Delete(spaceID, id string) error
	GetByID(spaceID, id string) (*dbmodels.Vacancy, error)
	List(spaceID string, filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", storageerrors.Wrap(err)
	}
	return rec.ID, nil
}

func (i impl) Update(spaceID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Updates(updMap)
	if err := tx.Error; err != nil {
		return storageerrors.Wrap(err)
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) Delete(spaceID, id string) error {
	return storageerrors.Wrap(i.db.
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Delete(&dbmodels.Vacancy{}).
		Error)
}

func (i impl) GetByID(spaceID, id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Author").
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

func (i impl) List(spaceID string, filter vacancyapimodels.VacancyFilter) (list []dbmodels.Vacancy, rowCount int64, err error) {
	err = i.filtered(spaceID, filter).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, storageerrors.Wrap(errors.Wrap(err, "failed to count vacancies"))
	}
	tx := i.filtered(spaceID, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	list = []dbmodels.Vacancy{}
	err = tx.
		Preload("Author").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, storageerrors.Wrap(err)
	}
	return list, rowCount, nil
}

func (i impl) filtered(spaceID string, filter vacancyapimodels.VacancyFilter) *gorm.DB {
	tx := i.db.
		Model(dbmodels.Vacancy{}).
		Where("space_id = ?", spaceID)
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	} else {
		tx.Where("status <> ?", models.VacancyStatusClosed)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(title) like ? OR LOWER(department) like ? OR LOWER(location) like ?)", search, search, search)
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
