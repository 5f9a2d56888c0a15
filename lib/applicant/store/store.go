package applicantstore

import (
	"fmt"
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	dbmodels "hr-onboarding-backend/models/db"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	Update(spaceID, id string, updMap map[string]interface{}) error
	GetByID(spaceID, id string) (*dbmodels.Applicant, error)
	GetByIDs(spaceID string, ids []string) ([]dbmodels.Applicant, error)
	List(spaceID string, filter applicantapimodels.ApplicantFilter, from, to *time.Time) (list []dbmodels.Applicant, rowCount int64, err error)
	ExistByEmail(spaceID, vacancyID, email string) (bool, error)
	UpdateCategory(spaceID string, ids []string, category models.ScreeningCategory) (int64, error)
	AddRating(spaceID, id string, rating int) error
	ListForReminder(remindBefore time.Time, limit int) ([]dbmodels.Applicant, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.
		Omit(clause.Associations).
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
		Model(&dbmodels.Applicant{}).
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

func (i impl) GetByID(spaceID, id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		Preload("Vacancy").
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

func (i impl) GetByIDs(spaceID string, ids []string) ([]dbmodels.Applicant, error) {
	list := []dbmodels.Applicant{}
	if len(ids) == 0 {
		return list, nil
	}
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Where("space_id = ?", spaceID).
		Where("id in (?)", ids).
		Preload("Vacancy").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, storageerrors.Wrap(err)
	}
	return list, nil
}

func (i impl) List(spaceID string, filter applicantapimodels.ApplicantFilter, from, to *time.Time) (list []dbmodels.Applicant, rowCount int64, err error) {
	err = i.filtered(spaceID, filter, from, to).
		Count(&rowCount).
		Error
	if err != nil {
		return nil, 0, storageerrors.Wrap(errors.Wrap(err, "failed to count applicants"))
	}
	tx := i.filtered(spaceID, filter, from, to)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	i.addSort(tx, filter.Sort)
	list = []dbmodels.Applicant{}
	err = tx.
		Preload("Vacancy").
		Find(&list).
		Error
	if err != nil {
		return nil, 0, storageerrors.Wrap(err)
	}
	return list, rowCount, nil
}

func (i impl) ExistByEmail(spaceID, vacancyID, email string) (bool, error) {
	var exists bool
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Select("count(*) > 0").
		Where("space_id = ?", spaceID).
		Where("vacancy_id = ?", vacancyID).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Find(&exists).
		Error
	return exists, storageerrors.Wrap(err)
}

func (i impl) UpdateCategory(spaceID string, ids []string, category models.ScreeningCategory) (int64, error) {
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("space_id = ?", spaceID).
		Where("id in (?)", ids).
		Update("category", category)
	return tx.RowsAffected, storageerrors.Wrap(tx.Error)
}

func (i impl) AddRating(spaceID, id string, rating int) error {
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Where("space_id = ?", spaceID).
		UpdateColumns(map[string]interface{}{
			"rating_sum":   gorm.Expr("rating_sum + ?", rating),
			"rating_count": gorm.Expr("rating_count + 1"),
		})
	if err := tx.Error; err != nil {
		return storageerrors.Wrap(err)
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

// ListForReminder - hired applicants with unfinished onboarding not reminded since remindBefore
func (i impl) ListForReminder(remindBefore time.Time, limit int) ([]dbmodels.Applicant, error) {
	list := []dbmodels.Applicant{}
	err := i.db.
		Model(&dbmodels.Applicant{}).
		Where("status = ?", models.ApplicantStatusHired).
		Where("onboarding_completed = ?", false).
		Where("(last_reminder_at is null or last_reminder_at < ?)", remindBefore).
		Where("hire_date < ?", remindBefore).
		Order("hire_date").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, storageerrors.Wrap(err)
	}
	return list, nil
}

func (i impl) filtered(spaceID string, filter applicantapimodels.ApplicantFilter, from, to *time.Time) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("space_id = ?", spaceID)
	if filter.VacancyID != "" {
		tx.Where("vacancy_id = ?", filter.VacancyID)
	}
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	}
	if filter.Category != nil {
		tx.Where("category = ?", *filter.Category)
	}
	if from != nil {
		tx.Where("created_at >= ?", *from)
	}
	if to != nil {
		tx.Where("created_at < ?", *to)
	}
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("(LOWER(CONCAT(first_name, ' ', last_name)) like ? OR LOWER(email) like ? OR phone like ? OR ? = ANY(tags))",
			search, search, search, filter.Search)
	}
	return tx
}

func (i impl) addSort(tx *gorm.DB, sort applicantapimodels.ApplicantSort) {
	direction := "asc"
	if sort.Desc {
		direction = "desc"
	}
	switch sort.Field {
	case applicantapimodels.SortByName:
		tx.Order(fmt.Sprintf("last_name %v, first_name %v", direction, direction))
	case applicantapimodels.SortByRating:
		tx.Order(fmt.Sprintf("rating_sum::float / nullif(rating_count, 0) %v nulls last", direction))
	default:
		if sort.Field == "" {
			direction = "desc"
		}
		tx.Order(fmt.Sprintf("created_at %v", direction))
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
