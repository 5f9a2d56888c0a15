package applicanthistorystore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.ApplicantHistory) (id string, err error)
	ListCount(spaceID, applicantID string, filter applicantapimodels.ApplicantHistoryFilter) (count int64, err error)
	List(spaceID, applicantID string, filter applicantapimodels.ApplicantHistoryFilter) (list []dbmodels.ApplicantHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicantHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", storageerrors.Wrap(err)
	}
	return rec.ID, nil
}

func (i impl) ListCount(spaceID, applicantID string, filter applicantapimodels.ApplicantHistoryFilter) (count int64, err error) {
	var rowCount int64
	tx := i.filtered(spaceID, applicantID, filter)
	err = tx.Count(&rowCount).Error
	if err != nil {
		log.WithError(err).Error("failed to count applicant history records")
		return 0, storageerrors.Wrap(errors.New("failed to count applicant history records"))
	}
	return rowCount, nil
}

func (i impl) List(spaceID, applicantID string, filter applicantapimodels.ApplicantHistoryFilter) (list []dbmodels.ApplicantHistory, err error) {
	list = []dbmodels.ApplicantHistory{}
	tx := i.filtered(spaceID, applicantID, filter)
	page, limit := filter.GetPage()
	i.setPage(tx, page, limit)
	err = tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, storageerrors.Wrap(err)
	}
	return list, nil
}

func (i impl) filtered(spaceID, applicantID string, filter applicantapimodels.ApplicantHistoryFilter) *gorm.DB {
	tx := i.db.
		Model(dbmodels.ApplicantHistory{}).
		Where("space_id = ?", spaceID).
		Where("applicant_id = ?", applicantID)
	if filter.CommentsOnly {
		tx = tx.Where("action_type = ?", dbmodels.HistoryTypeComment)
	}
	return tx
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
