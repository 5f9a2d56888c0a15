package qualificationstore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/models"
	dbmodels "hr-onboarding-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Save(rec dbmodels.QualificationDocument) error
	Get(spaceID, applicantID string, docType models.QualificationDocType) (*dbmodels.QualificationDocument, error)
	List(spaceID, applicantID string) ([]dbmodels.QualificationDocument, error)
	UpdateStatus(spaceID, applicantID string, docType models.QualificationDocType, status models.QualificationStatus, comment string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Save - one document per applicant and type, a new upload replaces the file and the review result
func (i impl) Save(rec dbmodels.QualificationDocument) error {
	return storageerrors.Wrap(i.db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "applicant_id"}, {Name: "doc_type"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"file_id":    rec.FileID,
				"status":     rec.Status,
				"comment":    rec.Comment,
				"updated_at": time.Now(),
			}),
		}).
		Create(&rec).
		Error)
}

func (i impl) Get(spaceID, applicantID string, docType models.QualificationDocType) (*dbmodels.QualificationDocument, error) {
	rec := dbmodels.QualificationDocument{}
	err := i.db.
		Model(&dbmodels.QualificationDocument{}).
		Where("space_id = ?", spaceID).
		Where("applicant_id = ?", applicantID).
		Where("doc_type = ?", docType).
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

func (i impl) List(spaceID, applicantID string) ([]dbmodels.QualificationDocument, error) {
	list := []dbmodels.QualificationDocument{}
	err := i.db.
		Model(&dbmodels.QualificationDocument{}).
		Where("space_id = ?", spaceID).
		Where("applicant_id = ?", applicantID).
		Find(&list).
		Error
	if err != nil {
		return nil, storageerrors.Wrap(err)
	}
	return list, nil
}

func (i impl) UpdateStatus(spaceID, applicantID string, docType models.QualificationDocType, status models.QualificationStatus, comment string) error {
	tx := i.db.
		Model(&dbmodels.QualificationDocument{}).
		Where("space_id = ?", spaceID).
		Where("applicant_id = ?", applicantID).
		Where("doc_type = ?", docType).
		Updates(map[string]interface{}{
			"status":  status,
			"comment": comment,
		})
	if err := tx.Error; err != nil {
		return storageerrors.Wrap(err)
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}
