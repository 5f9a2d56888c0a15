package qualification

import (
	"context"
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/db"
	applicantstore "hr-onboarding-backend/lib/applicant/store"
	filestorage "hr-onboarding-backend/lib/file-storage"
	qualificationstore "hr-onboarding-backend/lib/qualification/store"
	initchecker "hr-onboarding-backend/lib/utils/init-checker"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	filesapimodels "hr-onboarding-backend/models/api/files"
	dbmodels "hr-onboarding-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrDocumentNotFound  = errors.New("document is not uploaded")
)

type Provider interface {
	Upload(ctx context.Context, spaceID, applicantID string, docType models.QualificationDocType, file filesapimodels.UploadFile) (*applicantapimodels.QualificationDocView, error)
	List(spaceID, applicantID string) ([]applicantapimodels.QualificationDocView, error)
	SetStatus(spaceID, applicantID string, docType models.QualificationDocType, req applicantapimodels.QualificationStatusRequest) error
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"filestorage", filestorage.Instance,
	)
	Instance = NewInstance(
		qualificationstore.NewInstance(db.DB),
		applicantstore.NewInstance(db.DB),
		filestorage.Instance,
		config.Conf.App.PublicUrl,
	)
}

func NewInstance(store qualificationstore.Provider, applicantStore applicantstore.Provider, files filestorage.Provider, publicUrl string) Provider {
	return impl{
		store:          store,
		applicantStore: applicantStore,
		files:          files,
		publicUrl:      publicUrl,
	}
}

type impl struct {
	store          qualificationstore.Provider
	applicantStore applicantstore.Provider
	files          filestorage.Provider
	publicUrl      string
}

func (i impl) Upload(ctx context.Context, spaceID, applicantID string, docType models.QualificationDocType, file filesapimodels.UploadFile) (*applicantapimodels.QualificationDocView, error) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("applicant_id", applicantID).
		WithField("doc_type", docType)
	if err := docType.Validate(); err != nil {
		return nil, err
	}
	applicant, err := i.applicantStore.GetByID(spaceID, applicantID)
	if err != nil {
		logger.WithError(err).Error("failed to get applicant")
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}
	if !applicant.Status.IsActive() {
		return nil, errors.Errorf("documents can not be uploaded for an applicant with status %v", applicant.Status)
	}
	previous, err := i.store.Get(spaceID, applicantID, docType)
	if err != nil {
		logger.WithError(err).Error("failed to get qualification document")
		return nil, err
	}

	uploaded, err := i.files.Upload(ctx, dbmodels.UploadFileInfo{
		SpaceID:     spaceID,
		ApplicantID: applicantID,
		FileName:    file.FileName,
		FileType:    dbmodels.FileTypeQualificationDoc,
		ContentType: file.ContentType,
	}, file.Body, file.Size)
	if err != nil {
		return nil, err
	}
	rec := dbmodels.QualificationDocument{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		ApplicantID:    applicantID,
		DocType:        docType,
		FileID:         uploaded.ID,
		Status:         models.QualificationUploaded,
	}
	if err = i.store.Save(rec); err != nil {
		logger.WithError(err).Error("failed to save qualification document")
		return nil, err
	}
	if previous != nil && previous.FileID != "" && previous.FileID != uploaded.ID {
		if err = i.files.DeleteFile(ctx, previous.FileID); err != nil {
			logger.WithError(err).Warn("failed to delete replaced qualification document file")
		}
	}
	return &applicantapimodels.QualificationDocView{
		DocType:   docType,
		Status:    models.QualificationUploaded,
		Url:       uploaded.Url,
		UpdatedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// List - every document type, missing ones are reported as NOT_UPLOADED
func (i impl) List(spaceID, applicantID string) ([]applicantapimodels.QualificationDocView, error) {
	applicant, err := i.applicantStore.GetByID(spaceID, applicantID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrApplicantNotFound
	}
	list, err := i.store.List(spaceID, applicantID)
	if err != nil {
		log.WithField("applicant_id", applicantID).WithError(err).Error("failed to list qualification documents")
		return nil, err
	}
	byType := make(map[models.QualificationDocType]dbmodels.QualificationDocument, len(list))
	for _, rec := range list {
		byType[rec.DocType] = rec
	}
	result := make([]applicantapimodels.QualificationDocView, 0, len(models.QualificationDocTypes))
	for _, docType := range models.QualificationDocTypes {
		rec, ok := byType[docType]
		if !ok {
			result = append(result, applicantapimodels.QualificationDocView{
				DocType: docType,
				Status:  models.QualificationNotUploaded,
			})
			continue
		}
		result = append(result, applicantapimodels.QualificationDocView{
			DocType:   docType,
			Status:    rec.Status,
			Url:       filesapimodels.DownloadUrl(i.publicUrl, rec.FileID),
			Comment:   rec.Comment,
			UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (i impl) SetStatus(spaceID, applicantID string, docType models.QualificationDocType, req applicantapimodels.QualificationStatusRequest) error {
	if err := docType.Validate(); err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.store.Get(spaceID, applicantID, docType)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrDocumentNotFound
	}
	err = i.store.UpdateStatus(spaceID, applicantID, docType, req.Status, req.Comment)
	if err != nil {
		log.WithField("applicant_id", applicantID).
			WithField("doc_type", docType).
			WithError(err).
			Error("failed to update qualification document status")
		return err
	}
	return nil
}
