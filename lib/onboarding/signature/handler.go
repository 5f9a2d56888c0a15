package signaturehandler

import (
	"context"
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/db"
	pdfexport "hr-onboarding-backend/lib/export/pdf"
	filestorage "hr-onboarding-backend/lib/file-storage"
	signaturestore "hr-onboarding-backend/lib/onboarding/signature/store"
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/lib/utils/validators"
	filesapimodels "hr-onboarding-backend/models/api/files"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	dbmodels "hr-onboarding-backend/models/db"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const maxImageSize = 2 << 20

var (
	ErrSignatureExists  = errors.New("signature is already captured")
	ErrImageRequired    = errors.New("signature image is required")
	ErrTypedNameMissing = errors.New("typed name is required")
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Captured - signature of a candidate ready to be embedded into documents
type Captured struct {
	TypedName  string
	CapturedAt time.Time
	Image      pdfexport.Image
}

type Provider interface {
	Capture(ctx context.Context, spaceID, applicantID, typedName string, file filesapimodels.UploadFile) (*onboardingapimodels.SignatureView, error)
	Get(applicantID string) (*onboardingapimodels.SignatureView, error)
	Load(ctx context.Context, applicantID string) (*Captured, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(signaturestore.NewInstance(db.DB), filestorage.Instance, config.Conf.App.PublicUrl)
}

func NewInstance(store signaturestore.Provider, files filestorage.Provider, publicUrl string) Provider {
	return &impl{
		store:     store,
		files:     files,
		publicUrl: publicUrl,
	}
}

type impl struct {
	mu        sync.Mutex // one capture at a time
	store     signaturestore.Provider
	files     filestorage.Provider
	publicUrl string
}

// Capture - stores the signature once, it is never recaptured
func (i *impl) Capture(ctx context.Context, spaceID, applicantID, typedName string, file filesapimodels.UploadFile) (*onboardingapimodels.SignatureView, error) {
	logger := log.WithField("space_id", spaceID).WithField("applicant_id", applicantID)
	typedName = strings.TrimSpace(typedName)
	if validators.IsBlank(typedName) {
		return nil, ErrTypedNameMissing
	}
	if file.Body == nil || file.Size == 0 {
		return nil, ErrImageRequired
	}
	if file.Size > maxImageSize {
		return nil, errors.New("signature image is too large")
	}
	if !imageExtensions[strings.ToLower(filepath.Ext(file.FileName))] {
		return nil, errors.New("signature image must be a png or jpeg file")
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	existing, err := i.store.GetByApplicant(applicantID)
	if err != nil {
		logger.WithError(err).Error("failed to get signature")
		return nil, err
	}
	if existing != nil {
		return nil, ErrSignatureExists
	}
	uploaded, err := i.files.Upload(ctx, dbmodels.UploadFileInfo{
		SpaceID:     spaceID,
		ApplicantID: applicantID,
		FileName:    file.FileName,
		FileType:    dbmodels.FileTypeSignature,
		ContentType: file.ContentType,
	}, file.Body, file.Size)
	if err != nil {
		return nil, err
	}
	rec := dbmodels.Signature{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		ApplicantID:    applicantID,
		FileID:         uploaded.ID,
		TypedName:      typedName,
	}
	if _, err = i.store.Create(rec); err != nil {
		if delErr := i.files.DeleteFile(ctx, uploaded.ID); delErr != nil {
			logger.WithError(delErr).Warn("failed to delete orphan signature image")
		}
		if storageerrors.IsDuplicate(err) {
			return nil, ErrSignatureExists
		}
		logger.WithError(err).Error("failed to save signature")
		return nil, err
	}
	logger.Info("signature captured")
	return &onboardingapimodels.SignatureView{
		Exists:    true,
		Url:       uploaded.Url,
		TypedName: typedName,
	}, nil
}

func (i *impl) Get(applicantID string) (*onboardingapimodels.SignatureView, error) {
	rec, err := i.store.GetByApplicant(applicantID)
	if err != nil {
		log.WithField("applicant_id", applicantID).WithError(err).Error("failed to get signature")
		return nil, err
	}
	if rec == nil {
		return &onboardingapimodels.SignatureView{}, nil
	}
	return &onboardingapimodels.SignatureView{
		Exists:    true,
		Url:       filesapimodels.DownloadUrl(i.publicUrl, rec.FileID),
		TypedName: rec.TypedName,
	}, nil
}

// Load - nil when the candidate has no signature yet
func (i *impl) Load(ctx context.Context, applicantID string) (*Captured, error) {
	rec, err := i.store.GetByApplicant(applicantID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	body, meta, err := i.files.ReadFile(ctx, rec.FileID)
	if err != nil {
		log.WithField("applicant_id", applicantID).WithError(err).Error("failed to read signature image")
		return nil, err
	}
	return &Captured{
		TypedName:  rec.TypedName,
		CapturedAt: rec.CreatedAt,
		Image: pdfexport.Image{
			FileName: meta.Name,
			Body:     body,
		},
	}, nil
}
