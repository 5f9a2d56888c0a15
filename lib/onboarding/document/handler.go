package documenthandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/db"
	applicanthistoryhandler "hr-onboarding-backend/lib/applicant-history"
	applicantstore "hr-onboarding-backend/lib/applicant/store"
	pdfexport "hr-onboarding-backend/lib/export/pdf"
	filestorage "hr-onboarding-backend/lib/file-storage"
	"hr-onboarding-backend/lib/metrics"
	documentstore "hr-onboarding-backend/lib/onboarding/document/store"
	"hr-onboarding-backend/lib/onboarding/sequence"
	signaturehandler "hr-onboarding-backend/lib/onboarding/signature"
	spacestore "hr-onboarding-backend/lib/space/store"
	spaceusershandler "hr-onboarding-backend/lib/space/users/handler"
	initchecker "hr-onboarding-backend/lib/utils/init-checker"
	"hr-onboarding-backend/lib/utils/lock"
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	connectionhub "hr-onboarding-backend/lib/ws/hub/connection-hub"
	"hr-onboarding-backend/models"
	filesapimodels "hr-onboarding-backend/models/api/files"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	dbmodels "hr-onboarding-backend/models/db"
	wsmodels "hr-onboarding-backend/models/ws"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const submitLockWait = 10 * time.Second

var (
	ErrUnknownType       = errors.New("unknown document type")
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrDocumentExists    = errors.New("document already exists")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDocumentCompleted = errors.New("document is already submitted")
	ErrSignatureRequired = errors.New("signature is required")
	ErrAgreementRequired = errors.New("you must agree to the document before submitting")
	ErrSubmitInProgress  = errors.New("document is being submitted, please try again")
)

// Owner - candidate the documents belong to
type Owner struct {
	SpaceID     string
	ApplicantID string
}

type Provider interface {
	Save(ctx context.Context, owner Owner, docType models.DocumentType, payload []byte) (*onboardingapimodels.DocumentView, error)
	Edit(ctx context.Context, owner Owner, docType models.DocumentType, payload []byte) (*onboardingapimodels.DocumentView, error)
	Submit(ctx context.Context, owner Owner, docType models.DocumentType, req onboardingapimodels.SubmitRequest) (*onboardingapimodels.DocumentView, error)
	Get(owner Owner, docType models.DocumentType) (*onboardingapimodels.DocumentView, error)
	Preview(ctx context.Context, owner Owner, docType models.DocumentType) (io.ReadCloser, *dbmodels.FileStorage, error)
	Progress(owner Owner) (*onboardingapimodels.ProgressView, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"signaturehandler", signaturehandler.Instance,
		"filestorage", filestorage.Instance,
		"applicanthistoryhandler", applicanthistoryhandler.Instance,
		"spaceusershandler", spaceusershandler.Instance,
		"connectionhub", connectionhub.Instance,
		"metrics", metrics.Instance,
	)
	Instance = NewInstance(Deps{
		Store:          documentstore.NewInstance(db.DB),
		ApplicantStore: applicantstore.NewInstance(db.DB),
		SpaceStore:     spacestore.NewInstance(db.DB),
		Signatures:     signaturehandler.Instance,
		Files:          filestorage.Instance,
		History:        applicanthistoryhandler.Instance,
		Events:         NewStaffPublisher(spaceusershandler.Instance, connectionhub.Instance),
		Metrics:        metrics.Instance,
		PublicUrl:      config.Conf.App.PublicUrl,
	})
}

type Deps struct {
	Store          documentstore.Provider
	ApplicantStore applicantstore.Provider
	SpaceStore     spacestore.Provider
	Signatures     signaturehandler.Provider
	Files          filestorage.Provider
	History        applicanthistoryhandler.Provider
	Events         EventPublisher
	Metrics        *metrics.ServerMetrics
	PublicUrl      string
}

func NewInstance(deps Deps) Provider {
	return impl{deps}
}

type impl struct {
	Deps
}

func (i impl) Save(ctx context.Context, owner Owner, docType models.DocumentType, payload []byte) (*onboardingapimodels.DocumentView, error) {
	logger := i.logger(owner, docType)
	if !onboardingapimodels.IsKnownType(docType) {
		return nil, ErrUnknownType
	}
	applicant, err := i.getApplicant(owner)
	if err != nil {
		return nil, err
	}
	normalized, err := onboardingapimodels.NormalizePayload(docType, payload)
	if err != nil {
		return nil, err
	}
	existing, err := i.Store.Get(owner.ApplicantID, docType)
	if err != nil {
		logger.WithError(err).Error("failed to get onboarding document")
		return nil, err
	}
	if existing != nil {
		return nil, ErrDocumentExists
	}
	fileID, err := i.render(ctx, *applicant, docType, normalized, nil, nil)
	if err != nil {
		return nil, err
	}
	rec := dbmodels.OnboardingDocument{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: owner.SpaceID},
		ApplicantID:    owner.ApplicantID,
		DocumentType:   docType,
		Payload:        normalized,
		Status:         models.DocumentOnTrack,
		FileID:         fileID,
	}
	if rec.ID, err = i.Store.Create(rec); err != nil {
		i.deleteFile(ctx, fileID)
		if storageerrors.IsDuplicate(err) {
			return nil, ErrDocumentExists
		}
		logger.WithError(err).Error("failed to save onboarding document")
		return nil, err
	}
	i.Metrics.RecordDocument(string(docType), metrics.ActionSave)
	view := i.convert(rec)
	return &view, nil
}

func (i impl) Edit(ctx context.Context, owner Owner, docType models.DocumentType, payload []byte) (*onboardingapimodels.DocumentView, error) {
	logger := i.logger(owner, docType)
	if !onboardingapimodels.IsKnownType(docType) {
		return nil, ErrUnknownType
	}
	rec, err := i.Store.Get(owner.ApplicantID, docType)
	if err != nil {
		logger.WithError(err).Error("failed to get onboarding document")
		return nil, err
	}
	if rec == nil {
		return nil, ErrDocumentNotFound
	}
	if rec.Status == models.DocumentCompleted {
		return nil, ErrDocumentCompleted
	}
	applicant, err := i.getApplicant(owner)
	if err != nil {
		return nil, err
	}
	normalized, err := onboardingapimodels.NormalizePayload(docType, payload)
	if err != nil {
		return nil, err
	}
	fileID, err := i.render(ctx, *applicant, docType, normalized, nil, nil)
	if err != nil {
		return nil, err
	}
	updMap := map[string]interface{}{
		"payload": dbmodels.DocumentPayload(normalized),
		"file_id": fileID,
		"status":  models.DocumentOnTrack,
	}
	if err = i.Store.Update(rec.ID, updMap); err != nil {
		logger.WithError(err).Error("failed to update onboarding document")
		i.deleteFile(ctx, fileID)
		return nil, err
	}
	i.deleteFile(ctx, rec.FileID)
	rec.Payload = normalized
	rec.FileID = fileID
	rec.Status = models.DocumentOnTrack
	i.Metrics.RecordDocument(string(docType), metrics.ActionEdit)
	view := i.convert(*rec)
	return &view, nil
}

// Submit - completes the document, repeated submits of a completed document succeed without changes
func (i impl) Submit(ctx context.Context, owner Owner, docType models.DocumentType, req onboardingapimodels.SubmitRequest) (*onboardingapimodels.DocumentView, error) {
	if !onboardingapimodels.IsKnownType(docType) {
		return nil, ErrUnknownType
	}
	if err := req.Agreement.Validate(); err != nil {
		return nil, err
	}
	if req.Agreement != models.AgreementAgree {
		return nil, ErrAgreementRequired
	}
	var view *onboardingapimodels.DocumentView
	key := fmt.Sprintf("onboarding-submit:%s:%s", owner.ApplicantID, docType)
	success, err := lock.WithDelay(ctx, key, submitLockWait, func() (err error) {
		view, err = i.submit(ctx, owner, docType, req.Agreement)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !success {
		return nil, ErrSubmitInProgress
	}
	return view, nil
}

func (i impl) submit(ctx context.Context, owner Owner, docType models.DocumentType, agreement models.Agreement) (*onboardingapimodels.DocumentView, error) {
	logger := i.logger(owner, docType)
	rec, err := i.Store.Get(owner.ApplicantID, docType)
	if err != nil {
		logger.WithError(err).Error("failed to get onboarding document")
		return nil, err
	}
	if rec != nil && rec.Status == models.DocumentCompleted {
		view := i.convert(*rec)
		return &view, nil
	}
	if rec == nil && onboardingapimodels.KindOf(docType) == onboardingapimodels.KindForm {
		return nil, ErrDocumentNotFound
	}
	applicant, err := i.getApplicant(owner)
	if err != nil {
		return nil, err
	}
	signature, err := i.Signatures.Load(ctx, owner.ApplicantID)
	if err != nil {
		return nil, err
	}
	if signature == nil {
		return nil, ErrSignatureRequired
	}

	payload := []byte("{}")
	if rec != nil && len(rec.Payload) != 0 {
		payload = rec.Payload
	}
	submittedAt := time.Now()
	fileID, err := i.render(ctx, *applicant, docType, payload, signature, &submittedAt)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &dbmodels.OnboardingDocument{
			BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: owner.SpaceID},
			ApplicantID:    owner.ApplicantID,
			DocumentType:   docType,
			Payload:        payload,
			Status:         models.DocumentCompleted,
			FileID:         fileID,
			Agreement:      agreement,
			SubmittedAt:    &submittedAt,
		}
		if rec.ID, err = i.Store.Create(*rec); err != nil {
			i.deleteFile(ctx, fileID)
			if storageerrors.IsDuplicate(err) {
				return nil, ErrSubmitInProgress
			}
			logger.WithError(err).Error("failed to save onboarding document")
			return nil, err
		}
	} else {
		updMap := map[string]interface{}{
			"status":       models.DocumentCompleted,
			"file_id":      fileID,
			"agreement":    agreement,
			"submitted_at": submittedAt,
		}
		if err = i.Store.Update(rec.ID, updMap); err != nil {
			logger.WithError(err).Error("failed to submit onboarding document")
			i.deleteFile(ctx, fileID)
			return nil, err
		}
		i.deleteFile(ctx, rec.FileID)
		rec.Status = models.DocumentCompleted
		rec.FileID = fileID
		rec.Agreement = agreement
		rec.SubmittedAt = &submittedAt
	}
	logger.Info("onboarding document submitted")
	i.Metrics.RecordDocument(string(docType), metrics.ActionSubmit)
	i.afterSubmit(*applicant, docType)
	view := i.convert(*rec)
	return &view, nil
}

func (i impl) afterSubmit(applicant dbmodels.Applicant, docType models.DocumentType) {
	title := sequence.Title(docType)
	i.History.Save(applicant.SpaceID, applicant.ID, "", dbmodels.HistoryTypeDocument,
		applicanthistoryhandler.GetDocumentText(title), dbmodels.ApplicantChanges{})
	eventData := wsmodels.DocumentEventData{
		ApplicantID:   applicant.ID,
		ApplicantName: applicant.GetFullName(),
		DocumentType:  string(docType),
	}
	i.Events.Publish(applicant.SpaceID, wsmodels.EventDocumentCompleted,
		fmt.Sprintf("%s submitted %s", applicant.GetFullName(), title), eventData)

	progress, err := i.progress(applicant.ID)
	if err != nil || !progress.Completed || applicant.OnboardingCompleted {
		return
	}
	err = i.ApplicantStore.Update(applicant.SpaceID, applicant.ID, map[string]interface{}{"onboarding_completed": true})
	if err != nil {
		log.WithField("applicant_id", applicant.ID).WithError(err).Error("failed to mark onboarding as completed")
		return
	}
	eventData.DocumentType = ""
	i.Events.Publish(applicant.SpaceID, wsmodels.EventOnboardingCompleted,
		fmt.Sprintf("%s completed onboarding", applicant.GetFullName()), eventData)
}

// Get - a document that was never saved is reported as NOT_STARTED with an empty payload
func (i impl) Get(owner Owner, docType models.DocumentType) (*onboardingapimodels.DocumentView, error) {
	if !onboardingapimodels.IsKnownType(docType) {
		return nil, ErrUnknownType
	}
	rec, err := i.Store.Get(owner.ApplicantID, docType)
	if err != nil {
		i.logger(owner, docType).WithError(err).Error("failed to get onboarding document")
		return nil, err
	}
	if rec == nil {
		return &onboardingapimodels.DocumentView{
			DocumentType:   docType,
			DocumentStatus: models.DocumentNotStarted,
		}, nil
	}
	view := i.convert(*rec)
	return &view, nil
}

func (i impl) Preview(ctx context.Context, owner Owner, docType models.DocumentType) (io.ReadCloser, *dbmodels.FileStorage, error) {
	if !onboardingapimodels.IsKnownType(docType) {
		return nil, nil, ErrUnknownType
	}
	rec, err := i.Store.Get(owner.ApplicantID, docType)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil || rec.FileID == "" {
		return nil, nil, ErrDocumentNotFound
	}
	return i.Files.GetFile(ctx, rec.FileID)
}

func (i impl) Progress(owner Owner) (*onboardingapimodels.ProgressView, error) {
	if _, err := i.getApplicant(owner); err != nil {
		return nil, err
	}
	return i.progress(owner.ApplicantID)
}

func (i impl) progress(applicantID string) (*onboardingapimodels.ProgressView, error) {
	list, err := i.Store.ListByApplicant(applicantID)
	if err != nil {
		log.WithField("applicant_id", applicantID).WithError(err).Error("failed to list onboarding documents")
		return nil, err
	}
	statusByType := make(map[models.DocumentType]models.DocumentStatus, len(list))
	for _, rec := range list {
		statusByType[rec.DocumentType] = rec.Status
	}
	steps := sequence.Steps()
	result := &onboardingapimodels.ProgressView{
		Steps: make([]onboardingapimodels.StepProgress, 0, len(steps)),
	}
	statuses := make([]models.DocumentStatus, 0, len(steps))
	for _, step := range steps {
		status, ok := statusByType[step.Type]
		if !ok {
			status = models.DocumentNotStarted
		}
		statuses = append(statuses, status)
		result.Steps = append(result.Steps, onboardingapimodels.StepProgress{
			Number:       step.Number,
			DocumentType: step.Type,
			Title:        step.Title,
			Kind:         step.Kind,
			Status:       status,
		})
	}
	idx := sequence.ResumeIndex(statuses)
	result.CurrentStep = idx + 1
	result.Completed = idx == len(steps)
	return result, nil
}

// render - stores the pdf of the document and returns its file id
func (i impl) render(ctx context.Context, applicant dbmodels.Applicant, docType models.DocumentType, payload []byte,
	signature *signaturehandler.Captured, signedAt *time.Time) (string, error) {
	logger := log.WithField("applicant_id", applicant.ID).WithField("document_type", docType)
	data := pdfexport.DocumentData{
		Title:        sequence.Title(docType),
		EmployeeName: applicant.GetFullName(),
		SignedAt:     signedAt,
	}
	if onboardingapimodels.KindOf(docType) == onboardingapimodels.KindForm {
		fields, err := pdfexport.FieldsFromPayload(payload)
		if err != nil {
			return "", err
		}
		data.Fields = fields
	} else {
		data.Body = sequence.Body(docType)
	}
	if signature != nil {
		data.Signature = &signature.Image
		data.TypedName = signature.TypedName
	}
	space, err := i.SpaceStore.GetByID(applicant.SpaceID)
	if err != nil {
		logger.WithError(err).Warn("failed to get company for document header")
	} else if space != nil {
		data.CompanyName = space.Name
	}

	body, err := pdfexport.GenerateDocument(data)
	if err != nil {
		logger.WithError(err).Error("failed to render onboarding document")
		return "", storageerrors.Wrap(errors.Wrap(err, "failed to render document"))
	}
	file, err := i.Files.Upload(ctx, dbmodels.UploadFileInfo{
		SpaceID:     applicant.SpaceID,
		ApplicantID: applicant.ID,
		FileName:    onboardingapimodels.Slug(docType) + ".pdf",
		FileType:    dbmodels.FileTypeOnboardingDocument,
		ContentType: "application/pdf",
	}, bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return "", err
	}
	return file.ID, nil
}

func (i impl) deleteFile(ctx context.Context, fileID string) {
	if fileID == "" {
		return
	}
	if err := i.Files.DeleteFile(ctx, fileID); err != nil {
		log.WithField("file_id", fileID).WithError(err).Warn("failed to delete replaced document file")
	}
}

func (i impl) getApplicant(owner Owner) (*dbmodels.Applicant, error) {
	rec, err := i.ApplicantStore.GetByID(owner.SpaceID, owner.ApplicantID)
	if err != nil {
		log.WithField("applicant_id", owner.ApplicantID).WithError(err).Error("failed to get applicant")
		return nil, err
	}
	if rec == nil {
		return nil, ErrApplicantNotFound
	}
	return rec, nil
}

func (i impl) convert(rec dbmodels.OnboardingDocument) onboardingapimodels.DocumentView {
	view := onboardingapimodels.DocumentView{
		DocumentType:   rec.DocumentType,
		DocumentStatus: rec.Status,
		DocumentUrl:    filesapimodels.DownloadUrl(i.PublicUrl, rec.FileID),
	}
	if len(rec.Payload) != 0 {
		view.Payload = json.RawMessage(rec.Payload)
	}
	if rec.SubmittedAt != nil {
		view.SubmittedAt = rec.SubmittedAt.Format(time.RFC3339)
	}
	return view
}

func (i impl) logger(owner Owner, docType models.DocumentType) *log.Entry {
	return log.
		WithField("space_id", owner.SpaceID).
		WithField("applicant_id", owner.ApplicantID).
		WithField("document_type", docType)
}
