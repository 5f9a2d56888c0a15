package documenthandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	pdfexport "hr-onboarding-backend/lib/export/pdf"
	"hr-onboarding-backend/lib/metrics"
	signaturehandler "hr-onboarding-backend/lib/onboarding/signature"
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	filesapimodels "hr-onboarding-backend/models/api/files"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	dbmodels "hr-onboarding-backend/models/db"
	wsmodels "hr-onboarding-backend/models/ws"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	mu        sync.Mutex
	seq       int
	creates   int
	createErr error
	docs      map[models.DocumentType]*dbmodels.OnboardingDocument
}

func (f *fakeStore) Create(rec dbmodels.OnboardingDocument) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.seq++
	f.creates++
	rec.ID = fmt.Sprintf("d%d", f.seq)
	f.docs[rec.DocumentType] = &rec
	return rec.ID, nil
}

func (f *fakeStore) Update(id string, updMap map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, rec := range f.docs {
		if rec.ID != id {
			continue
		}
		if v, ok := updMap["status"]; ok {
			rec.Status = v.(models.DocumentStatus)
		}
		if v, ok := updMap["file_id"]; ok {
			rec.FileID = v.(string)
		}
		if v, ok := updMap["payload"]; ok {
			rec.Payload = v.(dbmodels.DocumentPayload)
		}
		if v, ok := updMap["submitted_at"]; ok {
			submittedAt := v.(time.Time)
			rec.SubmittedAt = &submittedAt
		}
		return nil
	}
	return fmt.Errorf("record not found")
}

func (f *fakeStore) Get(applicantID string, docType models.DocumentType) (*dbmodels.OnboardingDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.docs[docType]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (f *fakeStore) ListByApplicant(applicantID string) ([]dbmodels.OnboardingDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []dbmodels.OnboardingDocument{}
	for _, rec := range f.docs {
		result = append(result, *rec)
	}
	return result, nil
}

type fakeApplicantStore struct {
	updates []map[string]interface{}
}

func (f *fakeApplicantStore) GetByID(spaceID, id string) (*dbmodels.Applicant, error) {
	if spaceID != "s1" || id != "a1" {
		return nil, nil
	}
	rec := &dbmodels.Applicant{FirstName: "Jane", LastName: "Doe", Status: models.ApplicantStatusHired}
	rec.ID = id
	rec.SpaceID = spaceID
	return rec, nil
}

func (f *fakeApplicantStore) Update(spaceID, id string, updMap map[string]interface{}) error {
	f.updates = append(f.updates, updMap)
	return nil
}

func (f *fakeApplicantStore) Create(dbmodels.Applicant) (string, error) { return "", nil }
func (f *fakeApplicantStore) GetByIDs(string, []string) ([]dbmodels.Applicant, error) {
	return nil, nil
}
func (f *fakeApplicantStore) List(string, applicantapimodels.ApplicantFilter, *time.Time, *time.Time) ([]dbmodels.Applicant, int64, error) {
	return nil, 0, nil
}
func (f *fakeApplicantStore) ExistByEmail(string, string, string) (bool, error) { return false, nil }
func (f *fakeApplicantStore) UpdateCategory(string, []string, models.ScreeningCategory) (int64, error) {
	return 0, nil
}
func (f *fakeApplicantStore) AddRating(string, string, int) error { return nil }
func (f *fakeApplicantStore) ListForReminder(time.Time, int) ([]dbmodels.Applicant, error) {
	return nil, nil
}

type fakeSpaceStore struct{}

func (f fakeSpaceStore) Create(dbmodels.Space) (string, error) { return "", nil }
func (f fakeSpaceStore) Delete(string) error                    { return nil }
func (f fakeSpaceStore) ExistByEIN(string) (bool, error)        { return false, nil }
func (f fakeSpaceStore) GetByID(string) (*dbmodels.Space, error) {
	return &dbmodels.Space{Name: "Sunrise Care"}, nil
}

type fakeSignatures struct {
	captured *signaturehandler.Captured
}

func (f *fakeSignatures) Load(context.Context, string) (*signaturehandler.Captured, error) {
	return f.captured, nil
}

func (f *fakeSignatures) Capture(context.Context, string, string, string, filesapimodels.UploadFile) (*onboardingapimodels.SignatureView, error) {
	return nil, nil
}
func (f *fakeSignatures) Get(string) (*onboardingapimodels.SignatureView, error) { return nil, nil }

type fakeFiles struct {
	mu      sync.Mutex
	uploads int
	deleted []string
	bodies  map[string][]byte
}

func (f *fakeFiles) Upload(ctx context.Context, info dbmodels.UploadFileInfo, body io.Reader, size int64) (*filesapimodels.FileView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.uploads++
	id := fmt.Sprintf("file%d", f.uploads)
	f.bodies[id] = data
	return &filesapimodels.FileView{ID: id, Name: info.FileName, ContentType: info.ContentType}, nil
}

func (f *fakeFiles) GetFile(ctx context.Context, fileID string) (io.ReadCloser, *dbmodels.FileStorage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return io.NopCloser(bytes.NewReader(f.bodies[fileID])), &dbmodels.FileStorage{Name: "preview.pdf", ContentType: "application/pdf"}, nil
}

func (f *fakeFiles) DeleteFile(ctx context.Context, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, fileID)
	return nil
}

func (f *fakeFiles) ReadFile(context.Context, string) ([]byte, *dbmodels.FileStorage, error) {
	return nil, nil, nil
}
func (f *fakeFiles) List(string, dbmodels.FileType) ([]filesapimodels.FileView, error) {
	return nil, nil
}
func (f *fakeFiles) MakeSpaceBucket(context.Context, string) error { return nil }

type fakeHistory struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeHistory) Save(spaceID, applicantID, userID string, action dbmodels.ActionType, text string, changes dbmodels.ApplicantChanges) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
}

func (f *fakeHistory) List(string, string, applicantapimodels.ApplicantHistoryFilter) ([]applicantapimodels.ApplicantHistoryView, int64, error) {
	return nil, 0, nil
}
func (f *fakeHistory) AddComment(string, string, string, applicantapimodels.CommentRequest) error {
	return nil
}

type fakePublisher struct {
	mu    sync.Mutex
	codes []wsmodels.EventCode
}

func (f *fakePublisher) Publish(spaceID string, code wsmodels.EventCode, msg string, data wsmodels.DocumentEventData) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes = append(f.codes, code)
}

type testEnv struct {
	handler    Provider
	store      *fakeStore
	applicants *fakeApplicantStore
	signatures *fakeSignatures
	files      *fakeFiles
	history    *fakeHistory
	events     *fakePublisher
}

func signaturePNG(t *testing.T) []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.Black)
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func newTestEnv(t *testing.T) testEnv {
	env := testEnv{
		store:      &fakeStore{docs: map[models.DocumentType]*dbmodels.OnboardingDocument{}},
		applicants: &fakeApplicantStore{},
		signatures: &fakeSignatures{},
		files:      &fakeFiles{bodies: map[string][]byte{}},
		history:    &fakeHistory{},
		events:     &fakePublisher{},
	}
	env.handler = NewInstance(Deps{
		Store:          env.store,
		ApplicantStore: env.applicants,
		SpaceStore:     fakeSpaceStore{},
		Signatures:     env.signatures,
		Files:          env.files,
		History:        env.history,
		Events:         env.events,
		Metrics:        metrics.NewServerMetrics(),
		PublicUrl:      "http://localhost",
	})
	return env
}

func (e testEnv) sign(t *testing.T) {
	e.signatures.captured = &signaturehandler.Captured{
		TypedName:  "Jane Doe",
		CapturedAt: time.Now(),
		Image:      pdfexport.Image{FileName: "signature.png", Body: signaturePNG(t)},
	}
}

var owner = Owner{SpaceID: "s1", ApplicantID: "a1"}

func depositPayload(bank string) []byte {
	data, _ := json.Marshal(onboardingapimodels.DirectDeposit{
		BankName:      bank,
		AccountType:   onboardingapimodels.AccountChecking,
		RoutingNumber: "021000021",
		AccountNumber: "123456789",
	})
	return data
}

var agree = onboardingapimodels.SubmitRequest{Agreement: models.AgreementAgree}

func TestSaveAndEdit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	view, err := env.handler.Save(ctx, owner, models.DocDirectDeposit, depositPayload("First Bank"))
	require.NoError(t, err)
	require.Equal(t, models.DocumentOnTrack, view.DocumentStatus)
	require.Equal(t, "http://localhost/api/v1/files/file1", view.DocumentUrl)
	require.Contains(t, string(view.Payload), "First Bank")

	_, err = env.handler.Save(ctx, owner, models.DocDirectDeposit, depositPayload("First Bank"))
	require.ErrorIs(t, err, ErrDocumentExists)

	view, err = env.handler.Edit(ctx, owner, models.DocDirectDeposit, depositPayload("Second Bank"))
	require.NoError(t, err)
	require.Contains(t, string(view.Payload), "Second Bank")
	require.Equal(t, "http://localhost/api/v1/files/file2", view.DocumentUrl)
	require.Equal(t, []string{"file1"}, env.files.deleted)
	require.True(t, bytes.HasPrefix(env.files.bodies["file2"], []byte("%PDF")))
}

func TestSaveStorageFailure(t *testing.T) {
	ctx := context.Background()
	t.Run("lost unique index race", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.createErr = storageerrors.Wrap(gorm.ErrDuplicatedKey)

		_, err := env.handler.Save(ctx, owner, models.DocDirectDeposit, depositPayload("First Bank"))
		require.ErrorIs(t, err, ErrDocumentExists)
		require.Equal(t, []string{"file1"}, env.files.deleted)
	})
	t.Run("database unavailable", func(t *testing.T) {
		env := newTestEnv(t)
		env.store.createErr = storageerrors.Wrap(errors.New("pq: could not connect to server"))

		_, err := env.handler.Save(ctx, owner, models.DocDirectDeposit, depositPayload("First Bank"))
		require.ErrorIs(t, err, storageerrors.ErrStorage)
		require.NotErrorIs(t, err, ErrDocumentExists)
		require.Equal(t, []string{"file1"}, env.files.deleted)
	})
	t.Run("signature-only submit race", func(t *testing.T) {
		env := newTestEnv(t)
		env.sign(t)
		env.store.createErr = storageerrors.Wrap(gorm.ErrDuplicatedKey)

		_, err := env.handler.Submit(ctx, owner, models.DocCodeOfConduct, agree)
		require.ErrorIs(t, err, ErrSubmitInProgress)
	})
}

func TestSaveValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.handler.Save(ctx, owner, models.DocDirectDeposit, []byte(`{"accountType":"CASH"}`))
	var vErr *onboardingapimodels.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.True(t, vErr.Has("routingNumber"))
	require.Zero(t, env.files.uploads)

	_, err = env.handler.Save(ctx, owner, "UNKNOWN", depositPayload("First Bank"))
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = env.handler.Save(ctx, Owner{SpaceID: "s2", ApplicantID: "a1"}, models.DocDirectDeposit, depositPayload("First Bank"))
	require.ErrorIs(t, err, ErrApplicantNotFound)

	_, err = env.handler.Edit(ctx, owner, models.DocDirectDeposit, depositPayload("First Bank"))
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestGetNotStarted(t *testing.T) {
	env := newTestEnv(t)
	view, err := env.handler.Get(owner, models.DocPersonalInfo)
	require.NoError(t, err)
	require.Equal(t, models.DocumentNotStarted, view.DocumentStatus)
	require.Nil(t, view.Payload)
	require.Empty(t, view.DocumentUrl)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("requires agreement", func(t *testing.T) {
		env := newTestEnv(t)
		env.sign(t)
		_, err := env.handler.Submit(ctx, owner, models.DocCodeOfConduct, onboardingapimodels.SubmitRequest{Agreement: models.AgreementDisagree})
		require.ErrorIs(t, err, ErrAgreementRequired)
	})
	t.Run("requires signature", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.handler.Submit(ctx, owner, models.DocCodeOfConduct, agree)
		require.ErrorIs(t, err, ErrSignatureRequired)
	})
	t.Run("form must be saved first", func(t *testing.T) {
		env := newTestEnv(t)
		env.sign(t)
		_, err := env.handler.Submit(ctx, owner, models.DocDirectDeposit, agree)
		require.ErrorIs(t, err, ErrDocumentNotFound)
	})
	t.Run("form", func(t *testing.T) {
		env := newTestEnv(t)
		env.sign(t)
		_, err := env.handler.Save(ctx, owner, models.DocDirectDeposit, depositPayload("First Bank"))
		require.NoError(t, err)

		view, err := env.handler.Submit(ctx, owner, models.DocDirectDeposit, agree)
		require.NoError(t, err)
		require.Equal(t, models.DocumentCompleted, view.DocumentStatus)
		require.NotEmpty(t, view.SubmittedAt)
		require.Equal(t, "http://localhost/api/v1/files/file2", view.DocumentUrl)
		require.Equal(t, []string{"file1"}, env.files.deleted)
		require.Len(t, env.history.texts, 1)
		require.Equal(t, []wsmodels.EventCode{wsmodels.EventDocumentCompleted}, env.events.codes)

		_, err = env.handler.Edit(ctx, owner, models.DocDirectDeposit, depositPayload("Second Bank"))
		require.ErrorIs(t, err, ErrDocumentCompleted)
	})
	t.Run("signature only document is created on submit", func(t *testing.T) {
		env := newTestEnv(t)
		env.sign(t)
		view, err := env.handler.Submit(ctx, owner, models.DocHipaaAcknowledgement, agree)
		require.NoError(t, err)
		require.Equal(t, models.DocumentCompleted, view.DocumentStatus)
		require.Equal(t, 1, env.store.creates)
	})
	t.Run("repeated submit is a no-op", func(t *testing.T) {
		env := newTestEnv(t)
		env.sign(t)
		first, err := env.handler.Submit(ctx, owner, models.DocCodeOfConduct, agree)
		require.NoError(t, err)
		second, err := env.handler.Submit(ctx, owner, models.DocCodeOfConduct, agree)
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Equal(t, 1, env.files.uploads)
		require.Len(t, env.history.texts, 1)
	})
	t.Run("concurrent submits complete once", func(t *testing.T) {
		env := newTestEnv(t)
		env.sign(t)
		wg := sync.WaitGroup{}
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := env.handler.Submit(ctx, owner, models.DocPhotoReleaseConsent, agree)
				require.NoError(t, err)
			}()
		}
		wg.Wait()
		require.Equal(t, 1, env.store.creates)
		require.Equal(t, 1, env.files.uploads)
	})
}

func TestPreview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, _, err := env.handler.Preview(ctx, owner, models.DocDirectDeposit)
	require.ErrorIs(t, err, ErrDocumentNotFound)

	_, err = env.handler.Save(ctx, owner, models.DocDirectDeposit, depositPayload("First Bank"))
	require.NoError(t, err)
	body, meta, err := env.handler.Preview(ctx, owner, models.DocDirectDeposit)
	require.NoError(t, err)
	defer body.Close()
	require.Equal(t, "application/pdf", meta.ContentType)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestProgress(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	progress, err := env.handler.Progress(owner)
	require.NoError(t, err)
	require.Len(t, progress.Steps, 22)
	require.Equal(t, 1, progress.CurrentStep)
	require.False(t, progress.Completed)

	_, err = env.handler.Progress(Owner{SpaceID: "s1", ApplicantID: "a2"})
	require.ErrorIs(t, err, ErrApplicantNotFound)

	// every step completed marks the onboarding as finished
	env.sign(t)
	for _, step := range progress.Steps {
		if step.Kind == onboardingapimodels.KindForm {
			env.store.docs[step.DocumentType] = &dbmodels.OnboardingDocument{
				BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "pre-" + string(step.DocumentType)}},
				DocumentType:   step.DocumentType,
				Status:         models.DocumentCompleted,
			}
			continue
		}
		if step.DocumentType == models.DocPhotoReleaseConsent {
			continue
		}
		_, err = env.handler.Submit(ctx, owner, step.DocumentType, agree)
		require.NoError(t, err)
	}
	progress, err = env.handler.Progress(owner)
	require.NoError(t, err)
	require.False(t, progress.Completed)
	require.Empty(t, env.applicants.updates)

	_, err = env.handler.Submit(ctx, owner, models.DocPhotoReleaseConsent, agree)
	require.NoError(t, err)
	progress, err = env.handler.Progress(owner)
	require.NoError(t, err)
	require.True(t, progress.Completed)
	require.Equal(t, 23, progress.CurrentStep)
	require.Equal(t, []map[string]interface{}{{"onboarding_completed": true}}, env.applicants.updates)
	require.Contains(t, env.events.codes, wsmodels.EventOnboardingCompleted)
}
