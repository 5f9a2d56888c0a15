package wizard

import (
	"context"
	"encoding/json"
	"hr-onboarding-backend/models"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	"sync"

	"github.com/pkg/errors"
)

type fakeAPI struct {
	mu        sync.Mutex
	docs      map[models.DocumentType]onboardingapimodels.DocumentView
	failGet   map[models.DocumentType]bool
	missing   map[models.DocumentType]bool
	submitErr error
	signature *onboardingapimodels.SignatureView
	calls     map[string]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		docs:    map[models.DocumentType]onboardingapimodels.DocumentView{},
		failGet: map[models.DocumentType]bool{},
		missing: map[models.DocumentType]bool{},
		calls:   map[string]int{},
	}
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) GetDocument(ctx context.Context, docType models.DocumentType) (*onboardingapimodels.DocumentView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["get"]++
	if f.failGet[docType] {
		return nil, errors.New("Something went wrong, please try again")
	}
	if f.missing[docType] {
		return nil, nil
	}
	view, ok := f.docs[docType]
	if !ok {
		return &onboardingapimodels.DocumentView{DocumentType: docType, DocumentStatus: models.DocumentNotStarted}, nil
	}
	return &view, nil
}

func (f *fakeAPI) SaveDocument(ctx context.Context, docType models.DocumentType, payload json.RawMessage) (*onboardingapimodels.DocumentView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["save"]++
	if _, ok := f.docs[docType]; ok {
		return nil, errors.New("document already exists")
	}
	return f.store(docType, payload), nil
}

func (f *fakeAPI) EditDocument(ctx context.Context, docType models.DocumentType, payload json.RawMessage) (*onboardingapimodels.DocumentView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["edit"]++
	if _, ok := f.docs[docType]; !ok {
		return nil, errors.New("document not found")
	}
	return f.store(docType, payload), nil
}

func (f *fakeAPI) SubmitDocument(ctx context.Context, docType models.DocumentType, agreement models.Agreement) (*onboardingapimodels.DocumentView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["submit"]++
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	if agreement != models.AgreementAgree {
		return nil, errors.New("you must agree to the document before submitting")
	}
	view := f.docs[docType]
	view.DocumentType = docType
	view.DocumentStatus = models.DocumentCompleted
	f.docs[docType] = view
	return &view, nil
}

func (f *fakeAPI) GetSignature(ctx context.Context) (*onboardingapimodels.SignatureView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signature == nil {
		return &onboardingapimodels.SignatureView{}, nil
	}
	view := *f.signature
	return &view, nil
}

func (f *fakeAPI) CaptureSignature(ctx context.Context, image []byte, fileName, typedName string) (*onboardingapimodels.SignatureView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["signature"]++
	if f.signature != nil {
		return nil, errors.New("signature is already captured")
	}
	f.signature = &onboardingapimodels.SignatureView{Exists: true, Url: "http://localhost/api/v1/files/sig1", TypedName: typedName}
	view := *f.signature
	return &view, nil
}

func (f *fakeAPI) store(docType models.DocumentType, payload json.RawMessage) *onboardingapimodels.DocumentView {
	view := onboardingapimodels.DocumentView{
		DocumentType:   docType,
		DocumentStatus: models.DocumentOnTrack,
		Payload:        payload,
		DocumentUrl:    "http://localhost/api/v1/files/" + string(docType),
	}
	f.docs[docType] = view
	return &view
}

type countingAdvancer struct {
	advanced int
	docTypes []models.DocumentType
}

func (a *countingAdvancer) Completed(docType models.DocumentType) {
	a.advanced++
	a.docTypes = append(a.docTypes, docType)
}
