package wizard

import (
	"context"
	"encoding/json"
	"hr-onboarding-backend/models"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

type Phase string

const (
	PhaseForm      Phase = "FORM"
	PhaseReview    Phase = "REVIEW"
	PhasePreview   Phase = "PREVIEW"
	PhaseCompleted Phase = "COMPLETED"
)

var (
	ErrWrongPhase         = errors.New("action is not available at this step")
	ErrAgreementRequired  = errors.New("Please agree to the document before submitting")
	ErrSignatureRequired  = errors.New("Please capture your signature before submitting")
	ErrPreviewUnavailable = errors.New("Document preview is not available yet")
)

// Advancer - moves the wizard forward once a document is completed
type Advancer interface {
	Completed(docType models.DocumentType)
}

// DocumentFlow - form, review and submit of a single onboarding document
type DocumentFlow[T onboardingapimodels.Form[T]] struct {
	mu           sync.Mutex
	docType      models.DocumentType
	api          DocumentAPI
	notifier     *Notifier
	signature    *SignatureFlow
	advancer     Advancer
	withForm     bool
	phase        Phase
	snapshot     *T
	documentUrl  string
	agreement    models.Agreement
	loadedStatus models.DocumentStatus
}

func NewDocumentFlow[T onboardingapimodels.Form[T]](docType models.DocumentType, api DocumentAPI, notifier *Notifier,
	signature *SignatureFlow, advancer Advancer) *DocumentFlow[T] {
	f := &DocumentFlow[T]{
		docType:      docType,
		api:          api,
		notifier:     notifier,
		signature:    signature,
		advancer:     advancer,
		withForm:     onboardingapimodels.KindOf(docType) == onboardingapimodels.KindForm,
		loadedStatus: models.DocumentNotStarted,
	}
	f.phase = f.startPhase()
	return f
}

// Load - fetches saved data, a failed fetch leaves the form empty
func (f *DocumentFlow[T]) Load(ctx context.Context) {
	view, err := f.api.GetDocument(ctx, f.docType)
	if err != nil {
		f.notifier.Error(err.Error())
		return
	}
	if view == nil {
		view = &onboardingapimodels.DocumentView{DocumentStatus: models.DocumentNotStarted}
	}
	var snapshot *T
	if f.withForm && view.DocumentStatus != models.DocumentNotStarted && len(view.Payload) != 0 && string(view.Payload) != "null" {
		var saved T
		if err = json.Unmarshal(view.Payload, &saved); err != nil {
			f.notifier.Error("Saved document could not be read")
		} else {
			saved = saved.Normalize()
			snapshot = &saved
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = snapshot
	f.documentUrl = view.DocumentUrl
	f.loadedStatus = view.DocumentStatus
	f.agreement = models.AgreementUnset
	f.phase = f.startPhase()
	if view.DocumentStatus == models.DocumentCompleted {
		f.phase = PhaseCompleted
	}
}

// SubmitForm - validates values and stores them: save for the first time, edit when changed.
// Unchanged values go straight to review.
func (f *DocumentFlow[T]) SubmitForm(ctx context.Context, values T) error {
	f.mu.Lock()
	if f.phase != PhaseForm {
		f.mu.Unlock()
		return ErrWrongPhase
	}
	snapshot := f.snapshot
	f.mu.Unlock()

	values = values.Normalize()
	if err := values.Validate(); err != nil {
		return err
	}
	if snapshot != nil && reflect.DeepEqual(*snapshot, values) {
		f.setPhase(PhaseReview)
		return nil
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return err
	}
	var view *onboardingapimodels.DocumentView
	if snapshot == nil {
		view, err = f.api.SaveDocument(ctx, f.docType, payload)
	} else {
		view, err = f.api.EditDocument(ctx, f.docType, payload)
	}
	if err != nil {
		f.notifier.Error(err.Error())
		return err
	}

	f.mu.Lock()
	f.snapshot = &values
	f.documentUrl = view.DocumentUrl
	f.loadedStatus = view.DocumentStatus
	f.agreement = models.AgreementUnset
	f.phase = PhaseReview
	f.mu.Unlock()
	f.notifier.Clear()
	return nil
}

// Edit - back to the form from review or preview
func (f *DocumentFlow[T]) Edit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.withForm || (f.phase != PhaseReview && f.phase != PhasePreview) {
		return ErrWrongPhase
	}
	f.phase = PhaseForm
	return nil
}

// Preview - returns the url of the rendered document
func (f *DocumentFlow[T]) Preview() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhaseReview && f.phase != PhaseCompleted {
		return "", ErrWrongPhase
	}
	if f.documentUrl == "" {
		return "", ErrPreviewUnavailable
	}
	if f.phase == PhaseReview {
		f.phase = PhasePreview
	}
	return f.documentUrl, nil
}

func (f *DocumentFlow[T]) BackToReview() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.phase != PhasePreview {
		return ErrWrongPhase
	}
	f.phase = PhaseReview
	return nil
}

func (f *DocumentFlow[T]) SetAgreement(agreement models.Agreement) error {
	if err := agreement.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.agreement = agreement
	return nil
}

// CanSubmit - only an explicit agreement on the review screen enables submit
func (f *DocumentFlow[T]) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase == PhaseReview && f.agreement == models.AgreementAgree
}

// Submit - completes the document and advances the wizard, a failure keeps the review open
func (f *DocumentFlow[T]) Submit(ctx context.Context) error {
	if !f.CanSubmit() {
		return ErrAgreementRequired
	}
	if f.signature.NeedsCapture() {
		f.notifier.Error(ErrSignatureRequired.Error())
		return ErrSignatureRequired
	}
	view, err := f.api.SubmitDocument(ctx, f.docType, models.AgreementAgree)
	if err != nil {
		f.notifier.Error(err.Error())
		return err
	}

	f.mu.Lock()
	f.phase = PhaseCompleted
	f.loadedStatus = view.DocumentStatus
	if view.DocumentUrl != "" {
		f.documentUrl = view.DocumentUrl
	}
	f.mu.Unlock()
	f.notifier.Success("Document submitted")
	f.advancer.Completed(f.docType)
	return nil
}

func (f *DocumentFlow[T]) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Snapshot - last saved values, false when the document was never saved
func (f *DocumentFlow[T]) Snapshot() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.snapshot == nil {
		var empty T
		return empty, false
	}
	return *f.snapshot, true
}

func (f *DocumentFlow[T]) Status() models.DocumentStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadedStatus
}

func (f *DocumentFlow[T]) DocumentUrl() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.documentUrl
}

func (f *DocumentFlow[T]) setPhase(phase Phase) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.phase = phase
}

func (f *DocumentFlow[T]) startPhase() Phase {
	if f.withForm {
		return PhaseForm
	}
	return PhaseReview
}
