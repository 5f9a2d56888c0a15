package wizard

import (
	"context"
	"encoding/json"
	"hr-onboarding-backend/models"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
)

// DocumentAPI - remote onboarding api used by the wizard
type DocumentAPI interface {
	GetDocument(ctx context.Context, docType models.DocumentType) (*onboardingapimodels.DocumentView, error)
	SaveDocument(ctx context.Context, docType models.DocumentType, payload json.RawMessage) (*onboardingapimodels.DocumentView, error)
	EditDocument(ctx context.Context, docType models.DocumentType, payload json.RawMessage) (*onboardingapimodels.DocumentView, error)
	SubmitDocument(ctx context.Context, docType models.DocumentType, agreement models.Agreement) (*onboardingapimodels.DocumentView, error)
	GetSignature(ctx context.Context) (*onboardingapimodels.SignatureView, error)
	CaptureSignature(ctx context.Context, image []byte, fileName, typedName string) (*onboardingapimodels.SignatureView, error)
}

type ValidationError = onboardingapimodels.ValidationError
