package onboardingapimodels

import (
	"encoding/json"
	"hr-onboarding-backend/models"
)

type DocumentView struct {
	DocumentType   models.DocumentType   `json:"documentType"`
	DocumentStatus models.DocumentStatus `json:"documentStatus"`
	Payload        json.RawMessage       `json:"payload"`
	DocumentUrl    string                `json:"documentUrl"`
	SubmittedAt    string                `json:"submittedAt,omitempty"`
}

type SubmitRequest struct {
	Agreement models.Agreement `json:"agreement"`
}

type StepProgress struct {
	Number       int                   `json:"number"`
	DocumentType models.DocumentType   `json:"documentType"`
	Title        string                `json:"title"`
	Kind         DocumentKind          `json:"kind"`
	Status       models.DocumentStatus `json:"documentStatus"`
}

type ProgressView struct {
	Steps       []StepProgress `json:"steps"`
	CurrentStep int            `json:"currentStep"` // 1-based, len(steps)+1 when done
	Completed   bool           `json:"completed"`
}

type SignatureView struct {
	Exists    bool   `json:"exists"`
	Url       string `json:"url"`
	TypedName string `json:"typedName"`
}
