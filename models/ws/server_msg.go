package wsmodels

type EventCode string

const (
	EventDocumentCompleted   EventCode = "DOCUMENT_COMPLETED"
	EventOnboardingCompleted EventCode = "ONBOARDING_COMPLETED"
	EventPong                EventCode = "PONG"
)

type ClientCode string

const ClientPing ClientCode = "PING"

// ClientMessage - frame sent by the HR client
type ClientMessage struct {
	Code ClientCode `json:"code"`
}

type ServerMessage struct {
	ToUserID string    `json:"-"`
	Time     string    `json:"time"` // RFC3339
	Code     EventCode `json:"code"`
	Msg      string    `json:"msg"`
	Data     any       `json:"data,omitempty"`
}

// DocumentEventData - payload of onboarding live events
type DocumentEventData struct {
	ApplicantID   string `json:"applicant_id"`
	ApplicantName string `json:"applicant_name"`
	DocumentType  string `json:"document_type,omitempty"`
}
