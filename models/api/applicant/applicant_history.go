package applicantapimodels

import (
	"hr-onboarding-backend/lib/utils/validators"
	apimodels "hr-onboarding-backend/models/api"
	dbmodels "hr-onboarding-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ApplicantHistoryFilter struct {
	apimodels.Pagination
	CommentsOnly bool `json:"comments_only"`
}

type ApplicantHistoryView struct {
	ID         string                    `json:"id"`
	UserID     string                    `json:"user_id"`
	UserName   string                    `json:"user_name"`
	ActionType dbmodels.ActionType       `json:"action_type"`
	Text       string                    `json:"text"`
	Rating     int                       `json:"rating"`
	Changes    dbmodels.ApplicantChanges `json:"changes"`
	CreatedAt  string                    `json:"created_at"`
}

func Convert(rec dbmodels.ApplicantHistory) ApplicantHistoryView {
	result := ApplicantHistoryView{
		ID:         rec.ID,
		UserName:   rec.UserName,
		ActionType: rec.ActionType,
		Text:       rec.Text,
		Rating:     rec.Rating,
		Changes:    rec.Changes,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.UserID != nil {
		result.UserID = *rec.UserID
	}
	return result
}

type CommentRequest struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"` // optional, 1..5
}

func (r CommentRequest) Validate() error {
	if validators.IsBlank(r.Text) {
		return errors.New("comment text is required")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
