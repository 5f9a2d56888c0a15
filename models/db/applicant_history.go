package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type ApplicantHistory struct {
	BaseSpaceModel
	ApplicantID string `gorm:"type:varchar(36);index"`
	UserID      *string
	UserName    string
	ActionType  ActionType       `gorm:"type:varchar(50)"`
	Text        string           // comment text or action description
	Rating      int              // 1..5, 0 - not rated
	Changes     ApplicantChanges `gorm:"type:jsonb"`
}

func (j ApplicantChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ApplicantChanges) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		return nil
	default:
		return errors.Errorf("unsupported type for ApplicantChanges: %T", value)
	}
	return json.Unmarshal(raw, j)
}

type ApplicantChanges struct {
	Data []ApplicantChange `json:"data"` // changed fields
}

type ApplicantChange struct {
	Field    string      `json:"field"`
	OldValue interface{} `json:"old_value"`
	NewValue interface{} `json:"new_value"`
}

type ActionType string

const (
	HistoryTypeComment  ActionType = "comment"
	HistoryTypeAdded    ActionType = "added"
	HistoryTypeUpdate   ActionType = "update"
	HistoryTypeAdvance  ActionType = "advance"
	HistoryTypeDecline  ActionType = "decline"
	HistoryTypeHire     ActionType = "hire"
	HistoryTypeCategory ActionType = "category"
	HistoryTypeDocument ActionType = "document" // onboarding document submitted
)
