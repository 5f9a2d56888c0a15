package dbmodels

import (
	"fmt"
	"hr-onboarding-backend/models"
	spaceapimodels "hr-onboarding-backend/models/api/space"
	"time"
)

type SpaceUser struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	IsActive    bool
	PhoneNumber string          `gorm:"type:varchar(15)"`
	SpaceID     string          `gorm:"type:varchar(36);index"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	ApplicantID *string         `gorm:"type:varchar(36)"` // only for candidate accounts
	LastLogin   time.Time
}

func (r SpaceUser) ToModel() spaceapimodels.SpaceUser {
	result := spaceapimodels.SpaceUser{
		ID: r.ID,
		SpaceUserCommonData: spaceapimodels.SpaceUserCommonData{
			Email:       r.Email,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			PhoneNumber: r.PhoneNumber,
		},
		SpaceID: r.SpaceID,
		IsAdmin: r.Role.IsSpaceAdmin(),
		Role:    r.Role.ToHuman(),
	}
	if r.ApplicantID != nil {
		result.ApplicantID = *r.ApplicantID
	}
	return result
}

func (r SpaceUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
