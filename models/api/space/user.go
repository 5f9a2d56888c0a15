package spaceapimodels

import (
	"hr-onboarding-backend/lib/utils/validators"

	"github.com/pkg/errors"
)

const minPasswordLength = 8

type CreateUser struct {
	Password string `json:"password"`
	SpaceUserCommonData
}

func (r CreateUser) Validate() error {
	if err := r.SpaceUserCommonData.Validate(); err != nil {
		return err
	}
	if len(r.Password) < minPasswordLength {
		return errors.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

type SpaceUser struct {
	ID string `json:"id"`
	SpaceUserCommonData
	SpaceID     string `json:"space_id"`
	IsAdmin     bool   `json:"is_admin"`
	Role        string `json:"role"`
	ApplicantID string `json:"applicant_id,omitempty"` // candidate accounts only
}

type SpaceUserCommonData struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"` // 10 digits
}

func (r SpaceUserCommonData) Validate() error {
	if !validators.IsEmail(r.Email) {
		return errors.New("email has an invalid format")
	}
	if validators.IsBlank(r.FirstName) || validators.IsBlank(r.LastName) {
		return errors.New("first and last name are required")
	}
	if r.PhoneNumber != "" && !validators.IsPhone(r.PhoneNumber) {
		return errors.New("phone number must contain 10 digits")
	}
	return nil
}
