package spaceapimodels

import (
	"hr-onboarding-backend/lib/utils/validators"

	"github.com/pkg/errors"
)

type CreateOrganization struct {
	Name      string     `json:"name"`       // company display name
	LegalName string     `json:"legal_name"` // registered legal name
	EIN       string     `json:"ein"`        // employer identification number
	Address   string     `json:"address"`
	City      string     `json:"city"`
	State     string     `json:"state"` // two letter code
	Zip       string     `json:"zip"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	AdminData CreateUser `json:"admin_data"`
}

func (r CreateOrganization) Validate() error {
	if validators.IsBlank(r.Name) {
		return errors.New("company name is required")
	}
	if r.EIN != "" && !validators.IsEIN(r.EIN) {
		return errors.New("EIN must be in the 12-3456789 format")
	}
	if r.State != "" && !validators.IsState(r.State) {
		return errors.New("state must be a two letter code")
	}
	if r.Zip != "" && !validators.IsZip(r.Zip) {
		return errors.New("ZIP code must have 5 or 9 digits")
	}
	if r.Phone != "" && !validators.IsPhone(r.Phone) {
		return errors.New("phone number must contain 10 digits")
	}
	if r.Email != "" && !validators.IsEmail(r.Email) {
		return errors.New("company email has an invalid format")
	}
	return r.AdminData.Validate()
}
