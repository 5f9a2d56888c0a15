package authapimodels

import (
	"hr-onboarding-backend/lib/utils/validators"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if !validators.IsEmail(r.Email) {
		return errors.New("email has an invalid format")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
