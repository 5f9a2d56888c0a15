package authapimodels

import (
	"hr-onboarding-backend/models"
	"strings"

	"github.com/pkg/errors"
)

type JWTResponse struct {
	Token        string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	ExpiresIn    int             `json:"expires_in"` // access token lifetime, seconds
	Role         models.UserRole `json:"role"`       // selects the HR or the candidate portal
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return errors.New("refresh token must not be empty")
	}
	return nil
}
