package spaceauthhandler

import (
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/db"
	spaceusersstore "hr-onboarding-backend/lib/space/users/store"
	authutils "hr-onboarding-backend/lib/utils/auth-utils"
	authapimodels "hr-onboarding-backend/models/api/auth"
	spaceapimodels "hr-onboarding-backend/models/api/space"
	dbmodels "hr-onboarding-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Provider interface {
	Login(email, password string) (*authapimodels.JWTResponse, error)
	RefreshToken(refreshToken string) (*authapimodels.JWTResponse, error)
	Me(userID string) (*spaceapimodels.SpaceUser, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(spaceusersstore.NewInstance(db.DB))
}

func NewInstance(store spaceusersstore.Provider) Provider {
	return impl{spaceUsersStore: store}
}

type impl struct {
	spaceUsersStore spaceusersstore.Provider
}

func (i impl) Login(email, password string) (*authapimodels.JWTResponse, error) {
	user, err := i.spaceUsersStore.FindByEmail(email)
	if err != nil {
		log.WithField("email", email).WithError(err).Error("failed to find user on login")
		return nil, err
	}
	if user == nil || !user.IsActive || !authutils.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	err = i.spaceUsersStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		log.WithField("user_id", user.ID).WithError(err).Warn("failed to update last login")
	}
	return i.issue(*user)
}

func (i impl) RefreshToken(refreshToken string) (*authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := i.spaceUsersStore.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("failed to find user on token refresh")
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return i.issue(*user)
}

func (i impl) Me(userID string) (*spaceapimodels.SpaceUser, error) {
	user, err := i.spaceUsersStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	result := user.ToModel()
	return &result, nil
}

func (i impl) issue(user dbmodels.SpaceUser) (*authapimodels.JWTResponse, error) {
	tokenUser := authutils.TokenUser{
		ID:      user.ID,
		Name:    user.GetFullName(),
		SpaceID: user.SpaceID,
		Role:    user.Role,
	}
	if user.ApplicantID != nil {
		tokenUser.ApplicantID = *user.ApplicantID
	}
	token, err := authutils.GetToken(tokenUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID, tokenUser.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	return &authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresIn:    config.Conf.Auth.JWTExpireInSec,
		Role:         user.Role,
	}, nil
}
