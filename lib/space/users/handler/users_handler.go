package spaceusershandler

import (
	"hr-onboarding-backend/db"
	spaceusersstore "hr-onboarding-backend/lib/space/users/store"
	authutils "hr-onboarding-backend/lib/utils/auth-utils"
	"hr-onboarding-backend/models"
	spaceapimodels "hr-onboarding-backend/models/api/space"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const tempPasswordLength = 12

var ErrEmailExists = errors.New("user with this email already exists")

type Provider interface {
	CreateUser(spaceID string, request spaceapimodels.CreateUser, role models.UserRole) (userID string, err error)
	CreateCandidateAccount(applicant dbmodels.Applicant) (email, password string, err error)
	GetListUsers(spaceID string, page, limit int) (usersList []spaceapimodels.SpaceUser, rowCount int64, err error)
	GetByID(userID string) (user *spaceapimodels.SpaceUser, err error)
	GetStaffIDs(spaceID string) ([]string, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(spaceusersstore.NewInstance(db.DB))
}

func NewInstance(store spaceusersstore.Provider) Provider {
	return impl{spaceUserStore: store}
}

type impl struct {
	spaceUserStore spaceusersstore.Provider
}

func (i impl) GetByID(userID string) (*spaceapimodels.SpaceUser, error) {
	userDB, err := i.spaceUserStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to find user")
		return nil, err
	}
	if userDB == nil {
		return nil, nil
	}
	user := userDB.ToModel()
	return &user, nil
}

func (i impl) CreateUser(spaceID string, request spaceapimodels.CreateUser, role models.UserRole) (string, error) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("email", request.Email)
	userExist, err := i.spaceUserStore.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check existing user")
		return "", err
	}
	if userExist {
		return "", ErrEmailExists
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return "", err
	}
	rec := dbmodels.SpaceUser{
		Password:    hash,
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		IsActive:    true,
		PhoneNumber: request.PhoneNumber,
		SpaceID:     spaceID,
		Role:        role,
	}
	userID, err := i.spaceUserStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create user")
		return "", err
	}
	return userID, nil
}

// CreateCandidateAccount - login of a hired applicant, an existing account is re-enabled with a new password
func (i impl) CreateCandidateAccount(applicant dbmodels.Applicant) (email, password string, err error) {
	logger := log.
		WithField("space_id", applicant.SpaceID).
		WithField("applicant_id", applicant.ID)
	password, err = authutils.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return "", "", err
	}
	hash, err := authutils.HashPassword(password)
	if err != nil {
		return "", "", err
	}
	existed, err := i.spaceUserStore.FindByEmail(applicant.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check existing candidate account")
		return "", "", err
	}
	if existed != nil {
		if existed.ApplicantID == nil || *existed.ApplicantID != applicant.ID {
			return "", "", errors.Errorf("email %s is already used by another account", applicant.Email)
		}
		err = i.spaceUserStore.Update(existed.ID, map[string]interface{}{
			"password":  hash,
			"is_active": true,
		})
		if err != nil {
			logger.WithError(err).Error("failed to update candidate account")
			return "", "", err
		}
		return existed.Email, password, nil
	}
	applicantID := applicant.ID
	rec := dbmodels.SpaceUser{
		Password:    hash,
		FirstName:   applicant.FirstName,
		LastName:    applicant.LastName,
		Email:       applicant.Email,
		IsActive:    true,
		PhoneNumber: applicant.Phone,
		SpaceID:     applicant.SpaceID,
		Role:        models.CandidateRole,
		ApplicantID: &applicantID,
	}
	if _, err = i.spaceUserStore.Create(rec); err != nil {
		logger.WithError(err).Error("failed to create candidate account")
		return "", "", err
	}
	return applicant.Email, password, nil
}

func (i impl) GetListUsers(spaceID string, page, limit int) ([]spaceapimodels.SpaceUser, int64, error) {
	list, rowCount, err := i.spaceUserStore.GetList(spaceID, page, limit)
	if err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("failed to list space users")
		return nil, 0, err
	}
	result := make([]spaceapimodels.SpaceUser, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

func (i impl) GetStaffIDs(spaceID string) ([]string, error) {
	return i.spaceUserStore.GetStaffIDs(spaceID)
}
