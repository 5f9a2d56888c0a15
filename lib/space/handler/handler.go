package spacehandler

import (
	"context"
	"hr-onboarding-backend/db"
	filestorage "hr-onboarding-backend/lib/file-storage"
	spacestore "hr-onboarding-backend/lib/space/store"
	spaceusersstore "hr-onboarding-backend/lib/space/users/store"
	authutils "hr-onboarding-backend/lib/utils/auth-utils"
	"hr-onboarding-backend/models"
	spaceapimodels "hr-onboarding-backend/models/api/space"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmailExists = errors.New("user with this email already exists")
	ErrEINExists   = errors.New("company with this EIN is already registered")
)

type Provider interface {
	CreateOrganizationSpace(ctx context.Context, request spaceapimodels.CreateOrganization) (spaceID string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(spacestore.NewInstance(db.DB), spaceusersstore.NewInstance(db.DB), filestorage.Instance)
}

func NewInstance(spaceStore spacestore.Provider, userStore spaceusersstore.Provider, files filestorage.Provider) Provider {
	return impl{
		spaceStore:     spaceStore,
		spaceUserStore: userStore,
		files:          files,
	}
}

type impl struct {
	spaceStore     spacestore.Provider
	spaceUserStore spaceusersstore.Provider
	files          filestorage.Provider
}

// CreateOrganizationSpace - registers the company and its first administrator, the space is removed
// again when the administrator can not be created
func (i impl) CreateOrganizationSpace(ctx context.Context, request spaceapimodels.CreateOrganization) (string, error) {
	logger := log.
		WithField("company", request.Name).
		WithField("admin_email", request.AdminData.Email)
	exist, err := i.spaceUserStore.ExistByEmail(request.AdminData.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check existing user")
		return "", err
	}
	if exist {
		return "", ErrEmailExists
	}
	if request.EIN != "" {
		exist, err = i.spaceStore.ExistByEIN(request.EIN)
		if err != nil {
			logger.WithError(err).Error("failed to check existing company")
			return "", err
		}
		if exist {
			return "", ErrEINExists
		}
	}
	hash, err := authutils.HashPassword(request.AdminData.Password)
	if err != nil {
		return "", err
	}
	space := dbmodels.Space{
		Name:      request.Name,
		LegalName: request.LegalName,
		EIN:       request.EIN,
		Address:   request.Address,
		City:      request.City,
		State:     request.State,
		Zip:       request.Zip,
		Phone:     request.Phone,
		Email:     request.Email,
		IsActive:  true,
	}
	spaceID, err := i.spaceStore.Create(space)
	if err != nil {
		logger.WithError(err).Error("failed to create space")
		return "", err
	}
	logger = logger.WithField("space_id", spaceID)
	admin := dbmodels.SpaceUser{
		Password:    hash,
		FirstName:   request.AdminData.FirstName,
		LastName:    request.AdminData.LastName,
		Email:       request.AdminData.Email,
		IsActive:    true,
		PhoneNumber: request.AdminData.PhoneNumber,
		SpaceID:     spaceID,
		Role:        models.SpaceAdminRole,
	}
	if _, err = i.spaceUserStore.Create(admin); err != nil {
		logger.WithError(err).Error("failed to create space administrator")
		if delErr := i.spaceStore.Delete(spaceID); delErr != nil {
			logger.WithError(delErr).Error("failed to clean up space after administrator creation failure")
		}
		return "", err
	}
	if i.files != nil {
		if err = i.files.MakeSpaceBucket(ctx, spaceID); err != nil {
			logger.WithError(err).Warn("failed to create space bucket")
		}
	}
	return spaceID, nil
}
