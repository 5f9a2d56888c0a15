package applicanthistoryhandler

import (
	"hr-onboarding-backend/db"
	applicanthistorystore "hr-onboarding-backend/lib/applicant-history/store"
	applicantstore "hr-onboarding-backend/lib/applicant/store"
	spaceusersstore "hr-onboarding-backend/lib/space/users/store"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const systemUserName = "System"

var ErrApplicantNotFound = errors.New("applicant not found")

type Provider interface {
	List(spaceID, applicantID string, filter applicantapimodels.ApplicantHistoryFilter) ([]applicantapimodels.ApplicantHistoryView, int64, error)
	Save(spaceID, applicantID, userID string, action dbmodels.ActionType, text string, changes dbmodels.ApplicantChanges)
	AddComment(spaceID, applicantID, userID string, req applicantapimodels.CommentRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		applicanthistorystore.NewInstance(db.DB),
		spaceusersstore.NewInstance(db.DB),
		applicantstore.NewInstance(db.DB),
	)
}

func NewInstance(store applicanthistorystore.Provider, userStore spaceusersstore.Provider, applicantStore applicantstore.Provider) Provider {
	return impl{
		store:          store,
		userStore:      userStore,
		applicantStore: applicantStore,
	}
}

type impl struct {
	store          applicanthistorystore.Provider
	userStore      spaceusersstore.Provider
	applicantStore applicantstore.Provider
}

func (i impl) List(spaceID, applicantID string, filter applicantapimodels.ApplicantHistoryFilter) ([]applicantapimodels.ApplicantHistoryView, int64, error) {
	rowCount, err := i.store.ListCount(spaceID, applicantID, filter)
	if err != nil {
		return nil, 0, err
	}

	if offset, _ := filter.GetOffset(); int64(offset) >= rowCount {
		return []applicantapimodels.ApplicantHistoryView{}, rowCount, nil
	}

	list, err := i.store.List(spaceID, applicantID, filter)
	if err != nil {
		log.WithError(err).Error("failed to list applicant history")
		return nil, 0, errors.New("failed to list applicant history")
	}
	result := make([]applicantapimodels.ApplicantHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.Convert(rec))
	}
	return result, rowCount, nil
}

// Save - records an action, failures are only logged
func (i impl) Save(spaceID, applicantID, userID string, action dbmodels.ActionType, text string, changes dbmodels.ApplicantChanges) {
	logger := log.WithField("space_id", spaceID).
		WithField("applicant_id", applicantID).
		WithField("action", action)
	rec := dbmodels.ApplicantHistory{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		ApplicantID: applicantID,
		ActionType:  action,
		Text:        text,
		Changes:     changes,
	}
	if userID != "" {
		rec.UserID = &userID
		user, err := i.userStore.GetByID(userID)
		if err != nil {
			logger.WithError(err).Error("failed to save applicant history, unable to get the author")
			return
		}
		if user == nil {
			logger.Error("failed to save applicant history, author not found")
			return
		}
		rec.UserName = user.GetFullName()
	} else {
		rec.UserName = systemUserName
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save applicant history")
	}
}

func (i impl) AddComment(spaceID, applicantID, userID string, req applicantapimodels.CommentRequest) error {
	logger := log.WithField("space_id", spaceID).
		WithField("applicant_id", applicantID).
		WithField("action", dbmodels.HistoryTypeComment)

	applicantRec, err := i.applicantStore.GetByID(spaceID, applicantID)
	if err != nil {
		logger.WithError(err).Error("failed to get applicant")
		return errors.New("failed to get applicant")
	}
	if applicantRec == nil {
		return ErrApplicantNotFound
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("failed to save comment, unable to get the author")
		return errors.New("failed to save comment, unable to get the author")
	}
	if user == nil {
		logger.Error("failed to save comment, author not found")
		return errors.New("failed to save comment, author not found")
	}

	rec := dbmodels.ApplicantHistory{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		ApplicantID:    applicantID,
		UserID:         &userID,
		UserName:       user.GetFullName(),
		ActionType:     dbmodels.HistoryTypeComment,
		Text:           req.Text,
		Rating:         req.Rating,
	}
	_, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save comment")
		return errors.New("failed to save comment")
	}
	if req.Rating > 0 {
		err = i.applicantStore.AddRating(spaceID, applicantID, req.Rating)
		if err != nil {
			logger.WithError(err).Error("failed to update applicant rating")
			return errors.New("failed to update applicant rating")
		}
	}
	return nil
}
