package vacancyhandler

import (
	"hr-onboarding-backend/db"
	vacancystore "hr-onboarding-backend/lib/vacancy/store"
	"hr-onboarding-backend/models"
	vacancyapimodels "hr-onboarding-backend/models/api/vacancy"
	dbmodels "hr-onboarding-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("job posting not found")

type Provider interface {
	Create(spaceID, userID string, data vacancyapimodels.VacancyData) (id string, err error)
	Update(spaceID, id string, data vacancyapimodels.VacancyData) error
	GetByID(spaceID, id string) (*vacancyapimodels.VacancyView, error)
	List(spaceID string, filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyView, rowCount int64, err error)
	Publish(spaceID, id string) error
	Close(spaceID, id string) error
	Delete(spaceID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(vacancystore.NewInstance(db.DB))
}

func NewInstance(store vacancystore.Provider) Provider {
	return impl{store: store}
}

type impl struct {
	store vacancystore.Provider
}

func (i impl) Create(spaceID, userID string, data vacancyapimodels.VacancyData) (string, error) {
	rec := dbmodels.Vacancy{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		AuthorID:       userID,
		Title:          data.Title,
		Department:     data.Department,
		Location:       data.Location,
		EmploymentType: data.EmploymentType,
		Description:    data.Description,
		Requirements:   data.Requirements,
		SalaryFrom:     data.SalaryFrom,
		SalaryTo:       data.SalaryTo,
		Status:         models.VacancyStatusDraft,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("failed to create job posting")
		return "", err
	}
	return id, nil
}

// Update - only drafts are editable
func (i impl) Update(spaceID, id string, data vacancyapimodels.VacancyData) error {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if rec.Status != models.VacancyStatusDraft {
		return errors.Errorf("only a draft job posting can be edited, current status: %v", rec.Status)
	}
	updMap := map[string]interface{}{
		"title":           data.Title,
		"department":      data.Department,
		"location":        data.Location,
		"employment_type": data.EmploymentType,
		"description":     data.Description,
		"requirements":    data.Requirements,
		"salary_from":     data.SalaryFrom,
		"salary_to":       data.SalaryTo,
	}
	return i.update(spaceID, id, updMap)
}

func (i impl) GetByID(spaceID, id string) (*vacancyapimodels.VacancyView, error) {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return nil, err
	}
	view := vacancyapimodels.VacancyConvert(*rec)
	return &view, nil
}

func (i impl) List(spaceID string, filter vacancyapimodels.VacancyFilter) ([]vacancyapimodels.VacancyView, int64, error) {
	list, rowCount, err := i.store.List(spaceID, filter)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithError(err).
			Error("failed to list job postings")
		return nil, 0, err
	}
	result := make([]vacancyapimodels.VacancyView, 0, len(list))
	for _, rec := range list {
		result = append(result, vacancyapimodels.VacancyConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Publish(spaceID, id string) error {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if rec.Status != models.VacancyStatusDraft {
		return errors.Errorf("only a draft job posting can be published, current status: %v", rec.Status)
	}
	data := vacancyapimodels.VacancyConvert(*rec).VacancyData
	if err = data.ValidateForPublish(); err != nil {
		return err
	}
	return i.update(spaceID, id, map[string]interface{}{
		"status":       models.VacancyStatusPublished,
		"published_at": time.Now(),
	})
}

func (i impl) Close(spaceID, id string) error {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if rec.Status != models.VacancyStatusPublished {
		return errors.Errorf("only a published job posting can be closed, current status: %v", rec.Status)
	}
	return i.update(spaceID, id, map[string]interface{}{
		"status":    models.VacancyStatusClosed,
		"closed_at": time.Now(),
	})
}

func (i impl) Delete(spaceID, id string) error {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if rec.Status != models.VacancyStatusDraft {
		return errors.New("only a draft job posting can be deleted")
	}
	if err = i.store.Delete(spaceID, id); err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("vacancy_id", id).
			WithError(err).
			Error("failed to delete job posting")
		return err
	}
	return nil
}

func (i impl) get(spaceID, id string) (*dbmodels.Vacancy, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("vacancy_id", id).
			WithError(err).
			Error("failed to get job posting")
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (i impl) update(spaceID, id string, updMap map[string]interface{}) error {
	err := i.store.Update(spaceID, id, updMap)
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("vacancy_id", id).
			WithError(err).
			Error("failed to update job posting")
		return err
	}
	return nil
}
