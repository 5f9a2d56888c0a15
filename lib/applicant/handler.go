package applicant

import (
	"bytes"
	"fmt"
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/db"
	applicanthistoryhandler "hr-onboarding-backend/lib/applicant-history"
	applicantstore "hr-onboarding-backend/lib/applicant/store"
	xlsexport "hr-onboarding-backend/lib/export/xls"
	"hr-onboarding-backend/lib/smtp"
	spaceusershandler "hr-onboarding-backend/lib/space/users/handler"
	"hr-onboarding-backend/lib/utils/helpers"
	initchecker "hr-onboarding-backend/lib/utils/init-checker"
	"hr-onboarding-backend/lib/utils/validators"
	vacancystore "hr-onboarding-backend/lib/vacancy/store"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	dbmodels "hr-onboarding-backend/models/db"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const exportLimit = 5000

var (
	ErrNotFound        = errors.New("applicant not found")
	ErrVacancyNotFound = errors.New("job posting not found")
	ErrDuplicate       = errors.New("applicant with this email already applied to the job posting")
)

type Provider interface {
	Create(spaceID, userID string, data applicantapimodels.ApplicantData) (id string, err error)
	Update(spaceID, userID, id string, data applicantapimodels.ApplicantData) error
	GetByID(spaceID, id string) (*applicantapimodels.ApplicantView, error)
	List(spaceID string, filter applicantapimodels.ApplicantFilter) (list []applicantapimodels.ApplicantView, rowCount int64, err error)
	Advance(spaceID, userID, id string) error
	Decline(spaceID, userID, id string, req applicantapimodels.DeclineRequest) error
	Hire(spaceID, userID, id string, req applicantapimodels.HireRequest) error
	SetCategory(spaceID, userID, id string, category models.ScreeningCategory) error
	SetCategoryMulti(spaceID, userID string, req applicantapimodels.MultiCategoryRequest) error
	ExportXls(spaceID string, req applicantapimodels.XlsExportRequest) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	initchecker.CheckInit(
		"applicanthistoryhandler", applicanthistoryhandler.Instance,
		"spaceusershandler", spaceusershandler.Instance,
		"smtp", smtp.Instance,
		"xlsexport", xlsexport.Instance,
	)
	Instance = NewInstance(
		applicantstore.NewInstance(db.DB),
		vacancystore.NewInstance(db.DB),
		applicanthistoryhandler.Instance,
		spaceusershandler.Instance,
		smtp.Instance,
		xlsexport.Instance,
		config.Conf.Onboarding.PortalUrl,
	)
}

func NewInstance(store applicantstore.Provider, vacancyStore vacancystore.Provider, history applicanthistoryhandler.Provider,
	users spaceusershandler.Provider, mail smtp.Provider, xls xlsexport.Provider, portalUrl string) Provider {
	return impl{
		store:        store,
		vacancyStore: vacancyStore,
		history:      history,
		users:        users,
		mail:         mail,
		xls:          xls,
		portalUrl:    portalUrl,
		now:          time.Now,
	}
}

type impl struct {
	store        applicantstore.Provider
	vacancyStore vacancystore.Provider
	history      applicanthistoryhandler.Provider
	users        spaceusershandler.Provider
	mail         smtp.Provider
	xls          xlsexport.Provider
	portalUrl    string
	now          func() time.Time
}

func (i impl) Create(spaceID, userID string, data applicantapimodels.ApplicantData) (string, error) {
	logger := log.WithField("space_id", spaceID).WithField("vacancy_id", data.VacancyID)
	data = normalizeData(data)
	if err := data.Validate(); err != nil {
		return "", err
	}
	if err := i.checkVacancy(spaceID, data.VacancyID); err != nil {
		return "", err
	}
	exists, err := i.store.ExistByEmail(spaceID, data.VacancyID, data.Email)
	if err != nil {
		logger.WithError(err).Error("failed to check applicant duplicate")
		return "", err
	}
	if exists {
		return "", ErrDuplicate
	}
	rec := dbmodels.Applicant{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		VacancyID:      data.VacancyID,
		Source:         models.ApplicantSourceManual,
		Status:         models.ApplicantStatusApplicant,
		Category:       models.CategoryUnscreened,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		Phone:          data.Phone,
		Address:        data.Address,
		Tags:           data.Tags,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create applicant")
		return "", err
	}
	rec.ID = id
	i.history.Save(spaceID, id, userID, dbmodels.HistoryTypeAdded, "", applicanthistoryhandler.GetCreateChanges(rec))
	return id, nil
}

func (i impl) Update(spaceID, userID, id string, data applicantapimodels.ApplicantData) error {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	data = normalizeData(data)
	if err = data.Validate(); err != nil {
		return err
	}
	if data.VacancyID != rec.VacancyID {
		if err = i.checkVacancy(spaceID, data.VacancyID); err != nil {
			return err
		}
	}
	oldData := applicantapimodels.ApplicantConvert(*rec).ApplicantData
	changes := applicanthistoryhandler.GetUpdateChanges(oldData, data)
	if len(changes.Data) == 0 {
		return nil
	}
	updMap := map[string]interface{}{
		"vacancy_id": data.VacancyID,
		"first_name": data.FirstName,
		"last_name":  data.LastName,
		"email":      data.Email,
		"phone":      data.Phone,
		"address":    data.Address,
		"tags":       pq.StringArray(data.Tags),
	}
	if err = i.update(spaceID, id, updMap); err != nil {
		return err
	}
	i.history.Save(spaceID, id, userID, dbmodels.HistoryTypeUpdate, "", changes)
	return nil
}

func (i impl) GetByID(spaceID, id string) (*applicantapimodels.ApplicantView, error) {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return nil, err
	}
	view := applicantapimodels.ApplicantConvert(*rec)
	return &view, nil
}

func (i impl) List(spaceID string, filter applicantapimodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, int64, error) {
	from, to := filter.GetPeriod(i.now())
	list, rowCount, err := i.store.List(spaceID, filter, from, to)
	if err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("failed to list applicants")
		return nil, 0, err
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Advance(spaceID, userID, id string) error {
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if err = rec.CheckTransition(models.ApplicantStatusCandidate); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"status":         models.ApplicantStatusCandidate,
		"candidate_date": i.now(),
	}
	if err = i.update(spaceID, id, updMap); err != nil {
		return err
	}
	i.history.Save(spaceID, id, userID, dbmodels.HistoryTypeAdvance, "",
		applicanthistoryhandler.GetStatusChange(rec.Status, models.ApplicantStatusCandidate))
	return nil
}

func (i impl) Decline(spaceID, userID, id string, req applicantapimodels.DeclineRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if err = rec.CheckTransition(models.ApplicantStatusDeclined); err != nil {
		return err
	}
	reason := strings.TrimSpace(req.Reason)
	updMap := map[string]interface{}{
		"status":         models.ApplicantStatusDeclined,
		"decline_reason": reason,
		"decline_date":   i.now(),
	}
	if err = i.update(spaceID, id, updMap); err != nil {
		return err
	}
	i.history.Save(spaceID, id, userID, dbmodels.HistoryTypeDecline, reason,
		applicanthistoryhandler.GetStatusChange(rec.Status, models.ApplicantStatusDeclined))
	return nil
}

// Hire - moves a candidate to HIRED, opens the candidate login and sends the onboarding invite
func (i impl) Hire(spaceID, userID, id string, req applicantapimodels.HireRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if err = rec.CheckTransition(models.ApplicantStatusHired); err != nil {
		return err
	}
	hireDate := i.now()
	if req.StartDate != "" {
		hireDate, _ = time.ParseInLocation(validators.DateLayout, req.StartDate, hireDate.Location())
	}
	email, password, err := i.users.CreateCandidateAccount(*rec)
	if err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"status":    models.ApplicantStatusHired,
		"hire_date": hireDate,
	}
	if err = i.update(spaceID, id, updMap); err != nil {
		return err
	}
	i.history.Save(spaceID, id, userID, dbmodels.HistoryTypeHire, "",
		applicanthistoryhandler.GetStatusChange(rec.Status, models.ApplicantStatusHired))

	err = i.mail.SendEMail(email, "Welcome aboard", i.inviteMessage(*rec, email, password))
	if err != nil {
		log.WithField("space_id", spaceID).
			WithField("applicant_id", id).
			WithError(err).
			Error("failed to send onboarding invite")
	}
	return nil
}

func (i impl) SetCategory(spaceID, userID, id string, category models.ScreeningCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	rec, err := i.get(spaceID, id)
	if err != nil {
		return err
	}
	if rec.Category == category {
		return nil
	}
	if err = i.update(spaceID, id, map[string]interface{}{"category": category}); err != nil {
		return err
	}
	i.history.Save(spaceID, id, userID, dbmodels.HistoryTypeCategory, "",
		applicanthistoryhandler.GetCategoryChange(rec.Category, category))
	return nil
}

func (i impl) SetCategoryMulti(spaceID, userID string, req applicantapimodels.MultiCategoryRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	list, err := i.store.GetByIDs(spaceID, req.IDs)
	if err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("failed to get applicants")
		return err
	}
	if len(list) != len(req.IDs) {
		return ErrNotFound
	}
	if _, err = i.store.UpdateCategory(spaceID, req.IDs, req.Category); err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("failed to update applicant category")
		return err
	}
	for _, rec := range list {
		if rec.Category == req.Category {
			continue
		}
		i.history.Save(spaceID, rec.ID, userID, dbmodels.HistoryTypeCategory, "",
			applicanthistoryhandler.GetCategoryChange(rec.Category, req.Category))
	}
	return nil
}

func (i impl) ExportXls(spaceID string, req applicantapimodels.XlsExportRequest) (*bytes.Buffer, error) {
	var list []dbmodels.Applicant
	var err error
	if len(req.IDs) != 0 {
		list, err = i.store.GetByIDs(spaceID, req.IDs)
	} else {
		filter := applicantapimodels.ApplicantFilter{}
		if req.Filter != nil {
			filter = *req.Filter
			if err = filter.Validate(); err != nil {
				return nil, err
			}
		}
		filter.Page = 1
		filter.Limit = exportLimit
		from, to := filter.GetPeriod(i.now())
		list, _, err = i.store.List(spaceID, filter, from, to)
	}
	if err != nil {
		log.WithField("space_id", spaceID).WithError(err).Error("failed to get applicants for export")
		return nil, err
	}
	return i.xls.ExportApplicantList(list)
}

func (i impl) get(spaceID, id string) (*dbmodels.Applicant, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithField("applicant_id", id).
			WithError(err).
			Error("failed to get applicant")
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
		log.WithField("space_id", spaceID).
			WithField("applicant_id", id).
			WithError(err).
			Error("failed to update applicant")
		return err
	}
	return nil
}

func (i impl) checkVacancy(spaceID, vacancyID string) error {
	vacancy, err := i.vacancyStore.GetByID(spaceID, vacancyID)
	if err != nil {
		log.WithField("space_id", spaceID).
			WithField("vacancy_id", vacancyID).
			WithError(err).
			Error("failed to get job posting")
		return err
	}
	if vacancy == nil {
		return ErrVacancyNotFound
	}
	if vacancy.Status == models.VacancyStatusClosed {
		return errors.New("job posting is closed")
	}
	return nil
}

func (i impl) inviteMessage(rec dbmodels.Applicant, email, password string) string {
	title := ""
	if rec.Vacancy != nil {
		title = fmt.Sprintf(" as %s", rec.Vacancy.Title)
	}
	return fmt.Sprintf("Hello %s,\n\n"+
		"Congratulations, you have been hired%s.\n"+
		"Please complete your onboarding documents at %s\n\n"+
		"Login: %s\n"+
		"Temporary password: %s\n",
		rec.FirstName, title, i.portalUrl, email, password)
}

func normalizeData(data applicantapimodels.ApplicantData) applicantapimodels.ApplicantData {
	data.FirstName = strings.TrimSpace(data.FirstName)
	data.LastName = strings.TrimSpace(data.LastName)
	data.Email = helpers.NormalizeEmail(data.Email)
	data.Phone = helpers.DigitsOnly(data.Phone)
	data.Address = strings.TrimSpace(data.Address)
	return data
}
