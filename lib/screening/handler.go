package screening

import (
	"hr-onboarding-backend/db"
	applicanthistoryhandler "hr-onboarding-backend/lib/applicant-history"
	applicantstore "hr-onboarding-backend/lib/applicant/store"
	"hr-onboarding-backend/lib/utils/helpers"
	vacancystore "hr-onboarding-backend/lib/vacancy/store"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	dbmodels "hr-onboarding-backend/models/db"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const maxRows = 1000

var ErrVacancyNotFound = errors.New("job posting not found")

const (
	columnFirstName = "first name"
	columnLastName  = "last name"
	columnEmail     = "email"
	columnPhone     = "phone"
	columnAddress   = "address"
)

var requiredColumns = []string{columnFirstName, columnLastName, columnEmail}

type Provider interface {
	BulkUpload(spaceID, userID, vacancyID string, file io.Reader) (*applicantapimodels.BulkUploadResult, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		applicantstore.NewInstance(db.DB),
		vacancystore.NewInstance(db.DB),
		applicanthistoryhandler.Instance,
	)
}

func NewInstance(store applicantstore.Provider, vacancyStore vacancystore.Provider, history applicanthistoryhandler.Provider) Provider {
	return impl{
		store:        store,
		vacancyStore: vacancyStore,
		history:      history,
	}
}

type impl struct {
	store        applicantstore.Provider
	vacancyStore vacancystore.Provider
	history      applicanthistoryhandler.Provider
}

// BulkUpload - creates applicants from the first sheet of an xlsx file, invalid rows are reported and skipped
func (i impl) BulkUpload(spaceID, userID, vacancyID string, file io.Reader) (*applicantapimodels.BulkUploadResult, error) {
	logger := log.WithField("space_id", spaceID).WithField("vacancy_id", vacancyID)
	vacancy, err := i.vacancyStore.GetByID(spaceID, vacancyID)
	if err != nil {
		logger.WithError(err).Error("failed to get job posting")
		return nil, err
	}
	if vacancy == nil {
		return nil, ErrVacancyNotFound
	}
	if vacancy.Status == models.VacancyStatusClosed {
		return nil, errors.New("job posting is closed")
	}

	rows, err := readRows(file)
	if err != nil {
		return nil, err
	}
	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}
	if len(rows)-1 > maxRows {
		return nil, errors.Errorf("file contains more than %d rows", maxRows)
	}

	result := &applicantapimodels.BulkUploadResult{Errors: []applicantapimodels.BulkUploadRowError{}}
	seen := map[string]bool{}
	for idx, row := range rows[1:] {
		rowNum := idx + 2
		data := rowData(row, columns, vacancyID)
		if isEmptyRow(data) {
			continue
		}
		if err = i.createRow(spaceID, userID, data, seen); err != nil {
			result.Errors = append(result.Errors, applicantapimodels.BulkUploadRowError{Row: rowNum, Message: err.Error()})
			continue
		}
		result.Created++
	}
	logger.
		WithField("created", result.Created).
		WithField("failed", len(result.Errors)).
		Info("applicants bulk upload finished")
	return result, nil
}

func (i impl) createRow(spaceID, userID string, data applicantapimodels.ApplicantData, seen map[string]bool) error {
	if err := data.Validate(); err != nil {
		return err
	}
	if seen[data.Email] {
		return errors.New("duplicate email in the file")
	}
	seen[data.Email] = true
	exists, err := i.store.ExistByEmail(spaceID, data.VacancyID, data.Email)
	if err != nil {
		log.WithError(err).Error("failed to check applicant duplicate")
		return errors.New("failed to check applicant duplicate")
	}
	if exists {
		return errors.New("applicant with this email already applied to the job posting")
	}
	rec := dbmodels.Applicant{
		BaseSpaceModel: dbmodels.BaseSpaceModel{SpaceID: spaceID},
		VacancyID:      data.VacancyID,
		Source:         models.ApplicantSourceBulkUpload,
		Status:         models.ApplicantStatusApplicant,
		Category:       models.CategoryUnscreened,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Email:          data.Email,
		Phone:          data.Phone,
		Address:        data.Address,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create applicant from bulk upload")
		return errors.New("failed to save applicant")
	}
	rec.ID = id
	i.history.Save(spaceID, id, userID, dbmodels.HistoryTypeAdded, "Bulk upload", applicanthistoryhandler.GetCreateChanges(rec))
	return nil
}

func readRows(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, errors.New("file is not a valid xlsx spreadsheet")
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "failed to read spreadsheet rows")
	}
	if len(rows) == 0 {
		return nil, errors.New("spreadsheet is empty")
	}
	return rows, nil
}

// mapHeader - column name to index, names are matched case-insensitively
func mapHeader(header []string) (map[string]int, error) {
	columns := map[string]int{}
	for idx, name := range header {
		key := strings.Join(strings.Fields(strings.ToLower(name)), " ")
		if _, ok := columns[key]; !ok {
			columns[key] = idx
		}
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, errors.Errorf("required column '%s' not found in the header", name)
		}
	}
	return columns, nil
}

func rowData(row []string, columns map[string]int, vacancyID string) applicantapimodels.ApplicantData {
	value := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	return applicantapimodels.ApplicantData{
		VacancyID: vacancyID,
		FirstName: value(columnFirstName),
		LastName:  value(columnLastName),
		Email:     helpers.NormalizeEmail(value(columnEmail)),
		Phone:     helpers.DigitsOnly(value(columnPhone)),
		Address:   value(columnAddress),
	}
}

func isEmptyRow(data applicantapimodels.ApplicantData) bool {
	return data.FirstName+data.LastName+data.Email+data.Phone+data.Address == ""
}
