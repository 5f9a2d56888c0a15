package screening

import (
	"bytes"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	vacancyapimodels "hr-onboarding-backend/models/api/vacancy"
	dbmodels "hr-onboarding-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeStore struct {
	created  []dbmodels.Applicant
	existing map[string]bool
}

func (f *fakeStore) Create(rec dbmodels.Applicant) (string, error) {
	f.created = append(f.created, rec)
	return rec.Email, nil
}

func (f *fakeStore) ExistByEmail(spaceID, vacancyID, email string) (bool, error) {
	return f.existing[email], nil
}

func (f *fakeStore) Update(string, string, map[string]interface{}) error     { return nil }
func (f *fakeStore) GetByID(string, string) (*dbmodels.Applicant, error)     { return nil, nil }
func (f *fakeStore) GetByIDs(string, []string) ([]dbmodels.Applicant, error) { return nil, nil }
func (f *fakeStore) List(string, applicantapimodels.ApplicantFilter, *time.Time, *time.Time) ([]dbmodels.Applicant, int64, error) {
	return nil, 0, nil
}
func (f *fakeStore) UpdateCategory(string, []string, models.ScreeningCategory) (int64, error) {
	return 0, nil
}
func (f *fakeStore) AddRating(string, string, int) error { return nil }
func (f *fakeStore) ListForReminder(time.Time, int) ([]dbmodels.Applicant, error) {
	return nil, nil
}

type fakeVacancyStore struct{}

func (fakeVacancyStore) GetByID(spaceID, id string) (*dbmodels.Vacancy, error) {
	if id != "vac1" {
		return nil, nil
	}
	return &dbmodels.Vacancy{Status: models.VacancyStatusPublished}, nil
}

func (fakeVacancyStore) Create(dbmodels.Vacancy) (string, error)             { return "", nil }
func (fakeVacancyStore) Update(string, string, map[string]interface{}) error { return nil }
func (fakeVacancyStore) Delete(string, string) error                         { return nil }
func (fakeVacancyStore) List(string, vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, int64, error) {
	return nil, 0, nil
}

type fakeHistory struct {
	saved int
}

func (f *fakeHistory) List(string, string, applicantapimodels.ApplicantHistoryFilter) ([]applicantapimodels.ApplicantHistoryView, int64, error) {
	return nil, 0, nil
}

func (f *fakeHistory) Save(string, string, string, dbmodels.ActionType, string, dbmodels.ApplicantChanges) {
	f.saved++
}

func (f *fakeHistory) AddComment(string, string, string, applicantapimodels.CommentRequest) error {
	return nil
}

func spreadsheet(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestBulkUpload(t *testing.T) {
	file := spreadsheet(t, [][]interface{}{
		{"Email", "First  Name", "LAST NAME", "Phone", "Address"},
		{"jane@example.com", "Jane", "Doe", "(512) 555-0100", "1 Main St"},
		{"not-an-email", "John", "Smith", "", ""},
		{"", "", "", "", ""},
		{"JANE@example.com", "Jane", "Again", "", ""},
		{"taken@example.com", "Tom", "Taken", "", ""},
		{"bob@example.com", "Bob", "Stone", "123", ""},
		{"amy@example.com", "Amy", "Lee", "", ""},
	})
	store := &fakeStore{existing: map[string]bool{"taken@example.com": true}}
	history := &fakeHistory{}
	h := NewInstance(store, fakeVacancyStore{}, history)

	result, err := h.BulkUpload("s1", "hr1", "vac1", file)
	require.NoError(t, err)
	require.Equal(t, 2, result.Created)
	require.Equal(t, 2, history.saved)

	rows := []int{}
	for _, rowErr := range result.Errors {
		rows = append(rows, rowErr.Row)
	}
	require.Equal(t, []int{3, 5, 6, 7}, rows)

	require.Len(t, store.created, 2)
	require.Equal(t, "jane@example.com", store.created[0].Email)
	require.Equal(t, "5125550100", store.created[0].Phone)
	require.Equal(t, models.ApplicantSourceBulkUpload, store.created[0].Source)
	require.Equal(t, models.CategoryUnscreened, store.created[0].Category)
	require.Equal(t, models.ApplicantStatusApplicant, store.created[0].Status)
}

func TestBulkUploadRejectsFile(t *testing.T) {
	h := NewInstance(&fakeStore{}, fakeVacancyStore{}, &fakeHistory{})

	t.Run("missing column", func(t *testing.T) {
		file := spreadsheet(t, [][]interface{}{{"Name", "Email"}, {"Jane", "jane@example.com"}})
		_, err := h.BulkUpload("s1", "hr1", "vac1", file)
		require.EqualError(t, err, "required column 'first name' not found in the header")
	})
	t.Run("not a spreadsheet", func(t *testing.T) {
		_, err := h.BulkUpload("s1", "hr1", "vac1", bytes.NewBufferString("plain text"))
		require.Error(t, err)
	})
	t.Run("unknown vacancy", func(t *testing.T) {
		_, err := h.BulkUpload("s1", "hr1", "vac2", bytes.NewBuffer(nil))
		require.ErrorIs(t, err, ErrVacancyNotFound)
	})
}
