package applicant

import (
	"bytes"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	spaceapimodels "hr-onboarding-backend/models/api/space"
	vacancyapimodels "hr-onboarding-backend/models/api/vacancy"
	dbmodels "hr-onboarding-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	recs     map[string]*dbmodels.Applicant
	listFrom *time.Time
	exists   bool
}

func (f *fakeStore) Create(rec dbmodels.Applicant) (string, error) {
	rec.ID = "new"
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeStore) Update(spaceID, id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	for key, value := range updMap {
		switch key {
		case "status":
			rec.Status = value.(models.ApplicantStatus)
		case "category":
			rec.Category = value.(models.ScreeningCategory)
		case "decline_reason":
			rec.DeclineReason = value.(string)
		case "hire_date":
			hireDate := value.(time.Time)
			rec.HireDate = &hireDate
		case "email":
			rec.Email = value.(string)
		}
	}
	return nil
}

func (f *fakeStore) GetByID(spaceID, id string) (*dbmodels.Applicant, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	copyRec := *rec
	return &copyRec, nil
}

func (f *fakeStore) GetByIDs(spaceID string, ids []string) ([]dbmodels.Applicant, error) {
	result := []dbmodels.Applicant{}
	for _, id := range ids {
		if rec, ok := f.recs[id]; ok {
			result = append(result, *rec)
		}
	}
	return result, nil
}

func (f *fakeStore) List(spaceID string, filter applicantapimodels.ApplicantFilter, from, to *time.Time) ([]dbmodels.Applicant, int64, error) {
	f.listFrom = from
	result := []dbmodels.Applicant{}
	for _, rec := range f.recs {
		result = append(result, *rec)
	}
	return result, int64(len(result)), nil
}

func (f *fakeStore) ExistByEmail(string, string, string) (bool, error) { return f.exists, nil }

func (f *fakeStore) UpdateCategory(spaceID string, ids []string, category models.ScreeningCategory) (int64, error) {
	for _, id := range ids {
		f.recs[id].Category = category
	}
	return int64(len(ids)), nil
}

func (f *fakeStore) AddRating(string, string, int) error { return nil }
func (f *fakeStore) ListForReminder(time.Time, int) ([]dbmodels.Applicant, error) {
	return nil, nil
}

type fakeVacancyStore struct {
	status models.VacancyStatus
}

func (f fakeVacancyStore) GetByID(spaceID, id string) (*dbmodels.Vacancy, error) {
	if id != "vac1" {
		return nil, nil
	}
	return &dbmodels.Vacancy{Title: "Registered Nurse", Status: f.status}, nil
}

func (f fakeVacancyStore) Create(dbmodels.Vacancy) (string, error)             { return "", nil }
func (f fakeVacancyStore) Update(string, string, map[string]interface{}) error { return nil }
func (f fakeVacancyStore) Delete(string, string) error                         { return nil }
func (f fakeVacancyStore) List(string, vacancyapimodels.VacancyFilter) ([]dbmodels.Vacancy, int64, error) {
	return nil, 0, nil
}

type fakeHistory struct {
	actions []dbmodels.ActionType
}

func (f *fakeHistory) List(string, string, applicantapimodels.ApplicantHistoryFilter) ([]applicantapimodels.ApplicantHistoryView, int64, error) {
	return nil, 0, nil
}

func (f *fakeHistory) Save(spaceID, applicantID, userID string, action dbmodels.ActionType, text string, changes dbmodels.ApplicantChanges) {
	f.actions = append(f.actions, action)
}

func (f *fakeHistory) AddComment(string, string, string, applicantapimodels.CommentRequest) error {
	return nil
}

type fakeUsers struct {
	accounts []string
}

func (f *fakeUsers) CreateCandidateAccount(applicant dbmodels.Applicant) (string, string, error) {
	f.accounts = append(f.accounts, applicant.ID)
	return applicant.Email, "Temp-Pass-123", nil
}

func (f *fakeUsers) CreateUser(string, spaceapimodels.CreateUser, models.UserRole) (string, error) {
	return "", nil
}
func (f *fakeUsers) GetListUsers(string, int, int) ([]spaceapimodels.SpaceUser, int64, error) {
	return nil, 0, nil
}
func (f *fakeUsers) GetByID(string) (*spaceapimodels.SpaceUser, error) { return nil, nil }
func (f *fakeUsers) GetStaffIDs(string) ([]string, error)              { return nil, nil }

type fakeMail struct {
	to       []string
	messages []string
}

func (f *fakeMail) SendEMail(to, subject, message string) error {
	f.to = append(f.to, to)
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeMail) IsConfigured() bool { return true }

type fakeXls struct {
	exported int
}

func (f *fakeXls) ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error) {
	f.exported = len(list)
	return new(bytes.Buffer), nil
}

type testEnv struct {
	handler impl
	store   *fakeStore
	history *fakeHistory
	users   *fakeUsers
	mail    *fakeMail
	xls     *fakeXls
}

func newTestEnv(recs ...dbmodels.Applicant) testEnv {
	env := testEnv{
		store:   &fakeStore{recs: map[string]*dbmodels.Applicant{}},
		history: &fakeHistory{},
		users:   &fakeUsers{},
		mail:    &fakeMail{},
		xls:     &fakeXls{},
	}
	for idx := range recs {
		env.store.recs[recs[idx].ID] = &recs[idx]
	}
	env.handler = NewInstance(env.store, fakeVacancyStore{status: models.VacancyStatusPublished}, env.history,
		env.users, env.mail, env.xls, "https://portal.example.com").(impl)
	env.handler.now = func() time.Time { return time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC) }
	return env
}

func applicantRec(id string, status models.ApplicantStatus) dbmodels.Applicant {
	return dbmodels.Applicant{
		BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: id}, SpaceID: "s1"},
		VacancyID:      "vac1",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		Status:         status,
		Category:       models.CategoryUnscreened,
	}
}

func TestCreate(t *testing.T) {
	data := applicantapimodels.ApplicantData{
		VacancyID: "vac1",
		FirstName: " Jane ",
		LastName:  "Doe",
		Email:     "Jane@Example.com",
		Phone:     "(512) 555-0100",
	}
	t.Run("created as unscreened applicant", func(t *testing.T) {
		env := newTestEnv()
		id, err := env.handler.Create("s1", "hr1", data)
		require.NoError(t, err)
		rec := env.store.recs[id]
		require.Equal(t, "Jane", rec.FirstName)
		require.Equal(t, "jane@example.com", rec.Email)
		require.Equal(t, "5125550100", rec.Phone)
		require.Equal(t, models.ApplicantStatusApplicant, rec.Status)
		require.Equal(t, models.CategoryUnscreened, rec.Category)
		require.Equal(t, models.ApplicantSourceManual, rec.Source)
		require.Equal(t, []dbmodels.ActionType{dbmodels.HistoryTypeAdded}, env.history.actions)
	})
	t.Run("duplicate email", func(t *testing.T) {
		env := newTestEnv()
		env.store.exists = true
		_, err := env.handler.Create("s1", "hr1", data)
		require.ErrorIs(t, err, ErrDuplicate)
	})
	t.Run("unknown vacancy", func(t *testing.T) {
		env := newTestEnv()
		other := data
		other.VacancyID = "vac2"
		_, err := env.handler.Create("s1", "hr1", other)
		require.ErrorIs(t, err, ErrVacancyNotFound)
	})
}

func TestPipelineTransitions(t *testing.T) {
	t.Run("advance applicant", func(t *testing.T) {
		env := newTestEnv(applicantRec("a1", models.ApplicantStatusApplicant))
		require.NoError(t, env.handler.Advance("s1", "hr1", "a1"))
		require.Equal(t, models.ApplicantStatusCandidate, env.store.recs["a1"].Status)
		require.Equal(t, []dbmodels.ActionType{dbmodels.HistoryTypeAdvance}, env.history.actions)
	})
	t.Run("hire requires candidate", func(t *testing.T) {
		env := newTestEnv(applicantRec("a1", models.ApplicantStatusApplicant))
		require.Error(t, env.handler.Hire("s1", "hr1", "a1", applicantapimodels.HireRequest{}))
		require.Empty(t, env.users.accounts)
		require.Empty(t, env.mail.to)
	})
	t.Run("decline requires reason", func(t *testing.T) {
		env := newTestEnv(applicantRec("a1", models.ApplicantStatusCandidate))
		require.Error(t, env.handler.Decline("s1", "hr1", "a1", applicantapimodels.DeclineRequest{Reason: "  "}))
		require.NoError(t, env.handler.Decline("s1", "hr1", "a1", applicantapimodels.DeclineRequest{Reason: " No license "}))
		require.Equal(t, models.ApplicantStatusDeclined, env.store.recs["a1"].Status)
		require.Equal(t, "No license", env.store.recs["a1"].DeclineReason)
	})
	t.Run("declined applicant can not be advanced", func(t *testing.T) {
		env := newTestEnv(applicantRec("a1", models.ApplicantStatusDeclined))
		require.Error(t, env.handler.Advance("s1", "hr1", "a1"))
		require.Error(t, env.handler.Decline("s1", "hr1", "a1", applicantapimodels.DeclineRequest{Reason: "again"}))
	})
	t.Run("unknown applicant", func(t *testing.T) {
		env := newTestEnv()
		require.ErrorIs(t, env.handler.Advance("s1", "hr1", "a9"), ErrNotFound)
	})
}

func TestHire(t *testing.T) {
	env := newTestEnv(applicantRec("a1", models.ApplicantStatusCandidate))
	err := env.handler.Hire("s1", "hr1", "a1", applicantapimodels.HireRequest{StartDate: "2024-07-01"})
	require.NoError(t, err)

	rec := env.store.recs["a1"]
	require.Equal(t, models.ApplicantStatusHired, rec.Status)
	require.Equal(t, "2024-07-01", rec.HireDate.Format("2006-01-02"))
	require.Equal(t, []string{"a1"}, env.users.accounts)
	require.Equal(t, []string{"jane@example.com"}, env.mail.to)
	require.Contains(t, env.mail.messages[0], "https://portal.example.com")
	require.Contains(t, env.mail.messages[0], "Temp-Pass-123")
	require.Equal(t, []dbmodels.ActionType{dbmodels.HistoryTypeHire}, env.history.actions)
}

func TestCategory(t *testing.T) {
	env := newTestEnv(applicantRec("a1", models.ApplicantStatusApplicant), applicantRec("a2", models.ApplicantStatusApplicant))

	require.NoError(t, env.handler.SetCategory("s1", "hr1", "a1", models.CategoryMaybe))
	require.Equal(t, models.CategoryMaybe, env.store.recs["a1"].Category)
	require.Error(t, env.handler.SetCategory("s1", "hr1", "a1", "GOOD"))

	err := env.handler.SetCategoryMulti("s1", "hr1", applicantapimodels.MultiCategoryRequest{
		IDs:      []string{"a1", "a2"},
		Category: models.CategoryQualified,
	})
	require.NoError(t, err)
	require.Equal(t, models.CategoryQualified, env.store.recs["a1"].Category)
	require.Equal(t, models.CategoryQualified, env.store.recs["a2"].Category)
	require.Len(t, env.history.actions, 3)

	err = env.handler.SetCategoryMulti("s1", "hr1", applicantapimodels.MultiCategoryRequest{
		IDs:      []string{"a1", "missing"},
		Category: models.CategoryMaybe,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListResolvesTimeFrame(t *testing.T) {
	env := newTestEnv(applicantRec("a1", models.ApplicantStatusApplicant))
	list, rowCount, err := env.handler.List("s1", applicantapimodels.ApplicantFilter{TimeFrame: models.TimeFrameLast7Days})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.EqualValues(t, 1, rowCount)
	require.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), *env.store.listFrom)

	_, err = env.handler.ExportXls("s1", applicantapimodels.XlsExportRequest{IDs: []string{"a1"}})
	require.NoError(t, err)
	require.Equal(t, 1, env.xls.exported)
}
