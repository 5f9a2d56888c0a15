package applicantapimodels

import (
	"hr-onboarding-backend/lib/utils/validators"
	"hr-onboarding-backend/models"
	apimodels "hr-onboarding-backend/models/api"
	dbmodels "hr-onboarding-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type ApplicantView struct {
	ApplicantData
	ID                  string                   `json:"id"`
	Source              models.ApplicantSource   `json:"source"`
	Status              models.ApplicantStatus   `json:"status"`
	Category            models.ScreeningCategory `json:"category"`
	VacancyName         string                   `json:"vacancy_name"`
	FullName            string                   `json:"full_name"`
	Rating              float64                  `json:"rating"` // average of comment ratings, 0 - not rated
	DeclineReason       string                   `json:"decline_reason"`
	AcceptDate          string                   `json:"accept_date"` // YYYY-MM-DD
	DeclineDate         string                   `json:"decline_date"`
	HireDate            string                   `json:"hire_date"`
	OnboardingCompleted bool                     `json:"onboarding_completed"`
}

type ApplicantData struct {
	VacancyID string   `json:"vacancy_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"` // 10 digits
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	Tags      []string `json:"tags"`
}

func (a ApplicantData) Validate() error {
	if a.VacancyID == "" {
		return errors.New("vacancy is required")
	}
	if validators.IsBlank(a.FirstName) || validators.IsBlank(a.LastName) {
		return errors.New("first and last name are required")
	}
	if !validators.IsEmail(a.Email) {
		return errors.New("email has an invalid format")
	}
	if a.Phone != "" && !validators.IsPhone(a.Phone) {
		return errors.New("phone number must contain 10 digits")
	}
	return nil
}

func ApplicantConvert(rec dbmodels.Applicant) ApplicantView {
	result := ApplicantView{
		ApplicantData: ApplicantData{
			VacancyID: rec.VacancyID,
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Phone:     rec.Phone,
			Email:     rec.Email,
			Address:   rec.Address,
			Tags:      rec.Tags,
		},
		ID:                  rec.ID,
		Source:              rec.Source,
		Status:              rec.Status,
		Category:            rec.Category,
		FullName:            rec.GetFullName(),
		Rating:              rec.GetRating(),
		DeclineReason:       rec.DeclineReason,
		AcceptDate:          rec.CreatedAt.Format(validators.DateLayout),
		DeclineDate:         formatDate(rec.DeclineDate),
		HireDate:            formatDate(rec.HireDate),
		OnboardingCompleted: rec.OnboardingCompleted,
	}
	if rec.Vacancy != nil {
		result.VacancyName = rec.Vacancy.Title
	}
	return result
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(validators.DateLayout)
}

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByName      SortField = "name"
	SortByRating    SortField = "rating"
)

type ApplicantSort struct {
	Field SortField `json:"field"` // created_at (default) / name / rating
	Desc  bool      `json:"desc"`
}

func (s ApplicantSort) Validate() error {
	switch s.Field {
	case "", SortByCreatedAt, SortByName, SortByRating:
		return nil
	}
	return errors.Errorf("unknown sort field: %v", s.Field)
}

type ApplicantFilter struct {
	apimodels.Pagination
	VacancyID string                    `json:"vacancy_id"`
	Search    string                    `json:"search"` // name/email/phone/tag
	Status    *models.ApplicantStatus   `json:"status"`
	Category  *models.ScreeningCategory `json:"category"`
	DateFrom  string                    `json:"date_from"` // YYYY-MM-DD
	DateTo    string                    `json:"date_to"`   // YYYY-MM-DD, inclusive
	TimeFrame models.TimeFrame          `json:"time_frame"`
	Sort      ApplicantSort             `json:"sort"`
}

func (a ApplicantFilter) Validate() error {
	if a.Status != nil {
		if err := a.Status.Validate(); err != nil {
			return err
		}
	}
	if a.Category != nil {
		if err := a.Category.Validate(); err != nil {
			return err
		}
	}
	if err := a.TimeFrame.Validate(); err != nil {
		return err
	}
	if a.DateFrom != "" && !validators.IsDate(a.DateFrom) {
		return errors.New("date_from must be in YYYY-MM-DD format")
	}
	if a.DateTo != "" && !validators.IsDate(a.DateTo) {
		return errors.New("date_to must be in YYYY-MM-DD format")
	}
	return a.Sort.Validate()
}

// GetPeriod - resolves the creation date range, an explicit range wins over the time frame preset
func (a ApplicantFilter) GetPeriod(now time.Time) (from, to *time.Time) {
	if a.DateFrom != "" || a.DateTo != "" {
		if d, err := time.ParseInLocation(validators.DateLayout, a.DateFrom, now.Location()); err == nil {
			from = &d
		}
		if d, err := time.ParseInLocation(validators.DateLayout, a.DateTo, now.Location()); err == nil {
			end := d.AddDate(0, 0, 1)
			to = &end
		}
		return from, to
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var start time.Time
	switch a.TimeFrame {
	case models.TimeFrameToday:
		start = today
	case models.TimeFrameLast7Days:
		start = today.AddDate(0, 0, -7)
	case models.TimeFrameLast30Days:
		start = today.AddDate(0, 0, -30)
	case models.TimeFrameLast90Days:
		start = today.AddDate(0, 0, -90)
	default:
		return nil, nil
	}
	return &start, nil
}

type DeclineRequest struct {
	Reason string `json:"reason"`
}

func (r DeclineRequest) Validate() error {
	if validators.IsBlank(r.Reason) {
		return errors.New("decline reason is required")
	}
	return nil
}

type HireRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD, today when empty
}

func (r HireRequest) Validate() error {
	if r.StartDate != "" && !validators.IsDate(r.StartDate) {
		return errors.New("start_date must be in YYYY-MM-DD format")
	}
	return nil
}

type CategoryRequest struct {
	Category models.ScreeningCategory `json:"category"`
}

func (r CategoryRequest) Validate() error {
	return r.Category.Validate()
}

type MultiCategoryRequest struct {
	IDs      []string                 `json:"ids"`
	Category models.ScreeningCategory `json:"category"`
}

func (r MultiCategoryRequest) Validate() error {
	if len(r.IDs) == 0 {
		return errors.New("applicant list is empty")
	}
	return r.Category.Validate()
}

type XlsExportRequest struct {
	IDs    []string         `json:"ids"`    // exported applicants
	Filter *ApplicantFilter `json:"filter"` // used when ids are empty
}

type BulkUploadRowError struct {
	Row     int    `json:"row"` // 1-based spreadsheet row
	Message string `json:"message"`
}

type BulkUploadResult struct {
	Created int                  `json:"created"`
	Errors  []BulkUploadRowError `json:"errors"`
}

type QualificationDocView struct {
	DocType   models.QualificationDocType `json:"doc_type"`
	Status    models.QualificationStatus  `json:"status"`
	Url       string                      `json:"url"`
	Comment   string                      `json:"comment"`
	UpdatedAt string                      `json:"updated_at"`
}

type QualificationStatusRequest struct {
	Status  models.QualificationStatus `json:"status"`
	Comment string                     `json:"comment"`
}

func (r QualificationStatusRequest) Validate() error {
	if r.Status != models.QualificationApproved && r.Status != models.QualificationRejected {
		return errors.New("status must be APPROVED or REJECTED")
	}
	return nil
}
