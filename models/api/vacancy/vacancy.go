package vacancyapimodels

import (
	"hr-onboarding-backend/lib/utils/validators"
	"hr-onboarding-backend/models"
	apimodels "hr-onboarding-backend/models/api"
	dbmodels "hr-onboarding-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

// VacancyData - job posting, may be saved partially while the posting is a draft
type VacancyData struct {
	Title          string                `json:"title"`
	Department     string                `json:"department"`
	Location       string                `json:"location"`
	EmploymentType models.EmploymentType `json:"employment_type"`
	Description    string                `json:"description"`
	Requirements   string                `json:"requirements"`
	SalaryFrom     int                   `json:"salary_from"`
	SalaryTo       int                   `json:"salary_to"`
}

// Validate - checks a draft, only the title is mandatory
func (v VacancyData) Validate() error {
	if validators.IsBlank(v.Title) {
		return errors.New("job title is required")
	}
	if err := v.EmploymentType.Validate(); err != nil {
		return err
	}
	if v.SalaryFrom < 0 || v.SalaryTo < 0 {
		return errors.New("salary must not be negative")
	}
	return nil
}

// ValidateForPublish - a posting must be complete before it is published
func (v VacancyData) ValidateForPublish() error {
	if err := v.Validate(); err != nil {
		return err
	}
	if validators.IsBlank(v.Location) {
		return errors.New("job location is required")
	}
	if v.EmploymentType == "" {
		return errors.New("employment type is required")
	}
	if validators.IsBlank(v.Description) {
		return errors.New("job description is required")
	}
	if v.SalaryTo != 0 && v.SalaryFrom > v.SalaryTo {
		return errors.New("salary 'from' must not exceed salary 'to'")
	}
	return nil
}

type VacancyView struct {
	VacancyData
	ID          string               `json:"id"`
	Status      models.VacancyStatus `json:"status"`
	AuthorName  string               `json:"author_name"`
	CreatedAt   string               `json:"created_at"`
	PublishedAt string               `json:"published_at"`
}

func VacancyConvert(rec dbmodels.Vacancy) VacancyView {
	result := VacancyView{
		VacancyData: VacancyData{
			Title:          rec.Title,
			Department:     rec.Department,
			Location:       rec.Location,
			EmploymentType: rec.EmploymentType,
			Description:    rec.Description,
			Requirements:   rec.Requirements,
			SalaryFrom:     rec.SalaryFrom,
			SalaryTo:       rec.SalaryTo,
		},
		ID:        rec.ID,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt.Format(time.DateOnly),
	}
	if rec.Author != nil {
		result.AuthorName = rec.Author.GetFullName()
	}
	if rec.PublishedAt != nil {
		result.PublishedAt = rec.PublishedAt.Format(time.DateOnly)
	}
	return result
}

type VacancyFilter struct {
	apimodels.Pagination
	Search string                `json:"search"` // title/department/location
	Status *models.VacancyStatus `json:"status"`
}

func (f VacancyFilter) Validate() error {
	if f.Status != nil {
		return f.Status.Validate()
	}
	return nil
}
