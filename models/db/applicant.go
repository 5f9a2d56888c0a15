package dbmodels

import (
	"fmt"
	"hr-onboarding-backend/models"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Applicant struct {
	BaseSpaceModel
	VacancyID           string                   `gorm:"type:varchar(36);index"`
	Vacancy             *Vacancy                 `gorm:"foreignKey:VacancyID"`
	Source              models.ApplicantSource   `gorm:"type:varchar(50)"`
	Status              models.ApplicantStatus   `gorm:"type:varchar(50);index"`
	Category            models.ScreeningCategory `gorm:"type:varchar(50);index"`
	FirstName           string                   `gorm:"type:varchar(255)"`
	LastName            string                   `gorm:"type:varchar(255)"`
	Email               string                   `gorm:"type:varchar(255)"`
	Phone               string                   `gorm:"type:varchar(15)"`
	Address             string
	Tags                pq.StringArray `gorm:"type:text[]"`
	DeclineReason       string
	DeclineDate         *time.Time
	CandidateDate       *time.Time
	HireDate            *time.Time
	RatingSum           int
	RatingCount         int
	OnboardingCompleted bool
	LastReminderAt      *time.Time
}

func (a Applicant) GetFullName() string {
	return fmt.Sprintf("%s %s", a.FirstName, a.LastName)
}

func (a Applicant) GetRating() float64 {
	if a.RatingCount == 0 {
		return 0
	}
	return float64(a.RatingSum) / float64(a.RatingCount)
}

// CheckTransition - validates a pipeline move: applicant -> candidate -> hired, declined from any active stage
func (a Applicant) CheckTransition(newStatus models.ApplicantStatus) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	switch newStatus {
	case models.ApplicantStatusCandidate:
		if a.Status != models.ApplicantStatusApplicant {
			return errors.Errorf("only an applicant can be advanced to candidate, current status: %v", a.Status)
		}
	case models.ApplicantStatusHired:
		if a.Status != models.ApplicantStatusCandidate {
			return errors.Errorf("only a candidate can be hired, current status: %v", a.Status)
		}
	case models.ApplicantStatusDeclined:
		if !a.Status.IsActive() {
			return errors.Errorf("applicant can not be declined, current status: %v", a.Status)
		}
	default:
		return errors.Errorf("transition to %v is not allowed", newStatus)
	}
	return nil
}

type ApplicantWithVacancy struct {
	Applicant
	VacancyTitle string
}
