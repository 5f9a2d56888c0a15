package dbmodels

import (
	"hr-onboarding-backend/models"
	"time"
)

type Vacancy struct {
	BaseSpaceModel
	AuthorID       string
	Author         *SpaceUser            `gorm:"foreignKey:AuthorID"`
	Title          string                `gorm:"type:varchar(255)"`
	Department     string                `gorm:"type:varchar(255)"`
	Location       string                `gorm:"type:varchar(255)"`
	EmploymentType models.EmploymentType `gorm:"type:varchar(50)"`
	Description    string
	Requirements   string
	SalaryFrom     int
	SalaryTo       int
	Status         models.VacancyStatus `gorm:"type:varchar(50);index"`
	PublishedAt    *time.Time
	ClosedAt       *time.Time
}
