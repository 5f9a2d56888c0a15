package models

import "github.com/pkg/errors"

type VacancyStatus string

const (
	VacancyStatusDraft     VacancyStatus = "DRAFT"
	VacancyStatusPublished VacancyStatus = "PUBLISHED"
	VacancyStatusClosed    VacancyStatus = "CLOSED"
)

func (s VacancyStatus) Validate() error {
	switch s {
	case VacancyStatusDraft, VacancyStatusPublished, VacancyStatusClosed:
		return nil
	}
	return errors.Errorf("unknown vacancy status: %v", s)
}

type EmploymentType string

const (
	EmploymentFullTime  EmploymentType = "FULL_TIME"
	EmploymentPartTime  EmploymentType = "PART_TIME"
	EmploymentPerDiem   EmploymentType = "PER_DIEM"
	EmploymentContract  EmploymentType = "CONTRACT"
	EmploymentTemporary EmploymentType = "TEMPORARY"
)

func (t EmploymentType) Validate() error {
	switch t {
	case "", EmploymentFullTime, EmploymentPartTime, EmploymentPerDiem, EmploymentContract, EmploymentTemporary:
		return nil
	}
	return errors.Errorf("unknown employment type: %v", t)
}
