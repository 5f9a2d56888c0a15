package applicanthistoryhandler

import (
	"fmt"
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	dbmodels "hr-onboarding-backend/models/db"
	"strings"
)

func GetCreateChanges(rec dbmodels.Applicant) dbmodels.ApplicantChanges {
	result := dbmodels.ApplicantChanges{
		Data: make([]dbmodels.ApplicantChange, 0),
	}
	for _, field := range trackedFields(applicantapimodels.ApplicantConvert(rec).ApplicantData) {
		if field.value == "" {
			continue
		}
		result.Data = append(result.Data, dbmodels.ApplicantChange{
			Field:    field.name,
			OldValue: "",
			NewValue: field.value,
		})
	}
	return result
}

func GetUpdateChanges(oldData, newData applicantapimodels.ApplicantData) dbmodels.ApplicantChanges {
	result := dbmodels.ApplicantChanges{
		Data: make([]dbmodels.ApplicantChange, 0),
	}
	oldFields := trackedFields(oldData)
	newFields := trackedFields(newData)
	for k := range oldFields {
		if oldFields[k].value == newFields[k].value {
			continue
		}
		result.Data = append(result.Data, dbmodels.ApplicantChange{
			Field:    oldFields[k].name,
			OldValue: oldFields[k].value,
			NewValue: newFields[k].value,
		})
	}
	return result
}

func GetStatusChange(oldStatus, newStatus models.ApplicantStatus) dbmodels.ApplicantChanges {
	return dbmodels.ApplicantChanges{
		Data: []dbmodels.ApplicantChange{
			{
				Field:    "status",
				OldValue: oldStatus,
				NewValue: newStatus,
			},
		},
	}
}

func GetCategoryChange(oldCategory, newCategory models.ScreeningCategory) dbmodels.ApplicantChanges {
	return dbmodels.ApplicantChanges{
		Data: []dbmodels.ApplicantChange{
			{
				Field:    "category",
				OldValue: oldCategory,
				NewValue: newCategory,
			},
		},
	}
}

func GetDocumentText(title string) string {
	return fmt.Sprintf("Onboarding document submitted: %v", title)
}

type trackedField struct {
	name  string
	value string
}

func trackedFields(data applicantapimodels.ApplicantData) []trackedField {
	return []trackedField{
		{name: "vacancy_id", value: data.VacancyID},
		{name: "first_name", value: data.FirstName},
		{name: "last_name", value: data.LastName},
		{name: "phone", value: data.Phone},
		{name: "email", value: data.Email},
		{name: "address", value: data.Address},
		{name: "tags", value: strings.Join(data.Tags, ", ")},
	}
}
