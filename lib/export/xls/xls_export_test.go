package xlsexport

import (
	"hr-onboarding-backend/models"
	dbmodels "hr-onboarding-backend/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportApplicantList(t *testing.T) {
	hired := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	list := []dbmodels.Applicant{
		{
			BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{CreatedAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)}},
			Vacancy:        &dbmodels.Vacancy{Title: "Registered Nurse"},
			FirstName:      "Jane",
			LastName:       "Doe",
			Email:          "jane@example.com",
			Phone:          "5125550100",
			Source:         models.ApplicantSourceManual,
			Status:         models.ApplicantStatusHired,
			Category:       models.CategoryQualified,
			RatingSum:      9,
			RatingCount:    2,
			HireDate:       &hired,
		},
	}
	buf, err := NewInstance().ExportApplicantList(list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(applicantSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, applicantHeaders, rows[0])
	require.Equal(t, []string{"Jane Doe", "jane@example.com", "5125550100", "Registered Nurse", "MANUAL", "HIRED", "QUALIFIED", "4.5", "2024-02-01", "2024-03-04"}, rows[1])
}

func TestExportEmptyList(t *testing.T) {
	buf, err := NewInstance().ExportApplicantList(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(applicantSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
