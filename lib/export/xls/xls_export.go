package xlsexport

import (
	"bytes"
	"fmt"
	"hr-onboarding-backend/lib/utils/validators"
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const applicantSheet = "Applicants"

type Provider interface {
	ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

func NewInstance() Provider {
	return impl{}
}

type impl struct{}

var applicantHeaders = []string{"Name", "Email", "Phone", "Job posting", "Source", "Status", "Category", "Rating", "Applied", "Hire date"}

func (i impl) ExportApplicantList(list []dbmodels.Applicant) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := f.GetSheetName(0)
	row, err := writeHeader(f, sheet, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		if err = writeApplicantData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data")
		}
	}
	if err = f.SetSheetName(sheet, applicantSheet); err != nil {
		return nil, errors.Wrap(err, "failed to rename xlsx sheet")
	}
	return f.WriteToBuffer()
}

func writeApplicantData(f *excelize.File, sheet string, list []dbmodels.Applicant, row int) error {
	style, err := newStyle(f, false, "left")
	if err != nil {
		return err
	}
	if err = applyStyle(f, sheet, style, 1, row+1, len(applicantHeaders), row+len(list)); err != nil {
		return err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.GetFullName(),
			item.Email,
			item.Phone,
			"",
			string(item.Source),
			string(item.Status),
			string(item.Category),
			"",
			item.CreatedAt.Format(validators.DateLayout),
			"",
		}
		if item.Vacancy != nil {
			values[3] = item.Vacancy.Title
		}
		if item.RatingCount != 0 {
			values[7] = fmt.Sprintf("%.1f", item.GetRating())
		}
		if item.HireDate != nil {
			values[9] = item.HireDate.Format(validators.DateLayout)
		}
		for idx, value := range values {
			if err = writeCell(f, sheet, idx+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}
