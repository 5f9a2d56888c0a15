package models

import "github.com/pkg/errors"

type ApplicantStatus string

const (
	ApplicantStatusApplicant ApplicantStatus = "APPLICANT"
	ApplicantStatusCandidate ApplicantStatus = "CANDIDATE"
	ApplicantStatusHired     ApplicantStatus = "HIRED"
	ApplicantStatusDeclined  ApplicantStatus = "DECLINED"
)

func (s ApplicantStatus) Validate() error {
	switch s {
	case ApplicantStatusApplicant, ApplicantStatusCandidate, ApplicantStatusHired, ApplicantStatusDeclined:
		return nil
	}
	return errors.Errorf("unknown applicant status: %v", s)
}

// IsActive - applicant is still in the pre-hire pipeline
func (s ApplicantStatus) IsActive() bool {
	return s == ApplicantStatusApplicant || s == ApplicantStatusCandidate
}

type ApplicantSource string

const (
	ApplicantSourceManual     ApplicantSource = "MANUAL"
	ApplicantSourceBulkUpload ApplicantSource = "BULK_UPLOAD"
)

type ScreeningCategory string

const (
	CategoryUnscreened   ScreeningCategory = "UNSCREENED"
	CategoryQualified    ScreeningCategory = "QUALIFIED"
	CategoryMaybe        ScreeningCategory = "MAYBE"
	CategoryNotQualified ScreeningCategory = "NOT_QUALIFIED"
)

func (c ScreeningCategory) Validate() error {
	switch c {
	case CategoryUnscreened, CategoryQualified, CategoryMaybe, CategoryNotQualified:
		return nil
	}
	return errors.Errorf("unknown screening category: %v", c)
}

type TimeFrame string

const (
	TimeFrameToday      TimeFrame = "TODAY"
	TimeFrameLast7Days  TimeFrame = "LAST_7_DAYS"
	TimeFrameLast30Days TimeFrame = "LAST_30_DAYS"
	TimeFrameLast90Days TimeFrame = "LAST_90_DAYS"
)

func (t TimeFrame) Validate() error {
	switch t {
	case "", TimeFrameToday, TimeFrameLast7Days, TimeFrameLast30Days, TimeFrameLast90Days:
		return nil
	}
	return errors.Errorf("unknown time frame: %v", t)
}

type QualificationDocType string

const (
	QualificationResume              QualificationDocType = "RESUME"
	QualificationDriversLicense      QualificationDocType = "DRIVERS_LICENSE"
	QualificationCprCertification    QualificationDocType = "CPR_CERTIFICATION"
	QualificationProfessionalLicense QualificationDocType = "PROFESSIONAL_LICENSE"
	QualificationSsnCard             QualificationDocType = "SSN_CARD"
	QualificationIdentityDocument    QualificationDocType = "IDENTITY_DOCUMENT"
)

var QualificationDocTypes = []QualificationDocType{
	QualificationResume,
	QualificationDriversLicense,
	QualificationCprCertification,
	QualificationProfessionalLicense,
	QualificationSsnCard,
	QualificationIdentityDocument,
}

func (t QualificationDocType) Validate() error {
	for _, known := range QualificationDocTypes {
		if t == known {
			return nil
		}
	}
	return errors.Errorf("unknown qualification document type: %v", t)
}

type QualificationStatus string

const (
	QualificationNotUploaded QualificationStatus = "NOT_UPLOADED"
	QualificationUploaded    QualificationStatus = "UPLOADED"
	QualificationApproved    QualificationStatus = "APPROVED"
	QualificationRejected    QualificationStatus = "REJECTED"
)
