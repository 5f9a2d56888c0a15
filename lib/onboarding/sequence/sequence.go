package sequence

import (
	"hr-onboarding-backend/models"
	onboardingapimodels "hr-onboarding-backend/models/api/onboarding"
)

type Step struct {
	Number int // 1-based
	Type   models.DocumentType
	Title  string
	Kind   onboardingapimodels.DocumentKind
}

var formTitles = map[models.DocumentType]string{
	models.DocPersonalInfo:           "Personal Information",
	models.DocEmergencyContacts:      "Emergency Contacts",
	models.DocDirectDeposit:          "Direct Deposit",
	models.DocReferencesEmployment:   "References and Employment History",
	models.DocTBMedicalQuestionnaire: "TB Medical Questionnaire",
	models.DocTestsCertifications:    "Tests and Certifications",
	models.DocTaxWithholding:         "Tax Withholding",
}

var steps = build()

func build() []Step {
	order := []models.DocumentType{
		models.DocPersonalInfo,
		models.DocEmergencyContacts,
		models.DocDirectDeposit,
		models.DocReferencesEmployment,
	}
	order = append(order, onboardingapimodels.ComplianceTypes()...)
	order = append(order,
		models.DocTBMedicalQuestionnaire,
		models.DocTestsCertifications,
		models.DocTaxWithholding,
	)
	result := make([]Step, 0, len(order))
	for idx, docType := range order {
		result = append(result, Step{
			Number: idx + 1,
			Type:   docType,
			Title:  Title(docType),
			Kind:   onboardingapimodels.KindOf(docType),
		})
	}
	return result
}

// Steps - the onboarding sequence in order
func Steps() []Step {
	return append([]Step(nil), steps...)
}

func Count() int {
	return len(steps)
}

// ByNumber - ok is false outside 1..Count()
func ByNumber(number int) (Step, bool) {
	if number < 1 || number > len(steps) {
		return Step{}, false
	}
	return steps[number-1], true
}

func ByType(docType models.DocumentType) (Step, bool) {
	for _, step := range steps {
		if step.Type == docType {
			return step, true
		}
	}
	return Step{}, false
}

// ResumeIndex - 0-based index of the first step that is not COMPLETED, len(statuses) when all are
func ResumeIndex(statuses []models.DocumentStatus) int {
	for idx, status := range statuses {
		if status != models.DocumentCompleted {
			return idx
		}
	}
	return len(statuses)
}

func Title(docType models.DocumentType) string {
	if title, ok := formTitles[docType]; ok {
		return title
	}
	if doc, ok := complianceDocs[docType]; ok {
		return doc.title
	}
	return string(docType)
}

// Body - policy text of a signature-only document, empty for forms
func Body(docType models.DocumentType) string {
	return complianceDocs[docType].body
}
