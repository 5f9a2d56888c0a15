package onboardingapimodels

import (
	"encoding/json"
	"hr-onboarding-backend/models"
	"strings"

	"github.com/pkg/errors"
)

type DocumentKind string

const (
	KindForm          DocumentKind = "FORM"
	KindSignatureOnly DocumentKind = "SIGNATURE_ONLY"
)

// form documents use their own route slugs, compliance documents derive it from the type
var formSlugs = map[models.DocumentType]string{
	models.DocPersonalInfo:           "personal-info",
	models.DocEmergencyContacts:      "emergency-contacts",
	models.DocDirectDeposit:          "direct-deposits",
	models.DocReferencesEmployment:   "references-employment",
	models.DocTBMedicalQuestionnaire: "tb-medical-questionnaires",
	models.DocTestsCertifications:    "tests-certifications",
	models.DocTaxWithholding:         "tax-withholdings",
}

var complianceTypes = []models.DocumentType{
	models.DocConfidentialityAgreement,
	models.DocCodeOfConduct,
	models.DocHipaaAcknowledgement,
	models.DocDrugFreeWorkplace,
	models.DocAntiHarassmentPolicy,
	models.DocEqualOpportunityPolicy,
	models.DocAtWillEmployment,
	models.DocBackgroundCheckConsent,
	models.DocEmployeeHandbookAck,
	models.DocSafetyTrainingAck,
	models.DocInfectionControlPolicy,
	models.DocAbuseNeglectReporting,
	models.DocJobDescriptionAck,
	models.DocEmergencyPreparedness,
	models.DocPhotoReleaseConsent,
}

// ComplianceTypes - signature-only documents in sequence order
func ComplianceTypes() []models.DocumentType {
	return append([]models.DocumentType(nil), complianceTypes...)
}

func KindOf(docType models.DocumentType) DocumentKind {
	if _, ok := formSlugs[docType]; ok {
		return KindForm
	}
	return KindSignatureOnly
}

func IsKnownType(docType models.DocumentType) bool {
	if _, ok := formSlugs[docType]; ok {
		return true
	}
	for _, t := range complianceTypes {
		if t == docType {
			return true
		}
	}
	return false
}

func Slug(docType models.DocumentType) string {
	if slug, ok := formSlugs[docType]; ok {
		return slug
	}
	return strings.ReplaceAll(strings.ToLower(string(docType)), "_", "-")
}

func TypeBySlug(slug string) (models.DocumentType, bool) {
	for docType, s := range formSlugs {
		if s == slug {
			return docType, true
		}
	}
	for _, docType := range complianceTypes {
		if Slug(docType) == slug {
			return docType, true
		}
	}
	return "", false
}

type payloadDecoder func(raw []byte) ([]byte, error)

var decoders = map[models.DocumentType]payloadDecoder{
	models.DocPersonalInfo:           decode[PersonalInfo],
	models.DocEmergencyContacts:      decode[EmergencyContacts],
	models.DocDirectDeposit:          decode[DirectDeposit],
	models.DocReferencesEmployment:   decode[ReferencesEmployment],
	models.DocTBMedicalQuestionnaire: decode[TBMedicalQuestionnaire],
	models.DocTestsCertifications:    decode[TestsCertifications],
	models.DocTaxWithholding:         decode[TaxWithholding],
}

// NormalizePayload - decodes a raw payload of the document type, normalizes and validates it
// and returns the canonical json to be stored
func NormalizePayload(docType models.DocumentType, raw []byte) ([]byte, error) {
	if KindOf(docType) == KindSignatureOnly {
		return decode[Acknowledgement](raw)
	}
	return decoders[docType](raw)
}

func decode[T Form[T]](raw []byte) ([]byte, error) {
	var form T
	if len(raw) != 0 {
		if err := json.Unmarshal(raw, &form); err != nil {
			return nil, errors.Wrap(err, "invalid document payload")
		}
	}
	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(form)
}
