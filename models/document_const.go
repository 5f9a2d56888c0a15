package models

import "github.com/pkg/errors"

type DocumentStatus string

const (
	DocumentNotStarted DocumentStatus = "NOT_STARTED"
	DocumentOnTrack    DocumentStatus = "ON_TRACK"
	DocumentCompleted  DocumentStatus = "COMPLETED"
)

type DocumentType string

const (
	DocPersonalInfo           DocumentType = "PERSONAL_INFO"
	DocEmergencyContacts      DocumentType = "EMERGENCY_CONTACTS"
	DocDirectDeposit          DocumentType = "DIRECT_DEPOSIT"
	DocReferencesEmployment   DocumentType = "REFERENCES_EMPLOYMENT"
	DocTBMedicalQuestionnaire DocumentType = "TB_MEDICAL_QUESTIONNAIRE"
	DocTestsCertifications    DocumentType = "TESTS_CERTIFICATIONS"
	DocTaxWithholding         DocumentType = "TAX_WITHHOLDING"

	// signature-only compliance documents
	DocConfidentialityAgreement DocumentType = "CONFIDENTIALITY_AGREEMENT"
	DocCodeOfConduct            DocumentType = "CODE_OF_CONDUCT"
	DocHipaaAcknowledgement     DocumentType = "HIPAA_ACKNOWLEDGEMENT"
	DocDrugFreeWorkplace        DocumentType = "DRUG_FREE_WORKPLACE"
	DocAntiHarassmentPolicy     DocumentType = "ANTI_HARASSMENT_POLICY"
	DocEqualOpportunityPolicy   DocumentType = "EQUAL_OPPORTUNITY_POLICY"
	DocAtWillEmployment         DocumentType = "AT_WILL_EMPLOYMENT"
	DocBackgroundCheckConsent   DocumentType = "BACKGROUND_CHECK_CONSENT"
	DocEmployeeHandbookAck      DocumentType = "EMPLOYEE_HANDBOOK_ACK"
	DocSafetyTrainingAck        DocumentType = "SAFETY_TRAINING_ACK"
	DocInfectionControlPolicy   DocumentType = "INFECTION_CONTROL_POLICY"
	DocAbuseNeglectReporting    DocumentType = "ABUSE_NEGLECT_REPORTING"
	DocJobDescriptionAck        DocumentType = "JOB_DESCRIPTION_ACK"
	DocEmergencyPreparedness    DocumentType = "EMERGENCY_PREPAREDNESS"
	DocPhotoReleaseConsent      DocumentType = "PHOTO_RELEASE_CONSENT"
)

type Agreement string

const (
	AgreementUnset    Agreement = ""
	AgreementAgree    Agreement = "AGREE"
	AgreementDisagree Agreement = "DISAGREE"
)

func (a Agreement) Validate() error {
	switch a {
	case AgreementUnset, AgreementAgree, AgreementDisagree:
		return nil
	}
	return errors.Errorf("unknown agreement value: %v", a)
}

type YesNo string

const (
	Yes YesNo = "YES"
	No  YesNo = "NO"
)

func (y YesNo) IsValid() bool {
	return y == Yes || y == No
}
