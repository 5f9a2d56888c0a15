package onboardingapimodels

import (
	"fmt"
	"hr-onboarding-backend/lib/utils/validators"
	"hr-onboarding-backend/models"
)

// Form - document payload which can be normalized and checked before it is sent
type Form[T any] interface {
	Normalize() T
	Validate() error
}

type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	SSN         string `json:"ssn"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

func (p PersonalInfo) Normalize() PersonalInfo {
	return p
}

func (p PersonalInfo) Validate() error {
	errs := fieldErrors{}
	errs.required("firstName", p.FirstName)
	errs.required("lastName", p.LastName)
	if errs.required("dateOfBirth", p.DateOfBirth) {
		errs.check("dateOfBirth", validators.IsDate(p.DateOfBirth), "must be a date in YYYY-MM-DD format")
	}
	if errs.required("ssn", p.SSN) {
		errs.check("ssn", validators.IsSSN(p.SSN), "must contain 9 digits")
	}
	errs.required("address", p.Address)
	errs.required("city", p.City)
	if errs.required("state", p.State) {
		errs.check("state", validators.IsState(p.State), "must be a 2 letter state code")
	}
	if errs.required("zip", p.Zip) {
		errs.check("zip", validators.IsZip(p.Zip), "must be 5 or 9 digits")
	}
	if errs.required("phone", p.Phone) {
		errs.check("phone", validators.IsPhone(p.Phone), "must contain 10 digits")
	}
	if errs.required("email", p.Email) {
		errs.check("email", validators.IsEmail(p.Email), "has an invalid format")
	}
	return errs.err()
}

const maxEmergencyContacts = 3

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type EmergencyContacts struct {
	Contacts []EmergencyContact `json:"contacts"`
}

func (p EmergencyContacts) Normalize() EmergencyContacts {
	return p
}

func (p EmergencyContacts) Validate() error {
	errs := fieldErrors{}
	if len(p.Contacts) == 0 {
		errs.add("contacts", "at least one emergency contact is required")
	}
	if len(p.Contacts) > maxEmergencyContacts {
		errs.add("contacts", fmt.Sprintf("no more than %d emergency contacts are allowed", maxEmergencyContacts))
	}
	for i, c := range p.Contacts {
		prefix := fmt.Sprintf("contacts[%d].", i)
		errs.required(prefix+"name", c.Name)
		errs.required(prefix+"relationship", c.Relationship)
		if errs.required(prefix+"phone", c.Phone) {
			errs.check(prefix+"phone", validators.IsPhone(c.Phone), "must contain 10 digits")
		}
	}
	return errs.err()
}

type AccountType string

const (
	AccountChecking AccountType = "CHECKING"
	AccountSavings  AccountType = "SAVINGS"
)

type DirectDeposit struct {
	BankName      string      `json:"bankName"`
	AccountType   AccountType `json:"accountType"`
	RoutingNumber string      `json:"routingNumber"`
	AccountNumber string      `json:"accountNumber"`
	AmountPercent int         `json:"amountPercent,omitempty"` // 0 - whole paycheck
}

func (p DirectDeposit) Normalize() DirectDeposit {
	return p
}

func (p DirectDeposit) Validate() error {
	errs := fieldErrors{}
	errs.required("bankName", p.BankName)
	if errs.required("accountType", string(p.AccountType)) {
		errs.check("accountType", p.AccountType == AccountChecking || p.AccountType == AccountSavings,
			"must be CHECKING or SAVINGS")
	}
	if errs.required("routingNumber", p.RoutingNumber) {
		errs.check("routingNumber", validators.IsRoutingNumber(p.RoutingNumber), "must contain 9 digits")
	}
	if errs.required("accountNumber", p.AccountNumber) {
		errs.check("accountNumber", validators.IsAccountNumber(p.AccountNumber), "must contain 4 to 17 digits")
	}
	errs.check("amountPercent", p.AmountPercent >= 0 && p.AmountPercent <= 100, "must be between 1 and 100")
	return errs.err()
}

type Reference struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

type Employer struct {
	Name      string `json:"name"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"` // empty - current employer
}

type ReferencesEmployment struct {
	References []Reference `json:"references"`
	Employers  []Employer  `json:"employers"`
}

func (p ReferencesEmployment) Normalize() ReferencesEmployment {
	return p
}

func (p ReferencesEmployment) Validate() error {
	errs := fieldErrors{}
	if len(p.References) == 0 {
		errs.add("references", "at least one reference is required")
	}
	for i, r := range p.References {
		prefix := fmt.Sprintf("references[%d].", i)
		errs.required(prefix+"name", r.Name)
		if errs.required(prefix+"phone", r.Phone) {
			errs.check(prefix+"phone", validators.IsPhone(r.Phone), "must contain 10 digits")
		}
		if r.Email != "" {
			errs.check(prefix+"email", validators.IsEmail(r.Email), "has an invalid format")
		}
	}
	for i, e := range p.Employers {
		prefix := fmt.Sprintf("employers[%d].", i)
		errs.required(prefix+"name", e.Name)
		if e.Phone != "" {
			errs.check(prefix+"phone", validators.IsPhone(e.Phone), "must contain 10 digits")
		}
		if e.StartDate != "" {
			errs.check(prefix+"startDate", validators.IsDate(e.StartDate), "must be a date in YYYY-MM-DD format")
		}
		if e.EndDate != "" {
			errs.check(prefix+"endDate", validators.IsDate(e.EndDate), "must be a date in YYYY-MM-DD format")
		}
	}
	return errs.err()
}

type FilingStatus string

const (
	FilingSingle          FilingStatus = "SINGLE"
	FilingMarriedJointly  FilingStatus = "MARRIED_JOINTLY"
	FilingHeadOfHousehold FilingStatus = "HEAD_OF_HOUSEHOLD"
)

type TaxWithholding struct {
	FilingStatus     FilingStatus `json:"filingStatus"`
	MultipleJobs     bool         `json:"multipleJobs"`
	DependentsAmount float64      `json:"dependentsAmount"`
	OtherIncome      float64      `json:"otherIncome"`
	Deductions       float64      `json:"deductions"`
	ExtraWithholding float64      `json:"extraWithholding"`
}

func (p TaxWithholding) Normalize() TaxWithholding {
	return p
}

func (p TaxWithholding) Validate() error {
	errs := fieldErrors{}
	switch p.FilingStatus {
	case FilingSingle, FilingMarriedJointly, FilingHeadOfHousehold:
	case "":
		errs.add("filingStatus", "is required")
	default:
		errs.add("filingStatus", "must be SINGLE, MARRIED_JOINTLY or HEAD_OF_HOUSEHOLD")
	}
	errs.check("dependentsAmount", p.DependentsAmount >= 0, "must not be negative")
	errs.check("otherIncome", p.OtherIncome >= 0, "must not be negative")
	errs.check("deductions", p.Deductions >= 0, "must not be negative")
	errs.check("extraWithholding", p.ExtraWithholding >= 0, "must not be negative")
	return errs.err()
}

type Certification struct {
	Name       string `json:"name"`
	FileID     string `json:"fileId"`
	ExpiryDate string `json:"expiryDate"`
}

type TestsCertifications struct {
	Certifications []Certification `json:"certifications"`
}

func (p TestsCertifications) Normalize() TestsCertifications {
	return p
}

func (p TestsCertifications) Validate() error {
	errs := fieldErrors{}
	if len(p.Certifications) == 0 {
		errs.add("certifications", "at least one certification is required")
	}
	for i, c := range p.Certifications {
		prefix := fmt.Sprintf("certifications[%d].", i)
		errs.required(prefix+"name", c.Name)
		errs.required(prefix+"fileId", c.FileID)
		if c.ExpiryDate != "" {
			errs.check(prefix+"expiryDate", validators.IsDate(c.ExpiryDate), "must be a date in YYYY-MM-DD format")
		}
	}
	return errs.err()
}

// Acknowledgement - payload of signature-only compliance documents
type Acknowledgement struct{}

func (p Acknowledgement) Normalize() Acknowledgement {
	return p
}

func (p Acknowledgement) Validate() error {
	return nil
}

// TBMedicalQuestionnaire - the seven dependent answers only matter when EverHadTbSkin is YES
type TBMedicalQuestionnaire struct {
	EverHadTbSkin    models.YesNo `json:"everHadTbSkin"`
	SkinTestDate     string       `json:"skinTestDate"`
	SkinTestResult   string       `json:"skinTestResult"`
	ChestXrayDone    models.YesNo `json:"chestXrayDone"`
	ChestXrayDate    string       `json:"chestXrayDate"`
	TreatedForTb     models.YesNo `json:"treatedForTb"`
	TreatmentDetails string       `json:"treatmentDetails"`
	TbSymptoms       models.YesNo `json:"tbSymptoms"`
}

func (q TBMedicalQuestionnaire) Normalize() TBMedicalQuestionnaire {
	if q.EverHadTbSkin != models.No {
		return q
	}
	q.SkinTestDate = ""
	q.SkinTestResult = ""
	q.ChestXrayDone = models.No
	q.ChestXrayDate = ""
	q.TreatedForTb = models.No
	q.TreatmentDetails = ""
	q.TbSymptoms = models.No
	return q
}

func (q TBMedicalQuestionnaire) Validate() error {
	errs := fieldErrors{}
	if errs.required("everHadTbSkin", string(q.EverHadTbSkin)) {
		errs.check("everHadTbSkin", q.EverHadTbSkin.IsValid(), "must be YES or NO")
	}
	if q.EverHadTbSkin != models.Yes {
		return errs.err()
	}
	if errs.required("skinTestDate", q.SkinTestDate) {
		errs.check("skinTestDate", validators.IsDate(q.SkinTestDate), "must be a date in YYYY-MM-DD format")
	}
	errs.required("skinTestResult", q.SkinTestResult)
	if errs.required("chestXrayDone", string(q.ChestXrayDone)) {
		errs.check("chestXrayDone", q.ChestXrayDone.IsValid(), "must be YES or NO")
	}
	if errs.required("chestXrayDate", q.ChestXrayDate) {
		errs.check("chestXrayDate", validators.IsDate(q.ChestXrayDate), "must be a date in YYYY-MM-DD format")
	}
	if errs.required("treatedForTb", string(q.TreatedForTb)) {
		errs.check("treatedForTb", q.TreatedForTb.IsValid(), "must be YES or NO")
	}
	errs.required("treatmentDetails", q.TreatmentDetails)
	if errs.required("tbSymptoms", string(q.TbSymptoms)) {
		errs.check("tbSymptoms", q.TbSymptoms.IsValid(), "must be YES or NO")
	}
	return errs.err()
}
