package sequence

import "hr-onboarding-backend/models"

type complianceDoc struct {
	title string
	body  string
}

var complianceDocs = map[models.DocumentType]complianceDoc{
	models.DocConfidentialityAgreement: {
		title: "Confidentiality Agreement",
		body: "I understand that during my employment I will have access to confidential information about clients, " +
			"employees and business operations.\n" +
			"I agree not to disclose such information to any person outside the company, during or after my employment, " +
			"except as required to perform my duties or by law.",
	},
	models.DocCodeOfConduct: {
		title: "Code of Conduct",
		body: "I have read the Code of Conduct and agree to act honestly, treat clients and coworkers with respect " +
			"and follow company policies and applicable laws.\n" +
			"I understand that violations may result in disciplinary action up to and including termination.",
	},
	models.DocHipaaAcknowledgement: {
		title: "HIPAA Acknowledgement",
		body: "I acknowledge that protected health information must be used and disclosed only as permitted by HIPAA " +
			"and company privacy procedures.\n" +
			"I will report any suspected privacy or security incident to my supervisor immediately.",
	},
	models.DocDrugFreeWorkplace: {
		title: "Drug-Free Workplace Policy",
		body: "I agree not to possess, use or be under the influence of illegal drugs or alcohol while on duty.\n" +
			"I consent to drug and alcohol testing as described in the policy.",
	},
	models.DocAntiHarassmentPolicy: {
		title: "Anti-Harassment Policy",
		body: "The company prohibits harassment of any kind. I agree to follow the policy and report harassment " +
			"I experience or witness using the complaint procedure.",
	},
	models.DocEqualOpportunityPolicy: {
		title: "Equal Employment Opportunity Policy",
		body: "Employment decisions are made without regard to race, color, religion, sex, national origin, age, " +
			"disability, genetic information or any other protected status.",
	},
	models.DocAtWillEmployment: {
		title: "At-Will Employment Acknowledgement",
		body: "I understand that my employment is at will and may be terminated by me or the company at any time, " +
			"with or without cause or notice.",
	},
	models.DocBackgroundCheckConsent: {
		title: "Background Check Consent",
		body: "I authorize the company to obtain a consumer report and criminal background check for employment purposes.\n" +
			"This authorization remains valid for the duration of my employment.",
	},
	models.DocEmployeeHandbookAck: {
		title: "Employee Handbook Acknowledgement",
		body: "I have received the Employee Handbook and understand that it is my responsibility to read and follow it.",
	},
	models.DocSafetyTrainingAck: {
		title: "Safety Training Acknowledgement",
		body: "I have completed workplace safety training, including body mechanics, fall prevention and incident reporting.",
	},
	models.DocInfectionControlPolicy: {
		title: "Infection Control Policy",
		body: "I agree to follow infection control procedures, including hand hygiene, use of personal protective " +
			"equipment and reporting of communicable illness.",
	},
	models.DocAbuseNeglectReporting: {
		title: "Abuse and Neglect Reporting",
		body: "I understand my duty to report any suspected abuse, neglect or exploitation of a client to my supervisor " +
			"and to the appropriate state agency.",
	},
	models.DocJobDescriptionAck: {
		title: "Job Description Acknowledgement",
		body: "I have reviewed the job description for my position and I am able to perform its essential functions " +
			"with or without reasonable accommodation.",
	},
	models.DocEmergencyPreparedness: {
		title: "Emergency Preparedness",
		body: "I have reviewed the emergency preparedness plan and understand my responsibilities during a disaster " +
			"or emergency affecting clients.",
	},
	models.DocPhotoReleaseConsent: {
		title: "Photo Release Consent",
		body: "I consent to the use of photographs or video taken of me during work activities for identification " +
			"and company communications.",
	},
}
