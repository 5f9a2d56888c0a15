package dbmodels

import filesapimodels "hr-onboarding-backend/models/api/files"

type FileStorage struct {
	BaseSpaceModel
	Name        string
	ObjectName  string   `gorm:"type:varchar(255)"`
	ApplicantID string   `gorm:"type:varchar(36);index"`
	Type        FileType `gorm:"type:varchar(50)"`
	ContentType string
	Size        int64
}

func (f FileStorage) ToModel(publicUrl string) filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		ApplicantID: f.ApplicantID,
		ContentType: f.ContentType,
		Url:         filesapimodels.DownloadUrl(publicUrl, f.ID),
	}
}

type FileType string

const (
	FileTypeSignature          FileType = "signature"
	FileTypeOnboardingDocument FileType = "onboarding_document"
	FileTypeQualificationDoc   FileType = "qualification_doc"
	FileTypeCertification      FileType = "certification"
)

type UploadFileInfo struct {
	SpaceID     string
	ApplicantID string
	FileName    string
	FileType    FileType
	ContentType string
}
