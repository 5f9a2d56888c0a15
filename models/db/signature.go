package dbmodels

type Signature struct {
	BaseSpaceModel
	ApplicantID string `gorm:"type:varchar(36);uniqueIndex"`
	FileID      string `gorm:"type:varchar(36)"`
	TypedName   string `gorm:"type:varchar(255)"`
}
