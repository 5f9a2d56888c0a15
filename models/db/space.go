package dbmodels

type Space struct {
	BaseModel
	Name      string `gorm:"type:varchar(255)"` // display name of the company
	LegalName string `gorm:"type:varchar(255)"`
	EIN       string `gorm:"type:varchar(10)"`
	Address   string `gorm:"type:varchar(255)"`
	City      string `gorm:"type:varchar(100)"`
	State     string `gorm:"type:varchar(2)"`
	Zip       string `gorm:"type:varchar(10)"`
	Phone     string `gorm:"type:varchar(15)"`
	Email     string `gorm:"type:varchar(255)"`
	IsActive  bool
}
