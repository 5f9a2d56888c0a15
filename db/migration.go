package db

import (
	dbmodels "hr-onboarding-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	tables := []struct {
		name  string
		model interface{}
	}{
		{"Space", &dbmodels.Space{}},
		{"SpaceUser", &dbmodels.SpaceUser{}},
		{"Vacancy", &dbmodels.Vacancy{}},
		{"Applicant", &dbmodels.Applicant{}},
		{"ApplicantHistory", &dbmodels.ApplicantHistory{}},
		{"FileStorage", &dbmodels.FileStorage{}},
		{"QualificationDocument", &dbmodels.QualificationDocument{}},
		{"Signature", &dbmodels.Signature{}},
		{"OnboardingDocument", &dbmodels.OnboardingDocument{}},
	}
	for _, table := range tables {
		if err := DB.AutoMigrate(table.model); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", table.name)
		}
	}
	log.Info("migrations completed")
	return nil
}
