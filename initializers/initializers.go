package initializers

import (
	"context"
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/fiberlog"
	"hr-onboarding-backend/lib/applicant"
	applicanthistoryhandler "hr-onboarding-backend/lib/applicant-history"
	xlsexport "hr-onboarding-backend/lib/export/xls"
	filestorage "hr-onboarding-backend/lib/file-storage"
	"hr-onboarding-backend/lib/metrics"
	documenthandler "hr-onboarding-backend/lib/onboarding/document"
	reminderworker "hr-onboarding-backend/lib/onboarding/reminder-worker"
	signaturehandler "hr-onboarding-backend/lib/onboarding/signature"
	"hr-onboarding-backend/lib/qualification"
	"hr-onboarding-backend/lib/screening"
	spaceauthhandler "hr-onboarding-backend/lib/space/auth"
	spacehandler "hr-onboarding-backend/lib/space/handler"
	spaceusershandler "hr-onboarding-backend/lib/space/users/handler"
	vacancyhandler "hr-onboarding-backend/lib/vacancy"
	connectionhub "hr-onboarding-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	metrics.NewHandler()
	connectionhub.Init()
	filestorage.NewHandler()
	spaceusershandler.NewHandler()
	spacehandler.NewHandler()
	spaceauthhandler.NewHandler()
	applicanthistoryhandler.NewHandler()
	xlsexport.NewHandler()
	vacancyhandler.NewHandler()
	applicant.NewHandler()
	screening.NewHandler()
	qualification.NewHandler()
	signaturehandler.NewHandler()
	documenthandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// reminder emails for hires with unfinished onboarding
	reminderworker.StartWorker(ctx)
}
