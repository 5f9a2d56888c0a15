package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		PublicUrl  string `default:"http://localhost:8080" env:"APP_PUBLIC_URL"`
		BodyLimit  int    `default:"52428800" env:"APP_BODY_LIMIT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-onboarding" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string  `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec        int     `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int     `default:"604800" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
		LoginRatePerSec       float64 `default:"1" env:"LOGIN_RATE_PER_SEC"`
		LoginRateBurst        int     `default:"5" env:"LOGIN_RATE_BURST"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"hr-onboarding" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"no-reply@localhost" env:"SMTP_EMAIL_FROM"`
	}
	Onboarding struct {
		PortalUrl              string `default:"http://localhost:3000/onboarding" env:"ONBOARDING_PORTAL_URL"`
		ReminderIntervalMin    int    `default:"60" env:"ONBOARDING_REMINDER_INTERVAL_MIN"`
		ReminderPeriodDays     int    `default:"3" env:"ONBOARDING_REMINDER_PERIOD_DAYS"`
		ReminderWorkerDisabled bool   `default:"false" env:"ONBOARDING_REMINDER_DISABLED"`
	}
	Notify struct {
		ErrorWebhook string `default:"" env:"NOTIFY_ERROR_WEBHOOK"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
