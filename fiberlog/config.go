package fiberlog

import "github.com/sirupsen/logrus"

type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths - exact request paths that are never logged (health checks, metrics scraping)
	SkipPaths []string
	// RedactKeys - json keys masked in logged request and response bodies, case insensitive
	RedactKeys []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}

// DefaultRedactKeys - personal and banking fields of onboarding documents and credentials
var DefaultRedactKeys = []string{
	"password",
	"access_token",
	"refresh_token",
	"ssn",
	"routingNumber",
	"accountNumber",
	"dateOfBirth",
}
