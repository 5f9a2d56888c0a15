package validators

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	zipRe     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	ssnRe     = regexp.MustCompile(`^\d{9}$`)
	routingRe = regexp.MustCompile(`^\d{9}$`)
	accountRe = regexp.MustCompile(`^\d{4,17}$`)
	einRe     = regexp.MustCompile(`^\d{2}-?\d{7}$`)
	stateRe   = regexp.MustCompile(`^[A-Z]{2}$`)
)

// IsPhone - ten digits, no formatting characters
func IsPhone(value string) bool {
	return phoneRe.MatchString(value)
}

func IsEmail(value string) bool {
	if value == "" || strings.ContainsAny(value, " \t\r\n") {
		return false
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return false
	}
	at := strings.LastIndex(value, "@")
	return at > 0 && at < len(value)-1
}

// IsZip - 5 digit or ZIP+4 (12345-6789) code
func IsZip(value string) bool {
	return zipRe.MatchString(value)
}

func IsSSN(value string) bool {
	return ssnRe.MatchString(strings.ReplaceAll(value, "-", ""))
}

func IsRoutingNumber(value string) bool {
	return routingRe.MatchString(value)
}

func IsAccountNumber(value string) bool {
	return accountRe.MatchString(value)
}

func IsEIN(value string) bool {
	return einRe.MatchString(value)
}

func IsState(value string) bool {
	return stateRe.MatchString(value)
}

func IsDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
