package smtp

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	log "github.com/sirupsen/logrus"
)

const subjectPrefix = "HR Onboarding"

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
	IsConfigured() bool
}

func Connect(user, password, host, port string, tlsEnabled bool, emailFrom string) error {
	Instance = NewInstance(user, password, host, port, tlsEnabled, emailFrom)
	return nil
}

func NewInstance(user, password, host, port string, tlsEnabled bool, emailFrom string) Provider {
	return &impl{
		user:       user,
		password:   password,
		host:       host,
		port:       port,
		tlsEnabled: tlsEnabled,
		emailFrom:  emailFrom,
	}
}

type impl struct {
	user       string
	password   string
	host       string
	port       string
	tlsEnabled bool
	emailFrom  string
}

func (i impl) IsConfigured() bool {
	return i.user != "" && i.host != "" && i.port != ""
}

func (i impl) SendEMail(to, subject, message string) (err error) {
	logger := log.WithField("recipient", to).WithField("subject", subject)
	if !i.IsConfigured() {
		logger.Warn("email was not sent, smtp client is not configured")
		return nil
	}
	sendTo := []string{
		to,
	}
	auth := sasl.NewPlainClient("", i.user, i.password)
	body := strings.NewReader(buildMessage(i.emailFrom, to, subject, message))

	if i.tlsEnabled {
		err = smtp.SendMailTLS(i.host+":"+i.port, auth, i.user, sendTo, body)
	} else {
		err = smtp.SendMail(i.host+":"+i.port, auth, i.user, sendTo, body)
	}
	if err != nil {
		logger.WithError(err).Error("failed to send email")
		return err
	}
	logger.Info("email sent")
	return nil
}

func buildMessage(from, to, subject, message string) string {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s - %s", subjectPrefix, subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	}
	// message lines must end with CRLF
	body := strings.ReplaceAll(strings.ReplaceAll(message, "\r\n", "\n"), "\n", "\r\n")
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body + "\r\n"
}
