package reminderworker

import (
	"context"
	"fmt"
	"hr-onboarding-backend/config"
	"hr-onboarding-backend/db"
	applicantstore "hr-onboarding-backend/lib/applicant/store"
	"hr-onboarding-backend/lib/metrics"
	documenthandler "hr-onboarding-backend/lib/onboarding/document"
	"hr-onboarding-backend/lib/smtp"
	baseworker "hr-onboarding-backend/lib/utils/base-worker"
	"hr-onboarding-backend/lib/utils/helpers"
	dbmodels "hr-onboarding-backend/models/db"
	"time"
)

const batchSize = 100

// StartWorker - reminds hired candidates about unfinished onboarding documents
func StartWorker(ctx context.Context) {
	conf := config.Conf.Onboarding
	if conf.ReminderWorkerDisabled {
		return
	}
	i := &impl{
		BaseImpl:       *baseworker.NewInstance("OnboardingReminderWorker", 30*time.Second, time.Duration(conf.ReminderIntervalMin)*time.Minute),
		applicantStore: applicantstore.NewInstance(db.DB),
		documents:      documenthandler.Instance,
		mail:           smtp.Instance,
		metrics:        metrics.Instance,
		period:         time.Duration(conf.ReminderPeriodDays) * 24 * time.Hour,
		portalUrl:      conf.PortalUrl,
		now:            time.Now,
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	applicantStore applicantstore.Provider
	documents      documenthandler.Provider
	mail           smtp.Provider
	metrics        *metrics.ServerMetrics
	period         time.Duration
	portalUrl      string
	now            func() time.Time
}

func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	if !i.mail.IsConfigured() {
		logger.Debug("smtp is not configured, reminders skipped")
		return
	}
	list, err := i.applicantStore.ListForReminder(i.now().Add(-i.period), batchSize)
	if err != nil {
		logger.WithError(err).Error("failed to get applicants for onboarding reminder")
		return
	}
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		i.remind(rec)
	}
}

func (i impl) remind(rec dbmodels.Applicant) {
	logger := i.GetLogger().
		WithField("space_id", rec.SpaceID).
		WithField("applicant_id", rec.ID)
	progress, err := i.documents.Progress(documenthandler.Owner{SpaceID: rec.SpaceID, ApplicantID: rec.ID})
	if err != nil {
		logger.WithError(err).Error("failed to get onboarding progress")
		return
	}
	if progress.Completed {
		return
	}
	step := progress.Steps[progress.CurrentStep-1]
	message := fmt.Sprintf("Hello %s,\r\n\r\n"+
		"your onboarding is not finished yet. Next step: %s (%d of %d).\r\n"+
		"Continue here: %s\r\n",
		rec.FirstName, step.Title, step.Number, len(progress.Steps), i.portalUrl)
	if err = i.mail.SendEMail(rec.Email, "Onboarding reminder", message); err != nil {
		logger.WithError(err).Error("failed to send onboarding reminder")
		return
	}
	err = i.applicantStore.Update(rec.SpaceID, rec.ID, map[string]interface{}{"last_reminder_at": i.now()})
	if err != nil {
		logger.WithError(err).Error("failed to save reminder time")
	}
	i.metrics.RecordReminder()
}
