package applicantapimodels

import (
	"hr-onboarding-backend/models"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicantFilterGetPeriod(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	t.Run("no period", func(t *testing.T) {
		from, to := ApplicantFilter{}.GetPeriod(now)
		require.Nil(t, from)
		require.Nil(t, to)
	})
	t.Run("time frame presets", func(t *testing.T) {
		from, to := ApplicantFilter{TimeFrame: models.TimeFrameToday}.GetPeriod(now)
		require.Nil(t, to)
		require.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *from)

		from, _ = ApplicantFilter{TimeFrame: models.TimeFrameLast7Days}.GetPeriod(now)
		require.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), *from)

		from, _ = ApplicantFilter{TimeFrame: models.TimeFrameLast30Days}.GetPeriod(now)
		require.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC), *from)
	})
	t.Run("explicit range wins", func(t *testing.T) {
		filter := ApplicantFilter{
			TimeFrame: models.TimeFrameToday,
			DateFrom:  "2024-01-01",
			DateTo:    "2024-01-31",
		}
		from, to := filter.GetPeriod(now)
		require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *from)
		require.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *to)
	})
}

func TestApplicantFilterValidate(t *testing.T) {
	require.NoError(t, ApplicantFilter{}.Validate())
	require.Error(t, ApplicantFilter{TimeFrame: "LAST_YEAR"}.Validate())
	require.Error(t, ApplicantFilter{DateFrom: "01.01.2024"}.Validate())
	require.Error(t, ApplicantFilter{Sort: ApplicantSort{Field: "salary"}}.Validate())
	bad := models.ApplicantStatus("NEW")
	require.Error(t, ApplicantFilter{Status: &bad}.Validate())
}

func TestRequestsValidate(t *testing.T) {
	require.Error(t, DeclineRequest{Reason: "  "}.Validate())
	require.NoError(t, DeclineRequest{Reason: "no license"}.Validate())
	require.Error(t, CommentRequest{Text: "ok", Rating: 6}.Validate())
	require.Error(t, CommentRequest{Rating: 3}.Validate())
	require.NoError(t, CommentRequest{Text: "strong", Rating: 5}.Validate())
	require.Error(t, MultiCategoryRequest{Category: models.CategoryMaybe}.Validate())
	require.Error(t, QualificationStatusRequest{Status: models.QualificationUploaded}.Validate())
}
