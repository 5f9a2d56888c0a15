package applicantstore

import (
	"hr-onboarding-backend/models"
	applicantapimodels "hr-onboarding-backend/models/api/applicant"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockStore(t *testing.T) (Provider, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return NewInstance(gormDB), mock
}

func TestGetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "applicants" WHERE id = \$1 AND space_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rec, err := store.GetByID("s1", "a1")
		require.NoError(t, err)
		require.Nil(t, rec)
		require.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("found", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "applicants" WHERE id = \$1 AND space_id = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "space_id", "first_name", "last_name", "status"}).
				AddRow("a1", "s1", "Jane", "Doe", "CANDIDATE"))

		rec, err := store.GetByID("s1", "a1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, "Jane Doe", rec.GetFullName())
		require.Equal(t, models.ApplicantStatusCandidate, rec.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddRating(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(`UPDATE "applicants" SET "rating_count"=rating_count \+ 1,"rating_sum"=rating_sum \+ \$1`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.AddRating("s1", "a1", 4))
		require.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("missing applicant", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(`UPDATE "applicants"`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		require.Error(t, store.AddRating("s1", "a1", 4))
	})
}

func TestUpdateCategory(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`UPDATE "applicants" SET "category"=\$1,"updated_at"=\$2 WHERE space_id = \$3 AND id in \(\$4,\$5\)`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	affected, err := store.UpdateCategory("s1", []string{"a1", "a2"}, models.CategoryQualified)
	require.NoError(t, err)
	require.EqualValues(t, 2, affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCountsBeforeSelect(t *testing.T) {
	store, mock := newMockStore(t)
	status := models.ApplicantStatusApplicant
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "applicants" WHERE space_id = \$1 AND status = \$2 AND created_at >= \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "applicants" WHERE space_id = \$1 AND status = \$2 AND created_at >= \$3 ORDER BY last_name asc, first_name asc`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	list, rowCount, err := store.List("s1", applicantapimodels.ApplicantFilter{
		Status: &status,
		Sort:   applicantapimodels.ApplicantSort{Field: applicantapimodels.SortByName},
	}, &from, nil)
	require.NoError(t, err)
	require.Empty(t, list)
	require.Zero(t, rowCount)
	require.NoError(t, mock.ExpectationsWereMet())
}
