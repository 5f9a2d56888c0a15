package documentstore

import (
	storageerrors "hr-onboarding-backend/lib/utils/storage-errors"
	"hr-onboarding-backend/models"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
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

func TestGet(t *testing.T) {
	t.Run("payload is scanned from jsonb", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "onboarding_documents" WHERE applicant_id = \$1 AND document_type = \$2`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "applicant_id", "document_type", "payload", "status"}).
				AddRow("d1", "a1", "DIRECT_DEPOSIT", []byte(`{"bankName":"Chase"}`), "ON_TRACK"))

		rec, err := store.Get("a1", models.DocDirectDeposit)
		require.NoError(t, err)
		require.NotNil(t, rec)
		require.Equal(t, models.DocumentOnTrack, rec.Status)
		require.JSONEq(t, `{"bankName":"Chase"}`, string(rec.Payload))
		require.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("not saved", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectQuery(`SELECT \* FROM "onboarding_documents"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rec, err := store.Get("a1", models.DocDirectDeposit)
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}

func TestUpdate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(`UPDATE "onboarding_documents" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3`).
		WithArgs("COMPLETED", sqlmock.AnyArg(), "d1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "onboarding_documents"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Update("d1", map[string]interface{}{"status": models.DocumentCompleted}))
	require.Error(t, store.Update("d2", map[string]interface{}{"status": models.DocumentCompleted}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStorageFailure(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery(`SELECT \* FROM "onboarding_documents"`).
		WillReturnError(errors.New("pq: could not connect to server"))

	rec, err := store.Get("a1", models.DocDirectDeposit)
	require.Nil(t, rec)
	require.ErrorIs(t, err, storageerrors.ErrStorage)
	require.NoError(t, mock.ExpectationsWereMet())
}
