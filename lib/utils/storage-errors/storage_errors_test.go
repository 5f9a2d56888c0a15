package storageerrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		require.NoError(t, Wrap(nil))
	})
	t.Run("driver error", func(t *testing.T) {
		cause := errors.New("pq: could not connect to server")
		err := Wrap(cause)
		require.ErrorIs(t, err, ErrStorage)
		require.ErrorIs(t, err, cause)
		require.EqualError(t, err, "pq: could not connect to server")
		require.False(t, IsDuplicate(err))
	})
	t.Run("wrapped twice", func(t *testing.T) {
		err := Wrap(errors.New("timeout"))
		require.Same(t, err, Wrap(err))
	})
	t.Run("duplicate key", func(t *testing.T) {
		err := Wrap(gorm.ErrDuplicatedKey)
		require.ErrorIs(t, err, ErrStorage)
		require.True(t, IsDuplicate(err))
	})
}
