package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface{ Do() }

type impl struct{}

func (impl) Do() {}

func TestCheckInit(t *testing.T) {
	var typedNil *impl
	var p provider = typedNil

	require.NotPanics(t, func() { CheckInit("ok", impl{}, "ptr", &impl{}) })
	require.PanicsWithValue(t, "missing dependency not initialized", func() { CheckInit("missing", nil) })
	require.Panics(t, func() { CheckInit("typed", p) })
	require.Panics(t, func() { CheckInit("odd") })
	require.Panics(t, func() { CheckInit(1, impl{}) })
}
