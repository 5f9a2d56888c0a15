package validators

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	t.Run(`phone check`, func(t *testing.T) {
		require.True(t, IsPhone("5551234567"))
		require.False(t, IsPhone("abc"))
		require.False(t, IsPhone("555123456"))
		require.False(t, IsPhone("555-123-4567"))
		require.False(t, IsPhone(""))
	})

	t.Run(`email check`, func(t *testing.T) {
		require.True(t, IsEmail("a@b.com"))
		require.True(t, IsEmail("jane.doe@example.org"))
		require.False(t, IsEmail("not-an-email"))
		require.False(t, IsEmail("a@"))
		require.False(t, IsEmail("Jane <a@b.com>"))
		require.False(t, IsEmail(""))
	})

	t.Run(`zip check`, func(t *testing.T) {
		require.True(t, IsZip("12345"))
		require.True(t, IsZip("12345-6789"))
		require.False(t, IsZip("1234"))
		require.False(t, IsZip("123456"))
		require.False(t, IsZip("12345-678"))
	})

	t.Run(`bank and tax ids check`, func(t *testing.T) {
		require.True(t, IsSSN("123456789"))
		require.True(t, IsSSN("123-45-6789"))
		require.False(t, IsSSN("12345678"))
		require.True(t, IsRoutingNumber("021000021"))
		require.False(t, IsRoutingNumber("02100002"))
		require.True(t, IsAccountNumber("1234"))
		require.False(t, IsAccountNumber("123"))
		require.True(t, IsEIN("12-3456789"))
		require.False(t, IsEIN("1-23456789"))
	})

	t.Run(`date and state check`, func(t *testing.T) {
		require.True(t, IsDate("1990-01-31"))
		require.False(t, IsDate("31.01.1990"))
		require.True(t, IsState("CA"))
		require.False(t, IsState("ca"))
	})
}
