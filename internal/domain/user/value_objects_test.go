//go:build unit

package user_test

import (
	"testing"

	"eventhub/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email", input: "alex@example.com", want: "alex@example.com"},
		{name: "surrounding whitespace trimmed", input: "  alex@example.com  ", want: "alex@example.com"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing domain", input: "alex@", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "alex.example.com", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("8 chars is the floor", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

		pw, err := user.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", pw.Value())
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"member", "staff", "admin"} {
		t.Run(valid, func(t *testing.T) {
			role, err := user.NewRole(valid)
			require.NoError(t, err)
			assert.True(t, role.IsValid())
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewRole("superuser")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
