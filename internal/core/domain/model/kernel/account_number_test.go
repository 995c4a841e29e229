package kernel_test

import (
	"testing"

	"disbursement/internal/core/domain/model/kernel"
	"disbursement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountNumber(t *testing.T) {
	t.Run("valid Philippine mobile number", func(t *testing.T) {
		account, err := kernel.NewAccountNumber("+639123456789")

		require.NoError(t, err)
		require.NoError(t, account.Validate())
		assert.Equal(t, "+639123456789", account.String())
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := kernel.NewAccountNumber("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("invalid formats", func(t *testing.T) {
		invalid := []string{
			"09123456789",    // missing country code
			"+6391234567",    // too short
			"+6391234567890", // too long
			"+649123456789",  // wrong country code
			"+63912345678a",  // non-digit
			"+63 9123456789", // whitespace
		}

		for _, value := range invalid {
			_, err := kernel.NewAccountNumber(value)
			require.Error(t, err, value)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, value)
		}
	})
}

func TestAccountNumber_IsEqual(t *testing.T) {
	a, err := kernel.NewAccountNumber("+639123456789")
	require.NoError(t, err)
	b, err := kernel.NewAccountNumber("+639123456789")
	require.NoError(t, err)
	c, err := kernel.NewAccountNumber("+639987654321")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestAccountNumber_Validate_ZeroValue(t *testing.T) {
	var account kernel.AccountNumber

	err := account.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrAccountNumberIsNotConstructed)
}
