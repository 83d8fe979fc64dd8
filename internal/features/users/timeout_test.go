package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

func TestActiveTimeout(t *testing.T) {
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future timeout blocks", func(t *testing.T) {
		until := now.Add(24 * time.Hour)
		err := activeTimeout(&User{TimeoutUntil: &until}, now)

		var timeoutErr *apperrors.TimeoutError
		require.ErrorAs(t, err, &timeoutErr)
		require.Equal(t, until, timeoutErr.Until)
	})

	t.Run("expired timeout allows", func(t *testing.T) {
		until := now.Add(-24 * time.Hour)
		require.NoError(t, activeTimeout(&User{TimeoutUntil: &until}, now))
	})

	t.Run("timeout ending exactly now allows", func(t *testing.T) {
		until := now
		require.NoError(t, activeTimeout(&User{TimeoutUntil: &until}, now))
	})

	t.Run("no timeout allows", func(t *testing.T) {
		require.NoError(t, activeTimeout(&User{}, now))
	})
}
