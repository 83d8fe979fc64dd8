package errors

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidationErrorUnwrapsToSentinel(t *testing.T) {
	err := NewValidation("itemName", "is required")
	require.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "itemName", ve.Field)
	require.Contains(t, err.Error(), "itemName is required")
}

func TestPersistencePassesDomainErrorsThrough(t *testing.T) {
	require.NoError(t, Persistence("op", nil))

	require.Equal(t, ErrNotFound, Persistence("op", ErrNotFound))
	require.ErrorIs(t, Persistence("op", ErrSelfClaim), ErrSelfClaim)
	require.ErrorIs(t, Persistence("op", NewValidation("f", "r")), ErrValidation)

	te := &TimeoutError{Until: time.Now().Add(time.Hour)}
	require.Equal(t, error(te), Persistence("op", te))
}

func TestPersistenceWrapsDriverErrors(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("items.find", cause)

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "items.find", pe.Op)
	require.ErrorIs(t, err, cause)

	// Already wrapped errors are not wrapped again.
	require.Equal(t, err, Persistence("outer", err))
}
