package items

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xyz-asif/foundly/internal/pkg/geo"
	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

func validCreateRequest() *CreateItemRequest {
	return &CreateItemRequest{
		ItemName:    "Black Wallet",
		Description: "Found near the fountain",
		Categories:  []string{"Wallets"},
	}
}

func TestValidateCreateItem(t *testing.T) {
	require.NoError(t, ValidateCreateItem(validCreateRequest()))

	req := validCreateRequest()
	req.ItemName = "   "
	require.ErrorIs(t, ValidateCreateItem(req), apperrors.ErrValidation)

	req = validCreateRequest()
	req.Description = ""
	require.ErrorIs(t, ValidateCreateItem(req), apperrors.ErrValidation)

	req = validCreateRequest()
	req.Categories = nil
	require.ErrorIs(t, ValidateCreateItem(req), apperrors.ErrValidation)

	req = validCreateRequest()
	req.Categories = []string{"Wallets", "Spaceships"}
	err := ValidateCreateItem(req)
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Contains(t, err.Error(), "Spaceships")

	req = validCreateRequest()
	req.Images = []string{"a", "b", "c"}
	require.NoError(t, ValidateCreateItem(req))
	req.Images = append(req.Images, "d")
	require.ErrorIs(t, ValidateCreateItem(req), apperrors.ErrValidation)
}

func TestValidateUpdateItem(t *testing.T) {
	name := "New name"
	blank := "   "

	// Nil fields mean the patch leaves them alone.
	require.NoError(t, ValidateUpdateItem(&UpdateItemRequest{ItemName: &name}))
	require.NoError(t, ValidateUpdateItem(&UpdateItemRequest{}))

	require.ErrorIs(t,
		ValidateUpdateItem(&UpdateItemRequest{ItemName: &blank}),
		apperrors.ErrValidation)
	require.ErrorIs(t,
		ValidateUpdateItem(&UpdateItemRequest{Description: &blank}),
		apperrors.ErrValidation)

	require.ErrorIs(t,
		ValidateUpdateItem(&UpdateItemRequest{Categories: []string{}}),
		apperrors.ErrValidation)

	require.ErrorIs(t,
		ValidateUpdateItem(&UpdateItemRequest{Categories: []string{"Bicycles"}}),
		apperrors.ErrValidation)

	require.NoError(t,
		ValidateUpdateItem(&UpdateItemRequest{Categories: []string{"Keys", "Bags"}}))
}

func TestValidateUpdateItem_ClearLocation(t *testing.T) {
	require.NoError(t, ValidateUpdateItem(&UpdateItemRequest{ClearLocation: true}))

	require.ErrorIs(t,
		ValidateUpdateItem(&UpdateItemRequest{
			ClearLocation: true,
			Location:      &geo.Point{Latitude: 40.0, Longitude: -74.0},
		}),
		apperrors.ErrValidation)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("found")
	require.NoError(t, err)
	require.Equal(t, KindFound, kind)

	kind, err = ParseKind("lost")
	require.NoError(t, err)
	require.Equal(t, KindLost, kind)

	_, err = ParseKind("stolen")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}
