package items

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNormalizeClaimPatch_SettingClaimant(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	set, unset := normalizeClaimPatch(bson.M{"claimedBy": "user-1"}, now)
	require.Equal(t, "user-1", set["claimedBy"])
	require.Equal(t, true, set["isClaimed"])
	require.Equal(t, now, set["claimedAt"])
	require.Empty(t, unset)
}

func TestNormalizeClaimPatch_ClearingClaimant(t *testing.T) {
	now := time.Now()

	set, unset := normalizeClaimPatch(bson.M{"claimedBy": nil}, now)
	require.Equal(t, false, set["isClaimed"])
	require.NotContains(t, set, "claimedBy")
	require.NotContains(t, set, "claimedAt")
	require.Contains(t, unset, "claimedBy")
	require.Contains(t, unset, "claimedAt")
}

func TestNormalizeClaimPatch_IsClaimedFalseClearsClaimFields(t *testing.T) {
	set, unset := normalizeClaimPatch(bson.M{"isClaimed": false, "itemName": "Keys"}, time.Now())
	require.Equal(t, "Keys", set["itemName"])
	require.Contains(t, unset, "claimedBy")
	require.Contains(t, unset, "claimedAt")
}

func TestNormalizeClaimPatch_IsClaimedTrueWithoutClaimantDropped(t *testing.T) {
	set, unset := normalizeClaimPatch(bson.M{"isClaimed": true}, time.Now())
	require.NotContains(t, set, "isClaimed")
	require.Empty(t, unset)
}

func TestNormalizeClaimPatch_NilLocationUnsetsField(t *testing.T) {
	set, unset := normalizeClaimPatch(bson.M{"location": nil, "itemName": "Keys"}, time.Now())
	require.Equal(t, "Keys", set["itemName"])
	require.NotContains(t, set, "location")
	require.Contains(t, unset, "location")
}

func TestNormalizeClaimPatch_PlainFieldsUntouched(t *testing.T) {
	set, unset := normalizeClaimPatch(bson.M{"description": "updated"}, time.Now())
	require.Equal(t, bson.M{"description": "updated"}, set)
	require.Empty(t, unset)
}
