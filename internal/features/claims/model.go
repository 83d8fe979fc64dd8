package claims

// ClaimRequest sets or clears the claimant on a found item. A nil ClaimedBy
// releases the claim.
type ClaimRequest struct {
	ClaimedBy *string `json:"claimedBy"`
}

// Actor identifies who is performing a claim transition. Only the item's
// owner, who hands the item over, or an admin may record one.
type Actor struct {
	ID      string
	IsAdmin bool
}
