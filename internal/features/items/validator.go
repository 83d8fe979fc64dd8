package items

import (
	"strings"

	apperrors "github.com/xyz-asif/foundly/pkg/errors"
)

// ValidateCreateItem enforces required fields at the repository boundary.
func ValidateCreateItem(req *CreateItemRequest) error {
	if strings.TrimSpace(req.ItemName) == "" {
		return apperrors.NewValidation("itemName", "is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidation("description", "is required")
	}
	if len(req.Categories) == 0 {
		return apperrors.NewValidation("categories", "must contain at least one category")
	}
	if err := validateCategories(req.Categories); err != nil {
		return err
	}
	if len(req.Images) > MaxImages {
		return apperrors.NewValidation("images", "cannot contain more than 3 entries")
	}
	return nil
}

// ValidateUpdateItem checks only the fields the patch sets.
func ValidateUpdateItem(req *UpdateItemRequest) error {
	if req.ItemName != nil && strings.TrimSpace(*req.ItemName) == "" {
		return apperrors.NewValidation("itemName", "cannot be blank")
	}
	if req.Description != nil && strings.TrimSpace(*req.Description) == "" {
		return apperrors.NewValidation("description", "cannot be blank")
	}
	if req.ClearLocation && req.Location != nil {
		return apperrors.NewValidation("clearLocation", "cannot be combined with a new location")
	}
	if req.Categories != nil {
		if len(req.Categories) == 0 {
			return apperrors.NewValidation("categories", "must contain at least one category")
		}
		if err := validateCategories(req.Categories); err != nil {
			return err
		}
	}
	if len(req.Images) > MaxImages {
		return apperrors.NewValidation("images", "cannot contain more than 3 entries")
	}
	return nil
}

func validateCategories(categories []string) error {
	for _, c := range categories {
		if !isKnownCategory(c) {
			return apperrors.NewValidation("categories", "contains unknown category \""+c+"\"")
		}
	}
	return nil
}

func isKnownCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
