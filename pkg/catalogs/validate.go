package catalogs

import (
	"math"
	"strings"

	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
)

// Validate checks the rules an entry must satisfy before it is added.
// It returns a *errors.ValidationError naming the first failing field.
func (e Entry) Validate() error {
	required := []struct {
		field string
		value *string
	}{
		{"title", e.Title},
		{"developer", e.Developer},
		{"publisher", e.Publisher},
	}
	for _, r := range required {
		if r.value == nil || strings.TrimSpace(*r.value) == "" {
			return errors.NewValidationError(r.field, r.value, "is required")
		}
	}

	if e.Rating != nil {
		r := *e.Rating
		if math.IsNaN(r) || math.IsInf(r, 0) || r < constants.MinRating || r > constants.MaxRating {
			return errors.NewValidationError("rating", r, "must be between 0 and 10")
		}
	}
	if e.ReleaseYear != nil && *e.ReleaseYear < 0 {
		return errors.NewValidationError("releaseYear", *e.ReleaseYear, "must not be negative")
	}
	if e.SteamID != nil && *e.SteamID < 0 {
		return errors.NewValidationError("steamId", *e.SteamID, "must not be negative")
	}
	return nil
}
