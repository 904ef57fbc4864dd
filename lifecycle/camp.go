package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

// ErrNotEditable is returned when a camp request has already been reviewed.
// Reviewed requests are read-only for their owner.
var ErrNotEditable = fmt.Errorf("camp request has already been reviewed")

// EditCampRequest merges a patch into an existing camp request and restamps
// updated_at. It fails unless the request is still pending review. Nil patch
// fields leave the existing values untouched.
func EditCampRequest(existing schema.CampRequest, patch schema.CampRequestPatch, now time.Time) (schema.CampRequest, error) {
	if existing.Status != schema.CampStatusPending {
		return schema.CampRequest{}, ErrNotEditable
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	apply(&existing.OrganizationName, patch.OrganizationName)
	apply(&existing.ContactPerson, patch.ContactPerson)
	apply(&existing.Phone, patch.Phone)
	apply(&existing.ProposedDate, patch.ProposedDate)
	apply(&existing.VenueAddress, patch.VenueAddress)
	apply(&existing.ExpectedDonors, patch.ExpectedDonors)
	apply(&existing.Facilities, patch.Facilities)
	apply(&existing.Notes, patch.Notes)

	existing.UpdatedAt = now
	return existing, nil
}

// ValidateCampSubmission checks the required fields of a new camp request,
// aggregating every missing field like request validation does.
func ValidateCampSubmission(c schema.CampRequest) error {
	if strings.TrimSpace(c.UserID) == "" {
		return ErrUnauthenticated
	}

	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"organization_name", c.OrganizationName},
		{"contact_person", c.ContactPerson},
		{"phone", c.Phone},
		{"proposed_date", c.ProposedDate},
		{"venue_address", c.VenueAddress},
		{"expected_donors", c.ExpectedDonors},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
