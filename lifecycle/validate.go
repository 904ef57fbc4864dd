package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

// ErrUnauthenticated is returned when a draft carries no user identity.
// This is an authentication precondition, not a form validation failure,
// and is reported separately from missing fields.
var ErrUnauthenticated = fmt.Errorf("user identity is not established")

// RegionSchema selects which location level is mandatory besides the state.
type RegionSchema string

const (
	RegionDistrict     RegionSchema = "district"
	RegionConstituency RegionSchema = "constituency"
)

// ValidationError lists every required field a draft is missing, in a fixed
// field order. The engine always aggregates all missing fields rather than
// stopping at the first one.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Draft is the form state of a request post as entered by a user. The user
// identity is an explicit field, never taken from ambient state.
type Draft struct {
	Type       string                `json:"type"`
	UserID     string                `json:"-"`
	Name       string                `json:"name"`
	Gender     string                `json:"gender"`
	BloodGroup string                `json:"blood_group"`
	Phone      string                `json:"phone"`
	WhatsApp   string                `json:"whatsapp"`
	Location   schema.LocationDetail `json:"location"`

	Description string `json:"description"`

	// receiver fields
	Purpose        string `json:"purpose"`
	Urgency        string `json:"urgency"`
	PatientDetails string `json:"patient_details"`
	Disease        string `json:"disease"`

	// donor fields
	PrevDonationDate  string `json:"prev_donation_date"`
	AvailableToDonate bool   `json:"available_to_donate"`
	MedicalHistory    string `json:"medical_history"`

	// donor booking fields
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`

	// zero on new drafts, round-tripped on edits
	CreatedAt time.Time `json:"-"`
}

// ValidateRequestSubmission decides whether a draft is submittable. It is a
// pure check with no side effects. bookingRequired toggles whether donor
// posts must carry a confirmed appointment date and slot.
func ValidateRequestSubmission(d Draft, region RegionSchema, bookingRequired bool) error {
	if strings.TrimSpace(d.UserID) == "" {
		return ErrUnauthenticated
	}

	var missing []string

	if d.Type != schema.RequestTypeReceiver && d.Type != schema.RequestTypeDonor {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if !schema.ValidBloodGroup(strings.TrimSpace(d.BloodGroup)) {
		missing = append(missing, "blood_group")
	}
	if strings.TrimSpace(d.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(d.Location.State) == "" {
		missing = append(missing, "location.state")
	}
	switch region {
	case RegionConstituency:
		if strings.TrimSpace(d.Location.Constituency) == "" {
			missing = append(missing, "location.constituency")
		}
	default:
		if strings.TrimSpace(d.Location.District) == "" {
			missing = append(missing, "location.district")
		}
	}

	switch d.Type {
	case schema.RequestTypeReceiver:
		if !schema.ValidUrgency(d.Urgency) {
			missing = append(missing, "urgency")
		}
	case schema.RequestTypeDonor:
		if bookingRequired {
			// the date keys the booking slot, so anything but the canonical
			// YYYY-MM-DD form would slip past the uniqueness index
			if _, err := time.Parse("2006-01-02", strings.TrimSpace(d.AppointmentDate)); err != nil {
				missing = append(missing, "appointment_date")
			}
			if strings.TrimSpace(d.AppointmentTime) == "" {
				missing = append(missing, "appointment_time")
			}
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
