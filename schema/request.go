package schema

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RequestCollection = "requests"
	ProfileCollection = "users"
	OTPCollection     = "otps"
)

// request post types
const (
	RequestTypeReceiver = "receiver"
	RequestTypeDonor    = "donor"
)

// request statuses
const (
	RequestStatusOpen    = "open"
	RequestStatusExpired = "expired"
	RequestStatusClosed  = "closed"
)

// urgency levels, mild to severe
const (
	UrgencyNormal   = "normal"
	UrgencySoon     = "soon"
	UrgencyUrgent   = "urgent"
	UrgencyCritical = "critical"
)

// BloodGroups is the set of valid blood group labels in a request
var BloodGroups = []string{"O+", "O-", "A+", "A-", "B+", "B-", "AB+", "AB-"}

// UrgencyLevels is the set of valid urgency values of a receiver post
var UrgencyLevels = []string{UrgencyNormal, UrgencySoon, UrgencyUrgent, UrgencyCritical}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// LocationDetail is the structured location of a post. Which of district or
// constituency is mandatory depends on the configured region schema.
type LocationDetail struct {
	State        string `bson:"state" json:"state"`
	District     string `bson:"district" json:"district"`
	Constituency string `bson:"constituency" json:"constituency"`
	Municipality string `bson:"municipality" json:"municipality"`
	Area         string `bson:"area" json:"area"`
	Hospital     string `bson:"hospital" json:"hospital"`
}

// ReceiverDetails is populated on receiver posts only
type ReceiverDetails struct {
	Purpose        string `bson:"purpose" json:"purpose"`
	Urgency        string `bson:"urgency" json:"urgency"`
	PatientDetails string `bson:"patient_details" json:"patient_details"`
	Disease        string `bson:"disease" json:"disease"`
}

// DonorDetails is populated on donor posts only
type DonorDetails struct {
	PrevDonationDate  string `bson:"prev_donation_date" json:"prev_donation_date"`
	AvailableToDonate bool   `bson:"available_to_donate" json:"available_to_donate"`
	MedicalHistory    string `bson:"medical_history" json:"medical_history"`
}

// Request is a blood post: a need for blood (receiver) or an offer to
// donate (donor). Exactly one of Receiver or Donor is set, matching Type.
type Request struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type           string             `bson:"type" json:"type"`
	UserID         string             `bson:"user_id" json:"user_id"`
	Name           string             `bson:"name" json:"name"`
	Gender         string             `bson:"gender" json:"gender"`
	BloodGroup     string             `bson:"blood_group" json:"blood_group"`
	Phone          string             `bson:"phone" json:"phone"`
	WhatsApp       string             `bson:"whatsapp" json:"whatsapp"`
	Location       string             `bson:"location" json:"location"`
	LocationDetail LocationDetail     `bson:"location_detail" json:"location_detail"`
	Description    string             `bson:"description" json:"description"`
	Status         string             `bson:"status" json:"status"`
	Geo            *GeoJSON           `bson:"geo,omitempty" json:"-"`
	Receiver       *ReceiverDetails   `bson:"receiver,omitempty" json:"receiver,omitempty"`
	Donor          *DonorDetails      `bson:"donor,omitempty" json:"donor,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// ValidBloodGroup reports whether g is one of the 8 standard groups.
// Matching is case-insensitive against the canonical upper-case labels.
func ValidBloodGroup(g string) bool {
	for _, b := range BloodGroups {
		if strings.EqualFold(g, b) {
			return true
		}
	}
	return false
}

// ValidUrgency reports whether u is a known urgency level.
func ValidUrgency(u string) bool {
	for _, l := range UrgencyLevels {
		if u == l {
			return true
		}
	}
	return false
}
