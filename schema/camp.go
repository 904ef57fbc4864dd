package schema

import (
	"time"
)

// camp request statuses. A camp request only ever moves from pending to
// confirmed or rejected; it never goes back.
const (
	CampStatusPending   = "pending"
	CampStatusConfirmed = "confirmed"
	CampStatusRejected  = "rejected"
)

// CampRequest is an organizer's proposal to host a donation camp. The owner
// may edit it only while it is pending review.
type CampRequest struct {
	ID               uint      `json:"id" gorm:"primary_key"`
	UserID           string    `json:"user_id" gorm:"index"`
	OrganizationName string    `json:"organization_name"`
	ContactPerson    string    `json:"contact_person"`
	Phone            string    `json:"phone"`
	ProposedDate     string    `json:"proposed_date"`
	VenueAddress     string    `json:"venue_address"`
	ExpectedDonors   string    `json:"expected_donors"`
	Facilities       string    `json:"facilities"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status" sql:"default:'pending'"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CampRequestPatch carries the owner-editable fields of a camp request.
// Nil fields are left untouched by an edit.
type CampRequestPatch struct {
	OrganizationName *string `json:"organization_name"`
	ContactPerson    *string `json:"contact_person"`
	Phone            *string `json:"phone"`
	ProposedDate     *string `json:"proposed_date"`
	VenueAddress     *string `json:"venue_address"`
	ExpectedDonors   *string `json:"expected_donors"`
	Facilities       *string `json:"facilities"`
	Notes            *string `json:"notes"`
}
