package schema

import (
	"time"
)

// appointment review statuses
const (
	AppointmentStatusPending  = "pending_approval"
	AppointmentStatusApproved = "approved"
	AppointmentStatusRejected = "rejected"
)

// donation outcome statuses
const (
	DonationStatusPending   = "pending"
	DonationStatusCompleted = "completed"
	DonationStatusCancelled = "cancelled"
)

// AllDaySlots is the fixed, ordered list of bookable windows per day.
// Free-slot computation subtracts booked labels from this list.
var AllDaySlots = []string{
	"09:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 01:00 PM",
	"02:00 PM - 03:00 PM",
	"03:00 PM - 04:00 PM",
	"04:00 PM - 05:00 PM",
}

// Appointment is a scheduled donation slot, booked alongside a donor-type
// request. The active-slot uniqueness on (appointment_date, appointment_time)
// is enforced with a partial unique index at the storage layer.
type Appointment struct {
	ID                uint      `json:"id" gorm:"primary_key"`
	RequestID         string    `json:"request_id" gorm:"index"`
	UserID            string    `json:"user_id" gorm:"index"`
	AppointmentDate   string    `json:"appointment_date"`
	AppointmentTime   string    `json:"appointment_time"`
	BloodBankLocation string    `json:"blood_bank_location"`
	AppointmentStatus string    `json:"appointment_status" sql:"default:'pending_approval'"`
	DonationStatus    string    `json:"donation_status" sql:"default:'pending'"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TableName keeps the historical collection name of the mobile client.
func (Appointment) TableName() string {
	return "donation_appointments"
}
