package schema

import (
	"time"
)

// Profile is a registered user document. The ID is a stable UUID derived
// from the verified phone number, so the same phone always maps to the
// same user.
type Profile struct {
	ID                  string    `bson:"id" json:"id"`
	Name                string    `bson:"name" json:"name"`
	Phone               string    `bson:"phone" json:"phone"`
	BloodGroup          string    `bson:"blood_group" json:"blood_group"`
	Gender              string    `bson:"gender" json:"gender"`
	IsAvailableToDonate bool      `bson:"is_available_to_donate" json:"is_available_to_donate"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt           time.Time `bson:"updated_at" json:"updated_at"`
}

// OTP is a pending phone verification code. Only the sha256 digest of the
// code is stored; documents expire through the TTL index on expires_at.
type OTP struct {
	Phone     string    `bson:"phone" json:"-"`
	CodeHash  string    `bson:"code_hash" json:"-"`
	ExpiresAt time.Time `bson:"expires_at" json:"-"`
}
