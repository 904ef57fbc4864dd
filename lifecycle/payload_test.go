package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

func TestBuildReceiverPayload(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	d := validReceiverDraft()
	d.Name = "  Asha  "
	d.BloodGroup = "o+"
	d.WhatsApp = ""
	d.Purpose = " Surgery "

	r := BuildRequestPayload(d, now)

	assert.Equal(t, "Asha", r.Name)
	assert.Equal(t, "O+", r.BloodGroup)
	assert.Equal(t, r.Phone, r.WhatsApp, "whatsapp defaults to phone")
	assert.Equal(t, schema.RequestStatusOpen, r.Status)
	assert.Equal(t, now, r.CreatedAt)
	assert.Equal(t, now, r.UpdatedAt)

	// exactly the receiver group is populated
	assert.NotNil(t, r.Receiver)
	assert.Nil(t, r.Donor)
	assert.Equal(t, "Surgery", r.Receiver.Purpose)
	assert.Equal(t, schema.UrgencyUrgent, r.Receiver.Urgency)
}

func TestBuildDonorPayload(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	d := validDonorDraft()
	d.WhatsApp = "8880001111"
	d.MedicalHistory = " none "

	r := BuildRequestPayload(d, now)

	assert.Equal(t, "8880001111", r.WhatsApp)
	assert.Nil(t, r.Receiver)
	assert.NotNil(t, r.Donor)
	assert.Equal(t, "none", r.Donor.MedicalHistory)
}

func TestBuildPayloadIdempotent(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, d := range []Draft{validReceiverDraft(), validDonorDraft()} {
		first := BuildRequestPayload(d, now)
		second := BuildRequestPayload(DraftFromRequest(first), now)
		assert.Equal(t, first, second)
	}
}

func TestBuildPayloadKeepsCreatedAtOnEdit(t *testing.T) {
	created := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	d := validReceiverDraft()
	d.CreatedAt = created

	r := BuildRequestPayload(d, now)
	assert.Equal(t, created, r.CreatedAt)
	assert.Equal(t, now, r.UpdatedAt)
}

func TestDisplayLocation(t *testing.T) {
	assert.Equal(t,
		"KIMS, Begumpet, Hyderabad, Secunderabad, Telangana",
		DisplayLocation(schema.LocationDetail{
			State:        "Telangana",
			District:     "Hyderabad",
			Constituency: "Secunderabad",
			Area:         "Begumpet",
			Hospital:     "KIMS",
		}))

	assert.Equal(t, "", DisplayLocation(schema.LocationDetail{}))
}
