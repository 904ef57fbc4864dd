package lifecycle

import (
	"strings"
	"time"

	"github.com/bloodlink-inc/bloodlink-api/schema"
)

// BuildRequestPayload produces the persisted shape of a draft: string fields
// trimmed, whatsapp defaulted to phone, the display location joined from the
// structured one, and exactly the field group matching the type populated.
// For a fixed now the function is idempotent: rebuilding from its own output
// yields the same payload.
func BuildRequestPayload(d Draft, now time.Time) schema.Request {
	phone := strings.TrimSpace(d.Phone)
	whatsapp := strings.TrimSpace(d.WhatsApp)
	if whatsapp == "" {
		whatsapp = phone
	}

	loc := schema.LocationDetail{
		State:        strings.TrimSpace(d.Location.State),
		District:     strings.TrimSpace(d.Location.District),
		Constituency: strings.TrimSpace(d.Location.Constituency),
		Municipality: strings.TrimSpace(d.Location.Municipality),
		Area:         strings.TrimSpace(d.Location.Area),
		Hospital:     strings.TrimSpace(d.Location.Hospital),
	}

	r := schema.Request{
		Type:           d.Type,
		UserID:         strings.TrimSpace(d.UserID),
		Name:           strings.TrimSpace(d.Name),
		Gender:         strings.TrimSpace(d.Gender),
		BloodGroup:     strings.ToUpper(strings.TrimSpace(d.BloodGroup)),
		Phone:          phone,
		WhatsApp:       whatsapp,
		Location:       DisplayLocation(loc),
		LocationDetail: loc,
		Description:    strings.TrimSpace(d.Description),
		Status:         schema.RequestStatusOpen,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      now,
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}

	switch d.Type {
	case schema.RequestTypeReceiver:
		r.Receiver = &schema.ReceiverDetails{
			Purpose:        strings.TrimSpace(d.Purpose),
			Urgency:        d.Urgency,
			PatientDetails: strings.TrimSpace(d.PatientDetails),
			Disease:        strings.TrimSpace(d.Disease),
		}
	case schema.RequestTypeDonor:
		r.Donor = &schema.DonorDetails{
			PrevDonationDate:  strings.TrimSpace(d.PrevDonationDate),
			AvailableToDonate: d.AvailableToDonate,
			MedicalHistory:    strings.TrimSpace(d.MedicalHistory),
		}
	}

	return r
}

// DraftFromRequest reinterprets a persisted request as a draft, for edits
// and for the rebuild-idempotence guarantee of BuildRequestPayload.
func DraftFromRequest(r schema.Request) Draft {
	d := Draft{
		Type:        r.Type,
		UserID:      r.UserID,
		Name:        r.Name,
		Gender:      r.Gender,
		BloodGroup:  r.BloodGroup,
		Phone:       r.Phone,
		WhatsApp:    r.WhatsApp,
		Location:    r.LocationDetail,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
	if r.Receiver != nil {
		d.Purpose = r.Receiver.Purpose
		d.Urgency = r.Receiver.Urgency
		d.PatientDetails = r.Receiver.PatientDetails
		d.Disease = r.Receiver.Disease
	}
	if r.Donor != nil {
		d.PrevDonationDate = r.Donor.PrevDonationDate
		d.AvailableToDonate = r.Donor.AvailableToDonate
		d.MedicalHistory = r.Donor.MedicalHistory
	}
	return d
}

// DisplayLocation joins the populated location fields into the free-text
// location shown on feed cards, most specific part first.
func DisplayLocation(l schema.LocationDetail) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{l.Hospital, l.Area, l.Municipality, l.District, l.Constituency, l.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
