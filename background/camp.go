package background

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"

	"github.com/bloodlink-inc/bloodlink-api/schema"
	"github.com/bloodlink-inc/bloodlink-api/utils"
)

// NotifyCampReviewOutcome is a background job that tells a camp organizer
// the result of the review of their proposal
func (m *BackgroundManager) NotifyCampReviewOutcome(campID uint64) error {
	camp, err := m.store.GetCampRequest(uint(campID))
	if err != nil {
		return err
	}

	var bodyID string
	switch camp.Status {
	case schema.CampStatusConfirmed:
		bodyID = "notification.camp_confirmed.body"
	case schema.CampStatusRejected:
		bodyID = "notification.camp_rejected.body"
	default:
		return nil
	}

	loc := utils.NewLocalizer("en")
	heading, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.camp_review.heading",
	})
	if err != nil {
		return err
	}
	body, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: bodyID,
		TemplateData: map[string]interface{}{
			"Date": camp.ProposedDate,
		},
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":  "background",
		"camp_id": campID,
		"status":  camp.Status,
	}).Info("notify camp review outcome")

	return m.notifier.NotifyAccountByText(camp.UserID,
		map[string]string{"en": heading},
		map[string]string{"en": body},
		map[string]interface{}{
			"notification_type": "CAMP_REVIEW",
			"camp_id":           campID,
		})
}
