package background

import (
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bloodlink-inc/bloodlink-api/lifecycle"
	"github.com/bloodlink-inc/bloodlink-api/schema"
	"github.com/bloodlink-inc/bloodlink-api/utils"
)

const (
	defaultRequestMaxAgeDays = 30
	donorSearchDistance      = 50000 // meters
)

// ExpireBloodRequests is a background job that flips open posts older than
// the configured age to expired and tells each owner their post lapsed
func (m *BackgroundManager) ExpireBloodRequests() error {
	maxAgeDays := viper.GetInt("requests.max_age_days")
	if maxAgeDays == 0 {
		maxAgeDays = defaultRequestMaxAgeDays
	}

	expired, err := m.mongo.ExpireRequests(time.Duration(maxAgeDays) * 24 * time.Hour)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":  "background",
		"expired": len(expired),
	}).Info("expire blood requests")

	if len(expired) == 0 {
		return nil
	}

	loc := utils.NewLocalizer("en")
	heading, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.request_expired.heading",
	})
	if err != nil {
		return err
	}
	body, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.request_expired.body",
	})
	if err != nil {
		return err
	}

	for _, request := range expired {
		// a failed push should not abort the rest of the batch
		if err := m.notifier.NotifyAccountByText(request.UserID,
			map[string]string{"en": heading},
			map[string]string{"en": body},
			map[string]interface{}{
				"notification_type": "REQUEST_EXPIRED",
				"request_id":        request.ID.Hex(),
			}); err != nil {
			log.WithFields(log.Fields{
				"prefix":     "background",
				"request_id": request.ID.Hex(),
				"error":      err,
			}).Error("notify expired request owner")
		}
	}

	return nil
}

// NotifyMatchingDonors is a background job that pushes an alert to nearby
// donors whose blood group can serve a freshly posted urgent request
func (m *BackgroundManager) NotifyMatchingDonors(requestID string) error {
	id, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return err
	}

	request, err := m.mongo.GetRequest(id)
	if err != nil {
		return err
	}

	if request.Type != schema.RequestTypeReceiver || request.Status != schema.RequestStatusOpen {
		return nil
	}
	if request.Geo == nil || len(request.Geo.Coordinates) != 2 {
		log.WithFields(log.Fields{
			"prefix":     "background",
			"request_id": requestID,
		}).Warn("request has no coordinates, skip donor matching")
		return nil
	}

	donorGroups := lifecycle.CompatibleDonorGroups(request.BloodGroup)
	donors, err := m.mongo.NearestDonors(donorSearchDistance, schema.Location{
		Longitude: request.Geo.Coordinates[0],
		Latitude:  request.Geo.Coordinates[1],
	}, donorGroups)
	if err != nil {
		return err
	}

	accountIDs := make([]string, 0, len(donors))
	for _, d := range donors {
		if d.UserID == request.UserID {
			continue
		}
		accountIDs = append(accountIDs, d.UserID)
	}
	if len(accountIDs) == 0 {
		return nil
	}

	loc := utils.NewLocalizer("en")
	heading, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.urgent_request.heading",
	})
	if err != nil {
		return err
	}
	body, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "notification.urgent_request.body",
		TemplateData: map[string]interface{}{
			"BloodGroup": request.BloodGroup,
			"Location":   request.Location,
		},
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"prefix":     "background",
		"request_id": requestID,
		"donors":     len(accountIDs),
	}).Info("notify matching donors")

	return m.notifier.NotifyAccountsByText(accountIDs,
		map[string]string{"en": heading},
		map[string]string{"en": body},
		map[string]interface{}{
			"notification_type": "URGENT_REQUEST",
			"request_id":        requestID,
		})
}
