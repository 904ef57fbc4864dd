package background

import (
	"context"

	"github.com/bloodlink-inc/bloodlink-api/external/push"
)

type NotificationCenter interface {
	NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyAccountsByText(accountIDs []string, headings, contents map[string]string, data map[string]interface{}) error
}

type PushNotificationCenter struct {
	appID  string
	client *push.Client
}

func NewPushNotificationCenter(appID string, client *push.Client) *PushNotificationCenter {
	return &PushNotificationCenter{
		appID:  appID,
		client: client,
	}
}

func accountFilter(accountID string) map[string]string {
	return map[string]string{
		"field":    "tag",
		"key":      "user_id",
		"relation": "=",
		"value":    accountID,
	}
}

func (p *PushNotificationCenter) NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error {
	req := &push.NotificationRequest{
		AppID:          p.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        []map[string]string{accountFilter(accountID)},
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return p.client.SendNotification(context.Background(), req)
}

// NotifyAccountsByText fans a message out to many accounts, batching the
// filter expression to stay under the provider's filter limit
func (p *PushNotificationCenter) NotifyAccountsByText(accountIDs []string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, a := range accountIDs {
		if i%100 == 0 {
			filters = append(filters, accountFilter(a))
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				accountFilter(a))
		}
		if i%100 == 99 {
			req := &push.NotificationRequest{
				AppID:          p.appID,
				Headings:       headings,
				Contents:       contents,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "important_alert",
			}
			if err := p.client.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}

	// send rest of notification
	if len(filters) == 0 {
		return nil
	}
	req := &push.NotificationRequest{
		AppID:          p.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return p.client.SendNotification(context.Background(), req)
}
