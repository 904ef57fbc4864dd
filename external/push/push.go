package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const defaultEndpoint = "https://onesignal.com/api/v1/notifications"

var errNotificationRejected = fmt.Errorf("notification rejected by push provider")

// NotificationRequest is the payload submitted to the push provider. Targets
// are selected with tag filters on the user_id tag each client registers.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"android_channel_id,omitempty"`
}

// Client is a thin push-notification delivery client
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	endpoint := viper.GetString("push.endpoint")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &Client{
		endpoint:   endpoint,
		apiKey:     viper.GetString("push.apikey"),
		httpClient: httpClient,
	}
}

// SendNotification submits one notification request. Failures are returned,
// never swallowed; retry policy belongs to the caller.
func (c *Client) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := ioutil.ReadAll(resp.Body)
		log.WithFields(log.Fields{
			"prefix": "push",
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("send notification")
		return errNotificationRejected
	}

	return nil
}
