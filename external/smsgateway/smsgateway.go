package smsgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

var ErrSMSGatewayFailure = fmt.Errorf("sms gateway returned a failure status")

// SMSGateway delivers one-time passcodes over SMS.
type SMSGateway interface {
	Send(ctx context.Context, phone, message string) error
}

type smsGateway struct {
	endpoint   string
	apiKey     string
	senderID   string
	httpClient *http.Client
}

func New(httpClient *http.Client) SMSGateway {
	return &smsGateway{
		endpoint:   viper.GetString("sms.endpoint"),
		apiKey:     viper.GetString("sms.apikey"),
		senderID:   viper.GetString("sms.sender_id"),
		httpClient: httpClient,
	}
}

func (s *smsGateway) Send(ctx context.Context, phone, message string) error {
	payload := map[string]string{
		"to":      phone,
		"from":    s.senderID,
		"message": message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return ErrSMSGatewayFailure
	}

	return nil
}
