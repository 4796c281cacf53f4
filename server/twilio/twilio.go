package twilio

import (
	"fmt"

	"github.com/Daskott/coastal-alert/shared"
	"github.com/Daskott/coastal-alert/utils"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type ClientWrapper struct {
	client *twilio.RestClient
	config shared.TwilioConfig
}

func NewClient(config shared.TwilioConfig) *ClientWrapper {
	client := twilio.NewRestClientWithParams(twilio.RestClientParams{
		Username: config.AccountSid,
		Password: config.AuthToken,
	})

	return &ClientWrapper{
		client: client,
		config: config,
	}
}

// SendMessage sends msg to the phone number 'to' and returns the message sid.
// Messages go out from the configured phone number, or through the messaging
// service when no number is set.
func (cw *ClientWrapper) SendMessage(to, msg string) (string, error) {
	params := &openapi.CreateMessageParams{}
	if cw.config.PhoneNumber != "" {
		params.SetFrom(cw.config.PhoneNumber)
	} else {
		params.SetMessagingServiceSid(cw.config.MessagingServiceSid)
	}
	params.SetTo(to)
	params.SetBody(msg)

	resp, err := cw.client.ApiV2010.CreateMessage(params)
	if err != nil {
		return "", err
	}

	if resp.ErrorMessage != nil && *resp.ErrorMessage != "" {
		return "", fmt.Errorf("twilio rejected message to %v: %v", to, *resp.ErrorMessage)
	}

	return utils.ValueOrEmpty(resp.Sid), nil
}
