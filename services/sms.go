// services/sms.go
package services

import (
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioClient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMSSender delivers reminders via Twilio. The subject is dropped; SMS
// only carries the body.
type SMSSender struct {
	client *twilio.RestClient
	from   string
}

func NewSMSSender(accountSid, authToken, from string, timeout time.Duration) *SMSSender {
	base := &twilioClient.Client{
		Credentials: twilioClient.NewCredentials(accountSid, authToken),
	}
	base.SetTimeout(timeout)

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
		Client:   base,
	})

	return &SMSSender{client: client, from: from}
}

func (s *SMSSender) Send(to, subject, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid == nil {
		return fmt.Errorf("twilio accepted message to %s but returned no SID", to)
	}
	return nil
}
