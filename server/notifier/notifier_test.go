package notifier

import (
	"errors"
	"testing"

	"github.com/Daskott/coastal-alert/shared"
	"github.com/stretchr/testify/assert"
)

type fakeSms struct {
	err  error
	sent []string
}

func (f *fakeSms) SendMessage(to, msg string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, to)
	return "SM123", nil
}

type fakeMail struct {
	err  error
	sent []string
}

func (f *fakeMail) SendMail(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestGatewayDemoMode(t *testing.T) {
	gateway := NewGatewayFromConfig(shared.TwilioConfig{}, shared.SmtpConfig{Host: "smtp.coast.in"})

	assert.True(t, gateway.SmsDemoMode())
	assert.True(t, gateway.EmailDemoMode())
	assert.True(t, gateway.SendSMS("+919800000001", "hello"))
	assert.True(t, gateway.SendEmail("meera@coast.in", "subject", "hello"))
}

func TestGatewayFromConfigEnablesChannels(t *testing.T) {
	gateway := NewGatewayFromConfig(
		shared.TwilioConfig{AccountSid: "AC123", AuthToken: "token", PhoneNumber: "+15550001111"},
		shared.SmtpConfig{Host: "smtp.coast.in", Port: 587, Username: "alerts", Password: "secret"},
	)

	assert.False(t, gateway.SmsDemoMode())
	assert.False(t, gateway.EmailDemoMode())
}

func TestGatewaySend(t *testing.T) {
	sms := &fakeSms{}
	mail := &fakeMail{}
	gateway := NewGateway(sms, mail)

	assert.True(t, gateway.SendSMS("+919800000001", "hello"))
	assert.True(t, gateway.SendEmail("meera@coast.in", "subject", "hello"))
	assert.Equal(t, []string{"+919800000001"}, sms.sent)
	assert.Equal(t, []string{"meera@coast.in"}, mail.sent)
}

func TestGatewayTransportFailures(t *testing.T) {
	gateway := NewGateway(&fakeSms{err: errors.New("invalid number")}, &fakeMail{err: errors.New("auth failed")})

	assert.False(t, gateway.SendSMS("+0", "hello"))
	assert.False(t, gateway.SendEmail("meera@coast.in", "subject", "hello"))
}

func TestGatewayMixedModes(t *testing.T) {
	mail := &fakeMail{err: errors.New("connection refused")}
	gateway := NewGateway(nil, mail)

	assert.True(t, gateway.SendSMS("+919800000001", "hello"), "sms channel is in demo mode")
	assert.False(t, gateway.SendEmail("meera@coast.in", "subject", "hello"))
}
