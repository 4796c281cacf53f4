package notifier

import (
	"github.com/Daskott/coastal-alert/server/logger"
	"github.com/Daskott/coastal-alert/server/mailer"
	"github.com/Daskott/coastal-alert/server/metrics"
	"github.com/Daskott/coastal-alert/server/twilio"
	"github.com/Daskott/coastal-alert/shared"
)

const (
	CHANNEL_SMS   = "sms"
	CHANNEL_EMAIL = "email"

	STATUS_SENT   = "sent"
	STATUS_FAILED = "failed"
	STATUS_DEMO   = "demo"
)

var logg = logger.NewLogger()

type SmsSender interface {
	SendMessage(to, msg string) (string, error)
}

type MailSender interface {
	SendMail(to, subject, body string) error
}

// Gateway sends notifications over SMS & email. A channel without a sender
// runs in demo mode: every send is logged and reported as delivered.
type Gateway struct {
	sms  SmsSender
	mail MailSender
}

// NewGateway returns a gateway over the given senders. Pass nil for a demo channel.
func NewGateway(sms SmsSender, mail MailSender) *Gateway {
	return &Gateway{sms: sms, mail: mail}
}

// NewGatewayFromConfig wires up twilio & smtp for the channels whose credentials are set.
func NewGatewayFromConfig(twilioConfig shared.TwilioConfig, smtpConfig shared.SmtpConfig) *Gateway {
	gateway := &Gateway{}

	if twilioConfig.Enabled() {
		gateway.sms = twilio.NewClient(twilioConfig)
	} else {
		logg.Warn("Twilio credentials not set, SMS notifications will run in demo mode")
	}

	if smtpConfig.Enabled() {
		gateway.mail = mailer.NewMailer(smtpConfig)
	} else {
		logg.Warn("SMTP credentials not set, email notifications will run in demo mode")
	}

	return gateway
}

func (g *Gateway) SmsDemoMode() bool   { return g.sms == nil }
func (g *Gateway) EmailDemoMode() bool { return g.mail == nil }

func (g *Gateway) SendSMS(to, message string) bool {
	if g.SmsDemoMode() {
		logg.Infof("[DEMO] SMS to %v: %v", to, message)
		metrics.NotificationsTotal.WithLabelValues(CHANNEL_SMS, STATUS_DEMO).Inc()
		return true
	}

	sid, err := g.sms.SendMessage(to, message)
	if err != nil {
		logg.Errorf("Failed to send SMS to %v: %v", to, err)
		metrics.NotificationsTotal.WithLabelValues(CHANNEL_SMS, STATUS_FAILED).Inc()
		return false
	}

	logg.Infof("SMS sent successfully to %v: %v", to, sid)
	metrics.NotificationsTotal.WithLabelValues(CHANNEL_SMS, STATUS_SENT).Inc()
	return true
}

func (g *Gateway) SendEmail(to, subject, body string) bool {
	if g.EmailDemoMode() {
		logg.Infof("[DEMO] EMAIL to %v: %v", to, subject)
		metrics.NotificationsTotal.WithLabelValues(CHANNEL_EMAIL, STATUS_DEMO).Inc()
		return true
	}

	err := g.mail.SendMail(to, subject, body)
	if err != nil {
		logg.Errorf("Failed to send email to %v: %v", to, err)
		metrics.NotificationsTotal.WithLabelValues(CHANNEL_EMAIL, STATUS_FAILED).Inc()
		return false
	}

	logg.Infof("Email sent successfully to %v", to)
	metrics.NotificationsTotal.WithLabelValues(CHANNEL_EMAIL, STATUS_SENT).Inc()
	return true
}
