package alerting

import (
	"context"

	"github.com/Daskott/coastal-alert/server/models"
)

const (
	CHANNEL_SMS   = "sms"
	CHANNEL_EMAIL = "email"
)

// SampleContacts is the fixed roster dry-runs evaluate against.
var SampleContacts = []models.Contact{
	sampleContact(1, "Priya Nair", "+919800000101", "priya.nair@example.com", "Kochi, Kerala"),
	sampleContact(2, "Rahul Deshmukh", "+919800000102", "", "Mumbai, Maharashtra"),
	sampleContact(3, "Anjali Iyer", "", "anjali.iyer@example.com", "Chennai, Tamil Nadu"),
	sampleContact(4, "Suresh Patnaik", "+919800000104", "suresh.patnaik@example.com", "Puri, Odisha"),
	sampleContact(5, "Farah Sheikh", "+919800000105", "", "Surat, Gujarat"),
	sampleContact(6, "Vikram Rao", "", "vikram.rao@example.com", "Visakhapatnam, Andhra Pradesh"),
	sampleContact(7, "Maria Fernandes", "+919800000107", "maria.fernandes@example.com", "Panaji, Goa"),
	sampleContact(8, "Arindam Bose", "+919800000108", "", "Digha, West Bengal"),
	sampleContact(9, "Lakshmi Menon", "", "lakshmi.menon@example.com", ""),
}

// PlannedNotification is a notification a dry-run would have sent.
type PlannedNotification struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
}

type DryRunResult struct {
	*Result
	Planned []PlannedNotification `json:"planned_notifications"`
}

// DryRun evaluates reading against SampleContacts without writing logs, publishing
// events or sending anything, and reports the notifications it would have sent.
func DryRun(thresholds Thresholds, reading Reading) (*DryRunResult, error) {
	plan := &planRecorder{planned: []PlannedNotification{}}

	evaluator := &Evaluator{
		thresholds: thresholds,
		contacts:   rosterSource(SampleContacts),
		logs:       discardLogs{},
		notifier:   plan,
		dryRun:     true,
	}

	result, err := evaluator.Evaluate(context.Background(), reading)
	if err != nil {
		return nil, err
	}

	return &DryRunResult{Result: result, Planned: plan.planned}, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func sampleContact(id uint, name, phone, email, region string) models.Contact {
	contact := models.Contact{Name: name}
	contact.ID = id
	if phone != "" {
		contact.Phone = &phone
	}
	if email != "" {
		contact.Email = &email
	}
	if region != "" {
		contact.Region = &region
	}

	return contact
}

type rosterSource []models.Contact

func (roster rosterSource) FetchContacts() ([]models.Contact, error) {
	contacts := make([]models.Contact, len(roster))
	copy(contacts, roster)
	return contacts, nil
}

type discardLogs struct{}

func (discardLogs) CreateAlertLog(alertLog *models.AlertLog) error   { return nil }
func (discardLogs) FinalizeAlertLog(alertLog *models.AlertLog) error { return nil }

type planRecorder struct {
	planned []PlannedNotification
}

func (p *planRecorder) SendSMS(to, message string) bool {
	p.planned = append(p.planned, PlannedNotification{Channel: CHANNEL_SMS, Recipient: to, Message: message})
	return true
}

func (p *planRecorder) SendEmail(to, subject, body string) bool {
	p.planned = append(p.planned, PlannedNotification{Channel: CHANNEL_EMAIL, Recipient: to, Subject: subject, Message: body})
	return true
}
