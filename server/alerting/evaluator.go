package alerting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Daskott/coastal-alert/server/events"
	"github.com/Daskott/coastal-alert/server/logger"
	"github.com/Daskott/coastal-alert/server/metrics"
	"github.com/Daskott/coastal-alert/server/models"
)

var (
	ErrUnknownMetric = errors.New("unknown metric")
	ErrValueRequired = errors.New("value is required")
)

var logg = logger.NewLogger()

type ContactSource interface {
	FetchContacts() ([]models.Contact, error)
}

// LogRecorder stores an evaluation in two steps: the row is created before
// dispatch and finalized with its message & sent flag afterwards.
type LogRecorder interface {
	CreateAlertLog(alertLog *models.AlertLog) error
	FinalizeAlertLog(alertLog *models.AlertLog) error
}

// Notifier delivers a message on one channel and reports whether it went out.
type Notifier interface {
	SendSMS(to, message string) bool
	SendEmail(to, subject, body string) bool
}

type Reading struct {
	Metric   string   `json:"metric" validate:"required"`
	Value    *float64 `json:"value" validate:"required"`
	Location string   `json:"location"`
}

type Result struct {
	Alert    bool     `json:"alert"`
	Severity Severity `json:"severity"`
	*Dispatch
	Message string `json:"message"`
	LogID   uint   `json:"log_id,omitempty"`
}

// Dispatch summarises the notifications sent for a triggered alert.
type Dispatch struct {
	SentTo            int    `json:"sent_to"`
	NotificationsSent int    `json:"notifications_sent"`
	AreaContacts      int    `json:"area_contacts"`
	TotalContacts     int    `json:"total_contacts"`
	Location          string `json:"location"`
}

type Evaluator struct {
	thresholds Thresholds
	contacts   ContactSource
	logs       LogRecorder
	notifier   Notifier
	publisher  events.Publisher

	// dryRun skips metrics so simulated evaluations don't show up as real ones.
	dryRun bool
}

func NewEvaluator(thresholds Thresholds, contacts ContactSource, logs LogRecorder, notifier Notifier, publisher events.Publisher) *Evaluator {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	return &Evaluator{
		thresholds: thresholds,
		contacts:   contacts,
		logs:       logs,
		notifier:   notifier,
		publisher:  publisher,
	}
}

func (e *Evaluator) Thresholds() Thresholds {
	return e.thresholds
}

// Evaluate classifies reading and, when it exceeds its threshold, notifies the
// contacts in the reading's location on every channel they have.
//
// Only an unknown metric or a failure to record the evaluation is returned as an
// error. Failed notifications are logged and left out of the counts.
func (e *Evaluator) Evaluate(ctx context.Context, reading Reading) (*Result, error) {
	if reading.Value == nil {
		return nil, ErrValueRequired
	}
	value := *reading.Value

	threshold, ok := e.thresholds.Lookup(reading.Metric)
	if !ok {
		return nil, fmt.Errorf("%w: %v. Available metrics: %v",
			ErrUnknownMetric, reading.Metric, strings.Join(e.thresholds.Metrics(), ", "))
	}

	severity := Classify(value, threshold)

	alertLog := models.AlertLog{Metric: reading.Metric, Value: value, Threshold: threshold}
	err := e.logs.CreateAlertLog(&alertLog)
	if err != nil {
		return nil, err
	}

	result := &Result{Severity: severity, LogID: alertLog.ID}

	if severity == NORMAL {
		result.Message = belowThresholdMessage(value, threshold)
		e.finish(ctx, reading, threshold, result)
		return result, nil
	}

	filters := ParseLocation(reading.Location)
	message := alertMessage(severity, reading.Metric, value, threshold, filters)
	subject := alertSubject(severity, reading.Metric)

	allContacts, err := e.contacts.FetchContacts()
	if err != nil {
		logg.Errorf("Unable to load contacts for alert log %v: %v", alertLog.ID, err)
		allContacts = []models.Contact{}
	}

	contacts := SelectContacts(allContacts, filters)
	if len(filters) > 0 {
		logg.Infof("Filtering contacts for location(s) %v: %v selected", filters, len(contacts))
	} else {
		logg.Infof("No location specified, notifying all %v contacts", len(contacts))
	}

	dispatch := &Dispatch{
		AreaContacts:  len(contacts),
		TotalContacts: len(allContacts),
		Location:      DisplayLocation(filters, ALL_REGIONS),
	}

	for _, contact := range contacts {
		notified := false

		if contact.HasPhone() && e.notifier.SendSMS(*contact.Phone, message) {
			notified = true
			dispatch.NotificationsSent++
		}

		if contact.HasEmail() && e.notifier.SendEmail(*contact.Email, subject, message) {
			notified = true
			dispatch.NotificationsSent++
		}

		if notified {
			dispatch.SentTo++
		}
	}

	alertLog.Message = message
	alertLog.Sent = true
	err = e.logs.FinalizeAlertLog(&alertLog)
	if err != nil {
		logg.Errorf("Unable to finalize alert log %v: %v", alertLog.ID, err)
	}

	result.Alert = true
	result.Message = message
	result.Dispatch = dispatch
	e.finish(ctx, reading, threshold, result)

	return result, nil
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func (e *Evaluator) finish(ctx context.Context, reading Reading, threshold float64, result *Result) {
	if e.dryRun {
		return
	}

	metrics.EvaluationsTotal.WithLabelValues(reading.Metric, string(result.Severity)).Inc()
	if result.Dispatch != nil {
		metrics.AlertContactsSelected.Observe(float64(result.AreaContacts))
	}

	event := events.AlertEvent{
		LogID:       result.LogID,
		Metric:      reading.Metric,
		Value:       *reading.Value,
		Threshold:   threshold,
		Severity:    string(result.Severity),
		Alert:       result.Alert,
		EvaluatedAt: time.Now().UTC(),
	}
	if result.Dispatch != nil {
		event.Location = result.Location
		event.SentTo = result.SentTo
		event.NotificationsSent = result.NotificationsSent
	}

	err := e.publisher.Publish(ctx, event)
	if err != nil {
		logg.Errorf("Unable to publish event for alert log %v: %v", result.LogID, err)
	}
}
