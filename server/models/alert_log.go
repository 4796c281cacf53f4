package models

import (
	pkgerrors "github.com/pkg/errors"
)

// AlertLog records one metric evaluation. A row is inserted before any
// notification goes out and completed once, in the same request, by
// FinalizeAlertLog. A crash in between leaves sent=false behind even if
// some notifications were delivered.
type AlertLog struct {
	BaseModel
	Metric    string  `json:"metric" gorm:"not null;index"`
	Value     float64 `json:"value"`
	Threshold float64 `json:"threshold"`
	Message   string  `json:"message"`
	Sent      bool    `json:"sent" gorm:"not null;default:false"`
}

type Stats struct {
	TotalContacts int64 `json:"total_contacts"`
	TotalAlerts   int64 `json:"total_alerts"`
	AlertsSent    int64 `json:"alerts_sent"`
}

func CreateAlertLog(alertLog *AlertLog) error {
	return pkgerrors.Wrap(db.Create(alertLog).Error, "create alert log")
}

// FinalizeAlertLog writes the message & sent flag of alertLog.
func FinalizeAlertLog(alertLog *AlertLog) error {
	err := db.Model(alertLog).Updates(map[string]interface{}{
		"message": alertLog.Message,
		"sent":    alertLog.Sent,
	}).Error

	return pkgerrors.Wrap(err, "finalize alert log")
}

// FetchAlertLogs returns the most recent alert logs, newest first.
func FetchAlertLogs(pageSize int) ([]AlertLog, error) {
	alertLogs := []AlertLog{}

	err := db.Scopes(newestFirst, limit(pageSize)).Find(&alertLogs).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "fetch alert logs")
	}

	return alertLogs, nil
}

func FetchStats() (*Stats, error) {
	stats := Stats{}

	err := db.Model(&Contact{}).Count(&stats.TotalContacts).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "count contacts")
	}

	err = db.Model(&AlertLog{}).Count(&stats.TotalAlerts).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "count alert logs")
	}

	err = db.Model(&AlertLog{}).Where("sent = ?", true).Count(&stats.AlertsSent).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "count sent alert logs")
	}

	return &stats, nil
}
