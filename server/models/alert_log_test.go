package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAlertLogs(t *testing.T) {
	require.NoError(t, InitializeTestDb())

	for i := 1; i <= 5; i++ {
		require.NoError(t, CreateAlertLog(&AlertLog{Metric: "water_level", Value: float64(i), Threshold: 3.5}))
	}

	alertLogs, err := FetchAlertLogs(2)
	require.NoError(t, err)
	require.Len(t, alertLogs, 2)
	assert.Equal(t, 5.0, alertLogs[0].Value, "newest log should come first")
	assert.Equal(t, 4.0, alertLogs[1].Value)

	alertLogs, err = FetchAlertLogs(0)
	require.NoError(t, err)
	assert.Len(t, alertLogs, 5, "non-positive page size should fall back to the default")
}

func TestFinalizeAlertLog(t *testing.T) {
	require.NoError(t, InitializeTestDb())

	alertLog := AlertLog{Metric: "storm_surge", Value: 3.2, Threshold: 2.0}
	require.NoError(t, CreateAlertLog(&alertLog))
	assert.False(t, alertLog.Sent)

	alertLog.Message = "COASTAL THREAT ALERT [CRITICAL]"
	alertLog.Sent = true
	require.NoError(t, FinalizeAlertLog(&alertLog))

	alertLogs, err := FetchAlertLogs(10)
	require.NoError(t, err)
	require.Len(t, alertLogs, 1)
	assert.True(t, alertLogs[0].Sent)
	assert.Equal(t, "COASTAL THREAT ALERT [CRITICAL]", alertLogs[0].Message)
	assert.Equal(t, 2.0, alertLogs[0].Threshold)
}

func TestFetchStats(t *testing.T) {
	require.NoError(t, InitializeTestDb())

	_, err := CreateContact(ContactParams{Name: "Meera", Phone: "+919800000001"})
	require.NoError(t, err)

	require.NoError(t, CreateAlertLog(&AlertLog{Metric: "wind_speed", Value: 100, Threshold: 120}))
	sentLog := AlertLog{Metric: "wind_speed", Value: 150, Threshold: 120}
	require.NoError(t, CreateAlertLog(&sentLog))
	sentLog.Sent = true
	require.NoError(t, FinalizeAlertLog(&sentLog))

	stats, err := FetchStats()
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalContacts: 1, TotalAlerts: 2, AlertsSent: 1}, *stats)
}
