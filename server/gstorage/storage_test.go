package gstorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	assert.Equal(t, "alerts.db", ObjectName("", "alerts.db"))
	assert.Equal(t, "backups/alerts.db", ObjectName("backups", "alerts.db"))
	assert.Equal(t, "backups/prod/alerts.db", ObjectName("backups/prod/", "alerts.db"))
}
