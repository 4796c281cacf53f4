package cron

import (
	"time"

	"github.com/Daskott/coastal-alert/server/logger"
	"github.com/go-co-op/gocron"
)

var logg = logger.NewLogger()

// NewCronScheduler returns a scheduler running in timeZone, or UTC when
// timeZone can't be loaded.
func NewCronScheduler(timeZone string) *gocron.Scheduler {
	location, err := time.LoadLocation(timeZone)
	if err != nil {
		logg.Warnf("Unable to load time zone '%v', using UTC: %v", timeZone, err)
		location = time.UTC
	}

	scheduler := gocron.NewScheduler(location)
	scheduler.TagsUnique()

	return scheduler
}
