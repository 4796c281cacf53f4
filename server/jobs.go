package server

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/Daskott/coastal-alert/server/gstorage"
	"github.com/Daskott/coastal-alert/server/models"
	"github.com/Daskott/coastal-alert/shared"
	"github.com/Daskott/coastal-alert/utils"
	"github.com/go-co-op/gocron"
)

const BACKUP_SQLITE_DB_TAG = "backupSqliteDb"

var storage *gstorage.GStorage

func backupEnabled(config *shared.ServerConfig) bool {
	return config != nil &&
		config.Google.Storage.EnableSqliteBackupAndSync &&
		models.SqliteFilePathFromURL(config.Database.URL) != ""
}

func scheduleJobs(scheduler *gocron.Scheduler, config *shared.ServerConfig) error {
	if !backupEnabled(config) {
		return nil
	}

	_, err := scheduler.Cron(config.Google.Storage.SqliteBackupSchedule).Tag(BACKUP_SQLITE_DB_TAG).Do(func() {
		if err := backupSqliteDb(); err != nil {
			logg.Error(err)
		}
	})
	if err != nil {
		return fmt.Errorf("unable to schedule sqlite backup: %v", err)
	}

	logg.Infof("Scheduled sqlite backups with '%v'", config.Google.Storage.SqliteBackupSchedule)
	return nil
}

// backupSqliteDb flushes the sqlite WAL and uploads the db file to google storage.
func backupSqliteDb() error {
	if storage == nil {
		return fmt.Errorf("backupSqliteDb: google storage is not initialized")
	}

	err := models.CheckpointSqliteDb()
	if err != nil {
		return fmt.Errorf("backupSqliteDb: %v", err)
	}

	return storage.UploadFile(models.SqliteFilePath())
}

// restoreSqliteDb downloads the last backup when there is no local db file yet.
func restoreSqliteDb(config *shared.ServerConfig) error {
	if config.Google.Storage.Bucket == "" {
		return fmt.Errorf("google.storage.bucket is required for sqlite backups")
	}

	var err error
	storage, err = gstorage.NewGStorage(
		config.Google.ApplicationCredentials,
		config.Google.Storage.Bucket,
		config.Google.Storage.Prefix,
	)
	if err != nil {
		return err
	}

	filePath := models.SqliteFilePathFromURL(config.Database.URL)
	if utils.FileExist(filePath) {
		return nil
	}

	err = utils.CreateDirIfNotExist(filepath.Dir(filePath))
	if err != nil {
		return err
	}

	err = storage.DownloadFile(filePath)
	if errors.Is(err, gstorage.ErrObjectNotExist) {
		logg.Infof("No backup of %v found in google storage, starting with an empty database", filePath)
		return nil
	}

	return err
}
