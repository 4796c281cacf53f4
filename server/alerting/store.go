package alerting

import "github.com/Daskott/coastal-alert/server/models"

// ModelStore serves contacts & alert logs from the database opened by models.AutoMigrate.
type ModelStore struct{}

func (ModelStore) FetchContacts() ([]models.Contact, error) {
	return models.FetchContacts()
}

func (ModelStore) CreateAlertLog(alertLog *models.AlertLog) error {
	return models.CreateAlertLog(alertLog)
}

func (ModelStore) FinalizeAlertLog(alertLog *models.AlertLog) error {
	return models.FinalizeAlertLog(alertLog)
}
