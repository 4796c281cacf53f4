package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Daskott/coastal-alert/server/alerting"
	"github.com/Daskott/coastal-alert/server/models"
	"github.com/Daskott/coastal-alert/version"
	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	err := RegisterValidators(validate)
	if err != nil {
		logg.Fatal(err)
	}
}

func index(rw http.ResponseWriter, r *http.Request) {
	json.NewEncoder(rw).Encode(ResponsePayload{
		Success: true,
		Data:    map[string]string{"message": "Coastal Alert API", "version": version.Version},
	})
}

func health(rw http.ResponseWriter, r *http.Request) {
	json.NewEncoder(rw).Encode(ResponsePayload{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			SmsMode:   channelMode(gateway.SmsDemoMode()),
			EmailMode: channelMode(gateway.EmailDemoMode()),
		},
	})
}

// ---------------------------------------------------------------------------------//
// Contacts
// --------------------------------------------------------------------------------//

func createContact(rw http.ResponseWriter, r *http.Request) {
	params := models.ContactParams{}
	if !decodeAndValidate(rw, r, &params) {
		return
	}

	params.UserID = requestUserID(r)

	contact, err := models.CreateContact(params)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: contact})
}

func listContacts(rw http.ResponseWriter, r *http.Request) {
	contacts, err := models.FetchContacts()
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: contacts})
}

func findContact(rw http.ResponseWriter, r *http.Request) {
	contact, err := models.FindContact(mux.Vars(r)["id"])
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: contact})
}

func updateContact(rw http.ResponseWriter, r *http.Request) {
	params := models.ContactParams{}
	if !decodeAndValidate(rw, r, &params) {
		return
	}

	contact, err := models.UpdateContact(mux.Vars(r)["id"], params)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: contact})
}

func deleteContact(rw http.ResponseWriter, r *http.Request) {
	err := models.DeleteContact(mux.Vars(r)["id"])
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true})
}

// ---------------------------------------------------------------------------------//
// Alerts
// --------------------------------------------------------------------------------//

func triggerAlert(rw http.ResponseWriter, r *http.Request) {
	reading := alerting.Reading{}
	if !decodeAndValidate(rw, r, &reading) {
		return
	}

	result, err := evaluator.Evaluate(r.Context(), reading)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: result})
}

func listAlertLogs(rw http.ResponseWriter, r *http.Request) {
	pageSize := models.DEFAULT_PAGE_SIZE

	if limit := strings.TrimSpace(r.URL.Query().Get("limit")); limit != "" {
		var err error
		pageSize, err = strconv.Atoi(limit)
		if err != nil {
			writeResponse(rw, ResponsePayload{Errors: []string{"limit must be an integer"}}, http.StatusBadRequest)
			return
		}
	}

	alertLogs, err := models.FetchAlertLogs(pageSize)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: alertLogs})
}

func listThresholds(rw http.ResponseWriter, r *http.Request) {
	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: evaluator.Thresholds().Map()})
}

func getStats(rw http.ResponseWriter, r *http.Request) {
	stats, err := models.FetchStats()
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{
		Success: true,
		Data:    StatsResponse{Stats: stats, Thresholds: evaluator.Thresholds().Map()},
	})
}

// ---------------------------------------------------------------------------------//
// Dry-run
// --------------------------------------------------------------------------------//

func listSampleContacts(rw http.ResponseWriter, r *http.Request) {
	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: alerting.SampleContacts})
}

func dryRunAlert(rw http.ResponseWriter, r *http.Request) {
	reading := alerting.Reading{}
	if !decodeAndValidate(rw, r, &reading) {
		return
	}

	result, err := alerting.DryRun(evaluator.Thresholds(), reading)
	if err != nil {
		writeErrResponse(rw, err)
		return
	}

	json.NewEncoder(rw).Encode(ResponsePayload{Success: true, Data: result})
}
