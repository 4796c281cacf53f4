package server

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Daskott/coastal-alert/server/alerting"
	"github.com/Daskott/coastal-alert/server/auth"
	"github.com/Daskott/coastal-alert/server/models"
	"github.com/go-co-op/gocron"
	"github.com/go-playground/validator"
	"gorm.io/gorm"
)

// ---------------------------------------------------------------------------------//
// Handler Helper functions
// --------------------------------------------------------------------------------//

func writeResponse(rw http.ResponseWriter, payLoad ResponsePayload, statusCode int) {
	if statusCode >= http.StatusInternalServerError {
		logg.Error(payLoad.Errors)
	} else if statusCode >= http.StatusBadRequest {
		logg.Info(payLoad.Errors)
	}

	rw.WriteHeader(statusCode)
	json.NewEncoder(rw).Encode(payLoad)
}

// writeErrResponse writes err with the status code of its kind.
func writeErrResponse(rw http.ResponseWriter, err error) {
	writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, statusCodeForErr(err))
}

func statusCodeForErr(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateContact),
		errors.Is(err, models.ErrContactMethodRequired),
		errors.Is(err, models.ErrDuplicateUser),
		errors.Is(err, alerting.ErrUnknownMetric),
		errors.Is(err, alerting.ErrValueRequired):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func decodeJSON(rw http.ResponseWriter, r *http.Request, data interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(data)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{"invalid request body: " + err.Error()}}, http.StatusBadRequest)
		return false
	}

	return true
}

func decodeAndValidate(rw http.ResponseWriter, r *http.Request, data interface{}) bool {
	if !decodeJSON(rw, r, data) {
		return false
	}

	errs := validate.Struct(data)
	if errs != nil {
		writeResponse(rw, ResponsePayload{Errors: strings.Split(errs.Error(), "\n")}, http.StatusBadRequest)
		return false
	}

	return true
}

func isFormRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"
}

// requestUserID returns the id of the authenticated caller, if any.
func requestUserID(r *http.Request) *uint {
	decodedJWT, ok := r.Context().Value(RequestContextKey("decodedJWT")).(DecodedJWT)
	if !ok || decodedJWT.Claims == nil {
		return nil
	}

	id, err := strconv.ParseUint(decodedJWT.Claims.Subject, 10, 64)
	if err != nil {
		return nil
	}

	userID := uint(id)
	return &userID
}

func channelMode(demo bool) string {
	if demo {
		return "demo"
	}
	return "live"
}

func RegisterValidators(validate *validator.Validate) error {
	return validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		// if whitespace in password return false
		err := validate.Var(fl.Field().String(), "contains= ")
		if err == nil {
			return false
		}
		return len(fl.Field().String()) > 0
	})
}

// ---------------------------------------------------------------------------------//
// Middleware Helper functions
// --------------------------------------------------------------------------------//

func decodeAndVerifyAuthHeader(authHeaderValue string) DecodedJWT {
	authHeaderList := strings.Split(authHeaderValue, "Bearer ")
	if len(authHeaderList) < 2 {
		return DecodedJWT{ErrorMsg: "no token provided"}
	}

	tokenClaims, err := auth.DecodeJWT(authHeaderList[1], authKeyPair)
	if err != nil {
		return DecodedJWT{ErrorMsg: "invalid token provided"}
	}

	// validate that the user account still exists
	user, err := models.FindUserBy("id", tokenClaims.Subject)
	if err != nil || !user.IsActive {
		return DecodedJWT{ErrorMsg: "invalid token provided"}
	}

	return DecodedJWT{Claims: tokenClaims}
}

// ---------------------------------------------------------------------------------//
// Server Helper functions
// --------------------------------------------------------------------------------//

func serve(server *http.Server) {
	logg.Infof("Coastal alert server is listening on port%v", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatal(err)
	}
}

func cleanup(scheduler *gocron.Scheduler, server *http.Server) {
	scheduler.Stop()

	if backupEnabled(serverConfig) {
		err := backupSqliteDb()
		if err != nil {
			logg.Error(err)
		}
	}

	// Shutdown server gracefully
	ctxShutDown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutDown); err != nil {
		logg.Errorf("Coastal alert server shutdown failed:%+s", err)
	}

	if err := publisher.Close(); err != nil {
		logg.Errorf("Unable to close event publisher: %v", err)
	}

	if err := models.CloseDB(); err != nil {
		logg.Errorf("Unable to close database: %v", err)
	}

	logg.Infof("Coastal alert server stopped properly")
}

func fatalOnError(err error) {
	if err != nil {
		logg.Fatal(err)
	}
}
